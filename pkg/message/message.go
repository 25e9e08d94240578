package message

// Type identifies a message variant.
type Type string

const (
	TypeSimple      Type = "simple"
	TypeUrgent      Type = "urgent"
	TypePromotional Type = "promotional"
)

// Formatting markers applied by the urgent and promotional variants.
const (
	UrgentPrefix      = "[URGENTE] "
	PromotionalPrefix = "[PROMOÇÃO] "
	PromotionalSuffix = " Aproveite!"
)

// Message is an immutable text payload with a variant-specific format.
type Message interface {
	// Content returns the raw text the message was created with.
	Content() string
	// Format renders the content according to the variant rule.
	// It is pure: the result depends only on content and variant.
	Format() string
	// Type returns the variant tag.
	Type() Type
}

// SimpleMessage renders its content verbatim.
type SimpleMessage struct {
	content string
}

func NewSimple(content string) SimpleMessage {
	return SimpleMessage{content: content}
}

func (m SimpleMessage) Content() string { return m.content }
func (m SimpleMessage) Format() string { return m.content }
func (m SimpleMessage) Type() Type { return TypeSimple }

// UrgentMessage prefixes its content with the urgent marker.
type UrgentMessage struct {
	content string
}

func NewUrgent(content string) UrgentMessage {
	return UrgentMessage{content: content}
}

func (m UrgentMessage) Content() string { return m.content }
func (m UrgentMessage) Format() string { return UrgentPrefix + m.content }
func (m UrgentMessage) Type() Type { return TypeUrgent }

// PromotionalMessage wraps its content with the promotion marker and suffix.
type PromotionalMessage struct {
	content string
}

func NewPromotional(content string) PromotionalMessage {
	return PromotionalMessage{content: content}
}

func (m PromotionalMessage) Content() string { return m.content }
func (m PromotionalMessage) Format() string {
	return PromotionalPrefix + m.content + PromotionalSuffix
}
func (m PromotionalMessage) Type() Type { return TypePromotional }
