package message

// Creator is the Factory Method abstraction: each implementation produces
// exactly one message variant and cannot fail.
type Creator interface {
	CreateMessage(content string) Message
}

type SimpleCreator struct{}

func (SimpleCreator) CreateMessage(content string) Message {
	return NewSimple(content)
}

type UrgentCreator struct{}

func (UrgentCreator) CreateMessage(content string) Message {
	return NewUrgent(content)
}

type PromotionalCreator struct{}

func (PromotionalCreator) CreateMessage(content string) Message {
	return NewPromotional(content)
}

// CreatorFor returns the creator bound to t.
func CreatorFor(t Type) (Creator, error) {
	switch t {
	case TypeSimple:
		return SimpleCreator{}, nil
	case TypeUrgent:
		return UrgentCreator{}, nil
	case TypePromotional:
		return PromotionalCreator{}, nil
	}
	return nil, NewUnknownTypeError(string(t))
}
