// Package demo holds the fixed demonstration played by the cmd binaries:
// three messages (simple, urgent, promotional) sent by email, then the
// same messages by SMS after switching the service strategy.
//
// SimpleFactoryScript and FactoryMethodScript build the same messages
// through the two creation mechanisms of the message package, so both
// binaries print the same deliveries under different headers.
package demo
