package mocks

import "github.com/RxV00/Forgptabinote/domain"

// SentMail records one delivered message
type SentMail struct {
	To      string
	Subject string
	Body    string
}

// MockMailer implements domain.Mailer interface for testing
type MockMailer struct {
	SendFunc func(to, subject, htmlBody string) error

	// Sent collects deliveries when SendFunc is unset
	Sent []SentMail
}

// NewMockMailer creates a new MockMailer with default behaviors
func NewMockMailer() *MockMailer {
	return &MockMailer{}
}

// Send delivers a message
func (m *MockMailer) Send(to, subject, htmlBody string) error {
	if m.SendFunc != nil {
		return m.SendFunc(to, subject, htmlBody)
	}
	// Default behavior: record and succeed
	m.Sent = append(m.Sent, SentMail{To: to, Subject: subject, Body: htmlBody})
	return nil
}

// Compile-time interface compliance verification
var _ domain.Mailer = (*MockMailer)(nil)
