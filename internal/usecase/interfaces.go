package usecase

import "context"

type TokenIssuer interface {
	Issue(subjectEmail string) (string, error)
}

// EventPublisher broadcasts conversion events to downstream consumers.
type EventPublisher interface {
	PublishLeadConverted(ctx context.Context, payload LeadConvertedPayload) error
}

type EmailService interface {
	SendClientWelcome(to, name string) error
}

type LeadConvertedPayload struct {
	ClientID string `json:"client_id"`
	LeadID   string `json:"lead_id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone,omitempty"`
}
