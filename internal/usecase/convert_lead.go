package usecase

import (
	"context"
	"log"

	"github.com/rafaelmtz/leadtracker/internal/entity"
)

type ConvertLeadUseCase struct {
	Leads        entity.LeadRepositoryInterface
	Clients      entity.ClientRepositoryInterface
	Events       EventPublisher
	EmailService EmailService
}

func NewConvertLeadUseCase(
	leads entity.LeadRepositoryInterface,
	clients entity.ClientRepositoryInterface,
	events EventPublisher,
	emailService EmailService,
) *ConvertLeadUseCase {
	return &ConvertLeadUseCase{
		Leads:        leads,
		Clients:      clients,
		Events:       events,
		EmailService: emailService,
	}
}

// Execute turns a lead into a client. The client insert and the lead
// status flip happen in one storage transaction, and the unique index on
// source_lead_id catches the race where two conversions pass the checks
// below at the same time.
func (uc *ConvertLeadUseCase) Execute(ctx context.Context, leadID string) (*entity.Client, error) {
	lead, err := uc.Leads.FindByID(ctx, leadID)
	if err != nil {
		return nil, err
	}

	if lead.IsConverted() {
		return nil, entity.ErrLeadAlreadyConverted
	}

	exists, err := uc.Clients.ExistsBySourceLead(ctx, leadID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, entity.ErrDuplicateConversion
	}

	client := entity.NewClientFromLead(lead)
	if err := uc.Clients.CreateWithLeadStatus(ctx, client); err != nil {
		return nil, err
	}

	// Side effects below are best effort and never undo the conversion.
	if uc.Events != nil {
		payload := LeadConvertedPayload{
			ClientID: client.ID,
			LeadID:   lead.ID,
			Name:     client.Name,
			Email:    client.Email,
			Phone:    client.Phone,
		}
		if err := uc.Events.PublishLeadConverted(ctx, payload); err != nil {
			log.Printf("failed to publish conversion event for lead %s: %v", lead.ID, err)
		}
	}

	if uc.EmailService != nil {
		if err := uc.EmailService.SendClientWelcome(client.Email, client.Name); err != nil {
			log.Printf("failed to send welcome email to %s: %v", client.Email, err)
		}
	}

	return client, nil
}
