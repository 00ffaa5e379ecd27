package usecase

import (
	"context"
	"strings"

	"github.com/rafaelmtz/leadtracker/internal/entity"
)

type CreateLeadInput struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// UpdateLeadInput carries only the fields present in the request body.
// A nil pointer means "leave untouched", an empty string is an explicit
// (and rejected) value for name and email.
type UpdateLeadInput struct {
	Name   *string `json:"name"`
	Email  *string `json:"email"`
	Phone  *string `json:"phone"`
	Status *string `json:"status"`
}

type LeadService struct {
	Leads entity.LeadRepositoryInterface
}

func NewLeadService(leads entity.LeadRepositoryInterface) *LeadService {
	return &LeadService{Leads: leads}
}

func (s *LeadService) Create(ctx context.Context, input CreateLeadInput) (*entity.Lead, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, ValidationError{"name", "is required"}
	}
	if strings.TrimSpace(input.Email) == "" {
		return nil, ValidationError{"email", "is required"}
	}

	lead, err := entity.NewLead(input.Name, input.Email, input.Phone)
	if err != nil {
		return nil, err
	}

	if err := s.Leads.Create(ctx, lead); err != nil {
		return nil, err
	}

	return lead, nil
}

func (s *LeadService) List(ctx context.Context) ([]*entity.Lead, error) {
	return s.Leads.List(ctx)
}

func (s *LeadService) Get(ctx context.Context, id string) (*entity.Lead, error) {
	return s.Leads.FindByID(ctx, id)
}

// Update applies only the fields present in the input. Status changes are
// not accepted here: a lead becomes Converted through the conversion
// operation, which also creates the client record.
func (s *LeadService) Update(ctx context.Context, id string, input UpdateLeadInput) (*entity.Lead, error) {
	lead, err := s.Leads.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		if *input.Name == "" {
			return nil, ValidationError{"name", "must not be empty"}
		}
		lead.Name = *input.Name
	}
	if input.Email != nil {
		if *input.Email == "" {
			return nil, ValidationError{"email", "must not be empty"}
		}
		lead.Email = *input.Email
	}
	if input.Phone != nil {
		lead.Phone = *input.Phone
	}
	if input.Status != nil && *input.Status != lead.Status {
		return nil, ValidationError{"status", "cannot be changed directly, use the convert operation"}
	}

	if err := s.Leads.Update(ctx, lead); err != nil {
		return nil, err
	}

	return lead, nil
}

func (s *LeadService) Delete(ctx context.Context, id string) error {
	return s.Leads.Delete(ctx, id)
}
