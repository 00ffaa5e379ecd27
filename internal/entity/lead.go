package entity

import (
	"context"
	"time"

	"github.com/google/uuid"
)

const (
	LeadStatusLead      = "Lead"
	LeadStatusConverted = "Converted"
)

type Lead struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Status    string    `json:"status"` // Lead, Converted
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewLead(name, email, phone string) (*Lead, error) {
	lead := &Lead{
		ID:        uuid.New().String(),
		Name:      name,
		Email:     email,
		Phone:     phone,
		Status:    LeadStatusLead,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := lead.Validate(); err != nil {
		return nil, err
	}

	return lead, nil
}

func (l *Lead) Validate() error {
	if l.Name == "" {
		return ErrNameRequired
	}
	if l.Email == "" {
		return ErrEmailRequired
	}
	return nil
}

func (l *Lead) IsConverted() bool {
	return l.Status == LeadStatusConverted
}

type LeadRepositoryInterface interface {
	Create(ctx context.Context, lead *Lead) error
	List(ctx context.Context) ([]*Lead, error)
	FindByID(ctx context.Context, id string) (*Lead, error)
	Update(ctx context.Context, lead *Lead) error
	Delete(ctx context.Context, id string) error
}
