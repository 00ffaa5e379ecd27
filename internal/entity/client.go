package entity

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Client is a converted lead. It keeps a weak back-reference to the
// originating lead via SourceLeadID; at most one client may reference
// a given lead, enforced by a unique index at the storage layer.
type Client struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone,omitempty"`
	SourceLeadID string    `json:"source_lead_id,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// NewClientFromLead copies the lead's contact fields into a new client.
func NewClientFromLead(lead *Lead) *Client {
	return &Client{
		ID:           uuid.New().String(),
		Name:         lead.Name,
		Email:        lead.Email,
		Phone:        lead.Phone,
		SourceLeadID: lead.ID,
		CreatedAt:    time.Now(),
	}
}

type ClientRepositoryInterface interface {
	List(ctx context.Context) ([]*Client, error)
	ExistsBySourceLead(ctx context.Context, leadID string) (bool, error)
	// CreateWithLeadStatus persists the client and marks the source lead
	// Converted in a single transaction.
	CreateWithLeadStatus(ctx context.Context, client *Client) error
}
