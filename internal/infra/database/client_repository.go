package database

import (
	"context"
	"database/sql"
	"errors"
	"log"

	"github.com/lib/pq"
	"github.com/rafaelmtz/leadtracker/internal/entity"
)

const uniqueViolation = "23505"

type ClientRepository struct {
	DB *sql.DB
}

func NewClientRepository(db *sql.DB) *ClientRepository {
	return &ClientRepository{DB: db}
}

func (r *ClientRepository) List(ctx context.Context) ([]*entity.Client, error) {
	query := `
		SELECT id, name, email, COALESCE(phone, ''), COALESCE(source_lead_id::text, ''), created_at
		FROM clients
		ORDER BY created_at
	`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	clients := []*entity.Client{}
	for rows.Next() {
		var client entity.Client
		if err := rows.Scan(
			&client.ID,
			&client.Name,
			&client.Email,
			&client.Phone,
			&client.SourceLeadID,
			&client.CreatedAt,
		); err != nil {
			return nil, err
		}
		clients = append(clients, &client)
	}

	return clients, rows.Err()
}

func (r *ClientRepository) ExistsBySourceLead(ctx context.Context, leadID string) (bool, error) {
	var exists bool
	err := r.DB.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM clients WHERE source_lead_id = $1)`,
		leadID,
	).Scan(&exists)
	return exists, err
}

// CreateWithLeadStatus inserts the client and marks its source lead
// Converted in one transaction, so neither write lands without the other.
// The unique index on source_lead_id turns a concurrent double conversion
// into ErrDuplicateConversion instead of a second client row.
func (r *ClientRepository) CreateWithLeadStatus(ctx context.Context, client *entity.Client) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO clients (id, name, email, phone, source_lead_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`,
		client.ID,
		client.Name,
		client.Email,
		nullString(client.Phone),
		client.SourceLeadID,
		client.CreatedAt,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolation {
			return entity.ErrDuplicateConversion
		}
		log.Printf("client insert failed: %v", err)
		return err
	}

	res, err := tx.ExecContext(ctx, `
		UPDATE leads SET status = $2, updated_at = NOW() WHERE id = $1
	`, client.SourceLeadID, entity.LeadStatusConverted)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return entity.ErrLeadNotFound
	}

	return tx.Commit()
}
