package database

import (
	"context"
	"database/sql"

	"github.com/invoicechaser/lead-api/internal/entity"
)

// LeadLogRepository appends lead records to the leads_log table. The table
// is insert-only from this service; nothing ever reads it back here.
type LeadLogRepository struct {
	DB *sql.DB
}

func NewLeadLogRepository(db *sql.DB) *LeadLogRepository {
	return &LeadLogRepository{DB: db}
}


func (r *LeadLogRepository) Append(ctx context.Context, rec entity.LogRecord) error {
	query := `
		INSERT INTO leads_log (
			id, version, submitted_at,
			name, email, company, invoicing_system, volume, message,
			source, page_url, remote_ip, user_agent
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`

	_, err := r.DB.ExecContext(
		ctx,
		query,
		rec.ID,
		rec.Version,
		rec.Timestamp,
		rec.Lead.Name,
		rec.Lead.Email,
		nullString(rec.Lead.Company),
		nullString(rec.Lead.System),
		nullString(rec.Lead.Volume),
		nullString(rec.Lead.Message),
		nullString(rec.Lead.Source),
		nullString(rec.Lead.PageURL),
		nullString(rec.RemoteIP),
		nullString(rec.UserAgent),
	)

	return err
}


func nullString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
