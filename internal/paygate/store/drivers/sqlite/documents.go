package sqlite

import (
	"context"
	"database/sql"

	"github.com/aussiebroadwan/paygate/internal/paygate/domain"
)

type documentsRepo struct {
	q querier
}

const documentColumns = `id, title, body, price_sats, payout_address, publisher_id, created_at, updated_at`

func (r *documentsRepo) GetDocumentByID(ctx context.Context, id string) (domain.Document, error) {
	row := r.q.QueryRowContext(ctx,
		`SELECT `+documentColumns+` FROM documents WHERE id = ?`, id)

	doc, err := scanDocument(row)
	if err != nil {
		return domain.Document{}, mapNotFound(err)
	}
	return doc, nil
}

func (r *documentsRepo) ListDocuments(ctx context.Context) ([]domain.Document, error) {
	rows, err := r.q.QueryContext(ctx,
		`SELECT `+documentColumns+` FROM documents ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var docs []domain.Document
	for rows.Next() {
		doc, err := scanDocument(rows)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, rows.Err()
}

func (r *documentsRepo) CreateDocument(ctx context.Context, d domain.Document) error {
	_, err := r.q.ExecContext(ctx,
		`INSERT INTO documents (id, title, body, price_sats, payout_address, publisher_id, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)`,
		d.ID, d.Title, d.Body, d.PriceSats, mapStringNull(d.PayoutAddress), mapStringNull(d.PublisherID))
	return err
}

func (r *documentsRepo) DeleteDocument(ctx context.Context, id string) error {
	_, err := r.q.ExecContext(ctx, `DELETE FROM documents WHERE id = ?`, id)
	return err
}

func (r *documentsRepo) IsEmpty(ctx context.Context) (bool, error) {
	var count int
	if err := r.q.QueryRowContext(ctx, `SELECT COUNT(*) FROM documents`).Scan(&count); err != nil {
		return false, err
	}
	return count == 0, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanDocument(row rowScanner) (domain.Document, error) {
	var (
		d             domain.Document
		payoutAddress sql.NullString
		publisherID   sql.NullString
	)
	err := row.Scan(
		&d.ID, &d.Title, &d.Body, &d.PriceSats,
		&payoutAddress, &publisherID, &d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		return domain.Document{}, err
	}
	d.PayoutAddress = mapNullString(payoutAddress)
	d.PublisherID = mapNullString(publisherID)
	return d, nil
}
