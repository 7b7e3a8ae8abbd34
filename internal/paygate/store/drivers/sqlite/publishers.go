package sqlite

import (
	"context"

	"github.com/aussiebroadwan/paygate/internal/paygate/domain"
)

type publishersRepo struct {
	q querier
}

const publisherColumns = `id, name, api_key_hash, created_at, updated_at`

func (r *publishersRepo) GetPublisherByID(ctx context.Context, id string) (domain.Publisher, error) {
	row := r.q.QueryRowContext(ctx,
		`SELECT `+publisherColumns+` FROM publishers WHERE id = ?`, id)
	return scanPublisher(row)
}

func (r *publishersRepo) GetPublisherByName(ctx context.Context, name string) (domain.Publisher, error) {
	row := r.q.QueryRowContext(ctx,
		`SELECT `+publisherColumns+` FROM publishers WHERE name = ?`, name)
	return scanPublisher(row)
}

func (r *publishersRepo) CreatePublisher(ctx context.Context, p domain.Publisher) error {
	_, err := r.q.ExecContext(ctx,
		`INSERT INTO publishers (id, name, api_key_hash, created_at, updated_at)
		 VALUES (?, ?, ?, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)`,
		p.ID, p.Name, p.APIKeyHash)
	return err
}

func (r *publishersRepo) IsEmpty(ctx context.Context) (bool, error) {
	var count int
	if err := r.q.QueryRowContext(ctx, `SELECT COUNT(*) FROM publishers`).Scan(&count); err != nil {
		return false, err
	}
	return count == 0, nil
}

func scanPublisher(row rowScanner) (domain.Publisher, error) {
	var p domain.Publisher
	err := row.Scan(&p.ID, &p.Name, &p.APIKeyHash, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return domain.Publisher{}, mapNotFound(err)
	}
	return p, nil
}
