package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/aussiebroadwan/paygate/internal/paygate/domain"
)

type pendingPublishesRepo struct {
	q querier
}

func (r *pendingPublishesRepo) CreatePendingPublish(ctx context.Context, p domain.PendingPublish) error {
	_, err := r.q.ExecContext(ctx,
		`INSERT INTO pending_publishes (id, publisher_id, title, body, price_sats, payout_address, fee_sats, expires_at, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP)`,
		p.ID, p.PublisherID, p.Title, p.Body, p.PriceSats,
		mapStringNull(p.PayoutAddress), p.FeeSats, p.ExpiresAt.UTC())
	return err
}

func (r *pendingPublishesRepo) GetPendingPublishByID(ctx context.Context, id string) (domain.PendingPublish, error) {
	row := r.q.QueryRowContext(ctx,
		`SELECT id, publisher_id, title, body, price_sats, payout_address, fee_sats, expires_at, created_at
		 FROM pending_publishes WHERE id = ?`, id)

	var (
		p             domain.PendingPublish
		payoutAddress sql.NullString
	)
	err := row.Scan(
		&p.ID, &p.PublisherID, &p.Title, &p.Body, &p.PriceSats,
		&payoutAddress, &p.FeeSats, &p.ExpiresAt, &p.CreatedAt,
	)
	if err != nil {
		return domain.PendingPublish{}, mapNotFound(err)
	}
	p.PayoutAddress = mapNullString(payoutAddress)
	return p, nil
}

func (r *pendingPublishesRepo) DeletePendingPublish(ctx context.Context, id string) error {
	_, err := r.q.ExecContext(ctx, `DELETE FROM pending_publishes WHERE id = ?`, id)
	return err
}

func (r *pendingPublishesRepo) DeleteExpiredPendingPublishes(ctx context.Context) error {
	// Bound as a time.Time so the comparison uses the same encoding the
	// driver writes on insert.
	_, err := r.q.ExecContext(ctx,
		`DELETE FROM pending_publishes WHERE expires_at < ?`, time.Now().UTC())
	return err
}
