package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/aussiebroadwan/paygate/internal/paygate/domain"
	"github.com/aussiebroadwan/paygate/internal/paygate/store"
	"github.com/aussiebroadwan/paygate/pkg/idx"
	"github.com/aussiebroadwan/paygate/pkg/slogx"
)

var (
	ErrInvalidPublishRequest  = errors.New("invalid publish request")
	ErrPendingPublishNotFound = errors.New("pending publish not found or expired")
	ErrPublisherMismatch      = errors.New("pending publish belongs to a different publisher")
)

// FeeSchedule prices the listing fee for publishing a paid document:
// a flat base plus a percentage of the document price in basis points.
type FeeSchedule struct {
	BaseSats   int64
	PercentBps int64
}

// Fee returns the listing fee in sats. Free documents list for free.
func (f FeeSchedule) Fee(priceSats int64) int64 {
	if priceSats <= 0 {
		return 0
	}
	return f.BaseSats + priceSats*f.PercentBps/10_000
}

// PublishInput is a publisher's submission.
type PublishInput struct {
	Title         string
	Body          string
	PriceSats     int64
	PayoutAddress string
}

// PublishOutcome is the result of a submission: either a live document
// (zero listing fee) or a pending record plus the challenge that pays for
// its listing.
type PublishOutcome struct {
	Document  *domain.Document
	Pending   *domain.PendingPublish
	Challenge *domain.Challenge
}

// PublishService runs the publish flow. Listing fees are always
// platform-custodied; the creator's payout address only matters for the
// document's own purchases once it is live.
type PublishService struct {
	Store      store.Store
	Gate       *GateService
	Fees       FeeSchedule
	PendingTTL time.Duration
}

// SubmitPublish validates the submission and either publishes immediately
// (no listing fee due) or parks it as a pending publish behind a 402.
func (s *PublishService) SubmitPublish(ctx context.Context, publisherID string, in PublishInput) (PublishOutcome, error) {
	log := slogx.FromContext(ctx)

	// 1. Validate the submission.
	in.Title = strings.TrimSpace(in.Title)
	in.PayoutAddress = strings.TrimSpace(in.PayoutAddress)
	if in.Title == "" || in.Body == "" || in.PriceSats < 0 {
		return PublishOutcome{}, ErrInvalidPublishRequest
	}
	if in.PayoutAddress != "" && !strings.Contains(in.PayoutAddress, "@") {
		return PublishOutcome{}, ErrInvalidPublishRequest
	}

	// 2. No fee due: publish immediately.
	fee := s.Fees.Fee(in.PriceSats)
	if fee <= 0 {
		doc, err := s.createDocument(ctx, s.Store, publisherID, in)
		if err != nil {
			return PublishOutcome{}, err
		}
		log.Info("document published",
			slog.String("document_id", doc.ID),
			slog.String("publisher_id", publisherID),
		)
		return PublishOutcome{Document: &doc}, nil
	}

	// 3. Fee due: park the submission and charge for the listing.
	pending := domain.PendingPublish{
		ID:            idx.New().String(),
		PublisherID:   publisherID,
		Title:         in.Title,
		Body:          in.Body,
		PriceSats:     in.PriceSats,
		PayoutAddress: in.PayoutAddress,
		FeeSats:       fee,
		ExpiresAt:     time.Now().UTC().Add(s.PendingTTL),
	}
	if err := s.Store.PendingPublishes().CreatePendingPublish(ctx, pending); err != nil {
		log.Error("failed to create pending publish", slog.Any("error", err))
		return PublishOutcome{}, err
	}

	challenge, err := s.Gate.Challenges.BuildChallenge(ctx, pending.ID, fee, "", PurchaseTTL)
	if err != nil {
		// Housekeeping will sweep the orphaned pending record.
		return PublishOutcome{}, err
	}

	log.Info("publish pending listing fee",
		slog.String("pending_id", pending.ID),
		slog.String("publisher_id", publisherID),
		slog.Int64("fee_sats", fee),
	)
	return PublishOutcome{Pending: &pending, Challenge: &challenge}, nil
}

// CompletePublish verifies the listing-fee payment and promotes the pending
// record to a live document. The promotion deletes the pending record in the
// same transaction, so a macaroon cannot publish twice.
func (s *PublishService) CompletePublish(
	ctx context.Context,
	publisherID, pendingID string,
	creds *domain.VerifyRequest,
) (domain.Document, Decision, error) {
	log := slogx.FromContext(ctx)

	// 1. The pending record must exist, be unexpired and belong to the
	// caller.
	pending, err := s.Store.PendingPublishes().GetPendingPublishByID(ctx, pendingID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Document{}, Decision{}, ErrPendingPublishNotFound
		}
		log.Error("failed to fetch pending publish", slog.Any("error", err))
		return domain.Document{}, Decision{}, err
	}
	if pending.PublisherID != publisherID {
		log.Warn("publish completion attempted by wrong publisher",
			slog.String("pending_id", pendingID),
			slog.String("publisher_id", publisherID),
		)
		return domain.Document{}, Decision{}, ErrPublisherMismatch
	}
	if time.Now().After(pending.ExpiresAt) {
		return domain.Document{}, Decision{}, ErrPendingPublishNotFound
	}

	// 2. Run the listing fee through the gate.
	decision, err := s.Gate.Authorize(ctx, GatedResource{
		ID:        pending.ID,
		PriceSats: pending.FeeSats,
	}, creds, PurchaseTTL)
	if err != nil {
		return domain.Document{}, Decision{}, err
	}
	if !decision.Grant {
		return domain.Document{}, decision, nil
	}

	// 3. Paid: promote atomically.
	var doc domain.Document
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		created, err := s.createDocument(ctx, tx, pending.PublisherID, PublishInput{
			Title:         pending.Title,
			Body:          pending.Body,
			PriceSats:     pending.PriceSats,
			PayoutAddress: pending.PayoutAddress,
		})
		if err != nil {
			return err
		}
		doc = created
		return tx.PendingPublishes().DeletePendingPublish(ctx, pending.ID)
	})
	if err != nil {
		log.Error("failed to promote pending publish",
			slog.String("pending_id", pendingID),
			slog.Any("error", err),
		)
		return domain.Document{}, Decision{}, err
	}

	log.Info("document published",
		slog.String("document_id", doc.ID),
		slog.String("pending_id", pendingID),
		slog.String("publisher_id", publisherID),
	)
	return doc, decision, nil
}

func (s *PublishService) createDocument(ctx context.Context, st store.Store, publisherID string, in PublishInput) (domain.Document, error) {
	doc := domain.Document{
		ID:            idx.New().String(),
		Title:         in.Title,
		Body:          in.Body,
		PriceSats:     in.PriceSats,
		PayoutAddress: in.PayoutAddress,
		PublisherID:   publisherID,
	}
	if err := st.Documents().CreateDocument(ctx, doc); err != nil {
		return domain.Document{}, err
	}
	return doc, nil
}
