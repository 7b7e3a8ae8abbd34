package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/aussiebroadwan/paygate/internal/paygate/domain"
	"github.com/aussiebroadwan/paygate/internal/paygate/store"
	"github.com/aussiebroadwan/paygate/pkg/slogx"
)

var ErrDocumentNotFound = errors.New("document not found")

// DocumentService serves the document library.
type DocumentService struct {
	Store store.Store
}

// ListDocuments returns public summaries for every document. Bodies are
// never included; paid bodies only leave through the gate.
func (s *DocumentService) ListDocuments(ctx context.Context) ([]domain.DocumentSummary, error) {
	log := slogx.FromContext(ctx)

	docs, err := s.Store.Documents().ListDocuments(ctx)
	if err != nil {
		log.Error("failed to list documents", slog.Any("error", err))
		return nil, err
	}

	summaries := make([]domain.DocumentSummary, 0, len(docs))
	for _, doc := range docs {
		summaries = append(summaries, doc.Summary())
	}
	return summaries, nil
}

// GetDocument fetches a single document, body included. Callers are expected
// to have cleared the gate first.
func (s *DocumentService) GetDocument(ctx context.Context, id string) (domain.Document, error) {
	doc, err := s.Store.Documents().GetDocumentByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Document{}, ErrDocumentNotFound
		}
		slogx.FromContext(ctx).Error("failed to fetch document",
			slog.String("document_id", id),
			slog.Any("error", err),
		)
		return domain.Document{}, err
	}
	return doc, nil
}
