package store

import (
	"context"
	"errors"

	"github.com/aussiebroadwan/paygate/internal/paygate/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite for now)
// implement this. Sub-repositories keep concerns tidy and stop callers from
// accidentally nesting transactions.
type Store interface {
	Documents() Documents
	PendingPublishes() PendingPublishes
	Publishers() Publishers

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction, rolling back when fn errors
	// and committing otherwise. Preferred over Tx for multi-step writes
	// (e.g. promoting a pending publish).
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store with Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Documents interface {
	// GetDocumentByID returns a document by id, body included.
	GetDocumentByID(ctx context.Context, id string) (domain.Document, error)

	// ListDocuments returns all documents newest first, bodies included;
	// callers decide which fields to expose.
	ListDocuments(ctx context.Context) ([]domain.Document, error)

	// CreateDocument inserts a new document (id is provided via ULID).
	CreateDocument(ctx context.Context, d domain.Document) error

	// DeleteDocument removes a document.
	DeleteDocument(ctx context.Context, id string) error

	// IsEmpty returns true if there are no documents.
	IsEmpty(ctx context.Context) (bool, error)
}

type PendingPublishes interface {
	// CreatePendingPublish stores a submission awaiting its listing fee.
	CreatePendingPublish(ctx context.Context, p domain.PendingPublish) error

	// GetPendingPublishByID returns a pending publish, expired or not;
	// callers check ExpiresAt.
	GetPendingPublishByID(ctx context.Context, id string) (domain.PendingPublish, error)

	// DeletePendingPublish removes a record once promoted or abandoned.
	DeletePendingPublish(ctx context.Context, id string) error

	// DeleteExpiredPendingPublishes is housekeeping.
	DeleteExpiredPendingPublishes(ctx context.Context) error
}

type Publishers interface {
	// GetPublisherByID returns a publisher by id.
	GetPublisherByID(ctx context.Context, id string) (domain.Publisher, error)

	// GetPublisherByName is used during API key exchange.
	GetPublisherByName(ctx context.Context, name string) (domain.Publisher, error)

	// CreatePublisher inserts a new publisher (id is ULID, key pre-hashed).
	CreatePublisher(ctx context.Context, p domain.Publisher) error

	// IsEmpty returns true if there are no publishers.
	IsEmpty(ctx context.Context) (bool, error)
}
