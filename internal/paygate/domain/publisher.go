package domain

import "time"

// Publisher is a creator account allowed to submit documents. API keys are
// stored argon2id-hashed; the plaintext is shown once at creation.
type Publisher struct {
	ID         string
	Name       string
	APIKeyHash string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
