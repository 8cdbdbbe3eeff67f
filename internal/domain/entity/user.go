// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core account entity. It represents a registered author who owns
// guides and may leave feedback on any guide.
type User struct {
	ID           uuid.UUID // The unique identifier for the account.
	Name         string    // The user's display name, attached to feedback listings.
	Email        string    // The user's login identifier. Unique across accounts.
	PasswordHash string    // Irreversible salted hash of the password. Never exposed outward.
	CreatedAt    time.Time // Timestamp of when this account was created.
	UpdatedAt    time.Time // Timestamp of the last modification to this account.
}
