// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the persistent identity record behind the API. Username and Email
// are each unique across all users; Email doubles as the login key.
// PasswordHash holds the bcrypt output and must never appear in any
// external-facing representation.
type User struct {
	ID           uuid.UUID // Assigned by the repository at creation, immutable thereafter.
	Username     string    // Unique display identity.
	Email        string    // Unique login key.
	PasswordHash string    // Credential hasher output, never the plaintext password.
	Bio          string    // Optional profile text, default empty.
	Image        string    // Optional profile image URL, default empty.
	CreatedAt    time.Time // Timestamp of when this account was created.
	UpdatedAt    time.Time // Timestamp of the last modification.
}
