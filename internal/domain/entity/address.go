package entity

import (
	"time"

	"github.com/google/uuid"
)

// Address is a saved delivery address owned by a user.
// Invariant: a user has at most one address with IsDefault set. Zero
// defaults is a valid state (e.g. right after the default was deleted).
type Address struct {
	ID          uuid.UUID // The unique identifier for the address.
	UserID      uuid.UUID // The ID of the owning user.
	Label       string    // A user-defined label, e.g., "Home", "Office".
	FullAddress string    // The full, human-readable street address.
	PhoneNumber *string   // Optional contact number for this address.
	Latitude    float64   // The geographic latitude.
	Longitude   float64   // The geographic longitude.
	IsDefault   bool      // Indicates if this is the user's default address.
	CreatedAt   time.Time // Timestamp of when this address was created.
	UpdatedAt   time.Time // Timestamp of the last modification.
}
