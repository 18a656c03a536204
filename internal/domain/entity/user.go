// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core entity for an application user. The stored coordinate
// is the user's last known delivery location and is the default origin
// for restaurant ranking.
type User struct {
	ID        uuid.UUID // The unique identifier for the user.
	Username  string    // Unique handle used by clients to identify the user.
	Email     string    // Contact email address.
	Latitude  float64   // Latitude of the user's delivery location.
	Longitude float64   // Longitude of the user's delivery location.
	CreatedAt time.Time // Timestamp of when this user was created.
	UpdatedAt time.Time // Timestamp of the last modification.
}
