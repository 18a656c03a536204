package entity

import (
	"time"

	"github.com/google/uuid"
)

// Restaurant is a merchant location that users browse and order from.
type Restaurant struct {
	ID          uuid.UUID // The unique identifier for the restaurant.
	Name        string    // Display name.
	Description string    // Short marketing description.
	ImageURL    string    // Cover image.
	Rating      float64   // Average rating, 0-5.
	Latitude    float64   // The geographic latitude.
	Longitude   float64   // The geographic longitude.
	CreatedAt   time.Time // Timestamp of when this restaurant was created.
	UpdatedAt   time.Time // Timestamp of the last modification.
}

// MenuItem is a single orderable dish belonging to a restaurant.
type MenuItem struct {
	ID           uuid.UUID // The unique identifier for the menu item.
	RestaurantID uuid.UUID // The restaurant this item belongs to.
	Name         string    // Display name.
	Description  string    // Short description.
	Price        float64   // Unit price.
	ImageURL     string    // Item image.
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
