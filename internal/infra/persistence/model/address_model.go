package model

import (
	"time"

	"github.com/google/uuid"
)

// AddressModel is the GORM-specific struct for the 'addresses' table.
// The partial unique index on (user_id) WHERE is_default backs up the
// single-default invariant at the storage level; writers still clear the
// previous default before setting a new one.
type AddressModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	UserID      uuid.UUID `gorm:"not null;index:idx_addresses_on_user"`
	Label       string    `gorm:"type:varchar(100);not null"`
	FullAddress string    `gorm:"type:text;not null"`
	PhoneNumber *string   `gorm:"type:varchar(30)"`
	Latitude    float64   `gorm:"type:decimal(10,8);not null"`
	Longitude   float64   `gorm:"type:decimal(11,8);not null"`
	IsDefault   bool      `gorm:"not null;default:false;uniqueIndex:uniq_addresses_default_per_user,where:is_default"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (AddressModel) TableName() string {
	return "addresses"
}
