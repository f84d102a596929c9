package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Base is embedded by every catalog entity. The ID is assigned by the store
// on first save and is immutable afterwards.
type Base struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;" json:"id" example:"aa22666c-0f57-45cb-a449-16efecc04f2e"`
	CreatedAt time.Time `json:"created"`
	UpdatedAt time.Time `json:"modified"`
}

func (b *Base) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

// EntityRef names another entity by id or by name. When both are set the id
// wins.
type EntityRef struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name" example:"home-thermostat"`
}

// IsZero reports whether the reference carries neither an id nor a name.
func (r EntityRef) IsZero() bool {
	return r.ID == uuid.Nil && r.Name == ""
}

// AdminState locks an entity against commanding.
type AdminState string

const (
	Locked   AdminState = "LOCKED"
	Unlocked AdminState = "UNLOCKED"
)

// OperatingState reflects whether the entity is functioning.
type OperatingState string

const (
	Enabled  OperatingState = "ENABLED"
	Disabled OperatingState = "DISABLED"
)
