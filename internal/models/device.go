package models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Device is a managed piece of hardware or a sensor. It must reference an
// existing Addressable, DeviceService and DeviceProfile; all three are
// validated at write time.
type Device struct {
	Base
	Name           string         `gorm:"uniqueIndex" json:"name" example:"living-room-thermostat"`
	Description    string         `json:"description,omitempty"`
	AdminState     AdminState     `json:"adminState" example:"UNLOCKED"`
	OperatingState OperatingState `json:"operatingState" example:"ENABLED"`
	Labels         pq.StringArray `gorm:"type:text[]" json:"labels" swaggertype:"array,string"`
	AddressableID  uuid.UUID      `json:"-"`
	Addressable    *Addressable   `json:"addressable,omitempty"`
	ServiceID      uuid.UUID      `json:"-"`
	Service        *DeviceService `json:"service,omitempty"`
	ProfileID      uuid.UUID      `json:"-"`
	Profile        *DeviceProfile `json:"profile,omitempty"`
	LastConnected  int64          `json:"lastConnected"`
	LastReported   int64          `json:"lastReported"`
	Origin         int64          `json:"origin"`
}

// AddDevice is the information needed to register a new Device. Addressable,
// Service and Profile must all resolve to existing entities.
type AddDevice struct {
	Name           string         `json:"name"`
	Description    string         `json:"description"`
	AdminState     AdminState     `json:"adminState"`
	OperatingState OperatingState `json:"operatingState"`
	Labels         []string       `json:"labels"`
	Addressable    EntityRef      `json:"addressable"`
	Service        EntityRef      `json:"service"`
	Profile        EntityRef      `json:"profile"`
	Origin         int64          `json:"origin"`
}

// UpdateDevice carries a partial overlay for an existing Device. Nil fields
// are left untouched.
type UpdateDevice struct {
	Name           *string         `json:"name"`
	Description    *string         `json:"description"`
	AdminState     *AdminState     `json:"adminState"`
	OperatingState *OperatingState `json:"operatingState"`
	Labels         []string        `json:"labels"`
	Addressable    *EntityRef      `json:"addressable"`
	Service        *EntityRef      `json:"service"`
	Profile        *EntityRef      `json:"profile"`
	LastConnected  *int64          `json:"lastConnected"`
	LastReported   *int64          `json:"lastReported"`
	Origin         *int64          `json:"origin"`
}
