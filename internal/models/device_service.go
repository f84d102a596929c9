package models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
)

// DeviceService is a micro service that manages a set of Devices and receives
// callbacks when the metadata it owns changes. Its Addressable is where those
// callbacks are delivered.
type DeviceService struct {
	Base
	Name           string         `gorm:"uniqueIndex" json:"name" example:"modbus-device-service"`
	Description    string         `json:"description,omitempty"`
	AdminState     AdminState     `json:"adminState" example:"UNLOCKED"`
	OperatingState OperatingState `json:"operatingState" example:"ENABLED"`
	Labels         pq.StringArray `gorm:"type:text[]" json:"labels" swaggertype:"array,string"`
	AddressableID  uuid.UUID      `json:"-"`
	Addressable    *Addressable   `json:"addressable,omitempty"`
	LastConnected  int64          `json:"lastConnected"`
	LastReported   int64          `json:"lastReported"`
	Origin         int64          `json:"origin"`
}

// AddDeviceService is the information needed to register a new DeviceService.
// Addressable must resolve to an existing Addressable.
type AddDeviceService struct {
	Name           string         `json:"name"`
	Description    string         `json:"description"`
	AdminState     AdminState     `json:"adminState"`
	OperatingState OperatingState `json:"operatingState"`
	Labels         []string       `json:"labels"`
	Addressable    EntityRef      `json:"addressable"`
	Origin         int64          `json:"origin"`
}

// UpdateDeviceService carries a partial overlay for an existing
// DeviceService. Nil fields are left untouched.
type UpdateDeviceService struct {
	Name           *string         `json:"name"`
	Description    *string         `json:"description"`
	AdminState     *AdminState     `json:"adminState"`
	OperatingState *OperatingState `json:"operatingState"`
	Labels         []string        `json:"labels"`
	Addressable    *EntityRef      `json:"addressable"`
	LastConnected  *int64          `json:"lastConnected"`
	LastReported   *int64          `json:"lastReported"`
	Origin         *int64          `json:"origin"`
}
