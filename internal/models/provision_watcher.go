package models

import (
	"github.com/google/uuid"
)

// ProvisionWatcher tells a DeviceService to auto-provision devices whose
// discovery identifiers match. Profile and Service must resolve to existing
// entities at write time.
type ProvisionWatcher struct {
	Base
	Name           string            `gorm:"uniqueIndex" json:"name" example:"bacnet-watcher"`
	Identifiers    map[string]string `gorm:"type:JSONB; serializer:json" json:"identifiers"`
	ProfileID      uuid.UUID         `json:"-"`
	Profile        *DeviceProfile    `json:"profile,omitempty"`
	ServiceID      uuid.UUID         `json:"-"`
	Service        *DeviceService    `json:"service,omitempty"`
	OperatingState OperatingState    `json:"operatingState" example:"ENABLED"`
	Origin         int64             `json:"origin"`
}

// AddProvisionWatcher is the information needed to register a new
// ProvisionWatcher.
type AddProvisionWatcher struct {
	Name           string            `json:"name"`
	Identifiers    map[string]string `json:"identifiers"`
	Profile        EntityRef         `json:"profile"`
	Service        EntityRef         `json:"service"`
	OperatingState OperatingState    `json:"operatingState"`
	Origin         int64             `json:"origin"`
}

// UpdateProvisionWatcher carries a partial overlay for an existing
// ProvisionWatcher. Nil fields are left untouched.
type UpdateProvisionWatcher struct {
	Name           *string           `json:"name"`
	Identifiers    map[string]string `json:"identifiers"`
	Profile        *EntityRef        `json:"profile"`
	Service        *EntityRef        `json:"service"`
	OperatingState *OperatingState   `json:"operatingState"`
	Origin         *int64            `json:"origin"`
}
