package models

import (
	"github.com/google/uuid"
)

// ScheduleEvent binds a Schedule (by name) to an action delivered at an
// Addressable. Service is a weak reference: a bare DeviceService name with no
// existence check at write time.
type ScheduleEvent struct {
	Base
	Name          string       `gorm:"uniqueIndex" json:"name" example:"midday-poll-event"`
	Schedule      string       `json:"schedule" example:"midday-poll"`
	Service       string       `json:"service,omitempty" example:"modbus-device-service"`
	Parameters    string       `json:"parameters,omitempty"`
	AddressableID uuid.UUID    `json:"-"`
	Addressable   *Addressable `json:"addressable,omitempty"`
	Origin        int64        `json:"origin"`
}

// AddScheduleEvent is the information needed to register a new
// ScheduleEvent. Addressable must resolve to an existing Addressable.
type AddScheduleEvent struct {
	Name        string    `json:"name"`
	Schedule    string    `json:"schedule"`
	Service     string    `json:"service"`
	Parameters  string    `json:"parameters"`
	Addressable EntityRef `json:"addressable"`
	Origin      int64     `json:"origin"`
}

// UpdateScheduleEvent carries a partial overlay for an existing
// ScheduleEvent. Nil fields are left untouched.
type UpdateScheduleEvent struct {
	Name        *string    `json:"name"`
	Schedule    *string    `json:"schedule"`
	Service     *string    `json:"service"`
	Parameters  *string    `json:"parameters"`
	Addressable *EntityRef `json:"addressable"`
	Origin      *int64     `json:"origin"`
}
