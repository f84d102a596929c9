package models

import (
	"github.com/lib/pq"
)

// DeviceReport names the value descriptors a Device is expected to report
// when a ScheduleEvent fires. Device and Event are name references.
type DeviceReport struct {
	Base
	Name     string         `gorm:"uniqueIndex" json:"name" example:"thermostat-report"`
	Device   string         `json:"device" example:"living-room-thermostat"`
	Event    string         `json:"event" example:"midday-poll-event"`
	Expected pq.StringArray `gorm:"type:text[]" json:"expected" swaggertype:"array,string"`
	Origin   int64          `json:"origin"`
}

// AddDeviceReport is the information needed to register a new DeviceReport.
// Device and Event must name existing entities.
type AddDeviceReport struct {
	Name     string   `json:"name"`
	Device   string   `json:"device"`
	Event    string   `json:"event"`
	Expected []string `json:"expected"`
	Origin   int64    `json:"origin"`
}

// UpdateDeviceReport carries a partial overlay for an existing DeviceReport.
// Nil fields are left untouched.
type UpdateDeviceReport struct {
	Name     *string  `json:"name"`
	Device   *string  `json:"device"`
	Event    *string  `json:"event"`
	Expected []string `json:"expected"`
	Origin   *int64   `json:"origin"`
}
