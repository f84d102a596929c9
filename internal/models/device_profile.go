package models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
)

// DeviceProfile is a template describing a kind of device: its make, model
// and the Commands it answers to. Commands are owned by the profile and are
// removed with it.
type DeviceProfile struct {
	Base
	Name         string         `gorm:"uniqueIndex" json:"name" example:"thermostat-profile"`
	Description  string         `json:"description,omitempty"`
	Manufacturer string         `json:"manufacturer" example:"Acme"`
	Model        string         `json:"model" example:"TH-2000"`
	Labels       pq.StringArray `gorm:"type:text[]" json:"labels" swaggertype:"array,string"`
	Commands     []Command      `gorm:"foreignKey:ProfileID" json:"commands"`
	Origin       int64          `json:"origin"`
}

// Command is a named get/put action pair. Its name is unique among the
// commands of the profile that owns it, but may repeat across profiles.
type Command struct {
	Base
	ProfileID uuid.UUID `json:"-"`
	Name      string    `json:"name" example:"Temperature"`
	Get       *Action   `gorm:"type:JSONB; serializer:json" json:"get,omitempty"`
	Put       *Action   `gorm:"type:JSONB; serializer:json" json:"put,omitempty"`
	Origin    int64     `json:"origin"`
}

// Action is one side of a Command: the path to hit and the responses the
// device service may answer with.
type Action struct {
	Path           string     `json:"path" example:"/api/v1/device/{deviceId}/temperature"`
	Responses      []Response `json:"responses,omitempty"`
	ParameterNames []string   `json:"parameterNames,omitempty"`
}

// Response is one expected outcome of an Action.
type Response struct {
	Code           string   `json:"code" example:"200"`
	Description    string   `json:"description,omitempty"`
	ExpectedValues []string `json:"expectedValues,omitempty"`
}

// AddDeviceProfile is the information needed to register a new DeviceProfile
// together with its owned commands.
type AddDeviceProfile struct {
	Name         string       `json:"name"`
	Description  string       `json:"description"`
	Manufacturer string       `json:"manufacturer"`
	Model        string       `json:"model"`
	Labels       []string     `json:"labels"`
	Commands     []AddCommand `json:"commands"`
	Origin       int64        `json:"origin"`
}

// AddCommand is one command carried inside an AddDeviceProfile payload.
type AddCommand struct {
	Name   string  `json:"name"`
	Get    *Action `json:"get"`
	Put    *Action `json:"put"`
	Origin int64   `json:"origin"`
}

// UpdateDeviceProfile carries a partial overlay for an existing
// DeviceProfile. Nil fields are left untouched; a non-nil Commands list
// replaces the owned command set wholesale.
type UpdateDeviceProfile struct {
	Name         *string      `json:"name"`
	Description  *string      `json:"description"`
	Manufacturer *string      `json:"manufacturer"`
	Model        *string      `json:"model"`
	Labels       []string     `json:"labels"`
	Commands     []AddCommand `json:"commands"`
	Origin       *int64       `json:"origin"`
}
