package models

// Schedule is a time window or cron expression that ScheduleEvents attach to
// by name. A Schedule cannot be deleted or renamed while an event still
// references it.
type Schedule struct {
	Base
	Name      string `gorm:"uniqueIndex" json:"name" example:"midday-poll"`
	Start     string `json:"start,omitempty" example:"20260101T000000"`
	End       string `json:"end,omitempty"`
	Frequency string `json:"frequency,omitempty" example:"PT15M"`
	Cron      string `json:"cron,omitempty" example:"0 0 12 * * ?"`
	RunOnce   bool   `json:"runOnce"`
	Origin    int64  `json:"origin"`
}

// AddSchedule is the information needed to register a new Schedule.
type AddSchedule struct {
	Name      string `json:"name"`
	Start     string `json:"start"`
	End       string `json:"end"`
	Frequency string `json:"frequency"`
	Cron      string `json:"cron"`
	RunOnce   bool   `json:"runOnce"`
	Origin    int64  `json:"origin"`
}

// UpdateSchedule carries a partial overlay for an existing Schedule. Nil
// fields are left untouched.
type UpdateSchedule struct {
	Name      *string `json:"name"`
	Start     *string `json:"start"`
	End       *string `json:"end"`
	Frequency *string `json:"frequency"`
	Cron      *string `json:"cron"`
	RunOnce   *bool   `json:"runOnce"`
	Origin    *int64  `json:"origin"`
}
