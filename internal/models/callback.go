package models

// CallbackSubject names the kind of entity a change notification is about.
type CallbackSubject string

const (
	SubjectAddressable      CallbackSubject = "ADDRESSABLE"
	SubjectDevice           CallbackSubject = "DEVICE"
	SubjectProfile          CallbackSubject = "PROFILE"
	SubjectSchedule         CallbackSubject = "SCHEDULE"
	SubjectScheduleEvent    CallbackSubject = "SCHEDULEEVENT"
	SubjectProvisionWatcher CallbackSubject = "PROVISIONWATCHER"
	SubjectService          CallbackSubject = "SERVICE"
)

// CallbackAlert is the JSON envelope delivered to an owning device service
// when a piece of metadata changes. The HTTP verb of the delivery carries
// whether the subject was created, updated or deleted.
type CallbackAlert struct {
	Type CallbackSubject `json:"type" example:"DEVICE"`
	ID   string          `json:"id" example:"aa22666c-0f57-45cb-a449-16efecc04f2e"`
}
