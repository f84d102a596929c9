package models

// Addressable describes a network endpoint another service can be reached
// at, either as protocol://address:port/path or as a pub-sub publisher/topic
// pair.
type Addressable struct {
	Base
	Name      string `gorm:"uniqueIndex" json:"name" example:"camera-feed"`
	Protocol  string `json:"protocol" example:"HTTP"`
	Address   string `json:"address" example:"172.17.0.2"`
	Port      int    `json:"port" example:"49990"`
	Path      string `json:"path" example:"/api/v1/callback"`
	Publisher string `json:"publisher,omitempty"`
	Topic     string `json:"topic,omitempty"`
	User      string `json:"user,omitempty"`
	Password  string `json:"password,omitempty"`
	Origin    int64  `json:"origin"`
}

// AddAddressable is the information needed to register a new Addressable.
type AddAddressable struct {
	Name      string `json:"name"`
	Protocol  string `json:"protocol"`
	Address   string `json:"address"`
	Port      int    `json:"port"`
	Path      string `json:"path"`
	Publisher string `json:"publisher"`
	Topic     string `json:"topic"`
	User      string `json:"user"`
	Password  string `json:"password"`
	Origin    int64  `json:"origin"`
}

// UpdateAddressable carries a partial overlay for an existing Addressable.
// Nil fields are left untouched.
type UpdateAddressable struct {
	Name      *string `json:"name"`
	Protocol  *string `json:"protocol"`
	Address   *string `json:"address"`
	Port      *int    `json:"port"`
	Path      *string `json:"path"`
	Publisher *string `json:"publisher"`
	Topic     *string `json:"topic"`
	User      *string `json:"user"`
	Password  *string `json:"password"`
	Origin    *int64  `json:"origin"`
}
