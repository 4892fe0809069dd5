package domain

import "time"

// Profile holds the editable user profile fields.
type Profile struct {
	OwnerID     string
	Email       string
	DisplayName string
	Phone       string
	Location    string
	UpdatedAt   time.Time
}

// ProfileUpdate carries a partial profile edit; nil fields are left as-is.
type ProfileUpdate struct {
	DisplayName *string
	Phone       *string
	Location    *string
}

// Empty reports whether the update carries no fields at all.
func (u ProfileUpdate) Empty() bool {
	return u.DisplayName == nil && u.Phone == nil && u.Location == nil
}
