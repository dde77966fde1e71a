package models

// Profile holds optional extension attributes attached one-to-one to an
// Account. It is created in the same unit of work as its owning account and
// destroyed only when the account is destroyed.
type Profile struct {
	// ProfileID is the internal identifier of the profile row.
	ProfileID int64 `json:"-"`

	// AccountID references the owning account. Exactly one profile may
	// exist per account (unique foreign key, cascade on delete).
	AccountID int64 `json:"-"`

	// MobileNo is the only required contact field.
	MobileNo string `json:"mobile_no"`

	// PhoneNo, Address and Organization are free-text and optional.
	PhoneNo      string `json:"phone_no,omitempty"`
	Address      string `json:"address,omitempty"`
	Organization string `json:"organization,omitempty"`
}

// TableName returns the name of the database table
// associated with the Profile model.
func (p Profile) TableName() string {
	return "profiles"
}

// ProfileUpdate describes a partial update of a profile. Nil fields are left
// untouched; non-nil fields overwrite the stored value (an empty string
// clears it).
type ProfileUpdate struct {
	MobileNo     *string `json:"mobile_no,omitempty"`
	PhoneNo      *string `json:"phone_no,omitempty"`
	Address      *string `json:"address,omitempty"`
	Organization *string `json:"organization,omitempty"`
}

// IsZero reports whether the update carries no fields at all.
func (u ProfileUpdate) IsZero() bool {
	return u.MobileNo == nil && u.PhoneNo == nil && u.Address == nil && u.Organization == nil
}
