package models

// Registration is the input of the registration use case. Password shape and
// strength are validated by the delivery layer before this value reaches the
// service; the service only applies domain rules (email uniqueness).
type Registration struct {
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	Email        string `json:"email"`
	MobileNo     string `json:"mobile_no"`
	PhoneNo      string `json:"phone_no,omitempty"`
	Address      string `json:"address,omitempty"`
	Organization string `json:"organization,omitempty"`
	Password     string `json:"password"`
}

// Account builds the account record to be persisted for this registration.
// The email is normalized and the account is activated immediately; there is
// no email-confirmation gate in the current design.
func (r Registration) Account() Account {
	return Account{
		Email:     NormalizeEmail(r.Email),
		FirstName: r.FirstName,
		LastName:  r.LastName,
		IsActive:  true,
	}
}

// Profile builds the profile record created in the same unit of work as the
// account.
func (r Registration) Profile() Profile {
	return Profile{
		MobileNo:     r.MobileNo,
		PhoneNo:      r.PhoneNo,
		Address:      r.Address,
		Organization: r.Organization,
	}
}
