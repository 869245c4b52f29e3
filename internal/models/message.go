package models

// ContactRequestRecord is a pending contact request between two users.
type ContactRequestRecord struct {
	ID              int `json:"id" mapstructure:"id"`
	UserID          int `json:"userid" mapstructure:"userid"`
	RequestedUserID int `json:"requesteduserid" mapstructure:"requesteduserid"`
	TimeCreated     int `json:"timecreated" mapstructure:"timecreated"`
}

// ContactRequest is the response of core_message_create_contact_request. Request is absent when the
// server refused to create it; the reason is in Warnings.
type ContactRequest struct {
	Request  Optional[ContactRequestRecord] `json:"request" mapstructure:"request"`
	Warnings []Warning                      `json:"warnings" mapstructure:"warnings"`
}

func (r ContactRequest) WarningList() []Warning {
	return r.Warnings
}
