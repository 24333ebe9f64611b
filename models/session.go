package models

import "time"

// Session delivery types as reported by the backend.
const (
	SessionTypeOnline  = "ONLINE"
	SessionTypeOffline = "OFFLINE"
	SessionTypeFree    = "FREE"
	SessionTypePaid    = "PAID"
)

// Session is the canonical projection of a backend session record. The
// backend owns these records; the gateway only normalizes and displays them.
type Session struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`

	GuideName  string `json:"guideName"`
	GuideTitle string `json:"guideTitle"`

	// StartTime/EndTime are nil when the backend sent nothing parseable;
	// display layers render a "Date TBD" placeholder instead.
	StartTime *time.Time `json:"startTime,omitempty"`
	EndTime   *time.Time `json:"endTime,omitempty"`

	Type        string `json:"type"`
	MeetingLink string `json:"meetingLink,omitempty"`

	// Price is in whole currency units (INR). Zero means free.
	Price            float64 `json:"price"`
	MaxAttendees     int     `json:"maxAttendees"`
	CurrentAttendees int     `json:"currentAttendees"`

	Active bool `json:"active"`
}

// IsOnline reports whether the session is delivered remotely. A meeting link
// implies online delivery even when the backend omitted the type.
func (s Session) IsOnline() bool {
	return s.Type == SessionTypeOnline || s.MeetingLink != ""
}

// Availability holds the facts derived from a Session at a given instant.
// These are recomputed from a fresh fetch on every view and never stored.
type Availability struct {
	SpotsLeft           int  `json:"spotsLeft"`
	IsUpcoming          bool `json:"isUpcoming"`
	IsFree              bool `json:"isFree"`
	OpenForRegistration bool `json:"openForRegistration"`
}

// ResolvedSession bundles a canonical session with its derived facts.
type ResolvedSession struct {
	Session      Session      `json:"session"`
	Availability Availability `json:"availability"`
}

// SessionInput carries admin-entered fields for session create/update. It is
// forwarded to the backend as-is (JSON) or as multipart when an image upload
// accompanies it.
type SessionInput struct {
	Title        string  `json:"title" binding:"required"`
	Description  string  `json:"description"`
	Category     string  `json:"category"`
	GuideName    string  `json:"guideName"`
	GuideTitle   string  `json:"guideTitle"`
	StartTime    string  `json:"startTime"`
	EndTime      string  `json:"endTime"`
	Type         string  `json:"type"`
	MeetingLink  string  `json:"meetingLink"`
	Price        float64 `json:"price"`
	MaxAttendees int     `json:"maxAttendees"`
	Active       bool    `json:"active"`
}
