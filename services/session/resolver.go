package session

import (
	"strconv"
	"strings"
	"time"

	"divinespark/models"
	"divinespark/upstream"
)

// Fallback defaults applied when no candidate key yields a value.
const (
	defaultTitle    = "Untitled Session"
	defaultGuide    = "Unknown Guide"
	defaultCategory = "General"
)

// Candidate source keys per canonical field, consulted in order. Backend
// versions drifted on field names; the first present, non-null value wins.
// Canonical names lead their lists so that resolving an already-canonical
// record is a no-op.
var (
	idKeys          = []string{"id", "sessionId", "_id"}
	titleKeys       = []string{"title", "name"}
	descriptionKeys = []string{"description", "details"}
	guideNameKeys   = []string{"guideName", "host.name", "guide"}
	guideTitleKeys  = []string{"guideTitle", "host.title"}
	categoryKeys    = []string{"category", "categoryName"}
	startTimeKeys   = []string{"startTime", "startDate", "date", "start"}
	endTimeKeys     = []string{"endTime", "endDate", "end"}
	typeKeys        = []string{"type", "mode"}
	meetingLinkKeys = []string{"meetingLink", "zoomLink"}
	priceKeys       = []string{"price", "amount"}
	maxKeys         = []string{"maxAttendees", "capacity"}
	currentKeys     = []string{"currentAttendees", "registeredCount"}
	activeKeys      = []string{"active", "isActive"}
)

// Accepted temporal layouts, tried in order.
var timeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// Resolve converts an arbitrary backend record into a canonical session plus
// its derived availability facts. It is a pure transform over the record and
// the supplied instant; missing optional fields never raise an error.
func Resolve(raw upstream.RawSession, now time.Time) models.ResolvedSession {
	s := Normalize(raw)
	return models.ResolvedSession{
		Session:      s,
		Availability: Derive(s, now),
	}
}

// Normalize applies the ordered fallback-key policy to every canonical field.
func Normalize(raw upstream.RawSession) models.Session {
	s := models.Session{
		ID:               stringField(raw, idKeys, ""),
		Title:            stringField(raw, titleKeys, defaultTitle),
		Description:      stringField(raw, descriptionKeys, ""),
		Category:         stringField(raw, categoryKeys, defaultCategory),
		GuideName:        stringField(raw, guideNameKeys, defaultGuide),
		GuideTitle:       stringField(raw, guideTitleKeys, ""),
		StartTime:        timeField(raw, startTimeKeys),
		EndTime:          timeField(raw, endTimeKeys),
		MeetingLink:      stringField(raw, meetingLinkKeys, ""),
		Price:            numberField(raw, priceKeys),
		MaxAttendees:     intField(raw, maxKeys),
		CurrentAttendees: intField(raw, currentKeys),
		Active:           boolField(raw, activeKeys),
	}

	s.Type = stringField(raw, typeKeys, "")
	if s.Type == "" {
		// Delivery type absent: derive the online/offline flag from the
		// presence of a meeting link.
		if s.MeetingLink != "" {
			s.Type = models.SessionTypeOnline
		} else {
			s.Type = models.SessionTypeOffline
		}
	}
	return s
}

// Derive computes the availability facts for a session at the given instant.
// A session with no parseable start time counts as upcoming ("date to be
// determined"), never as expired.
func Derive(s models.Session, now time.Time) models.Availability {
	spotsLeft := s.MaxAttendees - s.CurrentAttendees
	if spotsLeft < 0 {
		spotsLeft = 0
	}
	isUpcoming := s.StartTime == nil || !s.StartTime.Before(now)
	isFree := s.Price == 0
	return models.Availability{
		SpotsLeft:           spotsLeft,
		IsUpcoming:          isUpcoming,
		IsFree:              isFree,
		OpenForRegistration: s.Active && isUpcoming && spotsLeft > 0,
	}
}

// lookup walks a dotted candidate path ("host.name") through nested maps.
func lookup(raw upstream.RawSession, path string) (any, bool) {
	parts := strings.Split(path, ".")
	var current any = map[string]any(raw)
	for _, part := range parts {
		m, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}
		current, ok = m[part]
		if !ok || current == nil {
			return nil, false
		}
	}
	return current, true
}

func stringField(raw upstream.RawSession, candidates []string, fallback string) string {
	for _, key := range candidates {
		if v, ok := lookup(raw, key); ok {
			if s, ok := v.(string); ok && s != "" {
				return s
			}
		}
	}
	return fallback
}

// numberField coerces the first present candidate to a number. Non-numeric
// or missing values default to 0.
func numberField(raw upstream.RawSession, candidates []string) float64 {
	for _, key := range candidates {
		v, ok := lookup(raw, key)
		if !ok {
			continue
		}
		switch n := v.(type) {
		case float64:
			return n
		case float32:
			return float64(n)
		case int:
			return float64(n)
		case int64:
			return float64(n)
		case string:
			if parsed, err := strconv.ParseFloat(strings.TrimSpace(n), 64); err == nil {
				return parsed
			}
		}
	}
	return 0
}

func intField(raw upstream.RawSession, candidates []string) int {
	return int(numberField(raw, candidates))
}

// boolField resolves the active flag. A textual lifecycle status counts as
// active only when it reads "ACTIVE"; with nothing present the record is
// assumed active, matching the backend's default.
func boolField(raw upstream.RawSession, candidates []string) bool {
	for _, key := range candidates {
		if v, ok := lookup(raw, key); ok {
			if b, ok := v.(bool); ok {
				return b
			}
		}
	}
	if v, ok := lookup(raw, "status"); ok {
		if s, ok := v.(string); ok {
			return strings.EqualFold(s, "ACTIVE")
		}
	}
	return true
}

// timeField parses the first present candidate into a timestamp. Unparseable
// or missing values resolve to nil, not an error; the display layer renders
// a "TBD" placeholder for those.
func timeField(raw upstream.RawSession, candidates []string) *time.Time {
	for _, key := range candidates {
		v, ok := lookup(raw, key)
		if !ok {
			continue
		}
		switch t := v.(type) {
		case time.Time:
			return &t
		case string:
			for _, layout := range timeLayouts {
				if parsed, err := time.Parse(layout, t); err == nil {
					return &parsed
				}
			}
		}
	}
	return nil
}
