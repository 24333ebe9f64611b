package session

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"divinespark/models"
	"divinespark/upstream"
)

var testNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func TestDeriveSpotsLeftNeverNegative(t *testing.T) {
	cases := []struct {
		max, current, want int
	}{
		{10, 3, 7},
		{10, 10, 0},
		{5, 9, 0},
		{0, 0, 0},
	}
	for _, tc := range cases {
		facts := Derive(models.Session{MaxAttendees: tc.max, CurrentAttendees: tc.current, Active: true}, testNow)
		require.Equal(t, tc.want, facts.SpotsLeft)
		require.GreaterOrEqual(t, facts.SpotsLeft, 0)
	}
}

func TestDeriveIsUpcoming(t *testing.T) {
	past := testNow.Add(-time.Hour)
	future := testNow.Add(time.Hour)

	require.False(t, Derive(models.Session{StartTime: &past}, testNow).IsUpcoming)
	require.True(t, Derive(models.Session{StartTime: &future}, testNow).IsUpcoming)
	// No start time means "date to be determined", which counts as upcoming.
	require.True(t, Derive(models.Session{}, testNow).IsUpcoming)
}

func TestDeriveIsFree(t *testing.T) {
	require.True(t, Derive(models.Session{Price: 0}, testNow).IsFree)
	require.False(t, Derive(models.Session{Price: 500}, testNow).IsFree)
}

func TestDeriveOpenForRegistration(t *testing.T) {
	future := testNow.Add(time.Hour)
	past := testNow.Add(-time.Hour)

	cases := []struct {
		name string
		sess models.Session
		want bool
	}{
		{"open", models.Session{Active: true, StartTime: &future, MaxAttendees: 10, CurrentAttendees: 2}, true},
		{"inactive", models.Session{Active: false, StartTime: &future, MaxAttendees: 10, CurrentAttendees: 2}, false},
		{"expired", models.Session{Active: true, StartTime: &past, MaxAttendees: 10, CurrentAttendees: 2}, false},
		{"full", models.Session{Active: true, StartTime: &future, MaxAttendees: 10, CurrentAttendees: 10}, false},
		{"no start time", models.Session{Active: true, MaxAttendees: 10, CurrentAttendees: 2}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			facts := Derive(tc.sess, testNow)
			require.Equal(t, tc.want, facts.OpenForRegistration)
			if facts.OpenForRegistration {
				require.True(t, tc.sess.Active)
				require.True(t, facts.IsUpcoming)
				require.Greater(t, facts.SpotsLeft, 0)
			}
		})
	}
}

func TestNormalizeFallbackKeys(t *testing.T) {
	raw := upstream.RawSession{
		"sessionId":       "s-42",
		"name":            "Evening Healing Circle",
		"capacity":        float64(20),
		"registeredCount": float64(5),
		"zoomLink":        "https://zoom.example/j/1",
		"host":            map[string]any{"name": "Asha Rao", "title": "Senior Guide"},
		"amount":          float64(500),
		"isActive":        true,
	}
	s := Normalize(raw)

	require.Equal(t, "s-42", s.ID)
	require.Equal(t, "Evening Healing Circle", s.Title)
	require.Equal(t, 20, s.MaxAttendees)
	require.Equal(t, 5, s.CurrentAttendees)
	require.Equal(t, "Asha Rao", s.GuideName)
	require.Equal(t, "Senior Guide", s.GuideTitle)
	require.Equal(t, 500.0, s.Price)
	require.True(t, s.Active)
	// No explicit type: a meeting link implies online delivery.
	require.Equal(t, models.SessionTypeOnline, s.Type)
	require.True(t, s.IsOnline())
}

func TestNormalizeDefaults(t *testing.T) {
	s := Normalize(upstream.RawSession{})

	require.Equal(t, "Untitled Session", s.Title)
	require.Equal(t, "Unknown Guide", s.GuideName)
	require.Equal(t, "General", s.Category)
	require.Equal(t, models.SessionTypeOffline, s.Type)
	require.Nil(t, s.StartTime)
	require.Nil(t, s.EndTime)
	require.Zero(t, s.Price)
	require.Zero(t, s.MaxAttendees)
	// Absent lifecycle flags mean the record is live.
	require.True(t, s.Active)
}

func TestNormalizeStatusString(t *testing.T) {
	require.True(t, Normalize(upstream.RawSession{"status": "ACTIVE"}).Active)
	require.True(t, Normalize(upstream.RawSession{"status": "active"}).Active)
	require.False(t, Normalize(upstream.RawSession{"status": "DRAFT"}).Active)
	// An explicit boolean wins over the status string.
	require.False(t, Normalize(upstream.RawSession{"active": false, "status": "ACTIVE"}).Active)
}

func TestNormalizeNumericCoercion(t *testing.T) {
	s := Normalize(upstream.RawSession{
		"price":            "750.50",
		"maxAttendees":     "30",
		"currentAttendees": "not-a-number",
	})
	require.Equal(t, 750.50, s.Price)
	require.Equal(t, 30, s.MaxAttendees)
	require.Equal(t, 0, s.CurrentAttendees)
}

func TestNormalizeMalformedStartTime(t *testing.T) {
	require.NotPanics(t, func() {
		s := Normalize(upstream.RawSession{"startTime": "not-a-date"})
		require.Nil(t, s.StartTime)

		facts := Derive(s, testNow)
		require.True(t, facts.IsUpcoming)
	})
}

func TestNormalizeTimeLayouts(t *testing.T) {
	cases := map[string]string{
		"rfc3339":   "2026-04-01T18:30:00Z",
		"no zone":   "2026-04-01T18:30:00",
		"space sep": "2026-04-01 18:30:00",
		"date only": "2026-04-01",
	}
	for name, value := range cases {
		t.Run(name, func(t *testing.T) {
			s := Normalize(upstream.RawSession{"startTime": value})
			require.NotNil(t, s.StartTime)
			require.Equal(t, 2026, s.StartTime.Year())
			require.Equal(t, time.April, s.StartTime.Month())
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	raw := upstream.RawSession{
		"sessionId": "s-7",
		"name":      "Morning Breathwork",
		"startDate": "2026-04-01T07:00:00Z",
		"capacity":  float64(12),
		"amount":    float64(300),
		"mode":      "OFFLINE",
	}
	first := Normalize(raw)

	// Round-trip the canonical form the way it travels: JSON.
	data, err := json.Marshal(first)
	require.NoError(t, err)
	var roundTripped upstream.RawSession
	require.NoError(t, json.Unmarshal(data, &roundTripped))

	second := Normalize(roundTripped)
	require.Equal(t, first.ID, second.ID)
	require.Equal(t, first.Title, second.Title)
	require.Equal(t, first.Category, second.Category)
	require.Equal(t, first.GuideName, second.GuideName)
	require.Equal(t, first.Type, second.Type)
	require.Equal(t, first.Price, second.Price)
	require.Equal(t, first.MaxAttendees, second.MaxAttendees)
	require.Equal(t, first.CurrentAttendees, second.CurrentAttendees)
	require.Equal(t, first.Active, second.Active)
	require.NotNil(t, second.StartTime)
	require.True(t, first.StartTime.Equal(*second.StartTime))
}

func TestResolveFullSessionScenario(t *testing.T) {
	resolved := Resolve(upstream.RawSession{
		"id":               "s-full",
		"title":            "Sound Bath",
		"price":            float64(0),
		"maxAttendees":     float64(10),
		"currentAttendees": float64(10),
		"active":           true,
	}, testNow)

	require.Equal(t, 0, resolved.Availability.SpotsLeft)
	require.True(t, resolved.Availability.IsFree)
	require.False(t, resolved.Availability.OpenForRegistration)
}
