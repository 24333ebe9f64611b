package booking

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"divinespark/models"
)

// AttemptRegistry holds in-flight booking attempts in memory. Attempts are
// ephemeral: nothing is persisted, a gateway restart drops them and the
// viewer restarts from idle. At most one non-terminal attempt may exist per
// viewer and session, which is what disables the Book control against rapid
// double confirms.
type AttemptRegistry struct {
	mu       sync.Mutex
	attempts map[string]*models.BookingAttempt
	results  map[string]*models.BookingResult
	// active maps viewerID+"/"+sessionID to the non-terminal attempt id.
	active map[string]string
}

func NewAttemptRegistry() *AttemptRegistry {
	return &AttemptRegistry{
		attempts: make(map[string]*models.BookingAttempt),
		results:  make(map[string]*models.BookingResult),
		active:   make(map[string]string),
	}
}

func activeKey(viewerID, sessionID string) string {
	return viewerID + "/" + sessionID
}

// Begin creates a new attempt in the idle state. It fails when the viewer
// already has a non-terminal attempt for the session; the second confirm
// click is a no-op.
func (r *AttemptRegistry) Begin(viewerID, sessionID string, contact models.ContactInfo) (*models.BookingAttempt, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, busy := r.active[activeKey(viewerID, sessionID)]; busy {
		return nil, NewAttemptInProgressError()
	}

	attempt := &models.BookingAttempt{
		ID:        uuid.New().String(),
		ViewerID:  viewerID,
		SessionID: sessionID,
		State:     models.AttemptIdle,
		Contact:   contact,
		CreatedAt: time.Now(),
	}
	r.attempts[attempt.ID] = attempt
	r.active[activeKey(viewerID, sessionID)] = attempt.ID
	return attempt, nil
}

// Transition moves an attempt to a non-terminal state.
func (r *AttemptRegistry) Transition(attemptID string, state models.AttemptState) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if attempt, ok := r.attempts[attemptID]; ok && !attempt.State.Terminal() {
		attempt.State = state
	}
}

// Finish settles an attempt with its terminal result and frees the
// viewer/session slot so a fresh attempt can start.
func (r *AttemptRegistry) Finish(attemptID string, state models.AttemptState, level, message string) *models.BookingResult {
	r.mu.Lock()
	defer r.mu.Unlock()

	attempt, ok := r.attempts[attemptID]
	if !ok || attempt.State.Terminal() {
		return nil
	}
	attempt.State = state
	delete(r.active, activeKey(attempt.ViewerID, attempt.SessionID))

	result := &models.BookingResult{
		AttemptID: attemptID,
		SessionID: attempt.SessionID,
		State:     state,
		Level:     level,
		Message:   message,
	}
	r.results[attemptID] = result
	return result
}

// Get returns the attempt, or nil when unknown.
func (r *AttemptRegistry) Get(attemptID string) *models.BookingAttempt {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.attempts[attemptID]
}

// TakeResult returns the terminal result once and discards the attempt, per
// the lifecycle: the attempt is gone after the notification is shown.
func (r *AttemptRegistry) TakeResult(attemptID string) *models.BookingResult {
	r.mu.Lock()
	defer r.mu.Unlock()

	result, ok := r.results[attemptID]
	if !ok {
		return nil
	}
	delete(r.results, attemptID)
	delete(r.attempts, attemptID)
	return result
}
