package booking

import (
	"testing"

	"github.com/stretchr/testify/require"

	"divinespark/models"
)

func TestBeginBlocksDuplicateAttempt(t *testing.T) {
	r := NewAttemptRegistry()

	first, err := r.Begin("v-1", "s-1", models.ContactInfo{})
	require.NoError(t, err)
	require.Equal(t, models.AttemptIdle, first.State)

	_, err = r.Begin("v-1", "s-1", models.ContactInfo{})
	require.Error(t, err)

	// Another session or another viewer is not blocked.
	_, err = r.Begin("v-1", "s-2", models.ContactInfo{})
	require.NoError(t, err)
	_, err = r.Begin("v-2", "s-1", models.ContactInfo{})
	require.NoError(t, err)
}

func TestFinishFreesViewerSessionSlot(t *testing.T) {
	r := NewAttemptRegistry()

	first, err := r.Begin("v-1", "s-1", models.ContactInfo{})
	require.NoError(t, err)
	r.Finish(first.ID, models.AttemptCancelled, "info", MsgPaymentCancelled)

	second, err := r.Begin("v-1", "s-1", models.ContactInfo{})
	require.NoError(t, err)
	require.NotEqual(t, first.ID, second.ID)
}

func TestTransitionIgnoresTerminalAttempts(t *testing.T) {
	r := NewAttemptRegistry()

	attempt, err := r.Begin("v-1", "s-1", models.ContactInfo{})
	require.NoError(t, err)
	r.Finish(attempt.ID, models.AttemptCompleted, "success", MsgFreeBooked)

	r.Transition(attempt.ID, models.AttemptSubmitting)
	require.Equal(t, models.AttemptCompleted, r.Get(attempt.ID).State)

	// A second Finish neither overwrites the result nor produces one.
	require.Nil(t, r.Finish(attempt.ID, models.AttemptFailed, "error", MsgBookingFailed))
	result := r.TakeResult(attempt.ID)
	require.Equal(t, models.AttemptCompleted, result.State)
}

func TestTakeResultDiscardsAttempt(t *testing.T) {
	r := NewAttemptRegistry()

	attempt, err := r.Begin("v-1", "s-1", models.ContactInfo{})
	require.NoError(t, err)
	require.Nil(t, r.TakeResult(attempt.ID))

	r.Finish(attempt.ID, models.AttemptCompleted, "success", MsgFreeBooked)
	require.NotNil(t, r.TakeResult(attempt.ID))
	require.Nil(t, r.TakeResult(attempt.ID))
	require.Nil(t, r.Get(attempt.ID))
}
