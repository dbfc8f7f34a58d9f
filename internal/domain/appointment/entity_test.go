package appointment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studio-navalha/agenda-api/internal/httperr"
	"github.com/studio-navalha/agenda-api/internal/models"
)

func confirmed() *models.Appointment {
	return &models.Appointment{Status: string(StatusConfirmed)}
}

func TestCancel(t *testing.T) {
	now := time.Now()

	ap := confirmed()
	require.NoError(t, Cancel(ap, now))
	assert.Equal(t, string(StatusCancelled), ap.Status)
	require.NotNil(t, ap.CancelledAt)
	assert.Equal(t, now, *ap.CancelledAt)

	// cancelling twice is an invalid transition
	err := Cancel(ap, now)
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))
}

func TestComplete(t *testing.T) {
	now := time.Now()

	ap := confirmed()
	require.NoError(t, Complete(ap, now))
	assert.Equal(t, string(StatusCompleted), ap.Status)
	require.NotNil(t, ap.CompletedAt)

	err := MarkNoShow(ap, now)
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))
}

func TestMarkNoShow(t *testing.T) {
	now := time.Now()

	ap := confirmed()
	require.NoError(t, MarkNoShow(ap, now))
	assert.Equal(t, string(StatusNoShow), ap.Status)
	require.NotNil(t, ap.NoShowAt)

	err := Complete(ap, now)
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))
}

func TestTransitionsFromEveryStatus(t *testing.T) {
	for _, status := range []Status{StatusCancelled, StatusCompleted, StatusNoShow} {
		assert.Error(t, CanCancel(status), "cancel from %s", status)
		assert.Error(t, CanComplete(status), "complete from %s", status)
		assert.Error(t, CanMarkNoShow(status), "no-show from %s", status)
	}

	assert.NoError(t, CanCancel(StatusConfirmed))
	assert.NoError(t, CanComplete(StatusConfirmed))
	assert.NoError(t, CanMarkNoShow(StatusConfirmed))
}
