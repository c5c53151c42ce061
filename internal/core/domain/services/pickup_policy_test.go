package services_test

import (
	"testing"
	"time"

	"errand/internal/core/domain/services"
	"errand/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const day = 24 * time.Hour

func TestPickupPolicy_DaysLeft(t *testing.T) {
	policy := services.DefaultPickupPolicy()
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	testCases := []struct {
		name    string
		elapsed time.Duration
		want    int
	}{
		{"one day", day, 6},
		{"three days", 3 * day, 4},
		{"three and a half days", 3*day + 12*time.Hour, 4},
		{"six days", 6 * day, 1},
		{"six days 23 hours", 6*day + 23*time.Hour, 1},
		{"past expiry", 9 * day, 1},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, policy.DaysLeft(now.Add(-tc.elapsed), now))
		})
	}
}

func TestPickupPolicy_Classify(t *testing.T) {
	policy := services.DefaultPickupPolicy()
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	testCases := []struct {
		name    string
		elapsed time.Duration
		want    services.PickupAction
	}{
		{"just completed", time.Hour, services.PickupWait},
		{"remind boundary", day, services.PickupRemind},
		{"three days", 3 * day, services.PickupRemind},
		{"six days 23 hours", 6*day + 23*time.Hour, services.PickupRemind},
		{"expiry boundary", 7 * day, services.PickupExpire},
		{"eight days", 8 * day, services.PickupExpire},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, policy.Classify(now.Add(-tc.elapsed), now))
		})
	}
}

func TestPickupPolicy_Thresholds(t *testing.T) {
	policy := services.DefaultPickupPolicy()
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	assert.Equal(t, now.Add(-7*day), policy.ExpiryThreshold(now))
	assert.Equal(t, now.Add(-day), policy.ReminderThreshold(now))
}

func TestNewPickupPolicy(t *testing.T) {
	policy, err := services.NewPickupPolicy(12*time.Hour, 3*day)
	require.NoError(t, err)
	assert.Equal(t, 12*time.Hour, policy.RemindAfter())
	assert.Equal(t, 3*day, policy.ExpireAfter())
	assert.Equal(t, 3, policy.DaysLeft(time.Now(), time.Now()))

	_, err = services.NewPickupPolicy(0, day)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	_, err = services.NewPickupPolicy(day, day)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
