package kernel_test

import (
	"testing"

	"errand/internal/core/domain/model/kernel"
	"errand/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLocation(t *testing.T) {
	t.Run("valid coordinates", func(t *testing.T) {
		loc, err := kernel.NewLocation(24.7136, 46.6753, "  King Fahd Rd  ")

		require.NoError(t, err)
		require.NoError(t, loc.Validate())
		assert.InDelta(t, 24.7136, loc.Lat(), 1e-9)
		assert.InDelta(t, 46.6753, loc.Lng(), 1e-9)
		assert.Equal(t, "King Fahd Rd", loc.Address())
	})

	t.Run("boundaries are inclusive", func(t *testing.T) {
		_, err := kernel.NewLocation(kernel.LatitudeMax, kernel.LongitudeMin, "")

		require.NoError(t, err)
	})

	testCases := []struct {
		name string
		lat  float64
		lng  float64
	}{
		{"latitude too small", -90.1, 0},
		{"latitude too large", 90.1, 0},
		{"longitude too small", 0, -180.5},
		{"longitude too large", 0, 181},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := kernel.NewLocation(tc.lat, tc.lng, "")

			require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		})
	}
}

func TestLocation_IsEqual(t *testing.T) {
	a, _ := kernel.NewLocation(1, 2, "home")
	b, _ := kernel.NewLocation(1, 2, "home")
	c, _ := kernel.NewLocation(1, 2, "office")

	equal, err := a.IsEqual(b)
	require.NoError(t, err)
	assert.True(t, equal)

	equal, err = a.IsEqual(c)
	require.NoError(t, err)
	assert.False(t, equal)

	_, err = a.IsEqual(kernel.Location{})
	require.ErrorIs(t, err, kernel.ErrLocationIsNotConstructed)
}
