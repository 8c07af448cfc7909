package kernel_test

import (
	"testing"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToMinutes(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"00:00", 0},
		{"09:00", 540},
		{"9:00", 540},
		{"14:00", 840},
		{"17:30", 1050},
		{"23:59", 1439},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := kernel.ToMinutes(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseTimeOfDay_Malformed(t *testing.T) {
	for _, in := range []string{"", "14", "14:0", "14:000", "ab:cd", "+9:00", "24:00", "12:60", "-1:30", "123:00"} {
		t.Run(in, func(t *testing.T) {
			_, err := kernel.ParseTimeOfDay(in)
			require.Error(t, err)
		})
	}

	_, err := kernel.ParseTimeOfDay("25:00")
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
}

func TestTimeOfDay(t *testing.T) {
	early, err := kernel.NewTimeOfDay(9, 5)
	require.NoError(t, err)
	late, err := kernel.ParseTimeOfDay("17:00")
	require.NoError(t, err)

	assert.Equal(t, "09:05", early.String())
	assert.True(t, early.Before(late))
	assert.False(t, late.Before(early))
	assert.False(t, early.Before(early))

	var zero kernel.TimeOfDay
	assert.ErrorIs(t, zero.Validate(), kernel.ErrTimeOfDayIsNotConstructed)

	midnight, err := kernel.NewTimeOfDay(0, 0)
	require.NoError(t, err)
	assert.NoError(t, midnight.Validate())
}
