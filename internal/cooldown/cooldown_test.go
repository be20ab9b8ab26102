package cooldown

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRemaining(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	d := 10 * time.Second

	tests := []struct {
		name       string
		lastMs     int64
		wantActive bool
		wantLeft   time.Duration
	}{
		{"never used", 0, false, 0},
		{"just used", now.UnixMilli(), true, 10 * time.Second},
		{"mid cooldown", now.Add(-4 * time.Second).UnixMilli(), true, 6 * time.Second},
		{"exact boundary", now.Add(-10 * time.Second).UnixMilli(), false, 0},
		{"long expired", now.Add(-time.Hour).UnixMilli(), false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			left, active := Remaining(tt.lastMs, d, now)
			assert.Equal(t, tt.wantActive, active)
			assert.Equal(t, tt.wantLeft, left)
		})
	}
}

func TestCeilSeconds(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want int
	}{
		{0, 0},
		{time.Second, 1},
		{1500 * time.Millisecond, 2},
		{9*time.Second + time.Millisecond, 10},
		{10 * time.Second, 10},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, CeilSeconds(tt.d), "%v", tt.d)
	}
}

func TestHoursMinutes(t *testing.T) {
	h, m := HoursMinutes(23*time.Hour + 59*time.Minute + 30*time.Second)
	assert.Equal(t, 23, h)
	assert.Equal(t, 59, m)

	h, m = HoursMinutes(45 * time.Minute)
	assert.Equal(t, 0, h)
	assert.Equal(t, 45, m)
}
