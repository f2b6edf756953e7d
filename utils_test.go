package jukebox_test

import (
	"testing"
	"time"

	"github.com/sagarc03/jukebox"
	"github.com/stretchr/testify/assert"
)

func TestFormatTime(t *testing.T) {
	tt := []struct {
		Name     string
		Duration time.Duration
		Want     string
	}{
		{Name: "zero", Duration: 0, Want: "00:00"},
		{Name: "seconds", Duration: 9 * time.Second, Want: "00:09"},
		{Name: "rounds down", Duration: 61400 * time.Millisecond, Want: "01:01"},
		{Name: "rounds up", Duration: 61500 * time.Millisecond, Want: "01:02"},
		{Name: "five minutes", Duration: 5 * time.Minute, Want: "05:00"},
		{Name: "hours", Duration: time.Hour + 2*time.Minute + 3*time.Second, Want: "1:02:03"},
		{Name: "long", Duration: 12 * time.Hour, Want: "12:00:00"},
		{Name: "live", Duration: jukebox.Live, Want: "LIVE"},
	}

	for _, tc := range tt {
		t.Run(tc.Name, func(t *testing.T) {
			assert.Equal(t, tc.Want, jukebox.FormatTime(tc.Duration))
		})
	}
}
