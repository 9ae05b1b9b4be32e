package timecodec

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"runpace/internal/failure"
)

func TestParseToSeconds(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"", 0},
		{"0", 0},
		{"1:00", 60},
		{"1:01", 61},
		{"0:59:59", 3599},
		{"1:00:00", 3600},
		{"70:00", 4200},      // minutes overflow is not normalized
		{"1:120:00", 10800},  // 1h + 120min
		{"4200", 4200},       // single segment is plain seconds
		{"0:0:90", 90},       // seconds overflow
		{" 5:00 ", 300},      // surrounding whitespace
		{"2:1:00:00", 10800}, // extra leading segment is added to the hours
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseToSeconds(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseToSeconds_Invalid(t *testing.T) {
	inputs := []string{
		"::00", "weer24", "1,45,11", "1:ab", "1.5", ":", "1:",
		"9999999999999999:00",
		"99999999999999999999",
		"1000000:00:00",
		"-1000000:00:00",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			_, err := ParseToSeconds(input)
			require.Error(t, err)
			assert.ErrorIs(t, err, failure.ErrParse)
		})
	}
}

func TestParseToSecondsPtr(t *testing.T) {
	got, err := ParseToSecondsPtr(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, got)

	s := "2:30"
	got, err = ParseToSecondsPtr(&s)
	require.NoError(t, err)
	assert.Equal(t, 150, got)
}

func TestFormatSeconds(t *testing.T) {
	tests := []struct {
		seconds int
		want    string
	}{
		{-5, "0"},
		{0, "0"},
		{5, "5"},
		{59, "59"},
		{60, "1:00"},
		{61, "1:01"},
		{327, "5:27"},
		{3000, "50:00"},
		{3599, "59:59"},
		{3600, "1:00:00"},
		{3661, "1:01:01"},
		{36000, "10:00:00"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatSeconds(tt.seconds))
		})
	}
}

func TestFormatParseRoundTrip(t *testing.T) {
	for _, seconds := range []int{1, 59, 60, 599, 3599, 3600, 5025, 86399} {
		got, err := ParseToSeconds(FormatSeconds(seconds))
		require.NoError(t, err)
		assert.Equal(t, seconds, got)
	}
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "1:30", FormatDuration(90*time.Second+400*time.Millisecond))
	assert.Equal(t, "0", FormatDuration(0))
}
