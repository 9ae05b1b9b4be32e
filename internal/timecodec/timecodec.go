// Package timecodec converts between "h:mm:ss" style text and whole seconds.
package timecodec

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"runpace/internal/failure"
)

const (
	secondsPerMinute = 60
	secondsPerHour   = 3600
)

// segmentWeights holds the multiplier for each segment counted from the right.
// Segments left of the hours place are still counted as hours.
var segmentWeights = []int{1, secondsPerMinute, secondsPerHour}

// ParseToSeconds parses "h:mm:ss", "mm:ss" or "ss" into seconds.
//
// Parsing is permissive: segments are not range checked, so "70:00" is 4200
// and "1:120:00" is 10800. Empty input yields 0. Results beyond the int32
// range are rejected.
func ParseToSeconds(text string) (int, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0, nil
	}

	segments := strings.Split(text, ":")
	var total int64
	for i := len(segments) - 1; i >= 0; i-- {
		seg := strings.TrimSpace(segments[i])
		value, err := strconv.ParseInt(seg, 10, 32)
		if errors.Is(err, strconv.ErrRange) {
			return 0, failure.Parse("Invalid time", err, "%q is out of range", text)
		}
		if err != nil {
			return 0, failure.Parse("Invalid time", err, "%q is not a valid time (segment %q is not a whole number)", text, seg)
		}

		pos := len(segments) - 1 - i
		weight := segmentWeights[len(segmentWeights)-1]
		if pos < len(segmentWeights) {
			weight = segmentWeights[pos]
		}
		total += value * int64(weight)
		if total > math.MaxInt32 || total < math.MinInt32 {
			return 0, failure.Parse("Invalid time", nil, "%q is out of range", text)
		}
	}

	return int(total), nil
}

// ParseToSecondsPtr is ParseToSeconds for optional input; nil yields 0.
func ParseToSecondsPtr(text *string) (int, error) {
	if text == nil {
		return 0, nil
	}
	return ParseToSeconds(*text)
}

// FormatSeconds renders seconds as "h:mm:ss", "m:ss" or bare seconds.
// Non-positive input renders as "0".
func FormatSeconds(seconds int) string {
	if seconds <= 0 {
		return "0"
	}

	hours := seconds / secondsPerHour
	minutes := (seconds % secondsPerHour) / secondsPerMinute
	secs := seconds % secondsPerMinute

	switch {
	case hours > 0:
		return fmt.Sprintf("%d:%02d:%02d", hours, minutes, secs)
	case minutes > 0:
		return fmt.Sprintf("%d:%02d", minutes, secs)
	default:
		return strconv.Itoa(secs)
	}
}

// FormatDuration formats d truncated to whole seconds
func FormatDuration(d time.Duration) string {
	return FormatSeconds(int(d / time.Second))
}
