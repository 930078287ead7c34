// Package tuning locks onto the communication device's signal by finding
// the first run of distinct characters in a datastream.
package tuning

import (
	"errors"
	"fmt"
	"math/bits"
)

// Marker windows used by the device.
const (
	PacketWindow  = 4
	MessageWindow = 14
)

var (
	// ErrBadWindow is returned for a window outside 1..26.
	ErrBadWindow = errors.New("tuning: window must be between 1 and 26")
	// ErrBadSymbol is returned for a byte that is not a lowercase ASCII letter.
	ErrBadSymbol = errors.New("tuning: datastream must be lowercase letters")
	// ErrNoMarker is returned when no window of distinct characters exists.
	ErrNoMarker = errors.New("tuning: no marker found")
)

// Detect returns the number of characters processed when the first window
// of `window` pairwise distinct letters ends. Each window is folded into a
// 26-bit mask; the window is distinct when the mask has `window` bits set.
func Detect(signal string, window int) (int, error) {
	if window < 1 || window > 26 {
		return 0, fmt.Errorf("%w: %d", ErrBadWindow, window)
	}
	for i := 0; i < len(signal); i++ {
		if c := signal[i]; c < 'a' || c > 'z' {
			return 0, fmt.Errorf("%w: %q at %d", ErrBadSymbol, c, i)
		}
	}
	for end := window; end <= len(signal); end++ {
		if bits.OnesCount32(mask(signal[end-window:end])) == window {
			return end, nil
		}
	}

	return 0, fmt.Errorf("%w: window %d over %d characters", ErrNoMarker, window, len(signal))
}

func mask(s string) uint32 {
	var m uint32
	for i := 0; i < len(s); i++ {
		m |= 1 << (s[i] - 'a')
	}
	return m
}
