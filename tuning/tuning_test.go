package tuning_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ArjenL/AoC2022/tuning"
)

func TestDetect_Samples(t *testing.T) {
	cases := []struct {
		signal          string
		packet, message int
	}{
		{"mjqjpqmgbljsphdztnvjfqwrcgsmlb", 7, 19},
		{"bvwbjplbgvbhsrlpgdmjqwftvncz", 5, 23},
		{"nppdvjthqldpwncqszvftbrmjlhg", 6, 23},
		{"nznrnfrfntjfmvfwmzdfjlvtqnbhcprsg", 10, 29},
		{"zcfzfwzzqfrljwzlrfnpqdbhtmscgvjw", 11, 26},
	}
	for _, tc := range cases {
		t.Run(tc.signal, func(t *testing.T) {
			got, err := tuning.Detect(tc.signal, tuning.PacketWindow)
			require.NoError(t, err)
			assert.Equal(t, tc.packet, got)

			got, err = tuning.Detect(tc.signal, tuning.MessageWindow)
			require.NoError(t, err)
			assert.Equal(t, tc.message, got)
		})
	}
}

func TestDetect_Errors(t *testing.T) {
	_, err := tuning.Detect("aaaa", 4)
	assert.ErrorIs(t, err, tuning.ErrNoMarker)
	_, err = tuning.Detect("abc", 4)
	assert.ErrorIs(t, err, tuning.ErrNoMarker)
	_, err = tuning.Detect("abcd", 0)
	assert.ErrorIs(t, err, tuning.ErrBadWindow)
	_, err = tuning.Detect("abcd", 27)
	assert.ErrorIs(t, err, tuning.ErrBadWindow)
	_, err = tuning.Detect("abCd", 4)
	assert.ErrorIs(t, err, tuning.ErrBadSymbol)
}

func TestDetect_WindowOne(t *testing.T) {
	got, err := tuning.Detect("q", 1)
	require.NoError(t, err)
	assert.Equal(t, 1, got)
}
