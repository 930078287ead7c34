package supply_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ArjenL/AoC2022/supply"
)

const sample = "    [D]    \n" +
	"[N] [C]    \n" +
	"[Z] [M] [P]\n" +
	" 1   2   3 \n" +
	"\n" +
	"move 1 from 2 to 1\n" +
	"move 3 from 1 to 3\n" +
	"move 2 from 2 to 1\n" +
	"move 1 from 1 to 2\n"

func TestParse(t *testing.T) {
	stacks, moves, err := supply.Parse(strings.NewReader(sample))
	require.NoError(t, err)
	assert.Equal(t, supply.Stacks{[]byte("ZN"), []byte("MCD"), []byte("P")}, stacks)
	assert.Equal(t, []supply.Move{{N: 1, From: 1, To: 0}, {N: 3, From: 0, To: 2}, {N: 2, From: 1, To: 0}, {N: 1, From: 0, To: 1}}, moves)
}

func TestApplyAll(t *testing.T) {
	stacks, moves, err := supply.Parse(strings.NewReader(sample))
	require.NoError(t, err)

	cases := []struct {
		name  string
		model supply.Model
		want  string
	}{
		{"CrateMover9000", supply.CrateMover9000, "CMZ"},
		{"CrateMover9001", supply.CrateMover9001, "MCD"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := stacks.Clone()
			require.NoError(t, s.ApplyAll(moves, tc.model))
			assert.Equal(t, tc.want, s.Tops())
		})
	}
	// the parsed stacks are untouched by the clones
	assert.Equal(t, "NDP", stacks.Tops())
}

func TestApply_Errors(t *testing.T) {
	s := supply.Stacks{[]byte("AB"), nil}
	assert.ErrorIs(t, s.Apply(supply.Move{N: 3, From: 0, To: 1}, supply.CrateMover9000), supply.ErrEmptyStack)
	assert.ErrorIs(t, s.Apply(supply.Move{N: 1, From: 0, To: 5}, supply.CrateMover9000), supply.ErrNoSuchStack)
	assert.ErrorIs(t, s.Apply(supply.Move{N: 1, From: -1, To: 0}, supply.CrateMover9000), supply.ErrNoSuchStack)

	require.NoError(t, s.Apply(supply.Move{N: 2, From: 0, To: 1}, supply.CrateMover9000))
	assert.Equal(t, "A", s.Tops())
}

func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name, in string
		err      error
	}{
		{"BadMove", "[A]\n 1 \n\nmove x from 1 to 1\n", supply.ErrBadMove},
		{"ShortMove", "[A]\n 1 \n\nmove 1 from 1\n", supply.ErrBadMove},
		{"BadLabels", "[A]\n 2 \n\nmove 1 from 1 to 1\n", supply.ErrBadDrawing},
		{"BadCrate", "(A)\n 1 \n\n", supply.ErrBadDrawing},
		{"Empty", "", supply.ErrBadDrawing},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := supply.Parse(strings.NewReader(tc.in))
			assert.ErrorIs(t, err, tc.err)
		})
	}
}
