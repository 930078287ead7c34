// Package rucksack finds misplaced items and group badges in elf rucksacks.
//
// Items are ASCII letters; a–z have priorities 1–26 and A–Z 27–52. The item
// sets are held as 53-bit masks indexed by priority, so intersections are a
// single AND.
package rucksack

import (
	"errors"
	"fmt"
	"math/bits"
)

// GroupSize is the number of elves sharing one badge.
const GroupSize = 3

var (
	// ErrBadItem is returned for a byte that is not an ASCII letter.
	ErrBadItem = errors.New("rucksack: item must be an ASCII letter")
	// ErrOddLength is returned when a rucksack cannot be split in two equal compartments.
	ErrOddLength = errors.New("rucksack: odd number of items")
	// ErrNoCommonItem is returned when the sets being intersected share no item.
	ErrNoCommonItem = errors.New("rucksack: no common item")
	// ErrIncompleteGroup is returned when the number of rucksacks is not a multiple of GroupSize.
	ErrIncompleteGroup = errors.New("rucksack: incomplete group")
)

// Priority returns the priority of item.
func Priority(item byte) (int, error) {
	switch {
	case item >= 'a' && item <= 'z':
		return int(item-'a') + 1, nil
	case item >= 'A' && item <= 'Z':
		return int(item-'A') + 27, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrBadItem, item)
	}
}

// itemSet is a bit set of priorities.
type itemSet uint64

func newItemSet(items string) (itemSet, error) {
	var s itemSet
	for i := 0; i < len(items); i++ {
		p, err := Priority(items[i])
		if err != nil {
			return 0, err
		}
		s |= 1 << p
	}
	return s, nil
}

// single returns the only priority in s, or ErrNoCommonItem when s is empty.
// When s holds more than one item the lowest priority wins.
func (s itemSet) single() (int, error) {
	if s == 0 {
		return 0, ErrNoCommonItem
	}
	return bits.TrailingZeros64(uint64(s)), nil
}

// SharedPriority returns the priority of the item found in both halves of line.
func SharedPriority(line string) (int, error) {
	if len(line)%2 != 0 {
		return 0, fmt.Errorf("%w: %q", ErrOddLength, line)
	}
	half := len(line) / 2
	a, err := newItemSet(line[:half])
	if err != nil {
		return 0, err
	}
	b, err := newItemSet(line[half:])
	if err != nil {
		return 0, err
	}
	p, err := (a & b).single()
	if err != nil {
		return 0, fmt.Errorf("%w: %q", err, line)
	}
	return p, nil
}

// BadgePriority returns the priority of the item carried by all three elves.
func BadgePriority(group [GroupSize]string) (int, error) {
	common := ^itemSet(0)
	for _, line := range group {
		s, err := newItemSet(line)
		if err != nil {
			return 0, err
		}
		common &= s
	}
	p, err := common.single()
	if err != nil {
		return 0, fmt.Errorf("%w: group %q", err, group)
	}
	return p, nil
}

// SumShared sums SharedPriority over all rucksacks.
func SumShared(lines []string) (int, error) {
	sum := 0
	for i, line := range lines {
		p, err := SharedPriority(line)
		if err != nil {
			return 0, fmt.Errorf("rucksack %d: %w", i+1, err)
		}
		sum += p
	}
	return sum, nil
}

// SumBadges sums BadgePriority over consecutive groups of GroupSize rucksacks.
func SumBadges(lines []string) (int, error) {
	if len(lines)%GroupSize != 0 {
		return 0, fmt.Errorf("%w: %d rucksacks", ErrIncompleteGroup, len(lines))
	}
	sum := 0
	for i := 0; i < len(lines); i += GroupSize {
		var group [GroupSize]string
		copy(group[:], lines[i:i+GroupSize])
		p, err := BadgePriority(group)
		if err != nil {
			return 0, fmt.Errorf("group %d: %w", i/GroupSize+1, err)
		}
		sum += p
	}
	return sum, nil
}
