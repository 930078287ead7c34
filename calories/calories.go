// Package calories totals the food carried by each elf and ranks the elves.
package calories

import (
	"bufio"
	"container/heap"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

var (
	// ErrBadCalories is returned for a line that is not a non-negative integer.
	ErrBadCalories = errors.New("calories: item must be a non-negative integer")
	// ErrNotEnoughElves is returned by TopN when n exceeds the number of elves.
	ErrNotEnoughElves = errors.New("calories: not enough elves")
)

// Parse reads blank-line separated groups of integers and returns one total
// per group, in input order. Runs of blank lines count as one separator.
func Parse(r io.Reader) ([]int, error) {
	var (
		totals []int
		cur    int
		open   bool
	)
	sc := bufio.NewScanner(r)
	for line := 1; sc.Scan(); line++ {
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			if open {
				totals = append(totals, cur)
				cur, open = 0, false
			}
			continue
		}
		v, err := strconv.Atoi(text)
		if err != nil || v < 0 {
			return nil, fmt.Errorf("%w: line %d: %q", ErrBadCalories, line, text)
		}
		cur += v
		open = true
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("calories: reading input: %w", err)
	}
	if open {
		totals = append(totals, cur)
	}

	return totals, nil
}

// TopN returns the sum of the n largest totals.
// Complexity: O(E + n log E) using a max-heap built in place over a copy.
func TopN(totals []int, n int) (int, error) {
	if n < 0 || n > len(totals) {
		return 0, fmt.Errorf("%w: want %d, have %d", ErrNotEnoughElves, n, len(totals))
	}
	pq := make(maxHeap, len(totals))
	copy(pq, totals)
	heap.Init(&pq)
	sum := 0
	for i := 0; i < n; i++ {
		sum += heap.Pop(&pq).(int)
	}

	return sum, nil
}

// maxHeap implements heap.Interface with the largest total on top.
type maxHeap []int

func (h maxHeap) Len() int           { return len(h) }
func (h maxHeap) Less(i, j int) bool { return h[i] > h[j] }
func (h maxHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

func (h *maxHeap) Push(x interface{}) { *h = append(*h, x.(int)) }

func (h *maxHeap) Pop() interface{} {
	old := *h
	n := len(old)
	v := old[n-1]
	*h = old[:n-1]

	return v
}
