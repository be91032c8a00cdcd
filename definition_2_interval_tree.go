package timeslot

import (
	"errors"
	"fmt"
	"sort"

	goerrors "github.com/TudorHulban/go-errors"
)

// Interval is satisfied by any value spanning [start, end) in UTC seconds,
// start inclusive, end exclusive.
type Interval interface {
	GetUTCTimeStart() int64
	GetUTCTimeEnd() int64
}

// IntervalTree answers containment and overlap queries over a fixed set of
// intervals. Built once, immutable afterwards, safe for concurrent readers
// without locking.
type IntervalTree[T Interval] struct {
	items  []T // input order, defines the tie break between equal starts
	starts []int64
	ends   []int64

	root *intervalTreeNode

	size   int
	height int
}

type intervalTreeNode struct {
	center int64

	byStart   []int // indices into items | ascending start, then input order
	byEndDesc []int // same indices | descending end, then input order

	left  *intervalTreeNode
	right *intervalTreeNode
}

// NewIntervalTree builds a balanced tree over the passed intervals. The slice
// is read, never reordered. Any interval with UTC end at or before UTC start
// fails the construction.
func NewIntervalTree[T Interval](intervals []T) (*IntervalTree[T], error) {
	tree := IntervalTree[T]{
		items:  intervals,
		starts: make([]int64, len(intervals)),
		ends:   make([]int64, len(intervals)),
	}

	for ix, interval := range intervals {
		timeStart := interval.GetUTCTimeStart()
		timeEnd := interval.GetUTCTimeEnd()

		if timeStart >= timeEnd {
			return nil,
				goerrors.ErrInvalidInput{
					Caller:     "NewIntervalTree",
					InputName:  fmt.Sprintf("intervals[%d]", ix),
					InputValue: fmt.Sprintf("[%d-%d]", timeStart, timeEnd),
					Issue: errors.New(
						"time start greater or equal to time end",
					),
				}
		}

		tree.starts[ix] = timeStart
		tree.ends[ix] = timeEnd
	}

	ordered := make([]int, len(intervals))
	for ix := range ordered {
		ordered[ix] = ix
	}

	sort.Slice(
		ordered,
		func(i, j int) bool {
			if tree.starts[ordered[i]] != tree.starts[ordered[j]] {
				return tree.starts[ordered[i]] < tree.starts[ordered[j]]
			}

			return ordered[i] < ordered[j]
		},
	)

	tree.root = tree.buildNode(ordered)
	tree.size = countStored(tree.root)
	tree.height = measureHeight(tree.root)

	return &tree,
		nil
}

// buildNode centers each node on the start of the median interval of the
// (start, input order) sorted run it receives. The median interval always
// straddles its own start, keeping both children strictly smaller.
func (tree *IntervalTree[T]) buildNode(ordered []int) *intervalTreeNode {
	if len(ordered) == 0 {
		return nil
	}

	center := tree.starts[ordered[len(ordered)/2]]

	var left, straddling, right []int

	for _, ix := range ordered {
		switch {
		case tree.ends[ix] <= center:
			left = append(left, ix)

		case tree.starts[ix] > center:
			right = append(right, ix)

		default:
			straddling = append(straddling, ix)
		}
	}

	byEndDesc := make([]int, len(straddling))
	copy(byEndDesc, straddling)

	sort.Slice(
		byEndDesc,
		func(i, j int) bool {
			if tree.ends[byEndDesc[i]] != tree.ends[byEndDesc[j]] {
				return tree.ends[byEndDesc[i]] > tree.ends[byEndDesc[j]]
			}

			return byEndDesc[i] < byEndDesc[j]
		},
	)

	return &intervalTreeNode{
		center: center,

		byStart:   straddling,
		byEndDesc: byEndDesc,

		left:  tree.buildNode(left),
		right: tree.buildNode(right),
	}
}

func (tree *IntervalTree[T]) GetSize() int {
	return tree.size
}

// GetHeight reports the node height of the built tree, zero when empty.
func (tree *IntervalTree[T]) GetHeight() int {
	return tree.height
}

func countStored(node *intervalTreeNode) int {
	if node == nil {
		return 0
	}

	return len(node.byStart) +
		countStored(node.left) +
		countStored(node.right)
}

func measureHeight(node *intervalTreeNode) int {
	if node == nil {
		return 0
	}

	heightLeft := measureHeight(node.left)
	heightRight := measureHeight(node.right)

	if heightLeft > heightRight {
		return 1 + heightLeft
	}

	return 1 + heightRight
}
