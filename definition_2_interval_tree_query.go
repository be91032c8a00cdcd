package timeslot

import (
	"math"
	"sort"
)

// QueryIntervalsContaining returns the stored intervals whose span covers the
// passed UTC timestamp, start inclusive, end exclusive, ordered by ascending
// start then input order. An interval ending exactly at the timestamp does
// not match.
func (tree *IntervalTree[T]) QueryIntervalsContaining(atTimestamp int64) []T {
	var matches []int

	for node := tree.root; node != nil; {
		switch {
		case atTimestamp == node.center:
			matches = append(matches, node.byStart...)

			node = nil

		case atTimestamp < node.center:
			// straddlers end past the center, end > atTimestamp holds here
			for _, ix := range node.byStart {
				if tree.starts[ix] > atTimestamp {
					break
				}

				matches = append(matches, ix)
			}

			node = node.left

		default:
			// straddlers start at or before the center, start <= atTimestamp holds here
			for _, ix := range node.byEndDesc {
				if tree.ends[ix] <= atTimestamp {
					break
				}

				matches = append(matches, ix)
			}

			node = node.right
		}
	}

	return tree.collect(matches)
}

// QueryIntervalsOverlapping returns the stored intervals intersecting the
// closed-open UTC range [timeStart, timeEnd): a stored [a, b) matches when
// a < timeEnd && timeStart < b. Intervals only touching a query boundary do
// not match. Ordering as for QueryIntervalsContaining.
func (tree *IntervalTree[T]) QueryIntervalsOverlapping(timeStart, timeEnd int64) []T {
	return tree.collect(
		tree.matchOverlapping(tree.root, timeStart, timeEnd, nil),
	)
}

// QueryIntervalsOverlappingFrom behaves as QueryIntervalsOverlapping with no
// upper bound: every stored interval still open at or after timeStart.
func (tree *IntervalTree[T]) QueryIntervalsOverlappingFrom(timeStart int64) []T {
	return tree.collect(
		tree.matchOverlapping(tree.root, timeStart, math.MaxInt64, nil),
	)
}

func (tree *IntervalTree[T]) matchOverlapping(node *intervalTreeNode, timeStart, timeEnd int64, matches []int) []int {
	if node == nil {
		return matches
	}

	switch {
	case timeStart <= node.center && node.center < timeEnd:
		// query covers the center, every straddler overlaps
		matches = append(matches, node.byStart...)

	case timeEnd <= node.center:
		for _, ix := range node.byStart {
			if tree.starts[ix] >= timeEnd {
				break
			}

			if timeStart < tree.ends[ix] {
				matches = append(matches, ix)
			}
		}

	default:
		for _, ix := range node.byEndDesc {
			if tree.ends[ix] <= timeStart {
				break
			}

			if tree.starts[ix] < timeEnd {
				matches = append(matches, ix)
			}
		}
	}

	if timeStart < node.center {
		matches = tree.matchOverlapping(node.left, timeStart, timeEnd, matches)
	}

	if timeEnd > node.center {
		matches = tree.matchOverlapping(node.right, timeStart, timeEnd, matches)
	}

	return matches
}

// collect maps matched indices back to stored elements in the result order
// of all queries, ascending UTC start then input order.
func (tree *IntervalTree[T]) collect(matches []int) []T {
	if len(matches) == 0 {
		return nil
	}

	sort.Slice(
		matches,
		func(i, j int) bool {
			if tree.starts[matches[i]] != tree.starts[matches[j]] {
				return tree.starts[matches[i]] < tree.starts[matches[j]]
			}

			return matches[i] < matches[j]
		},
	)

	result := make([]T, len(matches))

	for ix, stored := range matches {
		result[ix] = tree.items[stored]
	}

	return result
}
