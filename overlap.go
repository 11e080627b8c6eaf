package tablefind

import "sort"

// Pair is a pair of indices into two separate bbox lists that overlap.
type Pair struct {
	A, B int
}

type overlapEvent struct {
	fromB bool // false: event from list A, true: event from list B
	x     float64
	idx   int
	exit  bool
}

// OverlappingPairs returns every pair (i, j) such that a[i] and b[j] share a
// strictly positive-area intersection, using a sweep-line over the X axis.
// Boxes sharing only an edge or a corner are never reported.
//
// Grounded on the reference implementation's event-sweep overlap finder:
// exits are ordered before entries at the same X so that a box whose exit
// coincides with another box's entry is never mistaken for an overlap.
func OverlappingPairs(a, b []Bbox) []Pair {
	events := make([]overlapEvent, 0, 2*(len(a)+len(b)))
	for i, box := range a {
		events = append(events, overlapEvent{fromB: false, x: box.X0, idx: i, exit: false})
		events = append(events, overlapEvent{fromB: false, x: box.X1, idx: i, exit: true})
	}
	for j, box := range b {
		events = append(events, overlapEvent{fromB: true, x: box.X0, idx: j, exit: false})
		events = append(events, overlapEvent{fromB: true, x: box.X1, idx: j, exit: true})
	}

	sort.Slice(events, func(i, j int) bool {
		if events[i].x != events[j].x {
			return events[i].x < events[j].x
		}
		// Exits sort before entries at the same X.
		if events[i].exit != events[j].exit {
			return events[i].exit
		}
		return false
	})

	activeA := map[int]bool{}
	activeB := map[int]bool{}
	var pairs []Pair

	for _, ev := range events {
		if !ev.fromB {
			if ev.exit {
				delete(activeA, ev.idx)
				continue
			}
			activeA[ev.idx] = true
			box := a[ev.idx]
			for j := range activeB {
				if box.Overlaps(b[j]) {
					pairs = append(pairs, Pair{A: ev.idx, B: j})
				}
			}
		} else {
			if ev.exit {
				delete(activeB, ev.idx)
				continue
			}
			activeB[ev.idx] = true
			box := b[ev.idx]
			for i := range activeA {
				if a[i].Overlaps(box) {
					pairs = append(pairs, Pair{A: i, B: ev.idx})
				}
			}
		}
	}

	return pairs
}

// NaiveOverlappingPairs is the O(len(a)*len(b)) reference implementation of
// OverlappingPairs, kept only so tests can cross-validate the sweep-line
// version against brute force on randomized inputs.
func NaiveOverlappingPairs(a, b []Bbox) []Pair {
	var pairs []Pair
	for i, boxA := range a {
		for j, boxB := range b {
			if boxA.Overlaps(boxB) {
				pairs = append(pairs, Pair{A: i, B: j})
			}
		}
	}
	return pairs
}
