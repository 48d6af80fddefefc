package skill

import "math"

// State is the last fully-known (init SP, cost SP, duration) triple for the
// rank table currently being parsed. A nil field has not been seen yet.
// One State is owned by a single ParseRanks call and threaded row by row;
// it never lives past the sheet.
type State struct {
	InitSP   *float64
	CostSP   *float64
	Duration *float64
}

type field int

const (
	fieldInit field = iota
	fieldCost
	fieldDur
	fieldNone
)

var fieldOrder = []field{fieldInit, fieldCost, fieldDur}

func (s State) valueOf(f field) *float64 {
	switch f {
	case fieldInit:
		return s.InitSP
	case fieldCost:
		return s.CostSP
	default:
		return s.Duration
	}
}

// directionOK checks the monotonic constraint: init SP and duration only
// rise across ranks, cost SP only falls.
func directionOK(f field, v, prev float64) bool {
	if f == fieldCost {
		return v < prev
	}
	return v > prev
}

// closestField decides which field a bare number belongs to. Fields already
// claimed by earlier values in the same row are excluded. Known fields whose
// direction the value satisfies compete by absolute distance; fields with no
// known previous value are candidates of last resort (infinite distance).
// Ties resolve in init, cost, duration order. When every known field's
// direction is violated the nearest known field wins anyway (best effort,
// reported via the second return), so one odd row cannot sink a sheet.
func closestField(v float64, prev State, taken map[field]bool) (field, bool) {
	best := fieldNone
	bestDist := math.Inf(1)
	for _, f := range fieldOrder {
		if taken[f] {
			continue
		}
		p := prev.valueOf(f)
		d := math.Inf(1)
		if p != nil {
			if !directionOK(f, v, *p) {
				continue
			}
			d = math.Abs(v - *p)
		}
		if best == fieldNone || d < bestDist {
			best = f
			bestDist = d
		}
	}
	if best != fieldNone {
		return best, true
	}

	// No field fits the value's direction; pick the nearest known one.
	for _, f := range fieldOrder {
		if taken[f] {
			continue
		}
		p := prev.valueOf(f)
		if p == nil {
			continue
		}
		d := math.Abs(v - *p)
		if best == fieldNone || d < bestDist {
			best = f
			bestDist = d
		}
	}
	return best, false
}

// Resolve merges a row's bare numbers into the running state and returns the
// new state. Three numbers are positional (init SP, cost SP, duration); one
// or two are classified left to right via closestField, each claimed field
// excluded for the rest of the row; zero numbers leave the state untouched
// (the row only carried effect text). The second return is false when some
// value violated every field's monotonic direction and was placed by
// distance alone.
func Resolve(numerics []float64, prev State) (State, bool) {
	next := prev
	switch len(numerics) {
	case 3:
		next.InitSP = floatPtr(numerics[0])
		next.CostSP = floatPtr(numerics[1])
		next.Duration = floatPtr(numerics[2])
		return next, true
	case 1, 2:
		ok := true
		taken := make(map[field]bool, len(numerics))
		for _, v := range numerics {
			f, fits := closestField(v, prev, taken)
			if f == fieldNone {
				ok = false
				continue
			}
			if !fits {
				ok = false
			}
			taken[f] = true
			switch f {
			case fieldInit:
				next.InitSP = floatPtr(v)
			case fieldCost:
				next.CostSP = floatPtr(v)
			case fieldDur:
				next.Duration = floatPtr(v)
			}
		}
		return next, ok
	default:
		return next, true
	}
}

func floatPtr(v float64) *float64 { return &v }
