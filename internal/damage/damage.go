// Package damage holds the Arknights damage formulas. All functions are
// pure; optional outcomes are value states, not errors.
package damage

import "math"

type Kind int

const (
	Physical Kind = iota
	Arts
)

func (k Kind) String() string {
	if k == Arts {
		return "術ダメージ"
	}
	return "物理ダメージ"
}

// SingleHit computes one hit's raw and mitigated damage:
//
//	physical: max(ATK×mult − DEF, ATK×mult×0.05)
//	arts:     ATK×mult × (1 − min(RES/100, 0.95))
//
// Both kinds bottom out at 5% of raw damage.
func SingleHit(atk, multiplier, enemyDef, enemyRes float64, kind Kind) (raw, actual float64) {
	raw = atk * multiplier
	if kind == Arts {
		reduction := math.Min(enemyRes/100, 0.95)
		actual = raw * (1 - reduction)
		return raw, actual
	}
	actual = math.Max(raw-enemyDef, raw*0.05)
	return raw, actual
}

// Hits is the number of attacks that fit into the duration.
func Hits(duration, interval float64) int {
	return int(duration / interval)
}

// Sustained computes total damage and in-skill DPS over the active window.
// ok is false when there is no sustained phase (nil or non-positive
// duration); the caller shows the baseline rate-of-fire figure instead.
// DPS is the steady per-interval rate, not total/duration: the two differ
// whenever Hits truncates.
func Sustained(actualPerHit float64, duration *float64, interval float64, targets int) (total, dps float64, ok bool) {
	if duration == nil || *duration <= 0 {
		return 0, 0, false
	}
	hits := Hits(*duration, interval)
	total = actualPerHit * float64(hits) * float64(targets)
	dps = actualPerHit / interval * float64(targets)
	return total, dps, true
}
