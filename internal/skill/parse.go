package skill

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ishi-private/arknights-power-calc/internal/domain"
)

// valueColumns are the sparse value columns of a skill detail sheet in
// order: init SP, cost SP, duration, effect. Unchanged fields are omitted
// and the remaining values shift left.
var valueColumns = []string{"B", "C", "D", "E"}

// numCell is a numeric-position cell: either a number or the literal "-"
// marker, which means "no duration" (instant or passive skill) rather than
// "inherit the previous rank's value".
type numCell struct {
	val  float64
	none bool
}

// ParseRanks folds one skill detail sheet's rows into per-rank records.
// Resolution is inherently sequential: omitted values inherit from the
// previous rank, so a fresh State is threaded through the rows in sheet
// order. Leading rows without a recognized rank label are treated as
// headers. Malformed or unresolvable rows are reported in the returned
// warnings and skipped; they never abort the sheet.
func ParseRanks(rows []domain.RawRow) (map[string]domain.RankRecord, []string) {
	var state State
	ranks := make(map[string]domain.RankRecord)
	var warnings []string

	seenData := false
	for _, row := range rows {
		label := domain.NormalizeRank(row["A"])
		if !domain.IsRank(label) {
			if seenData && strings.TrimSpace(row["A"]) != "" {
				warnings = append(warnings, fmt.Sprintf("unrecognized rank label %q, row skipped", row["A"]))
			}
			continue
		}
		seenData = true

		nums, effect := splitCells(row)
		if len(nums) > 3 {
			warnings = append(warnings, fmt.Sprintf("rank %s: %d numeric values (max 3), row skipped", label, len(nums)))
			continue
		}

		var resolved bool
		forceNoDuration := false
		switch {
		case len(nums) == 3 && nums[2].none:
			// Full row with an explicit no-duration marker: init and cost
			// are positional, duration is forced off.
			if !nums[0].none {
				state.InitSP = floatPtr(nums[0].val)
			}
			if !nums[1].none {
				state.CostSP = floatPtr(nums[1].val)
			}
			forceNoDuration = true
			resolved = true
		case hasNone(nums):
			valid := numbers(nums)
			state, resolved = Resolve(valid, state)
			if nums[len(nums)-1].none || (nums[0].none && len(valid) == 0) {
				forceNoDuration = true
			}
		default:
			state, resolved = Resolve(numbers(nums), state)
		}
		if forceNoDuration {
			state.Duration = nil
		}
		if !resolved {
			warnings = append(warnings, fmt.Sprintf("rank %s: values fit no field's direction, assigned by distance", label))
		}

		rec := domain.RankRecord{
			Rank:     label,
			InitSP:   toIntPtr(state.InitSP),
			CostSP:   toIntPtr(state.CostSP),
			Duration: copyPtr(state.Duration),
			Effect:   effect,
		}
		if m, ok := ExtractMultiplier(effect); ok {
			rec.Multiplier = &m
		}
		ranks[label] = rec
	}

	return ranks, warnings
}

// splitCells separates a row's value cells into the numeric subsequence
// (numbers and "-" markers) and the effect text.
func splitCells(row domain.RawRow) ([]numCell, string) {
	var nums []numCell
	effect := ""
	for _, col := range valueColumns {
		s := strings.TrimSpace(row[col])
		if s == "" {
			continue
		}
		if s == "-" {
			nums = append(nums, numCell{none: true})
			continue
		}
		if v, err := strconv.ParseFloat(s, 64); err == nil {
			nums = append(nums, numCell{val: v})
		} else {
			effect = s
		}
	}
	return nums, effect
}

func hasNone(nums []numCell) bool {
	for _, n := range nums {
		if n.none {
			return true
		}
	}
	return false
}

func numbers(nums []numCell) []float64 {
	var out []float64
	for _, n := range nums {
		if !n.none {
			out = append(out, n.val)
		}
	}
	return out
}

func toIntPtr(v *float64) *int {
	if v == nil {
		return nil
	}
	i := int(*v)
	return &i
}

func copyPtr(v *float64) *float64 {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
