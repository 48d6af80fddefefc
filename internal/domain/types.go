package domain

import (
	"strings"

	"golang.org/x/text/width"
)

// RankOrder lists skill ranks in mastery order: levels 1-7, then the three
// specialization tiers.
var RankOrder = []string{"1", "2", "3", "4", "5", "6", "7", "特化I", "特化II", "特化III"}

// RankDisplay maps a rank key to its display form.
var RankDisplay = map[string]string{
	"1": "ランク1", "2": "ランク2", "3": "ランク3",
	"4": "ランク4", "5": "ランク5", "6": "ランク6", "7": "ランク7",
	"特化I": "特化Ⅰ", "特化II": "特化Ⅱ", "特化III": "特化Ⅲ",
}

var romanNumerals = strings.NewReplacer("Ⅰ", "I", "Ⅱ", "II", "Ⅲ", "III")

// NormalizeRank maps sheet cells and user input onto the canonical rank
// keys: full-width digits are folded and full-width Roman numerals replaced
// with their ASCII spelling (特化Ⅲ -> 特化III).
func NormalizeRank(s string) string {
	return romanNumerals.Replace(width.Fold.String(strings.TrimSpace(s)))
}

// IsRank reports whether s is one of the canonical rank keys.
func IsRank(s string) bool {
	for _, r := range RankOrder {
		if s == r {
			return true
		}
	}
	return false
}

// RawRow is one sheet row: its non-empty cells keyed by column letter.
// Column A holds the rank label; B-E hold the sparse left-aligned value
// columns (init SP, cost SP, duration, effect).
type RawRow map[string]string

// RankRecord is the resolved data for one rank of one skill. Nil pointer
// fields mean the value is genuinely absent, not zero: a nil Duration marks
// an instant or passive skill with no sustained phase.
type RankRecord struct {
	Rank       string
	InitSP     *int
	CostSP     *int
	Duration   *float64
	Effect     string
	Multiplier *float64
}

// SkillRecord is one parsed skill detail sheet.
type SkillRecord struct {
	Num   int
	Name  string
	Ranks map[string]RankRecord
}

// Character is one roster entry from the star-6 CSV.
type Character struct {
	Image       string
	Name        string
	Class       string
	Subclass    string
	HP          int
	Atk         int
	Def         int
	Res         int
	Redeploy    string
	Cost        int
	Block       int
	AtkInterval float64
	AtkSpeedRaw string
	Source      string
	Tags        string
}
