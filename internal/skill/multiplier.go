package skill

import (
	"regexp"
	"strconv"

	"golang.org/x/text/width"
)

// Ordered rules for pulling an attack multiplier out of effect text.
// Evaluated first-match-wins over width-folded text.
var multiplierRules = []struct {
	re    *regexp.Regexp
	value func(n float64) float64
}{
	// 攻撃力が350%まで上昇 / 攻撃力が350%に上昇
	{
		regexp.MustCompile(`攻撃力が(\d+(?:\.\d+)?)%[まに]で?上昇`),
		func(n float64) float64 { return n / 100 },
	},
	// 攻撃力+130%, including combined buffs like 攻撃力、防御力、最大HP+130%
	{
		regexp.MustCompile(`攻撃力[^+\n]*?\+(\d+(?:\.\d+)?)%`),
		func(n float64) float64 { return 1 + n/100 },
	},
	// 攻撃力×3.5
	{
		regexp.MustCompile(`攻撃力[×xX](\d+(?:\.\d+)?)`),
		func(n float64) float64 { return n },
	},
}

// ExtractMultiplier parses an absolute attack multiplier (1.0 = unchanged,
// 2.0 = 200%) from skill effect text. The text is width-folded first so
// full-width digits, ％, ＋ and ｘ match the ASCII patterns. Returns false
// when no rule applies; callers must ask for a manual value instead of
// assuming 1.0.
func ExtractMultiplier(effect string) (float64, bool) {
	if effect == "" {
		return 0, false
	}
	folded := width.Fold.String(effect)
	for _, rule := range multiplierRules {
		m := rule.re.FindStringSubmatch(folded)
		if m == nil {
			continue
		}
		n, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			continue
		}
		return rule.value(n), true
	}
	return 0, false
}
