package skill

import (
	"math"
	"testing"
)

func checkMultiplier(t *testing.T, effect string, want float64) {
	t.Helper()
	got, ok := ExtractMultiplier(effect)
	if !ok {
		t.Fatalf("expected a multiplier for %q", effect)
	}
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("expected %v for %q, got %v", want, effect, got)
	}
}

func TestExtractMultiplierRiseTo(t *testing.T) {
	checkMultiplier(t, "攻撃力が350%まで上昇", 3.5)
	checkMultiplier(t, "攻撃力が80%に上昇", 0.8)
}

func TestExtractMultiplierPlusPercent(t *testing.T) {
	checkMultiplier(t, "攻撃力+130%", 2.3)
}

func TestExtractMultiplierCombinedBuff(t *testing.T) {
	// Intervening stat names must not stop the match.
	checkMultiplier(t, "攻撃力、防御力、最大HP+130%", 2.3)
}

func TestExtractMultiplierTimes(t *testing.T) {
	checkMultiplier(t, "攻撃力×3.5", 3.5)
}

func TestExtractMultiplierFullWidth(t *testing.T) {
	// Sheets mix widths; folded before matching.
	checkMultiplier(t, "攻撃力＋１３０％", 2.3)
}

func TestExtractMultiplierRuleOrder(t *testing.T) {
	// The rise-to family outranks the +N% family.
	checkMultiplier(t, "攻撃力が200%まで上昇し、防御力+50%", 2.0)
}

func TestExtractMultiplierNoMatch(t *testing.T) {
	for _, effect := range []string{"", "unrelated text", "防御力+50%"} {
		if got, ok := ExtractMultiplier(effect); ok {
			t.Fatalf("expected no multiplier for %q, got %v", effect, got)
		}
	}
}
