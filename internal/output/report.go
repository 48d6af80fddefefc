// Package output renders calculation reports and appends them to the calc
// log.
package output

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/ishi-private/arknights-power-calc/internal/damage"
	"github.com/ishi-private/arknights-power-calc/internal/domain"
)

// Report carries everything one rendered result block needs.
type Report struct {
	Char       domain.Character
	SkillNum   int
	SkillName  string
	Rank       string
	Kind       damage.Kind
	EnemyDef   int
	EnemyRes   int
	Targets    int
	Multiplier float64
	Duration   *float64
	Raw        float64
	Actual     float64
	Total      float64
	DPS        float64
	HasSustain bool
	Hits       int
	InitSP     *int
	CostSP     *int
}

// grouped digit output (12,345) for damage figures
var printer = message.NewPrinter(language.Japanese)

// FormatSP renders an optional SP or duration figure: "-" when absent.
// Zero is a real value and prints as "0"; collapsing it into "-" was a
// known pitfall of the sheet format.
func FormatSP(v *int) string {
	if v == nil {
		return "-"
	}
	return strconv.Itoa(*v)
}

// Render builds the result block shown on screen and appended to the log.
func Render(r Report) []string {
	var lines []string
	add := func(format string, args ...any) {
		lines = append(lines, fmt.Sprintf(format, args...))
	}
	rule := strings.Repeat("=", 60)

	add("")
	add(rule)
	add("  ===  火力計算結果  ===")
	add(rule)
	add("  キャラクター : %s", r.Char.Name)
	add("  スキル       : スキル%d %s [%s]", r.SkillNum, r.SkillName, domain.RankDisplay[r.Rank])
	add("  攻撃力       : %d", r.Char.Atk)
	add("  攻撃速度     : %gs / hit", r.Char.AtkInterval)
	add("  ダメージ種別 : %s", r.Kind)
	if r.Kind == damage.Arts {
		add("  敵の術耐性   : %d%%", r.EnemyRes)
	} else {
		add("  敵の防御力   : %d", r.EnemyDef)
	}
	add("  攻撃倍率     : %.0f%%  (%.2fx)", r.Multiplier*100, r.Multiplier)
	add(strings.Repeat("-", 60))

	add("")
	add("  【スキル発動時のダメージ (軽減前)】")
	add("    1発あたり : %s", printer.Sprintf("%.0f", r.Raw))
	if r.Targets > 1 {
		add("    %d体同時   : %s", r.Targets, printer.Sprintf("%.0f", r.Raw*float64(r.Targets)))
	}

	add("")
	add("  【実ダメージ (軽減後)】")
	if r.Kind == damage.Arts {
		effRed := r.EnemyRes
		if effRed > 95 {
			effRed = 95
		}
		add("    術耐性軽減後 (%d%%軽減): %s", effRed, printer.Sprintf("%.0f", r.Actual))
	} else {
		add("    防御力軽減後 (%d防御): %s", r.EnemyDef, printer.Sprintf("%.0f", r.Actual))
	}
	if r.Targets > 1 {
		add("    %d体合計        : %s", r.Targets, printer.Sprintf("%.0f", r.Actual*float64(r.Targets)))
	}

	add("")
	add("  【スキル継続中の総ダメージ】")
	if r.HasSustain {
		add("    持続時間   : %gs", *r.Duration)
		add("    ヒット数   : %d 回 × %d 体", r.Hits, r.Targets)
		add("    総ダメージ : %s", printer.Sprintf("%.0f", r.Total))
		add("    スキル中DPS: %s / s", printer.Sprintf("%.1f", r.DPS))
	} else {
		add("    持続時間なし（瞬時発動・パッシブ型）")
		add("    ※ 通常攻撃DPS = %s / s", printer.Sprintf("%.1f", float64(r.Char.Atk)/r.Char.AtkInterval))
	}

	add("")
	add("  【SP情報 (参考)】")
	add("    初期SP: %s  /  必要SP: %s", FormatSP(r.InitSP), FormatSP(r.CostSP))

	add("")
	add(rule)
	return lines
}

// Print writes the rendered block to stdout.
func Print(lines []string) {
	for _, line := range lines {
		fmt.Println(line)
	}
}

// AppendLog appends the block to the calc log under a timestamp header.
func AppendLog(path string, lines []string) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open calc log %q: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	var b strings.Builder
	b.WriteString("\n[" + time.Now().Format("2006-01-02 15:04:05") + "]\n")
	b.WriteString(strings.Join(lines, "\n"))
	b.WriteString("\n")
	if _, err := f.WriteString(b.String()); err != nil {
		return fmt.Errorf("write calc log %q: %w", path, err)
	}
	return nil
}
