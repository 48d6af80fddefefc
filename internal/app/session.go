package app

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ishi-private/arknights-power-calc/internal/damage"
	"github.com/ishi-private/arknights-power-calc/internal/domain"
	"github.com/ishi-private/arknights-power-calc/internal/output"
	"github.com/ishi-private/arknights-power-calc/internal/workbook"
)

// Short forms accepted at the rank prompt.
var rankAliases = map[string]string{
	"m1": "特化I",
	"m2": "特化II",
	"m3": "特化III",
}

// session runs one full calculation: pick character, skill and rank, gather
// enemy stats and overrides, compute, report, log.
func session(cfg domain.Config, characters []domain.Character, p *Prompter) error {
	fmt.Println("\n【キャラクター選択】")
	char, err := selectCharacter(characters, p)
	if err != nil {
		return err
	}

	fmt.Printf("\n  選択: %s\n", char.Name)
	fmt.Printf("  職業: %s / %s\n", char.Class, char.Subclass)
	fmt.Printf("  攻撃力: %d  攻撃速度: %gs  HP: %d\n", char.Atk, char.AtkInterval, char.HP)

	fmt.Println("\nスキルデータを読み込み中...")
	skills, warnings, err := workbook.LoadSkills(cfg.XlsxDir, char.Name)
	if err != nil {
		return err
	}
	for _, w := range warnings {
		fmt.Printf("  [警告] %s\n", w)
	}
	if len(skills) == 0 {
		fmt.Println("  スキルデータが見つかりません。")
		return nil
	}
	fmt.Printf("  %d スキル読み込み完了\n", len(skills))

	sk, err := selectSkill(skills, p)
	if err != nil {
		return err
	}
	fmt.Printf("\n  選択: スキル%d %s\n", sk.Num, sk.Name)

	rankKey, err := selectRank(sk, p)
	if err != nil {
		return err
	}
	rank := sk.Ranks[rankKey]

	fmt.Printf("\n  選択ランク: %s\n", domain.RankDisplay[rankKey])
	if rank.Effect != "" {
		effect := rank.Effect
		if len([]rune(effect)) > 80 {
			effect = string([]rune(effect)[:80]) + "..."
		}
		fmt.Printf("  効果: %s\n", effect)
	}

	kind, err := selectKind(char, rank, p)
	if err != nil {
		return err
	}

	fmt.Println("\n【敵ステータス】")
	enemyDef, enemyRes := 0, 0
	if kind == damage.Arts {
		enemyRes, err = p.Int("敵の術耐性 (0〜100)", cfg.Defaults.EnemyRes)
	} else {
		enemyDef, err = p.Int("敵の防御力", cfg.Defaults.EnemyDef)
	}
	if err != nil {
		return err
	}

	targets, err := p.Int("攻撃対象数 (スキル中の同時攻撃数)", cfg.Defaults.Targets)
	if err != nil {
		return err
	}

	multiplier, err := confirmMultiplier(rank, p)
	if err != nil {
		return err
	}

	duration, err := confirmDuration(rank, p)
	if err != nil {
		return err
	}

	raw, actual := damage.SingleHit(float64(char.Atk), multiplier, float64(enemyDef), float64(enemyRes), kind)
	total, dps, hasSustain := damage.Sustained(actual, duration, char.AtkInterval, targets)
	hits := 0
	if hasSustain {
		hits = damage.Hits(*duration, char.AtkInterval)
	}

	lines := output.Render(output.Report{
		Char:       char,
		SkillNum:   sk.Num,
		SkillName:  sk.Name,
		Rank:       rankKey,
		Kind:       kind,
		EnemyDef:   enemyDef,
		EnemyRes:   enemyRes,
		Targets:    targets,
		Multiplier: multiplier,
		Duration:   duration,
		Raw:        raw,
		Actual:     actual,
		Total:      total,
		DPS:        dps,
		HasSustain: hasSustain,
		Hits:       hits,
		InitSP:     rank.InitSP,
		CostSP:     rank.CostSP,
	})
	output.Print(lines)

	if err := output.AppendLog(cfg.LogFile, lines); err != nil {
		fmt.Printf("  [警告] ログ保存に失敗しました: %v\n", err)
	} else {
		fmt.Printf("  [ログ保存] %s\n", cfg.LogFile)
	}
	return nil
}

func charLabel(c domain.Character) string {
	return fmt.Sprintf("%-16s  %-4s / %-10s  ATK:%4d  速度:%s", c.Name, c.Class, c.Subclass, c.Atk, c.AtkSpeedRaw)
}

func selectCharacter(characters []domain.Character, p *Prompter) (domain.Character, error) {
	for {
		query, err := p.Line("\nキャラ名または番号を入力 (一覧は 'list'): ")
		if err != nil {
			return domain.Character{}, err
		}
		if strings.EqualFold(query, "list") {
			for i, c := range characters {
				fmt.Printf("  %3d. %s\n", i+1, charLabel(c))
			}
			continue
		}

		if idx, err := strconv.Atoi(query); err == nil {
			if idx >= 1 && idx <= len(characters) {
				return characters[idx-1], nil
			}
		} else if query != "" {
			var matches []domain.Character
			for _, c := range characters {
				if strings.Contains(c.Name, query) {
					matches = append(matches, c)
				}
			}
			switch {
			case len(matches) == 1:
				return matches[0], nil
			case len(matches) > 1:
				fmt.Printf("  %d 件ヒットしました:\n", len(matches))
				for i, c := range matches {
					fmt.Printf("  %3d. %s\n", i+1, c.Name)
				}
				idx, err := p.SelectIndex(len(matches), "番号を選択")
				if err != nil {
					return domain.Character{}, err
				}
				return matches[idx], nil
			}
		}
		fmt.Println("  キャラが見つかりませんでした。もう一度入力してください。")
	}
}

func selectSkill(skills []domain.SkillRecord, p *Prompter) (domain.SkillRecord, error) {
	fmt.Println("\n【スキル選択】")
	for _, s := range skills {
		fmt.Printf("  %d. %s\n", s.Num, s.Name)
	}
	for {
		s, err := p.Line("スキル番号を入力 (1〜3): ")
		if err != nil {
			return domain.SkillRecord{}, err
		}
		if num, err := strconv.Atoi(s); err == nil {
			for _, sk := range skills {
				if sk.Num == num {
					return sk, nil
				}
			}
		}
		fmt.Println("  有効なスキル番号を入力してください。")
	}
}

func selectRank(sk domain.SkillRecord, p *Prompter) (string, error) {
	fmt.Println("\n【ランク選択】")
	var available []string
	for _, r := range domain.RankOrder {
		if _, ok := sk.Ranks[r]; ok {
			available = append(available, r)
		}
	}
	if len(available) == 0 {
		return "", fmt.Errorf("skill %d %s has no rank data", sk.Num, sk.Name)
	}

	for _, r := range available {
		rd := sk.Ranks[r]
		multStr := ""
		if rd.Multiplier != nil {
			multStr = fmt.Sprintf("  倍率:%.0f%%", *rd.Multiplier*100)
		}
		durStr := "  持続:なし"
		if rd.Duration != nil {
			durStr = fmt.Sprintf("  持続:%gs", *rd.Duration)
		}
		fmt.Printf("  %-6s  SP初期:%4s  SP必要:%4s%s%s\n",
			domain.RankDisplay[r], output.FormatSP(rd.InitSP), output.FormatSP(rd.CostSP), durStr, multStr)
	}

	for {
		input, err := p.Line("\nランクを入力 (例: 7 / 特化I / 特化II / 特化III): ")
		if err != nil {
			return "", err
		}
		norm := domain.NormalizeRank(input)
		if _, ok := sk.Ranks[norm]; ok {
			return norm, nil
		}
		if alias, ok := rankAliases[strings.ToLower(norm)]; ok {
			if _, ok := sk.Ranks[alias]; ok {
				return alias, nil
			}
		}
		fmt.Println("  有効なランクを入力してください。")
	}
}

func selectKind(char domain.Character, rank domain.RankRecord, p *Prompter) (damage.Kind, error) {
	fmt.Println("\n【ダメージ種別】")

	// Casters and explicit arts-damage effect text default to arts.
	artsAuto := char.Class == "術師" || strings.Contains(rank.Effect, "術ダメージ")

	physHint, artsHint := "  ← 推定", ""
	if artsAuto {
		physHint, artsHint = "", "  ← 推定"
	}
	fmt.Printf("  1. 物理ダメージ%s\n", physHint)
	fmt.Printf("  2. 術ダメージ%s\n", artsHint)

	def := "1"
	if artsAuto {
		def = "2"
	}
	for {
		s, err := p.Line(fmt.Sprintf("ダメージ種別を選択 [デフォルト: %s]: ", def))
		if err != nil {
			return damage.Physical, err
		}
		switch s {
		case "":
			if artsAuto {
				return damage.Arts, nil
			}
			return damage.Physical, nil
		case "1":
			return damage.Physical, nil
		case "2":
			return damage.Arts, nil
		}
		fmt.Println("  1 または 2 を入力してください。")
	}
}

// confirmMultiplier uses the extracted multiplier when present and asks for
// a manual figure otherwise. There is deliberately no silent 1.0 default:
// conditional or non-standard effect text must go through the operator.
func confirmMultiplier(rank domain.RankRecord, p *Prompter) (float64, error) {
	if rank.Multiplier != nil {
		return *rank.Multiplier, nil
	}
	fmt.Println("\n  [注意] 攻撃倍率を効果テキストから自動解析できませんでした。")
	if rank.Effect != "" {
		fmt.Printf("  効果テキスト: %s\n", rank.Effect)
	}
	return p.Float("  攻撃倍率を手動で入力 (例: 3.30 = 330%): ")
}

// confirmDuration offers a manual duration when the sheet has none. Empty
// input keeps the no-sustain state.
func confirmDuration(rank domain.RankRecord, p *Prompter) (*float64, error) {
	if rank.Duration != nil && *rank.Duration > 0 {
		d := *rank.Duration
		return &d, nil
	}
	fmt.Println("\n  [情報] 持続時間がデータにありません (持続:'-' またはデータ不足)")
	s, err := p.Line("  持続時間を手動で入力 (例: 40  / スキップはEnter): ")
	if err != nil {
		return nil, err
	}
	if s == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, nil
	}
	return &v, nil
}
