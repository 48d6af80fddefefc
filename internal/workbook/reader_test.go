package workbook

import (
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

func writeWorkbook(t *testing.T, dir, charName string) {
	t.Helper()
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	detail := "スキル2 テストスキル1"
	if _, err := f.NewSheet(detail); err != nil {
		t.Fatalf("new sheet: %v", err)
	}
	cells := map[string]any{
		"A1": "ランク", "B1": "SP初期", "C1": "SP必要", "D1": "持続", "E1": "効果",
		"A2": "1", "B2": 10, "C2": 21, "D2": 15, "E2": "攻撃力+50%",
		"A3": "2", "B3": 19,
		"A4": "3", "B4": 12, "C4": 17,
	}
	for ref, v := range cells {
		if err := f.SetCellValue(detail, ref, v); err != nil {
			t.Fatalf("set %s: %v", ref, err)
		}
	}

	// Overview sheets (no trailing 1) and unrelated sheets are ignored.
	for _, name := range []string{"スキル2 テストスキル2", "まとめ"} {
		if _, err := f.NewSheet(name); err != nil {
			t.Fatalf("new sheet: %v", err)
		}
	}

	first := "スキル1 シンプル1"
	if _, err := f.NewSheet(first); err != nil {
		t.Fatalf("new sheet: %v", err)
	}
	for ref, v := range map[string]any{"A2": "1", "B2": 5, "C2": 30, "D2": "-"} {
		if err := f.SetCellValue(first, ref, v); err != nil {
			t.Fatalf("set %s: %v", ref, err)
		}
	}

	if err := f.SaveAs(filepath.Join(dir, charName+".xlsx")); err != nil {
		t.Fatalf("save workbook: %v", err)
	}
}

func TestLoadSkills(t *testing.T) {
	dir := t.TempDir()
	writeWorkbook(t, dir, "テスト")

	skills, warnings, err := LoadSkills(dir, "テスト")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(warnings) != 0 {
		t.Fatalf("expected no warnings, got %#v", warnings)
	}
	if len(skills) != 2 {
		t.Fatalf("expected 2 skills, got %d: %#v", len(skills), skills)
	}

	// Sorted by skill number regardless of sheet order.
	if skills[0].Num != 1 || skills[0].Name != "シンプル" {
		t.Fatalf("unexpected first skill: %#v", skills[0])
	}
	if skills[1].Num != 2 || skills[1].Name != "テストスキル" {
		t.Fatalf("unexpected second skill: %#v", skills[1])
	}

	r1, ok := skills[0].Ranks["1"]
	if !ok {
		t.Fatalf("missing rank 1 in skill 1")
	}
	if r1.InitSP == nil || *r1.InitSP != 5 || r1.CostSP == nil || *r1.CostSP != 30 {
		t.Fatalf("unexpected SP values: %#v", r1)
	}
	if r1.Duration != nil {
		t.Fatalf("expected no duration for the '-' marker, got %v", *r1.Duration)
	}

	r3, ok := skills[1].Ranks["3"]
	if !ok {
		t.Fatalf("missing rank 3 in skill 2")
	}
	if r3.InitSP == nil || *r3.InitSP != 12 || r3.CostSP == nil || *r3.CostSP != 17 {
		t.Fatalf("unexpected resolved SP values: %#v", r3)
	}
	if r3.Duration == nil || *r3.Duration != 15 {
		t.Fatalf("expected inherited duration 15, got %v", r3.Duration)
	}
}

func TestLoadSkillsMissingWorkbook(t *testing.T) {
	skills, warnings, err := LoadSkills(t.TempDir(), "いないキャラ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if skills != nil || warnings != nil {
		t.Fatalf("expected nil results for a missing workbook")
	}
}
