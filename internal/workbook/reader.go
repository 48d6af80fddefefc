// Package workbook reads per-character skill workbooks.
package workbook

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/ishi-private/arknights-power-calc/internal/domain"
	"github.com/ishi-private/arknights-power-calc/internal/skill"
)

// Detail sheets are named "スキルN <skill name>1" (trailing literal 1).
// Other sheets in the workbook are summaries and get ignored.
var detailSheetRe = regexp.MustCompile(`^スキル(\d+) (.+?)1$`)

// LoadSkills reads <dir>/<charName>.xlsx and parses every skill detail
// sheet, sorted by skill number. Returns nil skills (and nil error) when
// the character has no workbook.
func LoadSkills(dir, charName string) ([]domain.SkillRecord, []string, error) {
	path := filepath.Join(dir, charName+".xlsx")
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, nil, nil
		}
		return nil, nil, fmt.Errorf("stat workbook %q: %w", path, err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open workbook %q: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	var skills []domain.SkillRecord
	var warnings []string
	for _, sheet := range f.GetSheetList() {
		m := detailSheetRe.FindStringSubmatch(sheet)
		if m == nil {
			continue
		}
		num, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		rows, err := sheetRows(f, sheet)
		if err != nil {
			return nil, nil, fmt.Errorf("read sheet %q: %w", sheet, err)
		}
		ranks, warns := skill.ParseRanks(rows)
		for _, w := range warns {
			warnings = append(warnings, sheet+": "+w)
		}
		skills = append(skills, domain.SkillRecord{Num: num, Name: m[2], Ranks: ranks})
	}
	sort.Slice(skills, func(i, j int) bool { return skills[i].Num < skills[j].Num })
	return skills, warnings, nil
}

// sheetRows converts a sheet into sparse column-letter keyed rows, dropping
// empty cells and all-empty rows.
func sheetRows(f *excelize.File, sheet string) ([]domain.RawRow, error) {
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, err
	}
	var out []domain.RawRow
	for _, cells := range rows {
		row := make(domain.RawRow)
		for i, v := range cells {
			if strings.TrimSpace(v) == "" {
				continue
			}
			col, err := excelize.ColumnNumberToName(i + 1)
			if err != nil {
				return nil, err
			}
			row[col] = v
		}
		if len(row) > 0 {
			out = append(out, row)
		}
	}
	return out, nil
}
