// Package roster loads the static character attribute CSV.
package roster

import (
	"encoding/csv"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/ishi-private/arknights-power-calc/internal/domain"
)

var atkSpeedRe = regexp.MustCompile(`(\d+(?:\.\d+)?)s`)

// ParseAtkInterval pulls the per-hit seconds out of strings like
// "1.25s(やや遅い)" or "0.78s(とても速い)". Falls back to 1.0s.
func ParseAtkInterval(s string) float64 {
	m := atkSpeedRe.FindStringSubmatch(s)
	if m == nil {
		return 1.0
	}
	v, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 1.0
	}
	return v
}

// Load reads the star-6 roster CSV. The header row, template rows (empty or
// placeholder name) and rows without a usable attack value are skipped.
func Load(path string) ([]domain.Character, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open roster csv %q: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read roster csv %q: %w", path, err)
	}

	var characters []domain.Character
	for i, row := range rows {
		if i == 0 {
			continue
		}
		if len(row) < 13 {
			continue
		}
		name := strings.TrimSpace(row[1])
		if name == "" || name == "名前" {
			continue
		}
		atk, err := strconv.Atoi(strings.TrimSpace(row[5]))
		if err != nil || atk == 0 {
			continue
		}

		c := domain.Character{
			Image:       strings.TrimSpace(row[0]),
			Name:        name,
			Class:       strings.TrimSpace(row[2]),
			Subclass:    strings.TrimSpace(row[3]),
			HP:          atoiOrZero(row[4]),
			Atk:         atk,
			Def:         atoiOrZero(row[6]),
			Res:         atoiOrZero(row[7]),
			Redeploy:    strings.TrimSpace(row[8]),
			Cost:        atoiOrZero(row[9]),
			Block:       atoiOrZero(row[10]),
			AtkInterval: ParseAtkInterval(row[11]),
			AtkSpeedRaw: strings.TrimSpace(row[11]),
			Source:      strings.TrimSpace(row[12]),
		}
		if len(row) > 13 {
			c.Tags = strings.TrimSpace(row[13])
		}
		characters = append(characters, c)
	}
	return characters, nil
}

func atoiOrZero(s string) int {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return v
}
