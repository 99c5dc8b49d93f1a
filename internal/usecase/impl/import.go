package impl

import (
	"strings"

	"lumera/internal/domain/entity"

	"github.com/spf13/cast"
)

// parseCatalogCSV parses supplier price lists. These arrive as flat
// spreadsheets exported to CSV with no quoting or embedded commas, so a
// plain line/comma split matches how they are actually produced. The first
// non-blank line is the header row; header names are matched lowercased and
// trimmed. Missing trailing cells read as empty strings.
func parseCatalogCSV(text string) []map[string]string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) < 2 {
		return nil
	}

	headers := strings.Split(lines[0], ",")
	for i, header := range headers {
		headers[i] = strings.ToLower(strings.TrimSpace(header))
	}

	rows := make([]map[string]string, 0, len(lines)-1)
	for _, line := range lines[1:] {
		cols := strings.Split(line, ",")
		row := make(map[string]string, len(headers))
		for i, header := range headers {
			if i < len(cols) {
				row[header] = strings.TrimSpace(cols[i])
			} else {
				row[header] = ""
			}
		}
		rows = append(rows, row)
	}

	return rows
}

// guessCategory assigns a category from keywords in the product name. The
// rules are ordered; the first hit wins and unmatched names land in
// Treatments.
func guessCategory(name string) string {
	n := strings.ToLower(name)
	switch {
	case strings.Contains(n, "wash"):
		return "Cleansers"
	case strings.Contains(n, "serum"):
		return "Serums"
	case strings.Contains(n, "moist"):
		return "Moisturizers"
	case strings.Contains(n, "sunscreen"), strings.Contains(n, "spf"):
		return "Sunscreen"
	case strings.Contains(n, "cream"):
		return "Treatments"
	default:
		return "Treatments"
	}
}

// pick returns the first non-empty value among the named columns.
func pick(row map[string]string, keys ...string) string {
	for _, key := range keys {
		if row[key] != "" {
			return row[key]
		}
	}

	return ""
}

// productFromImportRow maps one CSV row onto a product entity. Rows without
// a product name are unusable and reported as skipped. Numeric columns are
// coerced leniently; garbage reads as zero.
func productFromImportRow(row map[string]string, defaultCategory string, rating float64) (*entity.Product, bool) {
	name := pick(row, "product name", "name")
	if name == "" {
		return nil, false
	}

	category := defaultCategory
	if category == "" {
		category = guessCategory(name)
	}

	return &entity.Product{
		Name:          name,
		Category:      category,
		Description:   row["variant / type"],
		NetQuantity:   row["net qty"],
		OriginalPrice: cast.ToFloat64(pick(row, "mrp (₹)", "mrp", "mrp (rs)")),
		Price:         cast.ToFloat64(pick(row, "rate (₹)", "rate", "rate actual")),
		Rating:        rating,
		StockStatus:   entity.StockStatusInStock,
		Images:        []string{},
	}, true
}
