package catalog

import (
	"strings"
)

// ColumnMapping holds the resolved column index of each reference field.
// An index of -1 means the field's column was not found.
type ColumnMapping struct {
	ClefImputation int
	Libelle        int
	Fonction       int
}

// Found reports whether at least one column was recognized.
func (m ColumnMapping) Found() bool {
	return m.ClefImputation >= 0 || m.Libelle >= 0 || m.Fonction >= 0
}

// MapColumns matches spreadsheet headers to reference fields by heuristic.
// Matching is case and accent-mark tolerant and keeps the first hit per field.
func MapColumns(headers []string) ColumnMapping {
	m := ColumnMapping{ClefImputation: -1, Libelle: -1, Fonction: -1}

	for i, h := range headers {
		n := normalizeHeader(h)
		switch {
		case m.ClefImputation < 0 && (strings.Contains(n, "clef") || strings.Contains(n, "imputation") || n == "cle" || n == "key"):
			m.ClefImputation = i
		case m.Libelle < 0 && (strings.Contains(n, "libelle") || strings.Contains(n, "label")):
			m.Libelle = i
		case m.Fonction < 0 && (strings.Contains(n, "fonction") || strings.Contains(n, "function")):
			m.Fonction = i
		}
	}

	return m
}

// ExtractItems applies a column mapping to raw spreadsheet rows. Rows with
// all mapped fields blank are discarded.
func ExtractItems(m ColumnMapping, rows [][]string) []ItemInput {
	var items []ItemInput
	for _, row := range rows {
		item := ItemInput{
			ClefImputation: cell(row, m.ClefImputation),
			Libelle:        cell(row, m.Libelle),
			Fonction:       cell(row, m.Fonction),
		}
		if item.ClefImputation == "" && item.Libelle == "" && item.Fonction == "" {
			continue
		}
		items = append(items, item)
	}
	return items
}

func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func normalizeHeader(h string) string {
	n := strings.ToLower(strings.TrimSpace(h))
	replacer := strings.NewReplacer("é", "e", "è", "e", "ê", "e", "à", "a", "ç", "c", "_", " ")
	n = replacer.Replace(n)
	return strings.Join(strings.Fields(n), " ")
}
