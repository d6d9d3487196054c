package usecase

import "strings"

// NormalizeTableはテーブル名を正準形「Table <N>」に揃える。
// "5" / "Table 5" / "table   5" はすべて "Table 5" になる。
func NormalizeTable(raw string) string {
	t := strings.Join(strings.Fields(raw), " ")
	if len(t) >= 6 && strings.EqualFold(t[:6], "table ") {
		return "Table " + t[6:]
	}
	return "Table " + t
}
