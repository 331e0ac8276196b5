// filepath: internal/report/format.go
package report

import (
	"strings"
	"unicode"

	"github.com/dustin/go-humanize"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// FormatPrice renders an amount with "." thousands separators, e.g. 50000 -> "50.000".
func FormatPrice(n int64) string {
	return humanize.FormatInteger("#.###,", int(n))
}

// Truncate keeps at most n runes of s. n <= 0 returns s unchanged.
func Truncate(s string, n int) string {
	if n <= 0 {
		return s
	}
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

var dStroke = strings.NewReplacer("đ", "d", "Đ", "D")

// FoldASCII strips diacritics so Vietnamese text fits a Latin-1 core font.
// "Tổng: 3 sản phẩm" becomes "Tong: 3 san pham".
func FoldASCII(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, dStroke.Replace(s))
	if err != nil {
		return s
	}
	return folded
}
