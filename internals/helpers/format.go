// file: internals/helpers/format.go
package helper

import (
	"math"
	"strconv"
	"strings"
)

// FormatScore: tampilan nilai, maksimal 1 angka di belakang koma.
// Tidak pernah lebih presisi dari input ("14" tetap "14", bukan "14.0").
// decimalSep mengikuti locale caller (mis. "," untuk fr/id).
func FormatScore(score float64, decimalSep string) string {
	rounded := math.Round(score*10) / 10
	s := strconv.FormatFloat(rounded, 'f', -1, 64)
	if decimalSep != "" && decimalSep != "." {
		s = strings.Replace(s, ".", decimalSep, 1)
	}
	return s
}

// DecimalSepFromLocale: pemetaan kecil untuk locale yang kita layani.
func DecimalSepFromLocale(locale string) string {
	switch strings.ToLower(strings.SplitN(locale, "-", 2)[0]) {
	case "fr", "id", "de", "es":
		return ","
	default:
		return "."
	}
}
