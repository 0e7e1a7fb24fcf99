package utils

import (
	"strings"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
	"github.com/vlcak/asciize/asciize"
)

// Normalize returns the lowercase ASCII form of s used as a comparison key.
func Normalize(s string) string {
	return strings.ToLower(asciize.Asciize(s))
}

func NormalizeArray(a []string) []string {
	for i, s := range a {
		a[i] = Normalize(s)
	}
	return a
}

// Similarity compares the normalized forms of a and b, 1 being identical.
func Similarity(a, b string) float64 {
	a, b = Normalize(a), Normalize(b)
	if a == b {
		return 1
	}
	return strutil.Similarity(a, b, metrics.NewJaroWinkler())
}

func Match(a, b string, threshold float64) bool {
	return Similarity(a, b) >= threshold
}
