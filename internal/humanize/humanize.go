package humanize

import (
	"math"
	"strconv"
	"strings"
)

const bytesPerMB = 1 << 20

// BytesToMB renders a byte count as megabytes rounded to two decimals with
// trailing zeros dropped, e.g. 1048576 -> "1 MB", 1572864 -> "1.5 MB".
func BytesToMB(size int64) string {
	mb := math.Round(float64(size)/bytesPerMB*100) / 100
	return strconv.FormatFloat(mb, 'f', -1, 64) + " MB"
}

// ShortImageID trims the "sha256:" prefix and keeps the 12 character short form.
func ShortImageID(id string) string {
	trimmed := strings.TrimPrefix(strings.TrimSpace(id), "sha256:")
	return truncate(trimmed, 12)
}

func ShortID(id string) string {
	return truncate(strings.TrimSpace(id), 12)
}

func truncate(value string, n int) string {
	if len(value) <= n {
		return value
	}
	return value[:n]
}
