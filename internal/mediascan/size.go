package mediascan

import "fmt"

// sizeUnits stops at GB: larger values stay expressed in GB.
//
//nolint:gochecknoglobals // Lookup table
var sizeUnits = [...]string{"B", "KB", "MB", "GB"}

// HumanSize formats bytes with two decimals in binary (1024) steps, e.g. "1.50 KB".
func HumanSize(bytes int64) string {
	size := float64(bytes)
	unit := 0

	for size >= 1024 && unit < len(sizeUnits)-1 {
		size /= 1024
		unit++
	}

	return fmt.Sprintf("%.2f %s", size, sizeUnits[unit])
}
