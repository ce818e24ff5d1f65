package utils

import (
	"fmt"
	"math"
)

// Returns the average of all given numbers n
func Average(n ...int) int {
	// Sum all numbers
	var sum int
	for _, num := range n {
		sum += num
	}

	// Divide sum by total numbers
	return sum / len(n)
}

// Clamps v to [0, 255] and truncates it to a byte (NaN becomes 0)
func ClampByte(v float64) uint8 {
	if math.IsNaN(v) {
		return 0
	}
	return uint8(math.Min(math.Max(v, 0), 255))
}

// ITU-R 601-2 luma transform of an RGB triple
func Luma(r, g, b uint8) uint8 {
	return ClampByte(0.299*float64(r) + 0.587*float64(g) + 0.114*float64(b))
}

// Print a Colored Block in terminal
func ColoredBlock(block string, red int, green int, blue int) string {
	return fmt.Sprintf("\033[48;2;%d;%d;%dm%s\033[0m", red, green, blue, block)
}
