// Package sparkline renders a numeric series as a small text plot built from
// Braille patterns. Each character cell holds two samples side by side, four
// dot levels per text row.
package sparkline

import (
	"fmt"
	"math"
	"strings"
)

// cells is indexed by [left][right] filled-dot counts, 0..4 each.
var cells = [5][5]rune{
	{'⠀', '⢀', '⢠', '⢰', '⢸'},
	{'⡀', '⣀', '⣠', '⣰', '⣸'},
	{'⡄', '⣄', '⣤', '⣴', '⣼'},
	{'⡆', '⣆', '⣦', '⣶', '⣾'},
	{'⡇', '⣇', '⣧', '⣷', '⣿'},
}

// Render draws data as a plot height character rows tall, labeled with the
// series max above and min below. Returns "" for an empty series.
func Render(height int, data []float64) string {
	if height <= 0 || len(data) == 0 {
		return ""
	}

	lo, hi := bounds(data)
	levels := dotLevels(data, lo, hi, height*4)

	var sb strings.Builder
	for row := 0; row < height; row++ {
		// dots available to this row: the band [floor, floor+4)
		floor := (height - 1 - row) * 4
		for col := 0; col < len(levels); col += 2 {
			left := clampDots(levels[col] - floor)
			right := 0
			if col+1 < len(levels) {
				right = clampDots(levels[col+1] - floor)
			}
			sb.WriteRune(cells[left][right])
		}
		sb.WriteByte('\n')
	}

	return fmt.Sprintf("%.2f\n%s%.2f", hi, sb.String(), lo)
}

// dotLevels maps each sample onto 1..maxDots so even the series minimum
// stays visible.
func dotLevels(data []float64, lo, hi float64, maxDots int) []int {
	levels := make([]int, len(data))
	for i, v := range data {
		if hi == lo {
			levels[i] = maxDots / 2
			continue
		}
		levels[i] = 1 + int(math.Round((v-lo)/(hi-lo)*float64(maxDots-1)))
	}

	return levels
}

func clampDots(n int) int {
	if n < 0 {
		return 0
	}
	if n > 4 {
		return 4
	}

	return n
}

func bounds(data []float64) (lo, hi float64) {
	lo, hi = data[0], data[0]
	for _, v := range data[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}

	return lo, hi
}
