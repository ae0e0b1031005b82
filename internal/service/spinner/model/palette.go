package model

import (
	"fmt"
	"strconv"
)

// SegmentColors палитра секторов: оттенок равномерно по кругу,
// насыщенность и яркость чередуются, чтобы соседние сектора различались
func SegmentColors(count int) []string {
	colors := make([]string, 0, count)
	for i := 0; i < count; i++ {
		hue := float64(i) * FullTurn / float64(count)
		if hue >= FullTurn {
			hue -= FullTurn
		}
		saturation := 70 + (i%3)*10
		lightness := 50 + (i%4)*10
		colors = append(colors, fmt.Sprintf("hsl(%s, %d%%, %d%%)",
			strconv.FormatFloat(hue, 'f', -1, 64), saturation, lightness))
	}
	return colors
}

// Label подпись сектора, длинный текст обрезается с многоточием
func Label(text string, max int) string {
	if max <= 0 {
		return text
	}
	runes := []rune(text)
	if len(runes) <= max {
		return text
	}
	return string(runes[:max]) + "..."
}
