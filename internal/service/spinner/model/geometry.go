package model

import (
	"math"
	"time"
)

const (
	// Полный оборот колеса в градусах
	FullTurn = 360.0
	// Указатель смотрит вверх (в системе координат SVG это 270°)
	DefaultPointerAngle = 270.0
)

// Normalize приводит угол к [0, 360)
func Normalize(angle float64) float64 {
	a := math.Mod(angle, FullTurn)
	if a < 0 {
		a += FullTurn
	}
	// -0.0 и 360 после округления тоже считаем нулём
	if a >= FullTurn || a == 0 {
		return 0
	}
	return a
}

// SegmentAngle ширина сектора при n активных опциях
func SegmentAngle(n int) float64 {
	if n <= 0 {
		return 0
	}
	return FullTurn / float64(n)
}

// SegmentCenter центр сектора index: index*360/n + 180/n
func SegmentCenter(index, n int) float64 {
	seg := SegmentAngle(n)
	return float64(index)*seg + seg/2
}

// TargetAngle угол колеса (mod 360), при котором центр сектора index стоит под указателем
func TargetAngle(index, n int, pointer float64) float64 {
	return Normalize(pointer - SegmentCenter(index, n))
}

// FinalRotation минимальный поворот вперёд от текущего угла до целевого
// плюс extraSpins полных оборотов для эффекта
func FinalRotation(current float64, index, n, extraSpins int, pointer float64) float64 {
	target := TargetAngle(index, n, pointer)
	travel := Normalize(target - Normalize(current))
	return current + float64(extraSpins)*FullTurn + travel
}

// PointedIndex какой сектор сейчас под указателем при данном повороте
func PointedIndex(rotation float64, n int, pointer float64) int {
	if n <= 0 {
		return -1
	}
	local := Normalize(pointer - rotation)
	idx := int(local / SegmentAngle(n))
	if idx >= n {
		idx = n - 1
	}
	return idx
}

// EaseOutCubic кривая замедления 1-(1-t)^3
func EaseOutCubic(t float64) float64 {
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}
	inv := 1 - t
	return 1 - inv*inv*inv
}

// Progress доля прошедшего времени анимации в [0, 1]
func Progress(elapsed, duration time.Duration) float64 {
	if duration <= 0 || elapsed >= duration {
		return 1
	}
	if elapsed <= 0 {
		return 0
	}
	return float64(elapsed) / float64(duration)
}

// Interpolate угол поворота в момент progress с учётом кривой замедления
func Interpolate(start, end, progress float64) float64 {
	if progress >= 1 {
		return end
	}
	return start + (end-start)*EaseOutCubic(progress)
}
