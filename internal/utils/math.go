// internal/utils/math.go
package utils

import "math"

// Lerp выполняет стандартную линейную интерполяцию
func Lerp(from, to, t float64) float64 {
	return from + (to-from)*t
}

// Clamp ограничивает значение диапазоном [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// TickDown уменьшает таймер на dt, не опуская его ниже нуля.
func TickDown(timer, dt float64) float64 {
	timer -= dt
	if timer < 0 {
		return 0
	}
	return timer
}

// NormalizeAngle нормализует угол в градусах в диапазон (-180, 180]
func NormalizeAngle(degrees float64) float64 {
	degrees = math.Mod(degrees, 360)
	if degrees > 180 {
		degrees -= 360
	} else if degrees <= -180 {
		degrees += 360
	}
	return degrees
}
