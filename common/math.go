package common

// Gravity is the downward acceleration applied to airborne bodies, in world
// units per second squared.
const Gravity = 24.0

// Lerp interpolates linearly. t is not clamped, so values outside [0,1]
// extrapolate.
func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// Approach moves current toward target by at most step.
func Approach(current, target, step float64) float64 {
	if current < target {
		current += step
		if current > target {
			return target
		}
		return current
	}
	current -= step
	if current < target {
		return target
	}
	return current
}
