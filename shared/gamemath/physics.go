package gamemath

// ClampX clamps a horizontal position to [min, max]. When the range is
// inverted (a viewport narrower than twice the padding) the midpoint wins.
func ClampX(x, min, max float64) float64 {
	if min > max {
		return (min + max) / 2
	}
	if x < min {
		return min
	}
	if x > max {
		return max
	}
	return x
}

// ClampInt clamps v to [min, max].
func ClampInt(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// StepFall advances one tick of airborne motion. It returns the new position
// and velocity, and whether the body reached the ground this tick.
func StepFall(y, velocityY, gravity, groundY float64) (newY, newVelocityY float64, landed bool) {
	velocityY += gravity
	y += velocityY
	if y >= groundY {
		return groundY, 0, true
	}
	return y, velocityY, false
}

// StepsToExit returns how many ticks a body moving at speed needs to cover
// distance, rounding partial ticks up.
func StepsToExit(distance, speed float64) int {
	if speed <= 0 {
		return 0
	}
	n := int(distance / speed)
	if float64(n)*speed < distance {
		n++
	}
	return n
}
