package scoring

// DegenerateScore is returned when a cohort range has zero width
// (min == max) and min/max scaling would divide by zero. The upstream
// implementation left this unguarded and produced NaN/Inf; returning the
// midpoint is the documented policy here: a cohort where everyone shares
// the same value gives no ranking information either way.
const DegenerateScore = 50.0

// Normalize maps v onto 0..100 relative to a cohort min/max:
// (v-min)/(max-min)*100. The result is NOT clamped. v outside [min,max]
// (possible when a caller reuses stats from a different cohort) lands
// outside [0,100], which callers must tolerate.
func Normalize(v, min, max float64) float64 {
	if max == min {
		return DegenerateScore
	}
	return (v - min) / (max - min) * 100
}

// Invert flips a normalized score so that lower raw values rank higher.
func Invert(score float64) float64 {
	return 100 - score
}
