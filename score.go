package advisor

// Score reduces the analytics and the policy penalty weights into a single
// 0-100 portfolio health score.
//
// The score starts at 100 and loses the configured penalty for each raised
// flag; a flag with no configured penalty costs nothing. Two fixed
// escalations stack on top of the flag penalties: 10 more points when the
// top-5 concentration exceeds 60%, and 15 more when the complexity score
// exceeds 50%. The result is clamped to [0, 100] and rounded.
//
// Score is deterministic: identical inputs always yield the identical score.
func (a *Analytics) Score(policy PolicyProfile) int {
	score := 100.0
	for _, f := range a.Flags {
		score -= policy.Penalty(f)
	}
	if a.ConcentrationTop5 > 60 {
		score -= 10
	}
	if a.ComplexityScore > 50 {
		score -= 15
	}
	return clampScore(score)
}
