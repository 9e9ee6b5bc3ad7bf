package heuristic

import "strings"

// urgencyDensity counts urgency phrases per 100 words, clamped to [0,1]
func urgencyDensity(norm string, phrases []string) float64 {
	words := len(strings.Fields(norm))
	if words == 0 {
		return 0
	}

	count := 0
	for _, p := range phrases {
		count += strings.Count(norm, p)
	}

	return clamp(float64(count)/float64(words)*100, 0, 1)
}

// vaguenessRatio compares vague-phrase density to specific-requirement
// density, clamped to [0,1]. All vagueness with no specifics saturates
// at 1; any specifics dilute it.
func vaguenessRatio(norm string, vague, specific []string) float64 {
	vagueCount := 0
	for _, p := range vague {
		vagueCount += strings.Count(norm, p)
	}
	if vagueCount == 0 {
		return 0
	}

	specificCount := 0
	for _, p := range specific {
		specificCount += strings.Count(norm, p)
	}
	if specificCount == 0 {
		return 1
	}

	return clamp(float64(vagueCount)/float64(vagueCount+specificCount), 0, 1)
}
