package domain

// ResonanceWindow is how many messages after the target are inspected.
const ResonanceWindow = 5

type ResonanceVector struct {
	Analytical int `json:"analytical_refinement_score"`
	Creative   int `json:"creative_build_score"`
	Critical   int `json:"critical_challenge_score"`
}

func (v ResonanceVector) Total() int {
	return v.Analytical + v.Creative + v.Critical
}

// ScoreResonance counts reactions from the reactor personas among the
// messages that follow messages[target]. It never looks back and never
// mutates its input.
func ScoreResonance(target int, messages []Message, reactors ReactorSet) ResonanceVector {
	var vector ResonanceVector
	if target < 0 || target >= len(messages) {
		return vector
	}

	start := target + 1
	end := min(start+ResonanceWindow, len(messages))
	for _, reaction := range messages[start:end] {
		switch reaction.Speaker {
		case "":
		case reactors.Analytical:
			vector.Analytical++
		case reactors.Creative:
			vector.Creative++
		case reactors.Critical:
			vector.Critical++
		}
	}

	return vector
}
