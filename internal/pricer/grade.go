package pricer

import (
	"strconv"
	"strings"
)

// ProofDefaultGrade is assumed for a proof coin whose grade has no number.
const ProofDefaultGrade = 60

// ParseGrade reads a grade such as "MS-63", "PR 65" or "Proof". Only the digits
// are kept, so "+" designations are dropped. proof is set when the text
// contains "pr" in any case. ok is false when no grade can be derived.
func ParseGrade(text string) (grade int, proof bool, ok bool) {
	proof = strings.Contains(strings.ToLower(text), "pr")

	var digits strings.Builder
	for _, r := range text {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	if digits.Len() == 0 {
		if proof {
			return ProofDefaultGrade, true, true
		}
		return 0, false, false
	}
	g, err := strconv.Atoi(digits.String())
	if err != nil {
		return 0, proof, false
	}
	return g, proof, true
}
