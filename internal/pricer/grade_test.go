package pricer_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"coinvalue/internal/pricer"
)

func TestParseGrade(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in    string
		grade int
		proof bool
		ok    bool
	}{
		{in: "MS-63", grade: 63, ok: true},
		{in: "ms65+", grade: 65, ok: true},
		{in: "VF 20", grade: 20, ok: true},
		{in: "PR 65", grade: 65, proof: true, ok: true},
		{in: "Proof", grade: pricer.ProofDefaultGrade, proof: true, ok: true},
		{in: "pr-69 DCAM", grade: 69, proof: true, ok: true},
		{in: "XF"},
		{in: ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()

			grade, proof, ok := pricer.ParseGrade(tt.in)
			require.Equal(t, tt.ok, ok)
			require.Equal(t, tt.grade, grade)
			require.Equal(t, tt.proof, proof)
		})
	}
}
