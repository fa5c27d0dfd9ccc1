// Package match picks the price table row that best fits a requested coin.
//
// Candidates are narrowed in four passes: year and mintmark, variety, overlap
// between the free-text details and the label qualifier, and finally the lowest
// grade 60 price. Only the last pass is reported as ambiguous.
package match

import (
	"errors"
	"fmt"
	"strings"

	"coinvalue/internal/coin"
)

// ErrYearNotFound is returned when no issue carries the requested year and mintmark.
var ErrYearNotFound = errors.New("year not found in series")

// TieBreakGrade is the grade whose price settles otherwise equal candidates.
const TieBreakGrade = 60

// Target is the coin being looked up.
type Target struct {
	Year    string
	Variety string
	Details string
}

// Result is the chosen issue. Note is set when the choice was arbitrary.
type Result struct {
	Issue coin.Issue
	Note  string
}

// Match finds the issue in issues that best fits t.
func Match(issues []coin.Issue, t Target) (Result, error) {
	key := NormalizeYearMintmark(t.Year)
	var cands []coin.Issue
	for _, is := range issues {
		if NormalizeYearMintmark(is.Label) == key {
			cands = append(cands, is)
		}
	}
	if len(cands) == 0 {
		return Result{}, ErrYearNotFound
	}
	if len(cands) == 1 {
		return Result{Issue: cands[0]}, nil
	}

	if t.Variety != "" {
		var same []coin.Issue
		for _, is := range cands {
			if strings.EqualFold(is.Variety, t.Variety) {
				same = append(same, is)
			}
		}
		if len(same) > 0 {
			cands = same
		}
		if len(cands) == 1 {
			return Result{Issue: cands[0]}, nil
		}
	}

	cands = bestDetail(cands, strings.ToLower(t.Details))
	if len(cands) == 1 {
		return Result{Issue: cands[0]}, nil
	}

	chosen := cheapest(cands)
	return Result{Issue: chosen, Note: ambiguity(t, chosen)}, nil
}

// DetailScore rates how well two detail strings agree: 3 when equal, 2 when
// one contains the other, 1 when exactly one is empty and 0 otherwise.
func DetailScore(a, b string) int {
	switch {
	case a == b:
		return 3
	case a == "" || b == "":
		return 1
	case strings.Contains(a, b) || strings.Contains(b, a):
		return 2
	}
	return 0
}

func bestDetail(cands []coin.Issue, details string) []coin.Issue {
	best := -1
	var out []coin.Issue
	for _, is := range cands {
		s := DetailScore(Residual(is.Label), details)
		switch {
		case s > best:
			best = s
			out = []coin.Issue{is}
		case s == best:
			out = append(out, is)
		}
	}
	return out
}

// cheapest returns the candidate with the lowest non-zero grade 60 price.
// When none has one the first candidate wins.
func cheapest(cands []coin.Issue) coin.Issue {
	chosen := cands[0]
	var low coin.Cents
	for _, is := range cands {
		p := is.PriceAt(TieBreakGrade)
		if p == 0 {
			continue
		}
		if low == 0 || p < low {
			low = p
			chosen = is
		}
	}
	return chosen
}

func ambiguity(t Target, chosen coin.Issue) string {
	return fmt.Sprintf("Ambiguous variety/detail match (used fallback): requested %s, used %s",
		describe(t.Year, t.Details, t.Variety), describe(chosen.Label, "", chosen.Variety))
}

func describe(label, details, variety string) string {
	parts := []string{strings.TrimSpace(label)}
	if details = strings.TrimSpace(details); details != "" {
		parts = append(parts, details)
	}
	if variety = strings.TrimSpace(variety); variety != "" {
		parts = append(parts, "("+variety+")")
	} else {
		parts = append(parts, "(no variety)")
	}
	return strings.Join(parts, " ")
}
