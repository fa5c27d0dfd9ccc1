package match

import (
	"regexp"
	"strings"
)

// DefaultMint is assumed when an identifier carries no mintmark.
const DefaultMint = "p"

var separators = regexp.MustCompile(`[\s,-]+`)

var mintmarks = map[string]struct{}{
	"p": {}, "d": {}, "s": {}, "w": {}, "c": {}, "o": {}, "cc": {},
}

// IsMintmark reports whether tok is a recognized mintmark code.
func IsMintmark(tok string) bool {
	_, ok := mintmarks[strings.ToLower(tok)]
	return ok
}

func tokens(s string) []string {
	var out []string
	for _, t := range separators.Split(strings.TrimSpace(s), -1) {
		if t != "" {
			out = append(out, t)
		}
	}
	return out
}

// NormalizeYearMintmark reduces an issue label or a requested year such as
// "1909-D", "1909, d" or "1909 D VDB" to the key "1909-d". A missing or
// unrecognized second token yields the default mint: "1909 VDB" is "1909-p".
func NormalizeYearMintmark(s string) string {
	year, mint, _ := split(s)
	return year + "-" + mint
}

// Residual returns the lower-cased text left over once the year and mintmark
// tokens are removed from s.
func Residual(s string) string {
	_, _, rest := split(s)
	return strings.ToLower(strings.Join(rest, " "))
}

func split(s string) (year, mint string, rest []string) {
	toks := tokens(s)
	if len(toks) == 0 {
		return "", DefaultMint, nil
	}
	year = strings.ToLower(toks[0])
	mint = DefaultMint
	rest = toks[1:]
	if len(rest) > 0 && IsMintmark(rest[0]) {
		mint = strings.ToLower(rest[0])
		rest = rest[1:]
	}
	return year, mint, rest
}
