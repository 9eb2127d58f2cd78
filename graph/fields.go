package graph

/**
 * fields.go - max / average / current extraction
 */

import (
	"fmt"
	"regexp"
	"strings"
)

/**
 * Per-direction patterns. All three fields must match, in order,
 * or the direction is reported as absent.
 */
var directionPatterns = map[Direction]*regexp.Regexp{
	In:  directionPattern(In),
	Out: directionPattern(Out),
}

func directionPattern(d Direction) *regexp.Regexp {
	return regexp.MustCompile(fmt.Sprintf(
		`(?i)Max %[1]s:\s*([^;]+);\s*Average %[1]s:\s*([^;]+);\s*Current %[1]s:\s*([^;]+);`,
		d.keyword(),
	))
}

/**
 * ParseSection extracts both directions from a section of flat text
 */
func ParseSection(section string) WindowStats {
	cleaned := collapseSpace(section)
	return WindowStats{
		In:  matchDirection(cleaned, In),
		Out: matchDirection(cleaned, Out),
	}
}

/**
 * ParseDirection extracts a single direction from a section of flat text
 */
func ParseDirection(section string, d Direction) *StatTriple {
	return matchDirection(collapseSpace(section), d)
}

func matchDirection(cleaned string, d Direction) *StatTriple {

	re, ok := directionPatterns[d]
	if !ok {
		return nil
	}

	m := re.FindStringSubmatch(cleaned)
	if m == nil {
		return nil
	}

	return &StatTriple{
		Max:     strings.TrimSpace(m[1]),
		Average: strings.TrimSpace(m[2]),
		Current: strings.TrimSpace(m[3]),
	}
}

/* every whitespace run, nbsp included, becomes a single space */
func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
