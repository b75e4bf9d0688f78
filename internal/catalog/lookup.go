package catalog

import (
	"sort"
	"strings"
	"unicode"

	"github.com/agnivade/levenshtein"
)

// Lookup resolves text to a book index, returning 0 if nothing matches.
//
// The text is normalized to title case and first compared against the full
// book names, ignoring trailing spaces so that a rendered name awaiting its
// chapter ("1 Samuel ") still resolves. Failing that, its prefixes are tried
// against the abbreviation index from longest to shortest, so that a longer
// abbreviation takes precedence over a shorter one that happens to match as
// well (e.g. "Jdg" is Judges, not "Jd", Jude).
//
// With the default abbreviations every name with trailing spaces resolves to
// the same book through the abbreviation scan as well. A catalog whose
// abbreviations were overridden may not, so there "Genesis " only resolves
// through the name comparison.
func (c *Catalog) Lookup(text string) int {
	normalized := titleCase(text)

	if index, ok := c.byName[strings.TrimRight(normalized, " ")]; ok {
		return index
	}

	runes := []rune(normalized)
	for n := len(runes); n > 0; n-- {
		if index, ok := c.byAbbreviation[string(runes[:n])]; ok {
			return index
		}
	}

	return 0
}

// IsValidPrefix returns whether the (title case normalized) text is a prefix of
// at least one abbreviation, i.e. whether further typing could still lead to
// a match.
func (c *Catalog) IsValidPrefix(text string) bool {
	prefix := titleCase(text)
	for abbreviation := range c.byAbbreviation {
		if len(prefix) <= len(abbreviation) && strings.HasPrefix(abbreviation, prefix) {
			return true
		}
	}
	return false
}

// Suggest returns up to n book names closest to text by edit distance, closest
// first. Names of equal distance keep catalog order.
func (c *Catalog) Suggest(text string, n int) []string {
	if n <= 0 {
		return nil
	}
	needle := strings.ToLower(strings.TrimSpace(text))
	if needle == "" {
		return nil
	}

	type candidate struct {
		name     string
		distance int
	}
	candidates := make([]candidate, len(c.entries))
	for i, e := range c.entries {
		name := strings.ToLower(e.Name)
		// compare against the same-length head of the name so that partial
		// input is not punished for everything it has not typed yet
		if r := []rune(name); len(r) > len([]rune(needle)) {
			name = string(r[:len([]rune(needle))])
		}
		candidates[i] = candidate{name: e.Name, distance: levenshtein.ComputeDistance(needle, name)}
	}
	sort.SliceStable(candidates, func(i, j int) bool { return candidates[i].distance < candidates[j].distance })

	if n > len(candidates) {
		n = len(candidates)
	}
	result := make([]string, n)
	for i := 0; i < n; i++ {
		result[i] = candidates[i].name
	}
	return result
}

// titleCase upper-cases every letter that follows a non-letter and lower-cases
// all other letters, e.g. "1 sAMUEL" -> "1 Samuel", "1jn" -> "1Jn".
func titleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	prevLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			if prevLetter {
				b.WriteRune(unicode.ToLower(r))
			} else {
				b.WriteRune(unicode.ToTitle(r))
			}
			prevLetter = true
		} else {
			b.WriteRune(r)
			prevLetter = false
		}
	}
	return b.String()
}
