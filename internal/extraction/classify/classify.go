// internal/extraction/classify/classify.go
package classify

import "regexp"

// Entry maps a canonical label to the detection patterns that vote for it.
type Entry struct {
	Label    string
	patterns []*regexp.Regexp
}

// Catalog is an ordered label table. Order is part of the contract: for
// first-match classification it is the precedence of the labels, and for
// best-match classification it breaks ties.
type Catalog []Entry

// Label builds a catalog entry from pattern expressions, compiled once at
// start-up. Catalogs are immutable after construction.
func Label(label string, exprs ...string) Entry {
	patterns := make([]*regexp.Regexp, 0, len(exprs))
	for _, expr := range exprs {
		patterns = append(patterns, regexp.MustCompile(expr))
	}
	return Entry{Label: label, patterns: patterns}
}

// FirstMatch scans labels in catalog order and returns the first whose any
// pattern matches. Used for binary and short-answer fields where precedence
// decides ambiguous input ("không có nợ" must hit the no-debt label before
// its "có nợ" substring can hit the has-debt label).
func FirstMatch(text string, catalog Catalog) (string, bool) {
	for _, entry := range catalog {
		for _, p := range entry.patterns {
			if p.MatchString(text) {
				return entry.Label, true
			}
		}
	}
	return "", false
}

// BestMatch counts pattern hits per label across the whole catalog and
// returns the label with the most hits, ties broken by catalog order. Weak
// signals aggregate over a longer message instead of short-circuiting.
func BestMatch(text string, catalog Catalog) (string, bool) {
	best := -1
	bestCount := 0
	for i, entry := range catalog {
		count := 0
		for _, p := range entry.patterns {
			if p.MatchString(text) {
				count++
			}
		}
		if count > bestCount {
			best = i
			bestCount = count
		}
	}
	if best < 0 {
		return "", false
	}
	return catalog[best].Label, true
}
