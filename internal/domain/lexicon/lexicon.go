// Package lexicon holds the category to trigger-keyword table that drives skill
// inference. A Lexicon is immutable once built and safe to share between goroutines.
package lexicon

import "strings"

type Entry struct {
	Category string
	Keywords []string
}

type Lexicon struct {
	entries []Entry
}

// New copies entries, lower-cases keywords and drops blank keywords and categories
// with no keywords left. Entry order is preserved.
func New(entries []Entry) *Lexicon {
	out := make([]Entry, 0, len(entries))
	for _, e := range entries {
		cat := strings.TrimSpace(e.Category)
		if cat == "" {
			continue
		}
		kws := make([]string, 0, len(e.Keywords))
		for _, k := range e.Keywords {
			k = strings.ToLower(strings.TrimSpace(k))
			if k == "" {
				continue
			}
			kws = append(kws, k)
		}
		if len(kws) == 0 {
			continue
		}
		out = append(out, Entry{Category: cat, Keywords: kws})
	}
	return &Lexicon{entries: out}
}

func Default() *Lexicon {
	return New([]Entry{
		{Category: "photography", Keywords: []string{"photo", "camera", "shoot", "photographer"}},
		{Category: "event_management", Keywords: []string{"manage", "organize", "coordinate", "planning"}},
		{Category: "customer_service", Keywords: []string{"customer", "service", "reception", "front desk"}},
		{Category: "technical_support", Keywords: []string{"technical", "tech", "computer", "it", "sound"}},
		{Category: "sales", Keywords: []string{"sales", "sell", "marketing", "promotion"}},
		{Category: "security", Keywords: []string{"security", "guard", "safety"}},
		{Category: "catering", Keywords: []string{"food", "catering", "kitchen", "serve"}},
		{Category: "decoration", Keywords: []string{"decor", "decoration", "design", "setup"}},
		{Category: "transportation", Keywords: []string{"driver", "transport", "delivery"}},
		{Category: "communication", Keywords: []string{"presenter", "mc", "anchor", "speaking"}},
	})
}

func (l *Lexicon) Len() int {
	if l == nil {
		return 0
	}
	return len(l.entries)
}

// Entries returns a copy of the table.
func (l *Lexicon) Entries() []Entry {
	if l == nil {
		return nil
	}
	out := make([]Entry, len(l.entries))
	for i, e := range l.entries {
		out[i] = Entry{Category: e.Category, Keywords: append([]string(nil), e.Keywords...)}
	}
	return out
}

// Matches reports whether any keyword of the entry occurs in text. text must
// already be lower-cased.
func (e Entry) Matches(text string) bool {
	for _, k := range e.Keywords {
		if strings.Contains(text, k) {
			return true
		}
	}
	return false
}

// Each calls fn for every entry in order without copying.
func (l *Lexicon) Each(fn func(Entry)) {
	if l == nil || fn == nil {
		return
	}
	for _, e := range l.entries {
		fn(e)
	}
}
