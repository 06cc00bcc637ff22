// Package frequency builds word-occurrence tables from token sequences.
package frequency

// Entry is one row of a Table.
type Entry struct {
	Token     string
	Count     int
	FirstSeen int
}

// Table maps tokens to occurrence counts and remembers the index at which
// each token first appeared. The first-seen index is what makes ranking
// deterministic: it is unique per token by construction.
type Table struct {
	counts    map[string]int
	firstSeen map[string]int
	total     int
}

// Count builds a Table in a single pass over tokens.
func Count(tokens []string) *Table {
	t := &Table{
		counts:    make(map[string]int, len(tokens)),
		firstSeen: make(map[string]int, len(tokens)),
	}
	for i, token := range tokens {
		if _, seen := t.counts[token]; !seen {
			t.firstSeen[token] = i
		}
		t.counts[token]++
		t.total++
	}
	return t
}

// Merge aggregates tables in document order into a single table. First-seen
// indexes from later tables are offset by the total token count of everything
// before them, so the combined order matches a virtual concatenation of the
// inputs.
func Merge(tables ...*Table) *Table {
	merged := &Table{
		counts:    make(map[string]int),
		firstSeen: make(map[string]int),
	}
	offset := 0
	for _, t := range tables {
		if t == nil {
			continue
		}
		for token, count := range t.counts {
			if _, seen := merged.counts[token]; !seen {
				merged.firstSeen[token] = offset + t.firstSeen[token]
			}
			merged.counts[token] += count
		}
		merged.total += t.total
		offset += t.total
	}
	return merged
}

// Get returns the occurrence count for token, zero when absent.
func (t *Table) Get(token string) int {
	return t.counts[token]
}

// FirstSeen returns the index of the token's first occurrence.
func (t *Table) FirstSeen(token string) (int, bool) {
	i, ok := t.firstSeen[token]
	return i, ok
}

// Total is the number of tokens counted; it equals the sum of all counts.
func (t *Table) Total() int {
	return t.total
}

// Distinct is the number of unique tokens.
func (t *Table) Distinct() int {
	return len(t.counts)
}

// Entries returns every row of the table. Order is unspecified; callers that
// need a stable order sort by (Count, FirstSeen).
func (t *Table) Entries() []Entry {
	entries := make([]Entry, 0, len(t.counts))
	for token, count := range t.counts {
		entries = append(entries, Entry{
			Token:     token,
			Count:     count,
			FirstSeen: t.firstSeen[token],
		})
	}
	return entries
}
