// Package rank selects the top-N entries of a frequency table.
package rank

import (
	"errors"
	"sort"

	"github.com/fireflyai/essaylytics/models"
	"github.com/fireflyai/essaylytics/pkg/frequency"
)

// ErrInvalidArgument reports a malformed top-N parameter. The ranker itself
// clamps n <= 0 to an empty result; this sentinel is used by the CLI and HTTP
// boundaries when the parameter cannot be parsed as an integer at all.
var ErrInvalidArgument = errors.New("invalid argument")

// TopN returns the n most frequent entries of the table, ordered by count
// descending with ties broken by first occurrence ascending. The tie-break
// makes the output deterministic regardless of map iteration order.
//
// n <= 0 yields an empty result; n larger than the distinct token count
// returns every token.
func TopN(table *frequency.Table, n int) []models.WordCount {
	if table == nil || n <= 0 {
		return []models.WordCount{}
	}

	entries := table.Entries()
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		return entries[i].FirstSeen < entries[j].FirstSeen
	})

	limit := n
	if len(entries) < limit {
		limit = len(entries)
	}

	top := make([]models.WordCount, limit)
	for i := 0; i < limit; i++ {
		top[i] = models.WordCount{Word: entries[i].Token, Count: entries[i].Count}
	}
	return top
}
