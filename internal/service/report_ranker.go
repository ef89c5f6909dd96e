package service

import (
	"cmp"
	"sort"
)

// orderKey is one level of a ranking: a comparison plus its direction.
type orderKey[T any] struct {
	compare    func(a, b T) int
	descending bool
}

func asc[T any, V cmp.Ordered](value func(T) V) orderKey[T] {
	return orderKey[T]{compare: func(a, b T) int { return cmp.Compare(value(a), value(b)) }}
}

func desc[T any, V cmp.Ordered](value func(T) V) orderKey[T] {
	return orderKey[T]{compare: func(a, b T) int { return cmp.Compare(value(a), value(b)) }, descending: true}
}

// rank orders a copy of rows by keys, keeping input order for full ties, and truncates to limit.
// A limit of zero or less returns every row.
func rank[T any](rows []T, keys []orderKey[T], limit int) []T {
	ranked := make([]T, len(rows))
	copy(ranked, rows)
	sort.SliceStable(ranked, func(i, j int) bool {
		for _, key := range keys {
			c := key.compare(ranked[i], ranked[j])
			if c == 0 {
				continue
			}
			if key.descending {
				return c > 0
			}
			return c < 0
		}
		return false
	})
	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}
