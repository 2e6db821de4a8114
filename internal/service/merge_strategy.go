package service

// PickStrategy resolves the values gathered for one field into one value.
type PickStrategy[V any] interface {
	Pick(values []V) V
}

// PickMode picks the most frequent value. Among tied values the default is
// preferred when set; otherwise the earliest value in input order wins.
type PickMode[T comparable] struct {
	def    T
	hasDef bool
}

// NewPickMode returns a mode strategy without a preferred default.
func NewPickMode[T comparable]() PickMode[T] {
	return PickMode[T]{}
}

// NewPickModeOr returns a mode strategy preferring def on ties.
func NewPickModeOr[T comparable](def T) PickMode[T] {
	return PickMode[T]{def: def, hasDef: true}
}

func (p PickMode[T]) Pick(values []T) T {
	var zero T
	if len(values) == 0 {
		return zero
	}

	counts := make(map[T]int, len(values))
	order := make([]T, 0, len(values))
	best := 0
	for _, v := range values {
		if counts[v] == 0 {
			order = append(order, v)
		}
		counts[v]++
		best = max(best, counts[v])
	}

	if p.hasDef && counts[p.def] == best {
		return p.def
	}
	for _, v := range order {
		if counts[v] == best {
			return v
		}
	}
	return zero
}

// UnionDistinct flattens the gathered lists and keeps the first occurrence
// of every element.
type UnionDistinct[E comparable] struct{}

func (UnionDistinct[E]) Pick(values [][]E) []E {
	var out []E
	seen := make(map[E]struct{})
	for _, list := range values {
		for _, e := range list {
			if _, dup := seen[e]; dup {
				continue
			}
			seen[e] = struct{}{}
			out = append(out, e)
		}
	}
	return out
}

// FirstWins returns the first gathered value unconditionally.
type FirstWins[T any] struct{}

func (FirstWins[T]) Pick(values []T) T {
	var zero T
	if len(values) == 0 {
		return zero
	}
	return values[0]
}

// DiscardToEmpty always yields an empty list.
type DiscardToEmpty[E any] struct{}

func (DiscardToEmpty[E]) Pick([][]E) []E {
	return nil
}
