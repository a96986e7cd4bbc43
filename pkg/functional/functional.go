// Package f holds small generic slice and set helpers shared across the
// tool.
package f

// Map returns a new slice holding fn applied to every item of s.
func Map[T, V any](s []T, fn func(T) V) []V {
	result := make([]V, len(s))
	for i, item := range s {
		result[i] = fn(item)
	}
	return result
}

// Filtered returns a new slice holding the items of s for which test is true.
func Filtered[T any](s []T, test func(T) bool) []T {
	result := make([]T, 0, len(s))
	for _, item := range s {
		if test(item) {
			result = append(result, item)
		}
	}
	return result
}

// RemoveDuplicates returns a new slice with later duplicates dropped,
// preserving first-seen order.
func RemoveDuplicates[T comparable](s []T) []T {
	seen := make(map[T]bool, len(s))
	result := make([]T, 0, len(s))
	for _, item := range s {
		if !seen[item] {
			seen[item] = true
			result = append(result, item)
		}
	}
	return result
}

// Set is an unordered collection of unique items.
type Set[T comparable] map[T]struct{}

func NewSet[T comparable](items ...T) Set[T] {
	s := make(Set[T], len(items))
	for _, item := range items {
		s.Add(item)
	}
	return s
}

func (s Set[T]) Add(item T) {
	s[item] = struct{}{}
}

func (s Set[T]) Contains(item T) bool {
	_, ok := s[item]
	return ok
}

func (s Set[T]) Items() []T {
	items := make([]T, 0, len(s))
	for item := range s {
		items = append(items, item)
	}
	return items
}
