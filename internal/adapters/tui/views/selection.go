package views

import "sort"

// Selection tracks which occurrence indices the user has picked. It is a
// pure data structure; the scanning and rewriting core never sees it.
type Selection struct {
	picked map[int]bool
}

// NewSelection creates an empty selection
func NewSelection() *Selection {
	return &Selection{picked: make(map[int]bool)}
}

// Toggle flips the selection state of index i
func (s *Selection) Toggle(i int) {
	if s.picked[i] {
		delete(s.picked, i)
		return
	}
	s.picked[i] = true
}

// Contains reports whether index i is selected
func (s *Selection) Contains(i int) bool {
	return s.picked[i]
}

// SelectAll selects every index in [0, n)
func (s *Selection) SelectAll(n int) {
	for i := 0; i < n; i++ {
		s.picked[i] = true
	}
}

// SelectRange selects every index in [start, end)
func (s *Selection) SelectRange(start, end int) {
	for i := start; i < end; i++ {
		s.picked[i] = true
	}
}

// Clear empties the selection
func (s *Selection) Clear() {
	s.picked = make(map[int]bool)
}

// Count returns the number of selected indices
func (s *Selection) Count() int {
	return len(s.picked)
}

// Indices returns the selected indices in ascending order
func (s *Selection) Indices() []int {
	out := make([]int, 0, len(s.picked))
	for i := range s.picked {
		out = append(out, i)
	}
	sort.Ints(out)
	return out
}
