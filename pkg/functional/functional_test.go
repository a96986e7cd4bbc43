package f

import (
	"slices"
	"testing"
)

func TestMap(t *testing.T) {
	doubled := Map([]int{1, 2, 3}, func(n int) int { return n * 2 })
	if !slices.Equal(doubled, []int{2, 4, 6}) {
		t.Errorf("expected [2 4 6], got %v", doubled)
	}
}

func TestFiltered(t *testing.T) {
	even := Filtered([]int{1, 2, 3, 4, 5, 6}, func(n int) bool { return n%2 == 0 })
	if !slices.Equal(even, []int{2, 4, 6}) {
		t.Errorf("expected [2 4 6], got %v", even)
	}
}

func TestRemoveDuplicates(t *testing.T) {
	unique := RemoveDuplicates([]string{"a", "b", "a", "c", "b"})
	if !slices.Equal(unique, []string{"a", "b", "c"}) {
		t.Errorf("expected first-seen order [a b c], got %v", unique)
	}
}

func TestSet(t *testing.T) {
	s := NewSet("a", "b")
	if !s.Contains("a") || !s.Contains("b") {
		t.Error("set should contain its initial items")
	}
	if s.Contains("c") {
		t.Error("set should not contain missing items")
	}
	s.Add("c")
	if !s.Contains("c") {
		t.Error("set should contain added items")
	}
	items := s.Items()
	slices.Sort(items)
	if !slices.Equal(items, []string{"a", "b", "c"}) {
		t.Errorf("expected [a b c], got %v", items)
	}
}
