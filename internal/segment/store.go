package segment

import (
	"fmt"
	"image"
)

// slot is one segment's state
type slot struct {
	content  Content
	selected bool
}

// Store holds per-segment content and selection flags.
// It is not safe for concurrent use; the owning control serializes access.
type Store struct {
	slots []slot
}

// NewStore creates a store with n empty, unselected segments
func NewStore(n int) (*Store, error) {
	if n < 0 {
		return nil, fmt.Errorf("segment count %d: %w", n, ErrInvalidArgument)
	}
	return &Store{slots: make([]slot, n)}, nil
}

// Len returns the number of segments
func (s *Store) Len() int {
	return len(s.slots)
}

// Resize changes the number of segments. Indices below min(old, n) keep their
// content and selection, new indices start empty and unselected, and indices
// at or beyond n are discarded.
func (s *Store) Resize(n int) error {
	if n < 0 {
		return fmt.Errorf("segment count %d: %w", n, ErrInvalidArgument)
	}
	if n == len(s.slots) {
		return nil
	}

	slots := make([]slot, n)
	copy(slots, s.slots)
	s.slots = slots
	return nil
}

// SetTitle replaces the content at index with a title
func (s *Store) SetTitle(title string, index int) error {
	if err := s.check(index); err != nil {
		return err
	}
	s.slots[index].content = Text(title)
	return nil
}

// SetImage replaces the content at index with an image
func (s *Store) SetImage(img image.Image, index int) error {
	if err := s.check(index); err != nil {
		return err
	}
	if img == nil {
		return fmt.Errorf("nil image for segment %d: %w", index, ErrInvalidArgument)
	}
	s.slots[index].content = Image(img)
	return nil
}

// Content returns the content at index
func (s *Store) Content(index int) (Content, error) {
	if err := s.check(index); err != nil {
		return Content{}, err
	}
	return s.slots[index].content, nil
}

// IsSelected returns the selection flag at index
func (s *Store) IsSelected(index int) (bool, error) {
	if err := s.check(index); err != nil {
		return false, err
	}
	return s.slots[index].selected, nil
}

// Toggle flips the selection flag at index and returns the selected indices
// in ascending order.
func (s *Store) Toggle(index int) ([]int, error) {
	if err := s.check(index); err != nil {
		return nil, err
	}
	s.slots[index].selected = !s.slots[index].selected
	return s.Selected(), nil
}

// SetAll selects or clears every segment and reports whether any flag changed
func (s *Store) SetAll(selected bool) bool {
	changed := false
	for i := range s.slots {
		if s.slots[i].selected != selected {
			s.slots[i].selected = selected
			changed = true
		}
	}
	return changed
}

// Selected returns the selected indices in ascending order
func (s *Store) Selected() []int {
	selected := []int{}
	for i, sl := range s.slots {
		if sl.selected {
			selected = append(selected, i)
		}
	}
	return selected
}

func (s *Store) check(index int) error {
	if index < 0 || index >= len(s.slots) {
		return fmt.Errorf("index %d not in [0, %d): %w", index, len(s.slots), ErrIndexOutOfRange)
	}
	return nil
}
