package cart

// Selection is the set of product ids chosen for one checkout. It lives next
// to the Store, never inside it.
type Selection struct {
	ids   map[string]struct{}
	order []string
}

func NewSelection(productIDs ...string) *Selection {
	s := &Selection{ids: make(map[string]struct{})}
	for _, id := range productIDs {
		s.add(id)
	}
	return s
}

// Toggle flips membership of productID and reports whether it is now
// selected. A nil selection stays empty.
func (s *Selection) Toggle(productID string) bool {
	if s == nil {
		return false
	}
	if s.Has(productID) {
		delete(s.ids, productID)
		for i, id := range s.order {
			if id == productID {
				s.order = append(s.order[:i], s.order[i+1:]...)
				break
			}
		}
		return false
	}
	s.add(productID)
	return true
}

func (s *Selection) Has(productID string) bool {
	if s == nil {
		return false
	}
	_, ok := s.ids[productID]
	return ok
}

func (s *Selection) Len() int {
	if s == nil {
		return 0
	}
	return len(s.ids)
}

// IDs returns the selected ids in the order they were first selected.
func (s *Selection) IDs() []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

func (s *Selection) Clear() {
	if s == nil {
		return
	}
	s.ids = make(map[string]struct{})
	s.order = nil
}

func (s *Selection) add(productID string) {
	if s.ids == nil {
		s.ids = make(map[string]struct{})
	}
	if _, ok := s.ids[productID]; ok {
		return
	}
	s.ids[productID] = struct{}{}
	s.order = append(s.order, productID)
}
