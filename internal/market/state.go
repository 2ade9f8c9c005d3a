package market

import "slices"

// State is one snapshot of a marketplace session.
type State struct {
	Listings    []Listing
	Selected    Selection
	FormVisible bool
	EditMode    bool
}

// NewState builds the session's starting state from seed listings. The first
// listing is pre-selected.
func NewState(seed []Listing) State {
	s := State{Listings: slices.Clone(seed)}
	if len(s.Listings) > 0 {
		s.Selected = Some(s.Listings[0].ID)
	}
	return s
}

// Find returns the listing with the given id.
func (s State) Find(id int) (Listing, bool) {
	idx := s.indexOf(id)
	if idx < 0 {
		return Listing{}, false
	}
	return s.Listings[idx], true
}

// SelectedListing returns the selected listing, if the selection still
// resolves to one.
func (s State) SelectedListing() (Listing, bool) {
	id, ok := s.Selected.ID()
	if !ok {
		return Listing{}, false
	}
	return s.Find(id)
}

// NextID returns 1 for an empty store, otherwise the largest id plus one.
func (s State) NextID() int {
	next := 1
	for _, l := range s.Listings {
		if l.ID >= next {
			next = l.ID + 1
		}
	}
	return next
}

// Count returns the number of listings.
func (s State) Count() int {
	return len(s.Listings)
}

// SoldCount returns how many listings have been purchased.
func (s State) SoldCount() int {
	n := 0
	for _, l := range s.Listings {
		if l.SoldOut {
			n++
		}
	}
	return n
}

// Equal reports whether two states hold the same listings, selection and
// form flags.
func (s State) Equal(other State) bool {
	return s.Selected == other.Selected &&
		s.FormVisible == other.FormVisible &&
		s.EditMode == other.EditMode &&
		slices.Equal(s.Listings, other.Listings)
}

// Clone returns a copy whose listings slice is independent of s.
func (s State) Clone() State {
	s.Listings = slices.Clone(s.Listings)
	return s
}

func (s State) indexOf(id int) int {
	return slices.IndexFunc(s.Listings, func(l Listing) bool { return l.ID == id })
}
