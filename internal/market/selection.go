package market

import "strconv"

// Selection identifies the listing shown in the detail view, if any.
// The zero value selects nothing.
type Selection struct {
	id  int
	set bool
}

// None returns an empty selection.
func None() Selection {
	return Selection{}
}

// Some selects the listing with the given id.
func Some(id int) Selection {
	return Selection{id: id, set: true}
}

// ID returns the selected id and whether anything is selected.
func (s Selection) ID() (int, bool) {
	return s.id, s.set
}

// IsNone reports whether nothing is selected.
func (s Selection) IsNone() bool {
	return !s.set
}

// Is reports whether the selection points at id.
func (s Selection) Is(id int) bool {
	return s.set && s.id == id
}

func (s Selection) String() string {
	if !s.set {
		return "none"
	}
	return "#" + strconv.Itoa(s.id)
}
