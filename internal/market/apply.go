package market

import "slices"

// Apply returns the state that follows s once a has been handled. Delete and
// Purchase talk to the user through d; every other action ignores it.
//
// Guards that find nothing selected return s unchanged.
func Apply(s State, a Action, d Dialogs) State {
	switch a := a.(type) {
	case Select:
		if _, ok := s.Find(a.ID); ok {
			s.Selected = Some(a.ID)
		}
		return s

	case Deselect:
		s.Selected = None()
		return s

	case OpenCreateForm:
		s.FormVisible = true
		s.EditMode = false
		return s

	case OpenEditForm:
		if _, ok := s.SelectedListing(); !ok {
			return s
		}
		s.FormVisible = true
		s.EditMode = true
		return s

	case CloseForm:
		s.FormVisible = false
		s.EditMode = false
		return s

	case Create:
		return create(s, a.Draft)

	case Update:
		return update(s, a.Draft)

	case Delete:
		return remove(s, d)

	case Purchase:
		return purchase(s, d)
	}
	return s
}

func create(s State, d Draft) State {
	l := Listing{
		ID:        s.NextID(),
		CreatedAt: JustNow,
	}.withDraft(d)

	listings := make([]Listing, 0, len(s.Listings)+1)
	listings = append(listings, l)
	listings = append(listings, s.Listings...)

	s.Listings = listings
	s.Selected = Some(l.ID)
	s.FormVisible = false
	s.EditMode = false
	return s
}

func update(s State, d Draft) State {
	current, ok := s.SelectedListing()
	if !ok {
		return s
	}
	edited := current.withDraft(d)

	s.Listings = replace(s.Listings, edited)
	s.Selected = Some(edited.ID)
	s.FormVisible = false
	s.EditMode = false
	return s
}

func remove(s State, d Dialogs) State {
	target, ok := s.SelectedListing()
	if !ok {
		return s
	}
	if !d.Confirm(ConfirmDelete(target.Title)) {
		return s
	}

	s.Listings = slices.DeleteFunc(slices.Clone(s.Listings), func(l Listing) bool {
		return l.ID == target.ID
	})
	s.Selected = None()
	d.Notify(Deleted(target.Title))
	return s
}

func purchase(s State, d Dialogs) State {
	target, ok := s.SelectedListing()
	if !ok {
		return s
	}
	// Checked before confirming so the user is never asked to re-buy.
	if target.SoldOut {
		d.Notify(AlreadyPurchased)
		return s
	}
	if !d.Confirm(ConfirmPurchase(target.Title)) {
		return s
	}

	target.SoldOut = true
	s.Listings = replace(s.Listings, target)
	s.Selected = Some(target.ID)
	d.Notify(Purchased(target.Title))
	return s
}

// replace returns a copy of listings with the entry sharing l's id swapped for l.
func replace(listings []Listing, l Listing) []Listing {
	out := slices.Clone(listings)
	for i := range out {
		if out[i].ID == l.ID {
			out[i] = l
		}
	}
	return out
}
