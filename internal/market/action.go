package market

// Action is a user intent handled by Apply. The set is closed: only the types
// in this file implement it.
type Action interface {
	action()
}

// Select shows the listing with the given id in the detail view.
type Select struct{ ID int }

// Deselect closes the detail view.
type Deselect struct{}

// OpenCreateForm opens an empty editor form.
type OpenCreateForm struct{}

// OpenEditForm opens the editor form pre-filled from the selected listing.
type OpenEditForm struct{}

// CloseForm dismisses the editor form without submitting.
type CloseForm struct{}

// Create adds a new listing built from Draft.
type Create struct{ Draft Draft }

// Update replaces the selected listing's editable fields with Draft.
type Update struct{ Draft Draft }

// Delete removes the selected listing after confirmation.
type Delete struct{}

// Purchase marks the selected listing as sold after confirmation.
type Purchase struct{}

func (Select) action()         {}
func (Deselect) action()       {}
func (OpenCreateForm) action() {}
func (OpenEditForm) action()   {}
func (CloseForm) action()      {}
func (Create) action()         {}
func (Update) action()         {}
func (Delete) action()         {}
func (Purchase) action()       {}

// ActionName returns a stable name for a, used in logs.
func ActionName(a Action) string {
	switch a.(type) {
	case Select:
		return "select"
	case Deselect:
		return "deselect"
	case OpenCreateForm:
		return "open_create_form"
	case OpenEditForm:
		return "open_edit_form"
	case CloseForm:
		return "close_form"
	case Create:
		return "create"
	case Update:
		return "update"
	case Delete:
		return "delete"
	case Purchase:
		return "purchase"
	default:
		return "unknown"
	}
}

// Prompts reports whether applying a may call the Dialogs port.
func Prompts(a Action) bool {
	switch a.(type) {
	case Delete, Purchase:
		return true
	default:
		return false
	}
}
