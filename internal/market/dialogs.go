package market

import "fmt"

// Dialogs is the host's modal dialog capability. Both methods block until the
// user has answered.
type Dialogs interface {
	// Confirm asks a yes/no question.
	Confirm(message string) bool
	// Notify shows a message and waits for acknowledgement.
	Notify(message string)
}

// User-facing dialog text.
const (
	AlreadyPurchased = "This code has already been purchased."
	MissingFields    = "Please fill in every field."
	InvalidPrice     = "Price must be a whole number of 0 or more."
)

// ConfirmDelete asks whether the listing titled title should be deleted.
func ConfirmDelete(title string) string {
	return fmt.Sprintf("Really delete %q?", title)
}

// Deleted acknowledges a completed delete.
func Deleted(title string) string {
	return fmt.Sprintf("%q was deleted.", title)
}

// ConfirmPurchase asks whether the listing titled title should be bought.
func ConfirmPurchase(title string) string {
	return fmt.Sprintf("Buy %q?", title)
}

// Purchased acknowledges a completed purchase.
func Purchased(title string) string {
	return fmt.Sprintf("Purchase of %q complete!", title)
}
