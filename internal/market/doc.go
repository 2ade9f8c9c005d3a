// Package market holds the domain of the code marketplace: listings, the
// current selection, the editor form rules, and the transition function that
// is the only code allowed to change any of them.
//
// # Overview
//
// A marketplace session is one value of State. Every user intent is one of a
// closed set of Action values, and Apply turns (State, Action) into the next
// State:
//
//	┌──────────┐   Action    ┌──────────────┐   State'   ┌──────────┐
//	│  State   │ ──────────> │   Apply()    │ ─────────> │ renderer │
//	└──────────┘             └──────┬───────┘            └──────────┘
//	                                │
//	                                ▼
//	                         Dialogs.Confirm / Dialogs.Notify
//
// Apply never touches the slice held by the incoming State. A mutation builds
// a fresh slice, so a snapshot handed to a renderer stays valid after the next
// transition.
//
// # Lifecycle
//
// A Listing is created from a Draft (the coordinator assigns ID, CreatedAt and
// SoldOut), replaced in place by an edit (ID, CreatedAt and SoldOut are kept),
// flipped to sold by a purchase, and removed by a delete. SoldOut only ever
// goes from false to true.
//
// # Dialogs
//
// Delete and Purchase are two-phase: they ask Dialogs.Confirm before acting
// and report through Dialogs.Notify afterwards. Both calls block until the
// user answers. Tests supply a scripted fake; the terminal UI supplies a
// channel bridge that renders a modal.
//
// # Selection
//
// Selection is an explicit optional id. The zero value means nothing is
// selected; there is no reserved id.
//
// # Editor form
//
// FormFields carries the raw text the user typed. ParseDraft checks that every
// required field is present and that the price is a whole, non-negative
// number before a Draft is produced. The coordinator trusts the Draft and does
// not validate again.
//
// # Presentation
//
// Row and Detail derive what a renderer shows for a listing: price or sold
// label, badge, code preview, whether the buy control is enabled. They hold no
// state of their own.
package market
