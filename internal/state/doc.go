// Package state owns the marketplace session and is the only place that
// applies market actions to it.
//
// # Overview
//
// The Store wraps a market.State and publishes immutable snapshots to the UI.
// Two goroutines touch it: the Bubble Tea update loop, which dispatches
// actions that never prompt, and a command goroutine that dispatches Delete
// and Purchase, whose dialogs block until the user answers a modal.
//
// # Concurrency Model
//
// Two locks with different jobs:
//
//   - dispatchMu serialises Dispatch. An operation, including any dialog it
//     waits on, runs to completion before the next one reads the state.
//   - mu (RWMutex) guards the published snapshot and is held only while
//     copying, never while a dialog is open.
//
//	Dispatch(a, d)
//	  ├─ lock dispatchMu
//	  ├─ cur := Snapshot()          read lock, copy
//	  ├─ next := market.Apply(cur, a, d)   may block on d
//	  ├─ publish next               write lock, copy
//	  └─ unlock dispatchMu
//
// A reader calling Snapshot while a purchase confirmation is on screen gets
// the pre-purchase state immediately.
//
// # Snapshots
//
// Snapshot carries the state plus a Revision that increases only when a
// dispatch changed something, the name of the last action, and when it was
// applied. Listings are cloned on the way in and out.
//
// # Logging
//
// Every dispatch that changes the state is logged at info level with the
// action name, the affected listing id and the new revision. Dispatches that
// change nothing (declined confirmations, guards with nothing selected) are
// logged at debug level.
package state
