// Package ui implements the codemarket terminal interface with Bubble Tea.
//
// The screen is a header, a command bar, the listing list on the left and
// the selected listing's detail on the right, with a footer below. The
// editor form, help overlay and confirm/alert dialogs draw as centered
// modals. An activity view tails the session log.
//
// All changes to listings go through state.Store. Delete and purchase may
// ask the user to confirm, so they run inside a tea.Cmd; their Confirm and
// Notify calls travel over a dialogBridge to Update, which shows a modal and
// sends the answer back. Other keys are ignored until the operation ends.
package ui
