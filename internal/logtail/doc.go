// Package logtail reads the tail of the session log and turns its JSON
// records into lines for the activity view.
//
// Read keeps a ring buffer of the last maxLines lines so large logs are
// scanned once with bounded memory. Missing files read as empty.
//
// Parse decodes one zerolog record into an Entry; anything that is not a
// JSON object is kept verbatim in Entry.Raw. Format renders an Entry as
//
//	15:04:05 INFO [store] listing created action=create listing_id=4
//
// with the remaining fields sorted by key.
package logtail
