// Package app is the composition root of codemarket.
//
// Run loads the config (config.Load), applies the -seed override, reads the
// saved preferences, opens the session log, loads the seed catalog, builds
// the state.Store and hands everything to ui.Run, which blocks until the
// user quits.
//
// Fatal errors are a malformed config file or seed catalog; both are
// returned wrapped. A log file that cannot be opened is not fatal: the
// session runs with a discarding logger and an empty activity view.
//
// Nothing is persisted between runs except preferences; every session
// starts again from the seed catalog.
package app
