// Package config loads codemarket's startup settings.
//
// # Configuration Discovery
//
// Load resolves the file in this order:
//
//  1. An explicit path, when given (the -config flag)
//  2. Otherwise ~/.config/codemarket/config.toml
//  3. A missing file yields the defaults below
//  4. Blank or out-of-range fields fall back to their defaults
//
// # TOML Format
//
//	seed_path = "~/.config/codemarket/seed.toml"
//	log_path = "~/.local/state/codemarket/codemarket.log"
//	currency = "KRW"
//	preview_lines = 2
//	lock_sold_rows = false
//
// # Fields
//
//   - SeedPath: catalog of listings loaded at startup (see market.LoadSeed).
//     A missing catalog means the built-in sample listings.
//   - LogPath: JSON log file for the session; the TUI owns the terminal.
//   - Currency: label printed after prices.
//   - PreviewLines: code lines shown in each list row, capped at 10.
//   - LockSoldRows: when true, sold rows cannot be selected from the list.
//
// Paths starting with ~ are expanded against the user's home directory.
//
// # Error Handling
//
// Unreadable files and invalid TOML are errors; app.Run treats them as fatal.
// A missing file is not an error.
package config
