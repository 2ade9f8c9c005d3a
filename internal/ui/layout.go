package ui

import "time"

// Terminal width thresholds for responsive layouts.
const (
	// LayoutCompactWidth is the threshold below which the header drops
	// secondary segments.
	LayoutCompactWidth = 100

	// LayoutExtraWideWidth gives the detail pane a larger share.
	LayoutExtraWideWidth = 160
)

// Activity view limits.
const (
	// ActivityLineLimit is how many log lines the activity view keeps.
	ActivityLineLimit = 500

	// ActivityRefreshInterval is how often the activity view re-reads the log
	// while it is open.
	ActivityRefreshInterval = time.Second
)

// Editor form dimensions.
const (
	formWidth             = 72
	formDescriptionHeight = 3
	formCodeHeight        = 8
)
