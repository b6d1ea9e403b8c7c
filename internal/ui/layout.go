package ui

import "time"

// Terminal width thresholds for responsive layouts.
const (
	// LayoutCompactWidth is the threshold below which panes stack vertically.
	LayoutCompactWidth = 100

	// LayoutSideMinWidth is the narrowest the watchlist/poll column may be.
	LayoutSideMinWidth = 34
)

// Dialog widths.
const (
	detailWidth    = 72
	pollSetupWidth = 52
	noticeWidth    = 64
)

// Timing constants.
const (
	// DefaultRequestTimeout bounds a single catalog request.
	DefaultRequestTimeout = 10 * time.Second

	// AgeRefreshInterval controls how often relative times are redrawn.
	AgeRefreshInterval = 30 * time.Second
)

// Grid columns.
const (
	ratingColumnWidth = 5
	yearColumnWidth   = 6
	pollBarWidth      = 10
)
