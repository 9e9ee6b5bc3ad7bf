package engine

import "errors"

// ErrInsufficientText is returned when the posting text is too short
// to analyze. It is the only fatal scan error: every other failure is
// recovered into a degraded result.
var ErrInsufficientText = errors.New("posting text too short to analyze")
