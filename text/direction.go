// Copyright 2026 The OpenKit Authors
// SPDX-License-Identifier: MIT

package text

import (
	"github.com/go-text/typesetting/di"
	"golang.org/x/text/unicode/bidi"
)

// detectDirection resolves the dominant direction of a paragraph using the
// Unicode bidi algorithm. Mixed-direction text takes the direction of its
// first run; empty or neutral text defaults to left-to-right.
func detectDirection(text string) di.Direction {
	if text == "" {
		return di.DirectionLTR
	}

	p := bidi.Paragraph{}
	if _, err := p.SetString(text, bidi.DefaultDirection(bidi.Neutral)); err != nil {
		return di.DirectionLTR
	}

	ordering, err := p.Order()
	if err != nil || ordering.NumRuns() == 0 {
		return di.DirectionLTR
	}
	run := ordering.Run(0)
	if run.Direction() == bidi.RightToLeft {
		return di.DirectionRTL
	}
	return di.DirectionLTR
}
