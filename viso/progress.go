// Copyright (C) 2024 Michael J. Fromberger. All Rights Reserved.

package viso

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/creachadair/joson"
)

// Spinner runes cycled through the leading edge of the bar as it advances.
var spinner = [4]byte{'/', '-', '\\', '%'}

// A ProgressBar renders a single-line terminal progress bar, redrawn in
// place with a carriage return. It satisfies joson.Meter, so it can be
// attached to a Parser with SetMeter. The exported fields must be set before
// the first Update and not changed afterward.
type ProgressBar struct {
	W     io.Writer // render target (if nil, os.Stdout)
	Style *Style    // colors (if nil, PlainStyle)
	Width int       // bar width in columns (if 0, 50)
	Step  int       // minimum whole-percent advance between redraws (if 0, 1)

	pct int // last rendered percentage
}

var _ joson.Meter = (*ProgressBar)(nil)

// NewProgressBar constructs a ProgressBar writing to w with default
// settings.
func NewProgressBar(w io.Writer) *ProgressBar { return &ProgressBar{W: w} }

// Update redraws the bar for cur completed units out of total. Redraws are
// throttled: below 100% the bar is repainted only when the percentage has
// advanced by at least Step since the last paint.
func (p *ProgressBar) Update(cur, total int) {
	if total <= 0 {
		return
	}
	rate := float64(cur) / float64(total)
	pos := int(rate * float64(4*p.width()))
	pct := int(rate * 100)

	step := p.Step
	if step <= 0 {
		step = 1
	}
	if pct < 100 && pct-p.pct < step {
		return
	}
	p.pct = pct

	style := p.Style
	if style == nil {
		style = PlainStyle()
	}
	paint := style.Quartile[min(int(rate*4), 3)]

	var sb strings.Builder
	sb.WriteByte('\r')
	sb.WriteString(strings.Repeat(" ", 80))
	sb.WriteByte('\r')
	if cur < total {
		bar := "[" + strings.Repeat("#", pos/4) +
			string(spinner[pos%4]) +
			strings.Repeat(".", p.width()-pos/4-1) + "]"
		sb.WriteString(paint(bar))
		if pct < 10 {
			sb.WriteString("   ")
		} else {
			sb.WriteString("  ")
		}
		fmt.Fprintf(&sb, "%d%%", pct)
	} else {
		sb.WriteString(paint("[" + strings.Repeat("#", p.width()) + "]"))
		sb.WriteString(" 100%")
	}

	w := p.W
	if w == nil {
		w = os.Stdout
	}
	io.WriteString(w, sb.String())
}

func (p *ProgressBar) width() int {
	if p.Width > 0 {
		return p.Width
	}
	return 50
}
