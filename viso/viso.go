// Copyright (C) 2024 Michael J. Fromberger. All Rights Reserved.

// Package viso renders joson values for human eyes: a recolorizing
// pretty-printer for serialized text, and a terminal progress bar that plugs
// into the parser as a joson.Meter.
//
// All output styling is carried by an explicit Style value. Use DefaultStyle
// for ANSI colors, PlainStyle for none, or AutoStyle to choose based on
// whether the target writer is a terminal.
package viso

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// A Style selects the rendering functions used to color output. Each
// function receives a span of text and returns it wrapped in the style's
// escape codes (or unchanged, for a plain style).
type Style struct {
	String  func(...any) string // quoted string spans
	Digit   func(...any) string // digits and decimal points
	Keyword func(...any) string // true/false/null and their visualize spellings

	// Quartile colors a progress bar by its completed quarter.
	Quartile [4]func(...any) string
}

// DefaultStyle returns a Style rendering ANSI colors: green strings, cyan
// digits, red keywords, and red/yellow/green/cyan progress quartiles.
func DefaultStyle() *Style {
	return &Style{
		String:  color.New(color.FgGreen, color.Bold).SprintFunc(),
		Digit:   color.New(color.FgCyan, color.Bold).SprintFunc(),
		Keyword: color.New(color.FgRed, color.Bold).SprintFunc(),
		Quartile: [4]func(...any) string{
			color.New(color.FgRed, color.Bold).SprintFunc(),
			color.New(color.FgYellow, color.Bold).SprintFunc(),
			color.New(color.FgGreen, color.Bold).SprintFunc(),
			color.New(color.FgCyan, color.Bold).SprintFunc(),
		},
	}
}

// PlainStyle returns a Style that renders all spans unchanged.
func PlainStyle() *Style {
	return &Style{
		String:   fmt.Sprint,
		Digit:    fmt.Sprint,
		Keyword:  fmt.Sprint,
		Quartile: [4]func(...any) string{fmt.Sprint, fmt.Sprint, fmt.Sprint, fmt.Sprint},
	}
}

// AutoStyle returns DefaultStyle when w is a terminal and PlainStyle
// otherwise.
func AutoStyle(w io.Writer) *Style {
	if f, ok := w.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		return DefaultStyle()
	}
	return PlainStyle()
}

// Keyword spellings recognized by Reprint, looked up by first letter.
var keywords = map[byte]string{
	't': "true",
	'T': "True",
	'f': "false",
	'F': "False",
	'n': "null",
	'N': "NullPtr",
}

// Reprint writes text to w re-indented by brace depth, with indent spaces
// per level, colorizing string spans, digits, and keyword spellings
// according to style. A nil style means PlainStyle. The input is typically
// the output of Value.JSON or Value.Visualize, but any brace-structured text
// works.
func Reprint(w io.Writer, text string, style *Style, indent int) error {
	if style == nil {
		style = PlainStyle()
	}

	tab := make([]string, 16)
	for i := range tab {
		tab[i] = strings.Repeat(" ", indent*i)
	}
	pad := func(level int) string {
		if level < 0 {
			return ""
		}
		if level < len(tab) {
			return tab[level]
		}
		return tab[len(tab)-1]
	}

	var sb strings.Builder
	level := 0
	beginLine := false

	for i := 0; i < len(text); i++ {
		c := text[i]
		switch {
		case c == '{':
			level++
			sb.WriteByte(c)
		case c == '}':
			level--
			sb.WriteString(pad(level))
			sb.WriteByte(c)
		case c == '\n':
			sb.WriteByte(c)
			beginLine = true
			continue
		default:
			if beginLine {
				sb.WriteString(pad(level))
			}
			switch {
			case c == '"':
				// The whole quoted span, escapes included, gets one color.
				end := i + 1
				esc := false
				for end < len(text) {
					if text[end] == '"' && !esc {
						break
					}
					esc = text[end] == '\\' && !esc
					end++
				}
				if end < len(text) {
					end++
				}
				sb.WriteString(style.String(text[i:end]))
				i = end - 1
			case c == '.' || ('0' <= c && c <= '9'):
				sb.WriteString(style.Digit(string(c)))
			default:
				if kw, ok := keywords[c]; ok && strings.HasPrefix(text[i:], kw) {
					sb.WriteString(style.Keyword(kw))
					i += len(kw) - 1
				} else {
					sb.WriteByte(c)
				}
			}
		}
		beginLine = false
	}

	_, err := io.WriteString(w, sb.String())
	return err
}
