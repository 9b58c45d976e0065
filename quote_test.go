// Copyright (C) 2024 Michael J. Fromberger. All Rights Reserved.

package joson_test

import (
	"testing"

	"github.com/creachadair/joson"
)

func TestQuote(t *testing.T) {
	tests := []struct {
		input, want string
	}{
		{"", `""`},
		{"plain", `"plain"`},
		{`say "hi"`, `"say \"hi\""`},
		{"back\\slash", `"back\\slash"`},
		{"tab\there", `"tab\there"`},
		{"line\nbreak", `"line\nbreak"`},
		{"\x01\x02", `"\u0001\u0002"`},
		{"π≈3", `"π≈3"`},
	}
	for _, tc := range tests {
		if got := joson.Quote(tc.input); got != tc.want {
			t.Errorf("Quote(%q): got %s, want %s", tc.input, got, tc.want)
		}
	}
}

func TestUnquote(t *testing.T) {
	tests := []struct {
		input, want string
	}{
		{`""`, ""},
		{`"plain"`, "plain"},
		{`"say \"hi\""`, `say "hi"`},
		{`"a\u0041b"`, "aAb"},
		{`"line\nbreak"`, "line\nbreak"},
		{`"solidus\/ok"`, "solidus/ok"},
		{`"\q"`, "�"}, // invalid escape degrades to the replacement rune
	}
	for _, tc := range tests {
		got, err := joson.Unquote(tc.input)
		if err != nil {
			t.Errorf("Unquote(%s): unexpected error: %v", tc.input, err)
		} else if got != tc.want {
			t.Errorf("Unquote(%s): got %q, want %q", tc.input, got, tc.want)
		}
	}
}

func TestUnquoteErrors(t *testing.T) {
	for _, input := range []string{``, `"`, `"missing close`, `no quotes`, `"trailing\"`, `"\u00"`} {
		if got, err := joson.Unquote(input); err == nil {
			t.Errorf("Unquote(%q): got %q, want error", input, got)
		}
	}
}

func TestQuoteRoundTrip(t *testing.T) {
	for _, s := range []string{"", "basic", "with \"quotes\"", "ctrl\x1f", "multi\nline\ttext", "ünïcödé"} {
		back, err := joson.Unquote(joson.Quote(s))
		if err != nil {
			t.Errorf("round trip %q: unexpected error: %v", s, err)
		} else if back != s {
			t.Errorf("round trip %q: got %q", s, back)
		}
	}
}
