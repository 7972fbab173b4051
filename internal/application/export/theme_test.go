package export

import (
	"testing"

	"ancre-export-svc/internal/domain/deck"
)

func TestCleanHex(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"#1a1a2e", "1a1a2e"},
		{"1a1a2e", "1a1a2e"},
		{" #FF0000 ", "FF0000"},
		{"", ""},
	}
	for _, c := range cases {
		if got := CleanHex(c.in); got != c.want {
			t.Errorf("CleanHex(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestSafeFont_AllowList(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Arial", "Arial"},
		{"arial", "Arial"},
		{"TIMES NEW ROMAN", "Times New Roman"},
		{"trebuchet ms", "Trebuchet MS"},
		{"Comic Sans MS", "Arial"},
		{"", "Arial"},
		{"Wingdings", "Arial"},
	}
	for _, c := range cases {
		if got := SafeFont(c.in); got != c.want {
			t.Errorf("SafeFont(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestHeadingStyle_NilThemeUsesDefaults(t *testing.T) {
	s := HeadingStyle(nil)
	if s.Color != "1a1a2e" {
		t.Errorf("heading color = %q, want 1a1a2e", s.Color)
	}
	if s.Font != "Arial" {
		t.Errorf("heading font = %q, want Arial", s.Font)
	}
}

func TestBodyStyle_NilThemeUsesDefaults(t *testing.T) {
	s := BodyStyle(nil)
	if s.Color != "333333" {
		t.Errorf("body color = %q, want 333333", s.Color)
	}
	if s.Font != "Arial" {
		t.Errorf("body font = %q, want Arial", s.Font)
	}
}

func TestHeadingStyle_ThemeOverrides(t *testing.T) {
	theme := &deck.Theme{}
	theme.Colors.Heading = "#0f172a"
	theme.Fonts.Heading = "georgia"

	s := HeadingStyle(theme)
	if s.Color != "0f172a" {
		t.Errorf("heading color = %q, want 0f172a", s.Color)
	}
	if s.Font != "Georgia" {
		t.Errorf("heading font = %q, want Georgia", s.Font)
	}
}

func TestBodyStyle_PartialThemeFallsBack(t *testing.T) {
	theme := &deck.Theme{}
	theme.Fonts.Body = "Unknown Sans"

	s := BodyStyle(theme)
	if s.Color != "333333" {
		t.Errorf("body color = %q, want default 333333", s.Color)
	}
	if s.Font != "Arial" {
		t.Errorf("body font = %q, want fallback Arial", s.Font)
	}
}
