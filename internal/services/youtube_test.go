package services

import "testing"

func TestSanitizeChannelInput(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"canonical ID passthrough", "UCBJycsmduvYEL83R_U4JriQ", "UCBJycsmduvYEL83R_U4JriQ"},
		{"handle", "@mkbhd", "mkbhd"},
		{"channel URL", "https://www.youtube.com/channel/UCBJycsmduvYEL83R_U4JriQ", "UCBJycsmduvYEL83R_U4JriQ"},
		{"handle URL", "https://www.youtube.com/@mkbhd", "mkbhd"},
		{"user URL", "https://www.youtube.com/user/marquesbrownlee", "marquesbrownlee"},
		{"custom URL", "https://www.youtube.com/c/mkbhd", "mkbhd"},
		{"free text", "marques brownlee", "marques brownlee"},
		{"whitespace trimmed", "  mkbhd  ", "mkbhd"},
		{"short UC prefix is not an ID", "UCshort", "UCshort"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := SanitizeChannelInput(tc.input); got != tc.want {
				t.Errorf("SanitizeChannelInput(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestSanitizeChannelInputIdempotent(t *testing.T) {
	inputs := []string{
		"UCBJycsmduvYEL83R_U4JriQ",
		"@mkbhd",
		"https://www.youtube.com/@mkbhd",
		"marques brownlee",
	}

	for _, input := range inputs {
		once := SanitizeChannelInput(input)
		twice := SanitizeChannelInput(once)
		if once != twice {
			t.Errorf("sanitize not idempotent for %q: %q then %q", input, once, twice)
		}
	}
}

func TestFormatJoinDate(t *testing.T) {
	if got := formatJoinDate("2014-03-21T17:41:27Z"); got != "Mar 2014" {
		t.Errorf("expected Mar 2014, got %q", got)
	}
	if got := formatJoinDate("not a date"); got != "" {
		t.Errorf("expected empty string for bad input, got %q", got)
	}
}

func TestIsChannelID(t *testing.T) {
	if !isChannelID("UCBJycsmduvYEL83R_U4JriQ") {
		t.Error("expected canonical ID to be recognized")
	}
	if isChannelID("UCshort") {
		t.Error("short UC-prefixed string should not be an ID")
	}
	if isChannelID("mkbhd") {
		t.Error("handle should not be an ID")
	}
}
