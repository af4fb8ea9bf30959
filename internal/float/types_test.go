package float

import (
	"strings"
	"testing"
)

func TestSummarize(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"json message", `{"message":"https://images.dog.ceo/x.jpg","status":"success"}`, "https://images.dog.ceo/x.jpg"},
		{"json without message", `{"status":"success"}`, `{"status":"success"}`},
		{"plain text", "\n\n  hello world  \nsecond", "hello world"},
		{"empty", "   \n", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Summarize(tc.in); got != tc.want {
				t.Fatalf("Summarize(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestSummarize_TruncatesLongLines(t *testing.T) {
	got := Summarize(strings.Repeat("x", 500))
	if len([]rune(got)) != maxSummaryWidth {
		t.Fatalf("len = %d, want %d", len([]rune(got)), maxSummaryWidth)
	}
	if !strings.HasSuffix(got, "...") {
		t.Fatalf("got %q, want ellipsis", got)
	}
}
