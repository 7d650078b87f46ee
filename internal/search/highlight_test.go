package search_test

import (
	"reflect"
	"strings"
	"testing"

	"property_search/internal/search"
)

func TestHighlight(t *testing.T) {
	cases := []struct {
		name string
		s    string
		term string
		want []search.Span
	}{
		{
			name: "prefix match",
			s:    "Lovely Loft", term: "lovely",
			want: []search.Span{{Text: "Lovely", Match: true}, {Text: " Loft"}},
		},
		{
			name: "empty term",
			s:    "Lovely Loft", term: "",
			want: []search.Span{{Text: "Lovely Loft"}},
		},
		{
			name: "no match",
			s:    "Cozy Studio", term: "loft",
			want: []search.Span{{Text: "Cozy Studio"}},
		},
		{
			name: "several matches",
			s:    "Lo and LO", term: "lo",
			want: []search.Span{{Text: "Lo", Match: true}, {Text: " and "}, {Text: "LO", Match: true}},
		},
		{
			name: "adjacent repeats are separate spans",
			s:    "aaa", term: "a",
			want: []search.Span{{Text: "a", Match: true}, {Text: "a", Match: true}, {Text: "a", Match: true}},
		},
		{
			name: "non-overlapping scan",
			s:    "aaa", term: "aa",
			want: []search.Span{{Text: "aa", Match: true}, {Text: "a"}},
		},
		{
			name: "metacharacters literal",
			s:    "Flat [2] (city)", term: "(city)",
			want: []search.Span{{Text: "Flat [2] "}, {Text: "(city)", Match: true}},
		},
		{
			name: "multibyte",
			s:    "Maison Élégante", term: "élé",
			want: []search.Span{{Text: "Maison "}, {Text: "Élé", Match: true}, {Text: "gante"}},
		},
		{
			name: "empty input",
			s:    "", term: "x",
			want: []search.Span{{Text: ""}},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := search.Highlight(tc.s, tc.term)
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("Highlight(%q, %q) = %+v, want %+v", tc.s, tc.term, got, tc.want)
			}
		})
	}
}

func TestHighlight_RoundTrip(t *testing.T) {
	inputs := []string{"Lovely Loft", "aaaa", "Ünïcödé ünï", "x", "", "The loft, the LOFT, the lOfT"}
	terms := []string{"", "a", "loft", "ünï", "zz", "the "}
	for _, s := range inputs {
		for _, term := range terms {
			var b strings.Builder
			for _, sp := range search.Highlight(s, term) {
				b.WriteString(sp.Text)
			}
			if b.String() != s {
				t.Fatalf("Highlight(%q, %q) rebuilt %q", s, term, b.String())
			}
		}
	}
}

func TestHighlight_MatchesEqualTerm(t *testing.T) {
	for _, sp := range search.Highlight("Loft lOfT LOFT", "loft") {
		if sp.Match && !strings.EqualFold(sp.Text, "loft") {
			t.Fatalf("marked span %q does not equal term", sp.Text)
		}
	}
}
