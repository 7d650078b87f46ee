package search

// Span is one piece of highlighted text.
type Span struct {
	Text  string
	Match bool
}

// Highlight splits s into plain and matched spans, marking every
// case-insensitive occurrence of term. Occurrences are found left to right
// without overlap, adjacent occurrences become separate spans and empty
// plain pieces are dropped. Joining the spans' text always yields s.
func Highlight(s, term string) []Span {
	if term == "" || s == "" {
		return []Span{{Text: s}}
	}
	var spans []Span
	pos := 0
	for {
		start, end := indexFold(s, term, pos)
		if start < 0 {
			break
		}
		if start > pos {
			spans = append(spans, Span{Text: s[pos:start]})
		}
		spans = append(spans, Span{Text: s[start:end], Match: true})
		pos = end
	}
	if pos < len(s) {
		spans = append(spans, Span{Text: s[pos:]})
	}
	return spans
}
