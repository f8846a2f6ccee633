// Package export converts publications to citation formats.
package export

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/vilab/labsite/internal/publication"
)

// ToBibTeX converts a publication to a BibTeX entry with the given key.
func ToBibTeX(p publication.Publication, key string) string {
	entryType := determineEntryType(p)
	var b strings.Builder

	b.WriteString(fmt.Sprintf("@%s{%s,\n", entryType, key))

	if len(p.Authors) > 0 {
		b.WriteString(fmt.Sprintf("  author = {%s},\n", formatAuthors(p.Authors)))
	}
	b.WriteString(fmt.Sprintf("  title = {%s},\n", escapeLatex(p.Title)))

	if p.Venue != "" {
		fieldName := "journal"
		switch entryType {
		case "inproceedings":
			fieldName = "booktitle"
		case "misc":
			fieldName = "howpublished"
		}
		b.WriteString(fmt.Sprintf("  %s = {%s},\n", fieldName, escapeLatex(p.Venue)))
	}

	if y := publication.YearOf(p); y != 0 {
		b.WriteString(fmt.Sprintf("  year = {%d},\n", y))
	}
	if p.ArxivURL != "" {
		b.WriteString(fmt.Sprintf("  url = {%s},\n", p.ArxivURL))
	} else if p.PDFURL != "" && p.PDFURL != "#" && !strings.HasPrefix(p.PDFURL, "/") {
		b.WriteString(fmt.Sprintf("  url = {%s},\n", p.PDFURL))
	}
	if len(p.Keywords) > 0 {
		b.WriteString(fmt.Sprintf("  keywords = {%s},\n", escapeLatex(strings.Join(p.Keywords, ", "))))
	}

	b.WriteString("}\n")
	return b.String()
}

// ToBibTeXList converts publications to BibTeX. Patents have no BibTeX
// form and are skipped. Keys are unique within the list.
func ToBibTeXList(pubs []publication.Publication) string {
	keys := make(map[string]int)
	var entries []string
	for _, p := range pubs {
		if p.IsPatent() {
			continue
		}
		key := CiteKey(p)
		keys[key]++
		if n := keys[key]; n > 1 {
			key += string(rune('a' + n - 2))
		}
		entries = append(entries, ToBibTeX(p, key))
	}
	return strings.Join(entries, "\n")
}

// CiteKey builds a key from the first author's last name, the year and the
// first title word, e.g. "kim2024robust".
func CiteKey(p publication.Publication) string {
	var b strings.Builder
	if len(p.Authors) > 0 {
		fields := strings.Fields(p.Authors[0])
		if len(fields) > 0 {
			b.WriteString(keyPart(fields[len(fields)-1]))
		}
	}
	if y := publication.YearOf(p); y != 0 {
		b.WriteString(fmt.Sprint(y))
	}
	for _, w := range strings.Fields(p.Title) {
		if part := keyPart(w); part != "" && !stopWords[part] {
			b.WriteString(part)
			break
		}
	}
	if b.Len() == 0 {
		return "pub"
	}
	return b.String()
}

var stopWords = map[string]bool{"a": true, "an": true, "the": true, "on": true, "of": true, "towards": true}

func keyPart(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		if r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// determineEntryType returns the BibTeX entry type for a publication.
func determineEntryType(p publication.Publication) string {
	switch p.Type {
	case publication.Conference, publication.Workshop:
		return "inproceedings"
	case publication.Journal:
		return "article"
	case publication.Preprint:
		return "misc"
	}

	venue := strings.ToLower(p.Venue)
	if strings.Contains(venue, "arxiv") {
		return "misc"
	}
	if strings.Contains(venue, "proceedings") ||
		strings.Contains(venue, "conference") ||
		strings.Contains(venue, "workshop") {
		return "inproceedings"
	}
	return "article"
}

// formatAuthors joins display names with "and". Names are kept as written.
func formatAuthors(authors []string) string {
	names := make([]string, 0, len(authors))
	for _, a := range authors {
		if a = strings.TrimSpace(a); a != "" {
			names = append(names, escapeLatex(a))
		}
	}
	return strings.Join(names, " and ")
}

// escapeLatex escapes special LaTeX characters.
func escapeLatex(s string) string {
	// & must be first, before other escapes that might produce &
	replacer := strings.NewReplacer(
		"&", `\&`,
		"%", `\%`,
		"$", `\$`,
		"#", `\#`,
		"_", `\_`,
		"{", `\{`,
		"}", `\}`,
		"~", `\textasciitilde{}`,
		"^", `\textasciicircum{}`,
	)
	return replacer.Replace(s)
}
