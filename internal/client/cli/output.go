package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"unicode/utf8"

	"github.com/dmitrijs2005/lifelog/internal/models"
)

const excerptLength = 60

// table writes tab-separated rows as aligned columns.
func table(w io.Writer, header string, rows func(tw io.Writer)) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, header)
	rows(tw)
	return tw.Flush()
}

// field prints a "Label: value" line, skipping empty values.
func field(w io.Writer, label, value string) {
	if value == "" {
		return
	}
	fmt.Fprintf(w, "%-12s %s\n", label+":", value)
}

func excerpt(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	if utf8.RuneCountInString(s) <= excerptLength {
		return s
	}
	r := []rune(s)
	return string(r[:excerptLength-1]) + "…"
}

func mood(m models.Mood) string {
	if m == "" {
		return ""
	}
	return m.Icon() + " " + m.Label()
}

func rating(n int) string {
	if n == 0 {
		return ""
	}
	return strings.Repeat("★", n) + strings.Repeat("☆", 5-n)
}

func tags(t models.Tags) string {
	if len(t) == 0 {
		return ""
	}
	return "#" + strings.Join(t, " #")
}
