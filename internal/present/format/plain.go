package format

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/mireku/cardik/pkg/api"
)

// TSV columns: id, name, company, email, path:line
var headerLine = "id\tname\tcompany\temail\tsource\n"

func esc(field string) string {
	field = strings.ReplaceAll(field, "\t", "\\t")
	field = strings.ReplaceAll(field, "\n", "\\n")
	return field
}

func shortID(id string) string {
	if len(id) <= 12 {
		return id
	}
	return id[:12]
}

func WritePlainCards(w io.Writer, cards []api.Card, headers bool) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if headers {
		_, _ = io.WriteString(tw, headerLine)
	}
	for _, c := range cards {
		line := fmt.Sprintf("%s\t%s\t%s\t%s\t%s:%d\n",
			shortID(c.ID), esc(c.Name), esc(c.Company), esc(c.Email), esc(c.Path), c.Line)
		_, _ = io.WriteString(tw, line)
	}
	return tw.Flush()
}
