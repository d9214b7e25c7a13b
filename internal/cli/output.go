package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"gopkg.in/yaml.v3"
)

// Table is a rendered command result. Rows are printed as-is in table
// mode; Data is what json and yaml receive.
type Table struct {
	Headers []string
	Rows    [][]string
	Data    interface{}
}

func (e *Env) Print(t Table) error {
	return render(e.Out, e.CLI.Output, t)
}

func render(out io.Writer, format string, t Table) error {
	switch format {
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(t.Data)
	case "yaml":
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		defer enc.Close()
		return enc.Encode(t.Data)
	case "", "table":
		w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		if len(t.Headers) > 0 {
			fmt.Fprintln(w, strings.Join(t.Headers, "\t"))
		}
		for _, row := range t.Rows {
			fmt.Fprintln(w, strings.Join(row, "\t"))
		}
		return w.Flush()
	default:
		return fmt.Errorf("unsupported output format %q", format)
	}
}
