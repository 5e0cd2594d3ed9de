package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/hotelhub/hotel-booking/internal/domain/pagination"
)

const (
	formatTable = "table"
	formatJSON  = "json"
	formatYAML  = "yaml"
)

const dateLayout = "2006-01-02"

// table writes rows of tab-separated cells; the first row is the header.
type table [][]string

func outputFormat(cmd *cobra.Command) (string, error) {
	format, _ := cmd.Flags().GetString("output")
	switch format {
	case formatTable, formatJSON, formatYAML:
		return format, nil
	default:
		return "", fmt.Errorf("unsupported output format %q (use table, json or yaml)", format)
	}
}

// render prints v as JSON or YAML, or rows as an aligned table.
func render(w io.Writer, format string, v any, rows table) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		for _, row := range rows {
			fmt.Fprintln(tw, strings.Join(row, "\t"))
		}
		return tw.Flush()
	}
}

// pageFooter renders "Page 2 of 5  [1] 2 [3] … [5]" under a paged table.
func pageFooter[T any](v pagination.View[T]) string {
	if v.TotalPages == 0 {
		return "No results"
	}
	parts := make([]string, 0, v.TotalPages)
	for _, l := range pagination.Links(v.Page, v.TotalPages) {
		switch {
		case l.Ellipsis:
			parts = append(parts, "…")
		case l.Current:
			parts = append(parts, "["+strconv.Itoa(l.Page)+"]")
		default:
			parts = append(parts, strconv.Itoa(l.Page))
		}
	}
	return fmt.Sprintf("Page %d of %d  %s", v.Page, v.TotalPages, strings.Join(parts, " "))
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func itoa(n int64) string {
	return strconv.FormatInt(n, 10)
}
