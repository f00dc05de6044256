package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/goccy/go-json"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/samber/lo"

	"github.com/xeptore/filesize/size"
)

// Format selects how a conversion is written.
type Format string

const (
	FormatText  Format = "text"
	FormatJSON  Format = "json"
	FormatTable Format = "table"
)

var Formats = []Format{FormatText, FormatJSON, FormatTable}

// ParseFormat parses s case-insensitively into one of Formats.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(s))
	if !lo.Contains(Formats, f) {
		return "", fmt.Errorf("unsupported output format %q, expected one of: %s", s, strings.Join(lo.Map(Formats, func(f Format, _ int) string { return string(f) }), ", "))
	}
	return f, nil
}

type Options struct {
	Format Format
	Color  bool
}

// Write renders the conversion of q into s to w.
func Write(w io.Writer, q size.Quantity, s size.Sizes, opts Options) error {
	switch opts.Format {
	case FormatText, "":
		return writeText(w, q, s, opts.Color)
	case FormatJSON:
		return writeJSON(w, q, s)
	case FormatTable:
		return writeTable(w, q, s, opts.Color)
	default:
		panic("unknown output format: " + string(opts.Format))
	}
}

func writeText(w io.Writer, q size.Quantity, s size.Sizes, color bool) error {
	if !color {
		_, err := fmt.Fprintln(w, s.String())
		return err
	}

	fields := lo.Map(size.Units, func(u size.Unit, _ int) string {
		v := strconv.FormatUint(s.Get(u), 10) + " " + u.Label()
		if u == q.Unit {
			v = text.Colors{text.FgGreen, text.Bold}.Sprint(v)
		}
		return u.Label() + ": " + v
	})
	_, err := fmt.Fprintln(w, "Sizes { "+strings.Join(fields, ", ")+" }")
	return err
}

type jsonInput struct {
	Value uint64 `json:"value"`
	Unit  string `json:"unit"`
}

type jsonSizes struct {
	Bytes     uint64    `json:"bytes"`
	Kilobytes uint64    `json:"kilobytes"`
	Megabytes uint64    `json:"megabytes"`
	Gigabytes uint64    `json:"gigabytes"`
	Input     jsonInput `json:"input"`
	Human     string    `json:"human"`
}

func writeJSON(w io.Writer, q size.Quantity, s size.Sizes) error {
	out := jsonSizes{
		Bytes:     s.Bytes,
		Kilobytes: s.Kilobytes,
		Megabytes: s.Megabytes,
		Gigabytes: s.Gigabytes,
		Input:     jsonInput{Value: q.Value, Unit: q.Unit.String()},
		Human:     humanize.Bytes(s.Bytes),
	}
	if err := json.NewEncoder(w).Encode(out); nil != err {
		return fmt.Errorf("failed to encode json output: %v", err)
	}
	return nil
}

func writeTable(w io.Writer, q size.Quantity, s size.Sizes, color bool) error {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Unit", "Value"})
	t.AppendRows(lo.Map(size.Units, func(u size.Unit, _ int) table.Row {
		label := u.Label()
		if color && u == q.Unit {
			label = text.Colors{text.FgGreen, text.Bold}.Sprint(label)
		}
		return table.Row{label, s.Get(u)}
	}))
	t.AppendFooter(table.Row{"Human", humanize.Bytes(s.Bytes)})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight, AlignFooter: text.AlignRight}, //nolint:exhaustruct
	})
	t.Render()
	return nil
}
