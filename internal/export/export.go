// Package export renders research snapshots into the output formats the
// CLI supports: an aligned terminal table, JSON, CSV, and XLSX.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"

	"github.com/sells-group/resale-intel/internal/research"
)

// Format selects an output encoding.
type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatCSV   Format = "csv"
	FormatXLSX  Format = "xlsx"
)

// ParseFormat validates a format flag value.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatTable, FormatJSON, FormatCSV, FormatXLSX:
		return Format(s), nil
	default:
		return "", eris.Errorf("export: unknown format %q (want table, json, csv, or xlsx)", s)
	}
}

// WriteSnapshots renders snapshots to w in the given format.
func WriteSnapshots(w io.Writer, format Format, snapshots []research.Snapshot) error {
	switch format {
	case FormatTable:
		return writeTable(w, snapshots)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return eris.Wrap(enc.Encode(snapshots), "export: encode json")
	case FormatCSV:
		return writeCSV(w, snapshots)
	case FormatXLSX:
		return writeXLSX(w, snapshots)
	default:
		return eris.Errorf("export: unknown format %q", format)
	}
}

func snapshotHeader() []string {
	return []string{"ID", "CATEGORY", "BRAND", "ASSESSMENT", "CONFIDENCE", "MULTIPLIER", "DRIVERS", "YEAR", "CREATED"}
}

func snapshotRow(s research.Snapshot) []string {
	year := ""
	if s.Facts.Year != 0 {
		year = strconv.Itoa(s.Facts.Year)
	}
	return []string{
		s.ID,
		string(s.Category),
		s.Brand,
		string(s.Authenticity.Assessment),
		fmt.Sprintf("%.2f", s.Authenticity.Confidence),
		fmt.Sprintf("%.2f", s.PriceMultiplier),
		strconv.Itoa(len(s.DriverMatches)),
		year,
		s.CreatedAt.Format("2006-01-02 15:04"),
	}
}

func writeTable(out io.Writer, snapshots []research.Snapshot) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	for i, col := range snapshotHeader() {
		if i > 0 {
			fmt.Fprint(w, "\t")
		}
		fmt.Fprint(w, col)
	}
	fmt.Fprintln(w)

	for _, s := range snapshots {
		row := snapshotRow(s)
		row[0] = truncateID(row[0])
		for i, cell := range row {
			if i > 0 {
				fmt.Fprint(w, "\t")
			}
			fmt.Fprint(w, cell)
		}
		fmt.Fprintln(w)
	}
	return eris.Wrap(w.Flush(), "export: flush table")
}

func writeCSV(out io.Writer, snapshots []research.Snapshot) error {
	w := csv.NewWriter(out)
	if err := w.Write(snapshotHeader()); err != nil {
		return eris.Wrap(err, "export: write csv header")
	}
	for _, s := range snapshots {
		if err := w.Write(snapshotRow(s)); err != nil {
			return eris.Wrap(err, "export: write csv row")
		}
	}
	w.Flush()
	return eris.Wrap(w.Error(), "export: flush csv")
}

func writeXLSX(out io.Writer, snapshots []research.Snapshot) error {
	f := xlsx.NewFile()
	sheet, err := f.AddSheet("Snapshots")
	if err != nil {
		return eris.Wrap(err, "export: add sheet")
	}

	header := sheet.AddRow()
	for _, col := range snapshotHeader() {
		header.AddCell().Value = col
	}

	for _, s := range snapshots {
		row := sheet.AddRow()
		for _, cell := range snapshotRow(s) {
			row.AddCell().Value = cell
		}
	}

	return eris.Wrap(f.Write(out), "export: write xlsx")
}

// truncateID returns the first 8 characters of a UUID for compact display.
func truncateID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
