package presentation

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Formatter handles output formatting
type Formatter struct {
	writer io.Writer
}

// NewFormatter creates a new formatter
func NewFormatter(writer io.Writer) *Formatter {
	return &Formatter{
		writer: writer,
	}
}

// FormatTree formats a resolved tree as JSON
func (f *Formatter) FormatTree(node NodeDTO) error {
	encoder := json.NewEncoder(f.writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(node)
}

// FormatEntries formats a list of manifest entries as JSON
func (f *Formatter) FormatEntries(entries []EntryDTO) error {
	encoder := json.NewEncoder(f.writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(entries)
}

// FormatRuns formats a list of runs as JSON
func (f *Formatter) FormatRuns(runs []RunDTO) error {
	encoder := json.NewEncoder(f.writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(runs)
}

// FormatRun formats a single run as JSON
func (f *Formatter) FormatRun(run RunDTO) error {
	encoder := json.NewEncoder(f.writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(run)
}

// Column widths for the plain-text runs table. The ID column fits a full
// UUID so rows can be fed straight back into history show.
const (
	runsTableIDWidth         = 36
	runsTableDescriptorWidth = 20
	runsTableStatusWidth     = 6
)

// Column widths for the plain-text entries table.
const (
	entriesTableNameWidth  = 20
	entriesTableKindWidth  = 8
	entriesTableTitleWidth = 28
)

// FormatEntriesTable formats manifest entries as a plain-text table, one row
// per entry in load order.
func (f *Formatter) FormatEntriesTable(entries []EntryDTO) error {
	header := []string{
		tableCell("NAME", entriesTableNameWidth),
		tableCell("KIND", entriesTableKindWidth),
		tableCell("TITLE", entriesTableTitleWidth),
		"CHILDREN",
	}
	if _, err := fmt.Fprintln(f.writer, strings.Join(header, "  ")); err != nil {
		return err
	}

	for _, entry := range entries {
		row := []string{
			tableCell(entry.Name, entriesTableNameWidth),
			tableCell(entry.Kind, entriesTableKindWidth),
			tableCell(entry.Title, entriesTableTitleWidth),
			strings.Join(entry.Children, ", "),
		}
		if _, err := fmt.Fprintln(f.writer, strings.Join(row, "  ")); err != nil {
			return err
		}
	}
	return nil
}

// FormatRunsTable formats runs as a plain-text table, newest first as given.
// Cells are truncated to their column width so wide descriptors cannot break
// the layout.
func (f *Formatter) FormatRunsTable(runs []RunDTO) error {
	header := []string{
		tableCell("ID", runsTableIDWidth),
		tableCell("DESCRIPTOR", runsTableDescriptorWidth),
		tableCell("STATUS", runsTableStatusWidth),
		"NODES",
		"DURATION",
		"CREATED",
	}
	if _, err := fmt.Fprintln(f.writer, strings.Join(header, "  ")); err != nil {
		return err
	}

	for _, run := range runs {
		row := []string{
			tableCell(run.ID, runsTableIDWidth),
			tableCell(run.Descriptor, runsTableDescriptorWidth),
			tableCell(run.Status, runsTableStatusWidth),
			fmt.Sprintf("%5d", run.NodeCount),
			fmt.Sprintf("%6dms", run.DurationMS),
			run.CreatedAt,
		}
		if _, err := fmt.Fprintln(f.writer, strings.Join(row, "  ")); err != nil {
			return err
		}
	}
	return nil
}

// tableCell truncates s to width with an ellipsis and pads it back out so
// columns stay aligned, display width aware.
func tableCell(s string, width int) string {
	return runewidth.FillRight(runewidth.Truncate(s, width, "…"), width)
}
