package printer

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/slok/spy/internal/model"
)

// TablePrinter prints job status information in a table format.
type TablePrinter struct {
	writer io.Writer
}

// NewTablePrinter creates a new table printer.
func NewTablePrinter(w io.Writer) *TablePrinter {
	return &TablePrinter{writer: w}
}

// PrintList prints job status records in a table format.
func (t *TablePrinter) PrintList(records []model.Record) error {
	if len(records) == 0 {
		return nil
	}

	tw := tabwriter.NewWriter(t.writer, 0, 0, 2, ' ', 0)
	defer tw.Flush()

	// Print header
	fmt.Fprintln(tw, "NAME\tELAPSED\tCOMPLETE\tETA")

	// Print rows
	for _, r := range records {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
			fieldOrDash(r, model.FieldName),
			humanizeSecondsField(fieldOrDash(r, model.FieldTime)),
			fieldOrDash(r, model.FieldComplete),
			humanizeSecondsField(fieldOrDash(r, model.FieldETA)),
		)
	}

	return nil
}

// PrintStatus prints every field of a single record, in stored order.
func (t *TablePrinter) PrintStatus(record model.Record) error {
	tw := tabwriter.NewWriter(t.writer, 0, 0, 2, ' ', 0)
	defer tw.Flush()

	for _, f := range record.Fields {
		fmt.Fprintf(tw, "%s:\t%s\n", f.Key, f.Value)
	}

	return nil
}

// PrintMessage prints a simple text message.
func (t *TablePrinter) PrintMessage(msg string) error {
	fmt.Fprintln(t.writer, msg)
	return nil
}

// fieldOrDash returns the field value or a dash placeholder when the record
// doesn't carry the field (listing performs no schema validation).
func fieldOrDash(r model.Record, key string) string {
	v, ok := r.Get(key)
	if !ok {
		return "-"
	}
	return v
}
