package printer

import (
	"encoding/json"
	"io"

	"github.com/slok/spy/internal/model"
)

// JSONPrinter prints job status information in JSON format.
type JSONPrinter struct {
	writer io.Writer
}

// NewJSONPrinter creates a new JSON printer.
func NewJSONPrinter(w io.Writer) *JSONPrinter {
	return &JSONPrinter{writer: w}
}

// fieldOutput represents a single record field. Records are ordered field
// sequences, so the JSON form is a field array instead of an object.
type fieldOutput struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// recordOutput represents a full status record.
type recordOutput struct {
	Name   string        `json:"name"`
	Fields []fieldOutput `json:"fields"`
}

// messageOutput represents a simple message output.
type messageOutput struct {
	Message string `json:"message"`
}

// PrintList prints status records in JSON format.
func (j *JSONPrinter) PrintList(records []model.Record) error {
	items := make([]recordOutput, len(records))
	for i, r := range records {
		items[i] = newRecordOutput(r)
	}

	enc := json.NewEncoder(j.writer)
	enc.SetIndent("", "  ")
	return enc.Encode(items)
}

// PrintStatus prints a single status record in JSON format.
func (j *JSONPrinter) PrintStatus(record model.Record) error {
	enc := json.NewEncoder(j.writer)
	enc.SetIndent("", "  ")
	return enc.Encode(newRecordOutput(record))
}

// PrintMessage prints a simple message in JSON format.
func (j *JSONPrinter) PrintMessage(msg string) error {
	output := messageOutput{Message: msg}
	enc := json.NewEncoder(j.writer)
	enc.SetIndent("", "  ")
	return enc.Encode(output)
}

func newRecordOutput(r model.Record) recordOutput {
	fields := make([]fieldOutput, len(r.Fields))
	for i, f := range r.Fields {
		fields[i] = fieldOutput{Key: f.Key, Value: f.Value}
	}

	return recordOutput{
		Name:   r.Name(),
		Fields: fields,
	}
}
