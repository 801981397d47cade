package model

import (
	"fmt"
	"strings"
)

// Canonical record field keys, written in this order.
const (
	FieldName     = "name"
	FieldTime     = "time"
	FieldComplete = "complete"
	FieldETA      = "eta"
)

// Field is a single key/value pair of a status record.
type Field struct {
	Key   string
	Value string
}

// Record is the status snapshot of a single job.
//
// Fields keep the order they were written/parsed in. A parsed record is not
// required to contain the canonical fields, parsing performs no schema
// validation.
type Record struct {
	Fields []Field
}

// Get returns the value of the first field with the given key.
func (r Record) Get(key string) (string, bool) {
	for _, f := range r.Fields {
		if f.Key == key {
			return f.Value, true
		}
	}
	return "", false
}

// Name returns the job name of the record (empty if missing).
func (r Record) Name() string {
	name, _ := r.Get(FieldName)
	return name
}

// NewStatus creates the canonical status record for a job.
//
// The ETA assumes a constant progress rate: eta = elapsed/fraction - elapsed.
// Elapsed seconds and ETA are truncated toward zero, the completion percent is
// rounded. A zero fraction makes the ETA undefined and fails with
// ErrInvalidProgress.
func NewStatus(name string, elapsedSeconds, fractionComplete float64) (Record, error) {
	if err := ValidateName(name); err != nil {
		return Record{}, err
	}

	if elapsedSeconds < 0 {
		return Record{}, fmt.Errorf("elapsed seconds must not be negative: %w", ErrNotValid)
	}

	if fractionComplete == 0 {
		return Record{}, fmt.Errorf("fraction complete is zero, ETA is undefined: %w", ErrInvalidProgress)
	}

	eta := (elapsedSeconds / fractionComplete) - elapsedSeconds

	return Record{Fields: []Field{
		{Key: FieldName, Value: name},
		{Key: FieldTime, Value: fmt.Sprintf("%d seconds", int64(elapsedSeconds))},
		{Key: FieldComplete, Value: fmt.Sprintf("%.0f%%", 100*fractionComplete)},
		{Key: FieldETA, Value: fmt.Sprintf("%d seconds", int64(eta))},
	}}, nil
}

// ValidateName validates a job name so it is safe to use as a storage key.
func ValidateName(name string) error {
	switch {
	case name == "":
		return fmt.Errorf("job name is required: %w", ErrNotValid)
	case name == "." || name == "..":
		return fmt.Errorf("job name %q is reserved: %w", name, ErrNotValid)
	case strings.HasPrefix(name, "."):
		return fmt.Errorf("job name %q collides with store internal names: %w", name, ErrNotValid)
	case strings.ContainsAny(name, "/\\\n"):
		return fmt.Errorf("job name %q contains path separators or newlines: %w", name, ErrNotValid)
	}

	return nil
}

// Encode serializes the record to its stored form: one `key:value` line per
// field, every line newline terminated.
func (r Record) Encode() []byte {
	var b strings.Builder
	for _, f := range r.Fields {
		b.WriteString(f.Key)
		b.WriteString(":")
		b.WriteString(f.Value)
		b.WriteString("\n")
	}
	return []byte(b.String())
}

// DecodeRecord parses the stored form of a record.
//
// Each line splits on the first colon only, so values may themselves contain
// colons. A line without a colon fails with ErrMalformedRecord.
func DecodeRecord(data []byte) (Record, error) {
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")

	fields := make([]Field, 0, len(lines))
	for _, line := range lines {
		key, value, ok := strings.Cut(line, ":")
		if !ok {
			return Record{}, fmt.Errorf("line %q has no key/value separator: %w", line, ErrMalformedRecord)
		}
		fields = append(fields, Field{Key: key, Value: value})
	}

	return Record{Fields: fields}, nil
}
