package printer

import "github.com/slok/spy/internal/model"

// Printer knows how to print job status information in different formats.
type Printer interface {
	PrintList(records []model.Record) error
	PrintStatus(record model.Record) error
	PrintMessage(msg string) error
}
