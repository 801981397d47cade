// Package lib provides a Go SDK for reporting and reading spy job statuses
// programmatically.
//
// This package allows long running job processes to report progress in-process
// without shelling out to the spy CLI binary, and viewers to read the current
// status of every job.
//
// # Quick Start
//
//	client, err := lib.New(lib.Config{BaseDir: os.Getenv("SPY_BASE")})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Report progress as the job advances. Every report fully replaces the
//	// job's previous status record.
//	client.Report(ctx, "backfill", 96, 0.1)
//
//	// Read back the current snapshot of every job.
//	records, _ := client.List(ctx)
//	for _, r := range records {
//	    eta, _ := r.Get("eta")
//	    fmt.Printf("%s: %s remaining\n", r.Name(), eta)
//	}
//
// # ETA Computation
//
// The ETA assumes a constant progress rate: a job that did 10% of the work in
// 96 seconds has 864 seconds left. Reporting a zero completion fraction fails
// with [ErrInvalidProgress], the ETA would be undefined.
//
// # Error Handling
//
// All methods return errors that can be inspected with [errors.Is]:
//
//   - [ErrNotFound]: The job has no status record.
//   - [ErrNotValid]: Invalid input (e.g. a job name with path separators).
//   - [ErrInvalidProgress]: Zero completion fraction.
//   - [ErrMalformedRecord]: A stored record couldn't be parsed.
//
// # Thread Safety
//
// A [Client] is safe for concurrent use from multiple goroutines. Record
// replacement is atomic, concurrent readers never observe a half written
// record.
package lib
