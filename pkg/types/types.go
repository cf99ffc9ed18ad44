package types

import "fmt"

// Dimension is an output size in pixels.
type Dimension struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Valid reports whether both sides are positive.
func (d Dimension) Valid() bool {
	return d.Width > 0 && d.Height > 0
}

func (d Dimension) String() string {
	return fmt.Sprintf("%dx%d", d.Width, d.Height)
}

// ItemStatus describes the outcome of processing a single file.
type ItemStatus string

const (
	// StatusOK means the file was processed and its output written.
	StatusOK ItemStatus = "ok"
	// StatusFailed means the file errored and was skipped.
	StatusFailed ItemStatus = "failed"
	// StatusSkipped means the file was deliberately not processed
	// (unsupported extension, collision policy).
	StatusSkipped ItemStatus = "skipped"
)

// ItemResult records the outcome for one enumerated file.
type ItemResult struct {
	Name   string
	Status ItemStatus
	Err    error
}

// Summary aggregates per-item results for one batch operation.
type Summary struct {
	Items []ItemResult
}

// Add appends one item result to the summary.
func (s *Summary) Add(result ItemResult) {
	s.Items = append(s.Items, result)
}

// Succeeded returns the number of successfully processed items.
func (s *Summary) Succeeded() int {
	return s.count(StatusOK)
}

// Failed returns the number of items that errored.
func (s *Summary) Failed() int {
	return s.count(StatusFailed)
}

// Skipped returns the number of items deliberately left unprocessed.
func (s *Summary) Skipped() int {
	return s.count(StatusSkipped)
}

func (s *Summary) count(status ItemStatus) int {
	n := 0
	for _, item := range s.Items {
		if item.Status == status {
			n++
		}
	}
	return n
}

// LabelResult is the parsed response from a vision model label query.
type LabelResult struct {
	Label      string   `json:"label"`
	Confidence float64  `json:"confidence"`
	Tags       []string `json:"tags"`
}
