package report

import (
	"errors"
	"fmt"
	"io"
	"math"
	"path/filepath"
	"strings"

	"github.com/abhisek/footprint/internal/footprint"
	"github.com/abhisek/footprint/internal/store"
)

// Direction is which way the score moved between a baseline and the latest
// record.
type Direction int

const (
	NoChange Direction = iota
	Reduction
	Increase
)

// Comparison is the change from a baseline record to the latest one.
// Delta is baseline minus latest, so a positive delta is an improvement.
type Comparison struct {
	Baseline float64
	Latest   float64
	Delta    float64
	Percent  float64
}

// Compare builds a Comparison. Percent is relative to the baseline and is 0
// when the baseline is exactly 0.
func Compare(baseline, latest float64) Comparison {
	delta := baseline - latest
	var pct float64
	if baseline != 0 {
		pct = delta / baseline * 100
	}
	return Comparison{
		Baseline: baseline,
		Latest:   latest,
		Delta:    delta,
		Percent:  pct,
	}
}

// Direction classifies the comparison by the sign of Delta.
func (c Comparison) Direction() Direction {
	switch {
	case c.Delta > 0:
		return Reduction
	case c.Delta < 0:
		return Increase
	default:
		return NoChange
	}
}

// Summary is the trend over a record history.
type Summary struct {
	Records []footprint.Record

	// Overall compares the first record to the last; Recent compares the
	// second-to-last to the last. Both are nil with fewer than two records.
	Overall *Comparison
	Recent  *Comparison
}

// Summarize computes the trend for records in insertion order.
func Summarize(records []footprint.Record) Summary {
	s := Summary{Records: records}
	if len(records) < 2 {
		return s
	}
	last := records[len(records)-1].Total
	overall := Compare(records[0].Total, last)
	recent := Compare(records[len(records)-2].Total, last)
	s.Overall = &overall
	s.Recent = &recent
	return s
}

// Styles decorates report lines. Each field has the signature of
// lipgloss.Style.Render so theme styles can be plugged in directly.
type Styles struct {
	Heading func(...string) string
	Good    func(...string) string
	Bad     func(...string) string
	Dim     func(...string) string
}

func plain(s ...string) string { return strings.Join(s, " ") }

// PlainStyles leaves text undecorated.
func PlainStyles() Styles {
	return Styles{Heading: plain, Good: plain, Bad: plain, Dim: plain}
}

const rule = "----------------------------------------"

// Render formats the full results report: every entry, the entry count and
// the progress summary.
func Render(records []footprint.Record, st Styles) string {
	sum := Summarize(records)

	var b strings.Builder
	b.WriteString(st.Heading("=== Survey Results ===") + "\n")

	for i, rec := range sum.Records {
		fmt.Fprintf(&b, "\nEntry #%d:\n", i+1)
		b.WriteString(st.Dim(rule) + "\n")
		fmt.Fprintf(&b, "Car mileage (weekly): %.2f\n", rec.DrivingHours)
		fmt.Fprintf(&b, "Electricity usage (monthly): %.2f\n", rec.Electricity)
		fmt.Fprintf(&b, "Clothes bought (monthly): %.2f\n", rec.Clothing)
		fmt.Fprintf(&b, "Flights (yearly): %.2f\n", rec.Flights)
		fmt.Fprintf(&b, "Recycles: %s\n", rec.Recycling)
		fmt.Fprintf(&b, "Total Contamination: %.2f kg CO₂\n", rec.Total)
		b.WriteString(st.Dim(rule) + "\n")
	}

	fmt.Fprintf(&b, "\nTotal number of entries: %d\n", len(sum.Records))

	if sum.Overall == nil {
		b.WriteString("\nNot enough data to calculate improvement (need at least two records).\n")
		return b.String()
	}

	b.WriteString("\n" + st.Heading("=== Progress Summary ===") + "\n")
	b.WriteString(comparisonLine(*sum.Overall, overallPhrases, st) + "\n")
	b.WriteString(comparisonLine(*sum.Recent, recentPhrases, st) + "\n")
	return b.String()
}

// Write prints the report for records to w.
func Write(w io.Writer, records []footprint.Record, st Styles) error {
	_, err := io.WriteString(w, Render(records, st))
	return err
}

type phrases struct {
	improved  string
	increased string
	unchanged string
}

var overallPhrases = phrases{
	improved:  "Overall improvement since first record",
	increased: "Overall increase since first record",
	unchanged: "No change since your first record.",
}

var recentPhrases = phrases{
	improved:  "Improvement since last time",
	increased: "Increase since last time",
	unchanged: "No change since last time.",
}

// comparisonLine prints the percentage relative to the baseline, signed so
// that a positive number reads as the named direction. A negative baseline
// therefore shows a negative percentage.
func comparisonLine(c Comparison, p phrases, st Styles) string {
	switch c.Direction() {
	case Reduction:
		return st.Good(fmt.Sprintf("%s: -%.2f kg CO₂ (%.2f%% reduction)", p.improved, math.Abs(c.Delta), noNegZero(c.Percent)))
	case Increase:
		return st.Bad(fmt.Sprintf("%s: +%.2f kg CO₂ (%.2f%% increase)", p.increased, math.Abs(c.Delta), noNegZero(-c.Percent)))
	default:
		return p.unchanged
	}
}

// noNegZero keeps a zero percentage from printing as "-0.00".
func noNegZero(v float64) float64 {
	if v == 0 {
		return 0
	}
	return v
}

// LoadErrorMessage turns a store Load error into the message shown to the
// user. path is the record file; only its base name is shown.
func LoadErrorMessage(err error, path string) string {
	switch {
	case errors.Is(err, store.ErrNotFound):
		return fmt.Sprintf("No results file found (%s)", filepath.Base(path))
	case errors.Is(err, store.ErrCorrupt):
		return "Error: The JSON file is corrupted or empty"
	default:
		return fmt.Sprintf("An error occurred: %v", err)
	}
}
