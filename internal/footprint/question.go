package footprint

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// Key identifies a question. The values double as the JSON keys of Record.
type Key string

const (
	KeyDriving     Key = "H"
	KeyElectricity Key = "E"
	KeyClothing    Key = "C"
	KeyFlights     Key = "F"
	KeyRecycling   Key = "R"
)

// Kind is how an answer is parsed.
type Kind int

const (
	KindNumeric Kind = iota
	KindYesNo
)

var (
	ErrNotNumeric = errors.New("answer is not numeric")
	ErrNotYesNo   = errors.New("answer is not yes or no")
	ErrTooLarge   = errors.New("answer is too large to score")
)

// MaxAnswer bounds the magnitude of a numeric answer. Any set of answers
// within it scores to a finite total.
const MaxAnswer = 1e300

// Question is one fixed questionnaire prompt.
type Question struct {
	Key  Key
	Text string
	Kind Kind
}

// Questions is the questionnaire, in the order it is asked.
var Questions = []Question{
	{
		Key:  KeyDriving,
		Text: "1. How many hours do you drive each week on average?",
		Kind: KindNumeric,
	},
	{
		Key:  KeyElectricity,
		Text: "2. How much electricity does your household use each month? (You can find this in kWh on your electricity bill, e.g. 250 kWh)",
		Kind: KindNumeric,
	},
	{
		Key:  KeyClothing,
		Text: "3. On average, how many new clothing items do you buy each month (shirts, pants, shoes, etc.)?",
		Kind: KindNumeric,
	},
	{
		Key:  KeyFlights,
		Text: "4. How many round-trip flights do you take per year?",
		Kind: KindNumeric,
	},
	{
		Key:  KeyRecycling,
		Text: "5. Do you regularly recycle materials like paper, plastic, and glass? (yes/no)",
		Kind: KindYesNo,
	},
}

// Parse validates a raw answer.
//
// Numeric questions accept anything strconv.ParseFloat does, with surrounding
// whitespace trimmed. Negative values are accepted. NaN and infinities are
// rejected because they cannot be written as JSON, and so is anything beyond
// MaxAnswer in magnitude since it could push the total to infinity.
//
// The yes/no question accepts "yes" or "no" in any case and returns the
// recycling multiplier (1 for yes, 2 for no).
//
// Errors are ErrNotNumeric, ErrTooLarge or ErrNotYesNo.
func (q Question) Parse(input string) (float64, error) {
	input = strings.TrimSpace(input)

	if q.Kind == KindYesNo {
		switch strings.ToLower(input) {
		case "yes":
			return float64(RecyclingYes), nil
		case "no":
			return float64(RecyclingNo), nil
		}
		return 0, ErrNotYesNo
	}

	v, err := strconv.ParseFloat(input, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, ErrNotNumeric
	}
	if math.Abs(v) > MaxAnswer {
		return 0, ErrTooLarge
	}
	return v, nil
}

// Retry returns the message shown before asking q again after Parse
// rejected an answer with err.
func (q Question) Retry(err error) string {
	if q.Kind == KindYesNo {
		return "Please answer 'yes' or 'no'"
	}
	if errors.Is(err, ErrTooLarge) {
		return "That number is too large, please enter a smaller value"
	}
	return "Please enter a numeric value"
}

// Placeholder is the hint shown in an empty answer field.
func (q Question) Placeholder() string {
	if q.Kind == KindYesNo {
		return "yes / no"
	}
	return "a number"
}
