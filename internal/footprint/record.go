package footprint

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
)

// Recycling is the answer to the recycling question. Its numeric value is
// used directly as a multiplier on the score, so answering "no" doubles it.
type Recycling int

const (
	RecyclingYes Recycling = 1
	RecyclingNo  Recycling = 2
)

// Valid reports whether r is one of the two recycling answers.
func (r Recycling) Valid() bool {
	return r == RecyclingYes || r == RecyclingNo
}

func (r Recycling) String() string {
	switch r {
	case RecyclingYes:
		return "Yes"
	case RecyclingNo:
		return "No"
	default:
		return fmt.Sprintf("Recycling(%d)", int(r))
	}
}

// UnmarshalJSON accepts 1 and 2, including integral float spellings such
// as 1.0 written by other tools.
func (r *Recycling) UnmarshalJSON(data []byte) error {
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("recycling: %w", err)
	}
	v := Recycling(f)
	if float64(v) != f || !v.Valid() {
		return fmt.Errorf("recycling: must be 1 or 2, got %s", data)
	}
	*r = v
	return nil
}

// Emission weights. Driving is weekly hours scaled to a month, clothing is
// monthly items scaled to a year.
const (
	DrivingWeight     = 0.271
	WeeksPerMonth     = 4
	ElectricityWeight = 0.475
	ClothingWeight    = 25
	MonthsPerYear     = 12
	FlightWeight      = 250
)

// Score computes the contamination score in kg CO₂.
func Score(drivingHours, electricity, clothing, flights float64, r Recycling) float64 {
	return float64(r) * (DrivingWeight*drivingHours*WeeksPerMonth +
		ElectricityWeight*electricity +
		ClothingWeight*clothing*MonthsPerYear +
		FlightWeight*flights)
}

// Record is one completed questionnaire run. The JSON field order is the
// on-disk order of answers.json.
type Record struct {
	DrivingHours float64   `json:"H"`
	Electricity  float64   `json:"E"`
	Clothing     float64   `json:"C"`
	Flights      float64   `json:"F"`
	Recycling    Recycling `json:"R"`
	Total        float64   `json:"total_contamination"`
}

// NewRecord builds a record and derives its total from the answers.
func NewRecord(drivingHours, electricity, clothing, flights float64, r Recycling) Record {
	return Record{
		DrivingHours: drivingHours,
		Electricity:  electricity,
		Clothing:     clothing,
		Flights:      flights,
		Recycling:    r,
		Total:        Score(drivingHours, electricity, clothing, flights, r),
	}
}

// ErrIncomplete is returned when a record is requested before every
// question has an answer.
var ErrIncomplete = errors.New("questionnaire incomplete")

// Answers collects parsed answers by question key while a questionnaire is
// in progress. The recycling answer is stored as its multiplier.
type Answers map[Key]float64

// Record converts a complete set of answers into a Record.
func (a Answers) Record() (Record, error) {
	for _, q := range Questions {
		if _, ok := a[q.Key]; !ok {
			return Record{}, fmt.Errorf("%w: missing %s", ErrIncomplete, q.Key)
		}
	}
	r := Recycling(a[KeyRecycling])
	if !r.Valid() {
		return Record{}, fmt.Errorf("recycling multiplier %v out of range", a[KeyRecycling])
	}
	for _, k := range []Key{KeyDriving, KeyElectricity, KeyClothing, KeyFlights} {
		if v := a[k]; math.IsNaN(v) || math.IsInf(v, 0) {
			return Record{}, fmt.Errorf("%s: %w", k, ErrNotNumeric)
		}
	}
	rec := NewRecord(a[KeyDriving], a[KeyElectricity], a[KeyClothing], a[KeyFlights], r)
	if math.IsInf(rec.Total, 0) || math.IsNaN(rec.Total) {
		return Record{}, fmt.Errorf("total %v: %w", rec.Total, ErrTooLarge)
	}
	return rec, nil
}
