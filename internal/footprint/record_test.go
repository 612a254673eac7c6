package footprint

import (
	"encoding/json"
	"errors"
	"math"
	"testing"
)

func TestScore_Formula(t *testing.T) {
	tests := []struct {
		name       string
		h, e, c, f float64
		r          Recycling
	}{
		{"zeros", 0, 0, 0, 0, RecyclingYes},
		{"typical recycler", 10, 250, 2, 1, RecyclingYes},
		{"typical non-recycler", 10, 250, 2, 1, RecyclingNo},
		{"fractions", 3.5, 123.4, 0.5, 0.25, RecyclingYes},
		{"large", 168, 5000, 40, 52, RecyclingNo},
		{"negative accepted", -2, 10, 0, 0, RecyclingYes},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			want := float64(tc.r) * (0.271*tc.h*4 + 0.475*tc.e + 25*tc.c*12 + 250*tc.f)
			got := Score(tc.h, tc.e, tc.c, tc.f, tc.r)
			if got != want {
				t.Errorf("Score = %v, want %v", got, want)
			}
		})
	}
}

func TestScore_KnownValue(t *testing.T) {
	// 10.84 + 118.75 + 600 + 250
	got := Score(10, 250, 2, 1, RecyclingYes)
	if math.Abs(got-979.59) > 1e-9 {
		t.Errorf("Score = %v, want 979.59", got)
	}
}

func TestScore_NotRecyclingDoubles(t *testing.T) {
	yes := Score(7, 300, 3, 2, RecyclingYes)
	no := Score(7, 300, 3, 2, RecyclingNo)
	if no != 2*yes {
		t.Errorf("no-recycling score = %v, want exactly 2 * %v", no, yes)
	}
}

func TestNewRecord(t *testing.T) {
	rec := NewRecord(10, 250, 2, 1, RecyclingNo)
	if rec.DrivingHours != 10 || rec.Electricity != 250 || rec.Clothing != 2 || rec.Flights != 1 {
		t.Errorf("answers not copied: %+v", rec)
	}
	if rec.Recycling != RecyclingNo {
		t.Errorf("Recycling = %v, want No", rec.Recycling)
	}
	if rec.Total != Score(10, 250, 2, 1, RecyclingNo) {
		t.Errorf("Total = %v, want derived score", rec.Total)
	}
}

func TestRecord_JSONKeyOrder(t *testing.T) {
	b, err := json.Marshal(NewRecord(0, 0, 1, 2, RecyclingYes))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"H":0,"E":0,"C":1,"F":2,"R":1,"total_contamination":800}`
	if string(b) != want {
		t.Errorf("json = %s\nwant   %s", b, want)
	}
}

func TestRecycling_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		in      string
		want    Recycling
		wantErr bool
	}{
		{"1", RecyclingYes, false},
		{"2", RecyclingNo, false},
		{"1.0", RecyclingYes, false},
		{"2.0", RecyclingNo, false},
		{"0", 0, true},
		{"3", 0, true},
		{"1.5", 0, true},
		{`"yes"`, 0, true},
	}

	for _, tc := range tests {
		var r Recycling
		err := json.Unmarshal([]byte(tc.in), &r)
		if tc.wantErr {
			if err == nil {
				t.Errorf("Unmarshal(%s) = %v, want error", tc.in, r)
			}
			continue
		}
		if err != nil {
			t.Errorf("Unmarshal(%s): %v", tc.in, err)
			continue
		}
		if r != tc.want {
			t.Errorf("Unmarshal(%s) = %v, want %v", tc.in, r, tc.want)
		}
	}
}

func TestRecycling_String(t *testing.T) {
	if RecyclingYes.String() != "Yes" {
		t.Errorf("RecyclingYes = %q", RecyclingYes.String())
	}
	if RecyclingNo.String() != "No" {
		t.Errorf("RecyclingNo = %q", RecyclingNo.String())
	}
	if Recycling(7).String() != "Recycling(7)" {
		t.Errorf("Recycling(7) = %q", Recycling(7).String())
	}
}

func TestAnswers_Record(t *testing.T) {
	a := Answers{
		KeyDriving:     10,
		KeyElectricity: 250,
		KeyClothing:    2,
		KeyFlights:     1,
		KeyRecycling:   float64(RecyclingYes),
	}
	rec, err := a.Record()
	if err != nil {
		t.Fatalf("Record: %v", err)
	}
	if rec != NewRecord(10, 250, 2, 1, RecyclingYes) {
		t.Errorf("Record = %+v", rec)
	}
}

func TestAnswers_RecordIncomplete(t *testing.T) {
	a := Answers{KeyDriving: 1, KeyElectricity: 2}
	_, err := a.Record()
	if !errors.Is(err, ErrIncomplete) {
		t.Fatalf("err = %v, want ErrIncomplete", err)
	}
}

func TestAnswers_RecordBadMultiplier(t *testing.T) {
	a := Answers{
		KeyDriving:     1,
		KeyElectricity: 1,
		KeyClothing:    1,
		KeyFlights:     1,
		KeyRecycling:   3,
	}
	if _, err := a.Record(); err == nil {
		t.Fatal("expected error for recycling multiplier 3")
	}
}

func TestAnswers_RecordOverflow(t *testing.T) {
	a := Answers{
		KeyDriving:     1e308,
		KeyElectricity: 1e308,
		KeyClothing:    0,
		KeyFlights:     0,
		KeyRecycling:   float64(RecyclingNo),
	}
	if _, err := a.Record(); !errors.Is(err, ErrTooLarge) {
		t.Fatalf("err = %v, want ErrTooLarge", err)
	}
}

func TestAnswers_RecordAtMaxAnswerIsFinite(t *testing.T) {
	a := Answers{
		KeyDriving:     MaxAnswer,
		KeyElectricity: MaxAnswer,
		KeyClothing:    MaxAnswer,
		KeyFlights:     MaxAnswer,
		KeyRecycling:   float64(RecyclingNo),
	}
	rec, err := a.Record()
	if err != nil {
		t.Fatalf("Record: %v", err)
	}
	if math.IsInf(rec.Total, 0) {
		t.Errorf("Total = %v, want finite", rec.Total)
	}
}
