package footprint

import (
	"errors"
	"testing"
)

func TestQuestions_Order(t *testing.T) {
	want := []Key{KeyDriving, KeyElectricity, KeyClothing, KeyFlights, KeyRecycling}
	if len(Questions) != len(want) {
		t.Fatalf("len(Questions) = %d, want %d", len(Questions), len(want))
	}
	for i, k := range want {
		if Questions[i].Key != k {
			t.Errorf("Questions[%d].Key = %s, want %s", i, Questions[i].Key, k)
		}
		if Questions[i].Text == "" {
			t.Errorf("Questions[%d] has no text", i)
		}
	}
	if Questions[4].Kind != KindYesNo {
		t.Error("recycling question should be yes/no")
	}
}

func TestParse_Numeric(t *testing.T) {
	q := Questions[0]

	tests := []struct {
		input string
		want  float64
		ok    bool
	}{
		{"10", 10, true},
		{" 10 ", 10, true},
		{"2.5", 2.5, true},
		{"-3", -3, true},
		{"0", 0, true},
		{"1e3", 1000, true},
		{"", 0, false},
		{"ten", 0, false},
		{"10 hours", 0, false},
		{"NaN", 0, false},
		{"inf", 0, false},
		{"1e400", 0, false},
	}

	for _, tc := range tests {
		got, err := q.Parse(tc.input)
		if !tc.ok {
			if !errors.Is(err, ErrNotNumeric) {
				t.Errorf("Parse(%q) err = %v, want ErrNotNumeric", tc.input, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("Parse(%q): %v", tc.input, err)
			continue
		}
		if got != tc.want {
			t.Errorf("Parse(%q) = %v, want %v", tc.input, got, tc.want)
		}
	}
}

func TestParse_YesNo(t *testing.T) {
	q := Questions[4]

	tests := []struct {
		input string
		want  float64
		ok    bool
	}{
		{"yes", 1, true},
		{"YES", 1, true},
		{" Yes ", 1, true},
		{"no", 2, true},
		{"No", 2, true},
		{"y", 0, false},
		{"n", 0, false},
		{"1", 0, false},
		{"", 0, false},
		{"maybe", 0, false},
	}

	for _, tc := range tests {
		got, err := q.Parse(tc.input)
		if !tc.ok {
			if !errors.Is(err, ErrNotYesNo) {
				t.Errorf("Parse(%q) err = %v, want ErrNotYesNo", tc.input, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("Parse(%q): %v", tc.input, err)
			continue
		}
		if got != tc.want {
			t.Errorf("Parse(%q) = %v, want %v", tc.input, got, tc.want)
		}
	}
}

func TestParse_TooLarge(t *testing.T) {
	q := Questions[1]

	for _, input := range []string{"1e308", "-1e301", "2e300"} {
		if _, err := q.Parse(input); !errors.Is(err, ErrTooLarge) {
			t.Errorf("Parse(%q) err = %v, want ErrTooLarge", input, err)
		}
	}

	got, err := q.Parse("1e300")
	if err != nil {
		t.Fatalf("Parse(1e300): %v", err)
	}
	if got != MaxAnswer {
		t.Errorf("Parse(1e300) = %v, want %v", got, MaxAnswer)
	}
}

func TestRetry(t *testing.T) {
	if got := Questions[0].Retry(ErrNotNumeric); got != "Please enter a numeric value" {
		t.Errorf("numeric Retry = %q", got)
	}
	if got := Questions[0].Retry(ErrTooLarge); got != "That number is too large, please enter a smaller value" {
		t.Errorf("too large Retry = %q", got)
	}
	if got := Questions[4].Retry(ErrNotYesNo); got != "Please answer 'yes' or 'no'" {
		t.Errorf("yes/no Retry = %q", got)
	}
}
