package taf_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/rhenandrew/Bombeiro-Militar/internal/domain/taf"
)

func fp(v float64) *float64 { return &v }
func ip(v int) *int         { return &v }

// TestDay_Validate tests validation of a fitness Day.
func TestDay_Validate(t *testing.T) {
	tests := []struct {
		name    string
		day     taf.Day
		wantErr error
	}{
		{"valid date", taf.Day{Date: "2024-06-19"}, nil},
		{"valid with fields", taf.Day{Date: "2024-06-19", Pushups: ip(30), Weight: fp(70)}, nil},
		{"empty date", taf.Day{Date: ""}, taf.ErrInvalidDate},
		{"malformed date", taf.Day{Date: "2024-6-19"}, taf.ErrInvalidDate},
		{"impossible date", taf.Day{Date: "2024-02-30"}, taf.ErrInvalidDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.day.Validate(); !errors.Is(err, tt.wantErr) {
				t.Errorf("Day.Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

// TestDay_Merge tests the field-level coalesce used by the upsert path.
func TestDay_Merge(t *testing.T) {
	stored := taf.Day{
		Date:      "2024-06-19",
		RunningKM: fp(2.4),
		Pushups:   ip(30),
		Weight:    fp(70),
		BMI:       fp(23.9),
	}

	tests := []struct {
		name     string
		incoming taf.Day
		want     taf.Day
	}{
		{
			name:     "empty submission preserves everything",
			incoming: taf.Day{Date: "2024-06-19"},
			want:     stored,
		},
		{
			name:     "one field replaces only that field",
			incoming: taf.Day{Date: "2024-06-19", Pushups: ip(35)},
			want: taf.Day{
				Date:      "2024-06-19",
				RunningKM: fp(2.4),
				Pushups:   ip(35),
				Weight:    fp(70),
				BMI:       fp(23.9),
			},
		},
		{
			name: "new fields fill gaps without touching the rest",
			incoming: taf.Day{
				Date:    "2024-06-19",
				Situps:  ip(40),
				Pullups: ip(8),
			},
			want: taf.Day{
				Date:      "2024-06-19",
				RunningKM: fp(2.4),
				Pushups:   ip(30),
				Situps:    ip(40),
				Pullups:   ip(8),
				Weight:    fp(70),
				BMI:       fp(23.9),
			},
		},
		{
			name:     "zero value is a real value, not absence",
			incoming: taf.Day{Date: "2024-06-19", Pushups: ip(0)},
			want: taf.Day{
				Date:      "2024-06-19",
				RunningKM: fp(2.4),
				Pushups:   ip(0),
				Weight:    fp(70),
				BMI:       fp(23.9),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := stored.Merge(tt.incoming)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Day.Merge() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

// TestDay_MergeIntoEmpty tests merging a submission over a day that was
// never stored.
func TestDay_MergeIntoEmpty(t *testing.T) {
	incoming := taf.Day{Date: "2024-06-19", Weight: fp(71.5)}
	got := taf.Day{}.Merge(incoming)

	want := taf.Day{Date: "2024-06-19", Weight: fp(71.5)}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Day.Merge() = %+v, want %+v", got, want)
	}
}

// TestBMIFor tests the body-mass index derivation.
func TestBMIFor(t *testing.T) {
	tests := []struct {
		name     string
		weightKG float64
		heightM  float64
		want     float64
		wantErr  error
	}{
		{"round numbers", 80, 2.0, 20.0, nil},
		{"default height", 70, 1.71, 70.0 / (1.71 * 1.71), nil},
		{"zero height", 70, 0, 0, taf.ErrInvalidHeight},
		{"negative height", 70, -1.71, 0, taf.ErrInvalidHeight},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := taf.BMIFor(tt.weightKG, tt.heightM)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("BMIFor() error = %v, want %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("BMIFor() = %v, want %v", got, tt.want)
			}
		})
	}
}
