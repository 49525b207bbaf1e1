package taf_test

import (
	"reflect"
	"testing"

	"github.com/rhenandrew/Bombeiro-Militar/internal/domain/taf"
)

// TestBuildSeries tests metric projection for the chart endpoint.
func TestBuildSeries(t *testing.T) {
	days := []taf.Day{
		{Date: "2024-06-01", RunningKM: fp(2.4), Pushups: ip(30), Situps: ip(40), Pullups: ip(6), BMI: fp(23.5)},
		{Date: "2024-06-08", Pushups: ip(32)},
		{Date: "2024-06-15", RunningKM: fp(2.6), Situps: ip(45), Pullups: ip(8), BMI: fp(23.2)},
	}

	tests := []struct {
		name   string
		metric string
		want   []float64
	}{
		{"push-ups", taf.MetricPushups, []float64{30, 32, 0}},
		{"sit-ups", taf.MetricSitups, []float64{40, 0, 45}},
		{"pull-ups", taf.MetricPullups, []float64{6, 0, 8}},
		{"running", taf.MetricRunning, []float64{2.4, 0, 2.6}},
		{"bmi", taf.MetricBMI, []float64{23.5, 0, 23.2}},
		{"unknown metric falls back to bmi", "Bench-press", []float64{23.5, 0, 23.2}},
		{"empty metric falls back to bmi", "", []float64{23.5, 0, 23.2}},
	}

	wantLabels := []string{"2024-06-01", "2024-06-08", "2024-06-15"}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := taf.BuildSeries(days, tt.metric)
			if !reflect.DeepEqual(got.Labels, wantLabels) {
				t.Errorf("BuildSeries() labels = %v, want %v", got.Labels, wantLabels)
			}
			if !reflect.DeepEqual(got.Values, tt.want) {
				t.Errorf("BuildSeries() values = %v, want %v", got.Values, tt.want)
			}
		})
	}
}

// TestBuildSeries_Empty tests that an empty history still serialises as
// empty JSON arrays rather than null.
func TestBuildSeries_Empty(t *testing.T) {
	got := taf.BuildSeries(nil, taf.MetricBMI)
	if got.Labels == nil || got.Values == nil {
		t.Fatalf("BuildSeries(nil) = %+v, want non-nil empty slices", got)
	}
	if len(got.Labels) != 0 || len(got.Values) != 0 {
		t.Errorf("BuildSeries(nil) = %+v, want empty", got)
	}
}
