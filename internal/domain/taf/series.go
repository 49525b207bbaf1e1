package taf

// Metric names accepted by the chart data endpoint. They match the
// labels shown in the chart selector.
const (
	MetricBMI     = "BMI"
	MetricPushups = "Push-ups"
	MetricSitups  = "Sit-ups"
	MetricPullups = "Pull-ups"
	MetricRunning = "Running"
)

// Metrics lists every chartable metric in display order.
var Metrics = []string{MetricBMI, MetricPushups, MetricSitups, MetricPullups, MetricRunning}

// Series is one metric projected over test days, ready for charting.
type Series struct {
	Labels []string  `json:"labels"`
	Values []float64 `json:"values"`
}

// BuildSeries projects days onto a single metric, in the order given.
// Days without a value for the metric chart as zero. Unknown metric
// names fall back to the body-mass index.
// POST: len(Labels) == len(Values) == len(days), never nil
func BuildSeries(days []Day, metric string) Series {
	s := Series{
		Labels: make([]string, 0, len(days)),
		Values: make([]float64, 0, len(days)),
	}
	for i := range days {
		s.Labels = append(s.Labels, days[i].Date)
		s.Values = append(s.Values, metricValue(&days[i], metric))
	}
	return s
}

func metricValue(d *Day, metric string) float64 {
	switch metric {
	case MetricPushups:
		return floatOrZero(d.Pushups)
	case MetricSitups:
		return floatOrZero(d.Situps)
	case MetricPullups:
		return floatOrZero(d.Pullups)
	case MetricRunning:
		if d.RunningKM == nil {
			return 0
		}
		return *d.RunningKM
	default:
		if d.BMI == nil {
			return 0
		}
		return *d.BMI
	}
}

func floatOrZero(p *int) float64 {
	if p == nil {
		return 0
	}
	return float64(*p)
}
