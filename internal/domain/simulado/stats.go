package simulado

// Stats aggregates every recorded attempt.
type Stats struct {
	Count int
	Avg   float64
	Best  float64
	Worst float64
}

// ComputeStats summarises a list of attempts.
// Count covers every attempt. The percentage aggregates skip rows whose
// question count is not positive, which can exist in databases written
// before validation was enforced.
// POST: Avg, Best and Worst are 0.0 when no attempt has a positive
// question count
func ComputeStats(attempts []Attempt) Stats {
	s := Stats{Count: len(attempts)}

	scored := 0
	for i := range attempts {
		if attempts[i].Questions <= 0 {
			continue
		}
		p := attempts[i].Percent()
		if scored == 0 {
			s.Best, s.Worst = p, p
		} else {
			if p > s.Best {
				s.Best = p
			}
			if p < s.Worst {
				s.Worst = p
			}
		}
		s.Avg += p
		scored++
	}
	if scored > 0 {
		s.Avg /= float64(scored)
	}
	return s
}
