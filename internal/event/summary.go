package event

// Summarize derives the attendance summary from per-status counts.
// Pure function: capacity nil means unbounded, remaining is floored at 0
// for display.
func Summarize(yes, no, maybe int, capacity *int) AttendanceSummary {
	summary := AttendanceSummary{
		Yes:   yes,
		No:    no,
		Maybe: maybe,
	}

	if capacity != nil {
		remaining := *capacity - yes
		if remaining < 0 {
			remaining = 0
		}
		summary.Remaining = &remaining
		summary.Full = yes >= *capacity
	}

	return summary
}
