package service

import "time"

const dayLayout = "01/02/2006"

// Window is an inclusive range of calendar days.
type Window struct {
	From time.Time
	To   time.Time
}

func (w Window) String() string { return day(w.From) + "-" + day(w.To) }

// Days is the number of calendar days the window covers.
func (w Window) Days() int {
	return int(w.To.Sub(w.From).Round(24*time.Hour)/(24*time.Hour)) + 1
}

// Split returns one window per day.
func (w Window) Split() []Window {
	out := make([]Window, 0, w.Days())
	for d := w.From; !d.After(w.To); d = d.AddDate(0, 0, 1) {
		out = append(out, Window{From: d, To: d})
	}
	return out
}

// Chunks cuts the windowDays days ending at until into windows of at most
// maxDays days, oldest first.
func Chunks(until time.Time, windowDays, maxDays int) []Window {
	if windowDays <= 0 {
		windowDays = 1
	}
	if maxDays <= 0 {
		maxDays = windowDays
	}

	end := truncateDay(until)
	start := end.AddDate(0, 0, -(windowDays - 1))

	var out []Window
	for from := start; !from.After(end); from = from.AddDate(0, 0, maxDays) {
		to := from.AddDate(0, 0, maxDays-1)
		if to.After(end) {
			to = end
		}
		out = append(out, Window{From: from, To: to})
	}
	return out
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func day(t time.Time) string { return t.Format(dayLayout) }
