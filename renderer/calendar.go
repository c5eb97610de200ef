package renderer

import (
	"bytes"

	tracker "github.com/DKushman/calorie-tracker"
	md "github.com/nao1215/markdown"
)

// CalendarMarkdown renders the trailing 30-day rollup, oldest first. Days
// without a calorie goal carry no status column value.
func CalendarMarkdown(entries []tracker.DayEntry) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Last 30 Days")

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignLeft,
			md.AlignLeft,
		},
		Header: []string{"Date", "Calories", "Status", ""},
	}
	for _, e := range entries {
		table.Rows = append(table.Rows, []string{
			e.Date.String(),
			total(e),
			string(e.Status),
			marks(e),
		})
	}
	doc.Table(table)

	return doc.String()
}

// total renders the day's calories, leaving empty days blank.
func total(e tracker.DayEntry) string {
	if e.Total.IsZero() {
		return ""
	}
	return e.Total.String()
}

// marks flags the current and selected day.
func marks(e tracker.DayEntry) string {
	switch {
	case e.IsToday && e.IsSelected:
		return "today, selected"
	case e.IsToday:
		return "today"
	case e.IsSelected:
		return "selected"
	default:
		return ""
	}
}
