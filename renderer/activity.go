package renderer

import (
	"fmt"
	"strings"
	"time"

	"github.com/etnz/realty"
)

// ActivityMarkdown renders the activity log, newest first as given.
func ActivityMarkdown(activities []realty.Activity, now time.Time) string {
	r := &activityRenderer{Builder: &strings.Builder{}, now: now}
	r.Printf("# Recent Activity\n\n")
	if len(activities) == 0 {
		r.Printf("Nothing happened yet.\n")
		return r.String()
	}
	for _, a := range activities {
		r.Printf("- **%s** (%s): %s", a.Title, r.ago(a.Timestamp), a.Description)
		if a.Actor != "" {
			r.Printf(" _by %s_", a.Actor)
		}
		r.Printf("\n")
	}
	return r.String()
}

type activityRenderer struct {
	*strings.Builder
	now time.Time
}

func (r *activityRenderer) Printf(format string, args ...any) {
	fmt.Fprintf(r, format, args...)
}

// ago formats t relative to now, falling back to the date for old entries.
func (r *activityRenderer) ago(t time.Time) string {
	d := r.now.Sub(t)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	case d < 7*24*time.Hour:
		return fmt.Sprintf("%dd ago", int(d.Hours()/24))
	default:
		return realty.DateOf(t).String()
	}
}
