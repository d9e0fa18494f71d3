package realty

import (
	"fmt"
	"strings"
)

// Period is a calendar granularity used to step time series.
type Period int

const (
	Daily Period = iota
	Weekly
	Monthly
	Quarterly
	Yearly
)

// IsValid reports whether p is one of the known periods.
func (p Period) IsValid() bool { return p >= Daily && p <= Yearly }

func (p Period) String() string {
	switch p {
	case Daily:
		return "daily"
	case Weekly:
		return "weekly"
	case Monthly:
		return "monthly"
	case Quarterly:
		return "quarterly"
	case Yearly:
		return "yearly"
	default:
		return "periodic"
	}
}

// Name returns the singular noun for the period (e.g., "day", "week", "month").
func (p Period) Name() string {
	switch p {
	case Daily:
		return "day"
	case Weekly:
		return "week"
	case Monthly:
		return "month"
	case Quarterly:
		return "quarter"
	case Yearly:
		return "year"
	default:
		return "period"
	}
}

// Label returns the short chart label of the bucket ending on d.
func (p Period) Label(d Date) string {
	switch p {
	case Monthly:
		return d.Format("Jan 2006")
	case Quarterly:
		return fmt.Sprintf("Q%d %d", (d.Month()-1)/3+1, d.Year())
	case Yearly:
		return d.Format("2006")
	default:
		return d.String()
	}
}

// ParsePeriod parses a period name like "month" or "monthly".
func ParsePeriod(p string) (Period, error) {
	p = strings.ToLower(strings.TrimSpace(p))
	switch p {
	case "daily", "day":
		return Daily, nil
	case "weekly", "week":
		return Weekly, nil
	case "monthly", "month":
		return Monthly, nil
	case "quarterly", "quarter":
		return Quarterly, nil
	case "yearly", "year":
		return Yearly, nil
	default:
		return Monthly, fmt.Errorf("unknown period %q", p)
	}
}
