package realty

import (
	"fmt"
	"slices"
	"time"
)

// ActivityKind classifies entries of the activity log.
type ActivityKind string

const (
	NewPropertyActivity     ActivityKind = "New Property"
	DocumentUploadActivity  ActivityKind = "Document Upload"
	PaymentReceivedActivity ActivityKind = "Payment Received"
	TaskCompletedActivity   ActivityKind = "Task Completed"
	DataResetActivity       ActivityKind = "Data Reset"
	DataClearedActivity     ActivityKind = "Data Cleared"
)

// Activity is an entry of the activity log. Administrative operations are
// recorded there too, making it the audit trail of the portfolio.
type Activity struct {
	ID          string       `json:"id"`
	Kind        ActivityKind `json:"type"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Actor       string       `json:"actor,omitempty"`
	Timestamp   time.Time    `json:"timestamp"`
}

// PropertyAdded returns the activity recorded when p is created.
func PropertyAdded(p *Property, at time.Time) Activity {
	return Activity{
		Kind:        NewPropertyActivity,
		Title:       "New Property Added",
		Description: fmt.Sprintf("%s was added to the portfolio.", p.Name),
		Timestamp:   at,
	}
}

// DocumentUploaded returns the activity recorded when doc is attached to p.
func DocumentUploaded(p *Property, doc Document, at time.Time) Activity {
	return Activity{
		Kind:        DocumentUploadActivity,
		Title:       "Document Uploaded",
		Description: fmt.Sprintf("%s uploaded for %s.", doc.Type, p.Name),
		Timestamp:   at,
	}
}

// PaymentReceived returns the activity recorded when a completed payment is recorded.
func PaymentReceived(pay Payment, at time.Time) Activity {
	return Activity{
		Kind:        PaymentReceivedActivity,
		Title:       "Payment Received",
		Description: fmt.Sprintf("%s %s payment received (%s).", pay.Amount, pay.Type, pay.Method),
		Timestamp:   at,
	}
}

// TasksCompleted returns the activities recorded when the documents pending
// on before are no longer pending on after, one per document.
func TasksCompleted(before, after *Property, at time.Time) []Activity {
	still := after.Documentation.PendingDocuments()
	var done []Activity
	for _, name := range before.Documentation.PendingDocuments() {
		if slices.Contains(still, name) {
			continue
		}
		done = append(done, Activity{
			Kind:        TaskCompletedActivity,
			Title:       "Task Completed",
			Description: fmt.Sprintf("%s of %s is no longer pending.", name, after.Name),
			Timestamp:   at,
		})
	}
	return done
}

// RecentActivities returns the n most recent activities, newest first.
func RecentActivities(activities []Activity, n int) []Activity {
	sorted := slices.Clone(activities)
	slices.SortStableFunc(sorted, func(a, b Activity) int { return b.Timestamp.Compare(a.Timestamp) })
	if n >= 0 && len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}
