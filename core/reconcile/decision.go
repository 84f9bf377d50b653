package reconcile

import (
	"sort"
	"strings"
)

// Action priorities, higher is more urgent.
const (
	PriorityNone        = 1
	PriorityMonitor     = 2
	PriorityInvestigate = 3
	PriorityCritical    = 4
)

// ActionNone is the action of a fully reconciled record.
const ActionNone = "NO ACTION"

// missingStatus stands in for an absent status in the decision table.
const missingStatus = "MISSING"

// Decision is the outcome of the action decision table for one record.
type Decision struct {
	Category string `json:"category"`
	Action   string `json:"action"`
	Priority int    `json:"priority"`
}

// Decide applies the decision table to a raw status triple.
// A and B statuses are compared upper-cased and C lower-cased; C statuses
// are free text such as "Not Cancelled", so they are matched by substring.
// Rules are evaluated in order and the first match wins.
func Decide(t StatusTriple) Decision {
	a := upperOrMissing(t.A)
	b := upperOrMissing(t.B)
	c := strings.ToLower(strings.TrimSpace(t.C))
	if c == "" {
		c = strings.ToLower(missingStatus)
	}

	paidOrActive := a == "PAID" || a == "ACTIVE"
	notCancelled := strings.Contains(c, "not cancelled")

	switch {
	case paidOrActive && b == "SUCCESS" && notCancelled:
		return Decision{"FULLY_RECONCILED", ActionNone, PriorityNone}
	case paidOrActive && b == "SUCCESS" && strings.Contains(c, "cancelled"):
		return Decision{"REFUND_REQUIRED", "REFUND REQUIRED", PriorityCritical}
	case a == "PENDING" && b == "SUCCESS" && notCancelled:
		return Decision{"SYNC_PENDING", "SYNC / MONITOR", PriorityMonitor}
	case a == "FAILED" && b == "SUCCESS" && notCancelled:
		return Decision{"GATEWAY_SUCCESS_INTERNAL_FAIL", "INVESTIGATE", PriorityInvestigate}
	case b == "FAILED":
		return Decision{"PAYMENT_FAILED", "IGNORE", PriorityNone}
	case strings.Contains(b, "USER") && strings.Contains(b, "DROP"):
		return Decision{"USER_DROPPED", "IGNORE", PriorityNone}
	case a == "PENDING" && b == "PENDING":
		return Decision{"PAYMENT_IN_PROGRESS", "WAIT / RETRY", PriorityMonitor}
	case a == "ACTIVE" && b == "FAILED":
		return Decision{"ORDER_ACTIVE_PAYMENT_FAILED", "CANCEL ORDER", PriorityInvestigate}
	case a == "PAID" && b == "FAILED":
		return Decision{"INCONSISTENT_STATE", "INVESTIGATE", PriorityCritical}
	case b == "SUCCESS" && c == "missing":
		return Decision{"PAYMENT_SUCCESS_ORDER_MISSING", "INVESTIGATE / CREATE ORDER", PriorityCritical}
	case b == "PENDING":
		return Decision{"PAYMENT_NOT_CONFIRMED", "WAIT / RETRY", PriorityMonitor}
	case a == "FAILED":
		return Decision{"INTERNAL_FAILURE", "INVESTIGATE", PriorityInvestigate}
	}
	return Decision{"UNCATEGORIZED", "INVESTIGATE", PriorityInvestigate}
}

func upperOrMissing(s string) string {
	s = strings.ToUpper(strings.TrimSpace(s))
	if s == "" {
		return missingStatus
	}
	return s
}

// ActionCount is the number of records sharing an action.
type ActionCount struct {
	Action   string `json:"action"`
	Priority int    `json:"priority"`
	Count    int    `json:"count"`
}

// CountActions tallies decisions by action, most urgent first.
// Ties on priority are ordered by action name.
func CountActions(annotated []AnnotatedRecord) []ActionCount {
	index := map[string]int{}
	var out []ActionCount
	for _, rec := range annotated {
		d := rec.Decision
		if i, ok := index[d.Action]; ok {
			out[i].Count++
			continue
		}
		index[d.Action] = len(out)
		out = append(out, ActionCount{Action: d.Action, Priority: d.Priority, Count: 1})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Priority != out[j].Priority {
			return out[i].Priority > out[j].Priority
		}
		return out[i].Action < out[j].Action
	})
	return out
}
