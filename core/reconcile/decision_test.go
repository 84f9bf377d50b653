package reconcile

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecide(t *testing.T) {
	tests := []struct {
		name     string
		status   StatusTriple
		category string
		action   string
		priority int
	}{
		{"Reconciled", StatusTriple{"PAID", "SUCCESS", "Not Cancelled"}, "FULLY_RECONCILED", ActionNone, PriorityNone},
		{"ReconciledActive", StatusTriple{"active", "success", "not cancelled"}, "FULLY_RECONCILED", ActionNone, PriorityNone},
		{"Refund", StatusTriple{"PAID", "SUCCESS", "Cancelled"}, "REFUND_REQUIRED", "REFUND REQUIRED", PriorityCritical},
		{"SyncPending", StatusTriple{"PENDING", "SUCCESS", "Not Cancelled"}, "SYNC_PENDING", "SYNC / MONITOR", PriorityMonitor},
		{"GatewaySuccess", StatusTriple{"FAILED", "SUCCESS", "Not Cancelled"}, "GATEWAY_SUCCESS_INTERNAL_FAIL", "INVESTIGATE", PriorityInvestigate},
		{"PaymentFailed", StatusTriple{"PAID", "FAILED", ""}, "PAYMENT_FAILED", "IGNORE", PriorityNone},
		{"UserDropped", StatusTriple{"PENDING", "USER_DROPPED", ""}, "USER_DROPPED", "IGNORE", PriorityNone},
		{"InProgress", StatusTriple{"PENDING", "PENDING", ""}, "PAYMENT_IN_PROGRESS", "WAIT / RETRY", PriorityMonitor},
		{"OrderMissing", StatusTriple{"", "SUCCESS", ""}, "PAYMENT_SUCCESS_ORDER_MISSING", "INVESTIGATE / CREATE ORDER", PriorityCritical},
		{"NotConfirmed", StatusTriple{"PAID", "PENDING", ""}, "PAYMENT_NOT_CONFIRMED", "WAIT / RETRY", PriorityMonitor},
		{"InternalFailure", StatusTriple{"FAILED", "", ""}, "INTERNAL_FAILURE", "INVESTIGATE", PriorityInvestigate},
		{"Uncategorized", StatusTriple{"", "", ""}, "UNCATEGORIZED", "INVESTIGATE", PriorityInvestigate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Decide(tt.status)
			assert.Equal(t, tt.category, got.Category)
			assert.Equal(t, tt.action, got.Action)
			assert.Equal(t, tt.priority, got.Priority)
		})
	}
}

func TestCountActions(t *testing.T) {
	annotated := []AnnotatedRecord{
		{Decision: Decide(StatusTriple{"PAID", "SUCCESS", "Not Cancelled"})},
		{Decision: Decide(StatusTriple{"PAID", "SUCCESS", "Cancelled"})},
		{Decision: Decide(StatusTriple{"FAILED", "", ""})},
		{Decision: Decide(StatusTriple{"", "", ""})},
		{Decision: Decide(StatusTriple{"PAID", "SUCCESS", "Not Cancelled"})},
	}

	got := CountActions(annotated)
	assert.Equal(t, []ActionCount{
		{Action: "REFUND REQUIRED", Priority: PriorityCritical, Count: 1},
		{Action: "INVESTIGATE", Priority: PriorityInvestigate, Count: 2},
		{Action: ActionNone, Priority: PriorityNone, Count: 2},
	}, got)
}

func TestCountActions_Empty(t *testing.T) {
	assert.Empty(t, CountActions(nil))
}
