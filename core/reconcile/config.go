package reconcile

import (
	"fmt"
	"strings"
)

// Config holds the column names, labels and status vocabulary used by the engine.
type Config struct {
	// LabelA is the short name of the primary ledger, used in sheet and bucket names.
	// Labels are capped at 7 characters so compact bucket sheet names fit in 31.
	LabelA string `mapstructure:"label_a" default:"A" validate:"required,max=7"`
	// LabelB is the short name of the order-keyed processor.
	LabelB string `mapstructure:"label_b" default:"B" validate:"required,max=7"`
	// LabelC is the short name of the merchant-transaction-keyed processor.
	LabelC string `mapstructure:"label_c" default:"C" validate:"required,max=7"`

	// OrderIDColumnA is the order id column of the primary ledger.
	OrderIDColumnA string `mapstructure:"order_id_column_a" default:"OrderId" validate:"required"`
	// MerchantTxnColumnA is the merchant transaction id column of the primary ledger.
	MerchantTxnColumnA string `mapstructure:"merchant_txn_column_a" default:"MerchantTransactionId" validate:"required"`
	// StatusColumnA is the optional status column of the primary ledger.
	StatusColumnA string `mapstructure:"status_column_a" default:"Status"`

	// OrderIDColumnB is the order id column of source B.
	OrderIDColumnB string `mapstructure:"order_id_column_b" default:"OrderId" validate:"required"`
	// StatusColumnB is the optional status column of source B.
	StatusColumnB string `mapstructure:"status_column_b" default:"Status"`

	// MerchantTxnColumnC is the merchant transaction id column of source C.
	MerchantTxnColumnC string `mapstructure:"merchant_txn_column_c" default:"MerchantTransactionId" validate:"required"`
	// StatusColumnC is the optional status column of source C.
	StatusColumnC string `mapstructure:"status_column_c" default:"Status"`

	// CaseSensitive disables lower-casing of identifiers before matching.
	CaseSensitive bool `mapstructure:"case_sensitive" default:"false"`

	// SuccessStatuses are the raw status values counted as SUCCESS.
	SuccessStatuses []string `mapstructure:"success_statuses" default:"SUCCESS,COMPLETED,PASS" validate:"required,min=1"`
	// FailStatuses are the raw status values counted as FAIL.
	FailStatuses []string `mapstructure:"fail_statuses" default:"FAILED,FAIL,DECLINED" validate:"required,min=1"`
}

// DefaultConfig returns the configuration matching the struct tag defaults.
func DefaultConfig() Config {
	return Config{
		LabelA:             "A",
		LabelB:             "B",
		LabelC:             "C",
		OrderIDColumnA:     "OrderId",
		MerchantTxnColumnA: "MerchantTransactionId",
		StatusColumnA:      "Status",
		OrderIDColumnB:     "OrderId",
		StatusColumnB:      "Status",
		MerchantTxnColumnC: "MerchantTransactionId",
		StatusColumnC:      "Status",
		SuccessStatuses:    []string{"SUCCESS", "COMPLETED", "PASS"},
		FailStatuses:       []string{"FAILED", "FAIL", "DECLINED"},
	}
}

// Labels returns the configured source labels.
func (c Config) Labels() Labels {
	return Labels{A: c.LabelA, B: c.LabelB, C: c.LabelC}
}

// Check verifies the parts of the configuration that struct tags cannot express.
func (c Config) Check() error {
	seen := make(map[string]struct{}, len(c.SuccessStatuses))
	for _, s := range c.SuccessStatuses {
		seen[normalizeStatus(s)] = struct{}{}
	}
	for _, s := range c.FailStatuses {
		if _, dup := seen[normalizeStatus(s)]; dup {
			return fmt.Errorf("status %q is listed as both success and fail", s)
		}
	}

	labels := map[string]struct{}{}
	for _, l := range []string{c.LabelA, c.LabelB, c.LabelC} {
		key := strings.ToUpper(strings.TrimSpace(l))
		if key == "" {
			return fmt.Errorf("source labels must not be empty")
		}
		if _, dup := labels[key]; dup {
			return fmt.Errorf("source label %q is used twice", l)
		}
		labels[key] = struct{}{}
	}
	return nil
}

// Labels names the three sources.
type Labels struct {
	A string `json:"a"`
	B string `json:"b"`
	C string `json:"c"`
}
