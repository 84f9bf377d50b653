package models

import (
	"time"

	"recon-manager/core/reconcile"
)

// RunTable is the name of the run ledger table.
const RunTable = "reconciliation_runs"

// Run is one archived reconciliation run.
type Run struct {
	ID        string    `gorm:"column:id;type:varchar(36);primaryKey" json:"id"`
	CreatedAt time.Time `gorm:"column:created_at;type:datetime;index" json:"created_at"`
	RayID     string    `gorm:"column:ray_id;type:varchar(64)" json:"ray_id,omitempty"`

	FileA string `gorm:"column:file_a;type:varchar(255)" json:"file_a"`
	FileB string `gorm:"column:file_b;type:varchar(255)" json:"file_b"`
	FileC string `gorm:"column:file_c;type:varchar(255)" json:"file_c"`

	RowsA            int  `gorm:"column:rows_a;type:int" json:"rows_a"`
	RowsB            int  `gorm:"column:rows_b;type:int" json:"rows_b"`
	RowsC            int  `gorm:"column:rows_c;type:int" json:"rows_c"`
	Matched          int  `gorm:"column:matched;type:int" json:"matched"`
	MissingInB       int  `gorm:"column:missing_in_b;type:int" json:"missing_in_b"`
	MissingInC       int  `gorm:"column:missing_in_c;type:int" json:"missing_in_c"`
	MissingInBoth    int  `gorm:"column:missing_in_both;type:int" json:"missing_in_both"`
	UnmatchedB       int  `gorm:"column:unmatched_b;type:int" json:"unmatched_b"`
	UnmatchedC       int  `gorm:"column:unmatched_c;type:int" json:"unmatched_c"`
	AlarmedCount     int  `gorm:"column:alarmed_count;type:int" json:"alarmed_count"`
	FullyReconciled  int  `gorm:"column:fully_reconciled;type:int" json:"fully_reconciled"`
	StatusClassified bool `gorm:"column:status_classified;type:tinyint(1)" json:"status_classified"`

	// Summary is the full run summary encoded as JSON.
	Summary string `gorm:"column:summary;type:text" json:"-"`

	ObjectKey  string `gorm:"column:object_key;type:varchar(255)" json:"object_key"`
	ReportSize int64  `gorm:"column:report_size;type:bigint" json:"report_size"`
}

// TableName overrides the table name used by Run.
func (Run) TableName() string {
	return RunTable
}

// NewRun fills the counters of a run from a summary.
func NewRun(id string, createdAt time.Time, s reconcile.Summary) *Run {
	return &Run{
		ID:               id,
		CreatedAt:        createdAt,
		RowsA:            s.RowsA,
		RowsB:            s.RowsB,
		RowsC:            s.RowsC,
		Matched:          s.Matched,
		MissingInB:       s.MissingInB,
		MissingInC:       s.MissingInC,
		MissingInBoth:    s.MissingInBoth,
		UnmatchedB:       s.UnmatchedB,
		UnmatchedC:       s.UnmatchedC,
		AlarmedCount:     s.AlarmedCount,
		FullyReconciled:  s.FullyReconciled,
		StatusClassified: s.StatusClassified,
	}
}
