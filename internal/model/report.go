package model

import "time"

const (
	FraudTypeSMS   = "sms"
	FraudTypeCall  = "call"
	FraudTypeSS7   = "ss7"
	FraudTypeOther = "other"
)

const (
	StatusPending  = "pending"
	StatusVerified = "verified"
	StatusResolved = "resolved"
	StatusRejected = "rejected"
)

// FraudReport represents a user-submitted fraud incident record
type FraudReport struct {
	ID           int64     `json:"id"`
	UserID       int       `json:"userId"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	FraudType    string    `json:"fraudType"`
	EvidenceURLs []string  `json:"evidenceUrls"`
	Location     *string   `json:"location,omitempty"` // Pointer for optional field
	Status       string    `json:"status"`
	AdminNotes   *string   `json:"adminNotes,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// ReportWithSubmitter is a report joined with its submitter, for admin listings
type ReportWithSubmitter struct {
	FraudReport
	SubmitterUsername string `json:"username"`
	SubmitterEmail    string `json:"email"`
}

// SubmitReportRequest is the payload for submitting a new fraud report.
// Status is never taken from the client; new reports always start pending.
type SubmitReportRequest struct {
	Title        string   `json:"title" binding:"required,min=5,max=200"`
	Description  string   `json:"description" binding:"required,min=20"`
	FraudType    string   `json:"fraudType" binding:"required,oneof=sms call ss7 other"`
	EvidenceURLs []string `json:"evidenceUrls" binding:"required"`
	Location     *string  `json:"location" binding:"omitnil,min=1"`
}

// UpdateStatusRequest is the payload for an admin status transition
type UpdateStatusRequest struct {
	Status     string  `json:"status" binding:"required,oneof=pending verified resolved rejected"`
	AdminNotes *string `json:"adminNotes" binding:"omitnil,min=10"`
}

// FraudTypeStat is one aggregation row: counts per (fraud type, month)
type FraudTypeStat struct {
	FraudType       string    `json:"fraudType"`
	Month           time.Time `json:"month"`
	TotalReports    int64     `json:"totalReports"`
	PendingReports  int64     `json:"pendingReports"`
	VerifiedReports int64     `json:"verifiedReports"`
	ResolvedReports int64     `json:"resolvedReports"`
	RejectedReports int64     `json:"rejectedReports"`
}
