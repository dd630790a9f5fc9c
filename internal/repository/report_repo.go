package repository

import (
	"context"
	"errors"
	"fmt"

	"fraud_awareness/internal/model"

	"github.com/jackc/pgx/v5"
)

// ReportRepository defines operations for fraud report data
type ReportRepository interface {
	Create(ctx context.Context, report *model.FraudReport) error
	FindByUser(ctx context.Context, userID int) ([]model.FraudReport, error)
	FindAllWithSubmitters(ctx context.Context) ([]model.ReportWithSubmitter, error)
	UpdateStatus(ctx context.Context, id int64, status string, adminNotes *string) (*model.FraudReport, error)
	GetStatistics(ctx context.Context) ([]model.FraudTypeStat, error)
}

type reportRepository struct {
	db Querier
}

// NewReportRepository creates a new ReportRepository
func NewReportRepository(db Querier) ReportRepository {
	return &reportRepository{db: db}
}

// Create inserts a new fraud report into the database
func (r *reportRepository) Create(ctx context.Context, report *model.FraudReport) error {
	sql := `INSERT INTO fraud_reports (user_id, title, description, fraud_type, evidence_urls, location, status, created_at, updated_at)
            VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id, created_at, updated_at`
	err := r.db.QueryRow(ctx, sql,
		report.UserID, report.Title, report.Description, report.FraudType,
		report.EvidenceURLs, report.Location, report.Status, report.CreatedAt, report.UpdatedAt,
	).Scan(&report.ID, &report.CreatedAt, &report.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create fraud report: %w", err)
	}
	return nil
}

// FindByUser retrieves a user's fraud reports, newest first
func (r *reportRepository) FindByUser(ctx context.Context, userID int) ([]model.FraudReport, error) {
	sql := `SELECT id, user_id, title, description, fraud_type, evidence_urls, location, status, admin_notes, created_at, updated_at
            FROM fraud_reports WHERE user_id = $1 ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, sql, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query fraud reports by user: %w", err)
	}
	defer rows.Close()

	var reports []model.FraudReport
	for rows.Next() {
		var rep model.FraudReport
		if err := rows.Scan(
			&rep.ID, &rep.UserID, &rep.Title, &rep.Description, &rep.FraudType,
			&rep.EvidenceURLs, &rep.Location, &rep.Status, &rep.AdminNotes,
			&rep.CreatedAt, &rep.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan fraud report row: %w", err)
		}
		reports = append(reports, rep)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating fraud report rows: %w", err)
	}
	return reports, nil
}

// FindAllWithSubmitters retrieves all reports joined with submitter identity, newest first
func (r *reportRepository) FindAllWithSubmitters(ctx context.Context) ([]model.ReportWithSubmitter, error) {
	sql := `SELECT fr.id, fr.user_id, fr.title, fr.description, fr.fraud_type, fr.evidence_urls, fr.location,
                   fr.status, fr.admin_notes, fr.created_at, fr.updated_at, u.username, u.email
            FROM fraud_reports fr
            JOIN users u ON fr.user_id = u.id
            ORDER BY fr.created_at DESC`
	rows, err := r.db.Query(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("failed to query all fraud reports: %w", err)
	}
	defer rows.Close()

	var reports []model.ReportWithSubmitter
	for rows.Next() {
		var rep model.ReportWithSubmitter
		if err := rows.Scan(
			&rep.ID, &rep.UserID, &rep.Title, &rep.Description, &rep.FraudType,
			&rep.EvidenceURLs, &rep.Location, &rep.Status, &rep.AdminNotes,
			&rep.CreatedAt, &rep.UpdatedAt, &rep.SubmitterUsername, &rep.SubmitterEmail,
		); err != nil {
			return nil, fmt.Errorf("failed to scan fraud report row for admin: %w", err)
		}
		reports = append(reports, rep)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating admin fraud report rows: %w", err)
	}
	return reports, nil
}

// UpdateStatus sets a report's status and admin notes. Returns nil, nil when
// the report does not exist.
func (r *reportRepository) UpdateStatus(ctx context.Context, id int64, status string, adminNotes *string) (*model.FraudReport, error) {
	report := &model.FraudReport{}
	sql := `UPDATE fraud_reports
            SET status = $1, admin_notes = $2, updated_at = CURRENT_TIMESTAMP
            WHERE id = $3
            RETURNING id, user_id, title, description, fraud_type, evidence_urls, location, status, admin_notes, created_at, updated_at`
	err := r.db.QueryRow(ctx, sql, status, adminNotes, id).Scan(
		&report.ID, &report.UserID, &report.Title, &report.Description, &report.FraudType,
		&report.EvidenceURLs, &report.Location, &report.Status, &report.AdminNotes,
		&report.CreatedAt, &report.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // Not found
		}
		return nil, fmt.Errorf("failed to update fraud report status: %w", err)
	}
	return report, nil
}

// GetStatistics aggregates report counts per fraud type and calendar month
func (r *reportRepository) GetStatistics(ctx context.Context) ([]model.FraudTypeStat, error) {
	sql := `SELECT
                fraud_type,
                DATE_TRUNC('month', created_at) AS month,
                COUNT(*) AS total_reports,
                COUNT(CASE WHEN status = 'pending' THEN 1 END) AS pending_reports,
                COUNT(CASE WHEN status = 'verified' THEN 1 END) AS verified_reports,
                COUNT(CASE WHEN status = 'resolved' THEN 1 END) AS resolved_reports,
                COUNT(CASE WHEN status = 'rejected' THEN 1 END) AS rejected_reports
            FROM fraud_reports
            GROUP BY fraud_type, DATE_TRUNC('month', created_at)
            ORDER BY month DESC`
	rows, err := r.db.Query(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("failed to query fraud statistics: %w", err)
	}
	defer rows.Close()

	var stats []model.FraudTypeStat
	for rows.Next() {
		var st model.FraudTypeStat
		if err := rows.Scan(
			&st.FraudType, &st.Month, &st.TotalReports,
			&st.PendingReports, &st.VerifiedReports, &st.ResolvedReports, &st.RejectedReports,
		); err != nil {
			return nil, fmt.Errorf("failed to scan fraud statistics row: %w", err)
		}
		stats = append(stats, st)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating fraud statistics rows: %w", err)
	}
	return stats, nil
}
