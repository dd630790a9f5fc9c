package service

import (
	"context"
	"fmt"
	"time"

	"fraud_awareness/internal/apperror"
	"fraud_awareness/internal/model"
	"fraud_awareness/internal/repository"
)

var ErrReportNotFound = apperror.NotFound("Report not found")

// FraudService provides the report lifecycle, statistics and materials
type FraudService interface {
	SubmitReport(ctx context.Context, userID int, req model.SubmitReportRequest) (*model.FraudReport, error)
	GetUserReports(ctx context.Context, userID int) ([]model.FraudReport, error)
	GetAllReports(ctx context.Context) ([]model.ReportWithSubmitter, error)
	UpdateReportStatus(ctx context.Context, reportID int64, req model.UpdateStatusRequest) (*model.FraudReport, error)
	GetStatistics(ctx context.Context) ([]model.FraudTypeStat, error)
	GetMaterials(ctx context.Context) ([]model.Material, error)
}

type fraudService struct {
	reportRepo   repository.ReportRepository
	materialRepo repository.MaterialRepository
}

// NewFraudService creates a new FraudService
func NewFraudService(reportRepo repository.ReportRepository, materialRepo repository.MaterialRepository) FraudService {
	return &fraudService{reportRepo: reportRepo, materialRepo: materialRepo}
}

// SubmitReport persists a new fraud report. New reports always start in the
// pending state, whatever the client sent.
func (s *fraudService) SubmitReport(ctx context.Context, userID int, req model.SubmitReportRequest) (*model.FraudReport, error) {
	evidenceURLs := req.EvidenceURLs
	if evidenceURLs == nil {
		evidenceURLs = []string{}
	}

	report := &model.FraudReport{
		UserID:       userID,
		Title:        req.Title,
		Description:  req.Description,
		FraudType:    req.FraudType,
		EvidenceURLs: evidenceURLs,
		Location:     req.Location,
		Status:       model.StatusPending,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if err := s.reportRepo.Create(ctx, report); err != nil {
		return nil, fmt.Errorf("failed to create fraud report in repo: %w", err)
	}
	return report, nil
}

// GetUserReports returns the caller's reports, newest first
func (s *fraudService) GetUserReports(ctx context.Context, userID int) ([]model.FraudReport, error) {
	reports, err := s.reportRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user reports from repo: %w", err)
	}
	return reports, nil
}

// GetAllReports returns every report joined with its submitter, newest first
func (s *fraudService) GetAllReports(ctx context.Context) ([]model.ReportWithSubmitter, error) {
	reports, err := s.reportRepo.FindAllWithSubmitters(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get all reports from repo: %w", err)
	}
	return reports, nil
}

// UpdateReportStatus applies an admin status transition. Any status may move
// to any other; only membership in the enum is enforced, upstream.
func (s *fraudService) UpdateReportStatus(ctx context.Context, reportID int64, req model.UpdateStatusRequest) (*model.FraudReport, error) {
	report, err := s.reportRepo.UpdateStatus(ctx, reportID, req.Status, req.AdminNotes)
	if err != nil {
		return nil, fmt.Errorf("failed to update report status in repo: %w", err)
	}
	if report == nil {
		return nil, ErrReportNotFound
	}
	return report, nil
}

// GetStatistics computes per-type, per-month report counts from live data
func (s *fraudService) GetStatistics(ctx context.Context) ([]model.FraudTypeStat, error) {
	stats, err := s.reportRepo.GetStatistics(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get fraud statistics from repo: %w", err)
	}
	return stats, nil
}

// GetMaterials returns the awareness materials, newest first
func (s *fraudService) GetMaterials(ctx context.Context) ([]model.Material, error) {
	materials, err := s.materialRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get fraud materials from repo: %w", err)
	}
	return materials, nil
}
