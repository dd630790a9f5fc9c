package handler

import (
	"net/http"
	"strconv"

	"fraud_awareness/internal/apperror"
	"fraud_awareness/internal/model"
	"fraud_awareness/internal/service"
	"fraud_awareness/internal/validation"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// FraudHandler handles fraud report and awareness material requests
type FraudHandler struct {
	service service.FraudService
	logger  *logrus.Logger
}

// NewFraudHandler creates a new FraudHandler
func NewFraudHandler(s service.FraudService, logger *logrus.Logger) *FraudHandler {
	return &FraudHandler{service: s, logger: logger}
}

// GetMaterials serves the public awareness content
func (h *FraudHandler) GetMaterials(c *gin.Context) {
	materials, err := h.service.GetMaterials(c.Request.Context())
	if err != nil {
		abortWithError(c, err)
		return
	}
	if materials == nil {
		materials = []model.Material{}
	}
	c.JSON(http.StatusOK, gin.H{"materials": materials})
}

func (h *FraudHandler) SubmitReport(c *gin.Context) {
	userID, err := getAuthUserID(c)
	if err != nil {
		abortWithError(c, err)
		return
	}

	var req model.SubmitReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, validation.FromBindingError(err))
		return
	}

	report, err := h.service.SubmitReport(c.Request.Context(), userID, req)
	if err != nil {
		abortWithError(c, err)
		return
	}

	h.logger.WithField("user_id", userID).Info("new fraud report submitted")

	c.JSON(http.StatusCreated, gin.H{
		"message": "Fraud report submitted successfully",
		"report":  report,
	})
}

func (h *FraudHandler) GetUserReports(c *gin.Context) {
	userID, err := getAuthUserID(c)
	if err != nil {
		abortWithError(c, err)
		return
	}

	reports, err := h.service.GetUserReports(c.Request.Context(), userID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	if reports == nil {
		reports = []model.FraudReport{}
	}
	c.JSON(http.StatusOK, gin.H{"reports": reports})
}

func (h *FraudHandler) GetAllReports(c *gin.Context) {
	reports, err := h.service.GetAllReports(c.Request.Context())
	if err != nil {
		abortWithError(c, err)
		return
	}
	if reports == nil {
		reports = []model.ReportWithSubmitter{}
	}
	c.JSON(http.StatusOK, gin.H{"reports": reports})
}

func (h *FraudHandler) UpdateReportStatus(c *gin.Context) {
	reportID, err := strconv.ParseInt(c.Param("reportId"), 10, 64)
	if err != nil {
		abortWithError(c, apperror.Validation("Invalid report ID"))
		return
	}

	var req model.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, validation.FromBindingError(err))
		return
	}

	report, err := h.service.UpdateReportStatus(c.Request.Context(), reportID, req)
	if err != nil {
		abortWithError(c, err)
		return
	}

	h.logger.WithFields(logrus.Fields{
		"report_id": reportID,
		"status":    req.Status,
	}).Info("report status updated")

	c.JSON(http.StatusOK, gin.H{
		"message": "Report status updated successfully",
		"report":  report,
	})
}

func (h *FraudHandler) GetStatistics(c *gin.Context) {
	stats, err := h.service.GetStatistics(c.Request.Context())
	if err != nil {
		abortWithError(c, err)
		return
	}
	if stats == nil {
		stats = []model.FraudTypeStat{}
	}
	c.JSON(http.StatusOK, gin.H{"statistics": stats})
}

// RegisterFraudRoutes registers fraud routes
func (h *FraudHandler) RegisterFraudRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc, adminMW gin.HandlerFunc) {
	fraudGroup := rg.Group("/fraud")

	// Public route
	fraudGroup.GET("/materials", h.GetMaterials)

	// Authenticated user routes
	fraudGroup.POST("/report", authMW, h.SubmitReport)
	fraudGroup.GET("/user-reports", authMW, h.GetUserReports)

	// Admin routes
	fraudGroup.GET("/all-reports", authMW, adminMW, h.GetAllReports)
	fraudGroup.PUT("/reports/:reportId/status", authMW, adminMW, h.UpdateReportStatus)
	fraudGroup.GET("/statistics", authMW, adminMW, h.GetStatistics)
}
