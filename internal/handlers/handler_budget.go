package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/bizgrid/erp_backend/internal/apperrors"
	portssvc "github.com/bizgrid/erp_backend/internal/core/ports/services"
	"github.com/bizgrid/erp_backend/internal/dto"
	"github.com/bizgrid/erp_backend/internal/middleware"
	"github.com/bizgrid/erp_backend/internal/utils"
	"github.com/gin-gonic/gin"
)

// budgetHandler handles HTTP requests related to budgets and their reports.
type budgetHandler struct {
	budgetService portssvc.BudgetSvcFacade
	posthogClient *utils.PosthogClientWrapper
}

func newBudgetHandler(bs portssvc.BudgetSvcFacade, posthogClient *utils.PosthogClientWrapper) *budgetHandler {
	return &budgetHandler{budgetService: bs, posthogClient: posthogClient}
}

// registerBudgetRoutes registers routes related to budgets.
func registerBudgetRoutes(rg *gin.RouterGroup, budgetService portssvc.BudgetSvcFacade, posthogClient *utils.PosthogClientWrapper) {
	h := newBudgetHandler(budgetService, posthogClient)

	budgets := rg.Group("/budgets")
	{
		budgets.POST("", h.createBudget)
		// Static before :id so the collection-wide alert routes win
		budgets.GET("/alerts", h.listAllAlerts)
		budgets.POST("/alerts", h.createAlertNotificationForBudget)
		budgets.GET("/:id", h.getBudget)
		budgets.GET("", h.listBudgets)
		budgets.PUT("/:id", h.updateBudget)
		budgets.DELETE("/:id", h.deleteBudget)

		budgets.GET("/:id/track", h.trackBudget)
		budgets.GET("/:id/comparison", h.compareBudget)
		budgets.GET("/:id/alerts", h.listAlerts)
		budgets.POST("/:id/notifications", h.createAlertNotification)
		budgets.GET("/:id/notifications", h.listAlertNotifications)
	}
}

// createBudget godoc
// @Summary Create a new budget
// @Description Creates a budget with per-category targets over a date window
// @Tags budgets
// @Accept  json
// @Produce  json
// @Param   budget body dto.CreateBudgetRequest true "Budget details"
// @Success 201 {object} dto.BudgetResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 409 {object} map[string]string "Budget name already exists"
// @Security BearerAuth
// @Router /finance/budgets [post]
func (h *budgetHandler) createBudget(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateBudget", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	budget, err := h.budgetService.CreateBudget(c.Request.Context(), req, userID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			logger.Warn("Validation error creating budget", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrDuplicate):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to create budget", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create budget"})
		}
		return
	}

	logger.Info("Budget created", slog.String("budget_id", budget.BudgetID))
	c.JSON(http.StatusCreated, dto.ToBudgetResponse(budget))
}

// getBudget godoc
// @Summary Get a budget by ID
// @Description Retrieves a budget with its category lines
// @Tags budgets
// @Produce  json
// @Param   id path string true "Budget ID"
// @Success 200 {object} dto.BudgetResponse
// @Failure 404 {object} map[string]string "Budget not found"
// @Security BearerAuth
// @Router /finance/budgets/{id} [get]
func (h *budgetHandler) getBudget(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	budgetID := c.Param("id")

	budget, err := h.budgetService.GetBudgetByID(c.Request.Context(), budgetID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Budget not found"})
		} else {
			logger.Error("Failed to get budget", slog.String("budget_id", budgetID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve budget"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToBudgetResponse(budget))
}

// listBudgets godoc
// @Summary List budgets
// @Description Retrieves all budgets with their category lines
// @Tags budgets
// @Produce  json
// @Success 200 {array} dto.BudgetResponse
// @Security BearerAuth
// @Router /finance/budgets [get]
func (h *budgetHandler) listBudgets(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	budgets, err := h.budgetService.ListBudgets(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list budgets", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list budgets"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListBudgetResponse(budgets))
}

// updateBudget godoc
// @Summary Update a budget
// @Description Updates a budget's details; supplied categories replace the existing lines
// @Tags budgets
// @Accept  json
// @Produce  json
// @Param   id path string true "Budget ID"
// @Param   budget body dto.UpdateBudgetRequest true "Fields to update"
// @Success 200 {object} dto.BudgetResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 404 {object} map[string]string "Budget not found"
// @Security BearerAuth
// @Router /finance/budgets/{id} [put]
func (h *budgetHandler) updateBudget(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	budgetID := c.Param("id")

	var req dto.UpdateBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateBudget", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	budget, err := h.budgetService.UpdateBudget(c.Request.Context(), budgetID, req, userID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Budget not found"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrDuplicate):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to update budget", slog.String("budget_id", budgetID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update budget"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToBudgetResponse(budget))
}

// deleteBudget godoc
// @Summary Delete a budget
// @Description Removes a budget along with its category lines and notifications
// @Tags budgets
// @Produce  json
// @Param   id path string true "Budget ID"
// @Success 204 "Budget deleted"
// @Failure 404 {object} map[string]string "Budget not found"
// @Security BearerAuth
// @Router /finance/budgets/{id} [delete]
func (h *budgetHandler) deleteBudget(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	budgetID := c.Param("id")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.budgetService.DeleteBudget(c.Request.Context(), budgetID, userID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Budget not found"})
		} else {
			logger.Error("Failed to delete budget", slog.String("budget_id", budgetID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete budget"})
		}
		return
	}

	logger.Info("Budget deleted", slog.String("budget_id", budgetID))
	c.Status(http.StatusNoContent)
}

// trackBudget godoc
// @Summary Track a budget
// @Description Computes budget vs actuals over the budget's own date window
// @Tags budgets
// @Produce  json
// @Param   id path string true "Budget ID"
// @Success 200 {object} dto.BudgetReportResponse
// @Failure 404 {object} map[string]string "Budget not found"
// @Security BearerAuth
// @Router /finance/budgets/{id}/track [get]
func (h *budgetHandler) trackBudget(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	budgetID := c.Param("id")

	report, err := h.budgetService.TrackBudget(c.Request.Context(), budgetID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Budget not found"})
		} else {
			logger.Error("Failed to track budget", slog.String("budget_id", budgetID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to track budget"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToBudgetReportResponse(report))
}

// compareBudget godoc
// @Summary Compare a budget over a standard period
// @Description Computes budget vs actuals for the current month, quarter or year to date
// @Tags budgets
// @Produce  json
// @Param   id path string true "Budget ID"
// @Param   period query string false "Comparison window: month, quarter or year (defaults to the budget's own window)"
// @Success 200 {object} dto.BudgetReportResponse
// @Failure 400 {object} map[string]string "Invalid period"
// @Failure 404 {object} map[string]string "Budget not found"
// @Security BearerAuth
// @Router /finance/budgets/{id}/comparison [get]
func (h *budgetHandler) compareBudget(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	budgetID := c.Param("id")

	var params dto.ComparisonParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	report, err := h.budgetService.CompareBudget(c.Request.Context(), budgetID, params.Period)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Budget not found"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to compare budget", slog.String("budget_id", budgetID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compare budget"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToBudgetReportResponse(report))
}

// listAlerts godoc
// @Summary List live budget alerts
// @Description Returns per-category and whole-budget alerts at or above the threshold
// @Tags budgets
// @Produce  json
// @Param   id path string true "Budget ID"
// @Param   threshold query number false "Minimum percent used (default 90)"
// @Success 200 {object} dto.ListBudgetAlertsResponse
// @Failure 400 {object} map[string]string "Invalid threshold"
// @Failure 404 {object} map[string]string "Budget not found"
// @Security BearerAuth
// @Router /finance/budgets/{id}/alerts [get]
func (h *budgetHandler) listAlerts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	budgetID := c.Param("id")

	var params dto.AlertsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	alerts, err := h.budgetService.ListAlerts(c.Request.Context(), budgetID, params.Threshold)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Budget not found"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to list budget alerts", slog.String("budget_id", budgetID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list budget alerts"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ListBudgetAlertsResponse{Alerts: dto.ToListBudgetAlertResponse(alerts)})
}

// listAllAlerts godoc
// @Summary List live alerts across all budgets
// @Description Returns per-category and whole-budget alerts at or above the threshold for every budget
// @Tags budgets
// @Produce  json
// @Param   threshold query number false "Minimum percent used (default 90)"
// @Success 200 {object} dto.ListBudgetAlertsResponse
// @Failure 400 {object} map[string]string "Invalid threshold"
// @Security BearerAuth
// @Router /finance/budgets/alerts [get]
func (h *budgetHandler) listAllAlerts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.AlertsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	alerts, err := h.budgetService.ListAllAlerts(c.Request.Context(), params.Threshold)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to list alerts across budgets", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list budget alerts"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ListBudgetAlertsResponse{Alerts: dto.ToListBudgetAlertResponse(alerts)})
}

// createAlertNotificationForBudget godoc
// @Summary Create a budget alert notification by body reference
// @Description Persists and publishes a notification for the budget named in the request body
// @Tags budgets
// @Accept  json
// @Produce  json
// @Param   notification body dto.CreateAlertNotificationRequest true "Notification target, budgetID required"
// @Success 201 {object} dto.AlertNotificationResponse
// @Failure 400 {object} map[string]string "Invalid input format or missing budgetID"
// @Failure 404 {object} map[string]string "Budget not found or no alert at the threshold"
// @Security BearerAuth
// @Router /finance/budgets/alerts [post]
func (h *budgetHandler) createAlertNotificationForBudget(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateAlertNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateAlertNotification", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	if req.BudgetID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "budgetID is required"})
		return
	}

	h.createNotification(c, req.BudgetID, req)
}

// createAlertNotification godoc
// @Summary Create a budget alert notification
// @Description Persists and publishes a notification for the current state of one budget line, or the whole budget when categoryName is empty
// @Tags budgets
// @Accept  json
// @Produce  json
// @Param   id path string true "Budget ID"
// @Param   notification body dto.CreateAlertNotificationRequest true "Notification target"
// @Success 201 {object} dto.AlertNotificationResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 404 {object} map[string]string "Budget not found or no alert at the threshold"
// @Security BearerAuth
// @Router /finance/budgets/{id}/notifications [post]
func (h *budgetHandler) createAlertNotification(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateAlertNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateAlertNotification", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	h.createNotification(c, c.Param("id"), req)
}

// createNotification is the shared tail of both notification routes once the
// target budget is known.
func (h *budgetHandler) createNotification(c *gin.Context, budgetID string, req dto.CreateAlertNotificationRequest) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	notification, err := h.budgetService.CreateAlertNotification(c.Request.Context(), budgetID, req, userID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to create alert notification", slog.String("budget_id", budgetID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create alert notification"})
		}
		return
	}

	logger.Info("Alert notification created", slog.String("notification_id", notification.NotificationID))
	middleware.PosthogEvent(c, h.posthogClient, "budget_alert_notification_created", map[string]any{
		"budget_id":    notification.BudgetID,
		"category":     notification.CategoryName,
		"severity":     string(notification.Severity),
		"percent_used": notification.PercentUsed.String(),
	})
	c.JSON(http.StatusCreated, dto.ToAlertNotificationResponse(notification))
}

// listAlertNotifications godoc
// @Summary List persisted alert notifications
// @Description Returns previously created notifications for a budget, newest first
// @Tags budgets
// @Produce  json
// @Param   id path string true "Budget ID"
// @Success 200 {array} dto.AlertNotificationResponse
// @Failure 404 {object} map[string]string "Budget not found"
// @Security BearerAuth
// @Router /finance/budgets/{id}/notifications [get]
func (h *budgetHandler) listAlertNotifications(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	budgetID := c.Param("id")

	notifications, err := h.budgetService.ListAlertNotifications(c.Request.Context(), budgetID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Budget not found"})
		} else {
			logger.Error("Failed to list alert notifications", slog.String("budget_id", budgetID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list alert notifications"})
		}
		return
	}

	responses := make([]dto.AlertNotificationResponse, 0, len(notifications))
	for i := range notifications {
		responses = append(responses, dto.ToAlertNotificationResponse(&notifications[i]))
	}
	c.JSON(http.StatusOK, responses)
}
