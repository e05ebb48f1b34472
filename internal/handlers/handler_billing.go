package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/karyabangun/bizadmin/internal/core/ports/services"
	"github.com/karyabangun/bizadmin/internal/dto"
	"github.com/karyabangun/bizadmin/internal/middleware"
)

type billingHandler struct {
	billingService portssvc.BillingSvcFacade
}

func newBillingHandler(bs portssvc.BillingSvcFacade) *billingHandler {
	return &billingHandler{billingService: bs}
}

// registerBillingCalculatorRoutes exposes the preview, which needs no project.
func registerBillingCalculatorRoutes(companyGroup *gin.RouterGroup, billingService portssvc.BillingSvcFacade) {
	h := newBillingHandler(billingService)
	companyGroup.POST("/billings/calculate", h.calculateBilling)
}

func registerBillingRoutes(projectGroup *gin.RouterGroup, billingService portssvc.BillingSvcFacade) {
	h := newBillingHandler(billingService)

	billings := projectGroup.Group("/billings")
	{
		billings.POST("", h.createBilling)
		billings.GET("", h.listBillings)
		billings.GET("/:billing_id", h.getBilling)
		billings.PUT("/:billing_id", h.updateBilling)
		billings.DELETE("/:billing_id", h.deleteBilling)
		billings.PATCH("/:billing_id/status", h.updateBillingStatus)
	}
}

// calculateBilling godoc
// @Summary Preview billing amounts
// @Description Computes retention, DPP, PPN, PPh and the net receivable without saving anything.
// @Tags billings
// @Accept json
// @Produce json
// @Param company_id path string true "Company ID"
// @Param input body dto.CalculateBillingRequest true "Billing value and down payment deduction"
// @Success 200 {object} dto.APIResponse{data=domain.BillingAmounts}
// @Failure 400 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse
// @Security BearerAuth
// @Router /companies/{company_id}/billings/calculate [post]
func (h *billingHandler) calculateBilling(c *gin.Context) {
	var req dto.CalculateBillingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	amounts, err := h.billingService.CalculateBilling(c.Request.Context(), c.Param("company_id"), userID, req.BillingValue, req.DownPaymentDeduction)
	if err != nil {
		respondError(c, err, "Failed to calculate billing")
		return
	}
	respondOK(c, http.StatusOK, "Billing calculated", amounts)
}

// createBilling godoc
// @Summary Create a billing
// @Description Issues a billing. Derived amounts are computed server side and the status starts as BELUM_DIBAYAR.
// @Tags billings
// @Accept json
// @Produce json
// @Param company_id path string true "Company ID"
// @Param project_id path string true "Project ID"
// @Param billing body dto.CreateBillingRequest true "Billing details"
// @Success 201 {object} dto.APIResponse{data=dto.BillingResponse}
// @Failure 400 {object} dto.APIResponse
// @Failure 409 {object} dto.APIResponse "Invoice number already used"
// @Security BearerAuth
// @Router /companies/{company_id}/projects/{project_id}/billings [post]
func (h *billingHandler) createBilling(c *gin.Context) {
	var req dto.CreateBillingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	billing, err := h.billingService.CreateBilling(c.Request.Context(), c.Param("company_id"), c.Param("project_id"), req, userID)
	if err != nil {
		respondError(c, err, "Failed to create billing")
		return
	}
	respondOK(c, http.StatusCreated, "Billing created", dto.ToBillingResponse(billing))
}

// listBillings godoc
// @Summary List billings of a project
// @Tags billings
// @Produce json
// @Param company_id path string true "Company ID"
// @Param project_id path string true "Project ID"
// @Success 200 {object} dto.APIResponse{data=dto.ListBillingsResponse}
// @Failure 404 {object} dto.APIResponse
// @Security BearerAuth
// @Router /companies/{company_id}/projects/{project_id}/billings [get]
func (h *billingHandler) listBillings(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	billings, err := h.billingService.ListBillings(c.Request.Context(), c.Param("company_id"), c.Param("project_id"), userID)
	if err != nil {
		respondError(c, err, "Failed to list billings")
		return
	}
	respondOK(c, http.StatusOK, "Billings retrieved", dto.ToListBillingsResponse(billings))
}

// getBilling godoc
// @Summary Get a billing
// @Tags billings
// @Produce json
// @Param company_id path string true "Company ID"
// @Param project_id path string true "Project ID"
// @Param billing_id path string true "Billing ID"
// @Success 200 {object} dto.APIResponse{data=dto.BillingResponse}
// @Failure 404 {object} dto.APIResponse
// @Security BearerAuth
// @Router /companies/{company_id}/projects/{project_id}/billings/{billing_id} [get]
func (h *billingHandler) getBilling(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	billing, err := h.billingService.GetBilling(c.Request.Context(), c.Param("company_id"), c.Param("project_id"), c.Param("billing_id"), userID)
	if err != nil {
		respondError(c, err, "Failed to get billing")
		return
	}
	respondOK(c, http.StatusOK, "Billing retrieved", dto.ToBillingResponse(billing))
}

// updateBilling godoc
// @Summary Update a billing
// @Description Changes invoice details or amounts. Amounts are recalculated.
// @Tags billings
// @Accept json
// @Produce json
// @Param company_id path string true "Company ID"
// @Param project_id path string true "Project ID"
// @Param billing_id path string true "Billing ID"
// @Param billing body dto.UpdateBillingRequest true "Fields to change"
// @Success 200 {object} dto.APIResponse{data=dto.BillingResponse}
// @Failure 400 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse
// @Security BearerAuth
// @Router /companies/{company_id}/projects/{project_id}/billings/{billing_id} [put]
func (h *billingHandler) updateBilling(c *gin.Context) {
	var req dto.UpdateBillingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	billing, err := h.billingService.UpdateBilling(c.Request.Context(), c.Param("company_id"), c.Param("project_id"), c.Param("billing_id"), req, userID)
	if err != nil {
		respondError(c, err, "Failed to update billing")
		return
	}
	respondOK(c, http.StatusOK, "Billing updated", dto.ToBillingResponse(billing))
}

// deleteBilling godoc
// @Summary Delete a billing
// @Tags billings
// @Produce json
// @Param company_id path string true "Company ID"
// @Param project_id path string true "Project ID"
// @Param billing_id path string true "Billing ID"
// @Success 200 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse
// @Security BearerAuth
// @Router /companies/{company_id}/projects/{project_id}/billings/{billing_id} [delete]
func (h *billingHandler) deleteBilling(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	if err := h.billingService.DeleteBilling(c.Request.Context(), c.Param("company_id"), c.Param("project_id"), c.Param("billing_id"), userID); err != nil {
		respondError(c, err, "Failed to delete billing")
		return
	}
	respondOK(c, http.StatusOK, "Billing deleted", nil)
}

// updateBillingStatus godoc
// @Summary Change billing payment status
// @Description Moves a billing between BELUM_DIBAYAR, DIBAYAR_RETENSI_BELUM_DIBAYARKAN and DIBAYAR. Every move is applied; broken soft rules come back as warnings.
// @Tags billings
// @Accept json
// @Produce json
// @Param company_id path string true "Company ID"
// @Param project_id path string true "Project ID"
// @Param billing_id path string true "Billing ID"
// @Param status body dto.UpdateBillingStatusRequest true "Target status"
// @Success 200 {object} dto.APIResponse{data=dto.BillingStatusResponse}
// @Failure 400 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse
// @Security BearerAuth
// @Router /companies/{company_id}/projects/{project_id}/billings/{billing_id}/status [patch]
func (h *billingHandler) updateBillingStatus(c *gin.Context) {
	var req dto.UpdateBillingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	billing, decision, err := h.billingService.UpdateBillingStatus(c.Request.Context(), c.Param("company_id"), c.Param("project_id"), c.Param("billing_id"), req, userID)
	if err != nil {
		respondError(c, err, "Failed to update billing status")
		return
	}

	message := "Billing status updated"
	warnings := []string{}
	if decision != nil && decision.HasWarnings() {
		warnings = decision.Warnings
		message = "Billing status updated with warnings"
		middleware.GetLoggerFromCtx(c.Request.Context()).Warn("Billing status changed against a soft rule",
			slog.String("billing_id", billing.BillingID),
			slog.Any("warnings", warnings),
		)
	}
	respondOK(c, http.StatusOK, message, dto.BillingStatusResponse{
		Billing:  dto.ToBillingResponse(billing),
		Warnings: warnings,
	})
}
