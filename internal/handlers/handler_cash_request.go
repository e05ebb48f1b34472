package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/karyabangun/bizadmin/internal/core/ports/services"
	"github.com/karyabangun/bizadmin/internal/dto"
	"github.com/karyabangun/bizadmin/internal/middleware"
)

type cashRequestHandler struct {
	cashRequestService portssvc.CashRequestSvcFacade
}

func newCashRequestHandler(cs portssvc.CashRequestSvcFacade) *cashRequestHandler {
	return &cashRequestHandler{cashRequestService: cs}
}

func registerCashRequestRoutes(projectGroup *gin.RouterGroup, cashRequestService portssvc.CashRequestSvcFacade) {
	h := newCashRequestHandler(cashRequestService)

	requests := projectGroup.Group("/cash-requests")
	{
		requests.POST("", h.createCashRequest)
		requests.GET("", h.listCashRequests)
		requests.GET("/:cash_request_id", h.getCashRequest)
		requests.PUT("/:cash_request_id", h.updateCashRequest)
		requests.DELETE("/:cash_request_id", h.deleteCashRequest)
		requests.PATCH("/:cash_request_id/status", h.decideCashRequest)
	}
}

// createCashRequest godoc
// @Summary Submit a cash request
// @Description The total must match the sum of item totals within the configured tolerance.
// @Tags cash-requests
// @Accept json
// @Produce json
// @Param company_id path string true "Company ID"
// @Param project_id path string true "Project ID"
// @Param request body dto.CreateCashRequestRequest true "Request with items"
// @Success 201 {object} dto.APIResponse{data=domain.CashRequest}
// @Failure 400 {object} dto.APIResponse{data=dto.MismatchResponse} "Validation failed or totals do not match"
// @Failure 404 {object} dto.APIResponse
// @Security BearerAuth
// @Router /companies/{company_id}/projects/{project_id}/cash-requests [post]
func (h *cashRequestHandler) createCashRequest(c *gin.Context) {
	var req dto.CreateCashRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	cr, err := h.cashRequestService.CreateCashRequest(c.Request.Context(), c.Param("company_id"), c.Param("project_id"), req, userID)
	if err != nil {
		respondError(c, err, "Failed to create cash request")
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Cash request submitted",
		slog.String("cash_request_id", cr.CashRequestID),
		slog.String("request_number", cr.RequestNumber),
	)
	respondOK(c, http.StatusCreated, "Cash request created", cr)
}

// listCashRequests godoc
// @Summary List cash requests of a project
// @Tags cash-requests
// @Produce json
// @Param company_id path string true "Company ID"
// @Param project_id path string true "Project ID"
// @Param limit query int false "Page size" default(20)
// @Param nextToken query string false "Cursor from the previous page"
// @Param status query string false "PENDING, APPROVED or REJECTED"
// @Success 200 {object} dto.APIResponse{data=dto.ListCashRequestsResponse}
// @Failure 400 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse
// @Security BearerAuth
// @Router /companies/{company_id}/projects/{project_id}/cash-requests [get]
func (h *cashRequestHandler) listCashRequests(c *gin.Context) {
	var params dto.ListCashRequestsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	resp, err := h.cashRequestService.ListCashRequests(c.Request.Context(), c.Param("company_id"), c.Param("project_id"), userID, params)
	if err != nil {
		respondError(c, err, "Failed to list cash requests")
		return
	}
	respondOK(c, http.StatusOK, "Cash requests retrieved", resp)
}

// getCashRequest godoc
// @Summary Get a cash request
// @Description Returns the request with its items and history.
// @Tags cash-requests
// @Produce json
// @Param company_id path string true "Company ID"
// @Param project_id path string true "Project ID"
// @Param cash_request_id path string true "Cash request ID"
// @Success 200 {object} dto.APIResponse{data=domain.CashRequest}
// @Failure 404 {object} dto.APIResponse
// @Security BearerAuth
// @Router /companies/{company_id}/projects/{project_id}/cash-requests/{cash_request_id} [get]
func (h *cashRequestHandler) getCashRequest(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	cr, err := h.cashRequestService.GetCashRequest(c.Request.Context(), c.Param("company_id"), c.Param("project_id"), c.Param("cash_request_id"), userID)
	if err != nil {
		respondError(c, err, "Failed to get cash request")
		return
	}
	respondOK(c, http.StatusOK, "Cash request retrieved", cr)
}

// updateCashRequest godoc
// @Summary Replace the items of a pending cash request
// @Tags cash-requests
// @Accept json
// @Produce json
// @Param company_id path string true "Company ID"
// @Param project_id path string true "Project ID"
// @Param cash_request_id path string true "Cash request ID"
// @Param request body dto.UpdateCashRequestRequest true "New description, total and items"
// @Success 200 {object} dto.APIResponse{data=domain.CashRequest}
// @Failure 400 {object} dto.APIResponse{data=dto.MismatchResponse}
// @Failure 403 {object} dto.APIResponse "Request is no longer pending"
// @Failure 404 {object} dto.APIResponse
// @Security BearerAuth
// @Router /companies/{company_id}/projects/{project_id}/cash-requests/{cash_request_id} [put]
func (h *cashRequestHandler) updateCashRequest(c *gin.Context) {
	var req dto.UpdateCashRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	cr, err := h.cashRequestService.UpdateCashRequest(c.Request.Context(), c.Param("company_id"), c.Param("project_id"), c.Param("cash_request_id"), req, userID)
	if err != nil {
		respondError(c, err, "Failed to update cash request")
		return
	}
	respondOK(c, http.StatusOK, "Cash request updated", cr)
}

// deleteCashRequest godoc
// @Summary Delete a pending cash request
// @Description Allowed for the requester or a company admin while the request is pending.
// @Tags cash-requests
// @Produce json
// @Param company_id path string true "Company ID"
// @Param project_id path string true "Project ID"
// @Param cash_request_id path string true "Cash request ID"
// @Success 200 {object} dto.APIResponse
// @Failure 403 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse
// @Security BearerAuth
// @Router /companies/{company_id}/projects/{project_id}/cash-requests/{cash_request_id} [delete]
func (h *cashRequestHandler) deleteCashRequest(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	if err := h.cashRequestService.DeleteCashRequest(c.Request.Context(), c.Param("company_id"), c.Param("project_id"), c.Param("cash_request_id"), userID); err != nil {
		respondError(c, err, "Failed to delete cash request")
		return
	}
	respondOK(c, http.StatusOK, "Cash request deleted", nil)
}

// decideCashRequest godoc
// @Summary Approve or reject a cash request
// @Description The requester cannot decide their own request, and a decided request cannot be decided again.
// @Tags cash-requests
// @Accept json
// @Produce json
// @Param company_id path string true "Company ID"
// @Param project_id path string true "Project ID"
// @Param cash_request_id path string true "Cash request ID"
// @Param decision body dto.DecideCashRequestRequest true "APPROVED or REJECTED"
// @Success 200 {object} dto.APIResponse{data=domain.CashRequest}
// @Failure 400 {object} dto.APIResponse
// @Failure 403 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse
// @Security BearerAuth
// @Router /companies/{company_id}/projects/{project_id}/cash-requests/{cash_request_id}/status [patch]
func (h *cashRequestHandler) decideCashRequest(c *gin.Context) {
	var req dto.DecideCashRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	cr, err := h.cashRequestService.DecideCashRequest(c.Request.Context(), c.Param("company_id"), c.Param("project_id"), c.Param("cash_request_id"), req, userID)
	if err != nil {
		respondError(c, err, "Failed to decide cash request")
		return
	}
	respondOK(c, http.StatusOK, "Cash request "+string(cr.Status), cr)
}
