package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/karyabangun/bizadmin/internal/core/ports/services"
	"github.com/karyabangun/bizadmin/internal/dto"
)

type transactionHandler struct {
	transactionService portssvc.TransactionSvcFacade
}

func newTransactionHandler(ts portssvc.TransactionSvcFacade) *transactionHandler {
	return &transactionHandler{transactionService: ts}
}

func registerTransactionRoutes(projectGroup *gin.RouterGroup, transactionService portssvc.TransactionSvcFacade) {
	h := newTransactionHandler(transactionService)

	transactions := projectGroup.Group("/transactions")
	{
		transactions.POST("", h.createTransaction)
		transactions.GET("", h.listTransactions)
		transactions.GET("/:transaction_id", h.getTransaction)
		transactions.PUT("/:transaction_id", h.updateTransaction)
		transactions.DELETE("/:transaction_id", h.deleteTransaction)
	}
}

// createTransaction godoc
// @Summary Record a cash transaction
// @Tags transactions
// @Accept json
// @Produce json
// @Param company_id path string true "Company ID"
// @Param project_id path string true "Project ID"
// @Param transaction body dto.CreateTransactionRequest true "Transaction details"
// @Success 201 {object} dto.APIResponse{data=domain.Transaction}
// @Failure 400 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse
// @Security BearerAuth
// @Router /companies/{company_id}/projects/{project_id}/transactions [post]
func (h *transactionHandler) createTransaction(c *gin.Context) {
	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	txn, err := h.transactionService.CreateTransaction(c.Request.Context(), c.Param("company_id"), c.Param("project_id"), req, userID)
	if err != nil {
		respondError(c, err, "Failed to create transaction")
		return
	}
	respondOK(c, http.StatusCreated, "Transaction created", txn)
}

// listTransactions godoc
// @Summary List cash transactions of a project
// @Tags transactions
// @Produce json
// @Param company_id path string true "Company ID"
// @Param project_id path string true "Project ID"
// @Param limit query int false "Page size" default(20)
// @Param nextToken query string false "Cursor from the previous page"
// @Param type query string false "PEMASUKAN or PENGELUARAN"
// @Param category query string false "Transaction category"
// @Param from query string false "First day, YYYY-MM-DD"
// @Param to query string false "Last day, YYYY-MM-DD"
// @Success 200 {object} dto.APIResponse{data=dto.ListTransactionsResponse}
// @Failure 400 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse
// @Security BearerAuth
// @Router /companies/{company_id}/projects/{project_id}/transactions [get]
func (h *transactionHandler) listTransactions(c *gin.Context) {
	var params dto.ListTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	resp, err := h.transactionService.ListTransactions(c.Request.Context(), c.Param("company_id"), c.Param("project_id"), userID, params)
	if err != nil {
		respondError(c, err, "Failed to list transactions")
		return
	}
	respondOK(c, http.StatusOK, "Transactions retrieved", resp)
}

// getTransaction godoc
// @Summary Get a cash transaction
// @Tags transactions
// @Produce json
// @Param company_id path string true "Company ID"
// @Param project_id path string true "Project ID"
// @Param transaction_id path string true "Transaction ID"
// @Success 200 {object} dto.APIResponse{data=domain.Transaction}
// @Failure 404 {object} dto.APIResponse
// @Security BearerAuth
// @Router /companies/{company_id}/projects/{project_id}/transactions/{transaction_id} [get]
func (h *transactionHandler) getTransaction(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	txn, err := h.transactionService.GetTransaction(c.Request.Context(), c.Param("company_id"), c.Param("project_id"), c.Param("transaction_id"), userID)
	if err != nil {
		respondError(c, err, "Failed to get transaction")
		return
	}
	respondOK(c, http.StatusOK, "Transaction retrieved", txn)
}

// updateTransaction godoc
// @Summary Update a cash transaction
// @Tags transactions
// @Accept json
// @Produce json
// @Param company_id path string true "Company ID"
// @Param project_id path string true "Project ID"
// @Param transaction_id path string true "Transaction ID"
// @Param transaction body dto.UpdateTransactionRequest true "Fields to change"
// @Success 200 {object} dto.APIResponse{data=domain.Transaction}
// @Failure 400 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse
// @Security BearerAuth
// @Router /companies/{company_id}/projects/{project_id}/transactions/{transaction_id} [put]
func (h *transactionHandler) updateTransaction(c *gin.Context) {
	var req dto.UpdateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	txn, err := h.transactionService.UpdateTransaction(c.Request.Context(), c.Param("company_id"), c.Param("project_id"), c.Param("transaction_id"), req, userID)
	if err != nil {
		respondError(c, err, "Failed to update transaction")
		return
	}
	respondOK(c, http.StatusOK, "Transaction updated", txn)
}

// deleteTransaction godoc
// @Summary Delete a cash transaction
// @Tags transactions
// @Produce json
// @Param company_id path string true "Company ID"
// @Param project_id path string true "Project ID"
// @Param transaction_id path string true "Transaction ID"
// @Success 200 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse
// @Security BearerAuth
// @Router /companies/{company_id}/projects/{project_id}/transactions/{transaction_id} [delete]
func (h *transactionHandler) deleteTransaction(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	if err := h.transactionService.DeleteTransaction(c.Request.Context(), c.Param("company_id"), c.Param("project_id"), c.Param("transaction_id"), userID); err != nil {
		respondError(c, err, "Failed to delete transaction")
		return
	}
	respondOK(c, http.StatusOK, "Transaction deleted", nil)
}
