package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/karyabangun/bizadmin/internal/core/ports/services"
	"github.com/karyabangun/bizadmin/internal/dto"
	"github.com/karyabangun/bizadmin/internal/middleware"
)

// companyHandler handles HTTP requests related to companies and their members.
type companyHandler struct {
	companyService portssvc.CompanySvcFacade
}

func newCompanyHandler(cs portssvc.CompanySvcFacade) *companyHandler {
	return &companyHandler{companyService: cs}
}

// registerCompanyRoutes registers company routes and nests every
// company-scoped resource under /companies/:company_id.
func registerCompanyRoutes(rg *gin.RouterGroup, services *portssvc.ServiceContainer) {
	h := newCompanyHandler(services.Company)

	companies := rg.Group("/companies")
	{
		companies.POST("", h.createCompany)
		companies.GET("", h.listUserCompanies)
	}

	companySpecific := rg.Group("/companies/:company_id")
	{
		companySpecific.GET("", h.getCompany)
		companySpecific.POST("/members", h.addMember)
		companySpecific.GET("/members", h.listMembers)

		registerBillingCalculatorRoutes(companySpecific, services.Billing)
		registerProjectRoutes(companySpecific, services.Project)

		projectSpecific := companySpecific.Group("/projects/:project_id")
		registerBillingRoutes(projectSpecific, services.Billing)
		registerTransactionRoutes(projectSpecific, services.Transaction)
		registerCashRequestRoutes(projectSpecific, services.CashRequest)
	}
}

// createCompany godoc
// @Summary Create a company
// @Description Creates a company and makes the caller its admin.
// @Tags companies
// @Accept json
// @Produce json
// @Param company body dto.CreateCompanyRequest true "Company details"
// @Success 201 {object} dto.APIResponse{data=dto.CompanyResponse}
// @Failure 400 {object} dto.APIResponse
// @Failure 401 {object} dto.APIResponse
// @Failure 500 {object} dto.APIResponse
// @Security BearerAuth
// @Router /companies [post]
func (h *companyHandler) createCompany(c *gin.Context) {
	var req dto.CreateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	company, err := h.companyService.CreateCompany(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, err, "Failed to create company")
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Company created", slog.String("company_id", company.CompanyID))
	respondOK(c, http.StatusCreated, "Company created", dto.ToCompanyResponse(company))
}

// listUserCompanies godoc
// @Summary List my companies
// @Tags companies
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.ListCompaniesResponse}
// @Failure 401 {object} dto.APIResponse
// @Security BearerAuth
// @Router /companies [get]
func (h *companyHandler) listUserCompanies(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	companies, err := h.companyService.ListUserCompanies(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "Failed to list companies")
		return
	}
	respondOK(c, http.StatusOK, "Companies retrieved", dto.ToListCompaniesResponse(companies))
}

// getCompany godoc
// @Summary Get a company
// @Tags companies
// @Produce json
// @Param company_id path string true "Company ID"
// @Success 200 {object} dto.APIResponse{data=dto.CompanyResponse}
// @Failure 404 {object} dto.APIResponse
// @Security BearerAuth
// @Router /companies/{company_id} [get]
func (h *companyHandler) getCompany(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	company, err := h.companyService.GetCompanyByID(c.Request.Context(), c.Param("company_id"), userID)
	if err != nil {
		respondError(c, err, "Failed to get company")
		return
	}
	respondOK(c, http.StatusOK, "Company retrieved", dto.ToCompanyResponse(company))
}

// addMember godoc
// @Summary Add a member
// @Description Adds a user to the company or changes their role. Requires ADMIN.
// @Tags companies
// @Accept json
// @Produce json
// @Param company_id path string true "Company ID"
// @Param member body dto.AddCompanyMemberRequest true "Member"
// @Success 201 {object} dto.APIResponse{data=domain.CompanyMember}
// @Failure 400 {object} dto.APIResponse
// @Failure 403 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse
// @Security BearerAuth
// @Router /companies/{company_id}/members [post]
func (h *companyHandler) addMember(c *gin.Context) {
	var req dto.AddCompanyMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	member, err := h.companyService.AddUserToCompany(c.Request.Context(), userID, c.Param("company_id"), req)
	if err != nil {
		respondError(c, err, "Failed to add member")
		return
	}
	respondOK(c, http.StatusCreated, "Member added", member)
}

// listMembers godoc
// @Summary List members
// @Tags companies
// @Produce json
// @Param company_id path string true "Company ID"
// @Success 200 {object} dto.APIResponse{data=dto.ListCompanyMembersResponse}
// @Failure 404 {object} dto.APIResponse
// @Security BearerAuth
// @Router /companies/{company_id}/members [get]
func (h *companyHandler) listMembers(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	members, err := h.companyService.ListCompanyMembers(c.Request.Context(), c.Param("company_id"), userID)
	if err != nil {
		respondError(c, err, "Failed to list members")
		return
	}
	respondOK(c, http.StatusOK, "Members retrieved", dto.ListCompanyMembersResponse{Members: members})
}
