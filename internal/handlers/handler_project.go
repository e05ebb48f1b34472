package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/karyabangun/bizadmin/internal/core/ports/services"
	"github.com/karyabangun/bizadmin/internal/dto"
)

type projectHandler struct {
	projectService portssvc.ProjectSvcFacade
}

func newProjectHandler(ps portssvc.ProjectSvcFacade) *projectHandler {
	return &projectHandler{projectService: ps}
}

func registerProjectRoutes(companyGroup *gin.RouterGroup, projectService portssvc.ProjectSvcFacade) {
	h := newProjectHandler(projectService)

	projects := companyGroup.Group("/projects")
	{
		projects.POST("", h.createProject)
		projects.GET("", h.listProjects)
		projects.GET("/:project_id", h.getProject)
		projects.PUT("/:project_id", h.updateProject)
		projects.DELETE("/:project_id", h.deleteProject)
		projects.GET("/:project_id/summary", h.getProjectSummary)
	}
}

// createProject godoc
// @Summary Create a project
// @Tags projects
// @Accept json
// @Produce json
// @Param company_id path string true "Company ID"
// @Param project body dto.CreateProjectRequest true "Project details"
// @Success 201 {object} dto.APIResponse{data=domain.Project}
// @Failure 400 {object} dto.APIResponse
// @Failure 403 {object} dto.APIResponse
// @Failure 409 {object} dto.APIResponse "Project code already used"
// @Security BearerAuth
// @Router /companies/{company_id}/projects [post]
func (h *projectHandler) createProject(c *gin.Context) {
	var req dto.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	project, err := h.projectService.CreateProject(c.Request.Context(), c.Param("company_id"), req, userID)
	if err != nil {
		respondError(c, err, "Failed to create project")
		return
	}
	respondOK(c, http.StatusCreated, "Project created", project)
}

// listProjects godoc
// @Summary List projects
// @Tags projects
// @Produce json
// @Param company_id path string true "Company ID"
// @Param limit query int false "Page size" default(20)
// @Param nextToken query string false "Cursor from the previous page"
// @Param status query string false "Project status"
// @Success 200 {object} dto.APIResponse{data=dto.ListProjectsResponse}
// @Failure 400 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse
// @Security BearerAuth
// @Router /companies/{company_id}/projects [get]
func (h *projectHandler) listProjects(c *gin.Context) {
	var params dto.ListProjectsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	resp, err := h.projectService.ListProjects(c.Request.Context(), c.Param("company_id"), userID, params)
	if err != nil {
		respondError(c, err, "Failed to list projects")
		return
	}
	respondOK(c, http.StatusOK, "Projects retrieved", resp)
}

// getProject godoc
// @Summary Get a project
// @Tags projects
// @Produce json
// @Param company_id path string true "Company ID"
// @Param project_id path string true "Project ID"
// @Success 200 {object} dto.APIResponse{data=domain.Project}
// @Failure 404 {object} dto.APIResponse
// @Security BearerAuth
// @Router /companies/{company_id}/projects/{project_id} [get]
func (h *projectHandler) getProject(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	project, err := h.projectService.GetProject(c.Request.Context(), c.Param("company_id"), c.Param("project_id"), userID)
	if err != nil {
		respondError(c, err, "Failed to get project")
		return
	}
	respondOK(c, http.StatusOK, "Project retrieved", project)
}

// updateProject godoc
// @Summary Update a project
// @Description Updates the given fields; omitted fields keep their value.
// @Tags projects
// @Accept json
// @Produce json
// @Param company_id path string true "Company ID"
// @Param project_id path string true "Project ID"
// @Param project body dto.UpdateProjectRequest true "Fields to change"
// @Success 200 {object} dto.APIResponse{data=domain.Project}
// @Failure 400 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse
// @Security BearerAuth
// @Router /companies/{company_id}/projects/{project_id} [put]
func (h *projectHandler) updateProject(c *gin.Context) {
	var req dto.UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	project, err := h.projectService.UpdateProject(c.Request.Context(), c.Param("company_id"), c.Param("project_id"), req, userID)
	if err != nil {
		respondError(c, err, "Failed to update project")
		return
	}
	respondOK(c, http.StatusOK, "Project updated", project)
}

// deleteProject godoc
// @Summary Delete a project
// @Description Deletes the project with its billings, transactions and cash requests. Requires ADMIN.
// @Tags projects
// @Produce json
// @Param company_id path string true "Company ID"
// @Param project_id path string true "Project ID"
// @Success 200 {object} dto.APIResponse
// @Failure 403 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse
// @Security BearerAuth
// @Router /companies/{company_id}/projects/{project_id} [delete]
func (h *projectHandler) deleteProject(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	if err := h.projectService.DeleteProject(c.Request.Context(), c.Param("company_id"), c.Param("project_id"), userID); err != nil {
		respondError(c, err, "Failed to delete project")
		return
	}
	respondOK(c, http.StatusOK, "Project deleted", nil)
}

// getProjectSummary godoc
// @Summary Project financial summary
// @Description Totals of billings, cash movements and pending cash requests for one project.
// @Tags projects
// @Produce json
// @Param company_id path string true "Company ID"
// @Param project_id path string true "Project ID"
// @Success 200 {object} dto.APIResponse{data=domain.ProjectSummary}
// @Failure 404 {object} dto.APIResponse
// @Security BearerAuth
// @Router /companies/{company_id}/projects/{project_id}/summary [get]
func (h *projectHandler) getProjectSummary(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	summary, err := h.projectService.GetProjectSummary(c.Request.Context(), c.Param("company_id"), c.Param("project_id"), userID)
	if err != nil {
		respondError(c, err, "Failed to build project summary")
		return
	}
	respondOK(c, http.StatusOK, "Project summary retrieved", summary)
}
