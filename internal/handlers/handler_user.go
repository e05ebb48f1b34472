package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/karyabangun/bizadmin/internal/core/domain"
	portssvc "github.com/karyabangun/bizadmin/internal/core/ports/services"
	"github.com/karyabangun/bizadmin/internal/dto"
)

type userHandler struct {
	userService portssvc.UserSvcFacade
}

func newUserHandler(us portssvc.UserSvcFacade) *userHandler {
	return &userHandler{userService: us}
}

func registerUserRoutes(rg *gin.RouterGroup, userService portssvc.UserSvcFacade) {
	h := newUserHandler(userService)
	rg.GET("/users/me", h.getMe)
	rg.GET("/options", getOptions)
}

// getMe godoc
// @Summary Current user
// @Description Returns the profile of the authenticated user.
// @Tags users
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.UserResponse}
// @Failure 401 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse
// @Security BearerAuth
// @Router /users/me [get]
func (h *userHandler) getMe(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	user, err := h.userService.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "Failed to get user")
		return
	}
	respondOK(c, http.StatusOK, "User retrieved", dto.ToUserResponse(user))
}

// getOptions godoc
// @Summary Lookup tables
// @Description Returns the value/label pairs for every enumerated field, in display order.
// @Tags options
// @Produce json
// @Success 200 {object} dto.APIResponse{data=domain.Options}
// @Security BearerAuth
// @Router /options [get]
func getOptions(c *gin.Context) {
	respondOK(c, http.StatusOK, "Options retrieved", domain.AllOptions())
}
