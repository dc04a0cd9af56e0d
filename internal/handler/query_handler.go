package handler

import (
	"context"
	"net/http"

	"backend/internal/model"
	"backend/internal/service"
	"backend/pkg/response"

	"github.com/gin-gonic/gin"
)

// QueryHandler exposes the read-only lookups and the grouped listings.
type QueryHandler struct {
	queryService service.QueryService
}

func NewQueryHandler(queryService service.QueryService) *QueryHandler {
	return &QueryHandler{queryService: queryService}
}

func (h *QueryHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/subjects/:class", h.GetSubjects)
	router.GET("/get-approved-user/:email", h.GetApprovedUser)
	router.GET("/user/:email", h.GetApprovedUser)
	router.GET("/students-request", h.listByClass(model.RoleStudent, h.queryService.PendingByClass))
	router.GET("/instructors-request", h.listByClass(model.RoleInstructor, h.queryService.PendingByClass))
	router.GET("/approved-students", h.listByClass(model.RoleStudent, h.queryService.ApprovedByClass))
	router.GET("/approved-instructors", h.listByClass(model.RoleInstructor, h.queryService.ApprovedByClass))
	router.GET("/rejected-students", h.listByClass(model.RoleStudent, h.queryService.RejectedByClass))
	router.GET("/rejected-instructors", h.listByClass(model.RoleInstructor, h.queryService.RejectedByClass))
}

// GetSubjects looks up the subject list for a class
// @Summary      Get subjects by class
// @Tags         queries
// @Produce      json
// @Param        class  path  string  true  "Class Name"
// @Success      200  {object}  response.Response{data=model.Subject}
// @Failure      404  {object}  response.Response
// @Router       /subjects/{class} [get]
func (h *QueryHandler) GetSubjects(c *gin.Context) {
	subject, err := h.queryService.SubjectByClass(c.Request.Context(), c.Param("class"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, subject))
}

// GetApprovedUser looks up an approved user by email
// @Summary      Get approved user by email
// @Tags         queries
// @Produce      json
// @Param        email  path  string  true  "Email"
// @Success      200  {object}  response.Response{data=model.Request}
// @Failure      404  {object}  response.Response
// @Router       /get-approved-user/{email} [get]
func (h *QueryHandler) GetApprovedUser(c *gin.Context) {
	user, err := h.queryService.ApprovedUserByEmail(c.Request.Context(), c.Param("email"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, user))
}

// listByClass adapts one of the grouped listing service calls into a
// handler. Empty collections serialize as {} rather than null.
func (h *QueryHandler) listByClass(role model.Role, list func(ctx context.Context, role model.Role) (map[string][]model.Request, error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		grouped, err := list(c.Request.Context(), role)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, response.Success(http.StatusOK, grouped))
	}
}
