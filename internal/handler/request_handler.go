package handler

import (
	"net/http"

	"backend/internal/model"
	"backend/internal/service"
	"backend/pkg/response"

	"github.com/gin-gonic/gin"
)

// RequestHandler exposes the request lifecycle: submission, approval,
// rejection and permanent deletion of terminal records.
type RequestHandler struct {
	lifecycleService service.LifecycleService
}

func NewRequestHandler(lifecycleService service.LifecycleService) *RequestHandler {
	return &RequestHandler{lifecycleService: lifecycleService}
}

func (h *RequestHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/store-student-request", h.StoreStudentRequest)
	router.POST("/store-instructor-request", h.StoreInstructorRequest)
	router.POST("/store-approved-student/:id", h.ApproveStudent)
	router.POST("/store-approved-instructor", h.ApproveInstructor)
	router.DELETE("/reject-student-request/:id", h.RejectStudent)
	router.DELETE("/delete-instructor-request/:id", h.RejectInstructor)
	router.DELETE("/delete-rejected-student/:id", h.DeleteRejectedStudent)
	router.DELETE("/delete-approved-student/:email", h.DeleteApprovedStudent)
}

// StoreStudentRequest stores a pending student sign-up request
// @Summary      Submit student request
// @Description  Stores a pending student sign-up request
// @Tags         requests
// @Accept       json
// @Produce      json
// @Param        payload  body      service.SubmitRequestDTO  true  "Student Request"
// @Success      201      {object}  response.Response{data=model.Request}
// @Failure      400      {object}  response.Response
// @Router       /store-student-request [post]
func (h *RequestHandler) StoreStudentRequest(c *gin.Context) {
	h.submit(c, model.RoleStudent)
}

// StoreInstructorRequest stores a pending instructor sign-up request
// @Summary      Submit instructor request
// @Description  Stores a pending instructor sign-up request
// @Tags         requests
// @Accept       json
// @Produce      json
// @Param        payload  body      service.SubmitRequestDTO  true  "Instructor Request"
// @Success      201      {object}  response.Response{data=model.Request}
// @Failure      400      {object}  response.Response
// @Router       /store-instructor-request [post]
func (h *RequestHandler) StoreInstructorRequest(c *gin.Context) {
	h.submit(c, model.RoleInstructor)
}

func (h *RequestHandler) submit(c *gin.Context, role model.Role) {
	var dto service.SubmitRequestDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	req, err := h.lifecycleService.Submit(c.Request.Context(), role, dto)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, req))
}

// ApproveStudent moves a pending student request into the approved
// collection and the approved-user lookup.
// @Summary      Approve student request
// @Tags         requests
// @Produce      json
// @Param        id  path  string  true  "Pending Request ID"
// @Success      200  {object}  response.Response{data=model.Request}
// @Failure      404  {object}  response.Response
// @Router       /store-approved-student/{id} [post]
func (h *RequestHandler) ApproveStudent(c *gin.Context) {
	req, err := h.lifecycleService.Approve(c.Request.Context(), model.RoleStudent, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, req))
}

// ApproveInstructor approves a pending instructor request; the request id
// arrives in the body.
func (h *RequestHandler) ApproveInstructor(c *gin.Context) {
	var dto service.ApproveInstructorDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	req, err := h.lifecycleService.Approve(c.Request.Context(), model.RoleInstructor, dto.RequestID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, req))
}

// RejectStudent moves a pending student request into the rejected collection.
func (h *RequestHandler) RejectStudent(c *gin.Context) {
	req, err := h.lifecycleService.Reject(c.Request.Context(), model.RoleStudent, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, req))
}

// RejectInstructor moves a pending instructor request into the rejected collection.
func (h *RequestHandler) RejectInstructor(c *gin.Context) {
	req, err := h.lifecycleService.Reject(c.Request.Context(), model.RoleInstructor, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, req))
}

// DeleteRejectedStudent permanently removes a rejected student record.
func (h *RequestHandler) DeleteRejectedStudent(c *gin.Context) {
	if err := h.lifecycleService.DeleteRejected(c.Request.Context(), model.RoleStudent, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, "Deleted"))
}

// DeleteApprovedStudent permanently removes an approved student and its
// approved-user lookup entry, both keyed by email.
func (h *RequestHandler) DeleteApprovedStudent(c *gin.Context) {
	if err := h.lifecycleService.DeleteApprovedStudent(c.Request.Context(), c.Param("email")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, "Deleted"))
}
