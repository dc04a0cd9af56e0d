package handler

import (
	"net/http"

	"backend/internal/service"
	"backend/pkg/response"

	"github.com/gin-gonic/gin"
)

// StudentHandler exposes CRUD on the current-students collection.
type StudentHandler struct {
	studentService service.CurrentStudentService
}

func NewStudentHandler(studentService service.CurrentStudentService) *StudentHandler {
	return &StudentHandler{studentService: studentService}
}

func (h *StudentHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/store-current-student", h.StoreCurrentStudent)
	router.GET("/get-current-students", h.GetCurrentStudents)
	router.GET("/get-all-current-students", h.GetCurrentStudents)
	router.PATCH("/update-current-student/:id", h.UpdateCurrentStudent)
	router.DELETE("/delete-current-student/:id", h.DeleteCurrentStudent)
}

// StoreCurrentStudent enrolls a student
// @Summary      Store current student
// @Tags         students
// @Accept       json
// @Produce      json
// @Param        payload  body      service.StoreCurrentStudentDTO  true  "Current Student"
// @Success      201      {object}  response.Response{data=model.CurrentStudent}
// @Failure      400      {object}  response.Response
// @Router       /store-current-student [post]
func (h *StudentHandler) StoreCurrentStudent(c *gin.Context) {
	var dto service.StoreCurrentStudentDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	student, err := h.studentService.Store(c.Request.Context(), dto)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, student))
}

// GetCurrentStudents lists current students grouped by lower-cased class,
// each group sorted ascending by roll number.
// @Summary      List current students grouped by class
// @Tags         students
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /get-current-students [get]
func (h *StudentHandler) GetCurrentStudents(c *gin.Context) {
	grouped, err := h.studentService.GroupedByClass(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, grouped))
}

// UpdateCurrentStudent merges the provided fields into the student document.
func (h *StudentHandler) UpdateCurrentStudent(c *gin.Context) {
	var dto service.UpdateCurrentStudentDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	if err := h.studentService.Update(c.Request.Context(), c.Param("id"), dto); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, "Updated"))
}

// DeleteCurrentStudent permanently removes a current student.
func (h *StudentHandler) DeleteCurrentStudent(c *gin.Context) {
	if err := h.studentService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, "Deleted"))
}
