package handlers

import (
	domain "github.com/VladimirZhdanov/university-records/internal/domain/university"
	interfaces "github.com/VladimirZhdanov/university-records/internal/interfaces/infrastructure"
	"github.com/VladimirZhdanov/university-records/pkg/validator"

	"github.com/gin-gonic/gin"
)

// StudentHandler handles student CRUD requests
type StudentHandler struct {
	studentRepo interfaces.StudentRepository
}

func NewStudentHandler(studentRepo interfaces.StudentRepository) *StudentHandler {
	return &StudentHandler{studentRepo: studentRepo}
}

// StudentRequest is the create/update payload for a student
type StudentRequest struct {
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
	GroupID   int64  `json:"group_id" validate:"required,gt=0"`
}

// Create handles POST /students
func (h *StudentHandler) Create(c *gin.Context) {
	req, ok := bindStudent(c)
	if !ok {
		return
	}

	student := &domain.Student{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		GroupID:   req.GroupID,
	}
	if err := h.studentRepo.Insert(c.Request.Context(), student); err != nil {
		respondError(c, "Failed to create student", err)
		return
	}
	respondCreated(c, "Created student", student)
}

// List handles GET /students
func (h *StudentHandler) List(c *gin.Context) {
	students, err := h.studentRepo.GetAll(c.Request.Context())
	if err != nil {
		respondError(c, "Failed to list students", err)
		return
	}
	respondOK(c, "", students)
}

// Get handles GET /students/:id
func (h *StudentHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	student, err := h.studentRepo.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, "Failed to get student", err)
		return
	}
	respondOK(c, "", student)
}

// GetByFullName handles GET /students/name/:first_name/:last_name
func (h *StudentHandler) GetByFullName(c *gin.Context) {
	student, err := h.studentRepo.GetByFullName(c.Request.Context(), c.Param("first_name"), c.Param("last_name"))
	if err != nil {
		respondError(c, "Failed to get student", err)
		return
	}
	respondOK(c, "", student)
}

// Update handles PUT /students/:id
func (h *StudentHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	req, ok := bindStudent(c)
	if !ok {
		return
	}

	student := &domain.Student{
		ID:        id,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		GroupID:   req.GroupID,
	}
	if err := h.studentRepo.Update(c.Request.Context(), student); err != nil {
		respondError(c, "Failed to update student", err)
		return
	}
	respondOK(c, "Updated student", student)
}

// Delete handles DELETE /students/:id
func (h *StudentHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	deleted, err := h.studentRepo.Delete(c.Request.Context(), &domain.Student{ID: id})
	if err != nil {
		respondError(c, "Failed to delete student", err)
		return
	}
	respondOK(c, "Deleted student", deleted)
}

func bindStudent(c *gin.Context) (*StudentRequest, bool) {
	var req StudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request format", err.Error())
		return nil, false
	}
	if err := validator.ValidateStruct(&req); err != nil {
		respondBadRequest(c, "Validation failed", validator.FormatValidationError(err))
		return nil, false
	}
	return &req, true
}

// TeacherHandler handles teacher CRUD requests
type TeacherHandler struct {
	teacherRepo interfaces.TeacherRepository
}

func NewTeacherHandler(teacherRepo interfaces.TeacherRepository) *TeacherHandler {
	return &TeacherHandler{teacherRepo: teacherRepo}
}

// TeacherRequest is the create/update payload for a teacher
type TeacherRequest struct {
	FirstName    string `json:"first_name" validate:"required"`
	LastName     string `json:"last_name" validate:"required"`
	CourseID     int64  `json:"course_id" validate:"required,gt=0"`
	DepartmentID int64  `json:"department_id" validate:"required,gt=0"`
}

// Create handles POST /teachers
func (h *TeacherHandler) Create(c *gin.Context) {
	req, ok := bindTeacher(c)
	if !ok {
		return
	}

	teacher := &domain.Teacher{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		CourseID:     req.CourseID,
		DepartmentID: req.DepartmentID,
	}
	if err := h.teacherRepo.Insert(c.Request.Context(), teacher); err != nil {
		respondError(c, "Failed to create teacher", err)
		return
	}
	respondCreated(c, "Created teacher", teacher)
}

// List handles GET /teachers
func (h *TeacherHandler) List(c *gin.Context) {
	teachers, err := h.teacherRepo.GetAll(c.Request.Context())
	if err != nil {
		respondError(c, "Failed to list teachers", err)
		return
	}
	respondOK(c, "", teachers)
}

// Get handles GET /teachers/:id
func (h *TeacherHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	teacher, err := h.teacherRepo.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, "Failed to get teacher", err)
		return
	}
	respondOK(c, "", teacher)
}

// GetByFullName handles GET /teachers/name/:first_name/:last_name
func (h *TeacherHandler) GetByFullName(c *gin.Context) {
	teacher, err := h.teacherRepo.GetByFullName(c.Request.Context(), c.Param("first_name"), c.Param("last_name"))
	if err != nil {
		respondError(c, "Failed to get teacher", err)
		return
	}
	respondOK(c, "", teacher)
}

// Update handles PUT /teachers/:id
func (h *TeacherHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	req, ok := bindTeacher(c)
	if !ok {
		return
	}

	teacher := &domain.Teacher{
		ID:           id,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		CourseID:     req.CourseID,
		DepartmentID: req.DepartmentID,
	}
	if err := h.teacherRepo.Update(c.Request.Context(), teacher); err != nil {
		respondError(c, "Failed to update teacher", err)
		return
	}
	respondOK(c, "Updated teacher", teacher)
}

// Delete handles DELETE /teachers/:id
func (h *TeacherHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	deleted, err := h.teacherRepo.Delete(c.Request.Context(), &domain.Teacher{ID: id})
	if err != nil {
		respondError(c, "Failed to delete teacher", err)
		return
	}
	respondOK(c, "Deleted teacher", deleted)
}

func bindTeacher(c *gin.Context) (*TeacherRequest, bool) {
	var req TeacherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request format", err.Error())
		return nil, false
	}
	if err := validator.ValidateStruct(&req); err != nil {
		respondBadRequest(c, "Validation failed", validator.FormatValidationError(err))
		return nil, false
	}
	return &req, true
}
