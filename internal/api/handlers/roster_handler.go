package handlers

import (
	domain "github.com/VladimirZhdanov/university-records/internal/domain/university"
	interfaces "github.com/VladimirZhdanov/university-records/internal/interfaces/infrastructure"
	serviceInterfaces "github.com/VladimirZhdanov/university-records/internal/interfaces/service"
	"github.com/VladimirZhdanov/university-records/pkg/validator"

	"github.com/gin-gonic/gin"
)

// RosterHandler handles the student↔course association endpoints.
type RosterHandler struct {
	rosterService serviceInterfaces.RosterService
	studentRepo   interfaces.StudentRepository
	courseRepo    interfaces.CourseRepository
	groupRepo     interfaces.GroupRepository
}

func NewRosterHandler(
	rosterService serviceInterfaces.RosterService,
	studentRepo interfaces.StudentRepository,
	courseRepo interfaces.CourseRepository,
	groupRepo interfaces.GroupRepository,
) *RosterHandler {
	return &RosterHandler{
		rosterService: rosterService,
		studentRepo:   studentRepo,
		courseRepo:    courseRepo,
		groupRepo:     groupRepo,
	}
}

// AssignRequest is the payload for a single roster assignment
type AssignRequest struct {
	StudentID int64 `json:"student_id" validate:"required,gt=0"`
	CourseID  int64 `json:"course_id" validate:"required,gt=0"`
}

// Assign handles POST /roster
func (h *RosterHandler) Assign(c *gin.Context) {
	var req AssignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request format", err.Error())
		return
	}
	if err := validator.ValidateStruct(&req); err != nil {
		respondBadRequest(c, "Validation failed", validator.FormatValidationError(err))
		return
	}

	added, err := h.rosterService.AddCourseToStudent(c.Request.Context(),
		&domain.Student{ID: req.StudentID}, &domain.Course{ID: req.CourseID})
	if err != nil {
		respondError(c, "Failed to assign course", err)
		return
	}
	respondOK(c, "", gin.H{"added": added})
}

// BulkAssignRequest carries a batch of per-student course lists
type BulkAssignRequest struct {
	Assignments []struct {
		StudentID int64   `json:"student_id" validate:"required,gt=0"`
		CourseIDs []int64 `json:"course_ids" validate:"required,min=1"`
	} `json:"assignments" validate:"required,min=1,dive"`
}

// BulkAssign handles POST /roster/bulk. Writes are per-item; a mid-batch
// failure leaves the earlier rows applied, and the response says which pair
// stopped the batch.
func (h *RosterHandler) BulkAssign(c *gin.Context) {
	var req BulkAssignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request format", err.Error())
		return
	}
	if err := validator.ValidateStruct(&req); err != nil {
		respondBadRequest(c, "Validation failed", validator.FormatValidationError(err))
		return
	}

	students := make([]*domain.Student, 0, len(req.Assignments))
	for _, a := range req.Assignments {
		student := &domain.Student{ID: a.StudentID}
		for _, courseID := range a.CourseIDs {
			student.Courses = append(student.Courses, domain.Course{ID: courseID})
		}
		students = append(students, student)
	}

	if err := h.rosterService.BulkAssign(c.Request.Context(), students); err != nil {
		respondError(c, "Bulk assignment stopped partway; earlier rows were applied", err)
		return
	}
	respondOK(c, "Bulk assignment applied", nil)
}

// CoursesOfStudent handles GET /students/:id/courses
func (h *RosterHandler) CoursesOfStudent(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	student, err := h.studentRepo.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, "Failed to resolve student", err)
		return
	}
	courses, err := h.rosterService.CoursesOf(c.Request.Context(), student)
	if err != nil {
		respondError(c, "Failed to list courses", err)
		return
	}
	respondOK(c, "", courses)
}

// StudentsOfCourse handles GET /courses/:id/students
func (h *RosterHandler) StudentsOfCourse(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	course, err := h.courseRepo.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, "Failed to resolve course", err)
		return
	}
	students, err := h.rosterService.StudentsOf(c.Request.Context(), course)
	if err != nil {
		respondError(c, "Failed to list students", err)
		return
	}
	respondOK(c, "", students)
}

// ChangeGroupRequest carries the target group for a student
type ChangeGroupRequest struct {
	GroupID int64 `json:"group_id" validate:"required,gt=0"`
}

// ChangeGroup handles PUT /students/:id/group
func (h *RosterHandler) ChangeGroup(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req ChangeGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request format", err.Error())
		return
	}
	if err := validator.ValidateStruct(&req); err != nil {
		respondBadRequest(c, "Validation failed", validator.FormatValidationError(err))
		return
	}

	group, err := h.groupRepo.GetByID(c.Request.Context(), req.GroupID)
	if err != nil {
		respondError(c, "Failed to resolve group", err)
		return
	}
	changed, err := h.rosterService.ChangeGroup(c.Request.Context(), &domain.Student{ID: id}, group)
	if err != nil {
		respondError(c, "Failed to change group", err)
		return
	}
	respondOK(c, "", gin.H{"changed": changed})
}
