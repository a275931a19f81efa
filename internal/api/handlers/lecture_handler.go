package handlers

import (
	"strconv"
	"time"

	domain "github.com/VladimirZhdanov/university-records/internal/domain/university"
	interfaces "github.com/VladimirZhdanov/university-records/internal/interfaces/infrastructure"
	serviceInterfaces "github.com/VladimirZhdanov/university-records/internal/interfaces/service"
	"github.com/VladimirZhdanov/university-records/pkg/validator"

	"github.com/gin-gonic/gin"
)

// LectureHandler handles lecture CRUD, the filter queries and the
// reassignment operations.
type LectureHandler struct {
	lectureService serviceInterfaces.LectureService
	lectureRepo    interfaces.LectureRepository
	teacherRepo    interfaces.TeacherRepository
	groupRepo      interfaces.GroupRepository
	classRoomRepo  interfaces.ClassRoomRepository
}

func NewLectureHandler(
	lectureService serviceInterfaces.LectureService,
	lectureRepo interfaces.LectureRepository,
	teacherRepo interfaces.TeacherRepository,
	groupRepo interfaces.GroupRepository,
	classRoomRepo interfaces.ClassRoomRepository,
) *LectureHandler {
	return &LectureHandler{
		lectureService: lectureService,
		lectureRepo:    lectureRepo,
		teacherRepo:    teacherRepo,
		groupRepo:      groupRepo,
		classRoomRepo:  classRoomRepo,
	}
}

// LectureRequest is the create/update payload for a lecture
type LectureRequest struct {
	Name        string    `json:"name" validate:"required"`
	DateTime    time.Time `json:"date_time" validate:"required"`
	TeacherID   int64     `json:"teacher_id" validate:"required,gt=0"`
	GroupID     int64     `json:"group_id" validate:"required,gt=0"`
	ClassRoomID int64     `json:"class_room_id" validate:"required,gt=0"`
	CourseID    int64     `json:"course_id" validate:"required,gt=0"`
}

// Create handles POST /lectures
func (h *LectureHandler) Create(c *gin.Context) {
	req, ok := bindLecture(c)
	if !ok {
		return
	}

	lecture := req.toLecture(0)
	if err := h.lectureRepo.Insert(c.Request.Context(), lecture); err != nil {
		respondError(c, "Failed to create lecture", err)
		return
	}
	respondCreated(c, "Created lecture", lecture)
}

// List handles GET /lectures with optional group_id, teacher_id, year and
// month query parameters routed to the matching filter. Results keep the
// store's natural order.
func (h *LectureHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	groupID, ok := queryID(c, "group_id")
	if !ok {
		return
	}
	teacherID, ok := queryID(c, "teacher_id")
	if !ok {
		return
	}
	year, ok := queryInt(c, "year")
	if !ok {
		return
	}
	month, ok := queryInt(c, "month")
	if !ok {
		return
	}
	if groupID != 0 && teacherID != 0 {
		respondBadRequest(c, "group_id and teacher_id are mutually exclusive", nil)
		return
	}
	if month != 0 && year == 0 {
		respondBadRequest(c, "month requires year", nil)
		return
	}

	var (
		lectures []*domain.Lecture
		err      error
	)
	switch {
	case groupID != 0 && month != 0:
		lectures, err = h.withGroup(c, groupID, func(g *domain.Group) ([]*domain.Lecture, error) {
			return h.lectureService.ByGroupForMonth(ctx, month, year, g)
		})
	case groupID != 0 && year != 0:
		lectures, err = h.withGroup(c, groupID, func(g *domain.Group) ([]*domain.Lecture, error) {
			return h.lectureService.ByGroupForYear(ctx, year, g)
		})
	case groupID != 0:
		lectures, err = h.withGroup(c, groupID, func(g *domain.Group) ([]*domain.Lecture, error) {
			return h.lectureService.ByGroup(ctx, g)
		})
	case teacherID != 0 && month != 0:
		lectures, err = h.withTeacher(c, teacherID, func(t *domain.Teacher) ([]*domain.Lecture, error) {
			return h.lectureService.ByTeacherForMonth(ctx, month, year, t)
		})
	case teacherID != 0 && year != 0:
		lectures, err = h.withTeacher(c, teacherID, func(t *domain.Teacher) ([]*domain.Lecture, error) {
			return h.lectureService.ByTeacherForYear(ctx, year, t)
		})
	case teacherID != 0:
		lectures, err = h.withTeacher(c, teacherID, func(t *domain.Teacher) ([]*domain.Lecture, error) {
			return h.lectureService.ByTeacher(ctx, t)
		})
	case month != 0:
		lectures, err = h.lectureService.ByMonth(ctx, month, year)
	case year != 0:
		lectures, err = h.lectureService.ByYear(ctx, year)
	default:
		lectures, err = h.lectureRepo.GetAll(ctx)
	}
	if err != nil {
		respondError(c, "Failed to list lectures", err)
		return
	}
	respondOK(c, "", lectures)
}

// Get handles GET /lectures/:id
func (h *LectureHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	lecture, err := h.lectureRepo.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, "Failed to get lecture", err)
		return
	}
	respondOK(c, "", lecture)
}

// GetDetails handles GET /lectures/:id/details, the explicit hydrate step.
func (h *LectureHandler) GetDetails(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	lecture, err := h.lectureRepo.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, "Failed to get lecture", err)
		return
	}
	details, err := h.lectureService.Hydrate(c.Request.Context(), lecture)
	if err != nil {
		respondError(c, "Failed to hydrate lecture", err)
		return
	}
	respondOK(c, "", details)
}

// GetByName handles GET /lectures/name/:name
func (h *LectureHandler) GetByName(c *gin.Context) {
	lecture, err := h.lectureRepo.GetByName(c.Request.Context(), c.Param("name"))
	if err != nil {
		respondError(c, "Failed to get lecture", err)
		return
	}
	respondOK(c, "", lecture)
}

// Update handles PUT /lectures/:id
func (h *LectureHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	req, ok := bindLecture(c)
	if !ok {
		return
	}

	lecture := req.toLecture(id)
	if err := h.lectureRepo.Update(c.Request.Context(), lecture); err != nil {
		respondError(c, "Failed to update lecture", err)
		return
	}
	respondOK(c, "Updated lecture", lecture)
}

// Delete handles DELETE /lectures/:id
func (h *LectureHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	deleted, err := h.lectureRepo.Delete(c.Request.Context(), &domain.Lecture{ID: id})
	if err != nil {
		respondError(c, "Failed to delete lecture", err)
		return
	}
	respondOK(c, "Deleted lecture", deleted)
}

// ReassignRequest carries the target id for a reassignment
type ReassignRequest struct {
	ID int64 `json:"id" validate:"required,gt=0"`
}

// ChangeTeacher handles PUT /lectures/:id/teacher
func (h *LectureHandler) ChangeTeacher(c *gin.Context) {
	lecture, target, ok := h.reassignArgs(c)
	if !ok {
		return
	}
	teacher, err := h.teacherRepo.GetByID(c.Request.Context(), target)
	if err != nil {
		respondError(c, "Failed to resolve teacher", err)
		return
	}
	changed, err := h.lectureService.ChangeTeacher(c.Request.Context(), lecture, teacher)
	if err != nil {
		respondError(c, "Failed to change teacher", err)
		return
	}
	respondOK(c, "", gin.H{"changed": changed})
}

// ChangeClassRoom handles PUT /lectures/:id/classroom
func (h *LectureHandler) ChangeClassRoom(c *gin.Context) {
	lecture, target, ok := h.reassignArgs(c)
	if !ok {
		return
	}
	room, err := h.classRoomRepo.GetByID(c.Request.Context(), target)
	if err != nil {
		respondError(c, "Failed to resolve class room", err)
		return
	}
	changed, err := h.lectureService.ChangeClassRoom(c.Request.Context(), lecture, room)
	if err != nil {
		respondError(c, "Failed to change class room", err)
		return
	}
	respondOK(c, "", gin.H{"changed": changed})
}

// ChangeGroup handles PUT /lectures/:id/group
func (h *LectureHandler) ChangeGroup(c *gin.Context) {
	lecture, target, ok := h.reassignArgs(c)
	if !ok {
		return
	}
	group, err := h.groupRepo.GetByID(c.Request.Context(), target)
	if err != nil {
		respondError(c, "Failed to resolve group", err)
		return
	}
	changed, err := h.lectureService.ChangeGroup(c.Request.Context(), lecture, group)
	if err != nil {
		respondError(c, "Failed to change group", err)
		return
	}
	respondOK(c, "", gin.H{"changed": changed})
}

func (h *LectureHandler) reassignArgs(c *gin.Context) (*domain.Lecture, int64, bool) {
	id, ok := pathID(c)
	if !ok {
		return nil, 0, false
	}
	var req ReassignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request format", err.Error())
		return nil, 0, false
	}
	if err := validator.ValidateStruct(&req); err != nil {
		respondBadRequest(c, "Validation failed", validator.FormatValidationError(err))
		return nil, 0, false
	}
	lecture, err := h.lectureRepo.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, "Failed to resolve lecture", err)
		return nil, 0, false
	}
	return lecture, req.ID, true
}

func (h *LectureHandler) withGroup(c *gin.Context, id int64, f func(*domain.Group) ([]*domain.Lecture, error)) ([]*domain.Lecture, error) {
	group, err := h.groupRepo.GetByID(c.Request.Context(), id)
	if err != nil {
		return nil, err
	}
	return f(group)
}

func (h *LectureHandler) withTeacher(c *gin.Context, id int64, f func(*domain.Teacher) ([]*domain.Lecture, error)) ([]*domain.Lecture, error) {
	teacher, err := h.teacherRepo.GetByID(c.Request.Context(), id)
	if err != nil {
		return nil, err
	}
	return f(teacher)
}

func (r *LectureRequest) toLecture(id int64) *domain.Lecture {
	return &domain.Lecture{
		ID:          id,
		Name:        r.Name,
		DateTime:    r.DateTime,
		TeacherID:   r.TeacherID,
		GroupID:     r.GroupID,
		ClassRoomID: r.ClassRoomID,
		CourseID:    r.CourseID,
	}
}

func bindLecture(c *gin.Context) (*LectureRequest, bool) {
	var req LectureRequest
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

// queryID parses an optional int64 query parameter; absent means zero.
func queryID(c *gin.Context, name string) (int64, bool) {
	raw := c.Query(name)
	if raw == "" {
		return 0, true
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		respondBadRequest(c, "Invalid "+name+" format", nil)
		return 0, false
	}
	return id, true
}

func queryInt(c *gin.Context, name string) (int, bool) {
	raw := c.Query(name)
	if raw == "" {
		return 0, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		respondBadRequest(c, "Invalid "+name+" format", nil)
		return 0, false
	}
	return v, true
}
