package handlers

import (
	"context"

	domain "github.com/VladimirZhdanov/university-records/internal/domain/university"
	serviceInterfaces "github.com/VladimirZhdanov/university-records/internal/interfaces/service"

	"github.com/gin-gonic/gin"
)

// ScheduleHandler serves schedules addressed by subject full name, with the
// time window selected by optional year and month query parameters.
type ScheduleHandler struct {
	scheduleService serviceInterfaces.ScheduleService
}

func NewScheduleHandler(scheduleService serviceInterfaces.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{scheduleService: scheduleService}
}

// StudentSchedule handles GET /schedules/students/:first_name/:last_name
func (h *ScheduleHandler) StudentSchedule(c *gin.Context) {
	h.schedule(c,
		h.scheduleService.StudentSchedule,
		h.scheduleService.StudentScheduleForYear,
		h.scheduleService.StudentScheduleForMonth,
	)
}

// TeacherSchedule handles GET /schedules/teachers/:first_name/:last_name
func (h *ScheduleHandler) TeacherSchedule(c *gin.Context) {
	h.schedule(c,
		h.scheduleService.TeacherSchedule,
		h.scheduleService.TeacherScheduleForYear,
		h.scheduleService.TeacherScheduleForMonth,
	)
}

func (h *ScheduleHandler) schedule(
	c *gin.Context,
	full func(ctx context.Context, firstName, lastName string) (*domain.Schedule, error),
	forYear func(ctx context.Context, year int, firstName, lastName string) (*domain.Schedule, error),
	forMonth func(ctx context.Context, month, year int, firstName, lastName string) (*domain.Schedule, error),
) {
	firstName := c.Param("first_name")
	lastName := c.Param("last_name")

	year, ok := queryInt(c, "year")
	if !ok {
		return
	}
	month, ok := queryInt(c, "month")
	if !ok {
		return
	}
	if month != 0 && year == 0 {
		respondBadRequest(c, "month requires year", nil)
		return
	}

	var (
		schedule *domain.Schedule
		err      error
	)
	switch {
	case month != 0:
		schedule, err = forMonth(c.Request.Context(), month, year, firstName, lastName)
	case year != 0:
		schedule, err = forYear(c.Request.Context(), year, firstName, lastName)
	default:
		schedule, err = full(c.Request.Context(), firstName, lastName)
	}
	if err != nil {
		respondError(c, "Failed to assemble schedule", err)
		return
	}
	respondOK(c, "", schedule)
}
