package service

import (
	"context"
	"fmt"

	domain "github.com/VladimirZhdanov/university-records/internal/domain/university"
	interfaces "github.com/VladimirZhdanov/university-records/internal/interfaces/infrastructure"
	serviceInterfaces "github.com/VladimirZhdanov/university-records/internal/interfaces/service"
)

var _ serviceInterfaces.ScheduleService = (*ScheduleService)(nil)

// ScheduleService resolves a subject by full name, delegates to the lecture
// query engine, and wraps the result. Students are filtered through their
// group; teachers directly. Lectures keep the order the store returned.
type ScheduleService struct {
	studentRepo interfaces.StudentRepository
	teacherRepo interfaces.TeacherRepository
	groupRepo   interfaces.GroupRepository
	lectures    serviceInterfaces.LectureService
}

func NewScheduleService(
	studentRepo interfaces.StudentRepository,
	teacherRepo interfaces.TeacherRepository,
	groupRepo interfaces.GroupRepository,
	lectures serviceInterfaces.LectureService,
) *ScheduleService {
	return &ScheduleService{
		studentRepo: studentRepo,
		teacherRepo: teacherRepo,
		groupRepo:   groupRepo,
		lectures:    lectures,
	}
}

func (s *ScheduleService) StudentSchedule(ctx context.Context, firstName, lastName string) (*domain.Schedule, error) {
	group, err := s.resolveStudentGroup(ctx, firstName, lastName)
	if err != nil {
		return nil, err
	}
	lectures, err := s.lectures.ByGroup(ctx, group)
	if err != nil {
		return nil, err
	}
	return wrap(lectures), nil
}

func (s *ScheduleService) StudentScheduleForYear(ctx context.Context, year int, firstName, lastName string) (*domain.Schedule, error) {
	group, err := s.resolveStudentGroup(ctx, firstName, lastName)
	if err != nil {
		return nil, err
	}
	lectures, err := s.lectures.ByGroupForYear(ctx, year, group)
	if err != nil {
		return nil, err
	}
	return wrap(lectures), nil
}

func (s *ScheduleService) StudentScheduleForMonth(ctx context.Context, month, year int, firstName, lastName string) (*domain.Schedule, error) {
	group, err := s.resolveStudentGroup(ctx, firstName, lastName)
	if err != nil {
		return nil, err
	}
	lectures, err := s.lectures.ByGroupForMonth(ctx, month, year, group)
	if err != nil {
		return nil, err
	}
	return wrap(lectures), nil
}

func (s *ScheduleService) TeacherSchedule(ctx context.Context, firstName, lastName string) (*domain.Schedule, error) {
	teacher, err := s.teacherRepo.GetByFullName(ctx, firstName, lastName)
	if err != nil {
		return nil, err
	}
	lectures, err := s.lectures.ByTeacher(ctx, teacher)
	if err != nil {
		return nil, err
	}
	return wrap(lectures), nil
}

func (s *ScheduleService) TeacherScheduleForYear(ctx context.Context, year int, firstName, lastName string) (*domain.Schedule, error) {
	teacher, err := s.teacherRepo.GetByFullName(ctx, firstName, lastName)
	if err != nil {
		return nil, err
	}
	lectures, err := s.lectures.ByTeacherForYear(ctx, year, teacher)
	if err != nil {
		return nil, err
	}
	return wrap(lectures), nil
}

func (s *ScheduleService) TeacherScheduleForMonth(ctx context.Context, month, year int, firstName, lastName string) (*domain.Schedule, error) {
	teacher, err := s.teacherRepo.GetByFullName(ctx, firstName, lastName)
	if err != nil {
		return nil, err
	}
	lectures, err := s.lectures.ByTeacherForMonth(ctx, month, year, teacher)
	if err != nil {
		return nil, err
	}
	return wrap(lectures), nil
}

// resolveStudentGroup goes name → student → group, so a renamed or deleted
// student surfaces as NotFound before any lecture query runs.
func (s *ScheduleService) resolveStudentGroup(ctx context.Context, firstName, lastName string) (*domain.Group, error) {
	student, err := s.studentRepo.GetByFullName(ctx, firstName, lastName)
	if err != nil {
		return nil, err
	}
	group, err := s.groupRepo.GetByID(ctx, student.GroupID)
	if err != nil {
		return nil, fmt.Errorf("student %d group: %w", student.ID, err)
	}
	return group, nil
}

func wrap(lectures []*domain.Lecture) *domain.Schedule {
	schedule := &domain.Schedule{Lectures: make([]domain.Lecture, 0, len(lectures))}
	for _, l := range lectures {
		schedule.Lectures = append(schedule.Lectures, *l)
	}
	return schedule
}
