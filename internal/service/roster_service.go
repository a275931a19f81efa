package service

import (
	"context"
	"fmt"

	domain "github.com/VladimirZhdanov/university-records/internal/domain/university"
	interfaces "github.com/VladimirZhdanov/university-records/internal/interfaces/infrastructure"
	serviceInterfaces "github.com/VladimirZhdanov/university-records/internal/interfaces/service"
	"github.com/VladimirZhdanov/university-records/pkg/logger"
)

var _ serviceInterfaces.RosterService = (*RosterService)(nil)

// RosterService manages the student↔course association and the student's
// group membership.
type RosterService struct {
	rosterRepo interfaces.RosterRepository
}

func NewRosterService(rosterRepo interfaces.RosterRepository) *RosterService {
	return &RosterService{rosterRepo: rosterRepo}
}

func (s *RosterService) CoursesOf(ctx context.Context, student *domain.Student) ([]*domain.Course, error) {
	if student == nil {
		return nil, fmt.Errorf("%w: nil student", domain.ErrInvalidArgument)
	}
	return s.rosterRepo.CoursesOfStudent(ctx, student.ID)
}

func (s *RosterService) StudentsOf(ctx context.Context, course *domain.Course) ([]*domain.Student, error) {
	if course == nil {
		return nil, fmt.Errorf("%w: nil course", domain.ErrInvalidArgument)
	}
	return s.rosterRepo.StudentsOfCourse(ctx, course.ID)
}

// AddCourseToStudent inserts one join row. False means the write touched
// zero rows; duplicates are not checked here.
func (s *RosterService) AddCourseToStudent(ctx context.Context, student *domain.Student, course *domain.Course) (bool, error) {
	if student == nil || course == nil {
		return false, fmt.Errorf("%w: nil student or course", domain.ErrInvalidArgument)
	}
	ok, err := s.rosterRepo.AddCourseToStudent(ctx, student.ID, course.ID)
	if err != nil {
		return false, err
	}
	if !ok {
		logger.Warn("Roster insert for student %d / course %d touched no rows", student.ID, course.ID)
	}
	return ok, nil
}

// BulkAssign writes each student's in-memory course list to the join table,
// one row per write. The batch is deliberately not one transaction; a
// failure partway leaves the earlier rows applied and names the pair that
// failed.
func (s *RosterService) BulkAssign(ctx context.Context, students []*domain.Student) error {
	for _, student := range students {
		if student == nil {
			return fmt.Errorf("%w: nil student in batch", domain.ErrInvalidArgument)
		}
		for i := range student.Courses {
			if _, err := s.AddCourseToStudent(ctx, student, &student.Courses[i]); err != nil {
				return fmt.Errorf("bulk assign stopped at student %d, course %d: %w",
					student.ID, student.Courses[i].ID, err)
			}
		}
	}
	return nil
}

// ChangeGroup repoints the student's group foreign key; false when the
// student row no longer exists.
func (s *RosterService) ChangeGroup(ctx context.Context, student *domain.Student, group *domain.Group) (bool, error) {
	if student == nil || group == nil {
		return false, fmt.Errorf("%w: nil student or group", domain.ErrInvalidArgument)
	}
	ok, err := s.rosterRepo.UpdateStudentGroup(ctx, student.ID, group.ID)
	if err != nil {
		return false, err
	}
	if !ok {
		logger.Warn("Student %d no longer exists, group change skipped", student.ID)
	}
	return ok, nil
}
