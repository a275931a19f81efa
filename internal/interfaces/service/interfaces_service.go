package service

import (
	"context"

	domain "github.com/VladimirZhdanov/university-records/internal/domain/university"
)

// LectureService is the lecture query engine: the filter family over the
// lecture table plus the three best-effort reassignments. Filters return
// lectures in store-natural order.
type LectureService interface {
	ByGroup(ctx context.Context, group *domain.Group) ([]*domain.Lecture, error)
	ByTeacher(ctx context.Context, teacher *domain.Teacher) ([]*domain.Lecture, error)
	ByYear(ctx context.Context, year int) ([]*domain.Lecture, error)
	ByMonth(ctx context.Context, month, year int) ([]*domain.Lecture, error)
	ByGroupForYear(ctx context.Context, year int, group *domain.Group) ([]*domain.Lecture, error)
	ByGroupForMonth(ctx context.Context, month, year int, group *domain.Group) ([]*domain.Lecture, error)
	ByTeacherForYear(ctx context.Context, year int, teacher *domain.Teacher) ([]*domain.Lecture, error)
	ByTeacherForMonth(ctx context.Context, month, year int, teacher *domain.Teacher) ([]*domain.Lecture, error)

	// Reassignments are advisory: false with a nil error means the lecture
	// row no longer existed at update time, which is safe to retry.
	ChangeTeacher(ctx context.Context, lecture *domain.Lecture, teacher *domain.Teacher) (bool, error)
	ChangeClassRoom(ctx context.Context, lecture *domain.Lecture, room *domain.ClassRoom) (bool, error)
	ChangeGroup(ctx context.Context, lecture *domain.Lecture, group *domain.Group) (bool, error)

	// Hydrate resolves a lecture's four foreign ids into nested entities.
	Hydrate(ctx context.Context, lecture *domain.Lecture) (*domain.LectureDetails, error)
}

// RosterService manages the student↔course association and the student's
// group membership.
type RosterService interface {
	CoursesOf(ctx context.Context, student *domain.Student) ([]*domain.Course, error)
	StudentsOf(ctx context.Context, course *domain.Course) ([]*domain.Student, error)
	AddCourseToStudent(ctx context.Context, student *domain.Student, course *domain.Course) (bool, error)
	BulkAssign(ctx context.Context, students []*domain.Student) error
	ChangeGroup(ctx context.Context, student *domain.Student, group *domain.Group) (bool, error)
}

// ScheduleService assembles schedules for a subject addressed by full name.
type ScheduleService interface {
	StudentSchedule(ctx context.Context, firstName, lastName string) (*domain.Schedule, error)
	StudentScheduleForYear(ctx context.Context, year int, firstName, lastName string) (*domain.Schedule, error)
	StudentScheduleForMonth(ctx context.Context, month, year int, firstName, lastName string) (*domain.Schedule, error)
	TeacherSchedule(ctx context.Context, firstName, lastName string) (*domain.Schedule, error)
	TeacherScheduleForYear(ctx context.Context, year int, firstName, lastName string) (*domain.Schedule, error)
	TeacherScheduleForMonth(ctx context.Context, month, year int, firstName, lastName string) (*domain.Schedule, error)
}
