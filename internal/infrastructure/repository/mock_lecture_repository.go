package repository

import (
	"context"
	"fmt"
	"time"

	domain "github.com/VladimirZhdanov/university-records/internal/domain/university"
)

type MockLectureRepository struct {
	store      mockStore[domain.Lecture]
	teachers   *MockTeacherRepository
	groups     *MockGroupRepository
	classRooms *MockClassRoomRepository
	courses    *MockCourseRepository
}

func NewMockLectureRepository(
	teachers *MockTeacherRepository,
	groups *MockGroupRepository,
	classRooms *MockClassRoomRepository,
	courses *MockCourseRepository,
) *MockLectureRepository {
	r := &MockLectureRepository{
		store: newMockStore("lecture",
			func(l *domain.Lecture) int64 { return l.ID },
			func(l *domain.Lecture, id int64) { l.ID = id },
			func(a, b *domain.Lecture) bool { return a.Name == b.Name },
		),
		teachers:   teachers,
		groups:     groups,
		classRooms: classRooms,
		courses:    courses,
	}
	r.store.refs = func(l *domain.Lecture) error {
		if !teachers.store.exists(l.TeacherID) {
			return fmt.Errorf("%w: teacher id %d", domain.ErrNotFound, l.TeacherID)
		}
		if !groups.store.exists(l.GroupID) {
			return fmt.Errorf("%w: group id %d", domain.ErrNotFound, l.GroupID)
		}
		if !classRooms.store.exists(l.ClassRoomID) {
			return fmt.Errorf("%w: class room id %d", domain.ErrNotFound, l.ClassRoomID)
		}
		if !courses.store.exists(l.CourseID) {
			return fmt.Errorf("%w: course id %d", domain.ErrNotFound, l.CourseID)
		}
		return nil
	}
	return r
}

func (r *MockLectureRepository) GetByID(ctx context.Context, id int64) (*domain.Lecture, error) {
	return r.store.GetByID(ctx, id)
}

func (r *MockLectureRepository) GetByName(ctx context.Context, name string) (*domain.Lecture, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: empty lecture name", domain.ErrInvalidArgument)
	}
	return r.store.getBy(func(l *domain.Lecture) bool { return l.Name == name })
}

func (r *MockLectureRepository) GetAll(ctx context.Context) ([]*domain.Lecture, error) {
	return r.store.GetAll(ctx)
}

func (r *MockLectureRepository) Insert(ctx context.Context, lecture *domain.Lecture) error {
	return r.store.Insert(ctx, lecture)
}

func (r *MockLectureRepository) Update(ctx context.Context, lecture *domain.Lecture) error {
	return r.store.Update(ctx, lecture)
}

func (r *MockLectureRepository) Delete(ctx context.Context, lecture *domain.Lecture) (*domain.Lecture, error) {
	return r.store.Delete(ctx, lecture)
}

func (r *MockLectureRepository) GetByGroup(ctx context.Context, groupID int64) ([]*domain.Lecture, error) {
	return r.store.snapshot(func(l *domain.Lecture) bool { return l.GroupID == groupID }), nil
}

func (r *MockLectureRepository) GetByTeacher(ctx context.Context, teacherID int64) ([]*domain.Lecture, error) {
	return r.store.snapshot(func(l *domain.Lecture) bool { return l.TeacherID == teacherID }), nil
}

func (r *MockLectureRepository) GetByYear(ctx context.Context, year int) ([]*domain.Lecture, error) {
	from, to := domain.YearWindow(year)
	return r.store.snapshot(inWindow(from, to)), nil
}

func (r *MockLectureRepository) GetByMonth(ctx context.Context, month, year int) ([]*domain.Lecture, error) {
	from, to := domain.MonthWindow(month, year)
	return r.store.snapshot(inWindow(from, to)), nil
}

func (r *MockLectureRepository) GetByGroupForYear(ctx context.Context, year int, groupID int64) ([]*domain.Lecture, error) {
	from, to := domain.YearWindow(year)
	window := inWindow(from, to)
	return r.store.snapshot(func(l *domain.Lecture) bool { return l.GroupID == groupID && window(l) }), nil
}

func (r *MockLectureRepository) GetByGroupForMonth(ctx context.Context, month, year int, groupID int64) ([]*domain.Lecture, error) {
	from, to := domain.MonthWindow(month, year)
	window := inWindow(from, to)
	return r.store.snapshot(func(l *domain.Lecture) bool { return l.GroupID == groupID && window(l) }), nil
}

func (r *MockLectureRepository) GetByTeacherForYear(ctx context.Context, year int, teacherID int64) ([]*domain.Lecture, error) {
	from, to := domain.YearWindow(year)
	window := inWindow(from, to)
	return r.store.snapshot(func(l *domain.Lecture) bool { return l.TeacherID == teacherID && window(l) }), nil
}

func (r *MockLectureRepository) GetByTeacherForMonth(ctx context.Context, month, year int, teacherID int64) ([]*domain.Lecture, error) {
	from, to := domain.MonthWindow(month, year)
	window := inWindow(from, to)
	return r.store.snapshot(func(l *domain.Lecture) bool { return l.TeacherID == teacherID && window(l) }), nil
}

func (r *MockLectureRepository) ReassignTeacher(ctx context.Context, lectureID, teacherID int64) (bool, error) {
	return r.store.mutate(lectureID, func(l *domain.Lecture) { l.TeacherID = teacherID }), nil
}

func (r *MockLectureRepository) ReassignClassRoom(ctx context.Context, lectureID, classRoomID int64) (bool, error) {
	return r.store.mutate(lectureID, func(l *domain.Lecture) { l.ClassRoomID = classRoomID }), nil
}

func (r *MockLectureRepository) ReassignGroup(ctx context.Context, lectureID, groupID int64) (bool, error) {
	return r.store.mutate(lectureID, func(l *domain.Lecture) { l.GroupID = groupID }), nil
}

func inWindow(from, to time.Time) func(*domain.Lecture) bool {
	return func(l *domain.Lecture) bool {
		return !l.DateTime.Before(from) && l.DateTime.Before(to)
	}
}
