package repository

import (
	"context"
	"sync"

	domain "github.com/VladimirZhdanov/university-records/internal/domain/university"
)

// MockRosterRepository keeps join rows in insertion order and, like the SQL
// implementation, does not dedupe student↔course pairs.
type MockRosterRepository struct {
	mutex    sync.RWMutex
	joins    []domain.StudentCourse
	students *MockStudentRepository
	courses  *MockCourseRepository
}

func NewMockRosterRepository(students *MockStudentRepository, courses *MockCourseRepository) *MockRosterRepository {
	return &MockRosterRepository{
		students: students,
		courses:  courses,
	}
}

func (r *MockRosterRepository) AddCourseToStudent(ctx context.Context, studentID, courseID int64) (bool, error) {
	if !r.students.store.exists(studentID) || !r.courses.store.exists(courseID) {
		return false, nil
	}

	r.mutex.Lock()
	defer r.mutex.Unlock()
	r.joins = append(r.joins, domain.StudentCourse{StudentID: studentID, CourseID: courseID})
	return true, nil
}

func (r *MockRosterRepository) CoursesOfStudent(ctx context.Context, studentID int64) ([]*domain.Course, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	courses := make([]*domain.Course, 0)
	for _, j := range r.joins {
		if j.StudentID != studentID {
			continue
		}
		course, err := r.courses.GetByID(ctx, j.CourseID)
		if err != nil {
			continue
		}
		courses = append(courses, course)
	}
	return courses, nil
}

func (r *MockRosterRepository) StudentsOfCourse(ctx context.Context, courseID int64) ([]*domain.Student, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	students := make([]*domain.Student, 0)
	for _, j := range r.joins {
		if j.CourseID != courseID {
			continue
		}
		student, err := r.students.GetByID(ctx, j.StudentID)
		if err != nil {
			continue
		}
		students = append(students, student)
	}
	return students, nil
}

func (r *MockRosterRepository) UpdateStudentGroup(ctx context.Context, studentID, groupID int64) (bool, error) {
	return r.students.store.mutate(studentID, func(s *domain.Student) { s.GroupID = groupID }), nil
}
