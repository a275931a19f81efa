package repository

import (
	"context"
	"fmt"

	domain "github.com/VladimirZhdanov/university-records/internal/domain/university"
)

// In-memory repository implementations honoring the full error contract of
// the gorm ones. Service tests run against these.

type MockClassRoomRepository struct {
	store mockStore[domain.ClassRoom]
}

func NewMockClassRoomRepository() *MockClassRoomRepository {
	return &MockClassRoomRepository{
		store: newMockStore("class room",
			func(r *domain.ClassRoom) int64 { return r.ID },
			func(r *domain.ClassRoom, id int64) { r.ID = id },
			func(a, b *domain.ClassRoom) bool { return a.Name == b.Name },
		),
	}
}

func (r *MockClassRoomRepository) GetByID(ctx context.Context, id int64) (*domain.ClassRoom, error) {
	return r.store.GetByID(ctx, id)
}

func (r *MockClassRoomRepository) GetByName(ctx context.Context, name string) (*domain.ClassRoom, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: empty class room name", domain.ErrInvalidArgument)
	}
	return r.store.getBy(func(c *domain.ClassRoom) bool { return c.Name == name })
}

func (r *MockClassRoomRepository) GetAll(ctx context.Context) ([]*domain.ClassRoom, error) {
	return r.store.GetAll(ctx)
}

func (r *MockClassRoomRepository) Insert(ctx context.Context, room *domain.ClassRoom) error {
	return r.store.Insert(ctx, room)
}

func (r *MockClassRoomRepository) Update(ctx context.Context, room *domain.ClassRoom) error {
	return r.store.Update(ctx, room)
}

func (r *MockClassRoomRepository) Delete(ctx context.Context, room *domain.ClassRoom) (*domain.ClassRoom, error) {
	return r.store.Delete(ctx, room)
}

type MockDepartmentRepository struct {
	store mockStore[domain.Department]
}

func NewMockDepartmentRepository() *MockDepartmentRepository {
	return &MockDepartmentRepository{
		store: newMockStore("department",
			func(d *domain.Department) int64 { return d.ID },
			func(d *domain.Department, id int64) { d.ID = id },
			func(a, b *domain.Department) bool { return a.Name == b.Name },
		),
	}
}

func (r *MockDepartmentRepository) GetByID(ctx context.Context, id int64) (*domain.Department, error) {
	return r.store.GetByID(ctx, id)
}

func (r *MockDepartmentRepository) GetByName(ctx context.Context, name string) (*domain.Department, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: empty department name", domain.ErrInvalidArgument)
	}
	return r.store.getBy(func(d *domain.Department) bool { return d.Name == name })
}

func (r *MockDepartmentRepository) GetAll(ctx context.Context) ([]*domain.Department, error) {
	return r.store.GetAll(ctx)
}

func (r *MockDepartmentRepository) Insert(ctx context.Context, department *domain.Department) error {
	return r.store.Insert(ctx, department)
}

func (r *MockDepartmentRepository) Update(ctx context.Context, department *domain.Department) error {
	return r.store.Update(ctx, department)
}

func (r *MockDepartmentRepository) Delete(ctx context.Context, department *domain.Department) (*domain.Department, error) {
	return r.store.Delete(ctx, department)
}

type MockCourseRepository struct {
	store mockStore[domain.Course]
}

func NewMockCourseRepository() *MockCourseRepository {
	return &MockCourseRepository{
		store: newMockStore("course",
			func(c *domain.Course) int64 { return c.ID },
			func(c *domain.Course, id int64) { c.ID = id },
			func(a, b *domain.Course) bool { return a.Name == b.Name },
		),
	}
}

func (r *MockCourseRepository) GetByID(ctx context.Context, id int64) (*domain.Course, error) {
	return r.store.GetByID(ctx, id)
}

func (r *MockCourseRepository) GetByName(ctx context.Context, name string) (*domain.Course, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: empty course name", domain.ErrInvalidArgument)
	}
	return r.store.getBy(func(c *domain.Course) bool { return c.Name == name })
}

func (r *MockCourseRepository) GetAll(ctx context.Context) ([]*domain.Course, error) {
	return r.store.GetAll(ctx)
}

func (r *MockCourseRepository) Insert(ctx context.Context, course *domain.Course) error {
	return r.store.Insert(ctx, course)
}

func (r *MockCourseRepository) Update(ctx context.Context, course *domain.Course) error {
	return r.store.Update(ctx, course)
}

func (r *MockCourseRepository) Delete(ctx context.Context, course *domain.Course) (*domain.Course, error) {
	return r.store.Delete(ctx, course)
}

type MockGroupRepository struct {
	store mockStore[domain.Group]
}

func NewMockGroupRepository() *MockGroupRepository {
	return &MockGroupRepository{
		store: newMockStore("group",
			func(g *domain.Group) int64 { return g.ID },
			func(g *domain.Group, id int64) { g.ID = id },
			func(a, b *domain.Group) bool { return a.Name == b.Name },
		),
	}
}

func (r *MockGroupRepository) GetByID(ctx context.Context, id int64) (*domain.Group, error) {
	return r.store.GetByID(ctx, id)
}

func (r *MockGroupRepository) GetByName(ctx context.Context, name string) (*domain.Group, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: empty group name", domain.ErrInvalidArgument)
	}
	return r.store.getBy(func(g *domain.Group) bool { return g.Name == name })
}

func (r *MockGroupRepository) GetAll(ctx context.Context) ([]*domain.Group, error) {
	return r.store.GetAll(ctx)
}

func (r *MockGroupRepository) Insert(ctx context.Context, group *domain.Group) error {
	return r.store.Insert(ctx, group)
}

func (r *MockGroupRepository) Update(ctx context.Context, group *domain.Group) error {
	return r.store.Update(ctx, group)
}

func (r *MockGroupRepository) Delete(ctx context.Context, group *domain.Group) (*domain.Group, error) {
	return r.store.Delete(ctx, group)
}

type MockStudentRepository struct {
	store  mockStore[domain.Student]
	groups *MockGroupRepository
}

func NewMockStudentRepository(groups *MockGroupRepository) *MockStudentRepository {
	r := &MockStudentRepository{
		store: newMockStore("student",
			func(s *domain.Student) int64 { return s.ID },
			func(s *domain.Student, id int64) { s.ID = id },
			func(a, b *domain.Student) bool {
				return a.FirstName == b.FirstName && a.LastName == b.LastName
			},
		),
		groups: groups,
	}
	r.store.refs = func(s *domain.Student) error {
		if !groups.store.exists(s.GroupID) {
			return fmt.Errorf("%w: group id %d", domain.ErrNotFound, s.GroupID)
		}
		return nil
	}
	r.store.clone = func(s domain.Student) domain.Student {
		s.Courses = append([]domain.Course(nil), s.Courses...)
		return s
	}
	return r
}

func (r *MockStudentRepository) GetByID(ctx context.Context, id int64) (*domain.Student, error) {
	return r.store.GetByID(ctx, id)
}

func (r *MockStudentRepository) GetByFullName(ctx context.Context, firstName, lastName string) (*domain.Student, error) {
	if firstName == "" || lastName == "" {
		return nil, fmt.Errorf("%w: empty student name", domain.ErrInvalidArgument)
	}
	return r.store.getBy(func(s *domain.Student) bool {
		return s.FirstName == firstName && s.LastName == lastName
	})
}

func (r *MockStudentRepository) GetAll(ctx context.Context) ([]*domain.Student, error) {
	return r.store.GetAll(ctx)
}

func (r *MockStudentRepository) Insert(ctx context.Context, student *domain.Student) error {
	return r.store.Insert(ctx, student)
}

func (r *MockStudentRepository) Update(ctx context.Context, student *domain.Student) error {
	return r.store.Update(ctx, student)
}

func (r *MockStudentRepository) Delete(ctx context.Context, student *domain.Student) (*domain.Student, error) {
	return r.store.Delete(ctx, student)
}

type MockTeacherRepository struct {
	store       mockStore[domain.Teacher]
	courses     *MockCourseRepository
	departments *MockDepartmentRepository
}

func NewMockTeacherRepository(courses *MockCourseRepository, departments *MockDepartmentRepository) *MockTeacherRepository {
	r := &MockTeacherRepository{
		store: newMockStore("teacher",
			func(t *domain.Teacher) int64 { return t.ID },
			func(t *domain.Teacher, id int64) { t.ID = id },
			func(a, b *domain.Teacher) bool {
				return a.FirstName == b.FirstName && a.LastName == b.LastName
			},
		),
		courses:     courses,
		departments: departments,
	}
	r.store.refs = func(t *domain.Teacher) error {
		if !courses.store.exists(t.CourseID) {
			return fmt.Errorf("%w: course id %d", domain.ErrNotFound, t.CourseID)
		}
		if !departments.store.exists(t.DepartmentID) {
			return fmt.Errorf("%w: department id %d", domain.ErrNotFound, t.DepartmentID)
		}
		return nil
	}
	return r
}

func (r *MockTeacherRepository) GetByID(ctx context.Context, id int64) (*domain.Teacher, error) {
	return r.store.GetByID(ctx, id)
}

func (r *MockTeacherRepository) GetByFullName(ctx context.Context, firstName, lastName string) (*domain.Teacher, error) {
	if firstName == "" || lastName == "" {
		return nil, fmt.Errorf("%w: empty teacher name", domain.ErrInvalidArgument)
	}
	return r.store.getBy(func(t *domain.Teacher) bool {
		return t.FirstName == firstName && t.LastName == lastName
	})
}

func (r *MockTeacherRepository) GetAll(ctx context.Context) ([]*domain.Teacher, error) {
	return r.store.GetAll(ctx)
}

func (r *MockTeacherRepository) Insert(ctx context.Context, teacher *domain.Teacher) error {
	return r.store.Insert(ctx, teacher)
}

func (r *MockTeacherRepository) Update(ctx context.Context, teacher *domain.Teacher) error {
	return r.store.Update(ctx, teacher)
}

func (r *MockTeacherRepository) Delete(ctx context.Context, teacher *domain.Teacher) (*domain.Teacher, error) {
	return r.store.Delete(ctx, teacher)
}
