package interfaces

import (
	"context"

	domain "github.com/VladimirZhdanov/university-records/internal/domain/university"
)

// Every repository re-verifies existence inside its own transaction before
// update/delete instead of trusting the caller's in-memory copy; there is no
// version column, so this check is the only defense against stale references.
//
// Shared contract:
//   - GetByID / name lookups fail with university.ErrNotFound when no row matches.
//   - Name lookups fail with university.ErrInvalidArgument on an empty parameter.
//   - Insert assigns the store-generated id back into the entity; it fails with
//     university.ErrConflict on a uniqueness violation and with
//     university.ErrInvalidArgument on a nil entity.
//   - Update fails with university.ErrInconsistentState when the row is gone.
//   - Delete returns the deleted entity as confirmation and fails with
//     university.ErrInconsistentState when the row is gone.

type ClassRoomRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.ClassRoom, error)
	GetByName(ctx context.Context, name string) (*domain.ClassRoom, error)
	GetAll(ctx context.Context) ([]*domain.ClassRoom, error)
	Insert(ctx context.Context, room *domain.ClassRoom) error
	Update(ctx context.Context, room *domain.ClassRoom) error
	Delete(ctx context.Context, room *domain.ClassRoom) (*domain.ClassRoom, error)
}

type DepartmentRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Department, error)
	GetByName(ctx context.Context, name string) (*domain.Department, error)
	GetAll(ctx context.Context) ([]*domain.Department, error)
	Insert(ctx context.Context, department *domain.Department) error
	Update(ctx context.Context, department *domain.Department) error
	Delete(ctx context.Context, department *domain.Department) (*domain.Department, error)
}

type CourseRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Course, error)
	GetByName(ctx context.Context, name string) (*domain.Course, error)
	GetAll(ctx context.Context) ([]*domain.Course, error)
	Insert(ctx context.Context, course *domain.Course) error
	Update(ctx context.Context, course *domain.Course) error
	Delete(ctx context.Context, course *domain.Course) (*domain.Course, error)
}

type GroupRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Group, error)
	GetByName(ctx context.Context, name string) (*domain.Group, error)
	GetAll(ctx context.Context) ([]*domain.Group, error)
	Insert(ctx context.Context, group *domain.Group) error
	Update(ctx context.Context, group *domain.Group) error
	Delete(ctx context.Context, group *domain.Group) (*domain.Group, error)
}

type StudentRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Student, error)
	GetByFullName(ctx context.Context, firstName, lastName string) (*domain.Student, error)
	GetAll(ctx context.Context) ([]*domain.Student, error)
	Insert(ctx context.Context, student *domain.Student) error
	Update(ctx context.Context, student *domain.Student) error
	Delete(ctx context.Context, student *domain.Student) (*domain.Student, error)
}

type TeacherRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Teacher, error)
	GetByFullName(ctx context.Context, firstName, lastName string) (*domain.Teacher, error)
	GetAll(ctx context.Context) ([]*domain.Teacher, error)
	Insert(ctx context.Context, teacher *domain.Teacher) error
	Update(ctx context.Context, teacher *domain.Teacher) error
	Delete(ctx context.Context, teacher *domain.Teacher) (*domain.Teacher, error)
}

// LectureRepository adds the filter family and the single-column
// reassignments on top of the shared contract.
//
// Filter results come back in the store's natural retrieval order; there is
// deliberately no ORDER BY. Callers that need chronological order sort the
// returned slice themselves.
type LectureRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Lecture, error)
	GetByName(ctx context.Context, name string) (*domain.Lecture, error)
	GetAll(ctx context.Context) ([]*domain.Lecture, error)
	Insert(ctx context.Context, lecture *domain.Lecture) error
	Update(ctx context.Context, lecture *domain.Lecture) error
	Delete(ctx context.Context, lecture *domain.Lecture) (*domain.Lecture, error)

	GetByGroup(ctx context.Context, groupID int64) ([]*domain.Lecture, error)
	GetByTeacher(ctx context.Context, teacherID int64) ([]*domain.Lecture, error)
	GetByYear(ctx context.Context, year int) ([]*domain.Lecture, error)
	GetByMonth(ctx context.Context, month, year int) ([]*domain.Lecture, error)
	GetByGroupForYear(ctx context.Context, year int, groupID int64) ([]*domain.Lecture, error)
	GetByGroupForMonth(ctx context.Context, month, year int, groupID int64) ([]*domain.Lecture, error)
	GetByTeacherForYear(ctx context.Context, year int, teacherID int64) ([]*domain.Lecture, error)
	GetByTeacherForMonth(ctx context.Context, month, year int, teacherID int64) ([]*domain.Lecture, error)

	// Reassignments update exactly one foreign key and report whether a row
	// was touched; a vanished lecture is (false, nil), not an error.
	ReassignTeacher(ctx context.Context, lectureID, teacherID int64) (bool, error)
	ReassignClassRoom(ctx context.Context, lectureID, classRoomID int64) (bool, error)
	ReassignGroup(ctx context.Context, lectureID, groupID int64) (bool, error)
}

// RosterRepository manages the students_courses join table and the student's
// group foreign key. The boolean results report rows affected; zero rows is
// not an error.
type RosterRepository interface {
	AddCourseToStudent(ctx context.Context, studentID, courseID int64) (bool, error)
	CoursesOfStudent(ctx context.Context, studentID int64) ([]*domain.Course, error)
	StudentsOfCourse(ctx context.Context, courseID int64) ([]*domain.Student, error)
	UpdateStudentGroup(ctx context.Context, studentID, groupID int64) (bool, error)
}
