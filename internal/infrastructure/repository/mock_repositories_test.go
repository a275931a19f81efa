package repository

import (
	"context"
	"testing"

	domain "github.com/VladimirZhdanov/university-records/internal/domain/university"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassRoomRepository_InsertAssignsID(t *testing.T) {
	repo := NewMockClassRoomRepository()
	ctx := context.Background()

	room := &domain.ClassRoom{Name: "A-101"}
	require.NoError(t, repo.Insert(ctx, room))
	assert.NotZero(t, room.ID)

	got, err := repo.GetByID(ctx, room.ID)
	require.NoError(t, err)
	assert.Equal(t, "A-101", got.Name)
}

func TestClassRoomRepository_InsertNil(t *testing.T) {
	repo := NewMockClassRoomRepository()

	err := repo.Insert(context.Background(), nil)
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestClassRoomRepository_DuplicateName(t *testing.T) {
	repo := NewMockClassRoomRepository()
	ctx := context.Background()

	require.NoError(t, repo.Insert(ctx, &domain.ClassRoom{Name: "A-101"}))

	err := repo.Insert(ctx, &domain.ClassRoom{Name: "A-101"})
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestClassRoomRepository_UpdateMissing(t *testing.T) {
	repo := NewMockClassRoomRepository()

	err := repo.Update(context.Background(), &domain.ClassRoom{ID: 42, Name: "B-202"})
	assert.ErrorIs(t, err, domain.ErrInconsistentState)
}

func TestClassRoomRepository_DeleteMissing(t *testing.T) {
	repo := NewMockClassRoomRepository()

	_, err := repo.Delete(context.Background(), &domain.ClassRoom{ID: 42})
	assert.ErrorIs(t, err, domain.ErrInconsistentState)
}

func TestClassRoomRepository_DeleteReturnsRemovedRow(t *testing.T) {
	repo := NewMockClassRoomRepository()
	ctx := context.Background()

	room := &domain.ClassRoom{Name: "A-101"}
	require.NoError(t, repo.Insert(ctx, room))

	deleted, err := repo.Delete(ctx, room)
	require.NoError(t, err)
	assert.Equal(t, "A-101", deleted.Name)

	_, err = repo.GetByID(ctx, room.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestClassRoomRepository_GetByName(t *testing.T) {
	repo := NewMockClassRoomRepository()
	ctx := context.Background()

	require.NoError(t, repo.Insert(ctx, &domain.ClassRoom{Name: "A-101"}))

	got, err := repo.GetByName(ctx, "A-101")
	require.NoError(t, err)
	assert.Equal(t, "A-101", got.Name)

	_, err = repo.GetByName(ctx, "")
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)

	_, err = repo.GetByName(ctx, "Z-999")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestClassRoomRepository_GetAllKeepsInsertionOrder(t *testing.T) {
	repo := NewMockClassRoomRepository()
	ctx := context.Background()

	for _, name := range []string{"C-3", "A-1", "B-2"} {
		require.NoError(t, repo.Insert(ctx, &domain.ClassRoom{Name: name}))
	}

	rooms, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, rooms, 3)
	assert.Equal(t, "C-3", rooms[0].Name)
	assert.Equal(t, "A-1", rooms[1].Name)
	assert.Equal(t, "B-2", rooms[2].Name)
}

func TestStudentRepository_InsertChecksGroup(t *testing.T) {
	groups := NewMockGroupRepository()
	repo := NewMockStudentRepository(groups)
	ctx := context.Background()

	err := repo.Insert(ctx, &domain.Student{FirstName: "Ann", LastName: "Lee", GroupID: 7})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	group := &domain.Group{Name: "G1"}
	require.NoError(t, groups.Insert(ctx, group))

	student := &domain.Student{FirstName: "Ann", LastName: "Lee", GroupID: group.ID}
	require.NoError(t, repo.Insert(ctx, student))
	assert.NotZero(t, student.ID)
}

func TestStudentRepository_GetByFullName(t *testing.T) {
	groups := NewMockGroupRepository()
	repo := NewMockStudentRepository(groups)
	ctx := context.Background()

	group := &domain.Group{Name: "G1"}
	require.NoError(t, groups.Insert(ctx, group))
	require.NoError(t, repo.Insert(ctx, &domain.Student{FirstName: "Ann", LastName: "Lee", GroupID: group.ID}))

	got, err := repo.GetByFullName(ctx, "Ann", "Lee")
	require.NoError(t, err)
	assert.Equal(t, "Ann", got.FirstName)

	_, err = repo.GetByFullName(ctx, "Ann", "")
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)

	_, err = repo.GetByFullName(ctx, "Bob", "Ray")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStudentRepository_DuplicateNamePair(t *testing.T) {
	groups := NewMockGroupRepository()
	repo := NewMockStudentRepository(groups)
	ctx := context.Background()

	group := &domain.Group{Name: "G1"}
	require.NoError(t, groups.Insert(ctx, group))
	require.NoError(t, repo.Insert(ctx, &domain.Student{FirstName: "Ann", LastName: "Lee", GroupID: group.ID}))

	err := repo.Insert(ctx, &domain.Student{FirstName: "Ann", LastName: "Lee", GroupID: group.ID})
	assert.ErrorIs(t, err, domain.ErrConflict)

	// Same first name with a different last name is a different student
	require.NoError(t, repo.Insert(ctx, &domain.Student{FirstName: "Ann", LastName: "Ray", GroupID: group.ID}))
}

func TestStudentRepository_MutateMissing(t *testing.T) {
	groups := NewMockGroupRepository()
	repo := NewMockStudentRepository(groups)
	ctx := context.Background()

	group := &domain.Group{Name: "G1"}
	require.NoError(t, groups.Insert(ctx, group))

	err := repo.Update(ctx, &domain.Student{ID: 42, FirstName: "Ann", LastName: "Lee", GroupID: group.ID})
	assert.ErrorIs(t, err, domain.ErrInconsistentState)

	_, err = repo.Delete(ctx, &domain.Student{ID: 42})
	assert.ErrorIs(t, err, domain.ErrInconsistentState)
}

func TestStudentRepository_ReturnedCoursesAreDetached(t *testing.T) {
	groups := NewMockGroupRepository()
	repo := NewMockStudentRepository(groups)
	ctx := context.Background()

	group := &domain.Group{Name: "G1"}
	require.NoError(t, groups.Insert(ctx, group))

	student := &domain.Student{
		FirstName: "Ann", LastName: "Lee", GroupID: group.ID,
		Courses: []domain.Course{{ID: 1, Name: "Math"}},
	}
	require.NoError(t, repo.Insert(ctx, student))

	got, err := repo.GetByID(ctx, student.ID)
	require.NoError(t, err)
	require.Len(t, got.Courses, 1)

	// Mutating the returned slice must not leak into stored state
	got.Courses[0].Name = "Scribbled"

	again, err := repo.GetByID(ctx, student.ID)
	require.NoError(t, err)
	assert.Equal(t, "Math", again.Courses[0].Name)
}

func TestTeacherRepository_DuplicateNamePair(t *testing.T) {
	courses := NewMockCourseRepository()
	departments := NewMockDepartmentRepository()
	repo := NewMockTeacherRepository(courses, departments)
	ctx := context.Background()

	course := &domain.Course{Name: "Math"}
	require.NoError(t, courses.Insert(ctx, course))
	department := &domain.Department{Name: "Science"}
	require.NoError(t, departments.Insert(ctx, department))

	teacher := &domain.Teacher{FirstName: "Kim", LastName: "Roe", CourseID: course.ID, DepartmentID: department.ID}
	require.NoError(t, repo.Insert(ctx, teacher))

	err := repo.Insert(ctx, &domain.Teacher{FirstName: "Kim", LastName: "Roe", CourseID: course.ID, DepartmentID: department.ID})
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestTeacherRepository_MutateMissing(t *testing.T) {
	courses := NewMockCourseRepository()
	departments := NewMockDepartmentRepository()
	repo := NewMockTeacherRepository(courses, departments)
	ctx := context.Background()

	course := &domain.Course{Name: "Math"}
	require.NoError(t, courses.Insert(ctx, course))
	department := &domain.Department{Name: "Science"}
	require.NoError(t, departments.Insert(ctx, department))

	err := repo.Update(ctx, &domain.Teacher{ID: 42, FirstName: "Kim", LastName: "Roe", CourseID: course.ID, DepartmentID: department.ID})
	assert.ErrorIs(t, err, domain.ErrInconsistentState)

	_, err = repo.Delete(ctx, &domain.Teacher{ID: 42})
	assert.ErrorIs(t, err, domain.ErrInconsistentState)
}

func TestTeacherRepository_InsertChecksCourseAndDepartment(t *testing.T) {
	courses := NewMockCourseRepository()
	departments := NewMockDepartmentRepository()
	repo := NewMockTeacherRepository(courses, departments)
	ctx := context.Background()

	course := &domain.Course{Name: "Math"}
	require.NoError(t, courses.Insert(ctx, course))

	err := repo.Insert(ctx, &domain.Teacher{
		FirstName: "Kim", LastName: "Roe", CourseID: course.ID, DepartmentID: 99,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	department := &domain.Department{Name: "Science"}
	require.NoError(t, departments.Insert(ctx, department))

	teacher := &domain.Teacher{
		FirstName: "Kim", LastName: "Roe", CourseID: course.ID, DepartmentID: department.ID,
	}
	require.NoError(t, repo.Insert(ctx, teacher))
	assert.NotZero(t, teacher.ID)
}

func TestLectureRepository_InsertChecksAllReferences(t *testing.T) {
	f := newLectureFixture(t)
	ctx := context.Background()

	lecture := &domain.Lecture{
		Name:        "Orphan",
		TeacherID:   f.teacher.ID,
		GroupID:     f.groupOne.ID,
		ClassRoomID: 404,
		CourseID:    f.course.ID,
	}
	err := f.lectures.Insert(ctx, lecture)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
