package repository

import (
	"context"
	"testing"

	domain "github.com/VladimirZhdanov/university-records/internal/domain/university"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type rosterFixture struct {
	groups   *MockGroupRepository
	students *MockStudentRepository
	courses  *MockCourseRepository
	roster   *MockRosterRepository

	group   *domain.Group
	ann     *domain.Student
	bob     *domain.Student
	math    *domain.Course
	physics *domain.Course
}

func newRosterFixture(t *testing.T) *rosterFixture {
	t.Helper()
	ctx := context.Background()

	f := &rosterFixture{
		groups:  NewMockGroupRepository(),
		courses: NewMockCourseRepository(),
	}
	f.students = NewMockStudentRepository(f.groups)
	f.roster = NewMockRosterRepository(f.students, f.courses)

	f.group = &domain.Group{Name: "G1"}
	require.NoError(t, f.groups.Insert(ctx, f.group))

	f.ann = &domain.Student{FirstName: "Ann", LastName: "Lee", GroupID: f.group.ID}
	require.NoError(t, f.students.Insert(ctx, f.ann))
	f.bob = &domain.Student{FirstName: "Bob", LastName: "Ray", GroupID: f.group.ID}
	require.NoError(t, f.students.Insert(ctx, f.bob))

	f.math = &domain.Course{Name: "Math"}
	require.NoError(t, f.courses.Insert(ctx, f.math))
	f.physics = &domain.Course{Name: "Physics"}
	require.NoError(t, f.courses.Insert(ctx, f.physics))

	return f
}

func TestRosterRepository_AssignAndQueryBothDirections(t *testing.T) {
	f := newRosterFixture(t)
	ctx := context.Background()

	ok, err := f.roster.AddCourseToStudent(ctx, f.ann.ID, f.math.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = f.roster.AddCourseToStudent(ctx, f.ann.ID, f.physics.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = f.roster.AddCourseToStudent(ctx, f.bob.ID, f.math.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	courses, err := f.roster.CoursesOfStudent(ctx, f.ann.ID)
	require.NoError(t, err)
	require.Len(t, courses, 2)
	assert.Equal(t, "Math", courses[0].Name)
	assert.Equal(t, "Physics", courses[1].Name)

	students, err := f.roster.StudentsOfCourse(ctx, f.math.ID)
	require.NoError(t, err)
	require.Len(t, students, 2)
	assert.Equal(t, "Ann", students[0].FirstName)
	assert.Equal(t, "Bob", students[1].FirstName)
}

func TestRosterRepository_MissingStudentOrCourse(t *testing.T) {
	f := newRosterFixture(t)
	ctx := context.Background()

	ok, err := f.roster.AddCourseToStudent(ctx, 9999, f.math.ID)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = f.roster.AddCourseToStudent(ctx, f.ann.ID, 9999)
	require.NoError(t, err)
	assert.False(t, ok)

	courses, err := f.roster.CoursesOfStudent(ctx, f.ann.ID)
	require.NoError(t, err)
	assert.Empty(t, courses)
}

func TestRosterRepository_DuplicatePairsAreKept(t *testing.T) {
	f := newRosterFixture(t)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		ok, err := f.roster.AddCourseToStudent(ctx, f.ann.ID, f.math.ID)
		require.NoError(t, err)
		assert.True(t, ok)
	}

	courses, err := f.roster.CoursesOfStudent(ctx, f.ann.ID)
	require.NoError(t, err)
	assert.Len(t, courses, 2)
}

func TestRosterRepository_UpdateStudentGroup(t *testing.T) {
	f := newRosterFixture(t)
	ctx := context.Background()

	other := &domain.Group{Name: "G2"}
	require.NoError(t, f.groups.Insert(ctx, other))

	ok, err := f.roster.UpdateStudentGroup(ctx, f.ann.ID, other.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	got, err := f.students.GetByID(ctx, f.ann.ID)
	require.NoError(t, err)
	assert.Equal(t, other.ID, got.GroupID)

	ok, err = f.roster.UpdateStudentGroup(ctx, 9999, other.ID)
	require.NoError(t, err)
	assert.False(t, ok)
}
