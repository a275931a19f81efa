package service

import (
	"context"
	"testing"

	domain "github.com/VladimirZhdanov/university-records/internal/domain/university"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRosterService_AddCourseToStudent(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	ok, err := f.rosterService.AddCourseToStudent(ctx, f.ann, f.math)
	require.NoError(t, err)
	assert.True(t, ok)

	courses, err := f.rosterService.CoursesOf(ctx, f.ann)
	require.NoError(t, err)
	require.Len(t, courses, 1)
	assert.Equal(t, "Math", courses[0].Name)

	students, err := f.rosterService.StudentsOf(ctx, f.math)
	require.NoError(t, err)
	require.Len(t, students, 1)
	assert.Equal(t, "Ann", students[0].FirstName)

	_, err = f.rosterService.AddCourseToStudent(ctx, nil, f.math)
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
	_, err = f.rosterService.AddCourseToStudent(ctx, f.ann, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestRosterService_AddCourseToMissingStudent(t *testing.T) {
	f := newFixture(t)

	ok, err := f.rosterService.AddCourseToStudent(context.Background(), &domain.Student{ID: 9999}, f.math)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRosterService_BulkAssign(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	bob := &domain.Student{FirstName: "Bob", LastName: "Ray", GroupID: f.groupOne.ID}
	require.NoError(t, f.students.Insert(ctx, bob))

	f.ann.Courses = []domain.Course{*f.math, *f.physics}
	bob.Courses = []domain.Course{*f.math}

	require.NoError(t, f.rosterService.BulkAssign(ctx, []*domain.Student{f.ann, bob}))

	courses, err := f.rosterService.CoursesOf(ctx, f.ann)
	require.NoError(t, err)
	assert.Len(t, courses, 2)

	students, err := f.rosterService.StudentsOf(ctx, f.math)
	require.NoError(t, err)
	require.Len(t, students, 2)
	assert.Equal(t, "Ann", students[0].FirstName)
	assert.Equal(t, "Bob", students[1].FirstName)
}

func TestRosterService_BulkAssignNilStudent(t *testing.T) {
	f := newFixture(t)

	err := f.rosterService.BulkAssign(context.Background(), []*domain.Student{f.ann, nil})
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestRosterService_BulkAssignIsNotAtomic(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.ann.Courses = []domain.Course{*f.math}
	ghost := &domain.Student{ID: 9999, Courses: []domain.Course{*f.physics}}

	// The ghost's write touches no rows but is not an error, so the batch
	// runs to completion and Ann's row stays applied.
	require.NoError(t, f.rosterService.BulkAssign(ctx, []*domain.Student{f.ann, ghost}))

	courses, err := f.rosterService.CoursesOf(ctx, f.ann)
	require.NoError(t, err)
	assert.Len(t, courses, 1)
}

func TestRosterService_ChangeGroup(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	ok, err := f.rosterService.ChangeGroup(ctx, f.ann, f.groupTwo)
	require.NoError(t, err)
	assert.True(t, ok)

	got, err := f.students.GetByID(ctx, f.ann.ID)
	require.NoError(t, err)
	assert.Equal(t, f.groupTwo.ID, got.GroupID)

	ok, err = f.rosterService.ChangeGroup(ctx, &domain.Student{ID: 9999}, f.groupTwo)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = f.rosterService.ChangeGroup(ctx, nil, f.groupTwo)
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestRosterService_QueriesRejectNil(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.rosterService.CoursesOf(ctx, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)

	_, err = f.rosterService.StudentsOf(ctx, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}
