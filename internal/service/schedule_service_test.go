package service

import (
	"context"
	"testing"

	domain "github.com/VladimirZhdanov/university-records/internal/domain/university"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScheduleService_StudentSchedule(t *testing.T) {
	f := newFixture(t)
	f.seedLectures(t)
	ctx := context.Background()

	// Ann is in G1, so she sees the two February lectures
	schedule, err := f.scheduleService.StudentSchedule(ctx, "Ann", "Lee")
	require.NoError(t, err)
	require.Len(t, schedule.Lectures, 2)
	assert.Equal(t, "Algebra I", schedule.Lectures[0].Name)
	assert.Equal(t, "Algebra II", schedule.Lectures[1].Name)
}

func TestScheduleService_StudentScheduleForYearAndMonth(t *testing.T) {
	f := newFixture(t)
	f.seedLectures(t)
	ctx := context.Background()

	schedule, err := f.scheduleService.StudentScheduleForYear(ctx, 2019, "Ann", "Lee")
	require.NoError(t, err)
	assert.Len(t, schedule.Lectures, 2)

	schedule, err = f.scheduleService.StudentScheduleForYear(ctx, 2020, "Ann", "Lee")
	require.NoError(t, err)
	assert.Empty(t, schedule.Lectures)

	schedule, err = f.scheduleService.StudentScheduleForMonth(ctx, 2, 2019, "Ann", "Lee")
	require.NoError(t, err)
	assert.Len(t, schedule.Lectures, 2)

	schedule, err = f.scheduleService.StudentScheduleForMonth(ctx, 5, 2019, "Ann", "Lee")
	require.NoError(t, err)
	assert.Empty(t, schedule.Lectures)

	_, err = f.scheduleService.StudentScheduleForMonth(ctx, 13, 2019, "Ann", "Lee")
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestScheduleService_TeacherSchedule(t *testing.T) {
	f := newFixture(t)
	f.seedLectures(t)
	ctx := context.Background()

	schedule, err := f.scheduleService.TeacherSchedule(ctx, "Kim", "Roe")
	require.NoError(t, err)
	assert.Len(t, schedule.Lectures, 2)

	schedule, err = f.scheduleService.TeacherSchedule(ctx, "Pat", "Doe")
	require.NoError(t, err)
	require.Len(t, schedule.Lectures, 1)
	assert.Equal(t, "Geometry", schedule.Lectures[0].Name)
}

func TestScheduleService_TeacherScheduleForYearAndMonth(t *testing.T) {
	f := newFixture(t)
	f.seedLectures(t)
	ctx := context.Background()

	schedule, err := f.scheduleService.TeacherScheduleForYear(ctx, 2019, "Pat", "Doe")
	require.NoError(t, err)
	assert.Len(t, schedule.Lectures, 1)

	schedule, err = f.scheduleService.TeacherScheduleForMonth(ctx, 2, 2019, "Pat", "Doe")
	require.NoError(t, err)
	assert.Empty(t, schedule.Lectures)
}

func TestScheduleService_UnknownNames(t *testing.T) {
	f := newFixture(t)
	f.seedLectures(t)
	ctx := context.Background()

	_, err := f.scheduleService.StudentSchedule(ctx, "No", "Body")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = f.scheduleService.TeacherSchedule(ctx, "No", "Body")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = f.scheduleService.StudentSchedule(ctx, "", "Lee")
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestScheduleService_EmptyScheduleIsNotAnError(t *testing.T) {
	f := newFixture(t)
	// No lectures seeded at all

	schedule, err := f.scheduleService.StudentSchedule(context.Background(), "Ann", "Lee")
	require.NoError(t, err)
	assert.NotNil(t, schedule.Lectures)
	assert.Empty(t, schedule.Lectures)
}
