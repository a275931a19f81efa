package service

import (
	"context"
	"testing"
	"time"

	domain "github.com/VladimirZhdanov/university-records/internal/domain/university"
	"github.com/VladimirZhdanov/university-records/internal/infrastructure/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixture wires the in-memory repositories and all three services together
// the way the router does with the real ones.
type fixture struct {
	classRooms *repository.MockClassRoomRepository
	groups     *repository.MockGroupRepository
	courses    *repository.MockCourseRepository
	students   *repository.MockStudentRepository
	teachers   *repository.MockTeacherRepository
	lectures   *repository.MockLectureRepository
	roster     *repository.MockRosterRepository

	lectureService  *LectureService
	rosterService   *RosterService
	scheduleService *ScheduleService

	room     *domain.ClassRoom
	groupOne *domain.Group
	groupTwo *domain.Group
	math     *domain.Course
	physics  *domain.Course
	kim      *domain.Teacher
	pat      *domain.Teacher
	ann      *domain.Student
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()

	f := &fixture{
		classRooms: repository.NewMockClassRoomRepository(),
		groups:     repository.NewMockGroupRepository(),
		courses:    repository.NewMockCourseRepository(),
	}
	departments := repository.NewMockDepartmentRepository()
	f.students = repository.NewMockStudentRepository(f.groups)
	f.teachers = repository.NewMockTeacherRepository(f.courses, departments)
	f.lectures = repository.NewMockLectureRepository(f.teachers, f.groups, f.classRooms, f.courses)
	f.roster = repository.NewMockRosterRepository(f.students, f.courses)

	f.lectureService = NewLectureService(f.lectures, f.teachers, f.groups, f.classRooms, f.courses)
	f.rosterService = NewRosterService(f.roster)
	f.scheduleService = NewScheduleService(f.students, f.teachers, f.groups, f.lectureService)

	f.room = &domain.ClassRoom{Name: "A-101"}
	require.NoError(t, f.classRooms.Insert(ctx, f.room))

	f.groupOne = &domain.Group{Name: "G1"}
	require.NoError(t, f.groups.Insert(ctx, f.groupOne))
	f.groupTwo = &domain.Group{Name: "G3"}
	require.NoError(t, f.groups.Insert(ctx, f.groupTwo))

	f.math = &domain.Course{Name: "Math"}
	require.NoError(t, f.courses.Insert(ctx, f.math))
	f.physics = &domain.Course{Name: "Physics"}
	require.NoError(t, f.courses.Insert(ctx, f.physics))

	department := &domain.Department{Name: "Science"}
	require.NoError(t, departments.Insert(ctx, department))

	f.kim = &domain.Teacher{FirstName: "Kim", LastName: "Roe", CourseID: f.math.ID, DepartmentID: department.ID}
	require.NoError(t, f.teachers.Insert(ctx, f.kim))
	f.pat = &domain.Teacher{FirstName: "Pat", LastName: "Doe", CourseID: f.physics.ID, DepartmentID: department.ID}
	require.NoError(t, f.teachers.Insert(ctx, f.pat))

	f.ann = &domain.Student{FirstName: "Ann", LastName: "Lee", GroupID: f.groupOne.ID}
	require.NoError(t, f.students.Insert(ctx, f.ann))

	return f
}

func (f *fixture) addLecture(t *testing.T, name string, at time.Time, groupID, teacherID int64) *domain.Lecture {
	t.Helper()
	lecture := &domain.Lecture{
		Name:        name,
		DateTime:    at,
		TeacherID:   teacherID,
		GroupID:     groupID,
		ClassRoomID: f.room.ID,
		CourseID:    f.math.ID,
	}
	require.NoError(t, f.lectures.Insert(context.Background(), lecture))
	return lecture
}

func (f *fixture) seedLectures(t *testing.T) (l1, l2, l3 *domain.Lecture) {
	t.Helper()
	l1 = f.addLecture(t, "Algebra I", time.Date(2019, 2, 1, 10, 0, 0, 0, time.Local), f.groupOne.ID, f.kim.ID)
	l2 = f.addLecture(t, "Algebra II", time.Date(2019, 2, 2, 10, 0, 0, 0, time.Local), f.groupOne.ID, f.kim.ID)
	l3 = f.addLecture(t, "Geometry", time.Date(2019, 5, 2, 10, 0, 0, 0, time.Local), f.groupTwo.ID, f.pat.ID)
	return l1, l2, l3
}

func TestLectureService_ByGroup(t *testing.T) {
	f := newFixture(t)
	f.seedLectures(t)
	ctx := context.Background()

	got, err := f.lectureService.ByGroup(ctx, f.groupOne)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Algebra I", got[0].Name)
	assert.Equal(t, "Algebra II", got[1].Name)

	_, err = f.lectureService.ByGroup(ctx, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestLectureService_ByTeacher(t *testing.T) {
	f := newFixture(t)
	f.seedLectures(t)
	ctx := context.Background()

	got, err := f.lectureService.ByTeacher(ctx, f.pat)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Geometry", got[0].Name)

	_, err = f.lectureService.ByTeacher(ctx, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestLectureService_ByYearAndMonth(t *testing.T) {
	f := newFixture(t)
	f.seedLectures(t)
	ctx := context.Background()

	got, err := f.lectureService.ByYear(ctx, 2019)
	require.NoError(t, err)
	assert.Len(t, got, 3)

	got, err = f.lectureService.ByMonth(ctx, 2, 2019)
	require.NoError(t, err)
	assert.Len(t, got, 2)

	got, err = f.lectureService.ByMonth(ctx, 5, 2019)
	require.NoError(t, err)
	assert.Len(t, got, 1)

	_, err = f.lectureService.ByMonth(ctx, 13, 2019)
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
	_, err = f.lectureService.ByMonth(ctx, 0, 2019)
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestLectureService_Conjunctions(t *testing.T) {
	f := newFixture(t)
	f.seedLectures(t)
	ctx := context.Background()

	got, err := f.lectureService.ByGroupForYear(ctx, 2019, f.groupOne)
	require.NoError(t, err)
	assert.Len(t, got, 2)

	got, err = f.lectureService.ByGroupForMonth(ctx, 5, 2019, f.groupOne)
	require.NoError(t, err)
	assert.Empty(t, got)

	got, err = f.lectureService.ByTeacherForYear(ctx, 2019, f.pat)
	require.NoError(t, err)
	assert.Len(t, got, 1)

	got, err = f.lectureService.ByTeacherForMonth(ctx, 2, 2019, f.kim)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestLectureService_ChangeTeacher(t *testing.T) {
	f := newFixture(t)
	l1, _, _ := f.seedLectures(t)
	ctx := context.Background()

	ok, err := f.lectureService.ChangeTeacher(ctx, l1, f.pat)
	require.NoError(t, err)
	assert.True(t, ok)

	got, err := f.lectures.GetByID(ctx, l1.ID)
	require.NoError(t, err)
	assert.Equal(t, f.pat.ID, got.TeacherID)

	// A vanished lecture comes back false, not as an error
	ok, err = f.lectureService.ChangeTeacher(ctx, &domain.Lecture{ID: 9999}, f.pat)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = f.lectureService.ChangeTeacher(ctx, nil, f.pat)
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
	_, err = f.lectureService.ChangeTeacher(ctx, l1, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestLectureService_ChangeClassRoomAndGroup(t *testing.T) {
	f := newFixture(t)
	l1, _, _ := f.seedLectures(t)
	ctx := context.Background()

	room := &domain.ClassRoom{Name: "B-202"}
	require.NoError(t, f.classRooms.Insert(ctx, room))

	ok, err := f.lectureService.ChangeClassRoom(ctx, l1, room)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = f.lectureService.ChangeGroup(ctx, l1, f.groupTwo)
	require.NoError(t, err)
	assert.True(t, ok)

	got, err := f.lectures.GetByID(ctx, l1.ID)
	require.NoError(t, err)
	assert.Equal(t, room.ID, got.ClassRoomID)
	assert.Equal(t, f.groupTwo.ID, got.GroupID)
}

func TestLectureService_Hydrate(t *testing.T) {
	f := newFixture(t)
	l1, _, _ := f.seedLectures(t)
	ctx := context.Background()

	details, err := f.lectureService.Hydrate(ctx, l1)
	require.NoError(t, err)
	assert.Equal(t, l1.Name, details.Lecture.Name)
	assert.Equal(t, "Kim", details.Teacher.FirstName)
	assert.Equal(t, "G1", details.Group.Name)
	assert.Equal(t, "A-101", details.ClassRoom.Name)
	assert.Equal(t, "Math", details.Course.Name)

	_, err = f.lectureService.Hydrate(ctx, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)

	_, err = f.lectureService.Hydrate(ctx, &domain.Lecture{TeacherID: 9999})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
