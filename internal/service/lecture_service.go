package service

import (
	"context"
	"fmt"

	domain "github.com/VladimirZhdanov/university-records/internal/domain/university"
	interfaces "github.com/VladimirZhdanov/university-records/internal/interfaces/infrastructure"
	serviceInterfaces "github.com/VladimirZhdanov/university-records/internal/interfaces/service"
	"github.com/VladimirZhdanov/university-records/pkg/logger"
)

var _ serviceInterfaces.LectureService = (*LectureService)(nil)

// LectureService composes the lecture repository's filters into the query
// engine and carries the three best-effort reassignments.
type LectureService struct {
	lectureRepo   interfaces.LectureRepository
	teacherRepo   interfaces.TeacherRepository
	groupRepo     interfaces.GroupRepository
	classRoomRepo interfaces.ClassRoomRepository
	courseRepo    interfaces.CourseRepository
}

func NewLectureService(
	lectureRepo interfaces.LectureRepository,
	teacherRepo interfaces.TeacherRepository,
	groupRepo interfaces.GroupRepository,
	classRoomRepo interfaces.ClassRoomRepository,
	courseRepo interfaces.CourseRepository,
) *LectureService {
	return &LectureService{
		lectureRepo:   lectureRepo,
		teacherRepo:   teacherRepo,
		groupRepo:     groupRepo,
		classRoomRepo: classRoomRepo,
		courseRepo:    courseRepo,
	}
}

func (s *LectureService) ByGroup(ctx context.Context, group *domain.Group) ([]*domain.Lecture, error) {
	if group == nil {
		return nil, fmt.Errorf("%w: nil group", domain.ErrInvalidArgument)
	}
	return s.lectureRepo.GetByGroup(ctx, group.ID)
}

func (s *LectureService) ByTeacher(ctx context.Context, teacher *domain.Teacher) ([]*domain.Lecture, error) {
	if teacher == nil {
		return nil, fmt.Errorf("%w: nil teacher", domain.ErrInvalidArgument)
	}
	return s.lectureRepo.GetByTeacher(ctx, teacher.ID)
}

func (s *LectureService) ByYear(ctx context.Context, year int) ([]*domain.Lecture, error) {
	return s.lectureRepo.GetByYear(ctx, year)
}

func (s *LectureService) ByMonth(ctx context.Context, month, year int) ([]*domain.Lecture, error) {
	if err := validMonth(month); err != nil {
		return nil, err
	}
	return s.lectureRepo.GetByMonth(ctx, month, year)
}

func (s *LectureService) ByGroupForYear(ctx context.Context, year int, group *domain.Group) ([]*domain.Lecture, error) {
	if group == nil {
		return nil, fmt.Errorf("%w: nil group", domain.ErrInvalidArgument)
	}
	return s.lectureRepo.GetByGroupForYear(ctx, year, group.ID)
}

func (s *LectureService) ByGroupForMonth(ctx context.Context, month, year int, group *domain.Group) ([]*domain.Lecture, error) {
	if group == nil {
		return nil, fmt.Errorf("%w: nil group", domain.ErrInvalidArgument)
	}
	if err := validMonth(month); err != nil {
		return nil, err
	}
	return s.lectureRepo.GetByGroupForMonth(ctx, month, year, group.ID)
}

func (s *LectureService) ByTeacherForYear(ctx context.Context, year int, teacher *domain.Teacher) ([]*domain.Lecture, error) {
	if teacher == nil {
		return nil, fmt.Errorf("%w: nil teacher", domain.ErrInvalidArgument)
	}
	return s.lectureRepo.GetByTeacherForYear(ctx, year, teacher.ID)
}

func (s *LectureService) ByTeacherForMonth(ctx context.Context, month, year int, teacher *domain.Teacher) ([]*domain.Lecture, error) {
	if teacher == nil {
		return nil, fmt.Errorf("%w: nil teacher", domain.ErrInvalidArgument)
	}
	if err := validMonth(month); err != nil {
		return nil, err
	}
	return s.lectureRepo.GetByTeacherForMonth(ctx, month, year, teacher.ID)
}

// ChangeTeacher repoints one lecture at another teacher. Unlike Update, a
// vanished lecture is not an error here: the write is advisory and safe to
// retry, so it comes back as false and a warning in the log.
func (s *LectureService) ChangeTeacher(ctx context.Context, lecture *domain.Lecture, teacher *domain.Teacher) (bool, error) {
	if lecture == nil || teacher == nil {
		return false, fmt.Errorf("%w: nil lecture or teacher", domain.ErrInvalidArgument)
	}
	ok, err := s.lectureRepo.ReassignTeacher(ctx, lecture.ID, teacher.ID)
	if err != nil {
		return false, err
	}
	if !ok {
		logger.Warn("Lecture %d no longer exists, teacher reassignment skipped", lecture.ID)
	}
	return ok, nil
}

func (s *LectureService) ChangeClassRoom(ctx context.Context, lecture *domain.Lecture, room *domain.ClassRoom) (bool, error) {
	if lecture == nil || room == nil {
		return false, fmt.Errorf("%w: nil lecture or class room", domain.ErrInvalidArgument)
	}
	ok, err := s.lectureRepo.ReassignClassRoom(ctx, lecture.ID, room.ID)
	if err != nil {
		return false, err
	}
	if !ok {
		logger.Warn("Lecture %d no longer exists, class room reassignment skipped", lecture.ID)
	}
	return ok, nil
}

func (s *LectureService) ChangeGroup(ctx context.Context, lecture *domain.Lecture, group *domain.Group) (bool, error) {
	if lecture == nil || group == nil {
		return false, fmt.Errorf("%w: nil lecture or group", domain.ErrInvalidArgument)
	}
	ok, err := s.lectureRepo.ReassignGroup(ctx, lecture.ID, group.ID)
	if err != nil {
		return false, err
	}
	if !ok {
		logger.Warn("Lecture %d no longer exists, group reassignment skipped", lecture.ID)
	}
	return ok, nil
}

// Hydrate resolves the lecture's four foreign ids into nested entities.
// Lectures carry ids only; this is the explicit opt-in for callers that
// need the full object graph.
func (s *LectureService) Hydrate(ctx context.Context, lecture *domain.Lecture) (*domain.LectureDetails, error) {
	if lecture == nil {
		return nil, fmt.Errorf("%w: nil lecture", domain.ErrInvalidArgument)
	}

	teacher, err := s.teacherRepo.GetByID(ctx, lecture.TeacherID)
	if err != nil {
		return nil, err
	}
	group, err := s.groupRepo.GetByID(ctx, lecture.GroupID)
	if err != nil {
		return nil, err
	}
	room, err := s.classRoomRepo.GetByID(ctx, lecture.ClassRoomID)
	if err != nil {
		return nil, err
	}
	course, err := s.courseRepo.GetByID(ctx, lecture.CourseID)
	if err != nil {
		return nil, err
	}

	return &domain.LectureDetails{
		Lecture:   *lecture,
		Teacher:   *teacher,
		Group:     *group,
		ClassRoom: *room,
		Course:    *course,
	}, nil
}

func validMonth(month int) error {
	if month < 1 || month > 12 {
		return fmt.Errorf("%w: month %d out of range 1-12", domain.ErrInvalidArgument, month)
	}
	return nil
}
