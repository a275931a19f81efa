package repository

import (
	"context"
	"fmt"

	domain "github.com/VladimirZhdanov/university-records/internal/domain/university"
	interfaces "github.com/VladimirZhdanov/university-records/internal/interfaces/infrastructure"

	"github.com/jmoiron/sqlx"
	"gorm.io/gorm"
)

// Filter queries run as raw parameterized SQL through sqlx over the same
// connection gorm holds. They carry no ORDER BY on purpose: rows come back
// in the store's natural retrieval order and callers sort when they need
// chronology.
const selectLectures = `SELECT id, name, date_time, teacher_id, group_id, class_room_id, course_id FROM lectures`

type LectureRepository struct {
	crud[domain.Lecture]
	sx *sqlx.DB
}

func NewLectureRepository(db *gorm.DB, sx *sqlx.DB) interfaces.LectureRepository {
	return &LectureRepository{
		crud: crud[domain.Lecture]{
			db:   db,
			noun: "lecture",
			id:   func(l *domain.Lecture) int64 { return l.ID },
			dup: func(tx *gorm.DB, l *domain.Lecture) *gorm.DB {
				return tx.Where("name = ?", l.Name)
			},
			refs: func(tx *gorm.DB, l *domain.Lecture) error {
				if err := refExists[domain.Teacher](tx, "teacher", l.TeacherID); err != nil {
					return err
				}
				if err := refExists[domain.Group](tx, "group", l.GroupID); err != nil {
					return err
				}
				if err := refExists[domain.ClassRoom](tx, "class room", l.ClassRoomID); err != nil {
					return err
				}
				return refExists[domain.Course](tx, "course", l.CourseID)
			},
		},
		sx: sx,
	}
}

func (r *LectureRepository) GetByName(ctx context.Context, name string) (*domain.Lecture, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: empty lecture name", domain.ErrInvalidArgument)
	}
	return r.getBy(ctx, "name = ?", name)
}

func (r *LectureRepository) GetByGroup(ctx context.Context, groupID int64) ([]*domain.Lecture, error) {
	return r.queryLectures(ctx, selectLectures+` WHERE group_id = $1`, groupID)
}

func (r *LectureRepository) GetByTeacher(ctx context.Context, teacherID int64) ([]*domain.Lecture, error) {
	return r.queryLectures(ctx, selectLectures+` WHERE teacher_id = $1`, teacherID)
}

func (r *LectureRepository) GetByYear(ctx context.Context, year int) ([]*domain.Lecture, error) {
	from, to := domain.YearWindow(year)
	return r.queryLectures(ctx, selectLectures+` WHERE date_time >= $1 AND date_time < $2`, from, to)
}

func (r *LectureRepository) GetByMonth(ctx context.Context, month, year int) ([]*domain.Lecture, error) {
	from, to := domain.MonthWindow(month, year)
	return r.queryLectures(ctx, selectLectures+` WHERE date_time >= $1 AND date_time < $2`, from, to)
}

func (r *LectureRepository) GetByGroupForYear(ctx context.Context, year int, groupID int64) ([]*domain.Lecture, error) {
	from, to := domain.YearWindow(year)
	return r.queryLectures(ctx,
		selectLectures+` WHERE group_id = $1 AND date_time >= $2 AND date_time < $3`, groupID, from, to)
}

func (r *LectureRepository) GetByGroupForMonth(ctx context.Context, month, year int, groupID int64) ([]*domain.Lecture, error) {
	from, to := domain.MonthWindow(month, year)
	return r.queryLectures(ctx,
		selectLectures+` WHERE group_id = $1 AND date_time >= $2 AND date_time < $3`, groupID, from, to)
}

func (r *LectureRepository) GetByTeacherForYear(ctx context.Context, year int, teacherID int64) ([]*domain.Lecture, error) {
	from, to := domain.YearWindow(year)
	return r.queryLectures(ctx,
		selectLectures+` WHERE teacher_id = $1 AND date_time >= $2 AND date_time < $3`, teacherID, from, to)
}

func (r *LectureRepository) GetByTeacherForMonth(ctx context.Context, month, year int, teacherID int64) ([]*domain.Lecture, error) {
	from, to := domain.MonthWindow(month, year)
	return r.queryLectures(ctx,
		selectLectures+` WHERE teacher_id = $1 AND date_time >= $2 AND date_time < $3`, teacherID, from, to)
}

func (r *LectureRepository) ReassignTeacher(ctx context.Context, lectureID, teacherID int64) (bool, error) {
	return r.reassign(ctx, "teacher_id", lectureID, teacherID)
}

func (r *LectureRepository) ReassignClassRoom(ctx context.Context, lectureID, classRoomID int64) (bool, error) {
	return r.reassign(ctx, "class_room_id", lectureID, classRoomID)
}

func (r *LectureRepository) ReassignGroup(ctx context.Context, lectureID, groupID int64) (bool, error) {
	return r.reassign(ctx, "group_id", lectureID, groupID)
}

// reassign touches exactly one foreign-key column. Zero rows affected means
// the lecture vanished between read and write, which callers treat as a
// retry-safe no-op rather than a failure.
func (r *LectureRepository) reassign(ctx context.Context, column string, lectureID, refID int64) (bool, error) {
	res := r.db.WithContext(ctx).Model(&domain.Lecture{}).Where("id = ?", lectureID).Update(column, refID)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *LectureRepository) queryLectures(ctx context.Context, query string, args ...any) ([]*domain.Lecture, error) {
	lectures := make([]*domain.Lecture, 0)
	if err := r.sx.SelectContext(ctx, &lectures, query, args...); err != nil {
		return nil, err
	}
	return lectures, nil
}
