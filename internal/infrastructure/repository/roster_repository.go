package repository

import (
	"context"

	domain "github.com/VladimirZhdanov/university-records/internal/domain/university"
	interfaces "github.com/VladimirZhdanov/university-records/internal/interfaces/infrastructure"

	"github.com/jmoiron/sqlx"
)

// RosterRepository manages the students_courses join table with raw SQL.
// Writes are advisory: they report rows affected instead of raising when a
// referenced row is gone, so the roster manager can surface a boolean.
type RosterRepository struct {
	sx *sqlx.DB
}

func NewRosterRepository(sx *sqlx.DB) interfaces.RosterRepository {
	return &RosterRepository{sx: sx}
}

// AddCourseToStudent inserts one join row. The guarded INSERT ... SELECT
// affects zero rows when either side no longer exists, which comes back as
// false rather than a foreign-key error. Duplicate pairs are not checked.
func (r *RosterRepository) AddCourseToStudent(ctx context.Context, studentID, courseID int64) (bool, error) {
	res, err := r.sx.ExecContext(ctx,
		`INSERT INTO students_courses (student_id, course_id)
		 SELECT $1, $2
		 WHERE EXISTS (SELECT 1 FROM students WHERE id = $1)
		   AND EXISTS (SELECT 1 FROM courses WHERE id = $2)`,
		studentID, courseID)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *RosterRepository) CoursesOfStudent(ctx context.Context, studentID int64) ([]*domain.Course, error) {
	courses := make([]*domain.Course, 0)
	err := r.sx.SelectContext(ctx, &courses,
		`SELECT c.id, c.name
		 FROM courses c
		 JOIN students_courses sc ON sc.course_id = c.id
		 WHERE sc.student_id = $1`,
		studentID)
	if err != nil {
		return nil, err
	}
	return courses, nil
}

func (r *RosterRepository) StudentsOfCourse(ctx context.Context, courseID int64) ([]*domain.Student, error) {
	students := make([]*domain.Student, 0)
	err := r.sx.SelectContext(ctx, &students,
		`SELECT s.id, s.first_name, s.last_name, s.group_id
		 FROM students s
		 JOIN students_courses sc ON sc.student_id = s.id
		 WHERE sc.course_id = $1`,
		courseID)
	if err != nil {
		return nil, err
	}
	return students, nil
}

func (r *RosterRepository) UpdateStudentGroup(ctx context.Context, studentID, groupID int64) (bool, error) {
	res, err := r.sx.ExecContext(ctx,
		`UPDATE students SET group_id = $2 WHERE id = $1`, studentID, groupID)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
