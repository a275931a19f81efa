package university

import (
	"time"
)

// ClassRoom represents a lecture room
type ClassRoom struct {
	ID       int64  `json:"id" db:"id" gorm:"primaryKey"`
	Name     string `json:"name" db:"name" gorm:"unique;not null"`
	Capacity int    `json:"capacity" db:"capacity" gorm:"not null"`
}

// Department represents an academic department
type Department struct {
	ID   int64  `json:"id" db:"id" gorm:"primaryKey"`
	Name string `json:"name" db:"name" gorm:"unique;not null"`
}

// Course represents a course in the curriculum
type Course struct {
	ID   int64  `json:"id" db:"id" gorm:"primaryKey"`
	Name string `json:"name" db:"name" gorm:"unique;not null"`
}

// Group represents a student group
type Group struct {
	ID   int64  `json:"id" db:"id" gorm:"primaryKey"`
	Name string `json:"name" db:"name" gorm:"unique;not null"`
}

// Student represents a student. Courses is the in-memory course list used by
// the roster manager's bulk assignment; it is never written by a plain
// insert/update; the students_courses join table is managed explicitly.
type Student struct {
	ID        int64    `json:"id" db:"id" gorm:"primaryKey"`
	FirstName string   `json:"first_name" db:"first_name" gorm:"not null"`
	LastName  string   `json:"last_name" db:"last_name" gorm:"not null"`
	GroupID   int64    `json:"group_id" db:"group_id" gorm:"not null"`
	Courses   []Course `json:"courses,omitempty" db:"-" gorm:"-"`
}

// Teacher represents a teacher
type Teacher struct {
	ID           int64  `json:"id" db:"id" gorm:"primaryKey"`
	FirstName    string `json:"first_name" db:"first_name" gorm:"not null"`
	LastName     string `json:"last_name" db:"last_name" gorm:"not null"`
	CourseID     int64  `json:"course_id" db:"course_id" gorm:"not null"`
	DepartmentID int64  `json:"department_id" db:"department_id" gorm:"not null"`
}

// Lecture references its teacher, group, class room and course by id only.
// Callers needing nested entity data go through the explicit hydrate step.
type Lecture struct {
	ID          int64     `json:"id" db:"id" gorm:"primaryKey"`
	Name        string    `json:"name" db:"name" gorm:"unique;not null"`
	DateTime    time.Time `json:"date_time" db:"date_time" gorm:"not null"`
	TeacherID   int64     `json:"teacher_id" db:"teacher_id" gorm:"not null"`
	GroupID     int64     `json:"group_id" db:"group_id" gorm:"not null"`
	ClassRoomID int64     `json:"class_room_id" db:"class_room_id" gorm:"not null"`
	CourseID    int64     `json:"course_id" db:"course_id" gorm:"not null"`
}

// LectureDetails is a lecture with its four references resolved
type LectureDetails struct {
	Lecture   Lecture   `json:"lecture"`
	Teacher   Teacher   `json:"teacher"`
	Group     Group     `json:"group"`
	ClassRoom ClassRoom `json:"class_room"`
	Course    Course    `json:"course"`
}

// StudentCourse is one row of the student↔course join table. The engine does
// not enforce pair uniqueness; duplicate policy belongs to the caller.
type StudentCourse struct {
	StudentID int64 `json:"student_id" db:"student_id" gorm:"not null"`
	CourseID  int64 `json:"course_id" db:"course_id" gorm:"not null"`
}

// TableName keeps the join table name explicit
func (StudentCourse) TableName() string {
	return "students_courses"
}

// Schedule is a derived, non-persisted sequence of lectures for one subject
// and time window. Lectures appear in the order the store returned them.
type Schedule struct {
	Lectures []Lecture `json:"lectures"`
}
