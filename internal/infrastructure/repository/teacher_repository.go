package repository

import (
	"context"
	"fmt"

	domain "github.com/VladimirZhdanov/university-records/internal/domain/university"
	interfaces "github.com/VladimirZhdanov/university-records/internal/interfaces/infrastructure"

	"gorm.io/gorm"
)

type TeacherRepository struct {
	crud[domain.Teacher]
}

func NewTeacherRepository(db *gorm.DB) interfaces.TeacherRepository {
	return &TeacherRepository{crud[domain.Teacher]{
		db:   db,
		noun: "teacher",
		id:   func(t *domain.Teacher) int64 { return t.ID },
		dup: func(tx *gorm.DB, t *domain.Teacher) *gorm.DB {
			return tx.Where("first_name = ? AND last_name = ?", t.FirstName, t.LastName)
		},
		refs: func(tx *gorm.DB, t *domain.Teacher) error {
			if err := refExists[domain.Course](tx, "course", t.CourseID); err != nil {
				return err
			}
			return refExists[domain.Department](tx, "department", t.DepartmentID)
		},
	}}
}

func (r *TeacherRepository) GetByFullName(ctx context.Context, firstName, lastName string) (*domain.Teacher, error) {
	if firstName == "" || lastName == "" {
		return nil, fmt.Errorf("%w: empty teacher name", domain.ErrInvalidArgument)
	}
	return r.getBy(ctx, "first_name = ? AND last_name = ?", firstName, lastName)
}
