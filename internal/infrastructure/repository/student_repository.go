package repository

import (
	"context"
	"fmt"

	domain "github.com/VladimirZhdanov/university-records/internal/domain/university"
	interfaces "github.com/VladimirZhdanov/university-records/internal/interfaces/infrastructure"

	"gorm.io/gorm"
)

type StudentRepository struct {
	crud[domain.Student]
}

func NewStudentRepository(db *gorm.DB) interfaces.StudentRepository {
	return &StudentRepository{crud[domain.Student]{
		db:   db,
		noun: "student",
		id:   func(s *domain.Student) int64 { return s.ID },
		dup: func(tx *gorm.DB, s *domain.Student) *gorm.DB {
			return tx.Where("first_name = ? AND last_name = ?", s.FirstName, s.LastName)
		},
		refs: func(tx *gorm.DB, s *domain.Student) error {
			return refExists[domain.Group](tx, "group", s.GroupID)
		},
	}}
}

func (r *StudentRepository) GetByFullName(ctx context.Context, firstName, lastName string) (*domain.Student, error) {
	if firstName == "" || lastName == "" {
		return nil, fmt.Errorf("%w: empty student name", domain.ErrInvalidArgument)
	}
	return r.getBy(ctx, "first_name = ? AND last_name = ?", firstName, lastName)
}
