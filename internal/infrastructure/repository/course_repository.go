package repository

import (
	"context"
	"fmt"

	domain "github.com/VladimirZhdanov/university-records/internal/domain/university"
	interfaces "github.com/VladimirZhdanov/university-records/internal/interfaces/infrastructure"

	"gorm.io/gorm"
)

type CourseRepository struct {
	crud[domain.Course]
}

func NewCourseRepository(db *gorm.DB) interfaces.CourseRepository {
	return &CourseRepository{crud[domain.Course]{
		db:   db,
		noun: "course",
		id:   func(c *domain.Course) int64 { return c.ID },
		dup: func(tx *gorm.DB, c *domain.Course) *gorm.DB {
			return tx.Where("name = ?", c.Name)
		},
	}}
}

func (r *CourseRepository) GetByName(ctx context.Context, name string) (*domain.Course, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: empty course name", domain.ErrInvalidArgument)
	}
	return r.getBy(ctx, "name = ?", name)
}
