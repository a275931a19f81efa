package repository

import (
	"context"
	"fmt"

	domain "github.com/VladimirZhdanov/university-records/internal/domain/university"
	interfaces "github.com/VladimirZhdanov/university-records/internal/interfaces/infrastructure"

	"gorm.io/gorm"
)

type DepartmentRepository struct {
	crud[domain.Department]
}

func NewDepartmentRepository(db *gorm.DB) interfaces.DepartmentRepository {
	return &DepartmentRepository{crud[domain.Department]{
		db:   db,
		noun: "department",
		id:   func(d *domain.Department) int64 { return d.ID },
		dup: func(tx *gorm.DB, d *domain.Department) *gorm.DB {
			return tx.Where("name = ?", d.Name)
		},
	}}
}

func (r *DepartmentRepository) GetByName(ctx context.Context, name string) (*domain.Department, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: empty department name", domain.ErrInvalidArgument)
	}
	return r.getBy(ctx, "name = ?", name)
}
