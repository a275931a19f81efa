package repository

import (
	"context"
	"fmt"

	domain "github.com/VladimirZhdanov/university-records/internal/domain/university"
	interfaces "github.com/VladimirZhdanov/university-records/internal/interfaces/infrastructure"

	"gorm.io/gorm"
)

type ClassRoomRepository struct {
	crud[domain.ClassRoom]
}

func NewClassRoomRepository(db *gorm.DB) interfaces.ClassRoomRepository {
	return &ClassRoomRepository{crud[domain.ClassRoom]{
		db:   db,
		noun: "class room",
		id:   func(r *domain.ClassRoom) int64 { return r.ID },
		dup: func(tx *gorm.DB, r *domain.ClassRoom) *gorm.DB {
			return tx.Where("name = ?", r.Name)
		},
	}}
}

func (r *ClassRoomRepository) GetByName(ctx context.Context, name string) (*domain.ClassRoom, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: empty class room name", domain.ErrInvalidArgument)
	}
	return r.getBy(ctx, "name = ?", name)
}
