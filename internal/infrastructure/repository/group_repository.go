package repository

import (
	"context"
	"fmt"

	domain "github.com/VladimirZhdanov/university-records/internal/domain/university"
	interfaces "github.com/VladimirZhdanov/university-records/internal/interfaces/infrastructure"

	"gorm.io/gorm"
)

type GroupRepository struct {
	crud[domain.Group]
}

func NewGroupRepository(db *gorm.DB) interfaces.GroupRepository {
	return &GroupRepository{crud[domain.Group]{
		db:   db,
		noun: "group",
		id:   func(g *domain.Group) int64 { return g.ID },
		dup: func(tx *gorm.DB, g *domain.Group) *gorm.DB {
			return tx.Where("name = ?", g.Name)
		},
	}}
}

func (r *GroupRepository) GetByName(ctx context.Context, name string) (*domain.Group, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: empty group name", domain.ErrInvalidArgument)
	}
	return r.getBy(ctx, "name = ?", name)
}
