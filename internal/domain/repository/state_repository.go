package repository

import (
	"context"

	"github.com/jhoicas/stockmaster/internal/domain/entity"
)

// StateRepository define el puerto de persistencia para el AppState completo (DIP).
type StateRepository interface {
	Load(ctx context.Context) (entity.AppState, error)
	Save(ctx context.Context, state entity.AppState) error
}
