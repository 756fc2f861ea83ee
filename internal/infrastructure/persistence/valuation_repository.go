package persistence

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/stockmaster/internal/application/analytics"
	"github.com/jhoicas/stockmaster/internal/domain"
	"github.com/jhoicas/stockmaster/internal/domain/entity"
	"github.com/jhoicas/stockmaster/internal/domain/repository"
)

var _ repository.StateRepository = (*ValuationStateRepo)(nil)

// ValuationStateRepo envuelve un StateRepository y, tras cada guardado exitoso,
// registra una instantánea de valorización por proyecto.
type ValuationStateRepo struct {
	inner repository.StateRepository
	store analytics.ValuationStore
	now   func() time.Time
}

// NewValuationStateRepository construye el decorador. now nil usa time.Now.
func NewValuationStateRepository(inner repository.StateRepository, store analytics.ValuationStore, now func() time.Time) *ValuationStateRepo {
	if now == nil {
		now = time.Now
	}
	return &ValuationStateRepo{inner: inner, store: store, now: now}
}

// Load delega en el repositorio interno.
func (r *ValuationStateRepo) Load(ctx context.Context) (entity.AppState, error) {
	return r.inner.Load(ctx)
}

// Save guarda el estado y luego sus valorizaciones. Si el estado no se pudo guardar
// no se registra nada.
func (r *ValuationStateRepo) Save(ctx context.Context, state entity.AppState) error {
	if err := r.inner.Save(ctx, state); err != nil {
		return err
	}
	points := analytics.ValuationPoints(state, r.now().UTC())
	if len(points) == 0 {
		return nil
	}
	if err := r.store.RecordValuations(ctx, points); err != nil {
		return fmt.Errorf("%w: registrar valorización: %v", domain.ErrStorageWrite, err)
	}
	return nil
}
