// Package persistence serializa el AppState completo como un único documento JSON
// en un repository.KVStore y exporta/importa proyectos individuales.
package persistence

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jhoicas/stockmaster/internal/domain"
	"github.com/jhoicas/stockmaster/internal/domain/entity"
	"github.com/jhoicas/stockmaster/internal/domain/repository"
)

// DefaultStateKey clave fija bajo la que se guarda el documento.
const DefaultStateKey = "stockmaster_pro_data"

// corruptSuffix sufijo de la clave donde se respalda un documento que no se pudo leer.
const corruptSuffix = ".corrupt"

var _ repository.StateRepository = (*StateRepo)(nil)

// StateRepo implementación de repository.StateRepository sobre un KVStore.
type StateRepo struct {
	store repository.KVStore
	key   string
}

// NewStateRepository construye el repositorio. Una clave vacía usa DefaultStateKey.
func NewStateRepository(store repository.KVStore, key string) *StateRepo {
	if key == "" {
		key = DefaultStateKey
	}
	return &StateRepo{store: store, key: key}
}

// Save serializa el estado completo y reemplaza el valor de la clave.
func (r *StateRepo) Save(ctx context.Context, state entity.AppState) error {
	data, err := json.Marshal(state.Clone())
	if err != nil {
		return fmt.Errorf("%w: serializar estado: %v", domain.ErrStorageWrite, err)
	}
	if err := r.store.Set(ctx, r.key, string(data)); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrStorageWrite, err)
	}
	return nil
}

// Load lee el documento. Si la clave no existe devuelve el estado vacío.
// Si el documento no se puede interpretar lo respalda en <key>.corrupt y devuelve
// el estado vacío junto con un error que envuelve domain.ErrMalformedState.
func (r *StateRepo) Load(ctx context.Context) (entity.AppState, error) {
	raw, found, err := r.store.Get(ctx, r.key)
	if err != nil {
		return entity.NewAppState(), fmt.Errorf("%w: %v", domain.ErrStorageRead, err)
	}
	if !found {
		return entity.NewAppState(), nil
	}
	state, err := decodeState([]byte(raw))
	if err != nil {
		if backupErr := r.store.Set(ctx, r.key+corruptSuffix, raw); backupErr != nil {
			return entity.NewAppState(), fmt.Errorf("%w: %v (respaldo fallido: %v)", domain.ErrMalformedState, err, backupErr)
		}
		return entity.NewAppState(), fmt.Errorf("%w: %v", domain.ErrMalformedState, err)
	}
	return state, nil
}

func decodeState(data []byte) (entity.AppState, error) {
	var state entity.AppState
	if err := json.Unmarshal(data, &state); err != nil {
		return entity.AppState{}, err
	}
	// "null" o un objeto sin projects no es un AppState.
	if state.Projects == nil && !hasKey(data, "projects") {
		return entity.AppState{}, fmt.Errorf("falta el campo projects")
	}
	if state.ActiveProjectID != nil && state.ProjectIndex(*state.ActiveProjectID) < 0 {
		state.ActiveProjectID = nil
	}
	return state.Clone(), nil
}

func hasKey(data []byte, key string) bool {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(data, &obj); err != nil {
		return false
	}
	_, ok := obj[key]
	return ok
}
