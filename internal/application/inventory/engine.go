// Package inventory contiene el motor de mutación de estado: funciones puras que reciben
// el AppState actual y un comando y devuelven un AppState nuevo.
//
// Las referencias a proyectos o productos inexistentes no son errores: el comando
// se ignora y se devuelve el estado sin cambios (copia), lo que permite re-aplicar
// comandos con IDs obsoletos sin riesgo.
package inventory

import (
	"github.com/jhoicas/stockmaster/internal/domain/entity"
)

// Engine aplica comandos sobre un AppState sin modificar el valor de entrada.
type Engine struct {
	clock Clock
	ids   IDGenerator
}

// NewEngine construye el motor con reloj del sistema e IDs UUIDv4.
func NewEngine() *Engine {
	return NewEngineWith(SystemClock{}, UUIDGenerator{})
}

// NewEngineWith construye el motor con reloj y generador de IDs propios (tests, importaciones).
func NewEngineWith(clock Clock, ids IDGenerator) *Engine {
	return &Engine{clock: clock, ids: ids}
}

// Apply despacha el comando al reductor correspondiente.
func (e *Engine) Apply(state entity.AppState, cmd Command) entity.AppState {
	if cmd == nil {
		return state.Clone()
	}
	return cmd.apply(e, state)
}

func (e *Engine) now() entity.Timestamp {
	return entity.NewTimestamp(e.clock.Now())
}

// updateProject clona el estado y aplica fn sobre el proyecto indicado.
// Si el proyecto no existe devuelve la copia sin cambios.
func (e *Engine) updateProject(state entity.AppState, projectID string, fn func(p *entity.Project)) entity.AppState {
	next := state.Clone()
	i := next.ProjectIndex(projectID)
	if i < 0 {
		return next
	}
	fn(&next.Projects[i])
	return next
}
