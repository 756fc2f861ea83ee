// Package controller es el dueño único del AppState en memoria: aplica comandos
// uno a la vez mediante el motor de inventario y persiste cada estado nuevo.
package controller

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/jhoicas/stockmaster/internal/application/inventory"
	"github.com/jhoicas/stockmaster/internal/domain"
	"github.com/jhoicas/stockmaster/internal/domain/entity"
	"github.com/jhoicas/stockmaster/internal/domain/repository"
	"github.com/jhoicas/stockmaster/pkg/logger"
)

// ProjectCodec serializa proyectos individuales para exportar/importar archivos.
type ProjectCodec interface {
	Export(project entity.Project) (fileName string, data []byte, err error)
	Import(data []byte) (entity.Project, error)
}

// Controller contenedor de estado. Nada fuera de él modifica el AppState.
type Controller struct {
	mu     sync.Mutex
	state  entity.AppState
	engine *inventory.Engine
	repo   repository.StateRepository
	codec  ProjectCodec
	log    *logger.Logger
}

// New carga el estado desde repo y construye el controlador.
// Un documento malformado no impide arrancar: se registra y se parte del estado vacío.
// Solo un error de lectura del almacenamiento se devuelve.
func New(ctx context.Context, engine *inventory.Engine, repo repository.StateRepository, codec ProjectCodec, log *logger.Logger) (*Controller, error) {
	state, err := repo.Load(ctx)
	if err != nil {
		if !errors.Is(err, domain.ErrMalformedState) {
			return nil, fmt.Errorf("cargar estado: %w", err)
		}
		log.Warn().Err(err).Msg("estado persistido ilegible; se inicia con estado vacío")
	}
	return &Controller{
		state:  state,
		engine: engine,
		repo:   repo,
		codec:  codec,
		log:    log,
	}, nil
}

// State devuelve una copia del estado actual.
func (c *Controller) State() entity.AppState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.Clone()
}

// Project devuelve una copia del proyecto indicado.
func (c *Controller) Project(id string) (entity.Project, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	p, ok := c.state.FindProject(id)
	return p.Clone(), ok
}

// ActiveProject devuelve una copia del proyecto activo.
func (c *Controller) ActiveProject() (entity.Project, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	p, ok := c.state.ActiveProject()
	return p.Clone(), ok
}

// Dispatch aplica el comando, reemplaza el estado en memoria y lo persiste.
// Si la escritura falla el estado nuevo se conserva en memoria y el error
// (que envuelve domain.ErrStorageWrite) se devuelve al llamador.
func (c *Controller) Dispatch(ctx context.Context, cmd inventory.Command) (entity.AppState, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.dispatchLocked(ctx, cmd)
}

func (c *Controller) dispatchLocked(ctx context.Context, cmd inventory.Command) (entity.AppState, error) {
	c.state = c.engine.Apply(c.state, cmd)
	c.log.Debug().Str("command", cmd.CommandName()).Int("projects", len(c.state.Projects)).Msg("comando aplicado")

	if err := c.repo.Save(ctx, c.state); err != nil {
		c.log.Error().Err(err).Str("command", cmd.CommandName()).Msg("persistir estado")
		return c.state.Clone(), err
	}
	return c.state.Clone(), nil
}

// ImportProject interpreta data como proyecto y lo agrega con un ID nuevo.
// Si el contenido es inválido el estado no cambia y el error envuelve domain.ErrMalformedImport.
func (c *Controller) ImportProject(ctx context.Context, data []byte) (entity.Project, error) {
	project, err := c.codec.Import(data)
	if err != nil {
		return entity.Project{}, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	state, err := c.dispatchLocked(ctx, inventory.ImportProject{Project: project})
	imported := state.Projects[len(state.Projects)-1]
	return imported, err
}

// ExportProject serializa el proyecto indicado. Devuelve domain.ErrNotFound si no existe.
func (c *Controller) ExportProject(id string) (string, []byte, error) {
	p, ok := c.Project(id)
	if !ok {
		return "", nil, fmt.Errorf("exportar proyecto %s: %w", id, domain.ErrNotFound)
	}
	return c.codec.Export(p)
}
