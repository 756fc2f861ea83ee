package inventory

import "github.com/jhoicas/stockmaster/internal/domain/entity"

// CreateProject agrega un proyecto vacío al final y lo deja como activo.
// Un nombre vacío se reemplaza por entity.DefaultProjectName.
func (e *Engine) CreateProject(state entity.AppState, name string) entity.AppState {
	if name == "" {
		name = entity.DefaultProjectName
	}
	project := entity.Project{
		ID:        e.ids.NewID(),
		Name:      name,
		Products:  []entity.Product{},
		History:   []entity.StockLog{},
		CreatedAt: e.now(),
	}
	next := state.Clone()
	next.Projects = append(next.Projects, project)
	next.ActiveProjectID = &project.ID
	return next
}

// RenameProject actualiza solo el nombre del proyecto.
func (e *Engine) RenameProject(state entity.AppState, projectID, newName string) entity.AppState {
	return e.updateProject(state, projectID, func(p *entity.Project) {
		p.Name = newName
	})
}

// DeleteProject elimina el proyecto y limpia ActiveProjectID si apuntaba a él.
func (e *Engine) DeleteProject(state entity.AppState, projectID string) entity.AppState {
	next := state.Clone()
	i := next.ProjectIndex(projectID)
	if i < 0 {
		return next
	}
	next.Projects = append(next.Projects[:i], next.Projects[i+1:]...)
	if next.IsActive(projectID) {
		next.ActiveProjectID = nil
	}
	return next
}

// SelectProject deja activo el proyecto indicado si existe.
func (e *Engine) SelectProject(state entity.AppState, projectID string) entity.AppState {
	next := state.Clone()
	if next.ProjectIndex(projectID) < 0 {
		return next
	}
	id := projectID
	next.ActiveProjectID = &id
	return next
}

// ImportProject agrega una copia del proyecto con un ID nuevo; el ID original se descarta
// para no colisionar con proyectos existentes. El proyecto activo no cambia.
func (e *Engine) ImportProject(state entity.AppState, project entity.Project) entity.AppState {
	imported := project.Clone()
	imported.ID = e.ids.NewID()
	next := state.Clone()
	next.Projects = append(next.Projects, imported)
	return next
}
