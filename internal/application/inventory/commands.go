package inventory

import "github.com/jhoicas/stockmaster/internal/domain/entity"

// Command petición de mutación con nombre. Solo los tipos de este paquete la implementan.
type Command interface {
	CommandName() string
	apply(e *Engine, s entity.AppState) entity.AppState
}

// CreateProject crea un proyecto y lo deja activo.
type CreateProject struct {
	Name string
}

// RenameProject cambia el nombre de un proyecto.
type RenameProject struct {
	ProjectID string
	NewName   string
}

// DeleteProject elimina un proyecto con sus productos e historial.
type DeleteProject struct {
	ProjectID string
}

// SelectProject marca un proyecto como activo.
type SelectProject struct {
	ProjectID string
}

// ImportProject agrega un proyecto importado con un ID nuevo.
type ImportProject struct {
	Project entity.Project
}

// AddProduct agrega un producto al inicio de la lista del proyecto.
type AddProduct struct {
	ProjectID string
	Title     string
	MRP       float64
	Stock     int
	Image     string
}

// EditProduct actualiza título y precio de un producto (no toca el stock).
type EditProduct struct {
	ProjectID string
	ProductID string
	NewTitle  string
	NewMRP    float64
}

// DeleteProduct elimina un producto; su historial se conserva.
type DeleteProduct struct {
	ProjectID string
	ProductID string
}

// AdjustStock suma Delta al stock del producto (con piso en 0) y registra el movimiento.
type AdjustStock struct {
	ProjectID string
	ProductID string
	Delta     int
}

func (CreateProject) CommandName() string { return "create_project" }
func (RenameProject) CommandName() string { return "rename_project" }
func (DeleteProject) CommandName() string { return "delete_project" }
func (SelectProject) CommandName() string { return "select_project" }
func (ImportProject) CommandName() string { return "import_project" }
func (AddProduct) CommandName() string    { return "add_product" }
func (EditProduct) CommandName() string   { return "edit_product" }
func (DeleteProduct) CommandName() string { return "delete_product" }
func (AdjustStock) CommandName() string   { return "adjust_stock" }

func (c CreateProject) apply(e *Engine, s entity.AppState) entity.AppState {
	return e.CreateProject(s, c.Name)
}

func (c RenameProject) apply(e *Engine, s entity.AppState) entity.AppState {
	return e.RenameProject(s, c.ProjectID, c.NewName)
}

func (c DeleteProject) apply(e *Engine, s entity.AppState) entity.AppState {
	return e.DeleteProject(s, c.ProjectID)
}

func (c SelectProject) apply(e *Engine, s entity.AppState) entity.AppState {
	return e.SelectProject(s, c.ProjectID)
}

func (c ImportProject) apply(e *Engine, s entity.AppState) entity.AppState {
	return e.ImportProject(s, c.Project)
}

func (c AddProduct) apply(e *Engine, s entity.AppState) entity.AppState {
	return e.AddProduct(s, c.ProjectID, c.Title, c.MRP, c.Stock, c.Image)
}

func (c EditProduct) apply(e *Engine, s entity.AppState) entity.AppState {
	return e.EditProduct(s, c.ProjectID, c.ProductID, c.NewTitle, c.NewMRP)
}

func (c DeleteProduct) apply(e *Engine, s entity.AppState) entity.AppState {
	return e.DeleteProduct(s, c.ProjectID, c.ProductID)
}

func (c AdjustStock) apply(e *Engine, s entity.AppState) entity.AppState {
	return e.AdjustStock(s, c.ProjectID, c.ProductID, c.Delta)
}
