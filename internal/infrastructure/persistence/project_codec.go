package persistence

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/jhoicas/stockmaster/internal/domain"
	"github.com/jhoicas/stockmaster/internal/domain/entity"
)

// ExportFileSuffix sufijo del archivo exportado de un proyecto.
const ExportFileSuffix = "_stock_data.json"

// ExportFileName nombre de archivo para exportar el proyecto: <nombre saneado>_stock_data.json.
func ExportFileName(project entity.Project) string {
	return project.FileBaseName() + ExportFileSuffix
}

// ExportProject serializa un proyecto como documento independiente.
func ExportProject(project entity.Project) (string, []byte, error) {
	data, err := json.Marshal(project.Clone())
	if err != nil {
		return "", nil, fmt.Errorf("exportar proyecto %s: %w", project.ID, err)
	}
	return ExportFileName(project), data, nil
}

// ImportProject interpreta el contenido de un archivo como Project.
// El llamador debe asignar un ID nuevo antes de agregarlo al estado.
// Cualquier contenido que no tenga la forma de un Project devuelve un error
// que envuelve domain.ErrMalformedImport. El campo name es obligatorio (puede ser
// vacío) y cada movimiento debe tener quantity > 0.
func ImportProject(data []byte) (entity.Project, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return entity.Project{}, fmt.Errorf("%w: se esperaba un objeto JSON", domain.ErrMalformedImport)
	}
	var project entity.Project
	if err := json.Unmarshal(trimmed, &project); err != nil {
		return entity.Project{}, fmt.Errorf("%w: %v", domain.ErrMalformedImport, err)
	}
	if !hasKey(trimmed, "name") {
		return entity.Project{}, fmt.Errorf("%w: falta el campo name", domain.ErrMalformedImport)
	}
	if err := validateProject(project); err != nil {
		return entity.Project{}, fmt.Errorf("%w: %v", domain.ErrMalformedImport, err)
	}
	return project.Clone(), nil
}

func validateProject(p entity.Project) error {
	for _, prod := range p.Products {
		if prod.ID == "" {
			return fmt.Errorf("producto sin id")
		}
		if prod.Stock < 0 {
			return fmt.Errorf("producto %s con stock negativo", prod.ID)
		}
		if prod.MRP < 0 {
			return fmt.Errorf("producto %s con precio negativo", prod.ID)
		}
	}
	for _, l := range p.History {
		if !entity.ValidStockLogType(l.Type) {
			return fmt.Errorf("movimiento %s con tipo %q", l.ID, l.Type)
		}
		if l.Quantity <= 0 {
			return fmt.Errorf("movimiento %s con cantidad %d", l.ID, l.Quantity)
		}
	}
	return nil
}
