package persistence

import "github.com/jhoicas/stockmaster/internal/domain/entity"

// JSONProjectCodec expone ExportProject/ImportProject como controller.ProjectCodec.
type JSONProjectCodec struct{}

// Export ver ExportProject.
func (JSONProjectCodec) Export(project entity.Project) (string, []byte, error) {
	return ExportProject(project)
}

// Import ver ImportProject.
func (JSONProjectCodec) Import(data []byte) (entity.Project, error) {
	return ImportProject(data)
}
