package analytics

import (
	"context"
	"fmt"

	"github.com/jhoicas/stockmaster/internal/domain/entity"
)

// ReportFileSuffix sufijo del archivo PDF de reporte.
const ReportFileSuffix = "_stock_report.pdf"

// ReportUseCase arma el reporte de stock de un proyecto y delega el PDF al generador.
type ReportUseCase struct {
	generator ReportGenerator
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(generator ReportGenerator) *ReportUseCase {
	return &ReportUseCase{generator: generator}
}

// ProjectReport devuelve el nombre de archivo sugerido y los bytes del PDF.
func (uc *ReportUseCase) ProjectReport(ctx context.Context, project entity.Project, active bool) (string, []byte, error) {
	doc, err := uc.generator.GenerateStockReport(ctx, Summarize(project, active), project.Products, History(project))
	if err != nil {
		return "", nil, fmt.Errorf("reporte de stock %s: %w", project.ID, err)
	}
	return project.FileBaseName() + ReportFileSuffix, doc, nil
}
