// Package cli es la capa de presentación: traduce argumentos de línea de comandos
// a comandos del motor de inventario y muestra las vistas derivadas. No contiene
// lógica de negocio.
package cli

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/jhoicas/stockmaster/internal/application/analytics"
	"github.com/jhoicas/stockmaster/internal/application/controller"
	"github.com/jhoicas/stockmaster/internal/domain/entity"
)

// Deps dependencias del CLI.
type Deps struct {
	Controller *controller.Controller
	Reports    *analytics.ReportUseCase
	Dashboard  *analytics.DashboardUseCase
	Valuations analytics.ValuationStore // nil si el driver no guarda historial de valorización
	Files      afero.Fs // lectura de importaciones y escritura de exportaciones/reportes
	OutDir     string   // directorio por defecto para exportaciones y reportes
}

// NewRootCommand arma el árbol de comandos.
func NewRootCommand(deps Deps) *cobra.Command {
	root := &cobra.Command{
		Use:           "stockmaster",
		Short:         "Inventario por proyectos con historial de movimientos de stock",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	h := &handler{deps: deps}

	root.AddCommand(
		h.projectCommand(),
		h.productCommand(),
		h.stockCommand(),
		h.historyCommand(),
		h.summaryCommand(),
		h.dashboardCommand(),
		h.valuationsCommand(),
		h.exportCommand(),
		h.importCommand(),
		h.reportCommand(),
	)
	return root
}

type handler struct {
	deps Deps
}

// resolveProject usa --project si se indicó; si no, el proyecto activo.
func (h *handler) resolveProject(cmd *cobra.Command) (entity.Project, error) {
	id, _ := cmd.Flags().GetString("project")
	if id == "" {
		p, ok := h.deps.Controller.ActiveProject()
		if !ok {
			return entity.Project{}, fmt.Errorf("no hay proyecto activo: use --project o 'project select'")
		}
		return p, nil
	}
	p, ok := h.deps.Controller.Project(id)
	if !ok {
		return entity.Project{}, fmt.Errorf("proyecto %s no encontrado", id)
	}
	return p, nil
}

func addProjectFlag(cmd *cobra.Command) {
	cmd.Flags().String("project", "", "ID del proyecto (por defecto el activo)")
}
