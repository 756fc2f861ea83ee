package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

func (h *handler) exportCommand() *cobra.Command {
	var outDir string
	cmd := &cobra.Command{
		Use:   "export <projectId>",
		Short: "Exporta un proyecto a <nombre>_stock_data.json",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, data, err := h.deps.Controller.ExportProject(args[0])
			if err != nil {
				return err
			}
			return h.writeFile(cmd, outDir, name, data)
		},
	}
	cmd.Flags().StringVar(&outDir, "out", "", "directorio de salida")
	return cmd
}

func (h *handler) importCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Importa un proyecto exportado (recibe un ID nuevo)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := afero.ReadFile(h.deps.Files, args[0])
			if err != nil {
				return fmt.Errorf("leer %s: %w", args[0], err)
			}
			p, err := h.deps.Controller.ImportProject(cmd.Context(), data)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "proyecto %s importado (%s)\n", p.Name, p.ID)
			return nil
		},
	}
}

func (h *handler) reportCommand() *cobra.Command {
	var outDir string
	cmd := &cobra.Command{
		Use:   "report <projectId>",
		Short: "Genera el reporte de stock en PDF",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, ok := h.deps.Controller.Project(args[0])
			if !ok {
				return fmt.Errorf("proyecto %s no encontrado", args[0])
			}
			active := h.deps.Controller.State().IsActive(p.ID)
			name, doc, err := h.deps.Reports.ProjectReport(cmd.Context(), p, active)
			if err != nil {
				return err
			}
			return h.writeFile(cmd, outDir, name, doc)
		},
	}
	cmd.Flags().StringVar(&outDir, "out", "", "directorio de salida")
	return cmd
}

func (h *handler) writeFile(cmd *cobra.Command, dir, name string, data []byte) error {
	if dir == "" {
		dir = h.deps.OutDir
	}
	if err := h.deps.Files.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("crear %s: %w", dir, err)
	}
	path := filepath.Join(dir, name)
	if err := afero.WriteFile(h.deps.Files, path, data, 0o644); err != nil {
		return fmt.Errorf("escribir %s: %w", path, err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), path)
	return nil
}
