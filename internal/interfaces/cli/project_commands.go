package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jhoicas/stockmaster/internal/application/analytics"
	"github.com/jhoicas/stockmaster/internal/application/inventory"
)

func (h *handler) projectCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Gestiona proyectos",
	}

	create := &cobra.Command{
		Use:   "create [name]",
		Short: "Crea un proyecto y lo deja activo",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := ""
			if len(args) == 1 {
				name = args[0]
			}
			state, err := h.deps.Controller.Dispatch(cmd.Context(), inventory.CreateProject{Name: name})
			if p, ok := state.ActiveProject(); ok {
				fmt.Fprintf(cmd.OutOrStdout(), "proyecto %s creado (%s)\n", p.Name, p.ID)
			}
			return err
		},
	}

	rename := &cobra.Command{
		Use:   "rename <projectId> <name>",
		Short: "Renombra un proyecto",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := h.deps.Controller.Dispatch(cmd.Context(), inventory.RenameProject{ProjectID: args[0], NewName: args[1]})
			return err
		},
	}

	del := &cobra.Command{
		Use:   "delete <projectId>",
		Short: "Elimina un proyecto con sus productos e historial",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := h.deps.Controller.Dispatch(cmd.Context(), inventory.DeleteProject{ProjectID: args[0]})
			return err
		},
	}

	sel := &cobra.Command{
		Use:   "select <projectId>",
		Short: "Marca un proyecto como activo",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := h.deps.Controller.Dispatch(cmd.Context(), inventory.SelectProject{ProjectID: args[0]})
			return err
		},
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "Lista los proyectos con sus totales",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := newTable(cmd.OutOrStdout())
			fmt.Fprintln(w, " \tID\tNAME\tITEMS\tVALUE\tOUT OF STOCK")
			for _, s := range analytics.SummarizeAll(h.deps.Controller.State()) {
				mark := " "
				if s.Active {
					mark = "*"
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\t%d\n",
					mark, s.ID, s.Name, s.ProductCount, s.TotalValue.StringFixed(2), s.OutOfStockCount)
			}
			return w.Flush()
		},
	}

	cmd.AddCommand(create, rename, del, sel, list)
	return cmd
}
