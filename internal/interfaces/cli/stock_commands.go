package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jhoicas/stockmaster/internal/application/analytics"
	"github.com/jhoicas/stockmaster/internal/application/inventory"
	"github.com/jhoicas/stockmaster/internal/domain"
	"github.com/jhoicas/stockmaster/internal/domain/entity"
)

func (h *handler) stockCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stock",
		Short: "Movimientos de stock",
	}

	adjust := &cobra.Command{
		Use:   "adjust <productId> <delta>",
		Short: "Suma delta al stock (negativo para salidas, con piso en 0)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			delta, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("%w: delta %q", domain.ErrInvalidInput, args[1])
			}
			p, err := h.resolveProject(cmd)
			if err != nil {
				return err
			}
			state, err := h.deps.Controller.Dispatch(cmd.Context(), inventory.AdjustStock{
				ProjectID: p.ID, ProductID: args[0], Delta: delta,
			})
			if updated, ok := state.FindProject(p.ID); ok {
				if prod, ok := updated.FindProduct(args[0]); ok {
					fmt.Fprintf(cmd.OutOrStdout(), "%s: stock %d\n", prod.Title, prod.Stock)
				}
			}
			return err
		},
	}
	addProjectFlag(adjust)
	// Permite deltas negativos como argumento posicional: los flags van antes del productId.
	adjust.Flags().SetInterspersed(false)

	cmd.AddCommand(adjust)
	return cmd
}

func (h *handler) historyCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Muestra los movimientos de stock (más reciente primero)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := h.resolveProject(cmd)
			if err != nil {
				return err
			}
			entries := analytics.History(p)
			if len(entries) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No stock movements yet")
				return nil
			}
			w := newTable(cmd.OutOrStdout())
			fmt.Fprintln(w, "TIME\tPRODUCT\tTYPE\tQTY")
			for _, e := range entries {
				sign := "+"
				if e.Type == entity.StockLogTypeOUT {
					sign = "-"
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s%d\n",
					e.Timestamp.Local().Format("2006-01-02 15:04:05"), e.ProductTitle, e.Type, sign, e.Quantity)
			}
			return w.Flush()
		},
	}
	addProjectFlag(cmd)
	return cmd
}

func (h *handler) summaryCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Valor del inventario y productos sin stock",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := h.resolveProject(cmd)
			if err != nil {
				return err
			}
			s := analytics.Summarize(p, h.deps.Controller.State().IsActive(p.ID))
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "project:       %s (%s)\n", s.Name, s.ID)
			fmt.Fprintf(out, "items:         %d\n", s.ProductCount)
			fmt.Fprintf(out, "total value:   %s\n", s.TotalValue.StringFixed(2))
			fmt.Fprintf(out, "out of stock:  %d\n", s.OutOfStockCount)
			fmt.Fprintf(out, "movements:     %d\n", s.MovementCount)
			return nil
		},
	}
	addProjectFlag(cmd)
	return cmd
}

func (h *handler) dashboardCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Entradas y salidas del día y del mes con los productos más movidos",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := h.resolveProject(cmd)
			if err != nil {
				return err
			}
			d := h.deps.Dashboard.GetSummary(p)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s | %s\n", d.ProjectName, d.DateLabel)
			fmt.Fprintf(out, "today:  +%d / -%d\n", d.TodayIn, d.TodayOut)
			fmt.Fprintf(out, "month:  +%d / -%d\n", d.MonthIn, d.MonthOut)
			if len(d.TopProducts) == 0 {
				return nil
			}
			w := newTable(out)
			fmt.Fprintln(w, "PRODUCT\tIN\tOUT\tMOVED")
			for _, top := range d.TopProducts {
				fmt.Fprintf(w, "%s\t%d\t%d\t%d\n", top.ProductTitle, top.In, top.Out, top.Moved())
			}
			return w.Flush()
		},
	}
	addProjectFlag(cmd)
	return cmd
}

func (h *handler) valuationsCommand() *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "valuations",
		Short: "Historial del valor de inventario (requiere STORE_DRIVER=postgres)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if h.deps.Valuations == nil {
				return fmt.Errorf("%w: el historial de valorización requiere STORE_DRIVER=postgres", domain.ErrInvalidInput)
			}
			p, err := h.resolveProject(cmd)
			if err != nil {
				return err
			}
			points, err := h.deps.Valuations.ValuationHistory(cmd.Context(), p.ID, limit)
			if err != nil {
				return err
			}
			w := newTable(cmd.OutOrStdout())
			fmt.Fprintln(w, "RECORDED\tVALUE\tOUT OF STOCK")
			for _, v := range points {
				fmt.Fprintf(w, "%s\t%s\t%d\n",
					v.RecordedAt.Local().Format("2006-01-02 15:04:05"), v.TotalValue.StringFixed(2), v.OutOfStockCount)
			}
			return w.Flush()
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 20, "cantidad de instantáneas")
	addProjectFlag(cmd)
	return cmd
}
