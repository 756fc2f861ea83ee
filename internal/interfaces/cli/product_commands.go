package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jhoicas/stockmaster/internal/application/analytics"
	"github.com/jhoicas/stockmaster/internal/application/inventory"
)

func (h *handler) productCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "product",
		Short: "Gestiona los productos del proyecto activo",
	}

	var mrp, stock, image string
	add := &cobra.Command{
		Use:   "add <title>",
		Short: "Agrega un producto",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := h.resolveProject(cmd)
			if err != nil {
				return err
			}
			state, err := h.deps.Controller.Dispatch(cmd.Context(), inventory.AddProduct{
				ProjectID: p.ID,
				Title:     args[0],
				MRP:       inventory.ParseMRP(mrp),
				Stock:     inventory.ParseStock(stock),
				Image:     image,
			})
			if updated, ok := state.FindProject(p.ID); ok && len(updated.Products) > 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "producto %s agregado (%s)\n", updated.Products[0].Title, updated.Products[0].ID)
			}
			return err
		},
	}
	add.Flags().StringVar(&mrp, "mrp", "0", "precio unitario")
	add.Flags().StringVar(&stock, "stock", "0", "stock inicial")
	add.Flags().StringVar(&image, "image", "", "URL de la imagen")
	addProjectFlag(add)

	var newTitle, newMRP string
	edit := &cobra.Command{
		Use:   "edit <productId>",
		Short: "Edita título y precio de un producto",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := h.resolveProject(cmd)
			if err != nil {
				return err
			}
			req := inventory.EditProduct{ProjectID: p.ID, ProductID: args[0]}
			// Los campos no indicados conservan su valor actual.
			if current, ok := p.FindProduct(args[0]); ok {
				req.NewTitle, req.NewMRP = current.Title, current.MRP
			}
			if cmd.Flags().Changed("title") {
				req.NewTitle = newTitle
			}
			if cmd.Flags().Changed("mrp") {
				req.NewMRP = inventory.ParseMRP(newMRP)
			}
			_, err = h.deps.Controller.Dispatch(cmd.Context(), req)
			return err
		},
	}
	edit.Flags().StringVar(&newTitle, "title", "", "nuevo título")
	edit.Flags().StringVar(&newMRP, "mrp", "", "nuevo precio")
	addProjectFlag(edit)

	del := &cobra.Command{
		Use:   "delete <productId>",
		Short: "Elimina un producto (el historial se conserva)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := h.resolveProject(cmd)
			if err != nil {
				return err
			}
			_, err = h.deps.Controller.Dispatch(cmd.Context(), inventory.DeleteProduct{ProjectID: p.ID, ProductID: args[0]})
			return err
		},
	}
	addProjectFlag(del)

	var query string
	list := &cobra.Command{
		Use:   "list",
		Short: "Lista productos, opcionalmente filtrados por título",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := h.resolveProject(cmd)
			if err != nil {
				return err
			}
			w := newTable(cmd.OutOrStdout())
			fmt.Fprintln(w, "ID\tTITLE\tMRP\tQTY\tCATEGORY")
			for _, prod := range analytics.Search(p, query) {
				fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\n",
					prod.ID, prod.Title, strconv.FormatFloat(prod.MRP, 'f', 2, 64), prod.Stock, prod.Category)
			}
			return w.Flush()
		},
	}
	list.Flags().StringVar(&query, "search", "", "texto a buscar en el título (sin distinguir mayúsculas)")
	addProjectFlag(list)

	cmd.AddCommand(add, edit, del, list)
	return cmd
}
