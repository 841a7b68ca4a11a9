package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vsinha/catalog/pkg/application/dto"
	"github.com/vsinha/catalog/pkg/domain/entities"
)

type productFlags struct {
	name       string
	price      string
	stock      string
	min        string
	max        string
	parts      []string
	clearParts bool
}

func (f *productFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.name, "name", "", "Product name")
	cmd.Flags().StringVar(&f.price, "price", "", "Unit price")
	cmd.Flags().StringVar(&f.stock, "stock", "", "Units on hand")
	cmd.Flags().StringVar(&f.min, "min", "", "Minimum stock level")
	cmd.Flags().StringVar(&f.max, "max", "", "Maximum stock level")
	cmd.Flags().StringArrayVar(&f.parts, "part", nil, "Associated part id (repeatable)")
}

func (f *productFlags) apply(cmd *cobra.Command, base dto.ProductInput) dto.ProductInput {
	in := base
	changed := cmd.Flags().Changed
	if changed("name") {
		in.Name = f.name
	}
	if changed("price") {
		in.Price = f.price
	}
	if changed("stock") {
		in.Stock = f.stock
	}
	if changed("min") {
		in.Min = f.min
	}
	if changed("max") {
		in.Max = f.max
	}
	return in
}

// associations resolves --part ids against the catalog; an unknown id fails
func (f *productFlags) associations(cmd *cobra.Command, app *App) ([]*entities.Part, error) {
	parts := make([]*entities.Part, 0, len(f.parts))
	for _, raw := range f.parts {
		id, err := parsePartID(raw)
		if err != nil {
			return nil, err
		}
		part, ok := app.Service.FindPartByID(cmd.Context(), id)
		if !ok {
			return nil, fmt.Errorf("part %d: %w", id, &entities.LookupError{Entity: entities.PartEntity, ByID: true})
		}
		parts = append(parts, part)
	}
	return parts, nil
}

func productInputOf(p *entities.Product) dto.ProductInput {
	return dto.ProductInput{
		Name:  p.Name,
		Price: p.Price.String(),
		Stock: strconv.Itoa(p.Stock),
		Min:   strconv.Itoa(p.Min),
		Max:   strconv.Itoa(p.Max),
	}
}

func newProductCommand(app *App, renderer rendererFunc) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "product",
		Short: "Manage products and their associated parts",
	}
	cmd.AddCommand(
		newProductAddCommand(app, renderer),
		newProductModifyCommand(app, renderer),
		newProductFindCommand(app, renderer),
		newProductListCommand(app, renderer),
		newProductDeleteCommand(app, renderer),
		newProductAssociateCommand(app, renderer),
		newProductDissociateCommand(app, renderer),
	)
	return cmd
}

func newProductAddCommand(app *App, renderer rendererFunc) *cobra.Command {
	var flags productFlags
	cmd := &cobra.Command{
		Use:     "add",
		Short:   "Add a product",
		Example: "  catalog product add --name tool --price 99 --stock 3 --min 2 --max 4 --part 1 --part 2",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			associations, err := flags.associations(cmd, app)
			if err != nil {
				return err
			}
			product, err := app.Service.CreateProduct(cmd.Context(), flags.apply(cmd, dto.ProductInput{}), associations)
			if err != nil {
				return err
			}
			r, err := renderer(cmd)
			if err != nil {
				return err
			}
			return r.Products([]dto.ProductView{dto.NewProductView(product)})
		},
	}
	flags.register(cmd)
	return cmd
}

func newProductModifyCommand(app *App, renderer rendererFunc) *cobra.Command {
	var flags productFlags
	cmd := &cobra.Command{
		Use:   "modify <product-id>",
		Short: "Modify a product; unset flags keep their current values",
		Long: "Modify a product. Fields not given keep their current values. " +
			"--part replaces the associated parts; --clear-parts removes them all.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseProductID(args[0])
			if err != nil {
				return err
			}
			current, ok := app.Service.FindProductByID(cmd.Context(), id)
			if !ok {
				return &entities.LookupError{Entity: entities.ProductEntity, ByID: true}
			}

			associations := current.AssociatedParts()
			switch {
			case flags.clearParts:
				associations = nil
			case cmd.Flags().Changed("part"):
				if associations, err = flags.associations(cmd, app); err != nil {
					return err
				}
			}

			product, err := app.Service.ModifyProduct(cmd.Context(), id, flags.apply(cmd, productInputOf(current)), associations)
			if err != nil {
				return err
			}
			r, err := renderer(cmd)
			if err != nil {
				return err
			}
			return r.Products([]dto.ProductView{dto.NewProductView(product)})
		},
	}
	flags.register(cmd)
	cmd.Flags().BoolVar(&flags.clearParts, "clear-parts", false, "Remove every associated part")
	cmd.MarkFlagsMutuallyExclusive("part", "clear-parts")
	return cmd
}

func newProductFindCommand(app *App, renderer rendererFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "find <name-or-id>",
		Short: "Find products by name substring, falling back to id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			products, err := app.Service.LookupProducts(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			r, err := renderer(cmd)
			if err != nil {
				return err
			}
			return r.Products(dto.NewProductViews(products))
		},
	}
}

func newProductListCommand(app *App, renderer rendererFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all products",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			r, err := renderer(cmd)
			if err != nil {
				return err
			}
			return r.Products(dto.NewProductViews(app.Service.Products()))
		},
	}
}

func newProductDeleteCommand(app *App, renderer rendererFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <product-id>",
		Short: "Delete a product that has no associated parts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseProductID(args[0])
			if err != nil {
				return err
			}
			if err := app.Service.RemoveProductByID(cmd.Context(), id); err != nil {
				return fmt.Errorf("product %d: %w", id, err)
			}
			r, err := renderer(cmd)
			if err != nil {
				return err
			}
			return r.Message("Product %d deleted.", id)
		},
	}
}

func newProductAssociateCommand(app *App, renderer rendererFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "associate <product-id> <part-id>",
		Short: "Associate a catalog part with a product",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			productID, err := parseProductID(args[0])
			if err != nil {
				return err
			}
			partID, err := parsePartID(args[1])
			if err != nil {
				return err
			}
			if err := app.Service.AssociatePart(cmd.Context(), productID, partID); err != nil {
				return err
			}
			r, err := renderer(cmd)
			if err != nil {
				return err
			}
			return r.Message("Part %d associated with product %d.", partID, productID)
		},
	}
}

func newProductDissociateCommand(app *App, renderer rendererFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "dissociate <product-id> <part-id>",
		Short: "Remove one association of a part from a product",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			productID, err := parseProductID(args[0])
			if err != nil {
				return err
			}
			partID, err := parsePartID(args[1])
			if err != nil {
				return err
			}
			removed, err := app.Service.DissociatePart(cmd.Context(), productID, partID)
			if err != nil {
				return err
			}
			r, err := renderer(cmd)
			if err != nil {
				return err
			}
			if !removed {
				return r.Message("Part %d is not associated with product %d.", partID, productID)
			}
			return r.Message("Part %d removed from product %d.", partID, productID)
		},
	}
}
