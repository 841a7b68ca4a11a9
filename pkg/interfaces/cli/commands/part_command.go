package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vsinha/catalog/pkg/application/dto"
	"github.com/vsinha/catalog/pkg/domain/entities"
)

type partFlags struct {
	kind      string
	name      string
	price     string
	stock     string
	min       string
	max       string
	machineID string
	company   string
}

func (f *partFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.kind, "kind", "inhouse", "Part kind: inhouse or outsourced")
	cmd.Flags().StringVar(&f.name, "name", "", "Part name")
	cmd.Flags().StringVar(&f.price, "price", "", "Unit price")
	cmd.Flags().StringVar(&f.stock, "stock", "", "Units on hand")
	cmd.Flags().StringVar(&f.min, "min", "", "Minimum stock level")
	cmd.Flags().StringVar(&f.max, "max", "", "Maximum stock level")
	cmd.Flags().StringVar(&f.machineID, "machine-id", "", "Machine id (inhouse parts)")
	cmd.Flags().StringVar(&f.company, "company", "", "Company name (outsourced parts)")
}

// apply overlays the flags the user set on top of base. A new part always
// takes its kind from the flag.
func (f *partFlags) apply(cmd *cobra.Command, base dto.PartInput, fresh bool) (dto.PartInput, error) {
	in := base
	changed := cmd.Flags().Changed

	if fresh || changed("kind") {
		kind, err := entities.ParsePartKind(f.kind)
		if err != nil {
			return dto.PartInput{}, err
		}
		if !fresh && kind != base.Kind {
			in.Label = ""
		}
		in.Kind = kind
	}
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
	switch in.Kind {
	case entities.KindInHouse:
		if changed("machine-id") {
			in.Label = f.machineID
		}
	case entities.KindOutsourced:
		if changed("company") {
			in.Label = f.company
		}
	}
	return in, nil
}

func partInputOf(p *entities.Part) dto.PartInput {
	return dto.PartInput{
		Kind:  p.Kind(),
		Name:  p.Name,
		Price: p.Price.String(),
		Stock: strconv.Itoa(p.Stock),
		Min:   strconv.Itoa(p.Min),
		Max:   strconv.Itoa(p.Max),
		Label: p.Label(),
	}
}

func newPartCommand(app *App, renderer rendererFunc) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "part",
		Short: "Manage parts",
	}
	cmd.AddCommand(
		newPartAddCommand(app, renderer),
		newPartModifyCommand(app, renderer),
		newPartFindCommand(app, renderer),
		newPartListCommand(app, renderer),
		newPartDeleteCommand(app, renderer),
	)
	return cmd
}

func newPartAddCommand(app *App, renderer rendererFunc) *cobra.Command {
	var flags partFlags
	cmd := &cobra.Command{
		Use:     "add",
		Short:   "Add a part",
		Example: "  catalog part add --kind inhouse --name bolt --price 2.99 --stock 5 --min 2 --max 300 --machine-id 4",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			in, err := flags.apply(cmd, dto.PartInput{}, true)
			if err != nil {
				return err
			}
			part, err := app.Service.CreatePart(cmd.Context(), in)
			if err != nil {
				return err
			}
			r, err := renderer(cmd)
			if err != nil {
				return err
			}
			return r.Parts([]dto.PartView{dto.NewPartView(part)})
		},
	}
	flags.register(cmd)
	return cmd
}

func newPartModifyCommand(app *App, renderer rendererFunc) *cobra.Command {
	var flags partFlags
	cmd := &cobra.Command{
		Use:     "modify <part-id>",
		Short:   "Modify a part; unset flags keep their current values",
		Example: "  catalog part modify 2 --kind inhouse --machine-id 7",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parsePartID(args[0])
			if err != nil {
				return err
			}
			current, ok := app.Service.FindPartByID(cmd.Context(), id)
			if !ok {
				return &entities.LookupError{Entity: entities.PartEntity, ByID: true}
			}
			in, err := flags.apply(cmd, partInputOf(current), false)
			if err != nil {
				return err
			}
			part, err := app.Service.ModifyPart(cmd.Context(), id, in)
			if err != nil {
				return err
			}
			r, err := renderer(cmd)
			if err != nil {
				return err
			}
			return r.Parts([]dto.PartView{dto.NewPartView(part)})
		},
	}
	flags.register(cmd)
	return cmd
}

func newPartFindCommand(app *App, renderer rendererFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "find <name-or-id>",
		Short: "Find parts by name substring, falling back to id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			parts, err := app.Service.LookupParts(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			r, err := renderer(cmd)
			if err != nil {
				return err
			}
			return r.Parts(dto.NewPartViews(parts))
		},
	}
}

func newPartListCommand(app *App, renderer rendererFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all parts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			r, err := renderer(cmd)
			if err != nil {
				return err
			}
			return r.Parts(dto.NewPartViews(app.Service.Parts()))
		},
	}
}

func newPartDeleteCommand(app *App, renderer rendererFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <part-id>",
		Short: "Delete a part; products that use it keep their reference",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parsePartID(args[0])
			if err != nil {
				return err
			}
			if err := app.Service.RemovePartByID(cmd.Context(), id); err != nil {
				return fmt.Errorf("part %d: %w", id, err)
			}
			r, err := renderer(cmd)
			if err != nil {
				return err
			}
			return r.Message("Part %d deleted.", id)
		},
	}
}
