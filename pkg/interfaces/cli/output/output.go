package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/vsinha/catalog/pkg/application/dto"
)

// Supported formats
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Renderer writes catalog views in one format
type Renderer struct {
	w      io.Writer
	format string
}

// NewRenderer creates a renderer; an unknown format is rejected
func NewRenderer(w io.Writer, format string) (*Renderer, error) {
	switch format {
	case FormatText, FormatJSON, FormatYAML:
	case "":
		format = FormatText
	default:
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}
	return &Renderer{w: w, format: format}, nil
}

// Format reports the format in use
func (r *Renderer) Format() string {
	return r.format
}

// Parts renders a list of parts
func (r *Renderer) Parts(parts []dto.PartView) error {
	switch r.format {
	case FormatJSON:
		return r.writeJSON(parts)
	case FormatYAML:
		return r.writeYAML(parts)
	}

	if len(parts) == 0 {
		fmt.Fprintln(r.w, "No parts.")
		return nil
	}
	r.partHeader("")
	for _, p := range parts {
		r.partRow("", p)
	}
	return nil
}

// Products renders a list of products with their associated parts
func (r *Renderer) Products(products []dto.ProductView) error {
	switch r.format {
	case FormatJSON:
		return r.writeJSON(products)
	case FormatYAML:
		return r.writeYAML(products)
	}

	if len(products) == 0 {
		fmt.Fprintln(r.w, "No products.")
		return nil
	}
	fmt.Fprintf(r.w, "%-6s %-20s %-10s %-8s %-8s %-8s %-6s\n",
		"ID", "Name", "Price", "Stock", "Min", "Max", "Parts")
	fmt.Fprintf(r.w, "%-6s %-20s %-10s %-8s %-8s %-8s %-6s\n",
		"------", "--------------------", "----------", "--------", "--------", "--------", "------")
	for _, p := range products {
		fmt.Fprintf(r.w, "%-6d %-20s %-10s %-8d %-8d %-8d %-6d\n",
			p.ID, p.Name, p.Price, p.Stock, p.Min, p.Max, len(p.AssociatedParts))
		if len(p.AssociatedParts) > 0 {
			r.partHeader("    ")
			for _, part := range p.AssociatedParts {
				r.partRow("    ", part)
			}
		}
	}
	return nil
}

// Message writes a plain line in text mode and a status object otherwise
func (r *Renderer) Message(format string, args ...any) error {
	msg := fmt.Sprintf(format, args...)
	switch r.format {
	case FormatJSON:
		return r.writeJSON(map[string]string{"message": msg})
	case FormatYAML:
		return r.writeYAML(map[string]string{"message": msg})
	}
	_, err := fmt.Fprintln(r.w, msg)
	return err
}

// Value writes v as JSON or YAML. Text callers lay out their own tables.
func (r *Renderer) Value(v any) error {
	if r.format == FormatYAML {
		return r.writeYAML(v)
	}
	return r.writeJSON(v)
}

func (r *Renderer) partHeader(indent string) {
	fmt.Fprintf(r.w, "%s%-6s %-11s %-20s %-10s %-8s %-8s %-8s %-20s\n",
		indent, "ID", "Kind", "Name", "Price", "Stock", "Min", "Max", "Machine/Company")
	fmt.Fprintf(r.w, "%s%-6s %-11s %-20s %-10s %-8s %-8s %-8s %-20s\n",
		indent, "------", "-----------", "--------------------", "----------", "--------", "--------", "--------", "--------------------")
}

func (r *Renderer) partRow(indent string, p dto.PartView) {
	fmt.Fprintf(r.w, "%s%-6d %-11s %-20s %-10s %-8d %-8d %-8d %-20s\n",
		indent, p.ID, p.Kind, p.Name, p.Price, p.Stock, p.Min, p.Max, originLabel(p))
}

func originLabel(p dto.PartView) string {
	if p.MachineID != nil {
		return strconv.Itoa(*p.MachineID)
	}
	return p.CompanyName
}

func (r *Renderer) writeJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	if _, err := fmt.Fprintln(r.w, string(data)); err != nil {
		return fmt.Errorf("failed to write JSON: %w", err)
	}
	return nil
}

func (r *Renderer) writeYAML(v any) error {
	enc := yaml.NewEncoder(r.w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to marshal YAML: %w", err)
	}
	return enc.Close()
}
