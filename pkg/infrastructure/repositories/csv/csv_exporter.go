package csv

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/gocarina/gocsv"

	"github.com/vsinha/catalog/pkg/domain/entities"
)

type partExportRow struct {
	Ref      string `csv:"ref"`
	ID       int    `csv:"id"`
	Kind     string `csv:"kind"`
	Name     string `csv:"name"`
	Price    string `csv:"price"`
	Stock    int    `csv:"stock"`
	Min      int    `csv:"min"`
	Max      int    `csv:"max"`
	Label    string `csv:"label"`
	Detached bool   `csv:"detached"`
}

type productExportRow struct {
	ID    int    `csv:"id"`
	Name  string `csv:"name"`
	Price string `csv:"price"`
	Stock int    `csv:"stock"`
	Min   int    `csv:"min"`
	Max   int    `csv:"max"`
	Parts string `csv:"parts"`
}

// Exporter writes the catalog in the format the Loader reads back
type Exporter struct{}

// NewExporter creates a new CSV exporter
func NewExporter() *Exporter {
	return &Exporter{}
}

// Snapshot is a catalog prepared for export. Every distinct part record gets
// one parts row with a positional ref, and product rows list those refs.
// Records that products reference but the catalog no longer holds follow
// the catalog parts, marked detached.
type Snapshot struct {
	parts    []partExportRow
	products []productExportRow
}

// Snapshot assigns refs to the given parts and products
func (e *Exporter) Snapshot(parts []*entities.Part, products []*entities.Product) *Snapshot {
	s := &Snapshot{
		parts:    make([]partExportRow, 0, len(parts)),
		products: make([]productExportRow, 0, len(products)),
	}
	refs := make(map[*entities.Part]string, len(parts))

	refOf := func(p *entities.Part, detached bool) string {
		if ref, ok := refs[p]; ok {
			return ref
		}
		ref := strconv.Itoa(len(s.parts) + 1)
		refs[p] = ref
		s.parts = append(s.parts, partExportRow{
			Ref:      ref,
			ID:       int(p.ID),
			Kind:     p.Kind().String(),
			Name:     p.Name,
			Price:    p.Price.String(),
			Stock:    p.Stock,
			Min:      p.Min,
			Max:      p.Max,
			Label:    p.Label(),
			Detached: detached,
		})
		return ref
	}

	for _, p := range parts {
		refOf(p, false)
	}
	for _, p := range products {
		associated := p.AssociatedParts()
		partRefs := make([]string, 0, len(associated))
		for _, part := range associated {
			partRefs = append(partRefs, refOf(part, true))
		}
		s.products = append(s.products, productExportRow{
			ID:    int(p.ID),
			Name:  p.Name,
			Price: p.Price.String(),
			Stock: p.Stock,
			Min:   p.Min,
			Max:   p.Max,
			Parts: strings.Join(partRefs, PartsSeparator),
		})
	}
	return s
}

// WriteParts writes the parts table
func (s *Snapshot) WriteParts(w io.Writer) error {
	if err := gocsv.Marshal(&s.parts, w); err != nil {
		return fmt.Errorf("failed to write parts CSV: %w", err)
	}
	return nil
}

// WriteProducts writes the products table
func (s *Snapshot) WriteProducts(w io.Writer) error {
	if err := gocsv.Marshal(&s.products, w); err != nil {
		return fmt.Errorf("failed to write products CSV: %w", err)
	}
	return nil
}
