package csv

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/gocarina/gocsv"

	"github.com/vsinha/catalog/pkg/application/dto"
	"github.com/vsinha/catalog/pkg/domain/entities"
)

// partRow is one line of a parts seed file. Values stay raw strings so that
// they go through the same validation as interactive input. An exported id
// column is informational and ignored; ids are reassigned on load.
type partRow struct {
	Ref      string `csv:"ref"`
	Detached string `csv:"detached"`
	Kind     string `csv:"kind"`
	Name     string `csv:"name"`
	Price    string `csv:"price"`
	Stock    string `csv:"stock"`
	Min      string `csv:"min"`
	Max      string `csv:"max"`
	Label    string `csv:"label"`
}

// productRow is one line of a products seed file. Parts holds part refs
// separated by PartsSeparator.
type productRow struct {
	Name  string `csv:"name"`
	Price string `csv:"price"`
	Stock string `csv:"stock"`
	Min   string `csv:"min"`
	Max   string `csv:"max"`
	Parts string `csv:"parts"`
}

// PartsSeparator splits the part refs of a product row
const PartsSeparator = ";"

// Loader handles loading catalog seed data from CSV files
type Loader struct{}

// NewLoader creates a new CSV loader
func NewLoader() *Loader {
	return &Loader{}
}

// LoadParts reads part seeds from CSV with a kind,name,price,stock,min,max,label
// header. The optional ref column names the row for product rows and
// defaults to the row position; the optional detached column marks parts
// that only products still reference.
func (l *Loader) LoadParts(r io.Reader) ([]dto.PartSeed, error) {
	var rows []*partRow
	if err := gocsv.Unmarshal(r, &rows); err != nil {
		return nil, fmt.Errorf("failed to read parts CSV: %w", err)
	}

	seeds := make([]dto.PartSeed, 0, len(rows))
	for i, row := range rows {
		kind, err := entities.ParsePartKind(row.Kind)
		if err != nil {
			return nil, fmt.Errorf("parts CSV row %d: %w", i+2, err)
		}
		detached := false
		if row.Detached != "" {
			if detached, err = strconv.ParseBool(row.Detached); err != nil {
				return nil, fmt.Errorf("parts CSV row %d: invalid detached value %q", i+2, row.Detached)
			}
		}
		seeds = append(seeds, dto.PartSeed{
			Part: dto.PartInput{
				Kind:  kind,
				Name:  row.Name,
				Price: row.Price,
				Stock: row.Stock,
				Min:   row.Min,
				Max:   row.Max,
				Label: row.Label,
			},
			Ref:      row.Ref,
			Detached: detached,
		})
	}
	return seeds, nil
}

// LoadProducts reads product seeds from CSV with a name,price,stock,min,max,parts header
func (l *Loader) LoadProducts(r io.Reader) ([]dto.ProductSeed, error) {
	var rows []*productRow
	if err := gocsv.Unmarshal(r, &rows); err != nil {
		return nil, fmt.Errorf("failed to read products CSV: %w", err)
	}

	seeds := make([]dto.ProductSeed, 0, len(rows))
	for _, row := range rows {
		seeds = append(seeds, dto.ProductSeed{
			Product: dto.ProductInput{
				Name:  row.Name,
				Price: row.Price,
				Stock: row.Stock,
				Min:   row.Min,
				Max:   row.Max,
			},
			Parts: splitParts(row.Parts),
		})
	}
	return seeds, nil
}

// LoadPartsFile opens filename and reads part seeds from it
func (l *Loader) LoadPartsFile(filename string) ([]dto.PartSeed, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open parts file %s: %w", filename, err)
	}
	defer file.Close()
	return l.LoadParts(file)
}

// LoadProductsFile opens filename and reads product seeds from it
func (l *Loader) LoadProductsFile(filename string) ([]dto.ProductSeed, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open products file %s: %w", filename, err)
	}
	defer file.Close()
	return l.LoadProducts(file)
}

func splitParts(field string) []string {
	if strings.TrimSpace(field) == "" {
		return nil
	}
	refs := strings.Split(field, PartsSeparator)
	for i := range refs {
		refs[i] = strings.TrimSpace(refs[i])
	}
	return refs
}
