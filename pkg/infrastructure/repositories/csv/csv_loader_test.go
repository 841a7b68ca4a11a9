package csv

import (
	"bytes"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vsinha/catalog/pkg/domain/entities"
)

func TestLoader_LoadParts(t *testing.T) {
	data := "kind,name,price,stock,min,max,label\n" +
		"inhouse,bolt,2.99,5,2,300,4\n" +
		"outsourced,nail,0.75,50,3,500,Nail Co\n"

	seeds, err := NewLoader().LoadParts(strings.NewReader(data))
	require.NoError(t, err)
	require.Len(t, seeds, 2)

	assert.Equal(t, entities.KindInHouse, seeds[0].Part.Kind)
	assert.Equal(t, "bolt", seeds[0].Part.Name)
	assert.Equal(t, "2.99", seeds[0].Part.Price)
	assert.Equal(t, "4", seeds[0].Part.Label)
	assert.Empty(t, seeds[0].Ref)
	assert.False(t, seeds[0].Detached)

	assert.Equal(t, entities.KindOutsourced, seeds[1].Part.Kind)
	assert.Equal(t, "Nail Co", seeds[1].Part.Label)
}

func TestLoader_LoadParts_RefAndDetached(t *testing.T) {
	data := "ref,kind,name,price,stock,min,max,label,detached\n" +
		"b,inhouse,bolt,2.99,5,2,300,4,false\n" +
		"old,outsourced,nail,0.75,50,3,500,Nail Co,true\n"

	seeds, err := NewLoader().LoadParts(strings.NewReader(data))
	require.NoError(t, err)
	require.Len(t, seeds, 2)
	assert.Equal(t, "b", seeds[0].Ref)
	assert.False(t, seeds[0].Detached)
	assert.Equal(t, "old", seeds[1].Ref)
	assert.True(t, seeds[1].Detached)

	_, err = NewLoader().LoadParts(strings.NewReader(
		"kind,name,price,stock,min,max,label,detached\ninhouse,bolt,1,1,1,1,1,maybe\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "detached")
}

func TestLoader_LoadParts_UnknownKind(t *testing.T) {
	data := "kind,name,price,stock,min,max,label\n" +
		"borrowed,bolt,2.99,5,2,300,4\n"

	_, err := NewLoader().LoadParts(strings.NewReader(data))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row 2")
}

func TestLoader_LoadProducts(t *testing.T) {
	data := "name,price,stock,min,max,parts\n" +
		"tool,99,3,2,4,1; 2\n" +
		"phone,99,3,2,4,\n"

	seeds, err := NewLoader().LoadProducts(strings.NewReader(data))
	require.NoError(t, err)
	require.Len(t, seeds, 2)

	assert.Equal(t, "tool", seeds[0].Product.Name)
	assert.Equal(t, []string{"1", "2"}, seeds[0].Parts)
	assert.Equal(t, "phone", seeds[1].Product.Name)
	assert.Empty(t, seeds[1].Parts)
}

func TestLoader_LoadPartsFile_Missing(t *testing.T) {
	_, err := NewLoader().LoadPartsFile("does-not-exist.csv")
	require.Error(t, err)
}

func TestExporter_Snapshot(t *testing.T) {
	bolt, err := entities.NewPart(1, "bolt", decimal.RequireFromString("2.99"), 5, 2, 300, entities.InHouse{MachineID: 4})
	require.NoError(t, err)
	nail, err := entities.NewPart(2, "nut;washer", decimal.RequireFromString("0.75"), 50, 3, 500, entities.Outsourced{CompanyName: "Nail Co"})
	require.NoError(t, err)
	gone, err := entities.NewPart(3, "bolt", decimal.NewFromInt(1), 1, 1, 1, entities.InHouse{MachineID: 9})
	require.NoError(t, err)

	tool, err := entities.NewProduct(1, "tool", decimal.NewFromInt(99), 3, 2, 4)
	require.NoError(t, err)
	tool.AddAssociatedPart(nail)
	tool.AddAssociatedPart(gone)
	tool.AddAssociatedPart(bolt)
	tool.AddAssociatedPart(gone)

	snapshot := NewExporter().Snapshot([]*entities.Part{bolt, nail}, []*entities.Product{tool})
	loader := NewLoader()

	var parts bytes.Buffer
	require.NoError(t, snapshot.WriteParts(&parts))
	assert.True(t, strings.HasPrefix(parts.String(), "ref,id,kind,name,price,stock,min,max,label,detached"))

	partSeeds, err := loader.LoadParts(&parts)
	require.NoError(t, err)
	require.Len(t, partSeeds, 3)
	assert.Equal(t, "1", partSeeds[0].Ref)
	assert.Equal(t, "nut;washer", partSeeds[1].Part.Name)
	assert.Equal(t, "Nail Co", partSeeds[1].Part.Label)
	assert.Equal(t, "3", partSeeds[2].Ref)
	assert.True(t, partSeeds[2].Detached)
	assert.Equal(t, "9", partSeeds[2].Part.Label)

	var products bytes.Buffer
	require.NoError(t, snapshot.WriteProducts(&products))

	productSeeds, err := loader.LoadProducts(&products)
	require.NoError(t, err)
	require.Len(t, productSeeds, 1)
	assert.Equal(t, "99", productSeeds[0].Product.Price)
	assert.Equal(t, []string{"2", "3", "1", "3"}, productSeeds[0].Parts)
}
