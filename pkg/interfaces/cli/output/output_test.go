package output

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/vsinha/catalog/pkg/application/dto"
)

func sampleParts() []dto.PartView {
	return []dto.PartView{
		{ID: 1, Kind: "InHouse", Name: "bolt", Price: "2.99", Stock: 5, Min: 2, Max: 300, MachineID: lo.ToPtr(4)},
		{ID: 2, Kind: "Outsourced", Name: "nail", Price: "0.75", Stock: 50, Min: 3, Max: 500, CompanyName: "Nail Co"},
	}
}

func TestNewRenderer(t *testing.T) {
	tests := []struct {
		format  string
		want    string
		wantErr bool
	}{
		{"text", FormatText, false},
		{"json", FormatJSON, false},
		{"yaml", FormatYAML, false},
		{"", FormatText, false},
		{"xml", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			r, err := NewRenderer(&bytes.Buffer{}, tt.format)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, r.Format())
		})
	}
}

func TestRenderer_PartsText(t *testing.T) {
	var buf bytes.Buffer
	r, err := NewRenderer(&buf, FormatText)
	require.NoError(t, err)

	require.NoError(t, r.Parts(sampleParts()))
	out := buf.String()
	assert.Contains(t, out, "bolt")
	assert.Contains(t, out, "Nail Co")
	assert.Contains(t, out, "Machine/Company")
}

func TestRenderer_EmptyText(t *testing.T) {
	var buf bytes.Buffer
	r, err := NewRenderer(&buf, FormatText)
	require.NoError(t, err)

	require.NoError(t, r.Parts(nil))
	require.NoError(t, r.Products(nil))
	assert.Equal(t, "No parts.\nNo products.\n", buf.String())
}

func TestRenderer_ProductsJSON(t *testing.T) {
	var buf bytes.Buffer
	r, err := NewRenderer(&buf, FormatJSON)
	require.NoError(t, err)

	products := []dto.ProductView{{ID: 1, Name: "tool", Price: "99", Stock: 3, Min: 2, Max: 4, AssociatedParts: sampleParts()}}
	require.NoError(t, r.Products(products))

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 1)
	assert.Equal(t, "tool", decoded[0]["name"])
	assert.Len(t, decoded[0]["associated_parts"], 2)
}

func TestRenderer_PartsYAML(t *testing.T) {
	var buf bytes.Buffer
	r, err := NewRenderer(&buf, FormatYAML)
	require.NoError(t, err)

	require.NoError(t, r.Parts(sampleParts()))

	var decoded []map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 2)
	assert.Equal(t, 4, decoded[0]["machine_id"])
	assert.Equal(t, "Nail Co", decoded[1]["company_name"])
	assert.NotContains(t, decoded[0], "label")
}

func TestRenderer_Message(t *testing.T) {
	var buf bytes.Buffer
	r, err := NewRenderer(&buf, FormatJSON)
	require.NoError(t, err)

	require.NoError(t, r.Message("deleted part %d", 3))
	assert.JSONEq(t, `{"message":"deleted part 3"}`, buf.String())
}
