package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseStringListAcceptedShapes(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want StringList
	}{
		{"empty", "", nil},
		{"json single string", `"M"`, StringList{"M"}},
		{"json string array", `["S","M","L"]`, StringList{"S", "M", "L"}},
		{"json object array with name", `[{"name":"S"},{"name":"M"}]`, StringList{"S", "M"}},
		{"json object array with value", `[{"value":"Red"}]`, StringList{"Red"}},
		{"plain comma separated", "S, M ,L", StringList{"S", "M", "L"}},
		{"plain single token", "Navy", StringList{"Navy"}},
		{"blank elements dropped", `["S","","M"]`, StringList{"S", "M"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseStringList(tt.raw)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestParseStringListRejectsUnknownShapes(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"bare object", `{"size":"M"}`},
		{"array of numbers", `[1,2,3]`},
		{"object without name or value", `[{"label":"S"}]`},
		{"broken json", `["S",`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseStringList(tt.raw)
			require.Error(t, err)
		})
	}
}

func TestStringListSQLRoundtrip(t *testing.T) {
	list := StringList{"S", "M"}

	value, err := list.Value()
	require.NoError(t, err)

	var scanned StringList
	require.NoError(t, scanned.Scan(value))
	require.Equal(t, list, scanned)
}

func TestCartLineItemSameIdentity(t *testing.T) {
	a := CartLineItem{ProductID: 1, Size: "M", Color: "black", Quantity: 1}

	require.True(t, a.SameIdentity(CartLineItem{ProductID: 1, Size: "M", Color: "black", Quantity: 9}))
	require.False(t, a.SameIdentity(CartLineItem{ProductID: 1, Size: "L", Color: "black"}))
	require.False(t, a.SameIdentity(CartLineItem{ProductID: 2, Size: "M", Color: "black"}))
}

func TestProductVariantChecks(t *testing.T) {
	p := Product{Sizes: StringList{"S", "M"}, Colors: nil}

	require.True(t, p.HasSize("M"))
	require.False(t, p.HasSize("XL"))
	// An empty attribute list accepts any requested value.
	require.True(t, p.HasColor("chartreuse"))
}
