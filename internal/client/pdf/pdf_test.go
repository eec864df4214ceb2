package pdf

import (
	"testing"

	lpdf "github.com/ledongthuc/pdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/you-humble/ge-sync/internal/model"
	"github.com/you-humble/ge-sync/platform/pdflayout"
)

func glyphs(s string, x, y, size float64) []lpdf.Text {
	out := make([]lpdf.Text, 0, len(s))
	for _, r := range s {
		out = append(out, lpdf.Text{S: string(r), X: x, Y: y, W: size * 0.5, FontSize: size})
		x += size * 0.5
	}
	return out
}

func TestFragments(t *testing.T) {
	t.Parallel()

	var in []lpdf.Text
	in = append(in, glyphs("Inbound Shipment", 20, 600, 8)...)
	in = append(in, glyphs("Model", 110, 600.02, 8)...)
	in = append(in, glyphs("A1234567-1", 20, 580, 8)...)
	in = append(in, glyphs(" ", 70, 580, 8)...)

	got := Fragments(in)
	require.Len(t, got, 3)
	assert.Equal(t, pdflayout.Fragment{Text: "Inbound Shipment", X: 20, Y: 600}, got[0])
	assert.Equal(t, pdflayout.Fragment{Text: "Model", X: 110, Y: 600}, got[1])
	assert.Equal(t, pdflayout.Fragment{Text: "A1234567-1", X: 20, Y: 580}, got[2])
}

func TestFragmentsEstimatesMissingWidth(t *testing.T) {
	t.Parallel()

	in := []lpdf.Text{
		{S: "Q", X: 10, Y: 5, FontSize: 10},
		{S: "t", X: 15, Y: 5, FontSize: 10},
		{S: "y", X: 20, Y: 5, FontSize: 10},
		{S: "7", X: 60, Y: 5, FontSize: 10},
	}

	got := Fragments(in)
	require.Len(t, got, 2)
	assert.Equal(t, "Qty", got[0].Text)
	assert.Equal(t, "7", got[1].Text)
	assert.Equal(t, 60.0, got[1].X)
}

func TestReadRejectsGarbage(t *testing.T) {
	t.Parallel()

	_, _, err := NewReader().Read([]byte("<html>not a pdf</html>"))
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrPDFParse)
}
