package export

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hubastard/easel/engine/ui"
)

func TestPaintingPDFWritesDocument(t *testing.T) {
	p := ui.NewPainting()
	region := ui.Rect{W: 300, H: 200}
	p.Update(ui.PointerState{Pos: ui.Vec2{X: 10, Y: 10}, Held: true}, region)
	p.Update(ui.PointerState{Pos: ui.Vec2{X: 60, Y: 40}, Held: true}, region)
	p.Update(ui.PointerState{}, region)

	path := filepath.Join(t.TempDir(), "out.pdf")
	require.NoError(t, PaintingPDF(path, p))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, len(b) > 4 && string(b[:5]) == "%PDF-", "missing PDF header")
}

func TestPaintingPDFEmptyPainting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.pdf")
	require.NoError(t, PaintingPDF(path, ui.NewPainting()))

	st, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, st.Size(), int64(0))
}

func TestPaintingPDFBadPath(t *testing.T) {
	err := PaintingPDF(filepath.Join(t.TempDir(), "no", "such", "dir.pdf"), ui.NewPainting())
	assert.Error(t, err)
}
