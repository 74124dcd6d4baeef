package export

import (
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"github.com/hubastard/easel/engine/ui"
)

// pxPerMM maps canvas pixels onto A4 millimeters so a 300px canvas fits a page.
const pxPerMM = 3.0

// PaintingPDF writes every closed polyline of p as line segments into a
// one-page A4 PDF at path, using the painting's current stroke.
func PaintingPDF(path string, p *ui.Painting) error {
	doc := gofpdf.New("P", "mm", "A4", "")
	doc.AddPage()

	st := p.Stroke()
	r, g, b := st.Color.RGB8()
	doc.SetDrawColor(int(r), int(g), int(b))
	doc.SetLineWidth(float64(st.Width) / pxPerMM)

	for _, line := range p.Lines() {
		for i := 1; i < len(line); i++ {
			doc.Line(
				float64(line[i-1].X)/pxPerMM, float64(line[i-1].Y)/pxPerMM,
				float64(line[i].X)/pxPerMM, float64(line[i].Y)/pxPerMM,
			)
		}
	}

	if err := doc.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("write pdf %s: %w", path, err)
	}
	return nil
}
