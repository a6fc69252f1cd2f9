// Package report writes the temperature sweep as a PDF document.
package report

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/cwbudde/algo-blackbody/radiation/sweep"
	"github.com/jung-kurt/gofpdf"
	"github.com/pkg/errors"
)

const (
	pageMargin   = 15.0 // mm
	lineHeight   = 6.0  // mm
	figureAspect = 450.0 / 800.0
)

// Figure is a PNG image placed on its own page.
type Figure struct {
	Title string
	PNG   []byte
}

var summaryHeaders = []string{"T (K)", "Trapezoid (W)", "Simpson (W)", "Quad (W)", "Peak (Hz)", "Peak (W/Hz)"}

// WriteSweep renders a summary table of res followed by one page per
// figure and writes the PDF to w.
func WriteSweep(w io.Writer, res *sweep.Result, figures []Figure) error {
	if res == nil {
		return errors.New("report: nil sweep result")
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.SetTitle("Blackbody temperature sweep", false)
	pdf.SetCreator("blackbody", false)
	pdf.SetFooterFunc(func() {
		pdf.SetY(-pageMargin)
		pdf.SetFont("Arial", "I", 8)
		pdf.CellFormat(0, lineHeight, fmt.Sprintf("Page %d", pdf.PageNo()), "", 0, "C", false, 0, "")
	})

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 2*pageMargin

	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(contentW, 10, "Blackbody temperature sweep", "", 1, "C", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont("Arial", "", 10)
	pdf.MultiCell(contentW, lineHeight, sweepSummary(res), "", "L", false)
	pdf.Ln(4)

	writeTable(pdf, contentW, res.Rows)

	for i, fig := range figures {
		if len(fig.PNG) == 0 {
			continue
		}
		pdf.AddPage()
		pdf.SetFont("Arial", "B", 14)
		pdf.CellFormat(contentW, 10, fig.Title, "", 1, "L", false, 0, "")

		name := fmt.Sprintf("figure-%d", i)
		opts := gofpdf.ImageOptions{ImageType: "PNG"}
		pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(fig.PNG))
		pdf.ImageOptions(name, pageMargin, pdf.GetY()+2, contentW, contentW*figureAspect, false, opts, 0, "")
	}

	if err := pdf.Output(w); err != nil {
		return errors.Wrap(err, "report: write pdf")
	}
	return nil
}

// WriteSweepFile writes the report to path.
func WriteSweepFile(path string, res *sweep.Result, figures []Figure) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "report: create file")
	}
	if err := WriteSweep(f, res, figures); err != nil {
		f.Close()
		return err
	}
	return errors.Wrap(f.Close(), "report: close file")
}

func sweepSummary(res *sweep.Result) string {
	if len(res.Frequencies) == 0 {
		return fmt.Sprintf("%d temperatures.", len(res.Rows))
	}
	n := len(res.Frequencies)
	return fmt.Sprintf("%d temperatures, radiance sampled at %d log-spaced frequencies from %.3g Hz to %.3g Hz. "+
		"Trapezoid and Simpson integrate the sampled curve; Quad integrates the full band adaptively.",
		len(res.Rows), n, res.Frequencies[0], res.Frequencies[n-1])
}

func writeTable(pdf *gofpdf.Fpdf, width float64, rows []sweep.Row) {
	colW := width / float64(len(summaryHeaders))

	pdf.SetFont("Arial", "B", 9)
	pdf.SetFillColor(200, 200, 200)
	for _, h := range summaryHeaders {
		pdf.CellFormat(colW, lineHeight, h, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 9)
	for _, row := range rows {
		cells := []string{
			fmt.Sprintf("%.0f", row.Temperature),
			fmt.Sprintf("%.4e", row.Trapezoid),
			fmt.Sprintf("%.4e", row.Simpson),
			fmt.Sprintf("%.4e", row.Quad),
			fmt.Sprintf("%.4e", row.PeakFrequency),
			fmt.Sprintf("%.4e", row.PeakRadiance),
		}
		for _, c := range cells {
			pdf.CellFormat(colW, lineHeight, c, "1", 0, "R", false, 0, "")
		}
		pdf.Ln(-1)
	}
}
