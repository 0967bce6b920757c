package report

import (
	"bytes"
	"fmt"
	"strconv"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/autoscience/autoscience/internal/domain"
)

// US-letter page in points, chart confined to the upper half.
const (
	pageWidth  = 612.0
	plotLeft   = 96.0
	plotRight  = 541.0
	plotTop    = 130.0
	plotBottom = 396.0
	titleTop   = 60.0
)

// Render produces the report PDF: one page per question, a bar chart
// whose categories are the question's choice texts and whose heights
// are the counts for letters 'a','b','c',... in index order. Missing
// letters render as zero bars. Creation date is pinned so identical
// input yields identical bytes.
func Render(questions []domain.Question, tally []Counts) ([]byte, error) {
	if len(tally) != len(questions) {
		return nil, fmt.Errorf("tally has %d entries for %d questions", len(tally), len(questions))
	}

	pdf := fpdf.New("P", "pt", "Letter", "")
	pdf.SetCreationDate(time.Unix(0, 0).UTC())
	pdf.SetModificationDate(time.Unix(0, 0).UTC())
	pdf.SetTitle("Survey Report", false)
	pdf.SetAutoPageBreak(false, 0)

	for i, q := range questions {
		renderPage(pdf, i+1, q, tally[i])
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("rendering report pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func renderPage(pdf *fpdf.Fpdf, num int, q domain.Question, counts Counts) {
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 13)
	pdf.SetXY(54, titleTop)
	pdf.MultiCell(pageWidth-108, 16, fmt.Sprintf("Q%d: %s", num, q.Text), "", "C", false)

	pdf.SetFont("Helvetica", "", 10)
	pdf.Text(plotLeft, plotTop-14, "Number of Responses")

	// Axes
	pdf.SetDrawColor(60, 60, 60)
	pdf.SetLineWidth(0.8)
	pdf.Line(plotLeft, plotBottom, plotRight, plotBottom)
	pdf.Line(plotLeft, plotTop, plotLeft, plotBottom)

	heights := barHeights(len(q.Choices), counts)
	maxCount := 0
	for _, h := range heights {
		if h > maxCount {
			maxCount = h
		}
	}
	scaleMax := maxCount
	if scaleMax == 0 {
		scaleMax = 1
	}

	drawTicks(pdf, scaleMax)

	if len(q.Choices) == 0 {
		return
	}

	slot := (plotRight - plotLeft) / float64(len(q.Choices))
	barWidth := slot * 0.6
	pdf.SetFillColor(66, 114, 196)

	for i, choice := range q.Choices {
		count := heights[i]
		barHeight := float64(count) / float64(scaleMax) * (plotBottom - plotTop)
		x := plotLeft + float64(i)*slot + (slot-barWidth)/2
		pdf.Rect(x, plotBottom-barHeight, barWidth, barHeight, "F")

		// Count above the bar
		pdf.SetFont("Helvetica", "", 9)
		label := strconv.Itoa(count)
		pdf.Text(x+barWidth/2-pdf.GetStringWidth(label)/2, plotBottom-barHeight-4, label)

		// Wrapped category label under the bar
		pdf.SetFont("Helvetica", "", 10)
		pdf.SetXY(plotLeft+float64(i)*slot+2, plotBottom+8)
		pdf.MultiCell(slot-4, 12, choice, "", "C", false)
	}
}

// barHeights resolves counts for letters 'a'..'x' by choice index.
func barHeights(numChoices int, counts Counts) []int {
	heights := make([]int, numChoices)
	for i := range heights {
		heights[i] = counts[domain.Letter(i)]
	}
	return heights
}

func drawTicks(pdf *fpdf.Fpdf, scaleMax int) {
	step := 1
	if scaleMax > 10 {
		step = (scaleMax + 4) / 5
	}
	pdf.SetFont("Helvetica", "", 9)
	for t := 0; t <= scaleMax; t += step {
		y := plotBottom - float64(t)/float64(scaleMax)*(plotBottom-plotTop)
		label := strconv.Itoa(t)
		pdf.Text(plotLeft-8-pdf.GetStringWidth(label), y+3, label)
		pdf.Line(plotLeft-4, y, plotLeft, y)
	}
}
