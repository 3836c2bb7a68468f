package report

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"time"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Chart canvas layout.
const (
	chartWidth  = 960
	chartHeight = 640
	margin      = 40
)

var (
	colBackground = color.RGBA{255, 255, 255, 255}
	colInk        = color.RGBA{15, 23, 42, 255}
	colMuted      = color.RGBA{100, 116, 139, 255}
	colGrid       = color.RGBA{226, 232, 240, 255}
	colFound      = color.RGBA{37, 99, 235, 255}
	colClaimed    = color.RGBA{5, 150, 105, 255}
	colBar        = color.RGBA{51, 65, 85, 255}
)

// maxBars limits the category chart to the most frequent categories.
const maxBars = 8

// RenderPNG renders the report view (headline summary, category bars and the
// trailing daily series) into a PNG. It is the server-side replacement for
// the console's printable report export.
func RenderPNG(s Summary, cats []CategoryCount, daily []DailyRow, today time.Time) ([]byte, error) {
	img := image.NewRGBA(image.Rect(0, 0, chartWidth, chartHeight))
	draw.Draw(img, img.Bounds(), image.NewUniform(colBackground), image.Point{}, draw.Src)

	drawText(img, margin, 30, colInk, "Lost & Found Report")
	drawText(img, margin, 48, colMuted, today.Format("2006-01-02"))
	drawText(img, margin, 76, colInk, fmt.Sprintf(
		"total %d   found %d   stored %d   claimed %d   claim rate %d%%   avg days to claim %d",
		s.Total, s.Found, s.Stored, s.Claimed, s.ClaimRate, s.AvgDaysToClaim,
	))

	drawCategoryBars(img, cats, image.Rect(margin, 110, chartWidth-margin, 340))
	drawDailySeries(img, daily, image.Rect(margin, 380, chartWidth-margin, chartHeight-margin))

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encoding chart: %w", err)
	}
	return buf.Bytes(), nil
}

// drawCategoryBars draws a horizontal bar per category, count-labelled.
func drawCategoryBars(img *image.RGBA, cats []CategoryCount, area image.Rectangle) {
	drawText(img, area.Min.X, area.Min.Y-8, colMuted, "items by category")
	if len(cats) > maxBars {
		cats = cats[:maxBars]
	}
	if len(cats) == 0 {
		drawText(img, area.Min.X, area.Min.Y+16, colMuted, "no items")
		return
	}

	maxCount := cats[0].Count
	if maxCount == 0 {
		maxCount = 1
	}

	rowH := area.Dy() / len(cats)
	if rowH > 28 {
		rowH = 28
	}
	labelW := 180
	for i, c := range cats {
		y := area.Min.Y + i*rowH
		name := c.Name
		if name == "" {
			name = "(uncategorized)"
		}
		drawText(img, area.Min.X, y+rowH/2+4, colInk, clip(name, 24))

		barMax := area.Dx() - labelW - 60
		barW := c.Count * barMax / maxCount
		if barW < 2 {
			barW = 2
		}
		bar := image.Rect(area.Min.X+labelW, y+4, area.Min.X+labelW+barW, y+rowH-4)
		draw.Draw(img, bar, image.NewUniform(colBar), image.Point{}, draw.Src)
		drawText(img, bar.Max.X+8, y+rowH/2+4, colMuted, fmt.Sprintf("%d", c.Count))
	}
}

// drawDailySeries draws the trailing 30-day found/claimed lines.
func drawDailySeries(img *image.RGBA, daily []DailyRow, area image.Rectangle) {
	drawText(img, area.Min.X, area.Min.Y-8, colMuted, "daily, trailing 30 days")
	if len(daily) == 0 {
		return
	}

	maxVal := 1
	for _, d := range daily {
		if d.Found > maxVal {
			maxVal = d.Found
		}
		if d.Claimed > maxVal {
			maxVal = d.Claimed
		}
	}

	// Gridlines and axis labels.
	for frac := 0; frac <= 4; frac++ {
		y := area.Max.Y - 20 - frac*(area.Dy()-40)/4
		for x := area.Min.X; x < area.Max.X; x++ {
			img.Set(x, y, colGrid)
		}
		drawText(img, area.Min.X-30, y+4, colMuted, fmt.Sprintf("%d", frac*maxVal/4))
	}

	denom := len(daily) - 1
	if denom == 0 {
		denom = 1
	}
	plot := func(value, idx int) image.Point {
		x := area.Min.X + idx*(area.Dx()-1)/denom
		y := area.Max.Y - 20 - value*(area.Dy()-40)/maxVal
		return image.Point{X: x, Y: y}
	}

	var prevFound, prevClaimed image.Point
	for i, d := range daily {
		pf := plot(d.Found, i)
		pc := plot(d.Claimed, i)
		if i > 0 {
			drawLine(img, prevFound, pf, colFound)
			drawLine(img, prevClaimed, pc, colClaimed)
		}
		prevFound, prevClaimed = pf, pc

		// Sparse date labels (every fifth day, mm-dd).
		if i%5 == 0 && len(d.Date) >= 10 {
			drawText(img, pf.X-14, area.Max.Y-4, colMuted, d.Date[5:])
		}
	}

	drawText(img, area.Max.X-180, area.Min.Y+8, colFound, "found")
	drawText(img, area.Max.X-110, area.Min.Y+8, colClaimed, "claimed")
}

// drawLine draws a straight segment using simple DDA stepping.
func drawLine(img *image.RGBA, a, b image.Point, c color.Color) {
	dx := b.X - a.X
	dy := b.Y - a.Y
	steps := max(abs(dx), abs(dy))
	if steps == 0 {
		img.Set(a.X, a.Y, c)
		return
	}
	for i := 0; i <= steps; i++ {
		x := a.X + dx*i/steps
		y := a.Y + dy*i/steps
		img.Set(x, y, c)
		img.Set(x, y+1, c) // 2px stroke
	}
}

// drawText renders s at the baseline (x, y) with the built-in 7x13 face.
// Glyphs outside the face's coverage render as the replacement block, which
// is acceptable for an at-a-glance export.
func drawText(img *image.RGBA, x, y int, c color.Color, s string) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(c),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
}

func clip(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
