package fill

import (
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	cellSize   = 32
	cellBorder = 2
)

// SaveImage renders a solved assignment as a PNG: white cells with centered
// letters, black blocked cells.
func SaveImage(cw *Crossword, assignment Assignment, filename string) error {
	grid := RenderGrid(cw, assignment)

	img := image.NewRGBA(image.Rect(0, 0, cw.Width*cellSize, cw.Height*cellSize))
	draw.Draw(img, img.Bounds(), image.Black, image.Point{}, draw.Src)

	face := basicfont.Face7x13
	drawer := &font.Drawer{
		Dst:  img,
		Src:  image.Black,
		Face: face,
	}

	for i := range cw.Height {
		for j := range cw.Width {
			if !cw.Fillable(i, j) {
				continue
			}
			cell := image.Rect(
				j*cellSize+cellBorder,
				i*cellSize+cellBorder,
				(j+1)*cellSize-cellBorder,
				(i+1)*cellSize-cellBorder,
			)
			draw.Draw(img, cell, image.White, image.Point{}, draw.Src)

			r := grid.Get(j, i)
			if r == ' ' {
				continue
			}
			letter := string(r)
			width := drawer.MeasureString(letter)
			drawer.Dot = fixed.Point26_6{
				X: fixed.I(j*cellSize+cellSize/2) - width/2,
				Y: fixed.I(i*cellSize + (cellSize+face.Ascent-face.Descent)/2),
			}
			drawer.DrawString(letter)
		}
	}

	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("creating image file: %w", err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encoding png: %w", err)
	}
	return nil
}
