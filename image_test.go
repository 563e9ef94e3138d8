package fill

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/matryer/is"
)

func TestSaveImage(t *testing.T) {
	is := is.New(t)
	cw := mustCrossword(t, crossStructure, []string{"ace", "cat"})

	across := Variable{Row: 0, Col: 0, Direction: Across, Length: 3}
	down := Variable{Row: 0, Col: 1, Direction: Down, Length: 3}
	assignment := Assignment{across: "ace", down: "cat"}

	path := filepath.Join(t.TempDir(), "grid.png")
	is.NoErr(SaveImage(cw, assignment, path))

	f, err := os.Open(path)
	is.NoErr(err)
	defer f.Close()

	img, err := png.Decode(f)
	is.NoErr(err)
	is.Equal(img.Bounds().Dx(), cw.Width*cellSize)
	is.Equal(img.Bounds().Dy(), cw.Height*cellSize)
}

func TestSaveImage_BadPath(t *testing.T) {
	cw := mustCrossword(t, crossStructure, []string{"ace", "cat"})
	err := SaveImage(cw, Assignment{}, filepath.Join(t.TempDir(), "missing", "grid.png"))
	if err == nil {
		t.Error("expected error for unwritable path")
	}
}
