package card

import (
	"fmt"
	"image"
	_ "image/jpeg"
	"os"
)

// Faces is a sheet of card faces laid out as PerSuit columns by 4 suit rows.
type Faces struct {
	sheet  image.Image
	width  int
	height int
}

type subImager interface {
	SubImage(r image.Rectangle) image.Image
}

func LoadFaces(path string) (*Faces, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	sheet, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	if _, ok := sheet.(subImager); !ok {
		return nil, fmt.Errorf("decode %s: image cannot be cropped", path)
	}
	bounds := sheet.Bounds()
	return &Faces{
		sheet:  sheet,
		width:  bounds.Dx() / PerSuit,
		height: bounds.Dy() / 4,
	}, nil
}

// Face crops the face of c out of the sheet. It returns nil for invalid cards.
func (f *Faces) Face(c Card) image.Image {
	if f == nil || !c.Valid() {
		return nil
	}
	min := f.sheet.Bounds().Min
	col, row := int(c)%PerSuit, c.Suit()
	rect := image.Rect(col*f.width, row*f.height, (col+1)*f.width, (row+1)*f.height).Add(min)
	return f.sheet.(subImager).SubImage(rect)
}
