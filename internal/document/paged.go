package document

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/disintegration/imaging"
	"github.com/jung-kurt/gofpdf"
)

// A4 page geometry in millimetres.
const (
	PageWidthMM  = 210.0
	PageHeightMM = 297.0
)

// PaginateA4 tiles a full-height raster top-to-bottom into page-sized
// slices whose aspect ratio matches A4. A trailing partial slice is pasted
// onto a white canvas so every page fills completely.
func PaginateA4(img image.Image) []*image.NRGBA {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	if width == 0 || height == 0 {
		return nil
	}

	pageHeight := int(float64(width) * PageHeightMM / PageWidthMM)
	if pageHeight < 1 {
		pageHeight = 1
	}

	var pages []*image.NRGBA
	for top := 0; top < height; top += pageHeight {
		bottom := top + pageHeight
		if bottom > height {
			bottom = height
		}
		slice := imaging.Crop(img, image.Rect(bounds.Min.X, bounds.Min.Y+top, bounds.Min.X+width, bounds.Min.Y+bottom))
		if slice.Bounds().Dy() < pageHeight {
			canvas := imaging.New(width, pageHeight, color.NRGBA{255, 255, 255, 255})
			slice = imaging.Paste(canvas, slice, image.Pt(0, 0))
		}
		pages = append(pages, slice)
	}
	return pages
}

// WritePDF assembles one A4 page per raster slice.
func WritePDF(w io.Writer, pages []*image.NRGBA) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)

	for i, page := range pages {
		var buf bytes.Buffer
		if err := imaging.Encode(&buf, page, imaging.PNG); err != nil {
			return fmt.Errorf("encode page %d: %w", i+1, err)
		}

		name := fmt.Sprintf("page-%d", i+1)
		pdf.RegisterImageOptionsReader(name, gofpdf.ImageOptions{ImageType: "PNG"}, &buf)
		pdf.AddPage()
		pdf.ImageOptions(name, 0, 0, PageWidthMM, PageHeightMM, false, gofpdf.ImageOptions{ImageType: "PNG"}, 0, "")
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}
