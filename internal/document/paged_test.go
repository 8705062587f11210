package document

import (
	"bytes"
	"image"
	"image/color"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func a4PageHeight(width int) int {
	return int(float64(width) * PageHeightMM / PageWidthMM)
}

func TestPaginateA4SinglePartialPage(t *testing.T) {
	width := 800
	img := imaging.New(width, 100, color.NRGBA{200, 10, 10, 255})

	pages := PaginateA4(img)
	require.Len(t, pages, 1)

	page := pages[0]
	assert.Equal(t, width, page.Bounds().Dx())
	assert.Equal(t, a4PageHeight(width), page.Bounds().Dy())

	// Content at the top, white fill below the pasted slice.
	assert.Equal(t, color.NRGBA{200, 10, 10, 255}, page.NRGBAAt(0, 0))
	assert.Equal(t, color.NRGBA{255, 255, 255, 255}, page.NRGBAAt(0, 200))
}

func TestPaginateA4ExactMultiple(t *testing.T) {
	width := 420
	pageHeight := a4PageHeight(width)
	img := imaging.New(width, pageHeight*3, color.NRGBA{0, 0, 0, 255})

	pages := PaginateA4(img)
	require.Len(t, pages, 3)
	for _, p := range pages {
		assert.Equal(t, pageHeight, p.Bounds().Dy())
	}
}

func TestPaginateA4TrailingRemainder(t *testing.T) {
	width := 420
	pageHeight := a4PageHeight(width)
	img := imaging.New(width, pageHeight*2+10, color.NRGBA{0, 0, 0, 255})

	pages := PaginateA4(img)
	require.Len(t, pages, 3)

	last := pages[2]
	assert.Equal(t, pageHeight, last.Bounds().Dy())
	assert.Equal(t, color.NRGBA{0, 0, 0, 255}, last.NRGBAAt(0, 0))
	assert.Equal(t, color.NRGBA{255, 255, 255, 255}, last.NRGBAAt(0, 20))
}

func TestPaginateA4SlicesPreserveOrder(t *testing.T) {
	width := 210
	pageHeight := a4PageHeight(width)
	img := image.NewNRGBA(image.Rect(0, 0, width, pageHeight*2))
	for y := 0; y < pageHeight; y++ {
		for x := 0; x < width; x++ {
			img.SetNRGBA(x, y, color.NRGBA{255, 0, 0, 255})
		}
	}
	for y := pageHeight; y < pageHeight*2; y++ {
		for x := 0; x < width; x++ {
			img.SetNRGBA(x, y, color.NRGBA{0, 0, 255, 255})
		}
	}

	pages := PaginateA4(img)
	require.Len(t, pages, 2)
	assert.Equal(t, color.NRGBA{255, 0, 0, 255}, pages[0].NRGBAAt(10, 10))
	assert.Equal(t, color.NRGBA{0, 0, 255, 255}, pages[1].NRGBAAt(10, 10))
}

func TestPaginateA4EmptyImage(t *testing.T) {
	assert.Nil(t, PaginateA4(image.NewNRGBA(image.Rect(0, 0, 0, 0))))
}

func TestWritePDF(t *testing.T) {
	width := 210
	img := imaging.New(width, a4PageHeight(width)*2, color.NRGBA{255, 255, 255, 255})
	pages := PaginateA4(img)
	require.Len(t, pages, 2)

	var buf bytes.Buffer
	require.NoError(t, WritePDF(&buf, pages))

	out := buf.Bytes()
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")), "output starts with a PDF header")
	assert.Contains(t, string(out), "/Count 2")
}
