package service

import (
	"context"
	"image"
)

// Rasterizer is the headless DOM-to-raster collaborator behind the paged
// export. Render lays the document out at widthPx CSS pixels, applies the
// device scale factor and returns a full-height screenshot. Implementations
// must tear down any staging context they create on every exit path,
// including errors.
type Rasterizer interface {
	Render(ctx context.Context, html string, widthPx int, scale float64) (image.Image, error)
}
