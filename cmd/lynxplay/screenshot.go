// screenshot.go - headless -screenshot support: nearest-neighbour upscale
// of a captured frame to a more viewable size, written out as PNG.
package main

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	"golang.org/x/image/draw"

	"github.com/TheAnsarya/nexen"
)

// screenshotScale matches the default window scale so a headless
// screenshot looks like what the windowed frontend would have shown.
const screenshotScale = 4

func writeScreenshot(packed []byte, pal *[lynx.PaletteEntries]uint16, path string) error {
	rgb := lynx.RenderRGB(packed, pal)

	src := image.NewRGBA(image.Rect(0, 0, lynx.ScreenWidth, lynx.ScreenHeight))
	for y := 0; y < lynx.ScreenHeight; y++ {
		for x := 0; x < lynx.ScreenWidth; x++ {
			i := (y*lynx.ScreenWidth + x) * 3
			src.Set(x, y, color.RGBA{R: rgb[i], G: rgb[i+1], B: rgb[i+2], A: 0xFF})
		}
	}

	dstW, dstH := lynx.ScreenWidth*screenshotScale, lynx.ScreenHeight*screenshotScale
	dst := image.NewRGBA(image.Rect(0, 0, dstW, dstH))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Over, nil)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("screenshot: %w", err)
	}
	defer f.Close()

	if err := png.Encode(f, dst); err != nil {
		return fmt.Errorf("screenshot: encode: %w", err)
	}
	return nil
}
