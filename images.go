package pdf2md

import (
	"fmt"
	"image"
	"image/png"
	"math"
	"os"
	"path/filepath"

	"golang.org/x/image/draw"

	"github.com/nicholasgasior/pdf2md-go/internal/pdfdoc"
)

// imagesSubdir is the subdirectory of the output location holding extracted
// images.
const imagesSubdir = "images"

// exportPageImages saves every image on the page as a PNG under
// {outputDir}/images, named {prefix}_page{N}_img{idx}.png, and returns the
// saved paths. Each image's placement box is clipped to the page; degenerate
// boxes are discarded. Per-image failures warn and continue.
func exportPageImages(page *pdfdoc.Page, prefix, outputDir string, resolution float64, warn warnFunc) []string {
	images, err := page.Images()
	if err != nil {
		warn("image extraction failed", err)
		return nil
	}
	if len(images) == 0 {
		return nil
	}

	imagesDir := filepath.Join(outputDir, imagesSubdir)
	if err := os.MkdirAll(imagesDir, 0o755); err != nil {
		warn("image extraction failed", err)
		return nil
	}

	var saved []string
	for idx, img := range images {
		clipped, ok := clipToPage(img.BBox, page.Width(), page.Height())
		if !ok {
			continue
		}

		name := fmt.Sprintf("%s_page%d_img%d.png", prefix, page.Number(), idx+1)
		path := filepath.Join(imagesDir, name)
		if err := saveImagePNG(img, clipped, resolution, path); err != nil {
			warn(fmt.Sprintf("failed to extract image %d", idx+1), err)
			continue
		}
		saved = append(saved, path)
	}
	return saved
}

// clipToPage clamps the box to the page bounds. The second return value is
// false when nothing of the box survives.
func clipToPage(b pdfdoc.BBox, pageWidth, pageHeight float64) (pdfdoc.BBox, bool) {
	clipped := pdfdoc.BBox{
		X0:     clamp(b.X0, 0, pageWidth),
		X1:     clamp(b.X1, 0, pageWidth),
		Top:    clamp(b.Top, 0, pageHeight),
		Bottom: clamp(b.Bottom, 0, pageHeight),
	}
	return clipped, clipped.Valid()
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// saveImagePNG rasterizes the clipped portion of the image at the given
// resolution and writes it as a PNG file.
func saveImagePNG(img *pdfdoc.Image, clipped pdfdoc.BBox, resolution float64, path string) error {
	src, err := img.Decode()
	if err != nil {
		return err
	}

	// Pixel size of the output: clipped box in points at the target DPI.
	dstW := int(math.Round(clipped.Width() * resolution / 72.0))
	dstH := int(math.Round(clipped.Height() * resolution / 72.0))
	if dstW < 1 || dstH < 1 {
		return fmt.Errorf("clipped region too small to rasterize")
	}

	// Portion of the source pixels that survived the clip.
	srcBounds := src.Bounds()
	srcRect := image.Rect(
		srcBounds.Min.X+int(float64(srcBounds.Dx())*(clipped.X0-img.BBox.X0)/img.BBox.Width()),
		srcBounds.Min.Y+int(float64(srcBounds.Dy())*(clipped.Top-img.BBox.Top)/img.BBox.Height()),
		srcBounds.Min.X+int(float64(srcBounds.Dx())*(clipped.X1-img.BBox.X0)/img.BBox.Width()),
		srcBounds.Min.Y+int(float64(srcBounds.Dy())*(clipped.Bottom-img.BBox.Top)/img.BBox.Height()),
	)

	dst := image.NewRGBA(image.Rect(0, 0, dstW, dstH))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, srcRect, draw.Src, nil)

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := png.Encode(f, dst); err != nil {
		return err
	}
	return nil
}

// imageRefs renders Markdown image references for saved image paths.
func imageRefs(paths []string) []string {
	refs := make([]string, 0, len(paths))
	for _, p := range paths {
		name := filepath.Base(p)
		refs = append(refs, fmt.Sprintf("![%s](%s/%s)", name, imagesSubdir, name))
	}
	return refs
}
