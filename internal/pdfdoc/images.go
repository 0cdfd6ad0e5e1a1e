package pdfdoc

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
)

// Image is one embedded image on a page. The PDF library exposes the decoded
// pixels and intrinsic dimensions but not the placement transform, so the
// placement box is approximated from the intrinsic size in points anchored
// at the page origin; callers clip it to the page before use.
type Image struct {
	Name string
	BBox BBox

	pngData []byte
}

// NewImage builds an Image from already-encoded PNG data. Like NewPage it
// is a seam for callers that hold image data from elsewhere.
func NewImage(name string, bbox BBox, pngData []byte) *Image {
	return &Image{Name: name, BBox: bbox, pngData: pngData}
}

// Decode returns the image pixels.
func (i *Image) Decode() (image.Image, error) {
	img, err := png.Decode(bytes.NewReader(i.pngData))
	if err != nil {
		return nil, fmt.Errorf("decode image %s: %w", i.Name, err)
	}
	return img, nil
}

// Images returns the embedded images of the underlying page. Synthetic page
// views have no backing document and report no images.
func (p *Page) Images() ([]*Image, error) {
	if p.doc == nil || p.doc.r == nil || p.src == nil {
		return nil, nil
	}

	extracted, err := p.doc.r.ExtractPageImages(p.src)
	if err != nil {
		return nil, fmt.Errorf("extract images from page %d: %w", p.number, err)
	}

	out := make([]*Image, 0, len(extracted))
	for _, pi := range extracted {
		data, err := pi.ToPNG()
		if err != nil {
			// Undecodable image data; skip, the rest of the page is fine.
			continue
		}
		out = append(out, &Image{
			Name: pi.Name,
			BBox: BBox{
				X0:     0,
				Top:    0,
				X1:     float64(pi.Width),
				Bottom: float64(pi.Height),
			},
			pngData: data,
		})
	}
	return out, nil
}
