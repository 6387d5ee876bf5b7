package docimage

import (
	"image/png"
	"os"
)

// Load decodes a PNG file into an Image. PNG decoding itself is treated as
// an external collaborator (spec.md §1), so this wraps the standard
// library's image/png rather than a pack dependency.
func Load(path string) (*Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	src, err := png.Decode(f)
	if err != nil {
		return nil, err
	}
	return FromStdImage(src), nil
}

// Save encodes an Image as a PNG file.
func Save(path string, img *Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, img.ToStdImage())
}

// SaveMask encodes a Mask as an 8-bit grayscale PNG file.
func SaveMask(path string, m *Mask) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, m.ToStdImage())
}

// LoadMask decodes a PNG file into a Mask.
func LoadMask(path string) (*Mask, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	src, err := png.Decode(f)
	if err != nil {
		return nil, err
	}
	return MaskFromStdImage(src), nil
}
