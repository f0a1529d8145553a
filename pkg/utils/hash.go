package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"image"
)

// GenerateImageHash returns the SHA-256 of the image's RGBA values, used
// to tell whether two rendered pages look the same.
func GenerateImageHash(img image.Image) (string, error) {
	hasher := sha256.New()
	bounds := img.Bounds()
	buf := make([]byte, 0, 8)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, a := img.At(x, y).RGBA()
			buf = append(buf[:0],
				byte(r>>8), byte(r), byte(g>>8), byte(g),
				byte(b>>8), byte(b), byte(a>>8), byte(a))
			if _, err := hasher.Write(buf); err != nil {
				return "", err
			}
		}
	}

	return hex.EncodeToString(hasher.Sum(nil)), nil
}
