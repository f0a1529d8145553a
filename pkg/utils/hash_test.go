package utils_test

import (
	"image"
	"image/color"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/kpauljoseph/wrt2pdf/pkg/utils"
)

var _ = Describe("GenerateImageHash", func() {
	newImage := func(c color.Color) image.Image {
		img := image.NewRGBA(image.Rect(0, 0, 4, 4))
		for y := 0; y < 4; y++ {
			for x := 0; x < 4; x++ {
				img.Set(x, y, c)
			}
		}
		return img
	}

	It("should be stable for equal images", func() {
		a, err := utils.GenerateImageHash(newImage(color.White))
		Expect(err).NotTo(HaveOccurred())
		b, err := utils.GenerateImageHash(newImage(color.White))
		Expect(err).NotTo(HaveOccurred())

		Expect(a).To(Equal(b))
		Expect(a).To(HaveLen(64))
	})

	It("should differ for different images", func() {
		a, err := utils.GenerateImageHash(newImage(color.White))
		Expect(err).NotTo(HaveOccurred())
		b, err := utils.GenerateImageHash(newImage(color.Black))
		Expect(err).NotTo(HaveOccurred())

		Expect(a).NotTo(Equal(b))
	})
})
