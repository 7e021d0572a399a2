package ppm

import (
	"image"
	"io"
)

func init() {
	image.RegisterFormat("ppm", Magic, decodeImage, DecodeConfig)
}

func decodeImage(r io.Reader) (image.Image, error) {
	img, err := Decode(r)
	if err != nil {
		return nil, err
	}
	return img, nil
}
