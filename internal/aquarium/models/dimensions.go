package models

import "aquaria/pkg/validation"

// Dimensions are the inner tank measurements in centimetres.
type Dimensions struct {
	Length float64 `json:"length"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// NewDimensions validates that every side is positive.
func NewDimensions(length, width, height float64) (Dimensions, error) {
	if err := validation.First(
		validation.Positive("Length", length),
		validation.Positive("Width", width),
		validation.Positive("Height", height),
	); err != nil {
		return Dimensions{}, err
	}
	return Dimensions{Length: length, Width: width, Height: height}, nil
}

// VolumeLiters converts cubic centimetres to liters.
func (d Dimensions) VolumeLiters() float64 {
	return d.Length * d.Width * d.Height / 1000
}
