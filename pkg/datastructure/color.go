package datastructure

// RGB is a color in the fixed [0,255] channel domain.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

func NewRGB(r, g, b uint8) RGB {
	return RGB{R: r, G: g, B: b}
}

// ImageItem model info
// @Description an image of the toy image collection, reduced to its dominant color.
type ImageItem struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color RGB    `json:"color"`
}

// ScoredImage model info
// @Description an image ranked against a query color.
type ScoredImage struct {
	Image      ImageItem `json:"image"`
	Distance   float64   `json:"distance"`
	Similarity float64   `json:"similarity"`
}
