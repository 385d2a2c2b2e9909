package cbir

import (
	"math"
	"testing"

	"github.com/lintang-b-s/ir-lab/pkg/datastructure"
	"github.com/stretchr/testify/assert"
)

func TestColorDistance(t *testing.T) {
	black := datastructure.NewRGB(0, 0, 0)
	white := datastructure.NewRGB(255, 255, 255)

	tests := []struct {
		name string
		a, b datastructure.RGB
		want float64
	}{
		{name: "identical", a: white, b: white, want: 0},
		{name: "single channel", a: datastructure.NewRGB(10, 0, 0), b: datastructure.NewRGB(13, 4, 0), want: 5},
		{name: "opposite corners", a: black, b: white, want: math.Sqrt(3 * 255 * 255)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, ColorDistance(tt.a, tt.b), 1e-9)
			assert.InDelta(t, tt.want, ColorDistance(tt.b, tt.a), 1e-9)
			assert.InDelta(t, 1/(1+tt.want), ColorSimilarity(tt.a, tt.b), 1e-12)
		})
	}

	assert.Equal(t, 1.0, ColorSimilarity(black, black))
	assert.Greater(t, ColorSimilarity(black, white), 0.0)
}

func TestRankByColor(t *testing.T) {
	items := []datastructure.ImageItem{
		{ID: "sky", Name: "Sky", Color: datastructure.NewRGB(135, 206, 235)},
		{ID: "fire", Name: "Fire", Color: datastructure.NewRGB(230, 40, 20)},
		{ID: "rose", Name: "Rose", Color: datastructure.NewRGB(230, 40, 20)},
		{ID: "ocean", Name: "Ocean", Color: datastructure.NewRGB(0, 105, 148)},
	}

	ranked := RankByColor(datastructure.NewRGB(255, 0, 0), items)
	ids := []string{}
	for _, s := range ranked {
		ids = append(ids, s.Image.ID)
	}
	assert.Equal(t, []string{"fire", "rose", "ocean", "sky"}, ids)
	assert.Equal(t, ranked[0].Similarity, ranked[1].Similarity)
	assert.InDelta(t, 1/(1+ranked[0].Distance), ranked[0].Similarity, 1e-12)

	assert.Empty(t, RankByColor(datastructure.NewRGB(0, 0, 0), nil))
}
