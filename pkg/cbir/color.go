package cbir

import (
	"math"
	"sort"

	"github.com/lintang-b-s/ir-lab/pkg/datastructure"
)

// ColorDistance is the euclidean distance between two colors in RGB space.
func ColorDistance(a, b datastructure.RGB) float64 {
	dr := float64(a.R) - float64(b.R)
	dg := float64(a.G) - float64(b.G)
	db := float64(a.B) - float64(b.B)
	return math.Sqrt(dr*dr + dg*dg + db*db)
}

// ColorSimilarity is 1/(1+distance): 1 for identical colors, towards 0 as they
// move apart.
func ColorSimilarity(a, b datastructure.RGB) float64 {
	return 1 / (1 + ColorDistance(a, b))
}

// RankByColor orders items by similarity of their dominant color to query,
// most similar first. Ties keep the input order.
func RankByColor(query datastructure.RGB, items []datastructure.ImageItem) []datastructure.ScoredImage {
	scored := make([]datastructure.ScoredImage, 0, len(items))
	for _, item := range items {
		d := ColorDistance(query, item.Color)
		scored = append(scored, datastructure.ScoredImage{
			Image:      item,
			Distance:   d,
			Similarity: 1 / (1 + d),
		})
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Similarity > scored[j].Similarity
	})
	return scored
}
