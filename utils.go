package vrptw

import (
	"fmt"
	"math"
	"regexp"
)

// GetArcIndex maps the ordered pair (i,j), i != j, onto the flat variable
// index of x[i,j]. Arcs are laid out row by row with the diagonal skipped.
func GetArcIndex(i, j, n, start int) int {
	val := start + i*(n-1) + j
	if j > i {
		val--
	}
	return val
}

// CalcCostMatrix computes pairwise Euclidean travel costs from coordinates,
// rounded to two decimals.
func CalcCostMatrix(coordinates [][]float64) [][]float64 {
	n := len(coordinates)
	result := make([][]float64, n)
	for node := 0; node < n; node++ {
		result[node] = make([]float64, n)
	}
	for node := 0; node < n; node++ {
		for node2 := 0; node2 < node; node2++ {
			xDist := coordinates[node][0] - coordinates[node2][0]
			yDist := coordinates[node][1] - coordinates[node2][1]
			distance := math.Round(math.Sqrt(xDist*xDist+yDist*yDist)*100) / 100
			result[node][node2] = distance
			result[node2][node] = distance
		}
	}
	return result
}

func FormatRoute(route []int) string {
	res := ""
	for i, v := range route {
		if i > 0 {
			res += " -> "
		}
		res += fmt.Sprintf("%d", v)
	}
	return res
}

func SanitizeJsonArrayLineBreaks(json string) string {
	res := fmt.Sprintf("%s", json)
	var numbers = regexp.MustCompile(`\s*([-]?[0-9]+(\.[0-9]+)?),\s+([-]?[0-9]+(\.[0-9]+)?)(,)?`)
	var brackets = regexp.MustCompile(`\[(([-]?[0-9]+(\.[0-9]+)?,)+[-]?[0-9]+(\.[0-9]+)?)\s+\](,?)(\s+)`)
	for numbers.MatchString(res) {
		res = numbers.ReplaceAllString(res, "$1,$3$5")
	}
	for brackets.MatchString(res) {
		res = brackets.ReplaceAllString(res, "[$1]$5$6")
	}
	return res
}
