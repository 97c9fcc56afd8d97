package searcher

import "math"

const CSquared = 2.0 // Exploration constant

// uct = w/(n+1) + sqrt(c^2*ln(N+1)/(n+1))
// The +1 offsets keep unvisited children and parents well defined.
func uct(wins, playouts, parentPlayouts float64) float64 {
	return wins/(playouts+1) + math.Sqrt(CSquared*math.Log(parentPlayouts+1)/(playouts+1))
}
