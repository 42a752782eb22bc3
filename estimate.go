package vrptw

// ComplexityEstimate predicts the size of the MIP for a given vertex count
// without building it, so oversized solve requests can be rejected up front.
type ComplexityEstimate struct {
	NVertices int `json:"n_vertices"`

	BinaryVars     int `json:"binary_vars"`
	ContinuousVars int `json:"continuous_vars"`

	VisitConstraints int `json:"visit_constraints"`
	DepotConstraints int `json:"depot_constraints"`
	TimeConstraints  int `json:"time_constraints"`
	MTZConstraints   int `json:"mtz_constraints"`
	LoadConstraints  int `json:"load_constraints"`

	TotalVars        int `json:"total_vars"`
	TotalConstraints int `json:"total_constraints"`

	Class string `json:"class"`
}

// EstimateComplexity computes the variable and constraint counts of the
// two-index MTZ formulation for n vertices. The easy/medium/hard class is a
// heuristic threshold on n, not a proven complexity boundary.
func EstimateComplexity(n int) ComplexityEstimate {
	est := ComplexityEstimate{
		NVertices:        n,
		BinaryVars:       n * (n - 1),
		ContinuousVars:   3 * n,
		VisitConstraints: 2 * (n - 1),
		DepotConstraints: 3,
		TimeConstraints:  n * (n - 1),
		MTZConstraints:   (n - 1) * (n - 2),
		LoadConstraints:  n*(n-1) + 1,
	}
	est.TotalVars = est.BinaryVars + est.ContinuousVars
	est.TotalConstraints = est.VisitConstraints + est.DepotConstraints + est.TimeConstraints + est.MTZConstraints + est.LoadConstraints
	switch {
	case n <= 15:
		est.Class = ClassEasy
	case n <= 30:
		est.Class = ClassMedium
	default:
		est.Class = ClassHard
	}
	return est
}
