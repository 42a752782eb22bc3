package vrptw

import (
	"errors"
	"fmt"
)

// ErrReconstruction marks a failure to rebuild routes from a solved
// assignment. It indicates an inconsistency between model and solver output
// (a cycle that never returns to the depot, a dead end), not a genuinely
// infeasible instance, and is reported distinctly from solver statuses.
var ErrReconstruction = errors.New("route reconstruction failed")

// ExtractArcMatrix turns the flat assignment into an n x n matrix of arc
// values. The diagonal stays zero.
func ExtractArcMatrix(assignment []float64, n, xStart int) [][]float64 {
	arcs := make([][]float64, n)
	for i := 0; i < n; i++ {
		arcs[i] = make([]float64, n)
		for j := 0; j < n; j++ {
			if j == i {
				continue
			}
			arcs[i][j] = assignment[GetArcIndex(i, j, n, xStart)]
		}
	}
	return arcs
}

// ReconstructRoutes walks the selected arcs (value > 0.5, tolerating solver
// slack on the booleans) and rebuilds the ordered routes and the arrival
// schedule per customer stop. The scan order is lowest vertex index first,
// both for picking the customer that opens the next route and for picking
// the arc to follow, so reruns on the same assignment yield identical
// output. The walk is bounded by n hops per route; exceeding the bound,
// following an arc into an already visited customer or reaching a vertex
// without a selected outgoing arc fails with ErrReconstruction.
func ReconstructRoutes(arcs [][]float64, arrivals []float64) ([][]int, [][]float64, error) {
	n := len(arcs)
	visited := make([]bool, n)
	var routes [][]int
	var schedules [][]float64

	for j := 1; j < n; j++ {
		if arcs[0][j] <= 0.5 || visited[j] {
			continue
		}
		route := []int{0, j}
		schedule := []float64{arrivals[j]}
		visited[j] = true
		current := j

		for hops := 0; ; hops++ {
			if hops >= n {
				return nil, nil, fmt.Errorf("%w: more than %d hops without returning to the depot on route %s", ErrReconstruction, n, FormatRoute(route))
			}
			next := -1
			for v := 0; v < n; v++ {
				if v == current {
					continue
				}
				if arcs[current][v] > 0.5 {
					next = v
					break
				}
			}
			if next < 0 {
				return nil, nil, fmt.Errorf("%w: no selected arc out of vertex %d on route %s", ErrReconstruction, current, FormatRoute(route))
			}
			if next == 0 {
				route = append(route, 0)
				break
			}
			if visited[next] {
				return nil, nil, fmt.Errorf("%w: arc from %d leads into already visited vertex %d", ErrReconstruction, current, next)
			}
			route = append(route, next)
			schedule = append(schedule, arrivals[next])
			visited[next] = true
			current = next
		}
		routes = append(routes, route)
		schedules = append(schedules, schedule)
	}

	for j := 1; j < n; j++ {
		if !visited[j] {
			return nil, nil, fmt.Errorf("%w: customer %d is not reachable from the depot", ErrReconstruction, j)
		}
	}
	return routes, schedules, nil
}

// RouteCost sums the travel costs along consecutive stops of a route.
func RouteCost(inst *Instance, route []int) float64 {
	cost := 0.0
	for k := 0; k < len(route)-1; k++ {
		cost += inst.CostMatrix[route[k]][route[k+1]]
	}
	return cost
}

// RouteDemand sums the demand of the non-depot stops of a route.
func RouteDemand(inst *Instance, route []int) float64 {
	demand := 0.0
	for _, v := range route {
		if v != 0 {
			demand += inst.Demands[v]
		}
	}
	return demand
}

// ExtractSolution converts a successful solve result into an immutable
// Solution. It must not be called on a non-success status.
func (m *VRPTWModel) ExtractSolution(res SolveResult) (*Solution, error) {
	if res.Status != StatusOptimal && res.Status != StatusFeasible {
		return nil, fmt.Errorf("cannot extract routes from a %s result", res.Status)
	}
	arcs := ExtractArcMatrix(res.Assignment, m.N, m.XStart)
	arrivals := res.Assignment[m.TStart : m.TStart+m.N]
	routes, schedules, err := ReconstructRoutes(arcs, arrivals)
	if err != nil {
		return nil, err
	}
	sol := &Solution{
		Status:    res.Status,
		TotalCost: res.Obj,
		Routes:    routes,
		Schedules: schedules,
		Optimal:   res.Status == StatusOptimal,
	}
	for _, route := range routes {
		sol.RouteCosts = append(sol.RouteCosts, RouteCost(m.Inst, route))
		sol.RouteDemands = append(sol.RouteDemands, RouteDemand(m.Inst, route))
	}
	return sol, nil
}
