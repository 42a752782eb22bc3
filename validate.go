package vrptw

import (
	"fmt"
)

// ValidateInstance checks the structural invariants of an instance before
// any model is built. The model builder assumes these hold and does not
// re-validate.
func ValidateInstance(inst *Instance) error {
	n := inst.NVertices
	if n < 2 {
		return fmt.Errorf("n_vertices must be at least 2 (depot plus one customer), got %d", n)
	}
	if inst.NVehicles < 1 {
		return fmt.Errorf("n_vehicles must be at least 1, got %d", inst.NVehicles)
	}
	if inst.VehicleCapacity <= 0 {
		return fmt.Errorf("vehicle_capacity must be positive, got %g", inst.VehicleCapacity)
	}
	if len(inst.Coordinates) != n {
		return fmt.Errorf("coordinates has length %d, want %d", len(inst.Coordinates), n)
	}
	for i, c := range inst.Coordinates {
		if len(c) != 2 {
			return fmt.Errorf("coordinates[%d] is not an (x, y) pair", i)
		}
	}
	if len(inst.CostMatrix) != n {
		return fmt.Errorf("cost_matrix has %d rows, want %d", len(inst.CostMatrix), n)
	}
	for i, row := range inst.CostMatrix {
		if len(row) != n {
			return fmt.Errorf("cost_matrix row %d has length %d, want %d", i, len(row), n)
		}
		for j, c := range row {
			if i != j && c < 0 {
				return fmt.Errorf("cost_matrix[%d][%d] is negative: %g", i, j, c)
			}
		}
	}
	if len(inst.TimeWindows) != n {
		return fmt.Errorf("time_windows has length %d, want %d", len(inst.TimeWindows), n)
	}
	for i, tw := range inst.TimeWindows {
		if len(tw) != 2 {
			return fmt.Errorf("time_windows[%d] is not an (earliest, latest) pair", i)
		}
		if tw[0] > tw[1] {
			return fmt.Errorf("time_windows[%d] has earliest %g after latest %g", i, tw[0], tw[1])
		}
	}
	if len(inst.ServiceTimes) != n {
		return fmt.Errorf("service_times has length %d, want %d", len(inst.ServiceTimes), n)
	}
	for i, s := range inst.ServiceTimes {
		if s < 0 {
			return fmt.Errorf("service_times[%d] is negative: %g", i, s)
		}
	}
	if len(inst.Demands) != n {
		return fmt.Errorf("demands has length %d, want %d", len(inst.Demands), n)
	}
	for i, d := range inst.Demands {
		if d < 0 {
			return fmt.Errorf("demands[%d] is negative: %g", i, d)
		}
	}
	return nil
}

// CheckFleetCapacity compares the total customer demand against the total
// fleet capacity. A shortfall is advisory (the solver will report
// Infeasible), not an admission error.
func CheckFleetCapacity(inst *Instance) (bool, string) {
	total := 0.0
	for i := 1; i < inst.NVertices; i++ {
		total += inst.Demands[i]
	}
	fleet := float64(inst.NVehicles) * inst.VehicleCapacity
	if total > fleet {
		return false, fmt.Sprintf("Total demand %g exceeds the fleet capacity %g (%d vehicles x %g) - the instance is likely infeasible!", total, fleet, inst.NVehicles, inst.VehicleCapacity)
	}
	return true, ""
}

// CheckSolutionValidity re-checks a solution against the instance: every
// customer on exactly one route exactly once, routes closed at the depot,
// per-route demand within capacity, schedules inside the time windows and
// consistent with service and travel times, route count within the fleet.
func CheckSolutionValidity(inst *Instance, sol *Solution) (bool, string) {
	if sol.Status != StatusOptimal && sol.Status != StatusFeasible {
		return false, fmt.Sprintf("No routes to check for status %s!", sol.Status)
	}
	if len(sol.Routes) > inst.NVehicles {
		return false, fmt.Sprintf("The solution uses %d routes but only %d vehicles are available!", len(sol.Routes), inst.NVehicles)
	}
	if len(sol.Schedules) != len(sol.Routes) {
		return false, fmt.Sprintf("There are %d schedules for %d routes!", len(sol.Schedules), len(sol.Routes))
	}
	seen := make([]bool, inst.NVertices)
	for r, route := range sol.Routes {
		if len(route) < 3 || route[0] != 0 || route[len(route)-1] != 0 {
			return false, fmt.Sprintf("Route %d (%s) does not start and end at the depot!", r, FormatRoute(route))
		}
		stops := route[1 : len(route)-1]
		schedule := sol.Schedules[r]
		if len(schedule) != len(stops) {
			return false, fmt.Sprintf("Route %d has %d stops but %d scheduled arrivals!", r, len(stops), len(schedule))
		}
		demand := 0.0
		for k, v := range stops {
			if v <= 0 || v >= inst.NVertices {
				return false, fmt.Sprintf("Route %d contains invalid vertex %d!", r, v)
			}
			if seen[v] {
				return false, fmt.Sprintf("Vertex %d visited twice!", v)
			}
			seen[v] = true
			demand += inst.Demands[v]
			tw := inst.TimeWindows[v]
			if schedule[k] < tw[0] || schedule[k] > tw[1] {
				return false, fmt.Sprintf("Arrival %g at vertex %d is outside its time window [%g, %g]!", schedule[k], v, tw[0], tw[1])
			}
			if k > 0 {
				prev := stops[k-1]
				minArrival := schedule[k-1] + inst.ServiceTimes[prev] + inst.CostMatrix[prev][v]
				if schedule[k]+1e-6 < minArrival {
					return false, fmt.Sprintf("Arrival %g at vertex %d is before %g, the earliest reachable time from vertex %d!", schedule[k], v, minArrival, prev)
				}
			}
		}
		if demand > inst.VehicleCapacity+1e-6 {
			return false, fmt.Sprintf("Route %d carries demand %g exceeding the vehicle capacity %g!", r, demand, inst.VehicleCapacity)
		}
	}
	for v := 1; v < inst.NVertices; v++ {
		if !seen[v] {
			return false, fmt.Sprintf("Vertex %d is not visited by any route!", v)
		}
	}
	return true, ""
}
