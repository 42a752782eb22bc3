package vrptw

import "git.solver4all.com/azaryc2s/gorobi/gurobi"

// Optimization status as reported to callers. Routes and schedules are only
// defined for Optimal and Feasible.
const (
	StatusOptimal    = "Optimal"
	StatusFeasible   = "Feasible"
	StatusInfeasible = "Infeasible"
	StatusUnbounded  = "Unbounded"
	StatusNotSolved  = "NotSolved"
)

const (
	ClassEasy   = "easy"
	ClassMedium = "medium"
	ClassHard   = "hard"
)

// Instance describes a VRPTW problem: a depot (vertex 0) plus customers,
// a fleet of identical capacity-limited vehicles and a pairwise travel-cost
// matrix. All per-vertex arrays have length NVertices and index 0 is the
// depot by convention.
type Instance struct {
	Name    string `json:"name,omitempty"`
	Comment string `json:"comment,omitempty"`
	Type    string `json:"type,omitempty"`

	NVertices       int         `json:"n_vertices"`
	NCustomers      int         `json:"n_customers"`
	NVehicles       int         `json:"n_vehicles"`
	VehicleCapacity float64     `json:"vehicle_capacity"`
	Coordinates     [][]float64 `json:"coordinates"`
	CostMatrix      [][]float64 `json:"cost_matrix"`
	TimeWindows     [][]float64 `json:"time_windows"`
	ServiceTimes    []float64   `json:"service_times"`
	Demands         []float64   `json:"demands"`

	Solution *Solution `json:"solution,omitempty"`
}

// Solution holds the routes reconstructed from a solved model. Every route
// begins and ends at the depot; Schedules is parallel to Routes and holds one
// arrival time per customer stop (the depot endpoints of a route carry no
// arrival of their own).
type Solution struct {
	Status       string      `json:"status"`
	TotalCost    float64     `json:"total_cost"`
	Routes       [][]int     `json:"routes"`
	Schedules    [][]float64 `json:"schedules"`
	RouteCosts   []float64   `json:"route_costs,omitempty"`
	RouteDemands []float64   `json:"route_demands,omitempty"`
	Optimal      bool        `json:"optimal"`

	Time    string  `json:"time,omitempty"`
	System  SysInfo `json:"system,omitempty"`
	Comment string  `json:"comment,omitempty"`
}

// SysInfo saves the basic system information
type SysInfo struct {
	Platform string
	CPU      string
	RAM      string
}

// VRPTWModel is the assembled MIP plus the flat variable layout needed to
// read the assignment back out. One model is built per solve and discarded
// after extraction.
type VRPTWModel struct {
	GModel *gurobi.Model
	GEnv   *gurobi.Env
	Inst   *Instance

	N        int
	BigM     float64
	VarNames []string

	XStart    int
	XCount    int
	TStart    int
	UStart    int
	LoadStart int
	VarCount  int
}

// SolveResult is the raw solver outcome. Assignment is only populated for
// Optimal and Feasible and holds one value per decision variable in the
// layout order of VRPTWModel.
type SolveResult struct {
	Status     string
	Obj        float64
	Assignment []float64
}
