package vrptw

import (
	"git.solver4all.com/azaryc2s/gorobi/gurobi"
)

// Solve submits the assembled MIP to the solver with a wall-clock time limit
// in seconds and maps the raw solver status onto the status set of this
// package. When the limit is hit the solver returns its best incumbent
// (Feasible) or nothing (NotSolved); no retry happens here.
func (m *VRPTWModel) Solve(timeLimitSec float64) (SolveResult, error) {
	res := SolveResult{Status: StatusNotSolved}

	err := m.GModel.SetDblParam("TimeLimit", timeLimitSec)
	if err != nil {
		Log(1, "Couldn't set the time limit: %s\n", err.Error())
		return res, err
	}

	err = m.GModel.Optimize()
	if err != nil {
		Log(1, err.Error())
		return res, err
	}

	optimstatus, err := m.GModel.GetIntAttr(gurobi.INT_ATTR_STATUS)
	if err != nil {
		Log(1, "Couldn't retrieve optimization status: %s\n", err.Error())
		return res, err
	}
	solcount, err := m.GModel.GetIntAttr(gurobi.INT_ATTR_SOLCOUNT)
	if err != nil {
		Log(1, "Couldn't retrieve the solution count: %s\n", err.Error())
		return res, err
	}

	switch {
	case optimstatus == gurobi.OPTIMAL:
		res.Status = StatusOptimal
	case optimstatus == gurobi.INFEASIBLE || optimstatus == gurobi.INF_OR_UNBD:
		res.Status = StatusInfeasible
	case optimstatus == gurobi.UNBOUNDED:
		res.Status = StatusUnbounded
	case solcount > 0:
		//time limit or another early stop with an incumbent
		res.Status = StatusFeasible
	default:
		res.Status = StatusNotSolved
	}

	if res.Status != StatusOptimal && res.Status != StatusFeasible {
		return res, nil
	}

	res.Obj, err = m.GModel.GetDblAttr(gurobi.DBL_ATTR_OBJVAL)
	if err != nil {
		Log(1, "Couldn't retrieve the obj-value: %s\n", err.Error())
		return res, err
	}
	res.Assignment, err = m.GModel.GetDblAttrArray(gurobi.DBL_ATTR_X, 0, int32(m.VarCount))
	if err != nil {
		Log(1, "Couldn't retrieve the variable assignment: %s\n", err.Error())
		return res, err
	}
	return res, nil
}

// ArcValue reads x[i,j] out of a solved assignment.
func (m *VRPTWModel) ArcValue(assignment []float64, i, j int) float64 {
	return assignment[GetArcIndex(i, j, m.N, m.XStart)]
}

// Arrival reads the arrival time t[i] out of a solved assignment.
func (m *VRPTWModel) Arrival(assignment []float64, i int) float64 {
	return assignment[m.TStart+i]
}
