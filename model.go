package vrptw

import (
	"fmt"

	"git.solver4all.com/azaryc2s/gorobi/gurobi"
)

// ComputeBigM derives the big-M constant for the time propagation
// constraints from the instance data: the largest time-window upper bound
// plus the largest travel cost plus the largest service time. Loose enough
// to deactivate the constraint on an unused arc, tight enough to force
// correct propagation on a used one.
func ComputeBigM(inst *Instance) float64 {
	maxTW := 0.0
	for _, tw := range inst.TimeWindows {
		if tw[1] > maxTW {
			maxTW = tw[1]
		}
	}
	maxCost := 0.0
	for i := range inst.CostMatrix {
		for j := range inst.CostMatrix[i] {
			if i != j && inst.CostMatrix[i][j] > maxCost {
				maxCost = inst.CostMatrix[i][j]
			}
		}
	}
	maxService := 0.0
	for _, s := range inst.ServiceTimes {
		if s > maxService {
			maxService = s
		}
	}
	return maxTW + maxCost + maxService
}

// CreateVRPTWModel translates a validated instance into the two-index MTZ
// MIP. Variable layout (flat indices, in this order): binary arcs x[i,j] for
// every ordered pair i != j, then arrival times t[i], then MTZ positions
// u[i], then cumulative loads load[i].
//
// The caller owns env and has to free it after the model is discarded; if
// env is nil a fresh environment is created and stored in the result.
func CreateVRPTWModel(env *gurobi.Env, inst *Instance) (VRPTWModel, error) {
	var err error
	if env == nil {
		env, err = gurobi.LoadEnv("vrptw_gurobi.log")
		if err != nil {
			return VRPTWModel{}, err
		}
		env.SetIntParam("LogToConsole", int32(0))
	}

	n := inst.NVertices
	xCount := n * (n - 1)
	xStart := 0
	tStart := xStart + xCount
	uStart := tStart + n
	loadStart := uStart + n
	varCount := xCount + 3*n

	varType := make([]int8, varCount)
	varNames := make([]string, varCount)
	objFun := make([]float64, varCount)
	lb := make([]float64, varCount)
	ub := make([]float64, varCount)

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if j == i {
				continue
			}
			idx := GetArcIndex(i, j, n, xStart)
			varType[idx] = gurobi.BINARY
			varNames[idx] = fmt.Sprintf("x_%d_%d", i, j)
			objFun[idx] = inst.CostMatrix[i][j]
			lb[idx] = 0.0
			ub[idx] = 1.0
		}
	}
	for i := 0; i < n; i++ {
		varType[tStart+i] = gurobi.CONTINUOUS
		varNames[tStart+i] = fmt.Sprintf("t_%d", i)
		lb[tStart+i] = inst.TimeWindows[i][0]
		ub[tStart+i] = inst.TimeWindows[i][1]

		varType[uStart+i] = gurobi.CONTINUOUS
		varNames[uStart+i] = fmt.Sprintf("u_%d", i)
		lb[uStart+i] = 0.0
		ub[uStart+i] = float64(n)

		varType[loadStart+i] = gurobi.CONTINUOUS
		varNames[loadStart+i] = fmt.Sprintf("load_%d", i)
		lb[loadStart+i] = 0.0
		ub[loadStart+i] = inst.VehicleCapacity
	}

	model, err := env.NewModel("vrptw", int32(varCount), objFun, lb, ub, varType, varNames)
	if err != nil {
		Log(1, err.Error())
		return VRPTWModel{}, err
	}

	err = model.SetIntAttr(gurobi.INT_ATTR_MODELSENSE, gurobi.MINIMIZE)
	if err != nil {
		Log(1, err.Error())
		return VRPTWModel{}, err
	}

	bigM := ComputeBigM(inst)

	//Constraints (1): each customer has exactly one incoming and one outgoing arc
	{
		Log(3, "Creating and setting constraints sum_i(x_ij) = 1 and sum_j(x_ij) = 1 (1)")
		for j := 1; j < n; j++ {
			ind := make([]int32, 0)
			val := make([]float64, 0)
			for i := 0; i < n; i++ {
				if i == j {
					continue
				}
				ind = append(ind, int32(GetArcIndex(i, j, n, xStart)))
				val = append(val, 1.0)
			}
			err = model.AddConstr(ind, val, gurobi.EQUAL, 1.0, fmt.Sprintf("visit_in_%d", j))
			if err != nil {
				Log(1, "Error adding constraint visit_in at j=%d: %s\n", j, err.Error())
				return VRPTWModel{}, err
			}
		}
		for i := 1; i < n; i++ {
			ind := make([]int32, 0)
			val := make([]float64, 0)
			for j := 0; j < n; j++ {
				if j == i {
					continue
				}
				ind = append(ind, int32(GetArcIndex(i, j, n, xStart)))
				val = append(val, 1.0)
			}
			err = model.AddConstr(ind, val, gurobi.EQUAL, 1.0, fmt.Sprintf("visit_out_%d", i))
			if err != nil {
				Log(1, "Error adding constraint visit_out at i=%d: %s\n", i, err.Error())
				return VRPTWModel{}, err
			}
		}
	}

	//Constraints (2): depot flow - at most K vehicles leave, as many return as leave
	{
		Log(3, "Creating and setting depot flow constraints (2)")
		outInd := make([]int32, 0)
		outVal := make([]float64, 0)
		inInd := make([]int32, 0)
		inVal := make([]float64, 0)
		for j := 1; j < n; j++ {
			outInd = append(outInd, int32(GetArcIndex(0, j, n, xStart)))
			outVal = append(outVal, 1.0)
			inInd = append(inInd, int32(GetArcIndex(j, 0, n, xStart)))
			inVal = append(inVal, 1.0)
		}
		err = model.AddConstr(outInd, outVal, gurobi.LESS_EQUAL, float64(inst.NVehicles), "depot_out")
		if err != nil {
			Log(1, "Error adding constraint depot_out: %s\n", err.Error())
			return VRPTWModel{}, err
		}
		err = model.AddConstr(inInd, inVal, gurobi.LESS_EQUAL, float64(inst.NVehicles), "depot_in")
		if err != nil {
			Log(1, "Error adding constraint depot_in: %s\n", err.Error())
			return VRPTWModel{}, err
		}
		balInd := append(append(make([]int32, 0, 2*(n-1)), outInd...), inInd...)
		balVal := make([]float64, 0, 2*(n-1))
		for range outInd {
			balVal = append(balVal, 1.0)
		}
		for range inInd {
			balVal = append(balVal, -1.0)
		}
		err = model.AddConstr(balInd, balVal, gurobi.EQUAL, 0.0, "depot_balance")
		if err != nil {
			Log(1, "Error adding constraint depot_balance: %s\n", err.Error())
			return VRPTWModel{}, err
		}
	}

	//Constraints (3): time propagation t_j >= t_i + s_i + c_ij - M(1 - x_ij)
	{
		Log(3, "Creating and setting time propagation constraints with M=%.2f (3)", bigM)
		err = addArcPropagation(model, inst, "time", n, xStart, tStart, bigM, func(i, j int) float64 {
			return inst.ServiceTimes[i] + inst.CostMatrix[i][j]
		})
		if err != nil {
			return VRPTWModel{}, err
		}
	}

	//Constraints (4): MTZ subtour elimination u_i - u_j + n*x_ij <= n-1
	{
		Log(3, "Creating and setting MTZ constraints u_i - u_j + n*x_ij <= n-1 (4)")
		for i := 1; i < n; i++ {
			for j := 1; j < n; j++ {
				if j == i {
					continue
				}
				ind := make([]int32, 3)
				val := make([]float64, 3)
				ind[0] = int32(uStart + i)
				val[0] = 1.0
				ind[1] = int32(uStart + j)
				val[1] = -1.0
				ind[2] = int32(GetArcIndex(i, j, n, xStart))
				val[2] = float64(n)
				err = model.AddConstr(ind, val, gurobi.LESS_EQUAL, float64(n-1), fmt.Sprintf("mtz_%d_%d", i, j))
				if err != nil {
					Log(1, "Error adding MTZ constraint at i=%d, j=%d: %s\n", i, j, err.Error())
					return VRPTWModel{}, err
				}
			}
		}
	}

	//Constraints (5): capacity propagation, load_0 = 0 and
	//load_j >= load_i + d_j - Q(1 - x_ij) with Q acting as the big-M
	{
		Log(3, "Creating and setting capacity propagation constraints (5)")
		ind := []int32{int32(loadStart)}
		val := []float64{1.0}
		err = model.AddConstr(ind, val, gurobi.EQUAL, 0.0, "load_depot")
		if err != nil {
			Log(1, "Error adding constraint load_depot: %s\n", err.Error())
			return VRPTWModel{}, err
		}
		err = addArcPropagation(model, inst, "load", n, xStart, loadStart, inst.VehicleCapacity, func(i, j int) float64 {
			return inst.Demands[j]
		})
		if err != nil {
			return VRPTWModel{}, err
		}
	}

	vrptwModel := VRPTWModel{
		GModel:    model,
		GEnv:      env,
		Inst:      inst,
		N:         n,
		BigM:      bigM,
		VarNames:  varNames,
		XStart:    xStart,
		XCount:    xCount,
		TStart:    tStart,
		UStart:    uStart,
		LoadStart: loadStart,
		VarCount:  varCount,
	}
	return vrptwModel, nil
}

// addArcPropagation adds level_j >= level_i + inc(i,j) - bigM*(1 - x_ij) for
// every arc (i,j) with a non-depot head. Time and load propagation share
// this shape and only differ in the propagated quantity, the per-arc
// increment and the big-M value.
func addArcPropagation(model *gurobi.Model, inst *Instance, name string, n, xStart, levelStart int, bigM float64, inc func(i, j int) float64) error {
	for i := 0; i < n; i++ {
		for j := 1; j < n; j++ {
			if j == i {
				continue
			}
			ind := make([]int32, 3)
			val := make([]float64, 3)
			ind[0] = int32(levelStart + j)
			val[0] = 1.0
			ind[1] = int32(levelStart + i)
			val[1] = -1.0
			ind[2] = int32(GetArcIndex(i, j, n, xStart))
			val[2] = -bigM
			err := model.AddConstr(ind, val, gurobi.GREATER_EQUAL, inc(i, j)-bigM, fmt.Sprintf("%s_%d_%d", name, i, j))
			if err != nil {
				Log(1, "Error adding constraint %s at i=%d, j=%d: %s\n", name, i, j, err.Error())
				return err
			}
		}
	}
	return nil
}
