package vrptw

import (
	"fmt"
	"os"
	"strconv"
)

// SolvePolicy is the admission control applied before a model is built:
// ceilings on the predicted model size and bounds for the solver time limit.
type SolvePolicy struct {
	MaxVariables   int
	MaxConstraints int
	MinTimeLimit   float64
	MaxTimeLimit   float64
}

func DefaultPolicy() SolvePolicy {
	return SolvePolicy{
		MaxVariables:   50000,
		MaxConstraints: 100000,
		MinTimeLimit:   1,
		MaxTimeLimit:   600,
	}
}

// PolicyFromEnv starts from the default policy and applies overrides from
// the environment (VRPTW_MAX_VARIABLES, VRPTW_MAX_CONSTRAINTS,
// VRPTW_MIN_TIME_LIMIT, VRPTW_MAX_TIME_LIMIT). Unparsable values are
// reported and ignored.
func PolicyFromEnv() SolvePolicy {
	p := DefaultPolicy()
	if v, ok := envInt("VRPTW_MAX_VARIABLES"); ok {
		p.MaxVariables = v
	}
	if v, ok := envInt("VRPTW_MAX_CONSTRAINTS"); ok {
		p.MaxConstraints = v
	}
	if v, ok := envFloat("VRPTW_MIN_TIME_LIMIT"); ok {
		p.MinTimeLimit = v
	}
	if v, ok := envFloat("VRPTW_MAX_TIME_LIMIT"); ok {
		p.MaxTimeLimit = v
	}
	return p
}

func envInt(name string) (int, bool) {
	s := os.Getenv(name)
	if s == "" {
		return 0, false
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		Log(1, "Ignoring %s=%q: %s", name, s, err.Error())
		return 0, false
	}
	return v, true
}

func envFloat(name string) (float64, bool) {
	s := os.Getenv(name)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		Log(1, "Ignoring %s=%q: %s", name, s, err.Error())
		return 0, false
	}
	return v, true
}

// Admit rejects instances whose predicted model size exceeds the ceilings,
// naming the offending dimension.
func (p SolvePolicy) Admit(inst *Instance) error {
	est := EstimateComplexity(inst.NVertices)
	if est.TotalVars > p.MaxVariables {
		return fmt.Errorf("instance too large: %d variables exceed the ceiling of %d", est.TotalVars, p.MaxVariables)
	}
	if est.TotalConstraints > p.MaxConstraints {
		return fmt.Errorf("instance too large: %d constraints exceed the ceiling of %d", est.TotalConstraints, p.MaxConstraints)
	}
	return nil
}

// ClampTimeLimit forces a requested time limit into the configured bounds.
func (p SolvePolicy) ClampTimeLimit(sec float64) float64 {
	if sec < p.MinTimeLimit {
		return p.MinTimeLimit
	}
	if sec > p.MaxTimeLimit {
		return p.MaxTimeLimit
	}
	return sec
}
