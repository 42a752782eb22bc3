package vrptw

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestEstimateComplexityCounts(t *testing.T) {
	got := EstimateComplexity(4)
	want := ComplexityEstimate{
		NVertices:        4,
		BinaryVars:       12,
		ContinuousVars:   12,
		VisitConstraints: 6,
		DepotConstraints: 3,
		TimeConstraints:  12,
		MTZConstraints:   6,
		LoadConstraints:  13,
		TotalVars:        24,
		TotalConstraints: 40,
		Class:            ClassEasy,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("EstimateComplexity(4) mismatch (-want +got):\n%s", diff)
	}
}

func TestEstimateComplexityClass(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{2, ClassEasy},
		{15, ClassEasy},
		{16, ClassMedium},
		{30, ClassMedium},
		{31, ClassHard},
		{100, ClassHard},
	}
	for _, tt := range tests {
		if got := EstimateComplexity(tt.n).Class; got != tt.want {
			t.Errorf("EstimateComplexity(%d).Class = %s, want %s", tt.n, got, tt.want)
		}
	}
}
