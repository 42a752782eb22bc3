package vrptw

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// arcMatrix builds an n x n matrix with the given arcs set to the given
// value and everything else at zero.
func arcMatrix(n int, value float64, arcs [][2]int) [][]float64 {
	m := make([][]float64, n)
	for i := range m {
		m[i] = make([]float64, n)
	}
	for _, a := range arcs {
		m[a[0]][a[1]] = value
	}
	return m
}

func TestReconstructRoutesSingleTour(t *testing.T) {
	arcs := arcMatrix(4, 0.99, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}})
	arrivals := []float64{0, 1, 2, 3}

	routes, schedules, err := ReconstructRoutes(arcs, arrivals)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	wantRoutes := [][]int{{0, 1, 2, 3, 0}}
	wantSchedules := [][]float64{{1, 2, 3}}
	if diff := cmp.Diff(wantRoutes, routes); diff != "" {
		t.Errorf("routes mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(wantSchedules, schedules); diff != "" {
		t.Errorf("schedules mismatch (-want +got):\n%s", diff)
	}
}

func TestReconstructRoutesMultipleRoutesAscending(t *testing.T) {
	arcs := arcMatrix(4, 1.0, [][2]int{{0, 3}, {3, 0}, {0, 2}, {2, 0}, {0, 1}, {1, 0}})
	arrivals := []float64{0, 5, 6, 7}

	routes, schedules, err := ReconstructRoutes(arcs, arrivals)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	wantRoutes := [][]int{{0, 1, 0}, {0, 2, 0}, {0, 3, 0}}
	wantSchedules := [][]float64{{5}, {6}, {7}}
	if diff := cmp.Diff(wantRoutes, routes); diff != "" {
		t.Errorf("routes are not opened in ascending customer order (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(wantSchedules, schedules); diff != "" {
		t.Errorf("schedules mismatch (-want +got):\n%s", diff)
	}
}

func TestReconstructRoutesLowestIndexTieBreak(t *testing.T) {
	// Vertex 1 has two marginally selected outgoing arcs; the walk has to
	// follow the lowest index (the depot) and leave 2 and 3 to their own
	// routes.
	arcs := arcMatrix(4, 1.0, [][2]int{{0, 1}, {0, 2}, {2, 0}, {0, 3}, {3, 0}})
	arcs[1][0] = 0.52
	arcs[1][2] = 0.97
	arrivals := []float64{0, 1, 2, 3}

	routes, _, err := ReconstructRoutes(arcs, arrivals)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	wantRoutes := [][]int{{0, 1, 0}, {0, 2, 0}, {0, 3, 0}}
	if diff := cmp.Diff(wantRoutes, routes); diff != "" {
		t.Errorf("routes mismatch (-want +got):\n%s", diff)
	}
}

func TestReconstructRoutesIdempotent(t *testing.T) {
	arcs := arcMatrix(5, 0.8, [][2]int{{0, 1}, {1, 3}, {3, 0}, {0, 2}, {2, 4}, {4, 0}})
	arrivals := []float64{0, 1, 2, 3, 4}

	routes1, schedules1, err := ReconstructRoutes(arcs, arrivals)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	routes2, schedules2, err := ReconstructRoutes(arcs, arrivals)
	if err != nil {
		t.Fatalf("unexpected error on rerun: %v", err)
	}
	if diff := cmp.Diff(routes1, routes2); diff != "" {
		t.Errorf("routes differ between reruns:\n%s", diff)
	}
	if diff := cmp.Diff(schedules1, schedules2); diff != "" {
		t.Errorf("schedules differ between reruns:\n%s", diff)
	}
}

func TestReconstructRoutesCycleWithoutDepot(t *testing.T) {
	arcs := arcMatrix(4, 1.0, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 1}})
	arrivals := []float64{0, 1, 2, 3}

	_, _, err := ReconstructRoutes(arcs, arrivals)
	if !errors.Is(err, ErrReconstruction) {
		t.Fatalf("want ErrReconstruction for a cycle that never returns to the depot, got %v", err)
	}
}

func TestReconstructRoutesDeadEnd(t *testing.T) {
	arcs := arcMatrix(3, 1.0, [][2]int{{0, 1}})
	arrivals := []float64{0, 1, 2}

	_, _, err := ReconstructRoutes(arcs, arrivals)
	if !errors.Is(err, ErrReconstruction) {
		t.Fatalf("want ErrReconstruction for a vertex without a selected outgoing arc, got %v", err)
	}
}

func TestReconstructRoutesUnreachedCustomer(t *testing.T) {
	arcs := arcMatrix(3, 1.0, [][2]int{{0, 1}, {1, 0}})
	arrivals := []float64{0, 1, 2}

	_, _, err := ReconstructRoutes(arcs, arrivals)
	if !errors.Is(err, ErrReconstruction) {
		t.Fatalf("want ErrReconstruction when a customer is never reached, got %v", err)
	}
}

func TestExtractArcMatrixRoundTrip(t *testing.T) {
	n := 4
	assignment := make([]float64, n*(n-1))
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			assignment[GetArcIndex(i, j, n, 0)] = float64(i*10 + j)
		}
	}
	arcs := ExtractArcMatrix(assignment, n, 0)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			want := float64(i*10 + j)
			if i == j {
				want = 0
			}
			if arcs[i][j] != want {
				t.Errorf("arcs[%d][%d] = %g, want %g", i, j, arcs[i][j], want)
			}
		}
	}
}

func TestRouteCostAndDemand(t *testing.T) {
	inst := &Instance{
		NVertices:  4,
		CostMatrix: CalcCostMatrix([][]float64{{0, 0}, {0, 1}, {1, 1}, {1, 0}}),
		Demands:    []float64{0, 3, 3, 3},
	}
	route := []int{0, 1, 2, 3, 0}
	if got := RouteCost(inst, route); got != 4 {
		t.Errorf("RouteCost = %g, want 4", got)
	}
	if got := RouteDemand(inst, route); got != 9 {
		t.Errorf("RouteDemand = %g, want 9", got)
	}
}
