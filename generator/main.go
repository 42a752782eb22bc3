package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io/ioutil"
	"log"
	"math/rand"
	"time"

	"git.solver4all.com/azaryc2s/vrptw"
)

var customers vrptw.ArrayIntFlags
var vehicles vrptw.ArrayIntFlags
var name *string
var output *string
var count *int
var seed *int64
var capacity *float64
var xTo *float64
var yTo *float64
var twStart *int
var twWidthMin *int
var twWidthMax *int
var depotHorizon *float64

func main() {
	flag.Var(&customers, "n", "List of customer counts (excluding the depot)")
	flag.Var(&vehicles, "m", "List of vehicle counts")
	name = flag.String("name", "zarychta", "Name for the instance")
	output = flag.String("outputDir", ".", "Output directory")
	count = flag.Int("count", 1, "Number of instances per combination")
	seed = flag.Int64("seed", 0, "Random seed. 0 seeds from the clock")
	capacity = flag.Float64("capacity", 30, "Vehicle capacity")
	xTo = flag.Float64("x", 100, "Max value on the x-axis")
	yTo = flag.Float64("y", 100, "Max value on the y-axis")
	twStart = flag.Int("twStart", 500, "Latest possible time-window opening")
	twWidthMin = flag.Int("twWidthMin", 50, "Smallest time-window width")
	twWidthMax = flag.Int("twWidthMax", 200, "Largest time-window width")
	depotHorizon = flag.Float64("horizon", 1000, "Upper bound of the depot time window")

	flag.Parse()

	if len(customers) == 0 || len(vehicles) == 0 {
		log.Printf("Need at least one -n and one -m value!")
		return
	}
	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	rand.Seed(*seed)

	for l := 0; l < *count; l++ {
		for i := 0; i < len(customers); i++ {
			nc := customers[i]
			n := nc + 1
			coordinates := make([][]float64, n)
			coordinates[0] = []float64{*xTo / 2, *yTo / 2} //depot at the center
			for v := 1; v < n; v++ {
				coordinates[v] = []float64{rand.Float64() * *xTo, rand.Float64() * *yTo}
			}
			costMatrix := vrptw.CalcCostMatrix(coordinates)

			timeWindows := make([][]float64, n)
			serviceTimes := make([]float64, n)
			demands := make([]float64, n)
			timeWindows[0] = []float64{0, *depotHorizon}
			for v := 1; v < n; v++ {
				early := rand.Intn(*twStart + 1)
				width := *twWidthMin + rand.Intn(*twWidthMax-*twWidthMin+1)
				timeWindows[v] = []float64{float64(early), float64(early + width)}
				serviceTimes[v] = float64(5 + rand.Intn(16))
				demands[v] = float64(1 + rand.Intn(10))
			}

			for j := 0; j < len(vehicles); j++ {
				m := vehicles[j]
				instName := fmt.Sprintf("%s_%d_%d_%d", *name, nc, m, l)
				comment := fmt.Sprintf("%s instance Nr. %d with %d customers, %d vehicles and capacity %g", *name, l, nc, m, *capacity)
				inst := vrptw.Instance{
					Name:            instName,
					Comment:         comment,
					Type:            "VRPTW",
					NVertices:       n,
					NCustomers:      nc,
					NVehicles:       m,
					VehicleCapacity: *capacity,
					Coordinates:     coordinates,
					CostMatrix:      costMatrix,
					TimeWindows:     timeWindows,
					ServiceTimes:    serviceTimes,
					Demands:         demands,
				}

				jsonInst, err := json.MarshalIndent(inst, "", "\t")
				if err != nil {
					log.Fatal(err)
				}
				jsonInst = []byte(vrptw.SanitizeJsonArrayLineBreaks(string(jsonInst)))
				err = ioutil.WriteFile(fmt.Sprintf("%s/%s.json", *output, instName), jsonInst, 0644)
				if err != nil {
					log.Fatal(err)
				}
			}
		}
	}
}
