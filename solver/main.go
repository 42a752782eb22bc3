/* Copyright 2026, solver4all */

package main

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"os"
	"strings"
	"time"

	"git.solver4all.com/azaryc2s/gorobi/gurobi"
	"git.solver4all.com/azaryc2s/vrptw"
	"github.com/joho/godotenv"
	"github.com/shirou/gopsutil/cpu"
	"github.com/shirou/gopsutil/host"
	"github.com/shirou/gopsutil/mem"
	"github.com/urfave/cli"
)

var (
	inst vrptw.Instance
	sol  vrptw.Solution

	inputF  string
	outputF string
)

func main() {
	app := cli.NewApp()
	app.Name = "vrptw-solver"
	app.Usage = "solve a VRPTW instance with the two-index MTZ MIP formulation"
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "input, i",
			Value: "input.json",
			Usage: "path to the input instance",
		},
		cli.StringFlag{
			Name:  "output, o",
			Usage: "path to the output file. By default the input file will be overwritten adding the solution",
		},
		cli.Float64Flag{
			Name:  "timelimit, t",
			Value: 300,
			Usage: "solver time limit in seconds (clamped to the policy bounds)",
		},
		cli.BoolFlag{
			Name:  "writelp",
			Usage: "write the assembled model next to the input as an .lp file",
		},
		cli.IntFlag{
			Name:  "log",
			Value: 2,
			Usage: "level of the logging output. Higher value is more verbose. Range 1-4",
		},
	}
	app.Action = run
	if err := app.Run(os.Args); err != nil {
		vrptw.Log(1, err.Error())
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	vrptw.InitLoggers(c.Int("log"))
	if err := godotenv.Load(); err == nil {
		vrptw.Log(3, "Loaded environment overrides from .env")
	}

	inputF = c.String("input")
	outputF = c.String("output")

	instStr, err := ioutil.ReadFile(inputF)
	if err != nil {
		return fmt.Errorf("at %s: %s", inputF, err.Error())
	}
	if err := json.Unmarshal(instStr, &inst); err != nil {
		return fmt.Errorf("at %s: %s", inputF, err.Error())
	}
	if err := vrptw.ValidateInstance(&inst); err != nil {
		return fmt.Errorf("invalid instance %s: %s", inputF, err.Error())
	}

	policy := vrptw.PolicyFromEnv()
	est := vrptw.EstimateComplexity(inst.NVertices)
	vrptw.Log(2, "Instance %s: %d vertices, predicted %d vars / %d constraints, class %s",
		inst.Name, est.NVertices, est.TotalVars, est.TotalConstraints, est.Class)
	if err := policy.Admit(&inst); err != nil {
		return err
	}
	if ok, warning := vrptw.CheckFleetCapacity(&inst); !ok {
		vrptw.Log(2, warning)
	}

	hostStat, _ := host.Info()
	cpuStat, _ := cpu.Info()
	vmStat, _ := mem.VirtualMemory()
	sol = vrptw.Solution{Status: vrptw.StatusNotSolved}
	if hostStat != nil && len(cpuStat) > 0 && vmStat != nil {
		sol.System = vrptw.SysInfo{Platform: hostStat.Platform, CPU: cpuStat[0].ModelName, RAM: fmt.Sprintf("%d GB", vmStat.Total/1024/1024/1024)}
	}

	env, err := gurobi.LoadEnv("vrptw_gurobi.log")
	if err != nil {
		return fmt.Errorf("at %s: %s", inputF, err.Error())
	}
	defer env.Free()
	env.SetIntParam("LogToConsole", int32(0))

	model, err := vrptw.CreateVRPTWModel(env, &inst)
	if err != nil {
		return fmt.Errorf("at %s: %s", inputF, err.Error())
	}

	if c.Bool("writelp") {
		lpName := strings.ReplaceAll(inputF, ".json", ".lp")
		if err := model.GModel.Write(lpName); err != nil {
			vrptw.Log(1, "Couldn't write %s: %s", lpName, err.Error())
		}
	}

	limit := policy.ClampTimeLimit(c.Float64("timelimit"))
	vrptw.Log(2, "Optimizing with a time limit of %.0fs", limit)
	startTime := time.Now()
	res, err := model.Solve(limit)
	sol.Time = time.Since(startTime).String()
	sol.Status = res.Status
	if err != nil {
		sol.Comment += fmt.Sprintf("Solver error: %s. ", err.Error())
		writeSolution()
		return err
	}
	vrptw.Log(2, "\n---OPTIMIZATION DONE---\n")
	vrptw.Log(2, "Solver finished with status %s", res.Status)

	if res.Status != vrptw.StatusOptimal && res.Status != vrptw.StatusFeasible {
		sol.Comment += fmt.Sprintf("No routes: solver reported %s. ", res.Status)
		writeSolution()
		return nil
	}

	extracted, err := model.ExtractSolution(res)
	if err != nil {
		sol.Comment += fmt.Sprintf("Extraction error: %s. ", err.Error())
		writeSolution()
		return err
	}
	extracted.Time = sol.Time
	extracted.System = sol.System
	sol = *extracted

	if valid, comment := vrptw.CheckSolutionValidity(&inst, &sol); !valid {
		vrptw.Log(1, comment)
		sol.Comment += comment
	} else {
		vrptw.Log(2, "The computed solution is valid!")
	}
	vrptw.Log(2, "Found a VRPTW solution with total cost %.2f over %d routes", sol.TotalCost, len(sol.Routes))
	for i := range sol.Routes {
		vrptw.Log(2, "Route %d: %s (cost %.2f, demand %g)", i+1, vrptw.FormatRoute(sol.Routes[i]), sol.RouteCosts[i], sol.RouteDemands[i])
	}

	writeSolution()
	return nil
}

func writeSolution() {
	inst.Solution = &sol
	jsonInst, err := json.MarshalIndent(inst, "", "\t")
	if err != nil {
		vrptw.Log(1, "At %s: %s\n", inputF, err.Error())
		return
	}
	jsonInst = []byte(vrptw.SanitizeJsonArrayLineBreaks(string(jsonInst)))
	fileName := outputF
	if fileName == "" {
		fileName = inputF //overwrite the input file
	}
	if err := ioutil.WriteFile(fileName, jsonInst, 0644); err != nil {
		vrptw.Log(1, "At %s: %s\n", fileName, err.Error())
	}
}
