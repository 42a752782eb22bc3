package main

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"log"
	"os"
	"strings"

	"git.solver4all.com/azaryc2s/vrptw"
)

func main() {
	if len(os.Args) < 2 {
		log.Printf("No arguments passed!")
		return
	}
	dirName := os.Args[1]
	dir, err := ioutil.ReadDir(dirName)
	if err != nil {
		log.Printf("Couldn't open directory %s: %s\n", os.Args[1], err.Error())
		return
	}
	fmt.Printf("Name,Status,Optimal,Time,TotalCost,Routes,Vertices,Valid,Comment\n")
	for _, f := range dir {
		fileName := dirName + "/" + f.Name()
		if !strings.Contains(fileName, ".json") {
			continue
		}
		inst := vrptw.Instance{}
		instStr, err := ioutil.ReadFile(fileName)
		if err != nil {
			log.Printf("Couldn't read %s: %s\n", f.Name(), err.Error())
			return
		}
		err = json.Unmarshal(instStr, &inst)
		if err != nil {
			log.Printf("Couldn't parse %s: %s\n", f.Name(), err.Error())
			return
		}
		if inst.Solution == nil {
			fmt.Printf("No solution for %s\n", inst.Name)
			continue
		}
		sol := *inst.Solution
		valid := false
		if sol.Status == vrptw.StatusOptimal || sol.Status == vrptw.StatusFeasible {
			var comment string
			valid, comment = vrptw.CheckSolutionValidity(&inst, &sol)
			if !valid {
				sol.Comment = fmt.Sprintf("%s ANALYZER: %s", sol.Comment, comment)
			}
		}
		fmt.Printf("%s,%s,%t,%s,%.2f,%d,%d,%t,%s\n", inst.Name, sol.Status, sol.Optimal, sol.Time, sol.TotalCost, len(sol.Routes), inst.NVertices, valid, sol.Comment)
	}
}
