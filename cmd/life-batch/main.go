package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"slices"
	"strings"

	"gridlife/internal/app"
	"gridlife/internal/controller"
	"gridlife/internal/life"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	generations := flag.String("n", "1", "generations to compute (invalid values run one)")
	both := flag.Bool("both", false, "run cpu and gpu engines side by side and report parity")
	show := flag.Bool("print", true, "print the final grid")
	flag.Parse()

	if !*both {
		ctrl := mustSetup(cfg)
		batch := mustCompute(ctrl, cfg.Engine, *generations)
		report(batch)
		if *show {
			printGrid(ctrl)
		}
		return
	}

	scalar := mustSetup(cfg)
	parallel := mustSetup(cfg)
	sb := mustCompute(scalar, life.ScalarName, *generations)
	pb := mustCompute(parallel, life.ParallelName, *generations)
	report(sb)
	report(pb)
	if *show {
		printGrid(scalar)
	}
	if !slices.Equal(scalar.Cells(), parallel.Cells()) {
		fmt.Println("parity: MISMATCH")
		os.Exit(1)
	}
	fmt.Println("parity: ok")
}

func mustSetup(cfg *app.Config) *controller.Controller {
	ctrl, err := app.Setup(cfg)
	if err != nil {
		log.Fatal(err)
	}
	return ctrl
}

func mustCompute(ctrl *controller.Controller, engine, generations string) controller.Batch {
	batch, err := ctrl.Compute(engine, generations)
	if err != nil {
		log.Fatalf("%v (engines: %s)", err, strings.Join(ctrl.EngineNames(), ", "))
	}
	return batch
}

func report(b controller.Batch) {
	fmt.Printf("%s: %d generations in %s, %d alive\n", b.Engine, b.Iterations, b.Elapsed, b.Alive)
}

func printGrid(ctrl *controller.Controller) {
	size := ctrl.Size()
	cells := ctrl.Cells()
	var sb strings.Builder
	for row := 0; row < size.H; row++ {
		for col := 0; col < size.W; col++ {
			idx, _ := size.Index(row, col)
			if cells[idx] {
				sb.WriteByte('O')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	fmt.Print(sb.String())
}
