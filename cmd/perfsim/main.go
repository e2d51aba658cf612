// Command perfsim accepts a path to an ELF executable and a step count,
// constructs the simulator, and calls step() N times.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/gkorepanov/riscv-in-nutshell/pkg/config"
	"github.com/gkorepanov/riscv-in-nutshell/pkg/loader"
	"github.com/gkorepanov/riscv-in-nutshell/pkg/memory"
	"github.com/gkorepanov/riscv-in-nutshell/pkg/pipeline"
)

func main() {
	log.SetFlags(0)

	var (
		configPath string
		steps      uint32
		trace      bool
		color      bool
	)

	root := &cobra.Command{
		Use:   "perfsim <executable.elf>",
		Short: "cycle-accurate RV32I five-stage pipeline simulator",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			if cmd.Flags().Changed("steps") {
				cfg.Steps = steps
			}
			if cmd.Flags().Changed("trace") {
				cfg.Trace = trace
			}
			if cmd.Flags().Changed("color") {
				cfg.Color = color
			}
			return run(args[0], cfg)
		},
	}
	root.Flags().StringVar(&configPath, "config", "", "path to a TOML run configuration")
	root.Flags().Uint32Var(&steps, "steps", 0, "number of cycles to simulate")
	root.Flags().BoolVar(&trace, "trace", false, "print per-cycle stage trace to stdout")
	root.Flags().BoolVar(&color, "color", false, "colorize the stage trace")

	if err := root.Execute(); err != nil {
		log.Fatal(err)
	}
}

func run(elfPath string, cfg config.Config) error {
	image, err := loader.Load(elfPath, cfg.MemorySize)
	if err != nil {
		return err
	}
	mem, err := memory.New(cfg.MemorySize, image.Data, image.EntryPC, image.StackPtr)
	if err != nil {
		return err
	}
	sim := pipeline.New(mem)
	if cfg.Trace {
		sim.SetTrace(os.Stdout)
		sim.EnableColor(cfg.Color)
	}
	if err := sim.Run(cfg.Steps); err != nil {
		return err
	}
	fmt.Println(sim.RF().Dump())
	return nil
}
