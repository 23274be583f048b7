// raycaster renders unit spheres under affine transforms and the small
// tuple/matrix demos (clock, projectile) to PPM, PNG, GIF or raw files.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"runtime/pprof"

	"github.com/golang/glog"
	"github.com/spf13/cobra"

	"github.com/lukaszgryglicki/raycaster/internal/raycaster"
)

var (
	outPath    string
	pngScale   int
	cpuProfile string
)

var cmdRoot = &cobra.Command{
	Use:           "raycaster",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cpuProfile == "" {
			return nil
		}
		f, err := os.Create(cpuProfile)
		if err != nil {
			return err
		}
		return pprof.StartCPUProfile(f)
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if cpuProfile != "" {
			pprof.StopCPUProfile()
		}
	},
}

func init() {
	cmdRoot.PersistentFlags().StringVar(&outPath, "out", "", "Output file; the extension picks the format (.ppm, .png, .gif, .raw).")
	cmdRoot.PersistentFlags().IntVar(&pngScale, "png-scale", 1, "Nearest-neighbour upscale factor for PNG output; overrides the config's pngScale when set.")
	cmdRoot.PersistentFlags().StringVar(&cpuProfile, "cpuprofile", "", "Write a CPU profile to this file.")
}

var renderWorkers int

var cmdRender = &cobra.Command{
	Use:   "render [config]",
	Short: "Cast one ray per pixel at the spheres described in a JSON or YAML config.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
		defer cancel()

		cfg := "scenes/config.yaml"
		if len(args) > 0 {
			cfg = args[0]
		}
		o := raycaster.Overrides{Output: outPath, Workers: renderWorkers}
		if cmd.Flags().Changed("png-scale") {
			o.PNGScale = pngScale
		}
		return raycaster.Run(ctx, cfg, o)
	},
}

var clockSize int

var cmdClock = &cobra.Command{
	Use:   "clock",
	Short: "Draw the 12 hour marks of a clock face by rotating a point about Z.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return raycaster.RunClock(outPath, clockSize, pngScale)
	},
}

var projectileSpeed float64

var cmdProjectile = &cobra.Command{
	Use:   "projectile",
	Short: "Plot a projectile under gravity and wind.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return raycaster.RunProjectile(outPath, projectileSpeed, pngScale)
	},
}

func init() {
	cmdRender.Flags().IntVar(&renderWorkers, "workers", 0, "Row workers, overriding the config when > 0; with neither set every CPU is used.")
	cmdClock.Flags().IntVar(&clockSize, "size", raycaster.CanvasSize, "Canvas width and height in pixels.")
	cmdProjectile.Flags().Float64Var(&projectileSpeed, "speed", 1.3, "Launch speed.")
}

func main() {
	cmdRoot.PersistentFlags().AddGoFlagSet(flag.CommandLine)
	cmdRoot.AddCommand(cmdRender, cmdClock, cmdProjectile)

	err := cmdRoot.Execute()
	if err != nil {
		glog.Errorf("Error: %v", err)
	}
	glog.Flush()
	if err != nil {
		os.Exit(1)
	}
}
