// Command mx2 grows two-dimensional MX2 networks ring by ring and writes their ring
// statistics.
//
//	mx2 grow --config run.yaml --replicas 4
//	mx2 seed --geometry hexagonal --rows 4 --cols 4 --out -
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/pkg/errors"
	"github.com/plan-systems/klog"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/urfave/cli/v2"

	"github.com/katalvlaran/mx2/config"
	"github.com/katalvlaran/mx2/simulation"
)

func main() {
	app := &cli.App{
		Name:  "mx2",
		Usage: "Grow MX2 networks by Monte Carlo ring addition",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "v",
				Usage: "Log verbosity (klog -v)",
				Value: 0,
			},
		},
		Before: func(c *cli.Context) error {
			return initLogging(c.Int("v"))
		},
		After: func(c *cli.Context) error {
			klog.Flush()
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:  "grow",
				Usage: "Grow networks from a run file and write one analysis per replica",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "config",
						Aliases: []string{"c"},
						Usage:   "Run file (.yaml, .yml or .toml); built-in defaults when empty",
					},
					&cli.IntFlag{
						Name:    "replicas",
						Aliases: []string{"n"},
						Usage:   "Number of independent networks, seeded consecutively",
						Value:   1,
					},
					&cli.StringFlag{
						Name:    "out",
						Aliases: []string{"o"},
						Usage:   "Output prefix (overrides io.prefix_out)",
					},
					&cli.StringFlag{
						Name:  "metrics",
						Usage: "Write growth metrics in Prometheus text format to this file",
					},
				},
				Action: grow,
			},
			{
				Name:  "seed",
				Usage: "Build a seed network and write its analysis",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "geometry",
						Usage: "Seed geometry: hexagonal, ring or pair",
						Value: config.GeometryHexagonal,
					},
					&cli.IntFlag{Name: "rows", Usage: "Honeycomb rows", Value: 3},
					&cli.IntFlag{Name: "cols", Usage: "Honeycomb columns", Value: 3},
					&cli.IntFlag{Name: "size", Usage: "Ring size of the ring and pair seeds", Value: 6},
					&cli.StringFlag{
						Name:    "out",
						Aliases: []string{"o"},
						Usage:   "Output prefix; \"-\" writes to stdout",
						Value:   "-",
					},
				},
				Action: seed,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		klog.Errorf("%v", err)
		klog.Flush()
		os.Exit(1)
	}
}

func initLogging(verbosity int) error {
	fset := flag.NewFlagSet("klog", flag.ContinueOnError)
	klog.InitFlags(fset)
	if err := fset.Set("logtostderr", "true"); err != nil {
		return err
	}
	if err := fset.Set("v", strconv.Itoa(verbosity)); err != nil {
		return err
	}
	klog.SetFormatter(&klog.FmtConstWidth{
		FileNameCharWidth: 16,
		UseColor:          true,
	})

	return nil
}

func grow(c *cli.Context) error {
	cfg := config.Default()
	if path := c.String("config"); path != "" {
		var err error
		if cfg, err = config.Load(path); err != nil {
			return err
		}
	}
	if out := c.String("out"); out != "" {
		cfg.IO.PrefixOut = out
	}

	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	reg := prometheus.NewRegistry()
	metrics := simulation.NewMetrics(reg)
	replicas := c.Int("replicas")
	sims, results, err := simulation.RunReplicas(ctx, cfg, replicas, metrics)
	if err != nil {
		return err
	}

	for i, s := range sims {
		name := cfg.IO.PrefixOut + "_analysis.dat"
		if replicas > 1 {
			name = fmt.Sprintf("%s_%d_analysis.dat", cfg.IO.PrefixOut, i)
		}
		if err = writeFile(name, s.WriteAnalysis); err != nil {
			return err
		}
		klog.Infof("replica %d (%s): %d rings, energy %.6f -> %s", i, results[i].RunID, results[i].Rings, results[i].Energy, name)
	}

	if path := c.String("metrics"); path != "" {
		if err = prometheus.WriteToTextfile(path, reg); err != nil {
			return errors.Wrap(err, "write metrics")
		}
	}

	return nil
}

func seed(c *cli.Context) error {
	cfg := config.Default()
	cfg.Network.Geometry = c.String("geometry")
	cfg.Network.SeedRows = c.Int("rows")
	cfg.Network.SeedCols = c.Int("cols")
	cfg.Network.SeedRingSize = c.Int("size")
	if err := config.Validate(cfg); err != nil {
		return err
	}

	net, err := simulation.Seed(cfg)
	if err != nil {
		return err
	}
	write := func(w io.Writer) error { return net.WriteAnalysis(w, net.CheckGeometry()) }

	out := c.String("out")
	if out == "-" {
		return write(os.Stdout)
	}

	return writeFile(out+"_seed_analysis.dat", write)
}

func writeFile(name string, write func(io.Writer) error) error {
	f, err := os.Create(name)
	if err != nil {
		return errors.Wrap(err, "create output")
	}
	if err = write(f); err != nil {
		f.Close()
		return errors.Wrapf(err, "write %s", name)
	}

	return errors.Wrapf(f.Close(), "close %s", name)
}
