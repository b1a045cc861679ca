// hgttool is a CLI utility for inspecting and converting SRTM HGT tiles.
package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/srtm-terrain/internal/config"
	"github.com/Faultbox/srtm-terrain/internal/logger"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()
	logger.Sugar.Debugf("config: %+v", cfg)

	args := flag.Args()
	if len(args) < 1 {
		printUsage()
		os.Exit(1)
	}

	command, args := args[0], args[1:]

	switch command {
	case "info":
		err = cmdInfo(cfg, args)
	case "points", "pts":
		err = cmdPoints(cfg, args)
	case "export", "x":
		err = cmdExport(cfg, args)
	case "hist":
		err = cmdHist(cfg, args)
	case "flight":
		err = cmdFlight(cfg, args)
	case "config":
		err = cmdConfig(cfg, args)
	case "help", "-h", "--help":
		printUsage()
		return
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		logger.Error("command failed", zap.String("command", command), zap.Error(err))
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		logger.Sync()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`hgttool - SRTM HGT terrain utility

Usage:
  hgttool [flags] <command> [args]

Commands:
  info <file.hgt>...              Show size, elevation range and statistics
  points [file.hgt]               Show normalized point cloud summary
  export [file.hgt] <out>         Write normalized points as msgpack
  hist [file.hgt] <out.png>       Write an elevation histogram
  flight [count]                  Generate random flight paths
  config [out.yaml]               Write the effective configuration

Flags:
  -config <file>  Config file (default ./hgttool.yaml)
  -hgt <file>     Tile to load when no file argument is given
  -side <n>       Tile side length (0 = infer from file size)
  -step <n>       Subsampling step
  -seed <n>       Flight path seed (0 = random)
  -color          Export position+color vertices
  -debug          Enable debug logging

Examples:
  hgttool info N33W118.hgt N34W118.hgt
  hgttool -step 5 export N33W118.hgt points.msgpack
  hgttool -side 1201 hist N46E007.hgt.gz hist.png
  hgttool -seed 42 flight 3`)
}
