package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"geckodec/common"
	"geckodec/internal/dump"
)

func main() {
	gnu := flag.Bool("gnu", false, "Render embedded assembly in GNU syntax")
	debug := flag.Bool("debug", false, "Dump decoded record structures before the report")
	verbose := flag.Bool("v", false, "Enable decoder logging")

	flag.Parse()

	logger := common.Logger(common.NewNoOpLogger())
	if *verbose {
		z, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer z.Sync()
		logger = common.NewZapLogger(z)
	}

	cfg := dump.Config{
		Inputs:       flag.Args(),
		GNUSyntax:    *gnu,
		Debug:        *debug,
		Logger:       logger,
		OutputWriter: os.Stdout,
	}

	if err := dump.Run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
