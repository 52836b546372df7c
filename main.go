package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"

	"desktopmonitor/monitor"
	"desktopmonitor/sensor"
)

func main() {
	configFile := flag.String("config", "", "Path to an optional TOML config file")
	verbose := flag.Bool("verbose", false, "Log ignored cpuinfo, cpupower, sensors and mpstat lines to stderr")
	flag.Parse()

	config, err := loadConfig(*configFile)
	if err != nil {
		fail(err)
	}
	if *verbose {
		config.Verbose = true
	}

	logger := log.New(io.Discard, "", 0)
	if config.Verbose {
		logger = log.New(os.Stderr, "desktopmonitor: ", log.LstdFlags)
	}

	if err = run(context.Background(), sensor.NewShellExecutor(), config, logger, os.Stdout); err != nil {
		fail(err)
	}
}

// run collects the cpu report and writes it to out. Nothing is written if
// any of the commands fail.
func run(ctx context.Context, executor sensor.Executor, config Config, logger *log.Logger, out io.Writer) error {
	report, err := monitor.New(executor, config.Commands, logger).Report(ctx)
	if err != nil {
		return err
	}
	b, err := report.JSON()
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	_, err = fmt.Fprintln(out, string(b))
	return err
}

// fail prints err in red if stderr is a terminal and exits.
func fail(err error) {
	msg := err.Error()
	fd := os.Stderr.Fd()
	if isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd) {
		msg = "\x1b[31m" + msg + "\x1b[0m"
	}
	fmt.Fprintln(colorable.NewColorableStderr(), msg)
	os.Exit(1)
}
