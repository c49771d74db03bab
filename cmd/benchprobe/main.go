package main

import (
	"context"
	"flag"
	"io"
	"os"
	"os/signal"
	"sort"
	"syscall"

	"github.com/qjpcpu/benchprobe/assert"
	"github.com/qjpcpu/benchprobe/printer"
)

// stdout of tables rendered by commands
var stdout io.Writer = os.Stdout

type command struct {
	name  string
	usage string
	run   func(ctx context.Context, args []string) error
}

var commands = map[string]command{
	"run":     {name: "run", usage: "run probes and report results", run: runCommand},
	"chart":   {name: "chart", usage: "draw bar charts from a result csv", run: chartCommand},
	"history": {name: "history", usage: "list stored runs", run: historyCommand},
	"check":   {name: "check", usage: "self check every list kind", run: checkCommand},
}

func usage() {
	printer.Plain("usage: benchprobe <command> [flags]")
	var names []string
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		printer.Print("  %-8s %s", name, commands[name].usage)
	}
}

func signalContext() (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())
	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, os.Interrupt, syscall.SIGTERM)
	go func() {
		select {
		case <-sigc:
			cancel()
		case <-ctx.Done():
		}
		signal.Stop(sigc)
	}()
	return ctx, cancel
}

// execute cmd, panics of Must helpers are reported as errors
func execute(ctx context.Context, cmd command, args []string) error {
	var err error
	if perr := assert.AllowPanic(func() { err = cmd.run(ctx, args) }); perr != nil {
		return perr
	}
	return err
}

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	cmd, ok := commands[os.Args[1]]
	if !ok {
		if os.Args[1] != "-h" && os.Args[1] != "help" {
			printer.Error("unknown command %s", os.Args[1])
		}
		usage()
		os.Exit(2)
	}
	ctx, cancel := signalContext()
	err := execute(ctx, cmd, os.Args[2:])
	cancel()
	if err == flag.ErrHelp {
		os.Exit(2)
	}
	if err != nil {
		printer.Error("%s: %v", cmd.name, err)
		os.Exit(1)
	}
}
