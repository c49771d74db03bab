package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"time"

	"github.com/qjpcpu/benchprobe/cli"
	"github.com/qjpcpu/benchprobe/list"
	"github.com/qjpcpu/benchprobe/printer"
	"github.com/qjpcpu/benchprobe/probe"
)

func checkKind(kind list.Kind, n int) error {
	q, err := list.New(kind)
	if err != nil {
		return err
	}
	return checkQueue(q, n)
}

// checkQueue run self check, then interleave appends and pops under the invariant checker
func checkQueue(q list.Queue, n int) error {
	if !probe.LinkedListSelfCheck(q, n) {
		return errors.New("self check failed")
	}
	inspector, ok := q.(list.Inspector)
	if !ok {
		return nil
	}
	for i := 0; i < n; i++ {
		q.Append(i)
		if i%2 == 1 {
			if _, err := q.PopFirstElement(); err != nil {
				return fmt.Errorf("pop after %d appends: %v", i+1, err)
			}
		}
		if err := list.CheckInvariants(inspector); err != nil {
			return err
		}
	}
	/* live nodes never exceed n so popped slots must have been reused */
	if arena, ok := q.(*list.ArenaList); ok && arena.Cap() > n {
		return fmt.Errorf("arena grew to %d slots for %d nodes", arena.Cap(), n)
	}
	size := q.Len()
	if released := q.Destroy(); released != size || q.Len() != 0 {
		return fmt.Errorf("destroy released %d of %d nodes", released, size)
	}
	return list.CheckInvariants(inspector)
}

func checkCommand(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("check", flag.ContinueOnError)
	n := fs.Int("n", 10000, "list length")
	progress := fs.Bool("progress", false, "show a progress bar")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *n < 0 {
		return errors.New("length should not be negative")
	}
	failed := 0
	for _, kind := range list.Kinds() {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		kind := kind
		var err error
		if *progress {
			err = cli.WithProgress(string(kind), time.Second, func() error { return checkKind(kind, *n) })
		} else {
			err = checkKind(kind, *n)
		}
		if err != nil {
			failed++
			printer.Error("%s: %v", kind, err)
			continue
		}
		printer.Print("%s: %s", kind, "ok")
	}
	if failed > 0 {
		return errors.New("list check failed")
	}
	return nil
}
