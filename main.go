package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/Bakugany/Concurrent-programming/solver"
)

func main() {
	var (
		verbose bool
		workers int
	)
	flag.BoolVar(&verbose, "verbose", false, "sets verbose mode on")
	flag.IntVar(&workers, "workers", 0, "overrides the worker count from the input header")
	flag.Parse()
	if len(flag.Args()) != 0 {
		fmt.Fprintf(os.Stderr, "Syntax : %s [options] < input\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(1)
	}

	pb, err := solver.ParseInput(os.Stdin)
	if err != nil {
		fmt.Fprintf(os.Stderr, "could not parse problem: %v\n", err)
		os.Exit(1)
	}
	if workers > 0 {
		pb.Workers = workers
	}
	if verbose {
		fmt.Printf("c element bound      : %9d\n", pb.D)
		fmt.Printf("c workers            : %9d\n", pb.Workers)
		fmt.Printf("c seed pairs         : %9d\n", len(pb.Pairs))
	}

	s, err := solver.New(pb.D, pb.Workers)
	if err != nil {
		fmt.Fprintf(os.Stderr, "could not create solver: %v\n", err)
		os.Exit(1)
	}
	if verbose {
		s.Logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	for i, pair := range pb.Pairs {
		sol, err := s.Solve(pair.A, pair.B)
		if verbose {
			fmt.Printf("c pair %d: nb frames: %d, nb tasks: %d, nb donations: %d\n",
				i+1, s.Stats.NbFrames, s.Stats.NbTasks, s.Stats.NbDonations)
		}
		if err != nil {
			// Best effort: print what was found before giving up.
			_ = sol.Write(os.Stdout)
			fmt.Fprintf(os.Stderr, "could not solve pair %d: %v\n", i+1, err)
			os.Exit(1)
		}
		if err := sol.Write(os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
	}
}
