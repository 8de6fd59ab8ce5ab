package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/seqlogic/dffsim/bench"
	"github.com/seqlogic/dffsim/wave"
)

func main() {
	var vectors string
	var script string
	var output string
	var watch string
	var periods int
	var verbose bool

	flag.StringVar(&vectors, "f", "", "stimulus vector file to run")
	flag.StringVar(&script, "x", "", "Starlark testbench to run")
	flag.StringVar(&output, "o", "", "VCD waveform output file")
	flag.StringVar(&watch, "m", "", "comma-separated signals to monitor for edges")
	flag.IntVar(&periods, "n", 0, "free-run clock periods after stimulus")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	b := bench.NewBench()
	b.Verbose = verbose
	b.Reg.Verbose = verbose

	var monitors []*bench.Monitor
	if watch != "" {
		for _, name := range strings.Split(watch, ",") {
			mon, err := b.Watch(strings.TrimSpace(name))
			if err != nil {
				log.Fatalf("%v: %v", name, err)
			}
			monitors = append(monitors, mon)
		}
	}

	if output != "" {
		ouf, err := os.Create(output)
		if err != nil {
			log.Fatalf("%v: %v", output, err)
		}
		defer ouf.Close()

		err = b.Trace(wave.NewTracer(ouf))
		if err != nil {
			log.Fatalf("%v: %v", output, err)
		}
	}

	// Establish a known state before any stimulus.
	if err := b.Reset(); err != nil {
		log.Fatal(err)
	}

	if vectors != "" {
		inf, err := os.Open(vectors)
		if err != nil {
			log.Fatalf("%v: %v", vectors, err)
		}
		defer inf.Close()

		if err := b.RunVectors(inf); err != nil {
			log.Fatalf("%v: %v", vectors, err)
		}
	}

	if script != "" {
		if err := b.RunScript(script, nil); err != nil {
			log.Fatalf("%v: %v", script, err)
		}
	}

	if periods > 0 {
		if err := b.TickN(periods); err != nil {
			log.Fatal(err)
		}
	}

	for _, mon := range monitors {
		fmt.Printf("%s: %d rising, %d falling\n", mon.Signal, mon.Rising, mon.Falling)
	}

	fmt.Print(b.Reg.String())
}
