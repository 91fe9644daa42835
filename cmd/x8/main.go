// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/k0kubun/pp/v3"
	"github.com/tebeka/atexit"

	"github.com/ezrec/x8/emulator"
)

func main() {
	var compile string
	var verbose bool
	var steps int
	var ast bool
	defines := defineList{}

	flag.StringVar(&compile, "c", "", ".x8 file to assemble and run, or - for stdin")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")
	flag.IntVar(&steps, "n", 0, "Step limit (0 for none)")
	flag.BoolVar(&ast, "ast", false, "Dump the parsed program")
	flag.Var(defines, "D", "Predefine NAME=VALUE (repeatable)")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Printf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
		atexit.Exit(2)
	}

	if len(compile) == 0 {
		log.Printf("%v: no source file given (-c)", os.Args[0])
		atexit.Exit(2)
	}

	var input io.Reader = os.Stdin
	if compile != "-" {
		inf, err := os.Open(compile)
		if err != nil {
			log.Printf("%v: %v", compile, err)
			atexit.Exit(1)
		}
		atexit.Register(func() { inf.Close() })
		input = inf
	}

	emu := emulator.NewEmulator()
	emu.Verbose = verbose
	emu.StepLimit = steps
	for name, value := range defines {
		emu.Define(name, value)
	}

	err := emu.Load(input)
	if err != nil {
		log.Printf("%v: %v", compile, err)
		atexit.Exit(1)
	}

	if ast {
		pp.Println(emu.Source)
	}

	err = emu.Run()
	fmt.Println(renderState(emu.Cpu))
	if err != nil {
		log.Printf("%v: %v", compile, err)
		atexit.Exit(1)
	}

	atexit.Exit(0)
}
