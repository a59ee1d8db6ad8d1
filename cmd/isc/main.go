// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ttopal/Improved-Simple-Computer-Taub/computer"
	"github.com/ttopal/Improved-Simple-Computer-Taub/emulator"
	"github.com/ttopal/Improved-Simple-Computer-Taub/image"
)

func main() {
	var compile string
	var load string
	var dump string
	var hz float64
	var limit int
	var turbo bool
	var verbose bool
	var defines bool

	flag.StringVar(&compile, "c", "", ".isc source file to assemble")
	flag.StringVar(&load, "i", "", "memory image listing to load")
	flag.StringVar(&dump, "o", "", "write memory listing here after halt")
	flag.Float64Var(&hz, "hz", emulator.CLOCK_HZ, "simulated clock rate")
	flag.IntVar(&limit, "t", 0, "tick limit, 0 for none")
	flag.BoolVar(&turbo, "turbo", false, "run unpaced, as fast as possible")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")
	flag.BoolVar(&defines, "D", false, "print machine defines and exit")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	emu := emulator.NewEmulator()
	emu.Verbose = verbose
	emu.Hz = hz

	if defines {
		for key, value := range emu.Defines() {
			fmt.Printf("%v=%v\n", key, value)
		}
		return
	}

	switch {
	case len(compile) != 0:
		inf, err := os.Open(compile)
		if err != nil {
			log.Fatalf("%v: %v", compile, err)
		}
		defer inf.Close()

		asm := &computer.Assembler{Verbose: verbose}
		for key, value := range emu.Defines() {
			asm.Predefine(key, value)
		}
		prog, err := asm.Parse(inf)
		if err != nil {
			log.Fatalf("%v: %v", compile, err)
		}
		emu.Program = prog
	case len(load) != 0:
		inf, err := os.Open(load)
		if err != nil {
			log.Fatalf("%v: %v", load, err)
		}
		img, err := image.Load(inf)
		inf.Close()
		if err != nil {
			log.Fatalf("%v: %v", load, err)
		}
		emu.Program = &computer.Program{Statements: []computer.Statement{{
			Addr: 0,
			Code: wordsOf(img),
		}}}
	default:
		prog, err := emulator.DemoProgram()
		if err != nil {
			log.Fatalf("demo: %v", err)
		}
		emu.Program = prog
	}

	if verbose {
		emu.Trace = os.Stderr
	}

	err := emu.Reset()
	if err != nil {
		log.Fatal(err)
	}

	if turbo {
		err = emu.Run(limit)
		if err != nil {
			log.Fatal(err)
		}
	} else {
		for {
			done, err := emu.Update()
			if err != nil {
				log.Fatal(err)
			}
			if done {
				break
			}
			if limit != 0 && emu.Ticks >= limit {
				log.Fatalf("tick limit %d exceeded", limit)
			}
			time.Sleep(time.Millisecond)
		}
	}

	fmt.Printf("halted after %d ticks\n%v", emu.Ticks, emu.Computer)

	if len(dump) != 0 {
		ouf, err := os.Create(dump)
		if err != nil {
			log.Fatalf("%v: %v", dump, err)
		}
		defer ouf.Close()

		err = image.Save(ouf, emu.Ram.Words())
		if err != nil {
			log.Fatalf("%v: %v", dump, err)
		}
	}
}

// wordsOf converts a raw memory image to machine words.
func wordsOf(img []uint16) (words []computer.Word) {
	for _, word := range img {
		words = append(words, computer.Word(word))
	}
	return
}
