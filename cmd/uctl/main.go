package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/Arlet/verilog-65C02/ctl"
)

func main() {
	var compile string
	var image string
	var output string
	var trace string
	var verbose bool

	flag.StringVar(&compile, "c", "", ".uasm microcode source to compile")
	flag.StringVar(&image, "i", "", ".hex microcode image to load")
	flag.StringVar(&output, "o", "", ".hex microcode image to write")
	flag.StringVar(&trace, "t", "", "trace stimulus: hex data bytes, '+' suffix sets the condition bit")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	var img []uint64

	switch {
	case len(compile) != 0:
		inf, err := os.Open(compile)
		if err != nil {
			log.Fatalf("%v: %v", compile, err)
		}
		defer inf.Close()

		asm := &ctl.Assembler{Verbose: verbose}
		img, err = asm.Parse(inf)
		if err != nil {
			log.Fatalf("%v: %v", compile, err)
		}
	case len(image) != 0:
		inf, err := os.Open(image)
		if err != nil {
			log.Fatalf("%v: %v", image, err)
		}
		defer inf.Close()

		img, err = ctl.ReadImage(inf)
		if err != nil {
			log.Fatalf("%v: %v", image, err)
		}
	default:
		log.Fatalf("%v: no microcode source (-c) or image (-i)", os.Args[0])
	}

	if len(output) != 0 {
		ouf := os.Stdout
		if output != "-" {
			var err error
			ouf, err = os.Create(output)
			if err != nil {
				log.Fatalf("%v: %v", output, err)
			}
			defer ouf.Close()
		}
		err := ctl.WriteImage(ouf, img)
		if err != nil {
			log.Fatalf("%v: %v", output, err)
		}
	}

	if len(trace) != 0 {
		eng, err := ctl.NewEngine(img)
		if err != nil {
			log.Fatal(err)
		}
		eng.Verbose = verbose

		for n, token := range strings.Fields(trace) {
			cond := strings.HasSuffix(token, "+")
			token = strings.TrimSuffix(token, "+")
			data, err := strconv.ParseUint(token, 16, 8)
			if err != nil {
				log.Fatalf("%v: %v", token, err)
			}

			index := eng.Seq.Index()
			sig := eng.Step(ctl.Input{Data: uint8(data), Cond: cond})
			fmt.Printf("%3d %03x %v\n", n, index, sig)
		}
	}
}
