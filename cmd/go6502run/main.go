// Command go6502run is the command-line entry point for the
// emulator. Loading images, parsing flags, and printing the final
// state are external collaborators to the core per spec.md -
// everything interesting (dispatch, flags, the bus) lives in cpu,
// memory, and driver.
package main

import (
	"fmt"
	"log"
	"os"

	"gopkg.in/urfave/cli.v2"

	"github.com/go6502run/emu6502/diag"
	"github.com/go6502run/emu6502/disasm"
	"github.com/go6502run/emu6502/driver"
)

func main() {
	app := &cli.App{
		Name:    "go6502run",
		Usage:   "run a 6502 program/ROM image against the emulator core",
		Version: "v0.1.0",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "rom",
				Aliases: []string{"r"},
				Usage:   "path to a ROM image loaded at 0x8000",
			},
			&cli.StringFlag{
				Name:    "program",
				Aliases: []string{"p"},
				Usage:   "path to a program image to load before running",
			},
			&cli.UintFlag{
				Name:  "base",
				Usage: "address to load --program at",
				Value: 0x0600,
			},
			&cli.UintFlag{
				Name:  "entry",
				Usage: "PC value after reset (ignored if --use-reset-vector)",
				Value: 0x0600,
			},
			&cli.BoolFlag{
				Name:  "use-reset-vector",
				Usage: "take PC from the reset vector at 0xFFFC/0xFFFD instead of --entry",
			},
			&cli.BoolFlag{
				Name:  "dump",
				Usage: "print a short disassembly of the entry point before running",
			},
			&cli.IntFlag{
				Name:  "max-steps",
				Usage: "stop after this many instructions even if the program hasn't halted (0 means unbounded)",
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(c *cli.Context) error {
	if c.String("program") == "" && c.String("rom") == "" {
		return cli.Exit("go6502run: one of --program or --rom is required", 86)
	}

	cfg := driver.Config{
		EntryPC:          uint16(c.Uint("entry")),
		UseResetVector:   c.Bool("use-reset-vector"),
		ROMImagePath:     c.String("rom"),
		ProgramImagePath: c.String("program"),
		ProgramBase:      uint16(c.Uint("base")),
		Sink:             diag.StdLog{},
	}

	d, err := driver.New(cfg)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	if c.Bool("dump") {
		fmt.Print(disasm.Dump(d.Chip.PC, d.Bus, 10))
	}

	if max := c.Int("max-steps"); max > 0 {
		d.RunFor(max)
	} else {
		d.Run()
	}

	fmt.Println(disasm.Registers(d.Chip))
	return nil
}
