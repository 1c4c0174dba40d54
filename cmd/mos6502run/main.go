// Command mos6502run loads a flat ROM image, binds it to a CPU core,
// and steps it to completion (or to a step limit), optionally printing
// a disassembly trace as it goes. There's no display or joystick layer
// here, just the bare instruction interpreter described by the core
// packages.
package main

import (
	"errors"
	"fmt"
	"io/ioutil"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"github.com/sixfiveohtwo/mos6502/cpu"
	"github.com/sixfiveohtwo/mos6502/disassemble"
	"github.com/sixfiveohtwo/mos6502/mmu"
)

func main() {
	var (
		romPath  string
		loadAddr uint16
		ramSize  uint16
		pcFlag   uint16
		usePC    bool
		maxSteps uint64
		verbose  bool
	)

	root := &cobra.Command{
		Use:   "mos6502run",
		Short: "Run a flat 6502 ROM image against the instruction-level core",
	}

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Load a ROM image and step the CPU until it halts or the step limit is reached",
		RunE: func(cmd *cobra.Command, args []string) error {
			image, err := ioutil.ReadFile(romPath)
			if err != nil {
				return fmt.Errorf("reading rom: %w", err)
			}

			mem := mmu.New()
			if err := mem.AddBlock(0x0000, int(ramSize), false, nil); err != nil {
				return fmt.Errorf("mapping ram: %w", err)
			}
			if err := mem.AddBlock(loadAddr, len(image), true, image); err != nil {
				return fmt.Errorf("mapping rom: %w", err)
			}

			var pc *uint16
			if usePC {
				pc = &pcFlag
			}
			c := cpu.New(mem, pc)

			out := cmd.OutOrStdout()
			errOut := cmd.ErrOrStderr()
			for i := uint64(0); maxSteps == 0 || i < maxSteps; i++ {
				if verbose {
					text, _ := disassemble.Step(c.PC(), mem)
					fmt.Fprintln(out, text)
				}
				if _, err := c.Step(); err != nil {
					var unk cpu.UnknownOpcodeError
					if errors.As(err, &unk) {
						fmt.Fprintf(errOut, "halted: %v\n", unk)
						if verbose {
							spew.Fdump(out, c.Reg)
						}
						return nil
					}
					return err
				}
			}
			if verbose {
				spew.Fdump(out, c.Reg)
			}
			return nil
		},
	}
	runCmd.Flags().StringVar(&romPath, "rom", "", "path to the flat ROM image to load")
	runCmd.Flags().Uint16Var(&loadAddr, "load", 0x8000, "address the ROM image is mapped at")
	runCmd.Flags().Uint16Var(&ramSize, "ram-size", 0x8000, "size of the zero-based RAM region")
	runCmd.Flags().Uint16Var(&pcFlag, "pc", 0, "override the initial program counter instead of reading the reset vector")
	runCmd.Flags().BoolVar(&usePC, "use-pc", false, "honor --pc instead of the ROM's reset vector")
	runCmd.Flags().Uint64Var(&maxSteps, "steps", 0, "maximum instructions to execute (0 means unlimited; relies on an unknown opcode or external stop to end the run)")
	runCmd.Flags().BoolVar(&verbose, "verbose", false, "print a disassembly trace and register dump")
	runCmd.MarkFlagRequired("rom")

	root.AddCommand(runCmd)
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
