package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/aretw0/usikit/internal/cli"
)

var parseCmd = &cobra.Command{
	Use:   "parse [line...]",
	Short: "Classify protocol lines and print their canonical form",
	Long: `Reads USI protocol lines from the arguments or from stdin, classifies each
as director (GUI to engine), participant (engine to GUI) or unknown, and
prints the message type together with its canonical re-serialization.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) > 0 {
			for _, line := range args {
				printVerdict(line)
			}
			return
		}
		interactive := term.IsTerminal(int(os.Stdin.Fd()))
		scanner := bufio.NewScanner(os.Stdin)
		for {
			if interactive {
				fmt.Fprint(os.Stderr, "usi> ")
			}
			if !scanner.Scan() {
				break
			}
			printVerdict(scanner.Text())
		}
	},
}

func printVerdict(line string) {
	v := cli.Inspect(line)
	if v.Err != nil {
		fmt.Printf("%-11s %v\n", v.Direction, v.Err)
		return
	}
	fmt.Printf("%-11s %-24s %s\n", v.Direction, v.Kind, v.Canonical)
	if v.Warning != nil {
		fmt.Printf("%-11s note: %v\n", "", v.Warning)
	}
}

func init() {
	rootCmd.AddCommand(parseCmd)
}
