package main

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/usikit/internal/cli"
	"github.com/aretw0/usikit/internal/logging"
)

var checkCmd = &cobra.Command{
	Use:   "check [line...]",
	Short: "Verify that protocol lines round-trip byte-for-byte",
	Long: `Reads USI protocol lines from the arguments or from stdin and verifies
each one decodes to a real message that re-serializes to the same bytes, the
compliance property canonical peer output must hold. Exits nonzero if any
line fails.`,
	Run: func(cmd *cobra.Command, args []string) {
		verbose, _ := cmd.Flags().GetBool("verbose")
		if len(args) == 0 {
			scanner := bufio.NewScanner(os.Stdin)
			for scanner.Scan() {
				args = append(args, scanner.Text())
			}
		}
		if runCheck(args, cmd.OutOrStdout(), logging.New(verbose)) > 0 {
			os.Exit(1)
		}
	},
}

func runCheck(lines []string, out io.Writer, logger *slog.Logger) int {
	failed := 0
	for i, line := range lines {
		v := cli.Inspect(line)
		switch {
		case v.RoundTrips(line):
			logger.Debug("line round-trips", "line", i+1, "kind", v.Kind)
		case v.Err != nil:
			logger.Error("decode failed", "line", i+1, "error", v.Err)
			failed++
		case v.Direction == cli.DirectionUnknown:
			logger.Error("unrecognized line", "line", i+1, "text", line)
			failed++
		default:
			logger.Error("not canonical", "line", i+1, "got", line, "want", v.Canonical)
			failed++
		}
	}

	if failed > 0 {
		fmt.Fprintf(out, "%d of %d lines failed\n", failed, len(lines))
	} else {
		fmt.Fprintf(out, "%d lines ok\n", len(lines))
	}
	return failed
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
