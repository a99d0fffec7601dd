package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "trainbot",
	Short: "Find Indian Railways trains between two stations",
	Long: `trainbot asks for a departure station, a destination and a travel date,
looks up the trains running that day and suggests the fastest, the one with
the most classes and the one with the fewest halts.`,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setupLogging(verbose)
	},
}

// setupLogging keeps diagnostics quiet unless --verbose is given
func setupLogging(debug bool) {
	var handler slog.Handler
	if debug {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
	} else {
		handler = slog.NewTextHandler(io.Discard, nil)
	}
	slog.SetDefault(slog.New(handler))
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			fmt.Println("\n👋 Goodbye! Have a safe journey.")
			return
		}
		reportError(os.Stderr, err)
		os.Exit(1)
	}
}

// errInvalidJourney marks failures caused by the user's input rather than
// the network or credentials.
var errInvalidJourney = errors.New("invalid journey")

func reportError(w io.Writer, err error) {
	fmt.Fprintf(w, "❌ Something went wrong: %v\n", err)
	if errors.Is(err, errInvalidJourney) {
		fmt.Fprintln(w, "Run with --help to see the expected station and date formats.")
		return
	}
	fmt.Fprintln(w, "Please check your internet connection and API keys (RAPIDAPI_KEY) and try again.")
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Print debug logs to stderr")
}
