package cmd

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/pda-sim/pda-sim/pda"
	"github.com/pda-sim/pda-sim/pda/trace"
)

var (
	definitionPath string // Path to the automaton definition YAML
	word           string // Single input word to simulate
	wordsFile      string // File with one input word per line
	stepDelay      int64  // Inter-step delay in milliseconds (observation pacing only)
	maxSteps       int    // Step ceiling per run; 0 disables it
	traceLevel     string // Trace level (none, steps)
	traceOutput    string // Trace JSON destination ("-" for stdout)
)

// runCmd simulates one or more input words against a definition.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the automaton against one or more input words",
	Run: func(cmd *cobra.Command, args []string) {
		if definitionPath == "" {
			logrus.Fatalf("No definition provided. Use --definition.")
		}
		if !trace.IsValidLevel(traceLevel) {
			logrus.Fatalf("Invalid trace level: %s", traceLevel)
		}

		def, err := pda.LoadDefinition(definitionPath)
		if err != nil {
			logrus.Fatalf("unable to load definition: %v", err)
		}
		for _, diag := range def.Check() {
			if diag.Severity == pda.SeverityWarning {
				logrus.Warnf("definition: %s", diag.Message)
			}
		}

		words, err := collectWords(cmd)
		if err != nil {
			logrus.Fatalf("unable to read input words: %v", err)
		}
		if len(words) == 0 {
			logrus.Fatalf("No input words provided. Use --word or --words-file. " +
				"Pass --word \"\" explicitly to simulate the empty word.")
		}

		rt := trace.New(trace.Level(traceLevel))
		cfg := pda.Config{
			Delay:    time.Duration(stepDelay) * time.Millisecond,
			MaxSteps: maxSteps,
			Trace:    rt,
		}

		for _, w := range words {
			driver := pda.NewDriver(def, w, cfg)
			res, err := driver.Run(context.Background())
			if err != nil {
				logrus.Fatalf("run failed: %v", err)
			}
			fmt.Printf("%-24q %s (%s) after %d steps\n", w, res.Verdict, res.Reason, res.Steps)
		}

		if rt.Level() == trace.LevelSteps {
			if err := writeTrace(rt); err != nil {
				logrus.Fatalf("unable to write trace: %v", err)
			}
			s := trace.Summarize(rt)
			logrus.Infof("trace: %d runs (%d accepted, %d rejected, %d stopped), %d steps, %d moves",
				s.TotalRuns, s.AcceptedRuns, s.RejectedRuns, s.StoppedRuns, s.TotalSteps, s.Moves)
		}
	},
}

// collectWords gathers input words from --word and --words-file. A words
// file holds one word per line; blank lines are the empty word.
func collectWords(cmd *cobra.Command) ([]string, error) {
	var words []string
	if flag := cmd.Flags().Lookup("word"); flag != nil && flag.Changed {
		words = append(words, word)
	}
	if wordsFile == "" {
		return words, nil
	}
	f, err := os.Open(wordsFile)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		words = append(words, scanner.Text())
	}
	return words, scanner.Err()
}

// writeTrace marshals the collected trace as JSON to --trace-output.
func writeTrace(rt *trace.RunTrace) error {
	payload := struct {
		Runs  []trace.RunRecord  `json:"runs"`
		Steps []trace.StepRecord `json:"steps"`
	}{Runs: rt.Runs, Steps: rt.Steps}

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')

	if traceOutput == "-" || traceOutput == "" {
		_, err = os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(traceOutput, data, 0o644)
}

func init() {
	runCmd.Flags().StringVar(&definitionPath, "definition", "", "Path to the automaton definition YAML")
	runCmd.Flags().StringVar(&word, "word", "", "Input word to simulate")
	runCmd.Flags().StringVar(&wordsFile, "words-file", "", "File with one input word per line")
	runCmd.Flags().Int64Var(&stepDelay, "delay", 0, "Inter-step delay in milliseconds (observation pacing only)")
	runCmd.Flags().IntVar(&maxSteps, "max-steps", 10000, "Stop a run after this many steps (0 = unlimited)")
	runCmd.Flags().StringVar(&traceLevel, "trace", "none", "Trace level (none, steps)")
	runCmd.Flags().StringVar(&traceOutput, "trace-output", "-", "Trace JSON destination (\"-\" for stdout)")

	rootCmd.AddCommand(runCmd)
}
