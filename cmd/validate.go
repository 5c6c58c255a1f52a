package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/pda-sim/pda-sim/pda"
)

var validatePath string // Path to the definition YAML to check

// validateCmd runs static diagnostics over a definition file without
// simulating anything.
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check a definition file for errors and smells",
	Run: func(cmd *cobra.Command, args []string) {
		if validatePath == "" {
			logrus.Fatalf("No definition provided. Use --definition.")
		}
		data, err := os.ReadFile(validatePath)
		if err != nil {
			logrus.Fatalf("unable to read definition: %v", err)
		}
		def, diags, err := pda.InspectDefinition(data)
		if err != nil {
			logrus.Fatalf("unable to parse definition: %v", err)
		}

		errors := 0
		for _, diag := range diags {
			fmt.Println(diag)
			if diag.Severity == pda.SeverityError {
				errors++
			}
		}
		if errors > 0 {
			logrus.Fatalf("%s: %d error(s)", validatePath, errors)
		}
		fmt.Printf("%s: ok (%d states, %d transitions)\n",
			validatePath, len(def.States), len(def.Transitions))
	},
}

func init() {
	validateCmd.Flags().StringVar(&validatePath, "definition", "", "Path to the automaton definition YAML")
	rootCmd.AddCommand(validateCmd)
}
