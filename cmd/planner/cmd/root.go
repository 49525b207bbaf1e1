package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "planner",
	Short: "Personal study, exam and fitness tracker",
	Long: `Planner is a single-user tracker served over plain HTML forms.

It provides:
  - A monthly study calendar with notes and done/missed status
  - A practice exam (simulados) log with score statistics
  - A fitness test (TAF) log with derived BMI and metric charts`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}
