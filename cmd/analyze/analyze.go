package analyze

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/LakshyaxGupta/FlowBreak/internal/entity"
	"github.com/LakshyaxGupta/FlowBreak/internal/report"
	"github.com/LakshyaxGupta/FlowBreak/internal/service/score"
	"github.com/spf13/cobra"
)

func GetAnalyzeCmd(defaultPolicy string) *cobra.Command {
	var (
		file       string
		policyPath string
		asJSON     bool
	)

	analyzeCmd := &cobra.Command{
		Use:   "analyze",
		Short: "Score a JSON file of events without a database",
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(file)
			if err != nil {
				return fmt.Errorf("failed to open events file: %w", err)
			}
			defer f.Close()

			return run(f, cmd.OutOrStdout(), policyPath, asJSON)
		},
	}

	analyzeCmd.Flags().StringVarP(&file, "file", "f", "", "JSON array of events")
	analyzeCmd.Flags().StringVarP(&policyPath, "policy", "p", defaultPolicy, "Domain and detection policy (YAML or JSON)")
	analyzeCmd.Flags().BoolVar(&asJSON, "json", false, "Print the analytics as JSON")
	_ = analyzeCmd.MarkFlagRequired("file")

	return analyzeCmd
}

func run(r io.Reader, w io.Writer, policyPath string, asJSON bool) error {
	var inputs []entity.EventInput
	if err := json.NewDecoder(r).Decode(&inputs); err != nil {
		return fmt.Errorf("failed to decode events: %w", err)
	}

	events := make([]entity.Event, 0, len(inputs))
	for i, in := range inputs {
		ev, err := in.Parse()
		if err != nil {
			return fmt.Errorf("event %d: %w", i, err)
		}
		events = append(events, ev)
	}
	analyzer, err := score.LoadAnalyzer(policyPath)
	if err != nil {
		return err
	}

	analytics, err := analyzer.Analyze(events)
	if err != nil {
		return fmt.Errorf("failed to analyze events: %w", err)
	}

	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(analytics)
	}

	_, err = io.WriteString(w, report.Render(analytics))
	return err
}
