package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/metamind-labs/metamind/internal/fairness"
	"github.com/metamind-labs/metamind/internal/llm"
	"github.com/metamind-labs/metamind/internal/store"
	"github.com/spf13/cobra"
)

var auditCmd = &cobra.Command{
	Use:   "audit",
	Short: "Run fairness audits over session history",
}

var auditRunCmd = &cobra.Command{
	Use:   "run",
	Short: "Compute group metrics, apply thresholds, save a report",
	RunE: func(cmd *cobra.Command, args []string) error {
		groupBy, _ := cmd.Flags().GetString("group-by")
		topic, _ := cmd.Flags().GetString("topic")
		minSample, _ := cmd.Flags().GetInt("min-sample")
		fromStr, _ := cmd.Flags().GetString("from")
		toStr, _ := cmd.Flags().GetString("to")
		interpret, _ := cmd.Flags().GetBool("interpret")

		params := fairness.Params{
			GroupBy:       groupBy,
			Topic:         topic,
			MinSampleSize: minSample,
		}
		var err error
		if params.From, err = parseDay(fromStr); err != nil {
			return err
		}
		if params.To, err = parseDay(toStr); err != nil {
			return err
		}

		s, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		ctx := context.Background()
		var interpreter fairness.Interpreter
		if interpret {
			interpreter = buildInterpreter(ctx, s)
			ctx = llm.WithPurpose(ctx, "fairness-interpret")
		}

		mgr := fairness.NewManager(s, interpreter)
		report, err := mgr.RunAudit(ctx, params)
		if err != nil {
			return fmt.Errorf("run audit: %w", err)
		}

		printReport(report)
		return nil
	},
}

var auditReanalyzeCmd = &cobra.Command{
	Use:   "reanalyze <report-id>",
	Short: "Re-run a saved audit over current history",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		interpret, _ := cmd.Flags().GetBool("interpret")

		s, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		ctx := context.Background()
		var interpreter fairness.Interpreter
		if interpret {
			interpreter = buildInterpreter(ctx, s)
			ctx = llm.WithPurpose(ctx, "fairness-interpret")
		}

		mgr := fairness.NewManager(s, interpreter)
		report, err := mgr.Reanalyze(ctx, args[0])
		if err != nil {
			return fmt.Errorf("reanalyze: %w", err)
		}

		fmt.Printf("Saved new report %s\n\n", report.ReportID)
		printReport(report)
		return nil
	},
}

// buildInterpreter wires an LLM-backed interpreter from the environment,
// or nil when no provider is configured.
func buildInterpreter(ctx context.Context, s *store.Store) fairness.Interpreter {
	cfg := llm.ConfigFromEnv()
	if cfg.Validate() != nil {
		discovered, ok := llm.DiscoverConfig()
		if !ok {
			fmt.Fprintln(os.Stderr, "Warning: no LLM provider configured; saving report without interpretation")
			return nil
		}
		cfg = discovered
	}
	provider, err := llm.NewProvider(ctx, cfg, s.Events())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: LLM provider init failed: %v\n", err)
		return nil
	}
	return fairness.NewLLMInterpreter(provider)
}

func parseDay(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.ParseInLocation("2006-01-02", s, time.Local)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q (want YYYY-MM-DD): %w", s, err)
	}
	return &t, nil
}

func init() {
	auditRunCmd.Flags().String("group-by", fairness.GroupBySelfRatedLevel,
		"Grouping dimension: self_rated_level, preferred_language, topic")
	auditRunCmd.Flags().String("topic", "", "Restrict to one topic")
	auditRunCmd.Flags().Int("min-sample", 0,
		fmt.Sprintf("Minimum sessions per group (default %d)", fairness.DefaultMinSampleSize))
	auditRunCmd.Flags().String("from", "", "Window start, YYYY-MM-DD")
	auditRunCmd.Flags().String("to", "", "Window end, YYYY-MM-DD")
	auditRunCmd.Flags().Bool("interpret", false, "Attach an LLM reading of the gaps")
	auditReanalyzeCmd.Flags().Bool("interpret", false, "Attach an LLM reading of the gaps")

	auditCmd.AddCommand(auditRunCmd)
	auditCmd.AddCommand(auditReanalyzeCmd)
}
