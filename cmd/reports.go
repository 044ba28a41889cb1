package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/metamind-labs/metamind/internal/store"
	"github.com/spf13/cobra"
)

var reportsCmd = &cobra.Command{
	Use:   "reports",
	Short: "Browse saved fairness reports",
}

var reportsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved reports, most recent first",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		groupBy, _ := cmd.Flags().GetString("group-by")
		topic, _ := cmd.Flags().GetString("topic")

		s, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		reports, err := s.Reports().List(context.Background(), store.ReportFilter{
			GroupBy: groupBy,
			Topic:   topic,
			Limit:   limit,
		})
		if err != nil {
			return fmt.Errorf("list reports: %w", err)
		}
		if len(reports) == 0 {
			fmt.Println("No reports saved yet.")
			return nil
		}

		fmt.Printf("%-36s  %-19s  %-20s  %-10s  %s\n", "ID", "Created", "Group by", "Topic", "Status")
		for _, r := range reports {
			fmt.Printf("%-36s  %-19s  %-20s  %-10s  %s\n",
				r.ReportID,
				r.CreatedAt.Local().Format("2006-01-02 15:04:05"),
				r.GroupBy,
				r.Topic,
				reportStatus(r))
		}
		return nil
	},
}

var reportsViewCmd = &cobra.Command{
	Use:   "view <report-id>",
	Short: "Show one report in full",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		r, err := s.Reports().Get(context.Background(), args[0])
		if err != nil {
			return err
		}
		printReport(r)
		return nil
	},
}

func printReport(r *store.FairnessReport) {
	sep := strings.Repeat("─", 60)

	fmt.Printf("Report:      %s\n", r.ReportID)
	fmt.Printf("Created:     %s\n", r.CreatedAt.Local().Format("2006-01-02 15:04:05"))
	fmt.Printf("Group by:    %s\n", r.GroupBy)
	fmt.Printf("Topic:       %s\n", r.Topic)
	if r.WindowFrom != nil || r.WindowTo != nil {
		fmt.Printf("Window:      %s .. %s\n", formatDay(r.WindowFrom), formatDay(r.WindowTo))
	}
	fmt.Printf("Min sample:  %d\n", r.MinSampleSize)
	fmt.Printf("Status:      %s\n", reportStatus(r))
	if r.Notes != "" {
		fmt.Printf("Notes:       %s\n", r.Notes)
	}

	fmt.Println(sep)
	fmt.Println("METRICS")
	fmt.Println(sep)
	fmt.Println(prettyJSON(r.Metrics))

	if r.Interpretation != nil {
		fmt.Println(sep)
		fmt.Println("INTERPRETATION")
		fmt.Println(sep)
		fmt.Println(prettyJSON(r.Interpretation))
	}
}

func reportStatus(r *store.FairnessReport) string {
	if analysis, ok := r.Metrics["analysis"].(map[string]any); ok {
		if status, ok := analysis["status"].(string); ok {
			return status
		}
	}
	return "?"
}

func formatDay(t *time.Time) string {
	if t == nil {
		return "open"
	}
	return t.Local().Format("2006-01-02")
}

func prettyJSON(v any) string {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(raw)
}

func init() {
	reportsListCmd.Flags().IntP("limit", "n", 20, "Number of reports to show")
	reportsListCmd.Flags().String("group-by", "", "Filter by grouping dimension")
	reportsListCmd.Flags().String("topic", "", "Filter by topic")

	reportsCmd.AddCommand(reportsListCmd)
	reportsCmd.AddCommand(reportsViewCmd)
}
