package cmd

import (
	"context"
	"fmt"

	"github.com/metamind-labs/metamind/internal/mastery"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Inspect session statistics and mastery",
}

var statsSessionCmd = &cobra.Command{
	Use:   "session <session-id>",
	Short: "Show counters for one session",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		agg := mastery.NewAggregator(s, nil)
		st, err := agg.SessionStats(context.Background(), args[0])
		if err != nil {
			return err
		}

		fmt.Printf("Session:   %s\n", st.SessionID)
		fmt.Printf("Topic:     %s\n", st.Topic)
		fmt.Printf("Turns:     %d\n", st.Turns)
		fmt.Printf("Attempts:  %d\n", st.Attempts)
		fmt.Printf("Solved:    %d\n", st.SolvedCount)
		fmt.Printf("Hints:     %d\n", st.HintCount)
		if st.StepsToSolve != nil {
			fmt.Printf("Steps:     %.0f\n", *st.StepsToSolve)
		} else {
			fmt.Println("Steps:     (not solved)")
		}
		return nil
	},
}

var statsMasteryCmd = &cobra.Command{
	Use:   "mastery <user-id> <topic>",
	Short: "Show per-skill mastery for a user and topic",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		ctx := context.Background()
		agg := mastery.NewAggregator(s, nil)

		bySkill, err := agg.TopicMastery(ctx, args[0], args[1])
		if err != nil {
			return err
		}
		if len(bySkill) == 0 {
			fmt.Println("No progress history for this topic.")
			return nil
		}

		skills, err := s.StudentModel().ListSkills(ctx, args[0], args[1])
		if err != nil {
			return err
		}

		fmt.Printf("%-28s  %-8s  %-10s  %s\n", "Skill", "Mastery", "Exposures", "Reinforce")
		for _, sk := range skills {
			mark := ""
			if sk.NeedsReinforcement {
				mark = "yes"
			}
			fmt.Printf("%-28s  %-8.3f  %-10d  %s\n", sk.Skill, bySkill[sk.Skill], sk.Exposures, mark)
		}

		d, err := s.StudentModel().GetTopicDifficulty(ctx, args[0], args[1])
		if err != nil {
			return err
		}
		fmt.Printf("\nTopic difficulty dial: %.2f\n", d)
		return nil
	},
}

func init() {
	statsCmd.AddCommand(statsSessionCmd)
	statsCmd.AddCommand(statsMasteryCmd)
}
