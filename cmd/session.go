package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/metamind-labs/metamind/internal/llm"
	"github.com/metamind-labs/metamind/internal/mastery"
	"github.com/metamind-labs/metamind/internal/store"
	"github.com/spf13/cobra"
)

var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Record and digest tutoring sessions",
}

var sessionStartCmd = &cobra.Command{
	Use:   "start <user-id> <topic>",
	Short: "Open a tutoring session",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		sess, err := s.Sessions().Start(context.Background(), args[0], args[1])
		if err != nil {
			return err
		}
		fmt.Printf("Started session %s on %q\n", sess.SessionID, sess.Topic)
		return nil
	},
}

var sessionRecordCmd = &cobra.Command{
	Use:   "record <session-id> <speaker> <content>",
	Short: "Append one dialogue turn",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		status, _ := cmd.Flags().GetString("status")
		hintPolicy, _ := cmd.Flags().GetString("hint-policy")
		agentRole, _ := cmd.Flags().GetString("agent-role")

		s, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		it, err := s.Interactions().Record(context.Background(), store.RecordInteractionParams{
			SessionID:  args[0],
			Speaker:    args[1],
			AgentRole:  agentRole,
			Content:    args[2],
			Status:     status,
			HintPolicy: hintPolicy,
		})
		if err != nil {
			return err
		}
		fmt.Printf("Recorded turn %d\n", it.TurnIndex)
		return nil
	},
}

var sessionEndCmd = &cobra.Command{
	Use:   "end <session-id>",
	Short: "Close a session and fold it into the student model",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		skipDigest, _ := cmd.Flags().GetBool("no-digest")

		s, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		ctx := context.Background()
		if err := s.Sessions().End(ctx, args[0], time.Now()); err != nil {
			return err
		}
		fmt.Println("Session closed.")

		if skipDigest {
			return nil
		}
		return digestSession(ctx, cmd, s, args[0])
	},
}

var sessionDigestCmd = &cobra.Command{
	Use:   "digest <session-id>",
	Short: "Fold a session into mastery and stats",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		return digestSession(context.Background(), cmd, s, args[0])
	},
}

func digestSession(ctx context.Context, cmd *cobra.Command, s *store.Store, sessionID string) error {
	agg := mastery.NewAggregator(s, buildExtractor(ctx, s))

	ctx = llm.WithPurpose(ctx, "skill-extract")
	digest, err := agg.DigestSession(ctx, sessionID)
	if err != nil {
		return fmt.Errorf("digest session: %w", err)
	}

	st := digest.Stats
	fmt.Printf("Turns: %d  Attempts: %d  Solved: %d  Hints: %d\n",
		st.Turns, st.Attempts, st.SolvedCount, st.HintCount)
	if st.StepsToSolve != nil {
		fmt.Printf("Steps to solve: %.0f\n", *st.StepsToSolve)
	}

	if digest.ExtractionSkipped {
		fmt.Println("Skill extraction skipped; stats recorded without mastery updates.")
		return nil
	}
	for _, up := range digest.SkillUpdates {
		fmt.Printf("  %-28s  delta %+.3f  mastery %.3f\n", up.Skill, up.Delta, up.Mastery)
	}
	fmt.Printf("Target difficulty: %s\n", digest.TargetDifficulty)
	return nil
}

var sessionPlanCmd = &cobra.Command{
	Use:   "plan <session-id> [json]",
	Short: "Show or append a session plan version",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		history, _ := cmd.Flags().GetBool("history")

		s, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		ctx := context.Background()
		if len(args) == 2 {
			var plan map[string]any
			if err := json.Unmarshal([]byte(args[1]), &plan); err != nil {
				return fmt.Errorf("invalid plan JSON: %w", err)
			}
			p, err := s.Plans().Append(ctx, args[0], plan)
			if err != nil {
				return err
			}
			fmt.Printf("Saved plan version %d\n", p.Version)
			return nil
		}

		if history {
			plans, err := s.Plans().History(ctx, args[0])
			if err != nil {
				return err
			}
			for _, p := range plans {
				raw, _ := json.Marshal(p.Plan)
				fmt.Printf("v%d  %s  %s\n", p.Version, p.CreatedAt.Local().Format("2006-01-02 15:04:05"), raw)
			}
			return nil
		}

		p, err := s.Plans().Current(ctx, args[0])
		if err != nil {
			return err
		}
		if p == nil {
			fmt.Println("No plan recorded for this session.")
			return nil
		}
		raw, _ := json.MarshalIndent(p.Plan, "", "  ")
		fmt.Printf("Version %d:\n%s\n", p.Version, raw)
		return nil
	},
}

// buildExtractor wires an LLM-backed extractor from the environment, or
// nil when no provider is configured.
func buildExtractor(ctx context.Context, s *store.Store) mastery.SkillExtractor {
	cfg := llm.ConfigFromEnv()
	if cfg.Validate() != nil {
		discovered, ok := llm.DiscoverConfig()
		if !ok {
			return nil
		}
		cfg = discovered
	}
	provider, err := llm.NewProvider(ctx, cfg, s.Events())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: LLM provider init failed: %v\n", err)
		return nil
	}
	return mastery.NewLLMExtractor(provider)
}

func init() {
	sessionRecordCmd.Flags().String("status", "", "Tutor turn status: ONGOING, SOLVED, GIVE_UP")
	sessionRecordCmd.Flags().String("hint-policy", "", "Hint policy applied to this turn")
	sessionRecordCmd.Flags().String("agent-role", "socratic_tutor", "Agent role for the turn")
	sessionEndCmd.Flags().Bool("no-digest", false, "Close without folding into the student model")

	sessionPlanCmd.Flags().Bool("history", false, "Show all plan versions")

	sessionCmd.AddCommand(sessionStartCmd)
	sessionCmd.AddCommand(sessionRecordCmd)
	sessionCmd.AddCommand(sessionEndCmd)
	sessionCmd.AddCommand(sessionDigestCmd)
	sessionCmd.AddCommand(sessionPlanCmd)
}
