package cmd

import (
	"context"
	"fmt"

	"github.com/metamind-labs/metamind/internal/store"
	"github.com/spf13/cobra"
)

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Manage learner profiles",
}

var userAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Register a learner",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		level, _ := cmd.Flags().GetString("level")
		language, _ := cmd.Flags().GetString("language")

		s, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		u, err := s.Users().Create(context.Background(), &store.User{
			Name:              args[0],
			SelfRatedLevel:    level,
			PreferredLanguage: language,
		})
		if err != nil {
			return fmt.Errorf("create user: %w", err)
		}
		fmt.Printf("Created user %s (%s, level=%s, language=%s)\n",
			u.UserID, u.Name, u.SelfRatedLevel, u.PreferredLanguage)
		return nil
	},
}

var userListCmd = &cobra.Command{
	Use:   "list",
	Short: "List learners",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		users, err := s.Users().List(context.Background())
		if err != nil {
			return fmt.Errorf("list users: %w", err)
		}
		if len(users) == 0 {
			fmt.Println("No users yet.")
			return nil
		}
		fmt.Printf("%-36s  %-20s  %-12s  %-8s  %s\n", "ID", "Name", "Level", "Lang", "Created")
		for _, u := range users {
			fmt.Printf("%-36s  %-20s  %-12s  %-8s  %s\n",
				u.UserID, u.Name, u.SelfRatedLevel, u.PreferredLanguage,
				u.CreatedAt.Local().Format("2006-01-02"))
		}
		return nil
	},
}

var userSetCmd = &cobra.Command{
	Use:   "set <user-id>",
	Short: "Update a learner's preferences",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		level, _ := cmd.Flags().GetString("level")
		language, _ := cmd.Flags().GetString("language")

		s, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		ctx := context.Background()
		u, err := s.Users().Get(ctx, args[0])
		if err != nil {
			return err
		}
		if level == "" {
			level = u.SelfRatedLevel
		}
		if language == "" {
			language = u.PreferredLanguage
		}
		if err := s.Users().UpdatePreferences(ctx, u.UserID, level, language); err != nil {
			return fmt.Errorf("update preferences: %w", err)
		}
		fmt.Printf("Updated %s: level=%s language=%s\n", u.UserID, level, language)
		return nil
	},
}

func init() {
	userAddCmd.Flags().String("level", "intermediate", "Self-rated level: beginner, intermediate, advanced")
	userAddCmd.Flags().String("language", "en", "Preferred language code")
	userSetCmd.Flags().String("level", "", "New self-rated level")
	userSetCmd.Flags().String("language", "", "New preferred language")

	userCmd.AddCommand(userAddCmd)
	userCmd.AddCommand(userListCmd)
	userCmd.AddCommand(userSetCmd)
}
