package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/janadahlmanns/OrganIQ/internal/config"
	"github.com/janadahlmanns/OrganIQ/internal/content"
	"github.com/janadahlmanns/OrganIQ/internal/progression"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show learning progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		st, err := openStore(cmd, cfg)
		if err != nil {
			return err
		}
		defer st.Close()

		ledger := restoreLedger(st)

		fmt.Printf("XP: %d    Crowns: %d\n\n", ledger.XP(), ledger.Crowns())

		for _, topicID := range progression.Topics {
			fmt.Println(content.TopicTitle(topicID, cfg.Language))
			for _, lessonID := range progression.LessonIDs {
				status := ledger.Status(progression.Key(topicID, lessonID))
				fmt.Printf("  %-8s %s\n", lessonID, status)
			}
			fmt.Println()
		}
		return nil
	},
}
