package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/janadahlmanns/OrganIQ/internal/content"
)

var contentCmd = &cobra.Command{
	Use:   "content",
	Short: "Inspect the bundled exercise content",
}

var contentValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate all bundled exercise collections",
	RunE: func(cmd *cobra.Command, args []string) error {
		ct, err := content.Load()
		if err != nil {
			return err
		}

		total := 0
		for _, t := range content.AllTypes {
			n := ct.Count(t, "")
			total += n
			fmt.Printf("  %-10s %3d\n", t, n)
		}
		fmt.Printf("\n%d exercises across %d topics, all valid.\n", total, len(ct.Topics()))
		return nil
	},
}

func init() {
	contentCmd.AddCommand(contentValidateCmd)
}
