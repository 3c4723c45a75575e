package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Clear the whole calendar",
	Long: `Remove every project, payment reminder, shoot-status reminder and the
profile from the calendar database.`,
	Args: cobra.NoArgs,
	RunE: runClear,
}

func init() {
	clearCmd.Flags().Bool("force", false, "Do not ask for confirmation")
}

func runClear(cmd *cobra.Command, args []string) error {
	force, _ := cmd.Flags().GetBool("force")

	if !force {
		fmt.Printf("Are you sure you want to clear the calendar? (y/N): ")
		var response string
		_, _ = fmt.Scanln(&response)
		if strings.ToLower(response) != "y" {
			fmt.Println("Aborted.")
			return nil
		}
	}

	return withSession(func(s *session) error {
		fmt.Println("🧹 Clearing calendar...")
		s.mgr.Reset()
		fmt.Println("Calendar cleared.")
		return nil
	})
}
