package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show or set your profile",
	Long: `Show or set the profile stored with the calendar.

Examples:
  shootcal profile
  shootcal profile set --name "Haanvika" --email h@example.com`,
	Args: cobra.NoArgs,
	RunE: runProfileShow,
}

var profileSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Update profile fields",
	Args:  cobra.NoArgs,
	RunE:  runProfileSet,
}

var (
	profileName  string
	profileEmail string
	profilePhone string
	profileNotes string
)

func init() {
	profileSetCmd.Flags().StringVar(&profileName, "name", "", "Your name")
	profileSetCmd.Flags().StringVar(&profileEmail, "email", "", "Contact email")
	profileSetCmd.Flags().StringVar(&profilePhone, "phone", "", "Contact phone")
	profileSetCmd.Flags().StringVar(&profileNotes, "notes", "", "Notes")
	profileCmd.AddCommand(profileSetCmd)
}

func runProfileShow(cmd *cobra.Command, args []string) error {
	return withSession(func(s *session) error {
		p := s.mgr.UserProfile()
		if p.Name == "" && p.Email == "" && p.Phone == "" && p.Notes == "" {
			fmt.Println("No profile yet. Set one with: shootcal profile set --name \"Your name\"")
			return nil
		}

		fmt.Printf("👤 %s\n", p.Name)
		if p.Email != "" {
			fmt.Printf("   ✉ %s\n", p.Email)
		}
		if p.Phone != "" {
			fmt.Printf("   ☎ %s\n", p.Phone)
		}
		if p.Notes != "" {
			fmt.Printf("   %s\n", p.Notes)
		}
		return nil
	})
}

func runProfileSet(cmd *cobra.Command, args []string) error {
	return withSession(func(s *session) error {
		p := s.mgr.UserProfile()
		changed := false
		if cmd.Flags().Changed("name") {
			p.Name = profileName
			changed = true
		}
		if cmd.Flags().Changed("email") {
			p.Email = profileEmail
			changed = true
		}
		if cmd.Flags().Changed("phone") {
			p.Phone = profilePhone
			changed = true
		}
		if cmd.Flags().Changed("notes") {
			p.Notes = profileNotes
			changed = true
		}
		if !changed {
			return fmt.Errorf("nothing to change: pass --name, --email, --phone or --notes")
		}

		s.mgr.SetUserProfile(p)
		fmt.Println("✓ Profile saved")
		return nil
	})
}
