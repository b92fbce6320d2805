package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewProfileCmd shows the authenticated user's profile. The API key is
// partially masked the way the original tool prints it.
func NewProfileCmd(globals *Globals) *cobra.Command {
	return &cobra.Command{
		Use:   "profile",
		Short: "Show the authenticated user profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := globals.Client()
			if err != nil {
				return err
			}

			profile, err := client.UserProfile(globals.Context())
			if err != nil {
				return err
			}

			fmt.Fprintln(globals.Output, "User Profile")
			fmt.Fprintf(globals.Output, "   ID:      %s\n", profile.ID)
			fmt.Fprintf(globals.Output, "   Email:   %s\n", profile.Email)
			fmt.Fprintf(globals.Output, "   API Key: %s\n", maskKey(profile.APIKey))
			if profile.CreatedAt != "" {
				fmt.Fprintf(globals.Output, "   Created: %s\n", profile.CreatedAt)
			}
			return nil
		},
	}
}

func maskKey(key string) string {
	if len(key) < 16 {
		return "***"
	}
	return fmt.Sprintf("%s...%s", key[:10], key[len(key)-5:])
}
