package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewHealthCmd checks the API health endpoint and, when a key is
// available, that authentication works.
func NewHealthCmd(globals *Globals) *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Test the API connection",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := globals.AnonymousClient()
			if err != nil {
				return err
			}

			ctx := globals.Context()
			health, err := client.Health(ctx)
			if err != nil {
				return fmt.Errorf("health check failed: %w", err)
			}
			fmt.Fprintf(globals.Output, "Health check passed: status=%s platform=%s\n",
				health.Status, health.Platform)

			authed, err := globals.Client()
			if err != nil {
				fmt.Fprintf(globals.Output, "Skipping authentication check: %v\n", err)
				return nil
			}

			profile, err := authed.UserProfile(ctx)
			if err != nil {
				return fmt.Errorf("authentication failed: %w", err)
			}
			fmt.Fprintf(globals.Output, "Authentication successful: %s\n", profile.Email)
			return nil
		},
	}
}
