package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newMigrateCommand(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, closeFn, err := rt.services()
			if err != nil {
				return err
			}
			defer closeFn()
			if s.Migrate == nil {
				return errNoServices
			}

			n, err := s.Migrate(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(rt.out, "applied %d migration(s)\n", n)
			return nil
		},
	}
}
