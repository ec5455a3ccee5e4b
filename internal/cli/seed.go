package cli

import (
	"sort"
	"strconv"

	"github.com/spf13/cobra"
)

func newSeedCommand(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Insert the default job categories and skills",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := validOutput(rt.options().Output); err != nil {
				return err
			}
			s, closeFn, err := rt.services()
			if err != nil {
				return err
			}
			defer closeFn()
			if s.Seed == nil {
				return errNoServices
			}

			created, err := s.Seed(cmd.Context())
			if err != nil {
				return err
			}
			if rt.options().Output == outputJSON {
				return writeJSON(rt.out, created)
			}

			names := make([]string, 0, len(created))
			for name := range created {
				names = append(names, name)
			}
			sort.Strings(names)
			rows := make([][]string, 0, len(names))
			for _, name := range names {
				rows = append(rows, []string{name, strconv.Itoa(created[name])})
			}
			return writeTable(rt.out, []string{"SEEDER", "CREATED"}, rows)
		},
	}
}
