package cli

import (
	"fmt"

	"crewmatch/internal/delivery/http/dto"
	"crewmatch/internal/usecase"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

func newRecommendCommand(rt *runtime) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "recommend <user-id>",
		Short: "List the best matching open jobs for a volunteer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validOutput(rt.options().Output); err != nil {
				return err
			}
			id, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid user id: %w", err)
			}

			s, closeFn, err := rt.services()
			if err != nil {
				return err
			}
			defer closeFn()

			jobs, err := s.Recommendation.Recommend(cmd.Context(), id, usecase.RecommendationParams{Limit: limit})
			if err != nil {
				return err
			}

			out := dto.NewJobResponses(jobs)
			if rt.options().Output == outputJSON {
				return writeJSON(rt.out, out)
			}
			rows := make([][]string, 0, len(out))
			for _, j := range out {
				urgent := ""
				if j.IsUrgent {
					urgent = "yes"
				}
				rows = append(rows, []string{j.ID.String(), j.Title, j.Category, j.EventDate, urgent})
			}
			return writeTable(rt.out, []string{"ID", "TITLE", "CATEGORY", "DATE", "URGENT"}, rows)
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "l", 0, "maximum jobs (default from RECOMMEND_LIMIT)")
	return cmd
}
