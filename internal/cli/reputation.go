package cli

import (
	"fmt"
	"strconv"

	"crewmatch/internal/delivery/http/dto"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

func newReputationCommand(rt *runtime) *cobra.Command {
	var refresh, all bool
	cmd := &cobra.Command{
		Use:   "reputation <user-id> | --all",
		Short: "Show a user's reputation score and tier",
		Args: func(cmd *cobra.Command, args []string) error {
			if all {
				return cobra.NoArgs(cmd, args)
			}
			return cobra.ExactArgs(1)(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if all {
				return flushReputation(cmd, rt)
			}
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

			ctx := cmd.Context()
			if refresh {
				if err := s.Reputation.Invalidate(ctx, id); err != nil {
					return err
				}
			}
			summary, err := s.Reputation.Summary(ctx, id)
			if err != nil {
				return err
			}

			if rt.options().Output == outputJSON {
				return writeJSON(rt.out, dto.NewReputationResponse(summary))
			}
			avg := "-"
			if summary.HasReviews {
				avg = strconv.FormatFloat(summary.AverageRating, 'f', 1, 64)
			}
			return writeTable(rt.out,
				[]string{"USER", "SCORE", "TIER", "AVG RATING", "REVIEWS", "POSITIVE %"},
				[][]string{{
					summary.UserID.String(),
					strconv.Itoa(summary.Score),
					string(summary.Tier.Level),
					avg,
					strconv.Itoa(summary.TotalReviews),
					strconv.FormatFloat(summary.PositivePercentage, 'f', 1, 64),
				}},
			)
		},
	}
	cmd.Flags().BoolVar(&refresh, "refresh", false, "drop the cached summary first")
	cmd.Flags().BoolVar(&all, "all", false, "drop every cached summary instead of showing one")
	return cmd
}

func flushReputation(cmd *cobra.Command, rt *runtime) error {
	s, closeFn, err := rt.services()
	if err != nil {
		return err
	}
	defer closeFn()

	if err := s.Reputation.InvalidateAll(cmd.Context()); err != nil {
		return err
	}
	fmt.Fprintln(rt.out, "reputation cache cleared")
	return nil
}
