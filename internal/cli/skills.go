package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"crewmatch/internal/domain/inference"
	"crewmatch/internal/domain/lexicon"
	"crewmatch/internal/pipeline"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

type detectFlags struct {
	userID  string
	force   bool
	yes     bool
	workers int
}

func newSkillsCommand(rt *runtime) *cobra.Command {
	skills := &cobra.Command{
		Use:   "skills",
		Short: "Skill inference jobs",
	}

	var f detectFlags
	detect := &cobra.Command{
		Use:   "detect",
		Short: "Infer skills from volunteers' application history",
		Long: "Infer skills for one volunteer (--user-id), every volunteer without skills, " +
			"or every volunteer (--force).",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDetect(cmd, rt, f)
		},
	}
	detect.Flags().StringVar(&f.userID, "user-id", "", "process a single user")
	detect.Flags().BoolVar(&f.force, "force", false, "process volunteers that already have skills")
	detect.Flags().BoolVarP(&f.yes, "yes", "y", false, "do not ask for confirmation")
	detect.Flags().IntVar(&f.workers, "workers", 0, "concurrent workers (default from INFERENCE_WORKERS)")

	skills.AddCommand(detect, newLexiconCommand(rt))
	return skills
}

func newLexiconCommand(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "lexicon",
		Short: "List the skill categories and the keywords that trigger them",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			if err := validOutput(rt.options().Output); err != nil {
				return err
			}
			entries := lexicon.Default().Entries()
			if rt.options().Output == outputJSON {
				out := make(map[string][]string, len(entries))
				for _, e := range entries {
					out[e.Category] = e.Keywords
				}
				return writeJSON(rt.out, out)
			}
			rows := make([][]string, 0, len(entries))
			for _, e := range entries {
				rows = append(rows, []string{e.Category, inference.SkillName(e.Category), strings.Join(e.Keywords, ", ")})
			}
			return writeTable(rt.out, []string{"CATEGORY", "SKILL", "KEYWORDS"}, rows)
		},
	}
}

func runDetect(cmd *cobra.Command, rt *runtime, f detectFlags) error {
	if err := validOutput(rt.options().Output); err != nil {
		return err
	}
	params := pipeline.DetectParams{Force: f.force, Workers: f.workers}
	if f.userID != "" {
		id, err := uuid.Parse(f.userID)
		if err != nil {
			return fmt.Errorf("invalid --user-id: %w", err)
		}
		params.UserID = &id
	}
	if params.Workers < 0 {
		return errors.New("--workers must not be negative")
	}

	s, closeFn, err := rt.services()
	if err != nil {
		return err
	}
	defer closeFn()
	if params.Workers == 0 {
		params.Workers = s.Workers
	}

	ctx := cmd.Context()
	start := time.Now()
	targets, err := s.Detector.Targets(ctx, params)
	if err != nil {
		return err
	}
	if len(targets) == 0 {
		fmt.Fprintln(rt.out, "no users to process")
		return nil
	}

	if params.UserID == nil && !f.yes {
		ok, err := rt.confirm(fmt.Sprintf("Detect skills for %d volunteers", len(targets)))
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(rt.out, "aborted")
			return nil
		}
	}

	report, err := s.Detector.RunFor(ctx, targets, params.Workers, start)
	if err != nil && !errors.Is(err, pipeline.ErrNoTarget) {
		return err
	}

	if rt.options().Output == outputJSON {
		return writeJSON(rt.out, map[string]any{
			"processed":    report.Processed,
			"updated":      report.Updated,
			"skills_added": report.SkillsAdded,
			"failed":       report.Failed,
			"duration_ms":  report.Duration.Milliseconds(),
		})
	}
	return writeTable(rt.out,
		[]string{"PROCESSED", "UPDATED", "SKILLS ADDED", "FAILED", "DURATION"},
		[][]string{{
			strconv.Itoa(report.Processed),
			strconv.Itoa(report.Updated),
			strconv.Itoa(report.SkillsAdded),
			strconv.Itoa(report.Failed),
			report.Duration.Round(time.Millisecond).String(),
		}},
	)
}
