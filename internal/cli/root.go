package cli

import (
	"context"
	"errors"
	"io"
	"time"

	"crewmatch/internal/domain/user"
	"crewmatch/internal/pipeline"
	"crewmatch/internal/usecase"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const app = "crewctl"

var errNoServices = errors.New("cli: services unavailable")

// Detector is the part of the skill detection pipeline the CLI drives.
type Detector interface {
	Targets(ctx context.Context, params pipeline.DetectParams) ([]user.User, error)
	RunFor(ctx context.Context, targets []user.User, workers int, start time.Time) (pipeline.DetectReport, error)
}

// Services are built lazily per command so that --help never touches the
// database.
type Services struct {
	Detector       Detector
	Reputation     usecase.ReputationUsecase
	Recommendation usecase.RecommendationUsecase
	Seed           func(ctx context.Context) (map[string]int, error)
	Migrate        func(ctx context.Context) (int, error)
	Workers        int
	Close          func() error
}

type Options struct {
	JSON   bool
	Debug  bool
	Output string
}

type Factory func(opts Options) (*Services, error)

// Confirm asks a yes/no question. A false answer with a nil error means the
// user declined.
type Confirm func(label string) (bool, error)

func PromptConfirm(label string) (bool, error) {
	p := promptui.Prompt{Label: label, IsConfirm: true}
	if _, err := p.Run(); err != nil {
		if errors.Is(err, promptui.ErrAbort) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

type runtime struct {
	v       *viper.Viper
	factory Factory
	confirm Confirm
	out     io.Writer
}

func (r *runtime) options() Options {
	return Options{
		JSON:   r.v.GetBool("json"),
		Debug:  r.v.GetBool("debug"),
		Output: r.v.GetString("output"),
	}
}

func (r *runtime) services() (*Services, func(), error) {
	if r.factory == nil {
		return nil, nil, errNoServices
	}
	s, err := r.factory(r.options())
	if err != nil {
		return nil, nil, err
	}
	if s == nil {
		return nil, nil, errNoServices
	}
	return s, func() {
		if s.Close != nil {
			_ = s.Close()
		}
	}, nil
}

func NewRootCommand(factory Factory, confirm Confirm) *cobra.Command {
	if confirm == nil {
		confirm = PromptConfirm
	}
	rt := &runtime{v: viper.New(), factory: factory, confirm: confirm}

	root := &cobra.Command{
		Use:           app,
		Short:         app + " runs matching and reputation jobs against the crewmatch database",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			rt.out = cmd.OutOrStdout()
		},
	}

	root.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	root.PersistentFlags().BoolP("json", "j", false, "json format for logging")
	root.PersistentFlags().StringP("output", "o", outputTable, "result format: table or json")

	_ = rt.v.BindPFlag("debug", root.PersistentFlags().Lookup("debug"))
	_ = rt.v.BindPFlag("json", root.PersistentFlags().Lookup("json"))
	_ = rt.v.BindPFlag("output", root.PersistentFlags().Lookup("output"))
	rt.v.SetEnvPrefix("CREWCTL")
	rt.v.AutomaticEnv()

	root.AddCommand(
		newSkillsCommand(rt),
		newSeedCommand(rt),
		newMigrateCommand(rt),
		newReputationCommand(rt),
		newRecommendCommand(rt),
	)
	return root
}
