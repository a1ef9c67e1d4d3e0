package main

import (
	"fmt"
	"io"
	"log/slog"
	"slices"

	"github.com/spf13/cobra"

	"github.com/yanqian/astro-insight/internal/domain/insight"
	"github.com/yanqian/astro-insight/internal/infra/config"
	"github.com/yanqian/astro-insight/pkg/logger"
)

// cli bundles what a single invocation needs.
type cli struct {
	svc       insight.Service
	languages []string
}

func newCLI(cfg *config.Config, svc insight.Service) *cli {
	return &cli{svc: svc, languages: cfg.Insight.Languages}
}

type cliFactory func(logger *slog.Logger) (*cli, error)

type options struct {
	name       string
	birthDate  string
	birthTime  string
	birthPlace string
	language   string
	verbose    bool
}

func newRootCmd(factory cliFactory) *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "insight",
		Short: "Astrological Insight Generator (CLI)",
		Long: `Prints a short daily astrological insight for the given birth details.

Example:
  insight --name Ritika --birth_date 1995-08-20 --birth_time 14:30 \
    --birth_place "Jaipur, India" --language hi`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := factory(logger.NewCLI(opts.verbose))
			if err != nil {
				return fmt.Errorf("initialize: %w", err)
			}
			return app.run(cmd, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.name, "name", "", "User's name")
	flags.StringVar(&opts.birthDate, "birth_date", "", "YYYY-MM-DD")
	flags.StringVar(&opts.birthTime, "birth_time", "", "HH:MM")
	flags.StringVar(&opts.birthPlace, "birth_place", "", "Birth location")
	flags.StringVar(&opts.language, "language", "en", "Output language (en/hi)")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging on stderr")
	for _, name := range []string{"name", "birth_date", "birth_time", "birth_place"} {
		_ = cmd.MarkFlagRequired(name)
	}

	return cmd
}

func (a *cli) run(cmd *cobra.Command, opts options) error {
	if !slices.Contains(a.languages, opts.language) {
		return fmt.Errorf("invalid --language %q: choose from %v", opts.language, a.languages)
	}

	resp, err := a.svc.Predict(cmd.Context(), insight.Request{
		Name:       opts.name,
		BirthDate:  opts.birthDate,
		BirthTime:  opts.birthTime,
		BirthPlace: opts.birthPlace,
		Language:   opts.language,
	})
	if err != nil {
		return err
	}

	printReport(cmd.OutOrStdout(), resp)
	return nil
}

func printReport(w io.Writer, resp insight.Response) {
	fmt.Fprintf(w, "Zodiac        : %s\n", resp.Zodiac)
	if resp.Element != "" {
		fmt.Fprintf(w, "Element       : %s\n", resp.Element)
	}
	if resp.RulingPlanet != "" {
		fmt.Fprintf(w, "Ruling Planet : %s\n", resp.RulingPlanet)
	}
	fmt.Fprintf(w, "Language      : %s\n", resp.Language)
	fmt.Fprintln(w, "Insight       :")
	fmt.Fprintln(w, resp.Insight)
}
