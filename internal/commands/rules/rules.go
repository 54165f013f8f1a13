package rules

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/urfave/cli/v3"

	"github.com/youniqx/heist-commitlint/internal/commands/completion_helper"
	"github.com/youniqx/heist-commitlint/internal/commands/shared"
	cfg "github.com/youniqx/heist-commitlint/internal/config"
	"github.com/youniqx/heist-commitlint/internal/i18n"
	"github.com/youniqx/heist-commitlint/internal/rules"
)

type RulesCommandFactory struct {
	repo    shared.RepoLocator
	streams shared.Streams
}

func NewRulesCommandFactory(repo shared.RepoLocator, streams shared.Streams) *RulesCommandFactory {
	return &RulesCommandFactory{repo: repo, streams: streams}
}

func (f *RulesCommandFactory) CreateCommand(t *i18n.Translations, _ *cfg.Settings) *cli.Command {
	return &cli.Command{
		Name:  "rules",
		Usage: t.GetMessage("rules.usage", 0, nil),
		Flags: []cli.Flag{
			shared.ConfigFlag(t),
			&cli.BoolFlag{
				Name:    "all",
				Aliases: []string{"a"},
				Usage:   t.GetMessage("rules.flag_all", 0, nil),
			},
		},
		ShellComplete: completion_helper.DefaultFlagComplete,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			lintCfg, _, err := shared.LoadLintConfig(ctx, cmd.String(shared.FlagConfig), shared.ConfigDir(ctx, f.repo))
			if err != nil {
				return err
			}
			effective, err := lintCfg.Effective()
			if err != nil {
				return err
			}

			names := effective.Names()
			if cmd.Bool("all") {
				names = names[:0]
				for _, r := range rules.List() {
					names = append(names, r.Name)
				}
				for _, name := range effective.Names() {
					if _, ok := rules.Lookup(name); !ok {
						names = append(names, name)
					}
				}
				sort.Strings(names)
			}

			w := tabwriter.NewWriter(f.streams.Out, 0, 0, 2, ' ', 0)
			_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
				t.GetMessage("rules.column_rule", 0, nil),
				t.GetMessage("rules.column_level", 0, nil),
				t.GetMessage("rules.column_when", 0, nil),
				t.GetMessage("rules.column_value", 0, nil))
			for _, name := range names {
				rc, ok := effective[name]
				if !ok {
					_, _ = fmt.Fprintf(w, "%s\t%s\t\t\n", name, cfg.SeverityOff)
					continue
				}
				_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", name, rc.Level, rc.When, formatValue(rc.Value))
			}
			return w.Flush()
		},
	}
}

func formatValue(v any) string {
	switch v := v.(type) {
	case nil:
		return ""
	case []string:
		return strings.Join(v, ", ")
	case string:
		return fmt.Sprintf("%q", v)
	default:
		return fmt.Sprint(v)
	}
}
