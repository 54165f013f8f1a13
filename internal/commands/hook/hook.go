package hook

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/youniqx/heist-commitlint/internal/commands/completion_helper"
	"github.com/youniqx/heist-commitlint/internal/commands/shared"
	cfg "github.com/youniqx/heist-commitlint/internal/config"
	"github.com/youniqx/heist-commitlint/internal/i18n"
	"github.com/youniqx/heist-commitlint/internal/ui"
)

// HookInstaller is a minimal interface for testing purposes
type HookInstaller interface {
	InstallHook(ctx context.Context, force bool) (string, error)
}

type HookCommandFactory struct {
	installer HookInstaller
	streams   shared.Streams
}

func NewHookCommandFactory(installer HookInstaller, streams shared.Streams) *HookCommandFactory {
	return &HookCommandFactory{installer: installer, streams: streams}
}

func (f *HookCommandFactory) CreateCommand(t *i18n.Translations, _ *cfg.Settings) *cli.Command {
	return &cli.Command{
		Name:  "hook",
		Usage: t.GetMessage("hook.usage", 0, nil),
		Commands: []*cli.Command{
			{
				Name:  "install",
				Usage: t.GetMessage("hook.install_usage", 0, nil),
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "force",
						Usage: t.GetMessage("hook.flag_force", 0, nil),
					},
				},
				ShellComplete: completion_helper.DefaultFlagComplete,
				Action: func(ctx context.Context, cmd *cli.Command) error {
					path, err := f.installer.InstallHook(ctx, cmd.Bool("force"))
					if err != nil {
						return err
					}
					ui.PrintSuccess(f.streams.Out, t.GetMessage("hook.installed", 0, map[string]interface{}{"Path": path}))
					return nil
				},
			},
		},
	}
}
