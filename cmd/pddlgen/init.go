package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/kingrea/pddlkit/internal/config"
	"github.com/kingrea/pddlkit/internal/scaffold"
	"github.com/kingrea/pddlkit/internal/tui"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type initOptions struct {
	answers    tui.Answers
	withConfig bool
}

func newInitCmd(a *app) *cobra.Command {
	opts := &initOptions{}
	cmd := &cobra.Command{
		Use:   "init <file.go|file.yaml>",
		Short: "Scaffold a new description file",
		Long: "Scaffold a new description file. Missing answers are asked for " +
			"interactively; pass all of --name, --types, --predicates and --actions to skip the prompts.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.initDescription(cmd, args[0], opts)
		},
	}
	flags := cmd.Flags()
	flags.StringVar(&opts.answers.Name, "name", "", "description name, e.g. AirCargo")
	flags.StringVar(&opts.answers.Types, "types", "", "space separated type names")
	flags.StringVar(&opts.answers.Predicates, "predicates", "", "space separated predicate names")
	flags.StringVar(&opts.answers.Actions, "actions", "", "space separated action names")
	flags.BoolVar(&opts.withConfig, "with-config", false, "also write a default "+config.FileName+" into the project dir")
	return cmd
}

func (a *app) initDescription(cmd *cobra.Command, path string, opts *initOptions) error {
	format, err := scaffold.FormatForPath(path)
	if err != nil {
		return err
	}
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s: %w", path, scaffold.ErrExists)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("stat %s: %w", path, err)
	}

	var spec scaffold.Spec
	if opts.answers.Complete() {
		spec, err = scaffold.ParseSpec(opts.answers.Name, opts.answers.Types, opts.answers.Predicates, opts.answers.Actions, format)
		if err != nil {
			return err
		}
		if err := scaffold.Write(path, spec); err != nil {
			return err
		}
	} else {
		spec, err = tui.Run(path, format, opts.answers,
			tea.WithInput(cmd.InOrStdin()),
			tea.WithOutput(cmd.OutOrStdout()),
		)
		if err != nil {
			return err
		}
	}
	a.logger.Info("description scaffolded",
		zap.String("path", path),
		zap.String("name", spec.Name),
		zap.String("format", string(spec.Format)),
	)
	fmt.Fprintf(a.stdout, "%s %s\n", labelStyle.Render("written"), pathStyle.Render(path))

	if opts.withConfig {
		configPath, err := config.InitProjectConfig(a.cfg.ProjectDir)
		if err != nil {
			return err
		}
		fmt.Fprintf(a.stdout, "%s %s\n", labelStyle.Render("config "), pathStyle.Render(configPath))
	}
	return nil
}
