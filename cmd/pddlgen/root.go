package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/kingrea/pddlkit/internal/config"
	"github.com/kingrea/pddlkit/internal/logging"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// app carries what every subcommand needs once the root pre-run finished.
type app struct {
	projectDir string
	stdout     io.Writer
	stderr     io.Writer

	cfg      *config.Config
	logger   *zap.Logger
	closeLog func() error
}

// run executes the command line in args and closes the log file afterwards,
// whether or not the command failed.
func run(args []string, stdout, stderr io.Writer) error {
	a := &app{stdout: stdout, stderr: stderr, logger: zap.NewNop()}
	root := newRootCmd(a)
	root.SetArgs(args)
	err := root.Execute()
	if a.closeLog != nil {
		if cerr := a.closeLog(); cerr != nil && err == nil {
			err = fmt.Errorf("close log: %w", cerr)
		}
	}
	return err
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:               "pddlgen",
		Short:             "Compile planning descriptions into PDDL domain and problem documents",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}
	root.SetOut(a.stdout)
	root.SetErr(a.stderr)
	root.PersistentFlags().StringVar(&a.projectDir, "project", "", "project directory holding pddlgen.yaml and .env (defaults to cwd)")
	root.AddCommand(newGenerateCmd(a), newInitCmd(a))
	return root
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	project := a.projectDir
	if project == "" {
		wd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("determine working directory: %w", err)
		}
		project = wd
	}
	absoluteProject, err := filepath.Abs(project)
	if err != nil {
		return fmt.Errorf("resolve project dir: %w", err)
	}
	cfg, err := config.Load(absoluteProject)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logger, closeLog, err := logging.New(cfg.Project.Log, a.stderr)
	if err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	a.cfg = cfg
	a.closeLog = closeLog
	a.logger = logger.With(zap.String("run_id", uuid.NewString()))
	a.logger.Debug("pddlgen starting",
		zap.String("command", cmd.Name()),
		zap.String("project", absoluteProject),
	)
	return nil
}
