package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/kingrea/pddlkit/plugins"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	labelStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
	pathStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("246"))
)

type generateOptions struct {
	outDir      string
	domain      string
	problem     string
	optionsFile string
	init        keyValueFlag
	goal        keyValueFlag
}

func newGenerateCmd(a *app) *cobra.Command {
	opts := &generateOptions{}
	cmd := &cobra.Command{
		Use:   "generate <description.go|description.yaml>",
		Short: "Write the domain and problem documents for a description",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.generate(args[0], opts)
		},
	}
	flags := cmd.Flags()
	flags.StringVarP(&opts.outDir, "out", "o", "", "output directory (defaults to output.dir)")
	flags.StringVar(&opts.domain, "domain", "", "domain document name without extension")
	flags.StringVar(&opts.problem, "problem", "", "problem document name without extension")
	flags.StringVar(&opts.optionsFile, "options-file", "", "YAML file with init and goal option maps")
	flags.Var(&opts.init, "init", "init option override (repeatable)")
	flags.Var(&opts.goal, "goal", "goal option override (repeatable)")
	return cmd
}

func (a *app) generate(path string, opts *generateOptions) error {
	desc, err := plugins.Loader{Logger: a.logger}.Load(path)
	if err != nil {
		return err
	}
	initOpts, goalOpts, err := buildOptions(opts.optionsFile, opts.init, opts.goal)
	if err != nil {
		return err
	}

	outDir := a.cfg.OutputDir()
	if trimmed := strings.TrimSpace(opts.outDir); trimmed != "" {
		abs, err := filepath.Abs(trimmed)
		if err != nil {
			return fmt.Errorf("resolve output dir: %w", err)
		}
		outDir = abs
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("ensure output dir %s: %w", outDir, err)
	}
	domainBase := documentBase(outDir, opts.domain, a.cfg.Project.Output.Domain)
	problemBase := documentBase(outDir, opts.problem, a.cfg.Project.Output.Problem)
	if domainBase == problemBase {
		return fmt.Errorf("domain and problem documents would both be written to %s.pddl", domainBase)
	}

	domainPath, problemPath, err := desc.Problem.GenerateDocuments(initOpts, goalOpts, domainBase, problemBase)
	if err != nil {
		return err
	}
	a.logger.Info("documents generated",
		zap.String("description", desc.Path),
		zap.String("kind", desc.Kind),
		zap.String("domain", domainPath),
		zap.String("problem", problemPath),
	)
	fmt.Fprintf(a.stdout, "%s %s\n", labelStyle.Render("domain "), pathStyle.Render(domainPath))
	fmt.Fprintf(a.stdout, "%s %s\n", labelStyle.Render("problem"), pathStyle.Render(problemPath))
	return nil
}

// documentBase joins a document name onto dir unless the name is already a path.
func documentBase(dir, name, fallback string) string {
	trimmed := strings.TrimSuffix(strings.TrimSpace(name), ".pddl")
	if trimmed == "" {
		trimmed = fallback
	}
	if filepath.IsAbs(trimmed) {
		return filepath.Clean(trimmed)
	}
	return filepath.Join(dir, trimmed)
}
