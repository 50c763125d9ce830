package main

import (
	"fmt"
	"log/slog"

	"github.com/born-ml/modtree/internal/arch"
	"github.com/born-ml/modtree/internal/nn"
	"github.com/spf13/cobra"
)

// options holds flags shared by all commands.
type options struct {
	verbose bool
	noColor bool
	jsonOut bool
	eval    bool
	logger  *slog.Logger
}

func newRootCmd() *cobra.Command {
	opts := &options{logger: slog.New(slog.DiscardHandler)}

	rootCmd := &cobra.Command{
		Use:   "modtree",
		Short: "Inspect module trees built from architecture files",
		Long: `modtree builds a module tree from a YAML architecture file and reports
its structure, the qualified names of its parameters and the
training/evaluation mode of every module.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			level := slog.LevelWarn
			if opts.verbose {
				level = slog.LevelDebug
			}
			opts.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&opts.noColor, "no-color", false, "Disable styled output")

	rootCmd.AddCommand(
		newInspectCmd(opts),
		newParamsCmd(opts),
		newModesCmd(opts),
		newTemplateCmd(),
		newVersionCmd(),
	)
	return rootCmd
}

func newInspectCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect [architecture.yaml]",
		Short: "Show the structure and parameters of a module tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := loadTree(opts, args[0])
			if err != nil {
				return err
			}

			rep := newReport(root)
			rep.Structure = nn.Repr(root)
			if opts.jsonOut {
				return writeJSON(cmd.OutOrStdout(), rep)
			}

			p := newPrinter(cmd.OutOrStdout(), opts.noColor)
			p.structure(rep)
			p.parameters(rep)
			p.summary(rep)
			return nil
		},
	}
	cmd.Flags().BoolVar(&opts.jsonOut, "json", false, "Output as JSON")
	cmd.Flags().BoolVar(&opts.eval, "eval", false, "Switch the tree to evaluation mode before reporting")
	return cmd
}

func newParamsCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "params [architecture.yaml]",
		Short: "List parameters with their qualified names",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := loadTree(opts, args[0])
			if err != nil {
				return err
			}

			rep := newReport(root)
			rep.Modules = nil
			if opts.jsonOut {
				return writeJSON(cmd.OutOrStdout(), rep)
			}

			p := newPrinter(cmd.OutOrStdout(), opts.noColor)
			p.parameters(rep)
			p.summary(rep)
			return nil
		},
	}
	cmd.Flags().BoolVar(&opts.jsonOut, "json", false, "Output as JSON")
	return cmd
}

func newModesCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "modes [architecture.yaml]",
		Short: "Show the training/evaluation mode of every module",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := loadTree(opts, args[0])
			if err != nil {
				return err
			}

			rep := newReport(root)
			rep.Parameters = nil
			if opts.jsonOut {
				return writeJSON(cmd.OutOrStdout(), rep)
			}

			newPrinter(cmd.OutOrStdout(), opts.noColor).modes(rep)
			return nil
		},
	}
	cmd.Flags().BoolVar(&opts.jsonOut, "json", false, "Output as JSON")
	cmd.Flags().BoolVar(&opts.eval, "eval", false, "Switch the tree to evaluation mode before reporting")
	return cmd
}

func newTemplateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "template",
		Short: "Print a starter architecture file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, err := arch.Marshal(templateSpec())
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "modtree %s\n", version)
		},
	}
}

// loadTree reads, builds and mode-switches the tree described at path.
func loadTree(opts *options, path string) (*nn.Block, error) {
	spec, err := arch.LoadFile(path)
	if err != nil {
		return nil, err
	}
	opts.logger.Debug("loaded architecture", "path", path, "root", spec.Name, "modules", len(spec.Modules))

	root, err := arch.Build(spec)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	opts.logger.Debug("built module tree", "parameters", root.NumParameters(), "seed", spec.Seed)

	if opts.eval {
		root.Eval()
		opts.logger.Debug("switched tree to evaluation mode")
	}
	return root, nil
}

// templateSpec is the architecture printed by the template command.
func templateSpec() *arch.Spec {
	noBias := false
	return &arch.Spec{
		Name: "MLP",
		Seed: 1,
		Parameters: arch.ParamShapes{
			{Name: "temperature", Shape: []int{1}},
		},
		Modules: []arch.ModuleSpec{
			{Name: "encoder", Type: arch.TypeLinear, In: 4, Out: 16},
			{Name: "act", Type: arch.TypeReLU},
			{Name: "drop", Type: arch.TypeDropout, P: 0.1},
			{
				Name:  "head",
				Type:  arch.TypeBlock,
				Class: "Head",
				Parameters: arch.ParamShapes{
					{Name: "gate", Shape: []int{16}},
				},
				Modules: []arch.ModuleSpec{
					{Name: "proj", Type: arch.TypeLinear, In: 16, Out: 2, Bias: &noBias},
				},
			},
		},
	}
}
