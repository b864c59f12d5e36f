package main

import (
	"io"

	"seqrename/internal/config"
	"seqrename/internal/log"
	"seqrename/internal/rename"

	"github.com/spf13/cobra"
)

var (
	version = "dev"
)

type rootOptions struct {
	folder    string
	cfgFile   string
	extension string
	debug     bool
	logJSON   bool
}

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	var opts rootOptions

	cmd := &cobra.Command{
		Use:   "seqrename [directory]",
		Short: "Rename every entry of a directory to 0.jpg, 1.jpg, ...",
		Long: `Seqrename lists the direct entries of a directory, sorts them by name and
renames each one to its zero-based position followed by a fixed extension.

Names are compared as plain strings, so "10.jpg" sorts before "2.jpg".
The pass is destructive and not atomic: if a rename fails, entries renamed
before it keep their new names.`,
		Version:       version,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRename(cmd, args, &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.folder, "folder", "f", "", "Directory to rename (overrides argument, defaults to directories.default from config)")
	cmd.Flags().StringVar(&opts.cfgFile, "config", "", "config file (default is $HOME/.config/seqrename/config.yaml)")
	cmd.Flags().StringVar(&opts.extension, "extension", "", "Extension appended to each index (default \".jpg\")")
	cmd.Flags().BoolVar(&opts.debug, "debug", false, "Log every rename to stderr")
	cmd.Flags().BoolVar(&opts.logJSON, "log-json", false, "Write logs as JSON")

	return cmd
}

func runRename(cmd *cobra.Command, args []string, opts *rootOptions) error {
	cfg, err := loadConfig(opts.cfgFile)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("extension") {
		cfg.Settings.Extension = opts.extension
	}

	configureLogging(cmd.ErrOrStderr(), cfg.Logging.Debug || opts.debug, cfg.Logging.JSON || opts.logJSON)

	directory := resolveDirectory(opts.folder, args, cfg)

	renamer, err := rename.CurrentRenamerFactory(cfg)
	if err != nil {
		return err
	}
	renamer.SetOutput(cmd.OutOrStdout())

	log.LogWithFields(log.F("directory", directory), log.F("extension", cfg.Settings.Extension)).
		Debug("Starting rename pass")

	_, err = renamer.RenameAll(directory)
	return err
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadConfigFile(path)
	}
	return config.LoadConfig()
}

// resolveDirectory picks the flag first, then the argument, then the config default.
func resolveDirectory(folder string, args []string, cfg *config.Config) string {
	if folder != "" {
		return folder
	}
	if len(args) > 0 {
		return args[0]
	}
	return cfg.Directories.Default
}

func configureLogging(w io.Writer, debug, jsonOutput bool) {
	opts := []log.Option{log.WithOutput(w)}
	if jsonOutput {
		opts = append(opts, log.WithJSON())
	}
	log.SetDefault(log.NewLogger(opts...))
	log.SetDebug(debug)
}
