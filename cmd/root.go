// Package cmd provides the root command and CLI setup for vifmap.
package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/vifmap/internal/adapter"
	"github.com/mouse-blink/vifmap/internal/config"
	"github.com/mouse-blink/vifmap/internal/controller"
	"github.com/mouse-blink/vifmap/internal/domain"
	m "github.com/mouse-blink/vifmap/internal/model"
)

var cfg *config.Config
var workflow domain.Workflow

// newWorkflow wires the workflow from the loaded configuration.
var newWorkflow = buildWorkflow

var configFlag string
var verboseFlag bool
var parallelFlag int
var storeFlag string

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vifmap",
		Short: "Map TikZ code to the visual features it draws",
		Long: `Vifmap finds which parts of a TikZ figure draw which visual features.

It renders the figure, asks a detector (or reads a detections file) for labelled
features, deletes pieces of the code one at a time and measures how much each
deletion changes every feature's region. The resulting map is stored and can be
used to comment the code or to answer free-text queries.

  vifmap map figure.tex
  vifmap annotate figure-1a2b3c4d
  vifmap query figure-1a2b3c4d the red circle --highlight`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return setup(cmd)
		},
	}
	cmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "config file (default ./"+config.DefaultFile+" when present)")
	cmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "log debug information to stderr")
	cmd.PersistentFlags().IntVarP(&parallelFlag, "parallel", "p", 0, "number of parallel render workers (0 uses every CPU)")
	cmd.PersistentFlags().StringVar(&storeFlag, "store", "", "directory of the local artifact store")

	return cmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	err := rootCmd.ExecuteContext(ctx)

	stop()

	if err != nil {
		os.Exit(1)
	}
}

// setup loads the configuration, applies the persistent flags over it and wires
// the workflow unless one is already set.
func setup(cmd *cobra.Command) error {
	if configFlag != "" {
		if _, err := os.Stat(configFlag); err != nil {
			return fmt.Errorf("config file: %w", err)
		}
	}

	loaded, err := config.Load(configFlag)
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("parallel") {
		loaded.Workers = parallelFlag
	}

	if cmd.Flags().Changed("store") {
		loaded.Store.Kind = config.StoreLocal
		loaded.Store.Dir = storeFlag
	}

	if verboseFlag {
		loaded.LogLevel = "debug"
	}

	if err := loaded.Validate(); err != nil {
		return err
	}

	cfg = loaded

	if workflow != nil {
		return nil
	}

	workflow, err = newWorkflow(cmd, cfg)

	return err
}

func buildWorkflow(cmd *cobra.Command, conf *config.Config) (domain.Workflow, error) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	level, err := conf.SlogLevel()
	if err != nil {
		return nil, err
	}

	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	store, err := newResultStore(conf)
	if err != nil {
		return nil, err
	}

	embedder, err := newEmbedder(ctx, conf)
	if err != nil {
		return nil, err
	}

	detector, err := newDetector(ctx, conf)
	if err != nil {
		return nil, err
	}

	renderer := adapter.NewLatexRenderer(
		adapter.WithLatexBinary(conf.Render.Latex),
		adapter.WithRasterBinary(conf.Render.Raster),
		adapter.WithDPI(conf.Render.DPI),
		adapter.WithRenderTimeout(conf.Render.Timeout.Duration),
		adapter.WithRendererLogger(logger),
	)

	ui := controller.NewUI(cmd, controller.IsTTY(cmd.OutOrStdout()))

	opts := []domain.Option{
		domain.WithWorkers(conf.Workers),
		domain.WithCacheSize(conf.Render.CacheSize),
		domain.WithLogger(logger),
	}

	mutagenOpts := make([]domain.Option, 0, len(opts)+1)
	mutagenOpts = append(mutagenOpts, opts...)
	mutagenOpts = append(mutagenOpts, domain.WithProgress(ui.DisplayProgress))

	return domain.NewWorkflow(
		adapter.NewLocalSourceFSAdapter(),
		store,
		ui,
		detector,
		embedder,
		domain.NewMutagen(renderer, mutagenOpts...),
		domain.NewMapper(opts...),
		opts...,
	), nil
}

func newResultStore(conf *config.Config) (adapter.ResultStore, error) {
	if conf.Store.Kind != config.StoreS3 {
		return adapter.NewLocalResultStore(conf.Store.Dir), nil
	}

	s3 := conf.Store.S3

	return adapter.NewS3ResultStore(adapter.S3Config{
		Endpoint:  s3.Endpoint,
		Region:    s3.Region,
		AccessKey: s3.AccessKey,
		SecretKey: s3.SecretKey,
		Bucket:    s3.Bucket,
		Prefix:    s3.Prefix,
		UseSSL:    s3.UseSSL,
	})
}

func newEmbedder(ctx context.Context, conf *config.Config) (adapter.Embedder, error) {
	if !conf.UseGemini() {
		return adapter.NewHashEmbedder(conf.Embedding.Dims), nil
	}

	return adapter.NewGeminiEmbedder(ctx, conf.GeminiAPIKey, conf.Embedding.Model)
}

// newDetector returns nil without an API key; map then needs a detections file.
func newDetector(ctx context.Context, conf *config.Config) (adapter.Detector, error) {
	if conf.GeminiAPIKey == "" {
		return nil, nil
	}

	return adapter.NewGeminiDetector(ctx, conf.GeminiAPIKey, conf.Detector.Model)
}

func parsePaths(args []string) []m.Path {
	if len(args) == 0 {
		return []m.Path{"."}
	}

	paths := make([]m.Path, 0, len(args))
	for _, arg := range args {
		paths = append(paths, m.Path(arg))
	}

	return paths
}
