// Command godocai translates documentation trees using AI.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/ZaguanLabs/godocai"
	"github.com/ZaguanLabs/godocai/cache"
	"github.com/ZaguanLabs/godocai/provider"
)

// fileConfig mirrors the YAML configuration file. Flags override any value
// set here.
type fileConfig struct {
	SourceLang         string `yaml:"source_lang"`
	TargetLang         string `yaml:"target_lang"`
	TargetDir          string `yaml:"target_dir"`
	Model              string `yaml:"model"`
	LargeFileThreshold int    `yaml:"large_file_threshold"`
	MaxChunkSize       int    `yaml:"max_chunk_size"`
	ChunkDelay         string `yaml:"chunk_delay"`
	RequestsPerMinute  int    `yaml:"requests_per_minute"`
	Retries            int    `yaml:"retries"`
	CacheTTL           int    `yaml:"cache_ttl"`
	RedisURL           string `yaml:"redis_url"`
	CacheFile          string `yaml:"cache_file"`
	Incremental        bool   `yaml:"incremental"`
}

var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	TimeFormat:      time.Kitchen,
})

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logger.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "godocai",
		Short:         godocai.Description,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newTranslateCmd())
	root.AddCommand(newVersionCmd())
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", godocai.Name, godocai.FullVersion())
			if godocai.BuildDate != "unknown" {
				fmt.Fprintf(cmd.OutOrStdout(), "  built: %s\n", godocai.BuildDate)
			}
		},
	}
}

func newTranslateCmd() *cobra.Command {
	var (
		configPath string
		cfg        fileConfig
		apiKey     string
		delayFlag  time.Duration
		verbose    bool
	)

	cmd := &cobra.Command{
		Use:   "translate [source-root]",
		Short: "Translate a documentation tree into a mirrored target subtree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cfg.ChunkDelay == "" {
				cfg.ChunkDelay = delayFlag.String()
			}
			if configPath != "" {
				var fromFile fileConfig
				if err := loadConfigFile(configPath, &fromFile); err != nil {
					return err
				}
				mergeConfig(cmd, &cfg, fromFile)
			}

			if verbose {
				logger.SetLevel(log.DebugLevel)
			}

			return runTranslate(cmd.Context(), args[0], cfg, apiKey)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&configPath, "config", "c", "", "YAML configuration file")
	flags.StringVar(&cfg.TargetLang, "lang", "", "Target language code (e.g., es_ES, ja_JP)")
	flags.StringVar(&cfg.SourceLang, "source-lang", "en", "Source language code")
	flags.StringVar(&cfg.TargetDir, "target-dir", "translated", "Name of the mirrored target subtree under the source root")
	flags.StringVar(&cfg.Model, "model", "gpt-4o-mini", "OpenAI model to use")
	flags.StringVar(&apiKey, "api-key", "", "OpenAI API key (default: OPENAI_API_KEY env)")
	flags.IntVar(&cfg.LargeFileThreshold, "large-file-threshold", godocai.DefaultLargeFileThreshold, "Document size above which the chunker is used")
	flags.IntVar(&cfg.MaxChunkSize, "max-chunk-size", godocai.DefaultMaxChunkSize, "Chunk size bound")
	flags.DurationVar(&delayFlag, "chunk-delay", godocai.DefaultChunkDelay, "Pause between chunk translation calls")
	flags.IntVar(&cfg.RequestsPerMinute, "rpm", 0, "Request rate limit per minute (0 = unlimited)")
	flags.IntVar(&cfg.Retries, "retries", 0, "Provider-level retries per call (0 = attempt once)")
	flags.IntVar(&cfg.CacheTTL, "cache-ttl", 0, "Chunk cache TTL in seconds (0 = no expiration)")
	flags.StringVar(&cfg.RedisURL, "redis-url", "", "Use a Redis chunk cache at this URL instead of in-memory")
	flags.StringVar(&cfg.CacheFile, "cache-file", "", "Warm-start the in-memory cache from this JSON file and save it back after the run")
	flags.BoolVar(&cfg.Incremental, "incremental", false, "Skip files unchanged since the last completed run")
	flags.BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	return cmd
}

// loadConfigFile reads a YAML config file into cfg.
func loadConfigFile(path string, cfg *fileConfig) error {
	data, err := os.ReadFile(path) // #nosec G304 - CLI tool reads user-specified files
	if err != nil {
		return fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}
	return nil
}

// mergeConfig fills cfg from the config file for every setting whose flag
// was not set explicitly on the command line; explicit flags always win.
func mergeConfig(cmd *cobra.Command, cfg *fileConfig, fromFile fileConfig) {
	changed := cmd.Flags().Changed

	if !changed("lang") && fromFile.TargetLang != "" {
		cfg.TargetLang = fromFile.TargetLang
	}
	if !changed("source-lang") && fromFile.SourceLang != "" {
		cfg.SourceLang = fromFile.SourceLang
	}
	if !changed("target-dir") && fromFile.TargetDir != "" {
		cfg.TargetDir = fromFile.TargetDir
	}
	if !changed("model") && fromFile.Model != "" {
		cfg.Model = fromFile.Model
	}
	if !changed("large-file-threshold") && fromFile.LargeFileThreshold > 0 {
		cfg.LargeFileThreshold = fromFile.LargeFileThreshold
	}
	if !changed("max-chunk-size") && fromFile.MaxChunkSize > 0 {
		cfg.MaxChunkSize = fromFile.MaxChunkSize
	}
	if !changed("chunk-delay") && fromFile.ChunkDelay != "" {
		cfg.ChunkDelay = fromFile.ChunkDelay
	}
	if !changed("rpm") && fromFile.RequestsPerMinute > 0 {
		cfg.RequestsPerMinute = fromFile.RequestsPerMinute
	}
	if !changed("retries") && fromFile.Retries > 0 {
		cfg.Retries = fromFile.Retries
	}
	if !changed("cache-ttl") && fromFile.CacheTTL > 0 {
		cfg.CacheTTL = fromFile.CacheTTL
	}
	if !changed("redis-url") && fromFile.RedisURL != "" {
		cfg.RedisURL = fromFile.RedisURL
	}
	if !changed("cache-file") && fromFile.CacheFile != "" {
		cfg.CacheFile = fromFile.CacheFile
	}
	if !changed("incremental") && fromFile.Incremental {
		cfg.Incremental = true
	}
}

func runTranslate(ctx context.Context, root string, cfg fileConfig, apiKey string) error {
	if cfg.TargetLang == "" {
		return fmt.Errorf("target language required (--lang or config file)")
	}

	key := apiKey
	if key == "" {
		key = os.Getenv("OPENAI_API_KEY")
	}
	if key == "" {
		return fmt.Errorf("OpenAI API key required (--api-key or OPENAI_API_KEY env)")
	}

	delay, err := time.ParseDuration(cfg.ChunkDelay)
	if err != nil {
		return fmt.Errorf("invalid chunk_delay %q: %w", cfg.ChunkDelay, err)
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Provider stack: OpenAI, optionally wrapped with retry and rate limiting.
	var p godocai.Provider = provider.NewOpenAIProvider(provider.OpenAIConfig{
		APIKey: key,
		Model:  cfg.Model,
	})
	if cfg.Retries > 0 {
		retryCfg := godocai.DefaultRetryConfig()
		retryCfg.MaxRetries = cfg.Retries
		p = godocai.NewRetryableProvider(p, retryCfg)
	}
	if cfg.RequestsPerMinute > 0 {
		p = godocai.NewRateLimitedProvider(p, godocai.RateLimitConfig{
			RequestsPerMinute: cfg.RequestsPerMinute,
		})
	}

	chunkCache, saveCache, err := buildCache(cfg)
	if err != nil {
		return err
	}

	opts := []godocai.TranslatorOption{
		godocai.WithSourceLang(cfg.SourceLang),
		godocai.WithLargeFileThreshold(cfg.LargeFileThreshold),
		godocai.WithMaxChunkSize(cfg.MaxChunkSize),
		godocai.WithChunkDelay(delay),
	}
	if chunkCache != nil {
		opts = append(opts, godocai.WithCache(chunkCache))
	}

	translator := godocai.NewTranslator(cfg.TargetLang, p, opts...)
	if translator.IsSourceLang() {
		return fmt.Errorf("target language %q matches source language %q", cfg.TargetLang, cfg.SourceLang)
	}

	runner := godocai.NewRunner(translator,
		godocai.WithObserver(godocai.ObserverFunc(logFileEvent)),
		godocai.WithIncremental(cfg.Incremental),
	)

	logger.Info("starting translation",
		"root", root,
		"target", cfg.TargetDir,
		"lang", cfg.TargetLang,
		"incremental", cfg.Incremental,
	)

	summary, runErr := runner.Run(ctx, root, cfg.TargetDir)

	if saveCache != nil {
		if err := saveCache(); err != nil {
			logger.Warn("saving cache file failed", "err", err)
		}
	}

	logger.Info("run complete",
		"files", summary.Files,
		"succeeded", summary.Succeeded,
		"failed", summary.Failed,
		"skipped", summary.Skipped,
	)

	if runErr != nil {
		return runErr
	}
	if summary.Failed > 0 {
		return fmt.Errorf("%d of %d files failed to translate", summary.Failed, summary.Files)
	}
	return nil
}

// buildCache constructs the chunk cache from config. The returned save
// function is non-nil only for a file-backed in-memory cache.
func buildCache(cfg fileConfig) (godocai.ChunkCache, func() error, error) {
	if cfg.RedisURL != "" {
		rc, err := cache.NewRedisCache(cache.RedisConfig{
			URL: cfg.RedisURL,
			TTL: cfg.CacheTTL,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("connecting to Redis cache: %w", err)
		}
		return rc, nil, nil
	}

	mem := cache.NewInMemoryCache(cfg.CacheTTL)

	if cfg.CacheFile == "" {
		return mem, nil, nil
	}

	if _, err := os.Stat(cfg.CacheFile); err == nil {
		importer := cache.NewImporter(mem)
		result, err := importer.ImportFromFile(cfg.CacheFile)
		if err != nil {
			return nil, nil, fmt.Errorf("loading cache file: %w", err)
		}
		logger.Debug("cache warm start", "entries", result.Imported)
	}

	save := func() error {
		logger.Debug("saving cache file", "path", cfg.CacheFile, "entries", mem.Len())
		exporter := cache.NewExporter(mem)
		return exporter.ExportToFile(cfg.CacheFile, map[string]string{
			"tool": godocai.UserAgent(),
		})
	}
	return mem, save, nil
}

// logFileEvent renders one per-file completion event.
func logFileEvent(ev godocai.FileEvent) {
	switch ev.Outcome {
	case godocai.OutcomeSuccess:
		logger.Info("translated", "file", ev.Rel, "chunks", ev.Chunks, "cached", ev.Cached, "took", ev.Duration.Round(time.Millisecond))
	case godocai.OutcomeSkipped:
		logger.Debug("skipped", "file", ev.Rel, "reason", ev.Reason)
	case godocai.OutcomeFailure:
		if ev.Err != nil {
			logger.Error("failed", "file", ev.Rel, "err", ev.Err)
		} else {
			logger.Error("failed", "file", ev.Rel, "failedChunks", ev.Failed, "chunks", ev.Chunks)
		}
	}
}
