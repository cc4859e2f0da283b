// Package cmd implements the quillpad command line interface. Every blog
// operation of the services layer is reachable from a subcommand.
package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"

	"quillpad/app/cache"
	"quillpad/app/config"
	"quillpad/app/logging"
	"quillpad/app/repositories"
	"quillpad/app/services"
	"quillpad/app/validation"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// app carries the state shared by one invocation of the command tree.
// Services are opened lazily so that commands such as check and version
// work without a data directory.
type app struct {
	configFile string
	dataDir    string
	logLevel   string

	cfg *config.Config
	log *zap.Logger

	store    *repositories.Store
	redis    *cache.Redis
	posts    *services.PostService
	comments *services.CommentService
}

func newRootCmd() (*cobra.Command, *app) {
	a := &app{}
	root := &cobra.Command{
		Use:           "quillpad",
		Short:         "Personal blog with posts, comments and tags",
		Long:          `quillpad manages a small personal blog stored in BadgerDB: posts with tags and images, reader comments, and the input checks applied to them.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init()
		},
		Run: func(cmd *cobra.Command, _ []string) {
			_ = cmd.Help()
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configFile, "config", "", "config file (default ./quillpad.yaml)")
	flags.StringVar(&a.dataDir, "data-dir", "", "BadgerDB directory (overrides data.dir)")
	flags.StringVar(&a.logLevel, "log-level", "", "log level (overrides log.level)")

	root.AddCommand(
		newPostCmd(a),
		newCommentCmd(a),
		newTagsCmd(a),
		newMigrateCmd(a),
		newCheckCmd(),
		newVersionCmd(),
	)
	return root, a
}

// Execute runs the root command and exits with status 1 on error.
func Execute() {
	root, a := newRootCmd()
	err := root.Execute()
	if closeErr := a.close(); closeErr != nil {
		fmt.Fprintf(os.Stderr, "warning: closing store: %v\n", closeErr)
	}
	if err != nil {
		printError(os.Stderr, err)
		os.Exit(1)
	}
}

// printError writes err for the user. Rejected input is listed one problem
// per line.
func printError(w io.Writer, err error) {
	if !services.IsValidation(err) {
		fmt.Fprintf(w, "Error: %v\n", err)
		return
	}
	fmt.Fprintln(w, "Error: input rejected")
	for _, p := range validation.Problems(err) {
		fmt.Fprintf(w, "  - %s\n", p)
	}
}

func (a *app) init() error {
	cfg, err := config.Load(config.Options{ConfigFile: a.configFile})
	if err != nil {
		return err
	}
	if a.dataDir != "" {
		cfg.DataDir = a.dataDir
	}
	if a.logLevel != "" {
		cfg.LogLevel = a.logLevel
	}

	logger, err := logging.New(cfg.LogLevel, cfg.LogDevelopment)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.log = logger
	return nil
}

// open connects the store, the optional tag cache and the services.
func (a *app) open(ctx context.Context) error {
	if a.posts != nil {
		return nil
	}

	store, err := repositories.Open(a.cfg.DataDir, a.log)
	if err != nil {
		return err
	}
	a.store = store

	var tags cache.TagCache = cache.Nop{}
	if a.cfg.RedisAddr != "" {
		rdb, err := cache.Dial(ctx, a.cfg.RedisAddr, a.cfg.RedisTTL)
		if err != nil {
			a.log.Warn("tag cache disabled", zap.Error(err))
		} else {
			a.redis = rdb
			tags = rdb
		}
	}

	a.posts = services.NewPostService(store.Posts, store.Comments, tags, a.log)
	a.comments = services.NewCommentService(store.Comments, store.Posts, a.log)
	a.log.Debug("store opened", zap.String("dir", a.cfg.DataDir))
	return nil
}

func (a *app) close() error {
	if a.redis != nil {
		if err := a.redis.Close(); err != nil && a.log != nil {
			a.log.Warn("closing redis", zap.Error(err))
		}
		a.redis = nil
	}
	if a.log != nil {
		_ = a.log.Sync()
	}
	if a.store == nil {
		return nil
	}
	err := a.store.Close()
	a.store = nil
	a.posts = nil
	a.comments = nil
	return err
}

func parseID(raw string) (int, error) {
	id, err := strconv.Atoi(raw)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("invalid id %q", raw)
	}
	return id, nil
}
