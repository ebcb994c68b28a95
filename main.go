package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Hadidomena/caesarCipher/config"
	"github.com/Hadidomena/caesarCipher/dictionary"
	"github.com/Hadidomena/caesarCipher/logging"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// app carries the state shared by every command of one invocation.
type app struct {
	configPath string
	wordList   string
	verbose    bool

	cfg    *config.Config
	logger *zap.Logger
	words  *dictionary.Dictionary

	buildLogger func(cfg config.LoggingConfig, verbose bool) (*zap.Logger, error)
}

func newApp() *app {
	return &app{buildLogger: logging.New}
}

func newRootCmd() *cobra.Command {
	return newApp().rootCmd()
}

// execute runs cmd and flushes the logger whether or not the command failed.
func (a *app) execute(cmd *cobra.Command) error {
	defer a.sync()
	return cmd.Execute()
}

func (a *app) sync() {
	if a.logger != nil {
		_ = a.logger.Sync()
	}
}

func (a *app) rootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "caesar",
		Short: "Encrypt text with a Caesar cipher and break it by dictionary search",
		Long: `caesar shifts letters along the alphabet to encrypt text, and recovers
the plaintext of a Caesar ciphertext by trying all 26 shifts and keeping the
one that yields the most dictionary words.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "", "path to a YAML config file")
	rootCmd.PersistentFlags().StringVar(&a.wordList, "wordlist", "", "word list file (overrides config)")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(
		a.encryptCmd(),
		a.decryptCmd(),
		a.storyCmd(),
		a.selftestCmd(),
	)
	return rootCmd
}

func (a *app) setup() error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.wordList != "" {
		cfg.WordList = a.wordList
		cfg.Dictionary.Source = config.SourceFile
	}
	a.cfg = cfg

	logger, err := a.buildLogger(cfg.Logging, a.verbose)
	if err != nil {
		return err
	}
	a.logger = logger
	return nil
}

// dictionary loads the configured word source once per invocation.
func (a *app) dictionary(ctx context.Context) (*dictionary.Dictionary, error) {
	if a.words != nil {
		return a.words, nil
	}

	var words *dictionary.Dictionary
	var err error
	switch a.cfg.Dictionary.Source {
	case config.SourceSQL:
		a.logger.Info("Loading word list from database", zap.String("driver", a.cfg.Dictionary.Driver))
		words, err = a.loadSQLDictionary(ctx)
	default:
		a.logger.Info("Loading word list from file", zap.String("path", a.cfg.WordList))
		words, err = dictionary.Load(a.cfg.WordList)
	}
	if err != nil {
		return nil, err
	}

	a.logger.Info("Word list loaded", zap.Int("words", words.Len()))
	a.words = words
	return words, nil
}

func (a *app) loadSQLDictionary(ctx context.Context) (*dictionary.Dictionary, error) {
	db, err := sql.Open(a.cfg.Dictionary.Driver, a.cfg.Dictionary.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to open word database: %w", err)
	}
	defer db.Close()

	return dictionary.LoadSQL(ctx, db, a.cfg.Dictionary.Query)
}

func main() {
	a := newApp()
	if err := a.execute(a.rootCmd()); err != nil {
		os.Exit(1)
	}
}
