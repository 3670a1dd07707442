package main

import (
	"errors"
	"log"

	"github.com/spf13/cobra"

	"github.com/milden6/anagram"
)

type app struct {
	configPath string
	wordsPath  string
	verbose    bool

	dict *anagram.Dictionary
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "anagrams",
		Short: "Query anagrams in a word list",
		Long: `Loads a word list, one word per line, and answers anagram questions
about it: the anagrams of a word, whether two words are anagrams, the words
made by adding one letter, and starter words for a guessing game.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.load,
	}
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&a.wordsPath, "words", "w", "", "word list file, one word per line")
	flags.StringVarP(&a.configPath, "config", "c", "", "TOML config file")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "log progress to stderr")

	rootCmd.AddCommand(
		a.anagramsCmd(),
		a.checkCmd(),
		a.plusCmd(),
		a.goodCmd(),
		a.starterCmd(),
		a.statsCmd(),
	)

	return rootCmd
}

func (a *app) load(cmd *cobra.Command, _ []string) error {
	if cmd.Name() == "help" {
		return nil
	}

	cfg := defaultConfig()
	if a.configPath != "" {
		var err error
		if cfg, err = loadConfig(a.configPath); err != nil {
			return err
		}
	}

	if a.wordsPath != "" {
		cfg.Words = a.wordsPath
	}

	if cfg.Words == "" {
		return errors.New("no word list given: use --words or set words in the config file")
	}

	opts := cfg.options()
	if a.verbose {
		logger := log.New(cmd.ErrOrStderr(), "anagrams: ", 0)
		logger.Printf("Reading %s", cfg.Words)
		opts = append(opts, anagram.WithLogger(logger))
	}

	dict, err := anagram.Load(cfg.Words, opts...)
	if err != nil {
		return err
	}

	a.dict = dict
	return nil
}
