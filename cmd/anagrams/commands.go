package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

func (a *app) anagramsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "anagrams [word]",
		Short: "List the anagrams of a word",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return printWords(cmd.OutOrStdout(), a.dict.Anagrams(args[0]))
		},
	}
}

func (a *app) checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check [word] [target]",
		Short: "Report whether target is an anagram of word",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), a.dict.IsAnagram(args[0], args[1]))
			return err
		},
	}
}

func (a *app) plusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "plus [word]",
		Short: "List the words made from a word plus one letter",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return printWords(cmd.OutOrStdout(), a.dict.AnagramsWithOneMoreLetter(args[0]))
		},
	}
}

func (a *app) goodCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "good [word] [base]",
		Short: "Report whether word is a valid answer for base",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), a.dict.IsGoodWord(args[0], args[1]))
			return err
		},
	}
}

func (a *app) starterCmd() *cobra.Command {
	var count int

	cmd := &cobra.Command{
		Use:   "starter",
		Short: "Pick starter words for a game, one round after another",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if count < 1 {
				return fmt.Errorf("count must be at least 1, got %d", count)
			}

			for i := 0; i < count; i++ {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), a.dict.PickGoodStarterWord()); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", 1, "number of rounds")
	return cmd
}

func (a *app) statsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show the size of the loaded word list",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "words: %d\n", a.dict.Len())
			fmt.Fprintf(w, "groups: %d\n", a.dict.NumGroups())

			counts := a.dict.LengthCounts()
			lengths := maps.Keys(counts)
			slices.Sort(lengths)
			for _, length := range lengths {
				fmt.Fprintf(w, "length %d: %d\n", length, counts[length])
			}
			return nil
		},
	}
}

// printWords writes words sorted, one per line, since lookups return them in
// no particular order.
func printWords(w io.Writer, words []string) error {
	slices.Sort(words)
	for _, word := range words {
		if _, err := fmt.Fprintln(w, word); err != nil {
			return err
		}
	}
	return nil
}
