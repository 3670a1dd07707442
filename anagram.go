package anagram

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"sync"

	"golang.org/x/exp/slices"
)

// Dictionary is an anagram index over a word list. It is built once and is
// read-only afterwards, apart from the length counter that
// PickGoodStarterWord advances.
type Dictionary struct {
	opts Options

	// all distinct words
	words map[string]struct{}

	// sorted letters -> words with those letters, in load order
	groups map[string][]string

	// word length -> words of that length, in load order
	lengths map[int][]string

	mu           sync.Mutex
	targetLength int
}

// New reads a word list from r, one word per line, and builds a Dictionary
// from it. Surrounding whitespace is trimmed. A repeated word is stored once in
// the word set but still counts toward its length bucket and anagram group.
// Blank lines are skipped rather than indexed as a zero-length word.
// Lines may be any length. If r cannot be read to the end, New returns the
// error and no Dictionary.
func New(r io.Reader, opts ...Option) (*Dictionary, error) {
	dict := newDictionary(opts)

	reader := bufio.NewReader(r)
	for {
		line, err := reader.ReadString('\n')
		dict.add(line)

		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("anagram: reading word list: %w", err)
		}
	}

	dict.logLoaded()
	return dict, nil
}

// FromWords builds a Dictionary from words already in memory. The words are
// cleaned up the same way New does it.
func FromWords(words []string, opts ...Option) *Dictionary {
	dict := newDictionary(opts)
	for _, word := range words {
		dict.add(word)
	}

	dict.logLoaded()
	return dict
}

func newDictionary(opts []Option) *Dictionary {
	o := buildOptions(opts)
	return &Dictionary{
		opts:         o,
		words:        make(map[string]struct{}),
		groups:       make(map[string][]string),
		lengths:      make(map[int][]string),
		targetLength: o.DefaultLength,
	}
}

func (dict *Dictionary) add(line string) {
	word := strings.TrimSpace(line)
	if word == "" {
		return
	}

	dict.words[word] = struct{}{}

	length := wordLength(word)
	dict.lengths[length] = append(dict.lengths[length], word)

	key := SortLetters(word)
	dict.groups[key] = append(dict.groups[key], word)
}

func (dict *Dictionary) logLoaded() {
	if dict.opts.Logger != nil {
		dict.opts.Logger.Printf("Loaded %d words in %d anagram groups",
			len(dict.words), len(dict.groups))
	}
}

// SortLetters is the same as the package level SortLetters.
func (dict *Dictionary) SortLetters(word string) string {
	return SortLetters(word)
}

// IsGoodWord returns true if word is in the dictionary and does not contain
// base. It rules out answers that merely extend the base word, such as
// "skates" for "skate".
func (dict *Dictionary) IsGoodWord(word, base string) bool {
	return dict.Contains(word) && !strings.Contains(word, base)
}

// IsAnagram returns true if target is in the dictionary and has the same
// letters as word. Every word in the dictionary is an anagram of itself.
func (dict *Dictionary) IsAnagram(word, target string) bool {
	group, ok := dict.groups[SortLetters(word)]
	return ok && slices.Contains(group, target)
}

// Anagrams returns every word in the dictionary that is an anagram of target,
// including target itself if it is in the dictionary. The order of the result
// is not defined.
func (dict *Dictionary) Anagrams(target string) []string {
	var result []string
	length := wordLength(target)
	for word := range dict.words {
		if wordLength(word) == length && dict.IsAnagram(word, target) {
			result = append(result, word)
		}
	}

	return result
}

// AnagramsWithOneMoreLetter returns the words that can be made from the
// letters of word plus one letter from 'a' to 'z'. Words that still contain
// word itself are left out.
func (dict *Dictionary) AnagramsWithOneMoreLetter(word string) []string {
	var result []string
	for ch := 'a'; ch <= 'z'; ch++ {
		for _, candidate := range dict.groups[SortLetters(word+string(ch))] {
			if dict.IsGoodWord(candidate, word) {
				result = append(result, candidate)
			}
		}
	}

	return result
}

// PickGoodStarterWord returns the first word, in load order, of the current
// target length that has more than MinAnagrams anagrams. If there is none, it
// returns the fallback word. Either way, the target length goes up by one
// until it reaches MaxLength.
func (dict *Dictionary) PickGoodStarterWord() string {
	dict.mu.Lock()
	defer dict.mu.Unlock()

	length := dict.targetLength
	dict.targetLength = min(length+1, dict.opts.MaxLength)

	for _, word := range dict.lengths[length] {
		if len(dict.groups[SortLetters(word)]) > dict.opts.MinAnagrams {
			return word
		}
	}

	return dict.opts.FallbackWord
}

// TargetLength returns the word length the next call to PickGoodStarterWord
// will look at.
func (dict *Dictionary) TargetLength() int {
	dict.mu.Lock()
	defer dict.mu.Unlock()
	return dict.targetLength
}

// Contains returns true if word is in the dictionary.
func (dict *Dictionary) Contains(word string) bool {
	_, ok := dict.words[word]
	return ok
}

// Len returns the number of distinct words.
func (dict *Dictionary) Len() int {
	return len(dict.words)
}

// NumGroups returns the number of distinct sets of letters, which is the
// number of anagram groups.
func (dict *Dictionary) NumGroups() int {
	return len(dict.groups)
}

// LengthCounts returns the number of words of each length, counting a
// repeated word once per line it appeared on.
func (dict *Dictionary) LengthCounts() map[int]int {
	counts := make(map[int]int, len(dict.lengths))
	for length, words := range dict.lengths {
		counts[length] = len(words)
	}
	return counts
}
