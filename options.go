package anagram

import "log"

const (
	// DefaultLength is the word length the starter picker begins with.
	DefaultLength = 3

	// MaxLength is the longest word length the starter picker will ask for.
	MaxLength = 7

	// MinAnagrams is the number of anagrams a starter word must exceed.
	MinAnagrams = 5

	// FallbackWord is returned when no word of the current length qualifies.
	FallbackWord = "skate"
)

// Options controls how a Dictionary picks starter words and whether it logs.
type Options struct {
	DefaultLength int
	MaxLength     int
	MinAnagrams   int
	FallbackWord  string

	// Logger, if set, receives a summary line once the word list is loaded.
	Logger *log.Logger
}

// Option changes one field of Options.
type Option func(*Options)

// DefaultOptions returns the settings used when no Option is given.
func DefaultOptions() Options {
	return Options{
		DefaultLength: DefaultLength,
		MaxLength:     MaxLength,
		MinAnagrams:   MinAnagrams,
		FallbackWord:  FallbackWord,
	}
}

// WithDefaultLength sets the starting word length of the starter picker.
func WithDefaultLength(n int) Option {
	return func(o *Options) { o.DefaultLength = n }
}

// WithMaxLength sets the cap on the starter picker's word length.
func WithMaxLength(n int) Option {
	return func(o *Options) { o.MaxLength = n }
}

// WithMinAnagrams sets how many anagrams a starter word must exceed.
func WithMinAnagrams(n int) Option {
	return func(o *Options) { o.MinAnagrams = n }
}

// WithFallbackWord sets the word returned when no starter qualifies.
func WithFallbackWord(word string) Option {
	return func(o *Options) { o.FallbackWord = word }
}

// WithLogger sets the logger that reports the loaded word list.
func WithLogger(logger *log.Logger) Option {
	return func(o *Options) { o.Logger = logger }
}

func buildOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	// the counter only moves up, so it cannot start above its cap
	if o.DefaultLength > o.MaxLength {
		o.DefaultLength = o.MaxLength
	}

	return o
}
