package anagram

import (
	"fmt"
	"io"

	"golang.org/x/exp/mmap"
)

// Load builds a Dictionary from the word list in the named file, one word per
// line. The file is memory mapped while it is read and unmapped before Load
// returns.
func Load(filename string, opts ...Option) (*Dictionary, error) {
	f, err := mmap.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("anagram: opening word list: %w", err)
	}

	defer f.Close()
	return New(io.NewSectionReader(f, 0, int64(f.Len())), opts...)
}
