package anagram

import (
	"unicode/utf8"

	"golang.org/x/exp/slices"
)

// SortLetters returns the letters of word sorted in ascending order. Words
// with the same sorted letters are anagrams of each other.
func SortLetters(word string) string {
	letters := []rune(word)
	slices.Sort(letters)
	return string(letters)
}

func wordLength(word string) int {
	return utf8.RuneCountInString(word)
}
