/*
Package anagram is an in-memory anagram index over a word list, meant to back a
small word-guessing game.

Every word is filed three ways when the index is built: in a set for membership
tests, in a bucket by its length, and in a group keyed by its letters sorted in
ascending order. Two words are anagrams when their sorted letters are equal, so
all anagram lookups reduce to a single map access on that key.

To use it, create a Dictionary with New() from any io.Reader that yields one
word per line, or with Load() to read a word list file. The file is memory
mapped while it is read and released before Load returns. Once built, the
dictionary is never modified, except for the length counter that
PickGoodStarterWord() advances each time it is called. Each Dictionary has its
own counter.

Queries never fail. A word that is not in the list simply produces no results.
*/
package anagram
