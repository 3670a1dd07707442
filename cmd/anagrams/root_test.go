package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeWords(t *testing.T, words ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(words, "\n")+"\n"), 0600))
	return path
}

func scenarioFile(t *testing.T) string {
	return writeWords(t, "eat", "tea", "ate", "eats", "seat", "teas", "etas", "zzz")
}

func execute(args ...string) (string, string, error) {
	cmd := newRootCmd()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestAnagramsCmd(t *testing.T) {
	out, _, err := execute("--words", scenarioFile(t), "anagrams", "eat")

	require.NoError(t, err)
	assert.Equal(t, "ate\neat\ntea\n", out)
}

func TestCheckCmd(t *testing.T) {
	words := scenarioFile(t)

	out, _, err := execute("-w", words, "check", "eat", "tea")
	require.NoError(t, err)
	assert.Equal(t, "true\n", out)

	out, _, err = execute("-w", words, "check", "eat", "zzz")
	require.NoError(t, err)
	assert.Equal(t, "false\n", out)
}

func TestPlusCmd(t *testing.T) {
	out, _, err := execute("-w", scenarioFile(t), "plus", "eat")

	require.NoError(t, err)
	assert.Equal(t, "etas\nteas\n", out)
}

func TestGoodCmd(t *testing.T) {
	words := scenarioFile(t)

	out, _, err := execute("-w", words, "good", "teas", "eat")
	require.NoError(t, err)
	assert.Equal(t, "true\n", out)

	out, _, err = execute("-w", words, "good", "seat", "eat")
	require.NoError(t, err)
	assert.Equal(t, "false\n", out)
}

func TestStarterCmd(t *testing.T) {
	words := writeWords(t,
		"tea", "eat", "ate", "eta", "tae", "aet",
		"stop", "pots", "tops", "opts", "post", "spot")

	out, _, err := execute("-w", words, "starter", "-n", "4")

	require.NoError(t, err)
	assert.Equal(t, "tea\nstop\nskate\nskate\n", out)
}

func TestStarterCmdRejectsBadCount(t *testing.T) {
	_, _, err := execute("-w", scenarioFile(t), "starter", "--count", "0")
	assert.Error(t, err)
}

func TestStatsCmd(t *testing.T) {
	out, _, err := execute("-w", scenarioFile(t), "stats")

	require.NoError(t, err)
	assert.Equal(t, "words: 8\ngroups: 3\nlength 3: 4\nlength 4: 4\n", out)
}

func TestVerboseLogsLoad(t *testing.T) {
	_, stderr, err := execute("-w", scenarioFile(t), "-v", "stats")

	require.NoError(t, err)
	assert.Contains(t, stderr, "anagrams: Loaded 8 words in 3 anagram groups")
}

func TestMissingWordList(t *testing.T) {
	_, _, err := execute("stats")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no word list given")
}

func TestUnreadableWordList(t *testing.T) {
	_, _, err := execute("-w", filepath.Join(t.TempDir(), "missing.txt"), "stats")
	assert.Error(t, err)
}

func TestArgsValidation(t *testing.T) {
	_, _, err := execute("-w", scenarioFile(t), "check", "eat")
	assert.Error(t, err)
}
