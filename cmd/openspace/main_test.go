package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/openspace/cmd/openspace/options"
	"github.com/katalvlaran/openspace/internal/config"
	"github.com/katalvlaran/openspace/internal/roster"
	"github.com/katalvlaran/openspace/preference"
)

// workspace writes a roster and a YAML configuration into a temp dir and
// returns the configuration path and the dir.
func workspace(t *testing.T) (string, string) {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "people.csv"), []byte("Name\nAleksei\nBrigi\nImran\nJens\n"), 0o644))

	cfg := strings.Join([]string{
		"input_file: " + filepath.Join(dir, "people.csv"),
		"output_file: " + filepath.Join(dir, "seating"),
		"report_file: " + filepath.Join(dir, "summary.txt"),
		"number_of_tables: 2",
		"table_capacity: 3",
		"preferences:",
		"  with:",
		"    Aleksei: [Brigi]",
		"    Imran: [Jens]",
		"  without:",
		"    Aleksei: [Imran]",
		"",
	}, "\n")
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(cfg), 0o644))

	return path, dir
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	color.NoColor = true
	var out bytes.Buffer
	cmd := newRootCommand()
	cmd.SetArgs(append(args, "--log-level", "error"))
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	err := cmd.Execute()

	return out.String(), err
}

func TestRun(t *testing.T) {
	path, dir := workspace(t)

	out, err := execute(t, "run", "-c", path, "--seed", "3")
	require.NoError(t, err)
	require.Contains(t, out, "(seed 3, fixed)")
	require.Contains(t, out, "seats 6, people 4, free 2")
	require.NotContains(t, out, "warning:")

	data, err := os.ReadFile(filepath.Join(dir, "seating.csv"))
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 5)
	require.Equal(t, "Name,Table,WithPref,WithoutPref,Cluster", lines[0])

	summary, err := os.ReadFile(filepath.Join(dir, "summary.txt"))
	require.NoError(t, err)
	require.Contains(t, string(summary), "Group 1: Aleksei, Brigi")
	require.Contains(t, string(summary), "Group 2: Imran, Jens")
}

func TestRunAddTable(t *testing.T) {
	path, _ := workspace(t)

	out, err := execute(t, "run", "-c", path, "--add-table", "1", "-q")
	require.NoError(t, err)
	require.Empty(t, out)

	_, err = execute(t, "run", "-c", path, "--add-table", "-1")
	require.ErrorContains(t, err, "--add-table")
}

func TestRunErrors(t *testing.T) {
	_, err := execute(t, "run", "-c", filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorContains(t, err, "read config")

	path, dir := workspace(t)
	_, err = execute(t, "run", "-c", path, "-i", filepath.Join(dir, "nobody.csv"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestPrefer(t *testing.T) {
	path, _ := workspace(t)

	out, err := execute(t, "prefer", "Brigi", "--with", "Jens", "-c", path)
	require.NoError(t, err)
	require.Contains(t, out, "saved preferences of Brigi")

	cfg, err := config.LoadFile(path)
	require.NoError(t, err)
	require.Equal(t, []string{"Jens"}, cfg.Preferences.With["Brigi"])
	require.Equal(t, []string{"Brigi"}, cfg.Preferences.With["Aleksei"])

	_, err = execute(t, "prefer", "Aleksei", "--clear", "-c", path)
	require.NoError(t, err)
	cfg, err = config.LoadFile(path)
	require.NoError(t, err)
	require.NotContains(t, cfg.Preferences.With, "Aleksei")
	require.NotContains(t, cfg.Preferences.Without, "Aleksei")
}

func TestPreferErrors(t *testing.T) {
	path, _ := workspace(t)

	_, err := execute(t, "prefer", "Brigi", "-c", path)
	require.ErrorIs(t, err, options.ErrNoLists)

	_, err = execute(t, "prefer", "Brigi", "--with", "Zoe", "-c", path)
	var unknown *preference.UnknownPersonError
	require.ErrorAs(t, err, &unknown)
	require.Equal(t, preference.Person("Zoe"), unknown.Name)

	cfg, err := config.LoadFile(path)
	require.NoError(t, err)
	require.NotContains(t, cfg.Preferences.With, "Brigi")
}

func TestAddPerson(t *testing.T) {
	path, dir := workspace(t)

	out, err := execute(t, "add-person", "Mona", "-c", path)
	require.NoError(t, err)
	require.Contains(t, out, "added Mona")

	people, err := roster.Load(filepath.Join(dir, "people.csv"))
	require.NoError(t, err)
	require.Equal(t, []preference.Person{"Aleksei", "Brigi", "Imran", "Jens", "Mona"}, people)

	_, err = execute(t, "add-person", "Mona", "-c", path)
	require.ErrorIs(t, err, roster.ErrDuplicateName)
}

func TestSampleThenRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trial.yaml")

	out, err := execute(t, "sample", "-c", path, "-n", "12", "--tables", "3", "--capacity", "5", "--seed", "4")
	require.NoError(t, err)
	require.Contains(t, out, "wrote 12 people")

	people, err := roster.Load(filepath.Join(filepath.Dir(path), "people.csv"))
	require.NoError(t, err)
	require.Len(t, people, 12)

	out, err = execute(t, "run", "-c", path, "--seed", "1", "--auto-grow")
	require.NoError(t, err)
	require.Contains(t, out, "people 12")
}
