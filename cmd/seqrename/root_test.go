package main

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"seqrename/internal/config"
	"seqrename/internal/errors"
	"seqrename/internal/log"
	"seqrename/internal/rename"
	"seqrename/pkg/testutils"
	"seqrename/pkg/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runCommand executes the root command with an isolated HOME and returns stdout and stderr.
func runCommand(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Cleanup(func() {
		log.Configure()
		log.SetDebug(false)
	})

	var stdout, stderr bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRenameDirectoryArgument(t *testing.T) {
	dir := testutils.TempDirWithFiles(t, "b.png", "a.txt", "c.jpg")

	stdout, stderr, err := runCommand(t, dir)
	require.NoError(t, err)

	assert.Equal(t, "a.txt\nb.png\nc.jpg\n", stdout)
	assert.Empty(t, stderr, "nothing is logged without --debug")
	assert.Equal(t, []string{"0.jpg", "1.jpg", "2.jpg"}, testutils.ListNames(t, dir))
}

func TestFolderFlagOverridesArgument(t *testing.T) {
	flagDir := testutils.TempDirWithFiles(t, "x.png")
	argDir := testutils.TempDirWithFiles(t, "y.png")

	_, _, err := runCommand(t, "--folder", flagDir, argDir)
	require.NoError(t, err)

	assert.Equal(t, []string{"0.jpg"}, testutils.ListNames(t, flagDir))
	assert.Equal(t, []string{"y.png"}, testutils.ListNames(t, argDir))

	_, _, err = runCommand(t, "-f", argDir)
	require.NoError(t, err)
	assert.Equal(t, []string{"0.jpg"}, testutils.ListNames(t, argDir))
}

func TestConfigFileSettings(t *testing.T) {
	dir := testutils.TempDirWithFiles(t, "b", "a", ".hidden")
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	cfgYAML := "directories:\n  default: " + dir + "\nsettings:\n  extension: \".png\"\n  ignore: [\".*\"]\n"
	require.NoError(t, os.WriteFile(cfgPath, []byte(cfgYAML), 0644))

	stdout, _, err := runCommand(t, "--config", cfgPath)
	require.NoError(t, err)

	assert.Equal(t, "a\nb\n", stdout)
	assert.Equal(t, []string{".hidden", "0.png", "1.png"}, testutils.ListNames(t, dir))
}

func TestMissingConfigFile(t *testing.T) {
	dir := testutils.TempDirWithFiles(t, "a")
	cfgPath := filepath.Join(t.TempDir(), "absent.yaml")

	stdout, _, err := runCommand(t, "--config", cfgPath, dir)
	require.Error(t, err)
	assert.True(t, errors.IsConfigNotFound(err))
	assert.Contains(t, err.Error(), cfgPath)
	assert.Empty(t, stdout)
	assert.Equal(t, []string{"a"}, testutils.ListNames(t, dir), "nothing is renamed without a config")
}

func TestExtensionFlag(t *testing.T) {
	dir := testutils.TempDirWithFiles(t, "a", "b")

	_, _, err := runCommand(t, "--extension", ".tif", dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"0.tif", "1.tif"}, testutils.ListNames(t, dir))

	dir = testutils.TempDirWithFiles(t, "a")
	_, _, err = runCommand(t, "--extension", "tif", dir)
	require.Error(t, err)
	assert.True(t, errors.IsInvalidConfig(err))
	assert.Equal(t, []string{"a"}, testutils.ListNames(t, dir), "invalid extension must not rename anything")
}

func TestMissingDirectory(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope")

	stdout, _, err := runCommand(t, missing)
	require.Error(t, err)
	assert.True(t, errors.IsFileNotFound(err))
	assert.Empty(t, stdout)
}

func TestCollisionIsReported(t *testing.T) {
	dir := testutils.TempDirWithFiles(t, "0a", "0b", "1.jpg")

	stdout, _, err := runCommand(t, dir)
	require.Error(t, err)
	assert.True(t, errors.IsTargetCollision(err))
	assert.Equal(t, "0a\n0b\n", stdout)
	assert.Equal(t, []string{"0.jpg", "0b", "1.jpg"}, testutils.ListNames(t, dir))
}

func TestDebugLogging(t *testing.T) {
	dir := testutils.TempDirWithFiles(t, "a")

	_, stderr, err := runCommand(t, "--debug", dir)
	require.NoError(t, err)
	assert.Contains(t, stderr, "DEBUG: Starting rename pass")
	assert.Contains(t, stderr, "from=a")
	assert.Contains(t, stderr, "to=0.jpg")

	dir = testutils.TempDirWithFiles(t, "a")
	_, stderr, err = runCommand(t, "--debug", "--log-json", dir)
	require.NoError(t, err)
	first := strings.SplitN(strings.TrimSpace(stderr), "\n", 2)[0]
	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(first), &entry))
	assert.Equal(t, "Starting rename pass", entry["message"])
	assert.Equal(t, dir, entry["directory"])
	assert.Regexp(t, `^root\.go:\d+$`, entry["caller"])
}

func TestDefaultDirectoryFromConfig(t *testing.T) {
	var got string
	rename.SetRenamerFactory(func(cfg *config.Config) (rename.Renamer, error) {
		return &fakeRenamer{onRename: func(dir string) { got = dir }}, nil
	})
	defer rename.ResetRenamerFactory()

	_, _, err := runCommand(t)
	require.NoError(t, err)
	assert.Equal(t, ".", got)
}

func TestTooManyArguments(t *testing.T) {
	_, _, err := runCommand(t, "a", "b")
	assert.Error(t, err)
}

func TestVersionFlag(t *testing.T) {
	stdout, _, err := runCommand(t, "--version")
	require.NoError(t, err)
	assert.Contains(t, stdout, "seqrename version dev")
}

type fakeRenamer struct {
	onRename func(dir string)
}

func (f *fakeRenamer) SetOutput(io.Writer) {}

func (f *fakeRenamer) ListEntries(string) ([]string, error) {
	return nil, nil
}

func (f *fakeRenamer) RenameAll(dir string) ([]types.RenameResult, error) {
	f.onRename(dir)
	return nil, nil
}
