package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	findfolder "github.com/PistonDevelopers/find-folder"
	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

// execute runs the root command with args and returns stdout and stderr.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	cmd := NewRootCommand()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

// project creates a small tree and returns its root.
//
//	root/assets
//	root/game/build/debug
//	root/game/src/shaders
func project(t *testing.T) string {
	t.Helper()
	root, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)

	for _, d := range []string{"assets", "game/build/debug", "game/src/shaders"} {
		require.NoError(t, os.MkdirAll(filepath.Join(root, filepath.FromSlash(d)), 0755))
	}
	return root
}

func noConfig(t *testing.T) string {
	return filepath.Join(t.TempDir(), "missing.yaml")
}

func TestRootCommand_Help(t *testing.T) {
	stdout, _, err := execute(t, "--help")
	require.NoError(t, err)

	assert.Contains(t, stdout, "find-folder")
	assert.Contains(t, stdout, "kids-then-parents")
}

func TestRootCommand_HasSubcommands(t *testing.T) {
	cmd := NewRootCommand()

	names := make(map[string]bool)
	for _, sub := range cmd.Commands() {
		names[sub.Name()] = true
	}
	assert.True(t, names["find"])
	assert.True(t, names["report"])
}

func TestFind_ParentsFromBuildDirectory(t *testing.T) {
	root := project(t)
	from := filepath.Join(root, "game", "build", "debug")

	stdout, _, err := execute(t, "--config", noConfig(t), "find", "assets", "--search", "parents:3", "--from", from)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "assets")+"\n", stdout)
}

func TestFind_UsesWorkingDirectory(t *testing.T) {
	root := project(t)
	chdir(t, root)

	stdout, _, err := execute(t, "--config", noConfig(t), "find", "shaders", "-s", "kids:2")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "game", "src", "shaders"), strings.TrimSpace(stdout))
}

func TestFind_NotFound(t *testing.T) {
	root := project(t)

	_, _, err := execute(t, "--config", noConfig(t), "find", "shaders", "--search", "kids:1", "--from", root)
	require.Error(t, err)
	assert.ErrorIs(t, err, findfolder.ErrNotFound)
}

func TestFind_InvalidSearch(t *testing.T) {
	_, _, err := execute(t, "--config", noConfig(t), "find", "assets", "--search", "up:3")
	assert.ErrorIs(t, err, findfolder.ErrInvalidSearch)
}

func TestFind_IOError(t *testing.T) {
	root := project(t)

	_, _, err := execute(t, "--config", noConfig(t), "find", "assets", "--from", filepath.Join(root, "gone"))
	require.Error(t, err)
	assert.True(t, findfolder.IsIOError(err))
}

func TestFind_JSON(t *testing.T) {
	root := project(t)

	stdout, _, err := execute(t, "--config", noConfig(t), "find", "debug", "--search", "kids:2", "--from", root, "--json")
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(stdout), &doc))
	assert.Equal(t, true, doc["found"])
	assert.Equal(t, filepath.Join(root, "game", "build", "debug"), doc["path"])
	assert.Equal(t, "kids:2", doc["search"])
}

func TestFind_JSONNotFound(t *testing.T) {
	root := project(t)

	stdout, _, err := execute(t, "--config", noConfig(t), "find", "debug", "--search", "kids:0", "--from", root, "--json")
	require.Error(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(stdout), &doc))
	assert.Equal(t, false, doc["found"])
	assert.Equal(t, "not_found", doc["error_kind"])
}

func TestFind_ConfigFolderSearch(t *testing.T) {
	root := project(t)
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	configContent := "search: parents:0\nfolders:\n  - name: shaders\n    search: kids:2\n"
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0644))

	stdout, _, err := execute(t, "--config", configPath, "find", "shaders", "--from", root)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "game", "src", "shaders")+"\n", stdout)

	// Default search from the config does not look below root
	_, _, err = execute(t, "--config", configPath, "find", "debug", "--from", root)
	assert.ErrorIs(t, err, findfolder.ErrNotFound)
}

func TestFind_TraceLogging(t *testing.T) {
	root := project(t)

	_, stderr, err := execute(t, "--config", noConfig(t), "--log-level", "trace", "find", "src", "--search", "kids:1", "--from", root)
	require.NoError(t, err)
	assert.Contains(t, stderr, "[TRACE] probe "+root)
	assert.Contains(t, stderr, "[INFO] found "+filepath.Join(root, "game", "src"))
}

func TestFind_Progress(t *testing.T) {
	root := project(t)

	_, stderr, err := execute(t, "--config", noConfig(t), "find", "assets", "--search", "parents:0", "--from", root, "--progress")
	require.NoError(t, err)
	assert.Contains(t, stderr, "probe "+root+"\n")
	assert.Contains(t, stderr, "probed 1 directories")
}

func TestReport_AllStrategies(t *testing.T) {
	root := project(t)
	from := filepath.Join(root, "game")

	stdout, _, err := execute(t, "--config", noConfig(t), "report", "assets", "shaders", "--depth", "1", "--from", from)
	require.NoError(t, err)

	assert.Contains(t, stdout, "Searching from "+from)
	for _, kind := range []string{"parents:1", "kids:1", "both:1,1", "parents-then-kids:1,1", "kids-then-parents:1,1"} {
		assert.Contains(t, stdout, kind)
	}
	// assets is above (parents-based strategies find it), shaders below (kids-based do)
	assert.Contains(t, stdout, "Summary: 8 found, 2 not found, 0 failed")
}

func TestReport_NothingToSearch(t *testing.T) {
	_, _, err := execute(t, "--config", noConfig(t), "report")
	assert.Error(t, err)
}

func TestReport_IOFailuresReturnError(t *testing.T) {
	root := project(t)

	stdout, stderr, err := execute(t, "--config", noConfig(t), "report", "assets", "--from", filepath.Join(root, "gone"))
	require.Error(t, err)
	assert.Contains(t, stdout, "0 found, 0 not found, 5 failed")
	assert.Equal(t, 5, strings.Count(stderr, "[ERROR]"))
	assert.Contains(t, stderr, "[ERROR] kids:3 assets: ")
}

func TestReport_RepeatedConfigFolderKeepsOwnSearch(t *testing.T) {
	root := project(t)
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	configContent := `search: both:1,1
folders:
  - name: shaders
    search: parents:0
  - name: shaders
    search: kids:2
  - name: shaders
`
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0644))

	stdout, _, err := execute(t, "--config", configPath, "report", "--from", root)
	require.NoError(t, err)

	assert.Contains(t, stdout, "- parents:0")
	assert.Contains(t, stdout, "kids:2")
	assert.Contains(t, stdout, "both:1,1")
	// parents:0 and both:1,1 stay at or above root; kids:2 reaches game/src/shaders
	assert.Contains(t, stdout, "Summary: 1 found, 2 not found, 0 failed")
}
