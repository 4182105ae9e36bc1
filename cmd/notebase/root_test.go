package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"notebase/internal/export"
)

// cli runs one invocation against dbPath and returns its stdout.
func cli(t *testing.T, dbPath string, args ...string) (string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	err := run(context.Background(), append([]string{"--db", dbPath}, args...), &stdout, &stderr)
	return stdout.String(), err
}

func mustCLI(t *testing.T, dbPath string, args ...string) string {
	t.Helper()

	out, err := cli(t, dbPath, args...)
	require.NoError(t, err, "notebase %s", strings.Join(args, " "))
	return out
}

func TestKBCommands(t *testing.T) {
	db := filepath.Join(t.TempDir(), "data", "notes.db")

	out := mustCLI(t, db, "kb", "add", "Math")
	assert.Contains(t, out, `Created knowledge base "Math"`)

	_, err := cli(t, db, "kb", "add", "Math")
	assert.ErrorContains(t, err, "already exists")

	_, err = cli(t, db, "kb", "add", "a/b")
	assert.ErrorContains(t, err, "invalid name")

	mustCLI(t, db, "kb", "add", "Art")
	out = mustCLI(t, db, "kb", "list")
	assert.Equal(t, "1\tMath\n2\tArt\n", out)

	_, err = cli(t, db, "kb", "rename", "Math", "Art")
	assert.ErrorContains(t, err, `"Art" already exists`)

	out = mustCLI(t, db, "kb", "rename", "Math", "Geometry")
	assert.Contains(t, out, `Renamed "Math" to "Geometry"`)

	out = mustCLI(t, db, "kb", "show", "Geometry")
	assert.Contains(t, out, "ID:    1")
	assert.Contains(t, out, "Notes: 0")

	_, err = cli(t, db, "kb", "show", "Math")
	assert.ErrorContains(t, err, "not found")

	out = mustCLI(t, db, "kb", "rm", "Art")
	assert.Contains(t, out, `Deleted knowledge base "Art"`)
	out = mustCLI(t, db, "kb", "rm", "Art")
	assert.Contains(t, out, "nothing deleted")
}

func TestNoteCommands(t *testing.T) {
	dir := t.TempDir()
	db := filepath.Join(dir, "notes.db")

	mustCLI(t, db, "kb", "add", "Math")
	mustCLI(t, db, "note", "add", "Math", "Triangle", "--content", "three sides")

	_, err := cli(t, db, "note", "add", "Math", "Triangle")
	assert.ErrorContains(t, err, "already exists")

	contentFile := filepath.Join(dir, "circle.md")
	require.NoError(t, os.WriteFile(contentFile, []byte("# Circle\n\nround"), 0644))
	mustCLI(t, db, "note", "add", "Math", "Circle", "--file", contentFile)

	_, err = cli(t, db, "note", "add", "Math", "Square", "--content", "x", "--file", contentFile)
	assert.Error(t, err)

	_, err = cli(t, db, "note", "add", "a/b", "Square", "--content", "x")
	assert.ErrorContains(t, err, "invalid knowledge base")
	assert.Equal(t, "false\n", mustCLI(t, db, "note", "exists", "Square"))

	out := mustCLI(t, db, "note", "list", "Math")
	assert.Equal(t, "1\tTriangle\n2\tCircle\n", out)

	out = mustCLI(t, db, "note", "show", "Math", "Circle")
	assert.Equal(t, "# Circle\n\nround\n", out)

	_, err = cli(t, db, "note", "edit", "Math", "Triangle")
	assert.Error(t, err, "edit requires --content or --file")

	mustCLI(t, db, "note", "edit", "Math", "Triangle", "--content", "three angles")
	out = mustCLI(t, db, "note", "show", "Math", "Triangle")
	assert.Equal(t, "three angles\n", out)

	_, err = cli(t, db, "note", "edit", "Art", "Triangle", "--content", "x")
	assert.ErrorContains(t, err, "not found")

	assert.Equal(t, "true\n", mustCLI(t, db, "note", "exists", "Triangle"))
	assert.Equal(t, "false\n", mustCLI(t, db, "note", "exists", "Triangle", "--kb", "Art"))
	assert.Equal(t, "true\n", mustCLI(t, db, "note", "exists", "Triangle", "--kb", "Math"))

	out = mustCLI(t, db, "note", "rm", "Math", "Triangle")
	assert.Contains(t, out, `Deleted note "Triangle"`)
	assert.Equal(t, "false\n", mustCLI(t, db, "note", "exists", "Triangle"))

	out = mustCLI(t, db, "note", "list", "Nowhere", "--json")
	assert.Equal(t, "[]\n", out)
}

func TestImportAndExport(t *testing.T) {
	dir := t.TempDir()
	db := filepath.Join(dir, "notes.db")
	src := filepath.Join(dir, "vault")
	require.NoError(t, os.MkdirAll(filepath.Join(src, ".obsidian"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(src, "triangle.md"), []byte("# Triangle\n\nthree sides"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(src, "circle.md"), []byte("round"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(src, ".obsidian", "config.md"), []byte("# Hidden"), 0644))

	out := mustCLI(t, db, "import", "Math", src)
	assert.Equal(t, "Files: 2  Imported: 2  Skipped: 0  Errors: 0\n", out)

	out = mustCLI(t, db, "import", "Math", src)
	assert.Equal(t, "Files: 2  Imported: 0  Skipped: 2  Errors: 0\n", out)

	out = mustCLI(t, db, "import", "Other", src, "--exclude", "triangle.md")
	assert.Equal(t, "Files: 1  Imported: 1  Skipped: 0  Errors: 0\n", out)

	out = mustCLI(t, db, "kb", "export", "Math")
	var doc export.Document
	require.NoError(t, yaml.Unmarshal([]byte(out), &doc))
	assert.Equal(t, "Math", doc.KnowledgeBase)
	require.Len(t, doc.Notes, 2)
	titles := []string{doc.Notes[0].Title, doc.Notes[1].Title}
	assert.ElementsMatch(t, []string{"Triangle", "Circle"}, titles)

	exportFile := filepath.Join(dir, "math.yaml")
	out = mustCLI(t, db, "kb", "export", "Math", "-o", exportFile)
	assert.Contains(t, out, "Exported 2 notes")
	_, err := os.Stat(exportFile)
	assert.NoError(t, err)

	_, err = cli(t, db, "kb", "export", "Art")
	assert.ErrorIs(t, err, export.ErrKnowledgeBaseNotFound)
}

func TestEphemeralFlag(t *testing.T) {
	db := filepath.Join(t.TempDir(), "notes.db")

	mustCLI(t, db, "kb", "add", "Math")
	out := mustCLI(t, db, "--ephemeral", "kb", "list")
	assert.Empty(t, out)
}
