package app_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/notes/pkg/adapters/fs"
	"github.com/aretw0/notes/pkg/app"
	"github.com/aretw0/notes/pkg/core"
)

// session opens a fresh App over path, as a single CLI invocation would.
func session(path string, opts ...app.Option) (*app.App, *bytes.Buffer) {
	var out bytes.Buffer
	opts = append([]app.Option{app.WithOutput(&out)}, opts...)
	return app.New(fs.Open(path), opts...), &out
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestScenarios(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.txt")

	// 1. add hello world
	a, out := session(path)
	require.NoError(t, a.Add("hello world"))
	assert.Equal(t, "added new note: \"hello world\"\n", out.String())
	assert.Equal(t, "0|hello world\n", readFile(t, path))

	// 2. add second
	a, _ = session(path)
	require.NoError(t, a.Add("second"))
	assert.Equal(t, "0|hello world\n1|second\n", readFile(t, path))

	// 3. get 1
	a, out = session(path)
	require.NoError(t, a.Get(1))
	assert.Equal(t, "\"second\"\n", out.String())

	// 4. delete 0
	a, out = session(path)
	require.NoError(t, a.Delete(0))
	assert.Equal(t, "removed note 0: hello world\n", out.String())
	assert.Equal(t, "1|second\n", readFile(t, path))

	// 5. update 1 changed
	a, out = session(path)
	require.NoError(t, a.Update(1, "changed"))
	assert.Equal(t, "updated note 1 from 'second' to 'changed'\n", out.String())
	assert.Equal(t, "1|changed\n", readFile(t, path))
}

func TestList(t *testing.T) {
	t.Run("Tolerates Garbage", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "notes.txt")
		require.NoError(t, os.WriteFile(path, []byte("0|keep\nnot-a-note\n\n2|also\n"), 0644))

		a, out := session(path)
		require.NoError(t, a.List())
		assert.Equal(t, "0: keep\n2: also\n", out.String())
	})

	t.Run("Empty", func(t *testing.T) {
		a, out := session(filepath.Join(t.TempDir(), "notes.txt"))
		require.NoError(t, a.List())
		assert.Equal(t, "nothing to show.\n", out.String())
	})

	t.Run("JSON", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "notes.txt")
		require.NoError(t, os.WriteFile(path, []byte("0|a\n"), 0644))

		a, out := session(path, app.WithFormat(app.FormatJSON))
		require.NoError(t, a.List())
		assert.JSONEq(t, `[{"id":0,"text":"a"}]`, out.String())
	})

	t.Run("YAML", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "notes.txt")
		require.NoError(t, os.WriteFile(path, []byte("3|b\n"), 0644))

		a, out := session(path, app.WithFormat(app.FormatYAML))
		require.NoError(t, a.Get(3))
		assert.YAMLEq(t, "id: 3\ntext: b\n", out.String())
	})
}

func TestGet_MissPrintsNothing(t *testing.T) {
	a, out := session(filepath.Join(t.TempDir(), "notes.txt"))

	require.NoError(t, a.Get(5))
	assert.Empty(t, out.String())
}

func TestErrorsPropagate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("0|a\n"), 0644))

	a, out := session(path)
	assert.ErrorIs(t, a.Delete(7), core.ErrUnknownID)
	assert.ErrorIs(t, a.Update(7, "x"), core.ErrUnknownID)
	assert.ErrorIs(t, a.Add("x|y"), core.ErrBadArgument)
	assert.Empty(t, out.String())

	empty, _ := session(filepath.Join(t.TempDir(), "notes.txt"))
	assert.ErrorIs(t, empty.Delete(0), core.ErrEmptyStore)
}

type failingStore struct {
	core.Store
}

func (failingStore) Get(int) (core.Note, error) {
	return core.Note{}, core.WrapIO("get", errors.New("boom"))
}

func TestGet_PropagatesNonMissErrors(t *testing.T) {
	var out bytes.Buffer
	a := app.New(failingStore{}, app.WithOutput(&out))

	assert.ErrorIs(t, a.Get(0), core.ErrIO)
	assert.Empty(t, out.String())
}
