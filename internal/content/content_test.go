package content

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func setupStore(t *testing.T) *Store {
	t.Helper()
	dir := t.TempDir()
	events := writeFile(t, dir, "events.json", `[
		{"id": "1", "authorName": "Hai Bà Trưng", "authorHandle": "@haibatrung",
		 "content": "Khởi nghĩa!", "timestamp": "Năm 40", "topic": "khang-chien", "type": "post"},
		{"id": "2", "authorName": "Ngô Quyền", "authorHandle": "@ngoquyen",
		 "content": "Bạch Đằng Giang", "timestamp": "Năm 938", "topic": "khang-chien", "type": "post"}
	]`)
	posts := writeFile(t, dir, "posts.json", `[
		{"id": "p-1", "eventId": "1", "title": "Khởi nghĩa Hai Bà Trưng"},
		{"id": "p-dangling", "eventId": "404"}
	]`)
	prompt := writeFile(t, dir, "system_prompt.txt", "You explain Vietnamese history.\n")
	return NewStore(events, posts, prompt)
}

func TestStore_Events(t *testing.T) {
	t.Parallel()
	store := setupStore(t)

	events, err := store.Events()
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, "Hai Bà Trưng", events[0].AuthorName)
}

func TestStore_EventByID(t *testing.T) {
	t.Parallel()
	store := setupStore(t)

	event, err := store.EventByID("2")
	require.NoError(t, err)
	require.NotNil(t, event)
	assert.Equal(t, "@ngoquyen", event.AuthorHandle)

	event, err = store.EventByID("missing")
	require.NoError(t, err)
	assert.Nil(t, event)
}

func TestStore_PostByID(t *testing.T) {
	t.Parallel()
	store := setupStore(t)

	t.Run("joined with event", func(t *testing.T) {
		detail, err := store.PostByID("p-1")
		require.NoError(t, err)
		require.NotNil(t, detail)
		require.NotNil(t, detail.Event)
		assert.Equal(t, "1", detail.Event.ID)
	})

	t.Run("dangling event id yields nil event", func(t *testing.T) {
		detail, err := store.PostByID("p-dangling")
		require.NoError(t, err)
		require.NotNil(t, detail)
		assert.Nil(t, detail.Event)
	})

	t.Run("unknown post", func(t *testing.T) {
		detail, err := store.PostByID("nope")
		require.NoError(t, err)
		assert.Nil(t, detail)
	})
}

func TestStore_SystemPrompt(t *testing.T) {
	t.Parallel()
	store := setupStore(t)

	prompt, err := store.SystemPrompt()
	require.NoError(t, err)
	assert.Equal(t, "You explain Vietnamese history.", prompt)
}

func TestStore_MissingFiles(t *testing.T) {
	t.Parallel()
	store := NewStore("no-such.json", "no-such.json", "no-such.txt")

	_, err := store.Events()
	assert.Error(t, err)
	_, err = store.PostByID("p-1")
	assert.Error(t, err)
	_, err = store.SystemPrompt()
	assert.Error(t, err)
}
