package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateEntryValidation(t *testing.T) {
	svc := NewJournalService(newTestDB(t))

	tests := []struct {
		name    string
		title   string
		content string
	}{
		{name: "empty title", title: "", content: "some thoughts"},
		{name: "empty content", title: "Today", content: ""},
		{name: "whitespace only", title: "  ", content: "\t"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateEntry("alice", tt.title, tt.content, time.Now())
			assert.ErrorIs(t, err, ErrEmptyJournalFields)
		})
	}

	// 校验失败不落库
	entries, err := svc.ListEntries("alice")
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestListEntriesNewestFirst(t *testing.T) {
	svc := NewJournalService(newTestDB(t))

	t1 := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	t2 := t1.Add(time.Hour)

	_, err := svc.CreateEntry("alice", "older", "first entry", t1)
	require.NoError(t, err)
	_, err = svc.CreateEntry("alice", "newer", "second entry", t2)
	require.NoError(t, err)

	entries, err := svc.ListEntries("alice")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "newer", entries[0].Title)
	assert.Equal(t, "older", entries[1].Title)
}

func TestUpdateContentIdempotent(t *testing.T) {
	svc := NewJournalService(newTestDB(t))

	created, err := svc.CreateEntry("alice", "Today", "first draft", time.Now())
	require.NoError(t, err)

	// 同样的内容改两次，结果一致，标题和日期不动
	for i := 0; i < 2; i++ {
		updated, err := svc.UpdateContent("alice", created.ID, "final text")
		require.NoError(t, err)
		assert.Equal(t, "final text", updated.Content)
		assert.Equal(t, created.Title, updated.Title)
		assert.True(t, created.Date.Equal(updated.Date))
	}
}

func TestUpdateContentMissingEntry(t *testing.T) {
	svc := NewJournalService(newTestDB(t))

	created, err := svc.CreateEntry("alice", "Today", "text", time.Now())
	require.NoError(t, err)

	_, err = svc.UpdateContent("alice", "no-such-id", "text")
	assert.ErrorIs(t, err, ErrJournalNotFound)

	// 其他用户改不了别人的日记
	_, err = svc.UpdateContent("bob", created.ID, "hijacked")
	assert.ErrorIs(t, err, ErrJournalNotFound)
}

func TestDeleteEntry(t *testing.T) {
	svc := NewJournalService(newTestDB(t))

	created, err := svc.CreateEntry("alice", "Today", "text", time.Now())
	require.NoError(t, err)

	assert.ErrorIs(t, svc.DeleteEntry("bob", created.ID), ErrJournalNotFound)
	require.NoError(t, svc.DeleteEntry("alice", created.ID))
	assert.ErrorIs(t, svc.DeleteEntry("alice", created.ID), ErrJournalNotFound)
}
