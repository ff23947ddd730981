package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogMoodRejectsUnknownLabel(t *testing.T) {
	svc := NewMoodService(newTestDB(t))

	_, err := svc.LogMood("alice", "Ecstatic", time.Now())
	assert.Error(t, err)

	entries, err := svc.ListMoods("alice")
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestListMoodsNewestFirst(t *testing.T) {
	svc := NewMoodService(newTestDB(t))

	t1 := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	t2 := t1.Add(time.Hour)
	t3 := t1.Add(2 * time.Hour)

	_, err := svc.LogMood("alice", "Happy", t2)
	require.NoError(t, err)
	_, err = svc.LogMood("alice", "Sad", t1)
	require.NoError(t, err)
	_, err = svc.LogMood("alice", "Calm", t3)
	require.NoError(t, err)

	// 其他用户的记录不掺进来
	_, err = svc.LogMood("bob", "Angry", t3)
	require.NoError(t, err)

	entries, err := svc.ListMoods("alice")
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, "Calm", entries[0].Mood)
	assert.Equal(t, "Happy", entries[1].Mood)
	assert.Equal(t, "Sad", entries[2].Mood)
}

func TestDeleteMoodByIdentity(t *testing.T) {
	svc := NewMoodService(newTestDB(t))

	// 两条展示文本完全相同的记录
	ts := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	first, err := svc.LogMood("alice", "Happy", ts)
	require.NoError(t, err)
	second, err := svc.LogMood("alice", "Happy", ts)
	require.NoError(t, err)
	require.NotEqual(t, first.ID, second.ID)

	require.NoError(t, svc.DeleteMood("alice", first.ID))

	entries, err := svc.ListMoods("alice")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, second.ID, entries[0].ID)
}

func TestDeleteMoodScopedToOwner(t *testing.T) {
	svc := NewMoodService(newTestDB(t))

	entry, err := svc.LogMood("alice", "Happy", time.Now())
	require.NoError(t, err)

	// 其他用户拿着同一个ID删不掉
	assert.ErrorIs(t, svc.DeleteMood("bob", entry.ID), ErrMoodNotFound)
	assert.ErrorIs(t, svc.DeleteMood("alice", "no-such-id"), ErrMoodNotFound)

	entries, err := svc.ListMoods("alice")
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

// 注册、登录、记录、删除的完整流程
func TestSignupLoginMoodScenario(t *testing.T) {
	db := newTestDB(t)
	accounts := NewAccountService(db)
	moods := NewMoodService(db)

	_, err := accounts.CreateAccount("alice", "pw1")
	require.NoError(t, err)

	_, err = accounts.Authenticate("alice", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	account, err := accounts.Authenticate("alice", "pw1")
	require.NoError(t, err)
	require.Equal(t, "alice", account.Username)

	t1 := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	t2 := t1.Add(time.Minute)

	e1, err := moods.LogMood("alice", "Happy", t1)
	require.NoError(t, err)

	entries, err := moods.ListMoods("alice")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Happy", entries[0].Mood)

	_, err = moods.LogMood("alice", "Calm", t2)
	require.NoError(t, err)

	entries, err = moods.ListMoods("alice")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "Calm", entries[0].Mood)
	assert.Equal(t, "Happy", entries[1].Mood)

	require.NoError(t, moods.DeleteMood("alice", e1.ID))

	entries, err = moods.ListMoods("alice")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Calm", entries[0].Mood)
}
