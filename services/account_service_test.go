package services

import (
	"testing"

	"InnerVoiceGo/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAccountThenAuthenticate(t *testing.T) {
	svc := NewAccountService(newTestDB(t))

	account, err := svc.CreateAccount("alice", "pw1")
	require.NoError(t, err)
	assert.Equal(t, "alice", account.Username)
	assert.NotEmpty(t, account.ID)

	got, err := svc.Authenticate("alice", "pw1")
	require.NoError(t, err)
	assert.Equal(t, account.ID, got.ID)
	assert.NotNil(t, got.LastLogin)
}

func TestAuthenticateFailures(t *testing.T) {
	svc := NewAccountService(newTestDB(t))

	_, err := svc.CreateAccount("alice", "pw1")
	require.NoError(t, err)

	tests := []struct {
		name     string
		username string
		password string
	}{
		{name: "wrong password", username: "alice", password: "wrong"},
		{name: "unknown user", username: "bob", password: "pw1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// 两种失败必须无法区分
			_, err := svc.Authenticate(tt.username, tt.password)
			assert.ErrorIs(t, err, ErrInvalidCredentials)
		})
	}
}

func TestCreateAccountDuplicate(t *testing.T) {
	db := newTestDB(t)
	svc := NewAccountService(db)

	_, err := svc.CreateAccount("alice", "pw1")
	require.NoError(t, err)

	_, err = svc.CreateAccount("alice", "other")
	assert.ErrorIs(t, err, ErrDuplicateUser)

	// 重复注册后库里仍只有一条记录
	var count int64
	require.NoError(t, db.Model(&models.Account{}).Where("username = ?", "alice").Count(&count).Error)
	assert.EqualValues(t, 1, count)
}
