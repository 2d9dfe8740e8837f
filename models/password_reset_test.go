package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateResetToken(t *testing.T) {
	token, err := GenerateResetToken()
	require.NoError(t, err)
	assert.Len(t, token, 64) // 32 字节 hex 编码

	// 两次生成不应相同
	token2, err := GenerateResetToken()
	require.NoError(t, err)
	assert.NotEqual(t, token, token2)
}

func TestPasswordReset_IsValid(t *testing.T) {
	// 未使用且未过期
	p := PasswordReset{ExpiresAt: time.Now().Add(30 * time.Minute)}
	assert.True(t, p.IsValid())
	assert.False(t, p.IsExpired())

	// 已过期
	p.ExpiresAt = time.Now().Add(-time.Minute)
	assert.True(t, p.IsExpired())
	assert.False(t, p.IsValid())

	// 已使用
	p = PasswordReset{ExpiresAt: time.Now().Add(30 * time.Minute), Used: true}
	assert.False(t, p.IsValid())
}
