package service

import (
	"testing"

	"cashflow/config"

	"github.com/stretchr/testify/assert"
)

func newTestEmailService() *EmailService {
	return NewEmailService(&config.EmailConfig{})
}

func TestGenerateResetEmailBody(t *testing.T) {
	s := newTestEmailService()
	body := s.generateResetEmailBody("张三", "https://example.com/reset?token=abc")
	assert.Contains(t, body, "张三")
	assert.Contains(t, body, "https://example.com/reset?token=abc")
	assert.Contains(t, body, "重置密码")
	assert.Contains(t, body, "30 分钟")
}

func TestSendPasswordResetEmailDisabled(t *testing.T) {
	s := newTestEmailService()
	err := s.SendPasswordResetEmail("user@example.com", "张三", "https://example.com/reset")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "邮件服务未启用")
}

func TestSendTestEmailDisabled(t *testing.T) {
	s := newTestEmailService()
	err := s.SendTestEmail("user@example.com")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "邮件服务未启用")
}
