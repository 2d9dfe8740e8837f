package api

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"cashflow/config"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordResetHandler_RequestReset_UnknownEmail(t *testing.T) {
	mock, db, cleanup := setupMockDB(t)
	defer cleanup()

	// 邮箱未注册也返回成功，不暴露账号是否存在
	mock.ExpectQuery("SELECT .* FROM `users`").
		WithArgs("nobody@example.com").
		WillReturnRows(sqlmock.NewRows([]string{}))

	gin.SetMode(gin.TestMode)
	router := gin.New()
	h := NewPasswordResetHandler(&config.Config{}, db)
	router.POST("/password/request-reset", h.RequestPasswordReset)

	body := `{"email":"nobody@example.com"}`
	req := httptest.NewRequest("POST", "/password/request-reset", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "如果该邮箱已注册，您将收到密码重置邮件", resp["message"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPasswordResetHandler_VerifyToken_Expired(t *testing.T) {
	mock, db, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT .* FROM `password_resets`").
		WithArgs("expiredtoken").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "token", "email", "expires_at", "used", "created_at", "deleted_at"}).
			AddRow(1, 1, "expiredtoken", "u@x.com", time.Now().Add(-time.Hour), false, time.Now(), nil))

	gin.SetMode(gin.TestMode)
	router := gin.New()
	h := NewPasswordResetHandler(&config.Config{}, db)
	router.GET("/password/verify-token", h.VerifyResetToken)

	req := httptest.NewRequest("GET", "/password/verify-token?token=expiredtoken", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 400, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "令牌已过期，请重新申请", resp["message"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPasswordResetHandler_VerifyToken_Used(t *testing.T) {
	mock, db, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT .* FROM `password_resets`").
		WithArgs("usedtoken").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "token", "email", "expires_at", "used", "created_at", "deleted_at"}).
			AddRow(1, 1, "usedtoken", "u@x.com", time.Now().Add(time.Hour), true, time.Now(), nil))

	gin.SetMode(gin.TestMode)
	router := gin.New()
	h := NewPasswordResetHandler(&config.Config{}, db)
	router.GET("/password/verify-token", h.VerifyResetToken)

	req := httptest.NewRequest("GET", "/password/verify-token?token=usedtoken", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 400, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "该令牌已被使用", resp["message"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPasswordResetHandler_ResetPassword(t *testing.T) {
	mock, db, cleanup := setupMockDB(t)
	defer cleanup()

	// 查找令牌
	mock.ExpectQuery("SELECT .* FROM `password_resets`").
		WithArgs("validtoken").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "token", "email", "expires_at", "used", "created_at", "deleted_at"}).
			AddRow(1, 5, "validtoken", "u@x.com", time.Now().Add(time.Hour), false, time.Now(), nil))

	// 更新密码
	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `users`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	// 使该用户全部未使用令牌失效
	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `password_resets`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	gin.SetMode(gin.TestMode)
	router := gin.New()
	h := NewPasswordResetHandler(&config.Config{}, db)
	router.POST("/password/reset", h.ResetPassword)

	body := `{"token":"validtoken","new_password":"newpassword"}`
	req := httptest.NewRequest("POST", "/password/reset", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "密码重置成功，请使用新密码登录", resp["message"])
	require.NoError(t, mock.ExpectationsWereMet())
}
