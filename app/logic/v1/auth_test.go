package v1_test

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reportrack/reportrack/app/core"
	v1 "github.com/reportrack/reportrack/app/logic/v1"
)

func NewCore(t *testing.T) *core.Core {
	if os.Getenv("TEST_CONFIG_PATH") == "" {
		t.Skip("TEST_CONFIG_PATH not set")
	}
	return core.MustSetupCore(core.MustLoadBaseConfig(os.Getenv("TEST_CONFIG_PATH")))
}

func Test_RegisterAndLogin(t *testing.T) {
	appCore := NewCore(t)
	logic := v1.NewAuthLogic(context.Background(), appCore)

	email := fmt.Sprintf("tester+%d@example.com", time.Now().UnixNano())

	userID, err := logic.Register("tester", email, "secret123", "2000-01-01")
	require.NoError(t, err)
	require.NotEmpty(t, userID)

	// 重复注册同一邮箱会失败
	_, err = logic.Register("tester", email, "secret123", "2000-01-01")
	assert.Error(t, err)

	result, err := logic.Login(email, "secret123")
	require.NoError(t, err)
	assert.NotEmpty(t, result.Token)
	assert.Equal(t, userID, result.User.ID)

	_, err = logic.Login(email, "wrong-password")
	assert.Error(t, err)
}

func Test_RegisterShortPassword(t *testing.T) {
	appCore := NewCore(t)
	logic := v1.NewAuthLogic(context.Background(), appCore)

	_, err := logic.Register("tester", "short@example.com", "abc", "")
	assert.Error(t, err)
}

func Test_ResetPasswordUnknownEmail(t *testing.T) {
	appCore := NewCore(t)
	logic := v1.NewAuthLogic(context.Background(), appCore)

	// 未注册邮箱不报错，也不发生任何变更
	err := logic.ResetPassword(fmt.Sprintf("nobody+%d@example.com", time.Now().UnixNano()))
	assert.NoError(t, err)
}
