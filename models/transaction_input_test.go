package models

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validInput() TransactionInput {
	return TransactionInput{
		Description:     "超市购物",
		Amount:          decimal.NewFromFloat(42.50),
		TransactionDate: "2024-03-15",
		CategoryID:      3,
	}
}

func TestTransactionInput_Validate(t *testing.T) {
	now := time.Date(2024, 3, 15, 10, 0, 0, 0, time.Local)

	v, errs := validInput().Validate(now)
	require.Empty(t, errs)
	assert.Equal(t, "超市购物", v.Description)
	assert.True(t, v.Amount.Equal(decimal.NewFromFloat(42.50)))
	assert.Equal(t, uint(3), v.CategoryID)
	assert.Equal(t, "2024-03-15", v.TransactionDate.String())
}

func TestTransactionInput_Validate_InvalidCategory(t *testing.T) {
	now := time.Now()

	for _, id := range []int64{0, -1} {
		in := validInput()
		in.CategoryID = id
		_, errs := in.Validate(now)
		require.Len(t, errs, 1)
		assert.Equal(t, "category_id", errs[0].Field)
		assert.Equal(t, ErrKindInvalidCategory, errs[0].Kind)
	}
}

func TestTransactionInput_Validate_Date(t *testing.T) {
	now := time.Date(2024, 3, 15, 10, 0, 0, 0, time.Local)

	// 明天允许（兼容跨时区当天记账）
	in := validInput()
	in.TransactionDate = "2024-03-16"
	_, errs := in.Validate(now)
	assert.Empty(t, errs)

	// 后天拒绝
	in.TransactionDate = "2024-03-17"
	_, errs = in.Validate(now)
	require.Len(t, errs, 1)
	assert.Equal(t, "transaction_date", errs[0].Field)
	assert.Equal(t, ErrKindInvalidDate, errs[0].Kind)

	// 格式错误
	in.TransactionDate = "15/03/2024"
	_, errs = in.Validate(now)
	require.Len(t, errs, 1)
	assert.Equal(t, ErrKindInvalidDate, errs[0].Kind)

	// 空字符串
	in.TransactionDate = ""
	_, errs = in.Validate(now)
	require.Len(t, errs, 1)
	assert.Equal(t, ErrKindInvalidDate, errs[0].Kind)

	// 过去的日期没有限制
	in.TransactionDate = "1999-12-31"
	_, errs = in.Validate(now)
	assert.Empty(t, errs)
}

func TestTransactionInput_Validate_Amount(t *testing.T) {
	now := time.Now()

	// 零金额
	in := validInput()
	in.Amount = decimal.Zero
	_, errs := in.Validate(now)
	require.Len(t, errs, 1)
	assert.Equal(t, "amount", errs[0].Field)
	assert.Equal(t, ErrKindInvalidAmount, errs[0].Kind)

	// 负金额
	in.Amount = decimal.NewFromFloat(-5)
	_, errs = in.Validate(now)
	require.Len(t, errs, 1)
	assert.Equal(t, ErrKindInvalidAmount, errs[0].Kind)

	// 最小正数金额
	in.Amount = decimal.NewFromFloat(0.01)
	_, errs = in.Validate(now)
	assert.Empty(t, errs)
}

func TestTransactionInput_Validate_Description(t *testing.T) {
	now := time.Now()

	// 太短
	in := validInput()
	in.Description = "ab"
	_, errs := in.Validate(now)
	require.Len(t, errs, 1)
	assert.Equal(t, "description", errs[0].Field)
	assert.Equal(t, ErrKindTooShort, errs[0].Kind)

	// 刚好 3 个字符
	in.Description = "abc"
	_, errs = in.Validate(now)
	assert.Empty(t, errs)

	// 不 trim：两个空格加一个字符算 3 个字符
	in.Description = "  a"
	_, errs = in.Validate(now)
	assert.Empty(t, errs)

	// 刚好 300 个字符
	in.Description = strings.Repeat("字", 300)
	_, errs = in.Validate(now)
	assert.Empty(t, errs)

	// 301 个字符
	in.Description = strings.Repeat("a", 301)
	_, errs = in.Validate(now)
	require.Len(t, errs, 1)
	assert.Equal(t, ErrKindTooLong, errs[0].Kind)
}

func TestTransactionInput_Validate_CollectsAllErrors(t *testing.T) {
	now := time.Now()

	// 全部字段非法时一次性返回所有错误
	in := TransactionInput{
		Description:     "ab",
		Amount:          decimal.Zero,
		TransactionDate: "not-a-date",
		CategoryID:      0,
	}
	_, errs := in.Validate(now)
	require.Len(t, errs, 4)

	fields := make(map[string]string)
	for _, e := range errs {
		fields[e.Field] = e.Kind
	}
	assert.Equal(t, ErrKindInvalidCategory, fields["category_id"])
	assert.Equal(t, ErrKindInvalidDate, fields["transaction_date"])
	assert.Equal(t, ErrKindInvalidAmount, fields["amount"])
	assert.Equal(t, ErrKindTooShort, fields["description"])
}
