package models

import (
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

// 描述长度限制（按字符数计，不做 trim）
const (
	DescriptionMinLen = 3
	DescriptionMaxLen = 300
)

// 字段校验错误类型常量
const (
	ErrKindInvalidCategory = "invalid_category"
	ErrKindInvalidDate     = "invalid_date"
	ErrKindInvalidAmount   = "invalid_amount"
	ErrKindTooShort        = "too_short"
	ErrKindTooLong         = "too_long"
)

// FieldError 单个字段的校验错误
type FieldError struct {
	Field   string `json:"field"`
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// TransactionInput 交易输入（创建与更新共用同一套校验）
type TransactionInput struct {
	Description     string          `json:"description"`
	Amount          decimal.Decimal `json:"amount" swaggertype:"string" example:"42.50"`
	TransactionDate string          `json:"transaction_date" example:"2024-03-15"`
	CategoryID      int64           `json:"category_id" example:"1"`
}

// ValidatedTransaction 校验通过后的规范化交易值
type ValidatedTransaction struct {
	Description     string
	Amount          decimal.Decimal
	TransactionDate Date
	CategoryID      uint
}

// Validate 校验交易输入并规范化，返回所有字段错误（而非只报第一个）
// 纯函数，不做任何存储操作；now 用于判断日期是否超出允许范围
func (in TransactionInput) Validate(now time.Time) (ValidatedTransaction, []FieldError) {
	var (
		v    ValidatedTransaction
		errs []FieldError
	)

	if in.CategoryID <= 0 {
		errs = append(errs, FieldError{
			Field:   "category_id",
			Kind:    ErrKindInvalidCategory,
			Message: "请选择有效的交易类别",
		})
	} else {
		v.CategoryID = uint(in.CategoryID)
	}

	// 交易日期最多允许到明天（兼容跨时区的当天记账），不允许更远的未来日期
	if d, err := ParseDate(in.TransactionDate); err != nil {
		errs = append(errs, FieldError{
			Field:   "transaction_date",
			Kind:    ErrKindInvalidDate,
			Message: "日期格式错误，应为: " + DateFormat,
		})
	} else if d.After(now.AddDate(0, 0, 1)) {
		errs = append(errs, FieldError{
			Field:   "transaction_date",
			Kind:    ErrKindInvalidDate,
			Message: "交易日期不能晚于明天",
		})
	} else {
		v.TransactionDate = d
	}

	if !in.Amount.IsPositive() {
		errs = append(errs, FieldError{
			Field:   "amount",
			Kind:    ErrKindInvalidAmount,
			Message: "金额必须大于 0",
		})
	} else {
		v.Amount = in.Amount
	}

	// 长度按原始字符数计算，不做 trim
	switch n := utf8.RuneCountInString(in.Description); {
	case n < DescriptionMinLen:
		errs = append(errs, FieldError{
			Field:   "description",
			Kind:    ErrKindTooShort,
			Message: "描述至少需要 3 个字符",
		})
	case n > DescriptionMaxLen:
		errs = append(errs, FieldError{
			Field:   "description",
			Kind:    ErrKindTooLong,
			Message: "描述最多 300 个字符",
		})
	default:
		v.Description = in.Description
	}

	if len(errs) > 0 {
		return ValidatedTransaction{}, errs
	}
	return v, nil
}
