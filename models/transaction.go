package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction 交易记录模型
// 金额使用 decimal 精确存储，交易日期只保留日期部分
// 删除为物理删除，不使用软删除
type Transaction struct {
	ID              uint            `json:"id" gorm:"primaryKey"`
	UserID          uint            `json:"user_id" gorm:"index;not null"`
	Description     string          `json:"description" gorm:"size:300;not null"`
	Amount          decimal.Decimal `json:"amount" gorm:"type:decimal(12,2);not null"`
	TransactionDate Date            `json:"transaction_date" gorm:"type:date;not null;index"`
	CategoryID      uint            `json:"category_id" gorm:"index;not null"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
	Category        Category        `json:"-" gorm:"foreignKey:CategoryID"`
	User            User            `json:"-" gorm:"foreignKey:UserID"`
}

// TableName 设置表名
func (Transaction) TableName() string {
	return "transactions"
}

// TransactionRow 交易列表行（关联类别名称与类型，供前端展示）
type TransactionRow struct {
	ID              uint            `json:"id"`
	Description     string          `json:"description"`
	Amount          decimal.Decimal `json:"amount"`
	TransactionDate Date            `json:"transaction_date"`
	Category        string          `json:"category"`
	TransactionType string          `json:"transaction_type"` // income 或 expense
}
