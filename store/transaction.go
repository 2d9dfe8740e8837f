package store

import (
	"time"

	"cashflow/models"

	"gorm.io/gorm"
)

// DefaultRecentLimit 最近交易列表默认条数
const DefaultRecentLimit = 5

// TransactionStore 交易存储，所有操作都按 user_id 限定归属
// 不属于当前用户的记录与不存在的记录对调用方不可区分（统一按"不存在"处理）
type TransactionStore struct {
	db *gorm.DB
}

// NewTransactionStore 创建交易存储
func NewTransactionStore(db *gorm.DB) *TransactionStore {
	return &TransactionStore{db: db}
}

// rowSelect 列表行查询的公共字段（关联类别名称与类型）
const rowSelect = "transactions.id, transactions.description, transactions.amount, " +
	"transactions.transaction_date, categories.name AS category, categories.type AS transaction_type"

// Create 创建交易记录，返回含数据库分配 ID 的完整记录
func (s *TransactionStore) Create(userID uint, v models.ValidatedTransaction) (*models.Transaction, error) {
	tx := models.Transaction{
		UserID:          userID,
		Description:     v.Description,
		Amount:          v.Amount,
		TransactionDate: v.TransactionDate,
		CategoryID:      v.CategoryID,
	}
	if err := s.db.Create(&tx).Error; err != nil {
		return nil, err
	}
	return &tx, nil
}

// Get 按 ID 获取当前用户的交易记录
// 记录不存在或不属于该用户时返回 gorm.ErrRecordNotFound
func (s *TransactionStore) Get(userID, id uint) (*models.Transaction, error) {
	var tx models.Transaction
	if err := s.db.Where("id = ? AND user_id = ?", id, userID).First(&tx).Error; err != nil {
		return nil, err
	}
	return &tx, nil
}

// Update 更新当前用户的交易记录（金额、类别、日期、描述全量更新）
// 归属条件直接写进 UPDATE 语句，不做先查再改；影响 0 行视为不存在
func (s *TransactionStore) Update(userID, id uint, v models.ValidatedTransaction) error {
	result := s.db.Model(&models.Transaction{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(map[string]interface{}{
			"description":      v.Description,
			"amount":           v.Amount,
			"transaction_date": v.TransactionDate,
			"category_id":      v.CategoryID,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete 删除当前用户的交易记录（物理删除）
// 归属条件直接写进 DELETE 语句；影响 0 行视为不存在，重复删除不报错
func (s *TransactionStore) Delete(userID, id uint) error {
	result := s.db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Transaction{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ListRecent 获取当前用户最近的交易（按日期倒序，同日期按 ID 倒序）
// limit <= 0 时使用默认条数
func (s *TransactionStore) ListRecent(userID uint, limit int) ([]models.TransactionRow, error) {
	if limit <= 0 {
		limit = DefaultRecentLimit
	}
	var rows []models.TransactionRow
	err := s.db.Model(&models.Transaction{}).
		Select(rowSelect).
		Joins("LEFT JOIN categories ON categories.id = transactions.category_id").
		Where("transactions.user_id = ?", userID).
		Order("transactions.transaction_date DESC, transactions.id DESC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// ListByMonth 获取当前用户指定月份内的全部交易（按日期倒序，同日期按 ID 倒序）
// 时间范围为 [当月第一天, 当月最后一天]，两端含
func (s *TransactionStore) ListByMonth(userID uint, year int, month time.Month) ([]models.TransactionRow, error) {
	first := models.NewDate(year, month, 1)
	last := models.NewDate(year, month+1, 0) // 下月第 0 天即当月最后一天

	var rows []models.TransactionRow
	err := s.db.Model(&models.Transaction{}).
		Select(rowSelect).
		Joins("LEFT JOIN categories ON categories.id = transactions.category_id").
		Where("transactions.user_id = ? AND transactions.transaction_date >= ? AND transactions.transaction_date <= ?",
			userID, first, last).
		Order("transactions.transaction_date DESC, transactions.id DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// ListByRange 获取当前用户指定日期区间内的全部交易（按日期倒序，同日期按 ID 倒序）
// 区间两端含，主要供导出使用
func (s *TransactionStore) ListByRange(userID uint, from, to models.Date) ([]models.TransactionRow, error) {
	var rows []models.TransactionRow
	err := s.db.Model(&models.Transaction{}).
		Select(rowSelect).
		Joins("LEFT JOIN categories ON categories.id = transactions.category_id").
		Where("transactions.user_id = ? AND transactions.transaction_date >= ? AND transactions.transaction_date <= ?",
			userID, from, to).
		Order("transactions.transaction_date DESC, transactions.id DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// YearsRange 返回当前用户可选的年份列表：从今年到最早一笔交易所在年份，倒序
// 用户没有任何交易时返回只含今年的列表
func (s *TransactionStore) YearsRange(userID uint) ([]int, error) {
	var earliest models.Transaction
	err := s.db.Where("user_id = ?", userID).
		Order("transaction_date ASC").
		First(&earliest).Error

	currentYear := time.Now().Year()
	earliestYear := currentYear
	switch {
	case err == nil:
		earliestYear = earliest.TransactionDate.Year()
	case err == gorm.ErrRecordNotFound:
		// 没有交易记录，只返回今年
	default:
		return nil, err
	}

	years := make([]int, 0, currentYear-earliestYear+1)
	for y := currentYear; y >= earliestYear; y-- {
		years = append(years, y)
	}
	return years, nil
}
