package store

import (
	"time"

	"cashflow/models"

	"github.com/shopspring/decimal"
)

// MonthCashflow 单月现金流（收入与支出分别合计）
type MonthCashflow struct {
	Month    int             `json:"month"` // 1-12
	Income   decimal.Decimal `json:"income"`
	Expenses decimal.Decimal `json:"expenses"`
}

// AnnualCashflow 年度现金流：固定 12 个月份条目加合计
type AnnualCashflow struct {
	Year          int             `json:"year"`
	Months        []MonthCashflow `json:"months"`
	TotalIncome   decimal.Decimal `json:"total_income"`
	TotalExpenses decimal.Decimal `json:"total_expenses"`
	Balance       decimal.Decimal `json:"balance"` // 可能为负
}

// CategoryStat 单个类别的月度统计
type CategoryStat struct {
	Category   string          `json:"category"`
	Type       string          `json:"type"` // income 或 expense
	Total      decimal.Decimal `json:"total"`
	Count      int64           `json:"count"`
	Percentage float64         `json:"percentage"` // 占同类型总额的百分比
}

// AnnualCashflow 计算当前用户某一年的现金流
// 结果固定包含 1-12 全部月份并按月份升序排列；没有交易的月份补零值条目
// 每次调用基于当前数据实时计算，不做缓存
func (s *TransactionStore) AnnualCashflow(userID uint, year int) (*AnnualCashflow, error) {
	type monthRow struct {
		Month    int
		Income   decimal.Decimal
		Expenses decimal.Decimal
	}

	var rows []monthRow
	err := s.db.Model(&models.Transaction{}).
		Select("MONTH(transactions.transaction_date) AS month, "+
			"COALESCE(SUM(CASE WHEN categories.type = 'income' THEN transactions.amount ELSE 0 END), 0) AS income, "+
			"COALESCE(SUM(CASE WHEN categories.type = 'expense' THEN transactions.amount ELSE 0 END), 0) AS expenses").
		Joins("LEFT JOIN categories ON categories.id = transactions.category_id").
		Where("transactions.user_id = ? AND YEAR(transactions.transaction_date) = ?", userID, year).
		Group("MONTH(transactions.transaction_date)").
		Order("month ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	byMonth := make(map[int]monthRow, len(rows))
	for _, r := range rows {
		byMonth[r.Month] = r
	}

	result := &AnnualCashflow{
		Year:          year,
		Months:        make([]MonthCashflow, 0, 12),
		TotalIncome:   decimal.Zero,
		TotalExpenses: decimal.Zero,
	}

	// 固定补齐 12 个月份，没有数据的月份收入支出均为 0
	for m := 1; m <= 12; m++ {
		mc := MonthCashflow{Month: m, Income: decimal.Zero, Expenses: decimal.Zero}
		if r, ok := byMonth[m]; ok {
			mc.Income = r.Income
			mc.Expenses = r.Expenses
		}
		result.Months = append(result.Months, mc)
		result.TotalIncome = result.TotalIncome.Add(mc.Income)
		result.TotalExpenses = result.TotalExpenses.Add(mc.Expenses)
	}
	result.Balance = result.TotalIncome.Sub(result.TotalExpenses)

	return result, nil
}

// MonthCategoryStats 计算当前用户某月按类别汇总的收支统计（供饼图/柱状图使用）
func (s *TransactionStore) MonthCategoryStats(userID uint, year int, month time.Month) ([]CategoryStat, error) {
	first := models.NewDate(year, month, 1)
	last := models.NewDate(year, month+1, 0)

	var stats []CategoryStat
	err := s.db.Model(&models.Transaction{}).
		Select("categories.name AS category, categories.type AS type, "+
			"SUM(transactions.amount) AS total, COUNT(*) AS count").
		Joins("LEFT JOIN categories ON categories.id = transactions.category_id").
		Where("transactions.user_id = ? AND transactions.transaction_date >= ? AND transactions.transaction_date <= ?",
			userID, first, last).
		Group("categories.name, categories.type").
		Order("total DESC").
		Scan(&stats).Error
	if err != nil {
		return nil, err
	}

	// 按类型分别求和后计算各类别占比
	totals := map[string]decimal.Decimal{
		models.CategoryTypeIncome:  decimal.Zero,
		models.CategoryTypeExpense: decimal.Zero,
	}
	for _, st := range stats {
		totals[st.Type] = totals[st.Type].Add(st.Total)
	}
	for i := range stats {
		total := totals[stats[i].Type]
		if total.IsPositive() {
			pct, _ := stats[i].Total.Div(total).Mul(decimal.NewFromInt(100)).Round(2).Float64()
			stats[i].Percentage = pct
		}
	}

	return stats, nil
}
