package store

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransactionStore_AnnualCashflow(t *testing.T) {
	mock, s, cleanup := setupMockStore(t)
	defer cleanup()

	// 三月有收入 1000 与支出 250，其余月份无数据
	mock.ExpectQuery("SELECT .* FROM `transactions`").
		WithArgs(1, 2024).
		WillReturnRows(sqlmock.NewRows([]string{"month", "income", "expenses"}).
			AddRow(3, "1000.00", "250.00"))

	cf, err := s.AnnualCashflow(1, 2024)
	require.NoError(t, err)

	// 固定 12 个条目，月份 1-12 升序
	require.Len(t, cf.Months, 12)
	for i, mc := range cf.Months {
		assert.Equal(t, i+1, mc.Month)
	}

	march := cf.Months[2]
	assert.Equal(t, 3, march.Month)
	assert.True(t, march.Income.Equal(decimal.NewFromInt(1000)))
	assert.True(t, march.Expenses.Equal(decimal.NewFromInt(250)))

	// 其余 11 个月份补零值条目而不是缺失
	for i, mc := range cf.Months {
		if i == 2 {
			continue
		}
		assert.True(t, mc.Income.IsZero(), "月份 %d 收入应为 0", mc.Month)
		assert.True(t, mc.Expenses.IsZero(), "月份 %d 支出应为 0", mc.Month)
	}

	assert.True(t, cf.TotalIncome.Equal(decimal.NewFromInt(1000)))
	assert.True(t, cf.TotalExpenses.Equal(decimal.NewFromInt(250)))
	assert.True(t, cf.Balance.Equal(decimal.NewFromInt(750)))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionStore_AnnualCashflow_Empty(t *testing.T) {
	mock, s, cleanup := setupMockStore(t)
	defer cleanup()

	mock.ExpectQuery("SELECT .* FROM `transactions`").
		WithArgs(1, 2023).
		WillReturnRows(sqlmock.NewRows([]string{"month", "income", "expenses"}))

	cf, err := s.AnnualCashflow(1, 2023)
	require.NoError(t, err)

	// 没有任何交易时仍返回 12 个零值月份
	require.Len(t, cf.Months, 12)
	for _, mc := range cf.Months {
		assert.True(t, mc.Income.IsZero())
		assert.True(t, mc.Expenses.IsZero())
	}
	assert.True(t, cf.TotalIncome.IsZero())
	assert.True(t, cf.TotalExpenses.IsZero())
	assert.True(t, cf.Balance.IsZero())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionStore_AnnualCashflow_NegativeBalance(t *testing.T) {
	mock, s, cleanup := setupMockStore(t)
	defer cleanup()

	mock.ExpectQuery("SELECT .* FROM `transactions`").
		WithArgs(1, 2024).
		WillReturnRows(sqlmock.NewRows([]string{"month", "income", "expenses"}).
			AddRow(1, "100.00", "300.00").
			AddRow(2, "0.00", "50.50"))

	cf, err := s.AnnualCashflow(1, 2024)
	require.NoError(t, err)

	assert.True(t, cf.TotalIncome.Equal(decimal.NewFromInt(100)))
	assert.True(t, cf.TotalExpenses.Equal(decimal.NewFromFloat(350.50)))
	// 结余可以为负
	assert.True(t, cf.Balance.Equal(decimal.NewFromFloat(-250.50)))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionStore_MonthCategoryStats(t *testing.T) {
	mock, s, cleanup := setupMockStore(t)
	defer cleanup()

	mock.ExpectQuery("SELECT .* FROM `transactions`").
		WithArgs(1, "2024-03-01", "2024-03-31").
		WillReturnRows(sqlmock.NewRows([]string{"category", "type", "total", "count"}).
			AddRow("工资", "income", "5000.00", 1).
			AddRow("住房", "expense", "1500.00", 1).
			AddRow("餐饮食品", "expense", "500.00", 4))

	stats, err := s.MonthCategoryStats(1, 2024, time.March)
	require.NoError(t, err)
	require.Len(t, stats, 3)

	// 占比按同类型总额计算
	assert.Equal(t, "工资", stats[0].Category)
	assert.InDelta(t, 100.0, stats[0].Percentage, 0.01)
	assert.Equal(t, "住房", stats[1].Category)
	assert.InDelta(t, 75.0, stats[1].Percentage, 0.01)
	assert.Equal(t, "餐饮食品", stats[2].Category)
	assert.InDelta(t, 25.0, stats[2].Percentage, 0.01)
	assert.Equal(t, int64(4), stats[2].Count)
	require.NoError(t, mock.ExpectationsWereMet())
}
