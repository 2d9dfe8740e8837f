package models

// 类别类型常量
const (
	// CategoryTypeIncome 收入类别
	CategoryTypeIncome = "income"
	// CategoryTypeExpense 支出类别
	CategoryTypeExpense = "expense"
)

// Category 交易类别（系统初始化时写入，不对用户开放编辑）
type Category struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"size:50;not null"`
	Type string `json:"type" gorm:"size:10;not null;index"` // income 或 expense
}

// TableName 设置表名
func (Category) TableName() string {
	return "categories"
}

// DefaultCategories 返回默认类别（收入在前，支出在后）
func DefaultCategories() []Category {
	return []Category{
		{Name: "工资", Type: CategoryTypeIncome},
		{Name: "租金收入", Type: CategoryTypeIncome},
		{Name: "经营收入", Type: CategoryTypeIncome},
		{Name: "投资理财", Type: CategoryTypeIncome},
		{Name: "其他收入", Type: CategoryTypeIncome},
		{Name: "住房", Type: CategoryTypeExpense},
		{Name: "交通", Type: CategoryTypeExpense},
		{Name: "餐饮食品", Type: CategoryTypeExpense},
		{Name: "医疗健康", Type: CategoryTypeExpense},
		{Name: "娱乐休闲", Type: CategoryTypeExpense},
		{Name: "其他支出", Type: CategoryTypeExpense},
	}
}
