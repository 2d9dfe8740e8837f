package store

import (
	"cashflow/models"

	"gorm.io/gorm"
)

// CategoryStore 类别存储（只读，类别在系统初始化时写入）
type CategoryStore struct {
	db *gorm.DB
}

// NewCategoryStore 创建类别存储
func NewCategoryStore(db *gorm.DB) *CategoryStore {
	return &CategoryStore{db: db}
}

// List 获取全部类别，按 ID 升序
func (s *CategoryStore) List() ([]models.Category, error) {
	var cats []models.Category
	if err := s.db.Order("id ASC").Find(&cats).Error; err != nil {
		return nil, err
	}
	return cats, nil
}

// Exists 检查类别是否存在
func (s *CategoryStore) Exists(id uint) (bool, error) {
	var count int64
	if err := s.db.Model(&models.Category{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
