package api

import (
	"cashflow/store"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// CategoryHandler 交易类别处理器
type CategoryHandler struct {
	store *store.CategoryStore
}

// NewCategoryHandler 创建交易类别处理器
func NewCategoryHandler(db *gorm.DB) *CategoryHandler {
	return &CategoryHandler{store: store.NewCategoryStore(db)}
}

// List 获取类别列表
// @Summary 获取类别列表
// @Description 获取全部交易类别（含收入与支出类型），无需登录。类别由系统初始化时写入，不可编辑。
// @Tags 类别
// @Produce json
// @Success 200 {object} Response{data=[]models.Category} "获取成功"
// @Failure 500 {object} Response "服务器内部错误"
// @Router /api/v1/categories [get]
func (h *CategoryHandler) List(c *gin.Context) {
	list, err := h.store.List()
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "查询失败"))
		return
	}
	Success(c, list)
}
