package api

import (
	"errors"
	"strconv"
	"time"

	"cashflow/middleware"
	"cashflow/models"
	"cashflow/store"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// TransactionHandler 交易记录处理器
type TransactionHandler struct {
	store      *store.TransactionStore
	categories *store.CategoryStore
}

// NewTransactionHandler 创建交易记录处理器
func NewTransactionHandler(db *gorm.DB) *TransactionHandler {
	return &TransactionHandler{
		store:      store.NewTransactionStore(db),
		categories: store.NewCategoryStore(db),
	}
}

// checkCategory 校验类别是否存在，不存在时写入 400 响应并返回 false
func (h *TransactionHandler) checkCategory(c *gin.Context, categoryID uint) bool {
	ok, err := h.categories.Exists(categoryID)
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "查询类别失败"))
		return false
	}
	if !ok {
		ValidationFailed(c, []models.FieldError{{
			Field:   "category_id",
			Kind:    models.ErrKindInvalidCategory,
			Message: "交易类别不存在",
		}})
		return false
	}
	return true
}

// Create 创建交易记录
// @Summary 创建交易记录
// @Description 创建一条新的交易记录。金额必须大于 0，描述 3-300 个字符，交易日期最晚为明天。
// @Tags 交易记录
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.TransactionInput true "交易信息"
// @Success 200 {object} Response{data=models.Transaction} "创建成功"
// @Failure 400 {object} Response "参数校验失败"
// @Failure 401 {object} Response "未授权"
// @Router /api/v1/transactions [post]
func (h *TransactionHandler) Create(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	var in models.TransactionInput
	if err := c.ShouldBindJSON(&in); err != nil {
		BadRequest(c, SafeErrorMessage(err, "参数错误"))
		return
	}

	v, errs := in.Validate(time.Now())
	if len(errs) > 0 {
		ValidationFailed(c, errs)
		return
	}
	if !h.checkCategory(c, v.CategoryID) {
		return
	}

	tx, err := h.store.Create(userID, v)
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "创建交易记录失败"))
		return
	}

	SuccessWithMessage(c, "创建成功", tx)
}

// Get 获取单条交易记录
// @Summary 获取单条交易记录
// @Description 根据 ID 获取交易记录详情。只能查看自己的记录，他人的记录一律按不存在处理。
// @Tags 交易记录
// @Produce json
// @Security BearerAuth
// @Param id path int true "交易记录ID"
// @Success 200 {object} Response{data=models.Transaction} "获取成功"
// @Failure 401 {object} Response "未授权"
// @Failure 404 {object} Response "记录不存在"
// @Router /api/v1/transactions/{id} [get]
func (h *TransactionHandler) Get(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "无效的ID")
		return
	}

	tx, err := h.store.Get(userID, uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c, "记录不存在")
			return
		}
		InternalError(c, SafeErrorMessage(err, "查询失败"))
		return
	}

	Success(c, tx)
}

// Update 更新交易记录
// @Summary 更新交易记录
// @Description 全量更新指定交易记录的金额、类别、日期与描述。只能更新自己的记录。
// @Tags 交易记录
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "交易记录ID"
// @Param request body models.TransactionInput true "交易信息"
// @Success 200 {object} Response{data=models.Transaction} "更新成功"
// @Failure 400 {object} Response "参数校验失败"
// @Failure 401 {object} Response "未授权"
// @Failure 404 {object} Response "记录不存在"
// @Router /api/v1/transactions/{id} [put]
func (h *TransactionHandler) Update(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "无效的ID")
		return
	}

	var in models.TransactionInput
	if err := c.ShouldBindJSON(&in); err != nil {
		BadRequest(c, SafeErrorMessage(err, "参数错误"))
		return
	}

	v, errs := in.Validate(time.Now())
	if len(errs) > 0 {
		ValidationFailed(c, errs)
		return
	}
	if !h.checkCategory(c, v.CategoryID) {
		return
	}

	if err := h.store.Update(userID, uint(id), v); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c, "记录不存在")
			return
		}
		InternalError(c, SafeErrorMessage(err, "更新失败"))
		return
	}

	tx, err := h.store.Get(userID, uint(id))
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "查询失败"))
		return
	}
	SuccessWithMessage(c, "更新成功", tx)
}

// Delete 删除交易记录
// @Summary 删除交易记录
// @Description 删除指定交易记录（物理删除）。只能删除自己的记录，重复删除返回记录不存在。
// @Tags 交易记录
// @Produce json
// @Security BearerAuth
// @Param id path int true "交易记录ID"
// @Success 200 {object} Response "删除成功"
// @Failure 401 {object} Response "未授权"
// @Failure 404 {object} Response "记录不存在"
// @Router /api/v1/transactions/{id} [delete]
func (h *TransactionHandler) Delete(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "无效的ID")
		return
	}

	if err := h.store.Delete(userID, uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c, "记录不存在")
			return
		}
		InternalError(c, SafeErrorMessage(err, "删除失败"))
		return
	}

	SuccessWithMessage(c, "删除成功", nil)
}

// ListRecent 获取最近交易
// @Summary 获取最近交易
// @Description 获取当前用户最近的交易记录（默认 5 条），按交易日期倒序，同日期按 ID 倒序。
// @Tags 交易记录
// @Produce json
// @Security BearerAuth
// @Param limit query int false "条数" default(5)
// @Success 200 {object} Response{data=[]models.TransactionRow} "获取成功"
// @Failure 401 {object} Response "未授权"
// @Router /api/v1/transactions/recent [get]
func (h *TransactionHandler) ListRecent(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "5"))
	if limit > 100 {
		limit = 100
	}

	rows, err := h.store.ListRecent(userID, limit)
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "查询失败"))
		return
	}

	Success(c, rows)
}

// ListByMonth 获取某月交易列表
// @Summary 获取某月交易列表
// @Description 获取当前用户指定月份内的全部交易，按交易日期倒序。
// @Tags 交易记录
// @Produce json
// @Security BearerAuth
// @Param year query int true "年份，如 2024"
// @Param month query int true "月份 1-12"
// @Success 200 {object} Response{data=[]models.TransactionRow} "获取成功"
// @Failure 400 {object} Response "请求参数错误"
// @Failure 401 {object} Response "未授权"
// @Router /api/v1/transactions [get]
func (h *TransactionHandler) ListByMonth(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	year, err := strconv.Atoi(c.Query("year"))
	if err != nil || year < 1900 || year > 2200 {
		BadRequest(c, "year 参数错误，应为 4 位年份")
		return
	}
	month, err := strconv.Atoi(c.Query("month"))
	if err != nil || month < 1 || month > 12 {
		BadRequest(c, "month 参数错误，应为 1-12")
		return
	}

	rows, err := h.store.ListByMonth(userID, year, time.Month(month))
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "查询失败"))
		return
	}

	Success(c, rows)
}
