package api

import (
	"strconv"
	"time"

	"cashflow/middleware"
	"cashflow/store"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// CashflowHandler 现金流统计处理器
type CashflowHandler struct {
	store *store.TransactionStore
}

// NewCashflowHandler 创建现金流统计处理器
func NewCashflowHandler(db *gorm.DB) *CashflowHandler {
	return &CashflowHandler{store: store.NewTransactionStore(db)}
}

// Annual 获取年度现金流
// @Summary 获取年度现金流
// @Description 按月统计指定年份的收入与支出合计。固定返回 12 个月份条目（1-12 升序），没有交易的月份以零值补齐，并附全年收入、支出与结余合计。
// @Tags 现金流
// @Produce json
// @Security BearerAuth
// @Param year query int true "年份，如 2024"
// @Success 200 {object} Response{data=store.AnnualCashflow} "获取成功"
// @Failure 400 {object} Response "请求参数错误"
// @Failure 401 {object} Response "未授权"
// @Router /api/v1/cashflow/annual [get]
func (h *CashflowHandler) Annual(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	year, err := strconv.Atoi(c.Query("year"))
	if err != nil || year < 1900 || year > 2200 {
		BadRequest(c, "year 参数错误，应为 4 位年份")
		return
	}

	cf, err := h.store.AnnualCashflow(userID, year)
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "统计失败"))
		return
	}

	Success(c, cf)
}

// Years 获取可选年份列表
// @Summary 获取可选年份列表
// @Description 返回从今年到当前用户最早一笔交易所在年份的年份列表（倒序）。没有交易时只返回今年。
// @Tags 现金流
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response{data=[]int} "获取成功"
// @Failure 401 {object} Response "未授权"
// @Router /api/v1/cashflow/years [get]
func (h *CashflowHandler) Years(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	years, err := h.store.YearsRange(userID)
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "查询失败"))
		return
	}

	Success(c, years)
}

// MonthlyStats 获取月度分类统计
// @Summary 获取月度分类统计
// @Description 按类别统计指定月份的收支金额、笔数与占比（占比按同类型总额计算），适合绘制饼图。
// @Tags 现金流
// @Produce json
// @Security BearerAuth
// @Param year query int true "年份，如 2024"
// @Param month query int true "月份 1-12"
// @Success 200 {object} Response{data=[]store.CategoryStat} "获取成功"
// @Failure 400 {object} Response "请求参数错误"
// @Failure 401 {object} Response "未授权"
// @Router /api/v1/cashflow/monthly [get]
func (h *CashflowHandler) MonthlyStats(c *gin.Context) {
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

	stats, err := h.store.MonthCategoryStats(userID, year, time.Month(month))
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "统计失败"))
		return
	}

	Success(c, stats)
}
