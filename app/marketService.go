package app

import (
	"AgriSuper/common"
	"AgriSuper/dao"
	"strconv"

	"github.com/gin-gonic/gin"
)

//最近行情, crop/state为可选过滤
func getMandiPrices(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "30"))
	if err != nil || limit <= 0 {
		setError(c, 403, "参数错误")
		return
	}
	prices := dao.GetMandiPrices(c.Query("crop"), c.Query("state"), limit)
	c.Set("total", len(prices))
	c.Set("data", prices)
}

//比价: 某作物最新一天价格最高的集市
func getBestMandis(c *gin.Context) {
	crop := c.Query("crop")
	if crop == "" {
		setError(c, 403, "参数错误")
		return
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "5"))
	if err != nil || limit <= 0 || limit > 20 {
		setError(c, 403, "参数错误")
		return
	}
	c.Set("data", dao.GetBestMandis(crop, limit))
}

//窗口内价格趋势
func getPriceTrend(c *gin.Context) {
	crop := c.Query("crop")
	state := c.Query("state")
	if crop == "" || state == "" {
		setError(c, 403, "参数错误")
		return
	}
	days := common.StrToInt(c.DefaultQuery("days", "30"))
	setMap(c, dao.GetPriceTrend(crop, state, days))
}
