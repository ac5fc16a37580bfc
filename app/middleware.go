package app

import (
	"AgriSuper/dao"
	"AgriSuper/model"
	"github.com/gin-gonic/gin"
)

//中间件

//验证是否登陆
func AuthLogin(c *gin.Context) {
	if !isLogin(c) {
		setError(c, 401, "未登陆")
		c.Abort()
	}
}

//管理员验证
func AuthAdmin(c *gin.Context) {
	id := getUserID(c)
	if id == 0 {
		setError(c, 401, "未登陆")
		c.Abort()
		return
	}
	u := dao.UserByID(id)
	if u == nil || u.Role != model.RoleAdmin {
		setError(c, 403, "没有权限")
		c.Abort()
	}
}

//c中没有返回码, 默认为200
func jsonResponse(c *gin.Context) {
	c.Next()
	statusCode := c.Writer.Status()
	if statusCode == 404 {
		c.JSON(404, gin.H{"errmsg": "Not Found"})
	} else if _, exist := c.Get("noPack"); !exist {
		delete(c.Keys, "github.com/gin-contrib/sessions")
		c.JSON(200, c.Keys)
	}
}
