package app

import (
	"AgriSuper/common"
	"AgriSuper/dao"
	"AgriSuper/model"
	"github.com/gin-gonic/gin"
)

func ping(c *gin.Context) {
	c.Set("ping", "pong")
}

func autologin(c *gin.Context) {
	id := getUserID(c)
	if id != 0 {
		u := dao.UserByID(id)
		if u != nil {
			c.Set("username", u.Username)
			c.Set("full_name", u.FullName)
			c.Set("role", u.Role)
			c.Set("state", u.State)
			return
		}
	}
	setError(c, 401, "未登录")
}

//登陆请求
func login(c *gin.Context) {
	if isLogin(c) {
		deleteSession(c)
	}
	form := new(loginValidtor)
	if err := c.ShouldBind(form); err != nil {
		setError(c, 403, err.Error())
		return
	}
	if ok, errInfo := form.isOk(); !ok {
		setError(c, 403, errInfo)
		return
	}
	u := dao.UserByName(form.Username)
	if u == nil {
		setError(c, 403, "用户名不存在")
		return
	}
	if u.Password != common.GetMD5Password(form.Password) {
		setError(c, 403, "密码错误")
		return
	}
	dao.TouchLastLogin(u.ID)
	setSession(c, u.Username, u.ID)
	autologin(c)
}

func logout(c *gin.Context) {
	deleteSession(c)
	c.Set("msg", "退出成功")
}

//注册请求
func register(c *gin.Context) {
	if isLogin(c) {
		setError(c, 403, "请先退出当前账户")
		return
	}
	form := new(registerValidtor)
	if err := c.ShouldBind(form); err != nil {
		setError(c, 403, err.Error())
		return
	}
	if ok, errInfo := form.isOk(); !ok {
		setError(c, 403, errInfo)
		return
	}
	if dao.UsernameExists(form.Username) {
		setError(c, 403, "用户名已存在")
		return
	}
	if dao.EmailExists(form.Email) {
		setError(c, 403, "邮箱已被注册")
		return
	}
	u := &dao.User{
		Username: form.Username,
		Password: common.GetMD5Password(form.Password),
		Email:    form.Email,
		FullName: form.FullName,
		Phone:    form.Phone,
		State:    form.State,
		Role:     model.RoleFarmer,
	}
	if err := dao.CreateUser(u); err != nil {
		setError(c, 500, err.Error())
		return
	}
	setSession(c, u.Username, u.ID)
	autologin(c)
}
