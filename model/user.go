package model

import (
	"time"
)

//用户角色
const (
	RoleFarmer = "farmer"
	RoleExpert = "expert"
	RoleAdmin  = "admin"
)

type User struct {
	ID int64 `json:"id" xorm:"pk autoincr"`
	//基础信息
	CreatedAt time.Time `json:"created_at" xorm:"created"`                          //创建时间
	Username  string    `json:"username" xorm:"VARBINARY(64) unique index notnull"` //用户名
	Password  string    `json:"password" xorm:"VARBINARY(32) notnull"`              //MD5加盐哈希
	Email     string    `json:"email" xorm:"varchar(64) unique index notnull"`      //邮箱
	FullName  string    `json:"full_name" xorm:"varchar(64)"`                       //姓名
	Phone     string    `json:"phone" xorm:"varchar(16)"`                           //手机号
	Role      string    `json:"role" xorm:"varchar(16) index default 'farmer'"`     //farmer/expert/admin
	State     string    `json:"state" xorm:"varchar(32)"`                           //所在邦
	LastLogin time.Time `json:"last_login"`                                         //上次登录时间
}
