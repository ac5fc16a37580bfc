package dao

import (
	"AgriSuper/model"
	"encoding/json"
	"strconv"
	"time"
)

type User = model.User

const USER_REDIS_EXPIRE = time.Hour * 3

func userRedisKey(id int64) string {
	return "user:" + strconv.FormatInt(id, 10)
}

//整条用户记录以json缓存在redis, 过期后回源mysql
func putUserToRedis(u *User) {
	js, _ := json.Marshal(u)
	rdb.Set(ctx, userRedisKey(u.ID), js, USER_REDIS_EXPIRE)
}

func CreateUser(u *User) error {
	if _, err := engine.InsertOne(u); err != nil {
		return err
	}
	putUserToRedis(u)
	return nil
}

//按id取用户, 找不到返回nil
func UserByID(id int64) *User {
	key := userRedisKey(id)
	if rdb.Exists(ctx, key).Val() > 0 {
		u := &User{}
		if err := json.Unmarshal([]byte(rdb.Get(ctx, key).Val()), u); err == nil {
			return u
		}
	}
	u := &User{}
	if exist, err := engine.ID(id).Get(u); !exist || err != nil {
		return nil
	}
	putUserToRedis(u)
	return u
}

//按用户名取用户, 登录用, 不走缓存
func UserByName(username string) *User {
	u := &User{}
	if exist, err := engine.Where("`username`=?", username).Get(u); !exist || err != nil {
		return nil
	}
	return u
}

func UserIDByName(username string) (int64, error) {
	u := &User{}
	exist, err := engine.Where("`username`=?", username).Cols("id").Get(u)
	if err != nil {
		return 0, err
	}
	if !exist {
		return 0, nil
	}
	return u.ID, nil
}

func UsernameExists(username string) bool {
	exist, _ := engine.Table("user").Where("`username`=?", username).Exist()
	return exist
}

func EmailExists(email string) bool {
	exist, _ := engine.Table("user").Where("`email`=?", email).Exist()
	return exist
}

//记录最近登录时间, 同步刷新缓存
func TouchLastLogin(id int64) {
	u := &User{LastLogin: time.Now()}
	engine.ID(id).Cols("last_login").Update(u)
	rdb.Del(ctx, userRedisKey(id))
}
