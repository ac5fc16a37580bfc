package dao

import (
	"AgriSuper/common"
	"AgriSuper/model"
	"context"
	"errors"
	"fmt"

	"github.com/go-redis/redis/v8"
	_ "github.com/go-sql-driver/mysql"
	"github.com/go-xorm/xorm"
	"xorm.io/core"
)

type H = map[string]interface{}

var (
	engine *xorm.Engine    //数据库引擎(这里用的mysql)
	rdb    *redis.Client   //redis
	ctx    context.Context //默认值
	forum  *ForumStore     //问答论坛文档存储
)

//连接mysql数据库和redis
func connect(cfg H) error {
	var err error
	if mysql, ok := cfg["mysql"].(H); !ok {
		return errors.New("读取mysql配置失败")
	} else {
		dataSourceName := mysql["name"].(string) + ":" + mysql["password"].(string) + "@tcp(" + mysql["host"].(string) + ")/" + mysql["database"].(string) + "?charset=utf8"
		engine, err = xorm.NewEngine("mysql", dataSourceName)
		if err != nil {
			return err
		}
		if err = engine.Ping(); err != nil {
			return err
		}
		engine.SetMapper(core.GonicMapper{})
	}

	if rds, ok := cfg["redis"].(H); !ok {
		return errors.New("读取redis配置失败")
	} else {
		rdb = redis.NewClient(&redis.Options{
			Addr:     rds["addr"].(string),
			Password: rds["password"].(string),
			DB:       0,
		})
		ctx = context.TODO()
		if _, err := rdb.Ping(ctx).Result(); err != nil {
			return err
		}
	}
	return nil
}

//mysql表同步, 管理员和行情种子数据
func syncDB(cfg H) error {
	if err := engine.Sync2(new(model.User)); err != nil {
		return err
	}
	if err := engine.Sync2(new(model.MandiPrice)); err != nil {
		return err
	}
	if err := seedMandiPrices(); err != nil {
		return err
	}
	//设置管理员
	if admin, ok := cfg["super_admin"].(H); !ok {
		return errors.New("读取super_admin配置失败")
	} else {
		if id, _ := UserIDByName(admin["name"].(string)); id == 0 {
			u := &User{
				Username: admin["name"].(string),
				Password: common.GetMD5Password(admin["password"].(string)),
				Email:    admin["email"].(string),
				FullName: "Administrator",
				Role:     model.RoleAdmin,
			}
			if err := CreateUser(u); err != nil {
				return err
			}
			fmt.Println("管理员初始化创建完成")
		}
	}
	return nil
}

func Init(cfg H) error {
	if err := connect(cfg); err != nil {
		return err
	}
	if err := syncDB(cfg); err != nil {
		return err
	}
	var err error
	forum, err = NewForumStore(common.DataFolder)
	if err != nil {
		return err
	}
	return nil
}

//论坛存储, 路由层通过它访问问答数据
func Forum() *ForumStore {
	return forum
}
