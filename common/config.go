package common

import (
	"errors"
)

type H = map[string]interface{}

var (
	WebHttp       string //对外服务地址
	DataFolder    string //json数据文件目录
	SessionSecret string //session cookie密钥
)

func Init(cfg H) error {
	var ok bool
	WebHttp, ok = cfg["address"].(string)
	if !ok {
		return errors.New("网址加载错误")
	}
	if DataFolder, ok = cfg["data_folder"].(string); !ok {
		DataFolder = "data"
	}
	if SessionSecret, ok = cfg["session_secret"].(string); !ok || SessionSecret == "" {
		return errors.New("session密钥未配置")
	}
	return nil
}
