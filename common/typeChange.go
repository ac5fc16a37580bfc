package common

import (
	"strconv"
	"strings"
	"time"
)

const (
	TIME_FORMAT = "2006-01-02 15:04:05"
	DATE_FORMAT = "2006-01-02"
)

//下面转换不进行错误处理

//字符串转换成整型
func StrToInt(s string) int {
	ret, _ := strconv.ParseInt(s, 10, 64)
	return int(ret)
}

//字符串转64位整型
func StrToInt64(s string) int64 {
	ret, _ := strconv.ParseInt(s, 10, 64)
	return ret
}

//字符串转无符号整型
func StrToUint(s string) uint {
	ret, _ := strconv.ParseUint(s, 10, 64)
	return uint(ret)
}

func StrToBool(s string) bool {
	ret, _ := strconv.ParseBool(s)
	return ret
}

func StrToFloat64(s string) float64 {
	ret, _ := strconv.ParseFloat(s, 64)
	return ret
}

func StrToTime(s string) time.Time {
	t, _ := time.ParseInLocation(TIME_FORMAT, s, time.Local)
	return t
}

func TimeToStr(t time.Time) string {
	return t.Format(TIME_FORMAT)
}

func DateToStr(t time.Time) string {
	return t.Format(DATE_FORMAT)
}

//逗号分隔的标签串转成去重后的标签集合, 空白项丢弃
func SplitTags(s string) []string {
	parts := strings.Split(s, ",")
	seen := make(map[string]bool)
	tags := make([]string, 0)
	for _, item := range parts {
		tag := strings.TrimSpace(item)
		if tag == "" || seen[tag] {
			continue
		}
		seen[tag] = true
		tags = append(tags, tag)
	}
	return tags
}
