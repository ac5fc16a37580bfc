package dao

import (
	"AgriSuper/common"
	"AgriSuper/model"
	"encoding/json"
	"math"
	"math/rand"
	"strconv"
	"time"
)

type MandiPrice = model.MandiPrice

const MANDI_REDIS_EXPIRE = time.Minute * 30

var (
	MandiCrops  = []string{"Rice", "Wheat", "Maize", "Sugarcane", "Cotton", "Soybean", "Onion", "Potato", "Tomato", "Chili"}
	MandiStates = []string{"Punjab", "Haryana", "Uttar Pradesh", "Maharashtra", "Karnataka", "Tamil Nadu", "Gujarat", "Rajasthan"}
)

//生成行情种子数据: 每种作物在每个邦按天一条, 基准价加季节波动和随机扰动.
//随机性全部来自r, 固定seed可复现
func GenerateMandiPrices(r *rand.Rand, now time.Time, days int) []*MandiPrice {
	ret := make([]*MandiPrice, 0, len(MandiCrops)*len(MandiStates)*days)
	for _, crop := range MandiCrops {
		for _, state := range MandiStates {
			base := float64(1500 + r.Intn(3501))
			for i := 0; i < days; i++ {
				date := now.AddDate(0, 0, -(days - 1 - i))
				seasonal := 1 + 0.3*math.Sin(2*math.Pi*float64(i)/365)
				jitter := 1 + (r.Float64()*0.3 - 0.15)
				ret = append(ret, &MandiPrice{
					Crop:   crop,
					State:  state,
					Mandi:  state + " Mandi",
					Price:  math.Round(base*seasonal*jitter*100) / 100,
					Volume: uint(100 + r.Intn(901)),
					Date:   common.DateToStr(date),
				})
			}
		}
	}
	return ret
}

//表为空时灌入种子数据
func seedMandiPrices() error {
	total, err := engine.Count(new(MandiPrice))
	if err != nil {
		return err
	}
	if total > 0 {
		return nil
	}
	rows := GenerateMandiPrices(rand.New(rand.NewSource(time.Now().UnixNano())), time.Now(), 90)
	batch := make([]*MandiPrice, 0, 500)
	for _, row := range rows {
		batch = append(batch, row)
		if len(batch) == 500 {
			if _, err := engine.Insert(&batch); err != nil {
				return err
			}
			batch = batch[:0]
		}
	}
	if len(batch) > 0 {
		if _, err := engine.Insert(&batch); err != nil {
			return err
		}
	}
	return nil
}

func mandiLatestKey(crop, state string, limit int) string {
	return "mandi_latest:" + crop + ":" + state + ":" + strconv.Itoa(limit)
}

//最近行情, 按日期降序. 结果整体缓存在redis一段时间
func GetMandiPrices(crop, state string, limit int) []MandiPrice {
	if limit <= 0 || limit > 100 {
		limit = 100
	}
	key := mandiLatestKey(crop, state, limit)
	if rdb.Exists(ctx, key).Val() > 0 {
		var cached []MandiPrice
		if err := json.Unmarshal([]byte(rdb.Get(ctx, key).Val()), &cached); err == nil {
			return cached
		}
	}
	prices := make([]MandiPrice, 0)
	sess := engine.Desc("date")
	if crop != "" {
		sess = sess.Where("`crop`=?", crop)
	}
	if state != "" {
		sess = sess.And("`state`=?", state)
	}
	sess.Limit(limit).Find(&prices)
	js, _ := json.Marshal(prices)
	rdb.Set(ctx, key, js, MANDI_REDIS_EXPIRE)
	return prices
}

//某作物最新一天各邦行情, 按价格降序取前limit个, 用于比价
func GetBestMandis(crop string, limit int) []MandiPrice {
	latest := &MandiPrice{}
	exist, err := engine.Where("`crop`=?", crop).Desc("date").Get(latest)
	if err != nil || !exist {
		return []MandiPrice{}
	}
	prices := make([]MandiPrice, 0)
	engine.Where("`crop`=? and `date`=?", crop, latest.Date).Desc("price").Limit(limit).Find(&prices)
	return prices
}

//简单趋势: 窗口内首尾均价及涨跌幅(百分比)
func GetPriceTrend(crop, state string, days int) common.H {
	if days <= 0 || days > 365 {
		days = 30
	}
	since := common.DateToStr(time.Now().AddDate(0, 0, -days))
	prices := make([]MandiPrice, 0)
	engine.Where("`crop`=? and `state`=? and `date`>=?", crop, state, since).Asc("date").Find(&prices)
	if len(prices) == 0 {
		return common.H{"crop": crop, "state": state, "points": 0}
	}
	first, last := prices[0].Price, prices[len(prices)-1].Price
	change := 0.0
	if first > 0 {
		change = math.Round((last-first)/first*10000) / 100
	}
	return common.H{
		"crop":           crop,
		"state":          state,
		"points":         len(prices),
		"first_price":    first,
		"last_price":     last,
		"change_percent": change,
	}
}
