package model

//某个集市某天某种作物的行情, 按天一条
type MandiPrice struct {
	ID     int64   `json:"id" xorm:"pk autoincr"`
	Crop   string  `json:"crop" xorm:"varchar(32) index notnull"`  //作物
	State  string  `json:"state" xorm:"varchar(32) index notnull"` //邦
	Mandi  string  `json:"mandi" xorm:"varchar(64)"`               //集市名
	Price  float64 `json:"price"`                                  //价格(卢比/公担)
	Volume uint    `json:"volume"`                                 //成交量
	Date   string  `json:"date" xorm:"varchar(10) index"`          //形如 2006-01-02
}
