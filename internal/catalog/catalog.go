// Package catalog holds the static airport and airline reference data the
// seeder samples from.
package catalog

import "github.com/Unbantucniak/FTMS/internal/domain"

var airports = []domain.Airport{
	// tier one
	{City: "北京", Name: "北京首都国际机场", Code: "PEK"},
	{City: "北京", Name: "北京大兴国际机场", Code: "PKX"},
	{City: "上海", Name: "上海浦东国际机场", Code: "PVG"},
	{City: "上海", Name: "上海虹桥国际机场", Code: "SHA"},
	{City: "广州", Name: "广州白云国际机场", Code: "CAN"},
	{City: "深圳", Name: "深圳宝安国际机场", Code: "SZX"},

	// new tier one and tier two
	{City: "成都", Name: "成都天府国际机场", Code: "TFU"},
	{City: "成都", Name: "成都双流国际机场", Code: "CTU"},
	{City: "重庆", Name: "重庆江北国际机场", Code: "CKG"},
	{City: "杭州", Name: "杭州萧山国际机场", Code: "HGH"},
	{City: "南京", Name: "南京禄口国际机场", Code: "NKG"},
	{City: "武汉", Name: "武汉天河国际机场", Code: "WUH"},
	{City: "西安", Name: "西安咸阳国际机场", Code: "XIY"},
	{City: "昆明", Name: "昆明长水国际机场", Code: "KMG"},
	{City: "长沙", Name: "长沙黄花国际机场", Code: "CSX"},
	{City: "郑州", Name: "郑州新郑国际机场", Code: "CGO"},
	{City: "青岛", Name: "青岛胶东国际机场", Code: "TAO"},
	{City: "厦门", Name: "厦门高崎国际机场", Code: "XMN"},
	{City: "天津", Name: "天津滨海国际机场", Code: "TSN"},
	{City: "沈阳", Name: "沈阳桃仙国际机场", Code: "SHE"},
	{City: "大连", Name: "大连周水子国际机场", Code: "DLC"},
	{City: "哈尔滨", Name: "哈尔滨太平国际机场", Code: "HRB"},
	{City: "长春", Name: "长春龙嘉国际机场", Code: "CGQ"},
	{City: "济南", Name: "济南遥墙国际机场", Code: "TNA"},
	{City: "福州", Name: "福州长乐国际机场", Code: "FOC"},
	{City: "合肥", Name: "合肥新桥国际机场", Code: "HFE"},
	{City: "南昌", Name: "南昌昌北国际机场", Code: "KHN"},
	{City: "太原", Name: "太原武宿国际机场", Code: "TYN"},
	{City: "石家庄", Name: "石家庄正定国际机场", Code: "SJW"},
	{City: "南宁", Name: "南宁吴圩国际机场", Code: "NNG"},
	{City: "贵阳", Name: "贵阳龙洞堡国际机场", Code: "KWE"},
	{City: "海口", Name: "海口美兰国际机场", Code: "HAK"},
	{City: "三亚", Name: "三亚凤凰国际机场", Code: "SYX"},
	{City: "兰州", Name: "兰州中川国际机场", Code: "LHW"},
	{City: "乌鲁木齐", Name: "乌鲁木齐地窝堡国际机场", Code: "URC"},
	{City: "呼和浩特", Name: "呼和浩特白塔国际机场", Code: "HET"},
	{City: "银川", Name: "银川河东国际机场", Code: "INC"},
	{City: "西宁", Name: "西宁曹家堡国际机场", Code: "XNN"},
	{City: "拉萨", Name: "拉萨贡嘎国际机场", Code: "LXA"},

	// other
	{City: "无锡", Name: "苏南硕放国际机场", Code: "WUX"},
	{City: "宁波", Name: "宁波栎社国际机场", Code: "NGB"},
	{City: "温州", Name: "温州龙湾国际机场", Code: "WNZ"},
	{City: "珠海", Name: "珠海金湾国际机场", Code: "ZUH"},
	{City: "汕头", Name: "揭阳潮汕国际机场", Code: "SWA"},
	{City: "烟台", Name: "烟台蓬莱国际机场", Code: "YNT"},
	{City: "威海", Name: "威海大水泊国际机场", Code: "WEH"},
	{City: "桂林", Name: "桂林两江国际机场", Code: "KWL"},
	{City: "丽江", Name: "丽江三义国际机场", Code: "LJG"},
	{City: "西双版纳", Name: "西双版纳嘎洒国际机场", Code: "JHG"},
	{City: "张家界", Name: "张家界荷花国际机场", Code: "DYG"},
	{City: "九寨沟", Name: "九寨黄龙机场", Code: "JZH"},
	{City: "敦煌", Name: "敦煌莫高国际机场", Code: "DNH"},
}

var airlines = []domain.Airline{
	{Code: "CA", Name: "中国国际航空"},
	{Code: "MU", Name: "中国东方航空"},
	{Code: "CZ", Name: "中国南方航空"},
	{Code: "HU", Name: "海南航空"},
	{Code: "ZH", Name: "深圳航空"},
	{Code: "MF", Name: "厦门航空"},
	{Code: "3U", Name: "四川航空"},
	{Code: "FM", Name: "上海航空"},
	{Code: "SC", Name: "山东航空"},
	{Code: "GS", Name: "天津航空"},
	{Code: "KN", Name: "中国联合航空"},
	{Code: "9C", Name: "春秋航空"},
	{Code: "HO", Name: "吉祥航空"},
	{Code: "8L", Name: "祥鹏航空"},
	{Code: "G5", Name: "华夏航空"},
}

// Remote cities get the long flight-duration band.
var longDistanceCities = map[string]struct{}{
	"乌鲁木齐": {}, "拉萨": {}, "哈尔滨": {}, "三亚": {}, "海口": {},
}

var hubCities = map[string]struct{}{
	"北京": {}, "上海": {}, "广州": {},
}

// Routes between two hot cities are priced higher.
var hotCities = map[string]struct{}{
	"北京": {}, "上海": {}, "广州": {}, "深圳": {},
	"成都": {}, "杭州": {}, "重庆": {}, "西安": {},
}

// SeatOptions are whole rows of six, 20 to 30 rows, which is what the
// FTMS seat picker renders.
var SeatOptions = []int{120, 132, 144, 156, 168, 180}

// DepartureMinutes are the 5-minute slots a departure may start on.
var DepartureMinutes = []int{0, 5, 10, 15, 20, 25, 30, 35, 40, 45, 50, 55}

// Airports returns a copy of the airport catalog.
func Airports() []domain.Airport {
	return append([]domain.Airport(nil), airports...)
}

// Airlines returns a copy of the airline catalog.
func Airlines() []domain.Airline {
	return append([]domain.Airline(nil), airlines...)
}

// Cities returns the distinct cities served, in catalog order.
func Cities() []string {
	seen := make(map[string]struct{}, len(airports))
	cities := make([]string, 0, len(airports))
	for _, a := range airports {
		if _, ok := seen[a.City]; ok {
			continue
		}
		seen[a.City] = struct{}{}
		cities = append(cities, a.City)
	}
	return cities
}

func IsLongDistance(city string) bool {
	_, ok := longDistanceCities[city]
	return ok
}

func IsHub(city string) bool {
	_, ok := hubCities[city]
	return ok
}

func IsHot(city string) bool {
	_, ok := hotCities[city]
	return ok
}

// IsHotRoute reports whether both endpoints are hot cities.
func IsHotRoute(from, to string) bool {
	return IsHot(from) && IsHot(to)
}
