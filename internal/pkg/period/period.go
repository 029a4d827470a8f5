package period

import "time"

// 一天内的时段标签，按本地小时划分
const (
	Dawn      = "dawn"
	Morning   = "morning"
	Afternoon = "afternoon"
	Night     = "night"
)

// Labels 全部时段标签，顺序固定
var Labels = []string{Dawn, Morning, Afternoon, Night}

// ZeroTimeOfDayCounts 返回四个时段标签全部置 0 的计数表
func ZeroTimeOfDayCounts() map[string]int {
	counts := make(map[string]int, len(Labels))
	for _, label := range Labels {
		counts[label] = 0
	}
	return counts
}

// Resolver 以固定 UTC 偏移解析日历周期（年/季度/时段/自然日）
// 无状态，任意协程可共享
type Resolver struct {
	loc *time.Location
}

func NewResolver(utcOffsetHours int) *Resolver {
	return &Resolver{
		loc: time.FixedZone("LOCAL", utcOffsetHours*3600),
	}
}

// Quarter 返回时间戳所在的年份与季度（1-4）
func (r *Resolver) Quarter(t time.Time) (year int, quarter int) {
	lt := t.In(r.loc)
	return lt.Year(), int(lt.Month()-1)/3 + 1
}

// TimeOfDay 返回时间戳所处的时段标签
// [0,6) dawn / [6,12) morning / [12,18) afternoon / [18,24) night
func (r *Resolver) TimeOfDay(t time.Time) string {
	hour := t.In(r.loc).Hour()
	switch {
	case hour < 6:
		return Dawn
	case hour < 12:
		return Morning
	case hour < 18:
		return Afternoon
	default:
		return Night
	}
}

// Midnight 返回时间戳所在自然日的零点
func (r *Resolver) Midnight(t time.Time) time.Time {
	lt := t.In(r.loc)
	return time.Date(lt.Year(), lt.Month(), lt.Day(), 0, 0, 0, 0, r.loc)
}

// DayRange 返回时间戳所在自然日的 [start, end) 区间
func (r *Resolver) DayRange(t time.Time) (time.Time, time.Time) {
	start := r.Midnight(t)
	return start, start.AddDate(0, 0, 1)
}

// DateKey 返回 YYYY-MM-DD 形式的自然日键
func (r *Resolver) DateKey(t time.Time) string {
	return t.In(r.loc).Format(time.DateOnly)
}

// UntilMidnight 返回距下一个零点的时长，常用于缓存过期
func (r *Resolver) UntilMidnight(t time.Time) time.Duration {
	return r.Midnight(t).AddDate(0, 0, 1).Sub(t)
}

// PrevQuarter 返回给定年/季度的上一个季度
func PrevQuarter(year, quarter int) (int, int) {
	if quarter == 1 {
		return year - 1, 4
	}
	return year, quarter - 1
}
