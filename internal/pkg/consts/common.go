package consts

const (
	// PopularWindowDays 热门流候选窗口（天）
	PopularWindowDays = 30
	// PopularOverFetchFactor 热门流超量拉取倍数，先取后排
	PopularOverFetchFactor = 3
)

// 季度排名主体类型
const (
	RankingTypeGroup int8 = 1
)

// RankingBaseScore 每条当日首帖为小组贡献的基础分，按成员数均摊
const RankingBaseScore = 100.0

// BodyParts 打卡支持的训练部位
var BodyParts = []string{
	"chest",
	"back",
	"shoulders",
	"arms",
	"legs",
	"core",
	"cardio",
}

// IsBodyPart 判断是否为合法训练部位
func IsBodyPart(part string) bool {
	for _, p := range BodyParts {
		if p == part {
			return true
		}
	}
	return false
}
