package handler

import (
	"FitPulse/internal/api/dto"
	"FitPulse/internal/pkg/period"
	"FitPulse/internal/pkg/response"
	"FitPulse/internal/service"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

type ActivityHandler struct {
	periods     *period.Resolver
	activitySvc service.ActivityService
	rankingSvc  service.RankingService
}

func NewActivityHandler(periods *period.Resolver, activitySvc service.ActivityService, rankingSvc service.RankingService) *ActivityHandler {
	return &ActivityHandler{
		periods:     periods,
		activitySvc: activitySvc,
		rankingSvc:  rankingSvc,
	}
}

// GetMyStatistics 查询本人季度统计，缺省为当前季度
func (s *ActivityHandler) GetMyStatistics(c *gin.Context) {
	userID := c.GetUint64("user_id")

	year, quarter, err := s.resolvePeriod(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	stat, err := s.activitySvc.GetStatistics(c.Request.Context(), userID, year, quarter)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, &dto.StatisticsDTO{
		UserID:         stat.UserID,
		Year:           stat.Year,
		Quarter:        stat.Quarter,
		BodyPartCounts: stat.BodyPartCounts,
		TimeZoneCounts: stat.TimeZoneCounts,
		CurrentStreak:  stat.CurrentStreak,
		LongestStreak:  stat.LongestStreak,
	})
}

// GetLeaderboard 小组季度排行榜，缺省为当前季度
func (s *ActivityHandler) GetLeaderboard(c *gin.Context) {
	year, quarter, err := s.resolvePeriod(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	board, err := s.rankingSvc.GetGroupLeaderboard(c.Request.Context(), year, quarter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, board)
}

func (s *ActivityHandler) resolvePeriod(c *gin.Context) (int, int, error) {
	curYear, curQuarter := s.periods.Quarter(time.Now())

	year := curYear
	if v := c.Query("year"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return 0, 0, service.ErrParamInvalid
		}
		year = n
	}

	quarter := curQuarter
	if v := c.Query("quarter"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > 4 {
			return 0, 0, service.ErrParamInvalid
		}
		quarter = n
	}

	return year, quarter, nil
}
