package kafka

import (
	"FitPulse/internal/pkg/consts"
	"FitPulse/internal/pkg/redis"
	"FitPulse/internal/repository"
	"context"
	log "log/slog"
	"strconv"

	"github.com/IBM/sarama"
)

// LikesHandler 消费点赞表的 Canal 变更，把计数折算回帖子行
type LikesHandler struct {
	postRepo repository.PostRepo
}

func NewLikesHandler(postRepo repository.PostRepo) *LikesHandler {
	return &LikesHandler{postRepo: postRepo}
}

func (s *LikesHandler) Setup(sarama.ConsumerGroupSession) error {
	log.Info("post like consumer setup")
	return nil
}

func (s *LikesHandler) Cleanup(sarama.ConsumerGroupSession) error {
	log.Info("post like consumer cleanup")
	return nil
}

func (s *LikesHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	log.Info("topic-like consume claim")
	err := pullMessageBatch(session, claim, s.logic)
	if err != nil {
		log.Error("topic-like process batch error", "err", err)
		return err
	}
	return nil
}

func (s *LikesHandler) logic(ctx context.Context, msg *sarama.ConsumerMessage) error {
	canalMsg, err := ToCanalMessage(msg, "likes")
	if err != nil {
		return err
	}

	// 点赞是物理增删，只处理 INSERT / DELETE
	switch canalMsg.Type {
	case INSERT:
		return s.applyDelta(ctx, canalMsg, 1)
	case DELETE:
		return s.applyDelta(ctx, canalMsg, -1)
	default:
		return nil
	}
}

func (s *LikesHandler) applyDelta(ctx context.Context, msg *CanalMessage, delta int) error {
	postID := StrToUint64(msg.Data[0]["post_id"])
	if postID == 0 {
		return nil
	}

	if err := s.postRepo.IncrLikesCount(ctx, postID, delta); err != nil {
		return err
	}

	_ = redis.DeleteKey(ctx, consts.PostLikeKey+strconv.FormatUint(postID, 10))

	log.InfoContext(ctx, "post like count updated", "postID", postID, "delta", delta)
	return nil
}
