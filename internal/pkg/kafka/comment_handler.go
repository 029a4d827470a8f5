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

// CommentsHandler 消费评论表的 Canal 变更，把计数折算回帖子行
// 评论是软删除，UPDATE 置位 is_deleted 等价于一次递减
type CommentsHandler struct {
	postRepo repository.PostRepo
}

func NewCommentsHandler(postRepo repository.PostRepo) *CommentsHandler {
	return &CommentsHandler{postRepo: postRepo}
}

func (s *CommentsHandler) Setup(sarama.ConsumerGroupSession) error {
	log.Info("post comment consumer setup")
	return nil
}

func (s *CommentsHandler) Cleanup(sarama.ConsumerGroupSession) error {
	log.Info("post comment consumer cleanup")
	return nil
}

func (s *CommentsHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	log.Info("topic-comment consume claim")
	err := pullMessageBatch(session, claim, s.logic)
	if err != nil {
		log.Error("topic-comment process batch error", "err", err)
		return err
	}
	return nil
}

func (s *CommentsHandler) logic(ctx context.Context, msg *sarama.ConsumerMessage) error {
	canalMsg, err := ToCanalMessage(msg, "comments")
	if err != nil {
		return err
	}

	switch canalMsg.Type {
	case INSERT:
		if StrToBool(canalMsg.Data[0]["is_deleted"]) {
			return nil
		}
		return s.applyDelta(ctx, canalMsg, 1)
	case UPDATE:
		return s.handleUpdate(ctx, canalMsg)
	case DELETE:
		if StrToBool(canalMsg.Data[0]["is_deleted"]) {
			return nil
		}
		return s.applyDelta(ctx, canalMsg, -1)
	default:
		return nil
	}
}

// handleUpdate 仅在 is_deleted 发生翻转时调整计数
func (s *CommentsHandler) handleUpdate(ctx context.Context, msg *CanalMessage) error {
	if len(msg.Old) == 0 {
		return nil
	}
	oldRow := msg.Old[0]
	if _, changed := oldRow["is_deleted"]; !changed {
		return nil
	}

	wasDeleted := StrToBool(oldRow["is_deleted"])
	nowDeleted := StrToBool(msg.Data[0]["is_deleted"])
	switch {
	case !wasDeleted && nowDeleted:
		return s.applyDelta(ctx, msg, -1)
	case wasDeleted && !nowDeleted:
		return s.applyDelta(ctx, msg, 1)
	default:
		return nil
	}
}

func (s *CommentsHandler) applyDelta(ctx context.Context, msg *CanalMessage, delta int) error {
	postID := StrToUint64(msg.Data[0]["post_id"])
	if postID == 0 {
		return nil
	}

	if err := s.postRepo.IncrCommentsCount(ctx, postID, delta); err != nil {
		return err
	}

	_ = redis.DeleteKey(ctx, consts.PostCommentKey+strconv.FormatUint(postID, 10))

	log.InfoContext(ctx, "post comment count updated", "postID", postID, "delta", delta)
	return nil
}
