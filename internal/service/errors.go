package service

import (
	"errors"
)

const (
	BadRequest          = 400
	Unauthorized        = 401
	Forbidden           = 403
	NotFound            = 404
	Conflict            = 409
	InternalServerError = 500
)

var (
	ErrParamInvalid            = errors.New("参数错误")
	ErrUserNotFound            = errors.New("用户不存在")
	ErrUserUsernameExist       = errors.New("用户名已存在")
	ErrPasswordIncorrect       = errors.New("密码错误")
	ErrMissingLoginCredentials = errors.New("缺少登录凭据")
	ErrPostNotFound            = errors.New("帖子不存在")
	ErrCommentNotFound         = errors.New("评论不存在")
	ErrActionDuplicate         = errors.New("重复操作")
	ErrGroupNotFound           = errors.New("小组不存在")
	ErrAlreadyInGroup          = errors.New("已加入小组")
	ErrNotGroupMember          = errors.New("未加入小组")
	ErrMembershipRequired      = errors.New("今日首帖需要先加入小组")
	ErrRankingFinalized        = errors.New("该季度竞赛分已冻结")
	ErrBodyPartInvalid         = errors.New("训练部位无效")
	UnauthorizedError          = errors.New("权限不足")
	UnExpectedError            = errors.New("系统异常，请稍后重试")
)

var ErrorMap = map[error]int{
	ErrParamInvalid:            BadRequest,
	ErrUserNotFound:            NotFound,
	ErrUserUsernameExist:       BadRequest,
	ErrPasswordIncorrect:       Unauthorized,
	ErrMissingLoginCredentials: Unauthorized,
	ErrPostNotFound:            NotFound,
	ErrCommentNotFound:         NotFound,
	ErrActionDuplicate:         BadRequest,
	ErrGroupNotFound:           NotFound,
	ErrAlreadyInGroup:          BadRequest,
	ErrNotGroupMember:          BadRequest,
	ErrMembershipRequired:      Forbidden,
	ErrRankingFinalized:        Conflict,
	ErrBodyPartInvalid:         BadRequest,
	UnauthorizedError:          Unauthorized,
	UnExpectedError:            InternalServerError,
}
