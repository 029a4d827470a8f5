package dto

// Response 统一返回结构
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

// PageQuery 分页查询参数
type PageQuery struct {
	Limit  int `form:"limit"`
	Offset int `form:"offset"`
}

// Normalize 填充分页默认值并限制上限
func (q *PageQuery) Normalize() {
	if q.Limit <= 0 {
		q.Limit = 20
	}
	if q.Limit > 100 {
		q.Limit = 100
	}
	if q.Offset < 0 {
		q.Offset = 0
	}
}
