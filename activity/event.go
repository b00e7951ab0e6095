package activity

// Type 是活动事件类型。
// 日志中可能出现未知类型（埋点新增/脏数据），解析时原样保留，
// 由聚合器计数上报而不是丢弃整条日志。
type Type string

const (
	TypeImpression Type = "impression" // 曝光：岗位被展示给用户
	TypeRedirect   Type = "redirect"   // 跳转：用户点击进入雇主申请页
)

// Event 是一条用户-岗位活动事件。不可变，从事件日志单遍读取。
type Event struct {
	UserID int64 `json:"user_id"`
	JobID  int64 `json:"job_id"`
	Type   Type  `json:"type"`
}

// UserJobScore 是一条带隐式分数的 (user, job) 三元组。
// 聚合 + 打分之后的中间产物，是索引与矩阵构建的输入。
// 不变式：Score >= 1（零分组合在上游被丢弃，不会出现在三元组中）。
type UserJobScore struct {
	UserID int64
	JobID  int64
	Score  int
}
