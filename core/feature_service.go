package core

import "context"

// FeatureService 是岗位特征服务的领域接口。
//
// 推荐结果交给外层（HTTP 层）之前，可以为每个岗位补充展示/排序所需的
// 特征（薪资区间、发布时长、历史 CTR 等）。特征来源由基础设施层实现，
// 例如 feast.Adapter（Feast Feature Store）。
//
// 特征获取失败不应使整条推荐链路失败：调用方（feature.EnrichNode）
// 会降级为直接透传未加特征的结果。
type FeatureService interface {
	// Name 返回特征服务名称（用于日志/监控）
	Name() string

	// GetJobFeatures 批量获取岗位特征。
	// 返回 map[jobID]特征集；未命中的岗位可以缺席，不视为错误。
	GetJobFeatures(ctx context.Context, jobIDs []int64) (map[int64]map[string]float64, error)
}
