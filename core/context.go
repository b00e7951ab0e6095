package core

import "github.com/rushteam/jobrec/pkg/utils"

// RecommendContext 承载用户/场景/请求信息，贯穿整个 Pipeline 透传。
// 活动日志中的用户 ID 是数值型，这里统一使用 int64。
type RecommendContext struct {
	UserID int64
	Scene  string // 推荐场景（feed / search / detail 等）

	// Labels 是用户级标签，可驱动整个 Pipeline 行为
	// 例如：新用户、冷启动、重度求职者等
	Labels map[string]utils.Label

	// Params 请求级上下文参数（top_n、device_type、query 等）
	Params map[string]any
}

// PutLabel 写入用户级 Label。
func (rctx *RecommendContext) PutLabel(key string, lbl utils.Label) {
	if rctx.Labels == nil {
		rctx.Labels = make(map[string]utils.Label)
	}
	if old, ok := rctx.Labels[key]; ok {
		rctx.Labels[key] = utils.MergeLabel(old, lbl)
		return
	}
	rctx.Labels[key] = lbl
}

// GetLabel 获取用户级 Label。
func (rctx *RecommendContext) GetLabel(key string) (utils.Label, bool) {
	if rctx.Labels == nil {
		return utils.Label{}, false
	}
	lbl, ok := rctx.Labels[key]
	return lbl, ok
}
