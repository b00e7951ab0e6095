package feature

import (
	"context"

	"github.com/rushteam/jobrec/core"
	"github.com/rushteam/jobrec/pipeline"
)

// EnrichNode 是特征注入节点：为候选岗位补充画像特征（薪资、城市热度、
// CTR 等），供下游展示或二次排序使用。
//
// 降级语义：特征服务不可用或部分岗位无特征时，岗位原样透传——
// 特征是增强信息，不是推荐结果的前置条件。
type EnrichNode struct {
	// FeatureService 特征服务（feast.FeatureAdapter 或任意实现）
	FeatureService core.FeatureService

	// FeaturePrefix 注入特征的前缀，默认 "job_"
	FeaturePrefix string
}

func (n *EnrichNode) Name() string {
	return "feature.enrich"
}

func (n *EnrichNode) Kind() pipeline.Kind {
	return pipeline.KindPostProcess
}

func (n *EnrichNode) Process(
	ctx context.Context,
	rctx *core.RecommendContext,
	items []*core.Item,
) ([]*core.Item, error) {
	if len(items) == 0 || n.FeatureService == nil {
		return items, nil
	}

	jobIDs := make([]int64, 0, len(items))
	for _, item := range items {
		if item != nil {
			jobIDs = append(jobIDs, item.ID)
		}
	}

	featuresByJob, err := n.FeatureService.GetJobFeatures(ctx, jobIDs)
	if err != nil {
		// 特征服务故障时降级：不注入，不失败
		return items, nil
	}

	prefix := n.FeaturePrefix
	if prefix == "" {
		prefix = "job_"
	}

	for _, item := range items {
		if item == nil {
			continue
		}
		features, ok := featuresByJob[item.ID]
		if !ok {
			continue
		}
		if item.Features == nil {
			item.Features = make(map[string]float64, len(features))
		}
		for k, v := range features {
			key := prefix + k
			// 已有同名特征保留原值（召回/排序写入的优先）
			if _, exists := item.Features[key]; !exists {
				item.Features[key] = v
			}
		}
	}

	return items, nil
}

var _ pipeline.Node = (*EnrichNode)(nil)
