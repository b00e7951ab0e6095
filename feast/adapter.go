package feast

import (
	"context"

	"github.com/rushteam/jobrec/core"
	"github.com/rushteam/jobrec/pkg/conv"
)

// FeatureAdapter 把 Feast 客户端适配为 core.FeatureService，
// 供 feature.EnrichNode 查询岗位画像特征。
//
// 实体键固定为 "job_id"（Feast 侧注册的岗位实体）。
// 非数值特征会被丢弃：EnrichNode 注入的是 map[string]float64。
type FeatureAdapter struct {
	client Client

	// Features 要查询的特征名称列表，例如 ["job_stats:salary", "job_stats:ctr"]
	Features []string

	// Project 项目名称（可选，客户端可带默认）
	Project string
}

// NewFeatureAdapter 创建一个基于 Feast 的岗位特征服务。
func NewFeatureAdapter(client Client, features []string, project string) *FeatureAdapter {
	return &FeatureAdapter{
		client:   client,
		Features: features,
		Project:  project,
	}
}

func (a *FeatureAdapter) Name() string { return "feast" }

func (a *FeatureAdapter) GetJobFeatures(ctx context.Context, jobIDs []int64) (map[int64]map[string]float64, error) {
	if a.client == nil || len(a.Features) == 0 || len(jobIDs) == 0 {
		return map[int64]map[string]float64{}, nil
	}

	entityRows := make([]map[string]interface{}, len(jobIDs))
	for i, jobID := range jobIDs {
		entityRows[i] = map[string]interface{}{"job_id": jobID}
	}

	resp, err := a.client.GetOnlineFeatures(ctx, &GetOnlineFeaturesRequest{
		Features:   a.Features,
		EntityRows: entityRows,
		Project:    a.Project,
	})
	if err != nil {
		return nil, err
	}

	out := make(map[int64]map[string]float64, len(jobIDs))
	for i, vector := range resp.FeatureVectors {
		if i >= len(jobIDs) {
			break
		}
		features := make(map[string]float64, len(vector.Values))
		for name, value := range vector.Values {
			if fv, ok := conv.ToFloat64(value); ok {
				features[name] = fv
			}
		}
		if len(features) > 0 {
			out[jobIDs[i]] = features
		}
	}
	return out, nil
}

var _ core.FeatureService = (*FeatureAdapter)(nil)
