package recommend

import (
	"context"

	"github.com/rushteam/jobrec/activity"
	"github.com/rushteam/jobrec/als"
	"github.com/rushteam/jobrec/matrix"
)

// BuildStats 是一次启动构建的摘要，供启动日志与数据质量巡检使用。
type BuildStats struct {
	// Events 消费的活动事件总数（含未知类型）
	Events int

	// Pairs 有隐式分数的 (user, job) 组合数（矩阵非零单元格数）
	Pairs int

	// UnknownTypes 未知事件类型 → 出现次数
	UnknownTypes map[string]int

	// DuplicatePairs 矩阵构建时发现的重复三元组数（理论上为 0）
	DuplicatePairs int

	// Users / Jobs 参与交互的实体数（矩阵形状）
	Users int
	Jobs  int
}

// Build 执行完整的启动期构建：
//
//	活动日志 → 聚合计数 → 隐式分数三元组 → 实体索引 → 交互矩阵 → ALS 训练
//
// 产出可直接服务查询的 Service。trainer 传 nil 时使用全默认超参数。
// 训练是一次性长操作，需要限时的调用方在 ctx 上挂超时即可。
func Build(ctx context.Context, src activity.Source, trainer *als.ALS) (*Service, *BuildStats, error) {
	if trainer == nil {
		trainer = &als.ALS{}
	}

	counts, err := activity.Aggregate(ctx, src)
	if err != nil {
		return nil, nil, err
	}
	triples := counts.Triples()

	ix := matrix.BuildIndex(triples)
	m := matrix.Build(triples, ix)

	model, err := trainer.Fit(ctx, m)
	if err != nil {
		return nil, nil, err
	}

	stats := &BuildStats{
		Events:         counts.Events,
		Pairs:          len(triples),
		UnknownTypes:   counts.UnknownTypes,
		DuplicatePairs: m.DuplicatePairs,
		Users:          ix.NumUsers(),
		Jobs:           ix.NumJobs(),
	}
	return NewService(model, m, ix), stats, nil
}
