// Package jobrec 是一个岗位推荐核心（Job Recommender Kit）。
//
// 设计要点：
// - 启动即训练：活动日志 → 隐式评分 → 稀疏交互矩阵 → ALS 隐因子模型（一次性批处理）
// - 训练后只读：模型、矩阵、实体索引发布后不可变，查询可无锁并发
// - Pipeline 可组合：召回/过滤/重排/后处理均为可插拔 Node（本地模型或 Store 查表均可）
package jobrec

import "github.com/rushteam/jobrec/pipeline"

// 轻量 facade：便于用户直接 import "jobrec" 使用核心抽象。
type Pipeline = pipeline.Pipeline
type Node = pipeline.Node
type Kind = pipeline.Kind

const (
	KindRecall      = pipeline.KindRecall
	KindFilter      = pipeline.KindFilter
	KindRank        = pipeline.KindRank
	KindReRank      = pipeline.KindReRank
	KindPostProcess = pipeline.KindPostProcess
)
