package builders

import (
	"fmt"
	"time"

	"github.com/rushteam/jobrec/config"
	"github.com/rushteam/jobrec/feature"
	"github.com/rushteam/jobrec/filter"
	"github.com/rushteam/jobrec/pipeline"
	"github.com/rushteam/jobrec/pkg/conv"
	"github.com/rushteam/jobrec/recall"
	"github.com/rushteam/jobrec/rerank"
)

func init() {
	config.Register("recall.fanout", BuildFanoutNode)
	config.Register("recall.hot", BuildHotNode)
	config.Register("recall.als", BuildALSNode)
	config.Register("filter.rule", BuildRuleNode)
	config.Register("rerank.topn", BuildTopNNode)
	config.Register("feature.enrich", BuildFeatureEnrichNode)
}

func BuildFanoutNode(cfg map[string]interface{}) (pipeline.Node, error) {
	sourcesConfig, ok := cfg["sources"].([]interface{})
	if !ok {
		return nil, fmt.Errorf("sources not found or invalid")
	}
	sources := make([]recall.Source, 0, len(sourcesConfig))
	for _, sc := range sourcesConfig {
		sourceMap, ok := sc.(map[string]interface{})
		if !ok {
			continue
		}
		sourceType := conv.ConfigGet(sourceMap, "type", "")
		switch sourceType {
		case "hot":
			ids := conv.SliceAnyToInt64(sourceMap["ids"])
			if ids == nil {
				ids = []int64{}
			}
			sources = append(sources, &recall.Hot{IDs: ids})
		default:
			return nil, fmt.Errorf("unknown source type: %s", sourceType)
		}
	}
	fanout := &recall.Fanout{
		Sources:       sources,
		Dedup:         conv.ConfigGet(cfg, "dedup", true),
		MergeStrategy: conv.ConfigGet(cfg, "merge_strategy", ""),
	}
	if sec := conv.ConfigGetInt64(cfg, "timeout", 0); sec > 0 {
		fanout.Timeout = time.Duration(sec) * time.Second
	}
	if n := conv.ConfigGetInt64(cfg, "max_concurrent", 0); n > 0 {
		fanout.MaxConcurrent = int(n)
	}
	return fanout, nil
}

func BuildHotNode(cfg map[string]interface{}) (pipeline.Node, error) {
	ids := conv.SliceAnyToInt64(cfg["ids"])
	if ids == nil {
		ids = []int64{}
	}
	node := &recall.Hot{
		IDs: ids,
		Key: conv.ConfigGet(cfg, "key", ""),
	}
	if n := conv.ConfigGetInt64(cfg, "top_n", 0); n > 0 {
		node.TopN = int(n)
	}
	return node, nil
}

func BuildALSNode(cfg map[string]interface{}) (pipeline.Node, error) {
	// ALS 召回需要 FactorStore（训练产出或 Redis 适配器），无法从纯配置构建。
	// 在代码中构造：&recall.ALSRecall{Store: ..., TopK: ...}
	return nil, fmt.Errorf("recall.als requires a factor store, construct it in code")
}

func BuildRuleNode(cfg map[string]interface{}) (pipeline.Node, error) {
	expr := conv.ConfigGet(cfg, "expr", "")
	return filter.NewRuleNode(expr)
}

func BuildTopNNode(cfg map[string]interface{}) (pipeline.Node, error) {
	n := conv.ConfigGetInt64(cfg, "n", 0)
	return &rerank.TopNNode{N: int(n)}, nil
}

func BuildFeatureEnrichNode(cfg map[string]interface{}) (pipeline.Node, error) {
	return &feature.EnrichNode{
		FeaturePrefix: conv.ConfigGet(cfg, "feature_prefix", ""),
	}, nil
}
