package filter

import (
	"context"

	"github.com/rushteam/jobrec/core"
	"github.com/rushteam/jobrec/pipeline"
	"github.com/rushteam/jobrec/pkg/dsl"
)

// RuleNode 是基于规则表达式的过滤 Node：表达式匹配的岗位被保留。
//
// 表达式在构建时编译（CEL），每次请求只做求值。示例：
//
//	item.score > 0.1
//	label.recall_source == "als" || item.score > 0.5
//	rctx.scene == "feed" && item.score > 0.2
//
// 空表达式恒真（不过滤任何岗位）。求值出错的岗位按保留处理，
// 规则引擎的故障不应清空推荐结果。
type RuleNode struct {
	prg *dsl.Program
}

// NewRuleNode 编译表达式并构建规则过滤节点。表达式非法时在此报错。
func NewRuleNode(expr string) (*RuleNode, error) {
	prg, err := dsl.Compile(expr)
	if err != nil {
		return nil, err
	}
	return &RuleNode{prg: prg}, nil
}

func (n *RuleNode) Name() string {
	return "filter.rule"
}

func (n *RuleNode) Kind() pipeline.Kind {
	return pipeline.KindFilter
}

func (n *RuleNode) Process(
	_ context.Context,
	rctx *core.RecommendContext,
	items []*core.Item,
) ([]*core.Item, error) {
	if len(items) == 0 {
		return items, nil
	}

	out := make([]*core.Item, 0, len(items))
	for _, item := range items {
		if item == nil {
			continue
		}
		keep, err := n.prg.Match(item, rctx)
		if err != nil {
			// 求值失败保留该岗位
			out = append(out, item)
			continue
		}
		if keep {
			out = append(out, item)
		}
	}
	return out, nil
}

var _ pipeline.Node = (*RuleNode)(nil)
