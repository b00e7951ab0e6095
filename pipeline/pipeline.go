package pipeline

import (
	"context"

	"github.com/rushteam/jobrec/core"
)

// Pipeline 把岗位推荐流程拆成可组合的 Node 链：召回产出候选，
// 后续节点逐级过滤、重排、修饰。
type Pipeline struct {
	Nodes []Node
}

func (p *Pipeline) Run(
	ctx context.Context,
	rctx *core.RecommendContext,
	items []*core.Item,
) ([]*core.Item, error) {
	cur := items
	for _, node := range p.Nodes {
		next, err := node.Process(ctx, rctx, cur)
		if err != nil {
			return nil, err
		}
		cur = next
	}
	return cur, nil
}
