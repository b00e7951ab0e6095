package filter

import (
	"context"

	"github.com/rushteam/jobrec/core"
	"github.com/rushteam/jobrec/matrix"
)

// SeenJobs 过滤用户已交互过的岗位。
//
// 推荐查询默认不剔除已交互岗位（重复曝光是业务策略，不是算法约束），
// 需要剔除的场景把这个过滤器挂进 FilterNode 即可。
type SeenJobs struct {
	Matrix *matrix.CSR
	Index  *matrix.Index
}

func (f *SeenJobs) Name() string { return "filter.seen_jobs" }

func (f *SeenJobs) ShouldFilter(_ context.Context, rctx *core.RecommendContext, item *core.Item) (bool, error) {
	if f.Matrix == nil || f.Index == nil || rctx == nil || item == nil {
		return false, nil
	}
	row, ok := f.Index.UserPos(rctx.UserID)
	if !ok {
		return false, nil
	}
	col, ok := f.Index.JobPos(item.ID)
	if !ok {
		return false, nil
	}
	return f.Matrix.At(row, col) != 0, nil
}

var _ Filter = (*SeenJobs)(nil)
