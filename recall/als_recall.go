package recall

import (
	"context"

	"github.com/rushteam/jobrec/als"
	"github.com/rushteam/jobrec/core"
	"github.com/rushteam/jobrec/matrix"
	"github.com/rushteam/jobrec/pipeline"
	"github.com/rushteam/jobrec/pkg/utils"
)

// FactorStore 是隐因子的存储接口，用于获取用户和岗位的隐向量。
type FactorStore interface {
	// GetUserVector 获取用户的隐向量；用户不存在时返回空切片
	GetUserVector(ctx context.Context, userID int64) ([]float64, error)

	// GetItemVector 获取岗位的隐向量；岗位不存在时返回空切片
	GetItemVector(ctx context.Context, jobID int64) ([]float64, error)

	// GetAllItemVectors 获取所有岗位的隐向量（用于在线召回）
	GetAllItemVectors(ctx context.Context) (map[int64][]float64, error)
}

// ALSRecall 是基于 ALS 隐因子的召回源。
//
// 核心思想：离线训练产出用户隐向量和岗位隐向量，
// 预测分数 = 用户隐向量 · 岗位隐向量，在线只做查表 + 点积。
//
// 工程特征：
//   - 实时性：好（离线训练，在线查表）
//   - 计算复杂度：低（向量点积）
//   - 冷启动：差（训练集之外的用户召回为空，由其他召回源兜底）
//
// 使用场景：
//   - 输入：用户隐向量（FactorStore 查出）
//   - 输出：TopK 岗位（向量点积降序）
type ALSRecall struct {
	Store FactorStore

	// TopK 返回 TopK 个岗位，默认 20
	TopK int
}

func (r *ALSRecall) Name() string        { return "recall.als" }
func (r *ALSRecall) Kind() pipeline.Kind { return pipeline.KindRecall }

// Process 实现 Node 接口，直接调用 Recall
func (r *ALSRecall) Process(
	ctx context.Context,
	rctx *core.RecommendContext,
	_ []*core.Item,
) ([]*core.Item, error) {
	return r.Recall(ctx, rctx)
}

// Recall 实现 Source 接口
func (r *ALSRecall) Recall(
	ctx context.Context,
	rctx *core.RecommendContext,
) ([]*core.Item, error) {
	if r.Store == nil || rctx == nil || rctx.UserID == 0 {
		return nil, nil
	}

	userVector, err := r.Store.GetUserVector(ctx, rctx.UserID)
	if err != nil {
		return nil, err
	}
	if len(userVector) == 0 {
		// 冷启动用户：没有隐向量，召回为空
		return nil, nil
	}

	allItemVectors, err := r.Store.GetAllItemVectors(ctx)
	if err != nil {
		return nil, err
	}

	type scoredJob struct {
		jobID int64
		score float64
	}
	scores := make([]scoredJob, 0, len(allItemVectors))
	for jobID, itemVector := range allItemVectors {
		scores = append(scores, scoredJob{
			jobID: jobID,
			score: als.Dot(userVector, itemVector),
		})
	}

	// 排序取 TopK
	topK := r.TopK
	if topK <= 0 {
		topK = 20
	}
	if len(scores) > topK {
		for i := 0; i < topK; i++ {
			maxIdx := i
			for j := i + 1; j < len(scores); j++ {
				if scores[j].score > scores[maxIdx].score {
					maxIdx = j
				}
			}
			scores[i], scores[maxIdx] = scores[maxIdx], scores[i]
		}
		scores = scores[:topK]
	} else {
		// 不足 TopK 也保证降序输出
		for i := 0; i < len(scores); i++ {
			maxIdx := i
			for j := i + 1; j < len(scores); j++ {
				if scores[j].score > scores[maxIdx].score {
					maxIdx = j
				}
			}
			scores[i], scores[maxIdx] = scores[maxIdx], scores[i]
		}
	}

	out := make([]*core.Item, 0, len(scores))
	for _, s := range scores {
		it := core.NewItem(s.jobID)
		it.Score = s.score
		it.PutLabel("recall_source", utils.Label{Value: "als", Source: "recall"})
		out = append(out, it)
	}
	return out, nil
}

// ModelFactorStore 是进程内 FactorStore：直接持有训练产出的模型与索引，
// 不经过任何外部存储。单机部署（启动即训练）用它即可。
type ModelFactorStore struct {
	Model *als.Model
	Index *matrix.Index
}

func (s *ModelFactorStore) GetUserVector(_ context.Context, userID int64) ([]float64, error) {
	row, ok := s.Index.UserPos(userID)
	if !ok {
		return []float64{}, nil
	}
	return s.Model.UserVector(row), nil
}

func (s *ModelFactorStore) GetItemVector(_ context.Context, jobID int64) ([]float64, error) {
	col, ok := s.Index.JobPos(jobID)
	if !ok {
		return []float64{}, nil
	}
	return s.Model.ItemVector(col), nil
}

func (s *ModelFactorStore) GetAllItemVectors(_ context.Context) (map[int64][]float64, error) {
	out := make(map[int64][]float64, s.Index.NumJobs())
	for col := 0; col < s.Index.NumJobs(); col++ {
		out[s.Index.JobAt(col)] = s.Model.ItemVector(col)
	}
	return out, nil
}

var (
	_ Source        = (*ALSRecall)(nil)
	_ pipeline.Node = (*ALSRecall)(nil)
	_ FactorStore   = (*ModelFactorStore)(nil)
	_ FactorStore   = (*StoreFactorAdapter)(nil)
)
