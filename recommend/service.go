package recommend

import (
	"context"
	"math"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/rushteam/jobrec/als"
	"github.com/rushteam/jobrec/matrix"
)

// JobScore 是一条推荐结果：岗位与预测分数。
type JobScore struct {
	JobID int64   `json:"job_id"`
	Score float64 `json:"score"`
}

// DefaultTopN 各查询接口的默认返回条数。
const DefaultTopN = 10

// Service 是只读的推荐查询服务。
//
// 持有启动期发布的三件套：隐因子模型、交互矩阵、实体索引。三者发布后
// 不可变，所有查询都是无锁只读，可任意并发。
//
// 未知实体不是错误：查询方无法预知训练时的实体全集，未知 user_id /
// job_id 一律返回空结果（冷启动的常规情形）。
type Service struct {
	Model  *als.Model
	Matrix *matrix.CSR
	Index  *matrix.Index

	// MaxConcurrent 批量查询的最大并发数，默认 8
	MaxConcurrent int
}

// NewService 组装推荐服务。
func NewService(model *als.Model, m *matrix.CSR, ix *matrix.Index) *Service {
	return &Service{Model: model, Matrix: m, Index: ix}
}

// RecommendForUser 返回单个用户的 TopN 岗位（分数降序）。
//
// 语义：
//   - 未知用户返回空列表（nil error）
//   - 不过滤用户已交互过的岗位（刻意为之：重复曝光由外层策略决定）
//   - 同分岗位的相对顺序不保证（分数序之外不承诺确定性）
//   - n <= 0 时取 DefaultTopN
func (s *Service) RecommendForUser(ctx context.Context, userID int64, n int) ([]JobScore, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if n <= 0 {
		n = DefaultTopN
	}

	row, ok := s.Index.UserPos(userID)
	if !ok {
		return []JobScore{}, nil
	}

	userVec := s.Model.UserVector(row)
	scores := make([]JobScore, 0, s.Index.NumJobs())
	for col := 0; col < s.Index.NumJobs(); col++ {
		scores = append(scores, JobScore{
			JobID: s.Index.JobAt(col),
			Score: als.Dot(userVec, s.Model.ItemVector(col)),
		})
	}
	return topN(scores, n), nil
}

// RecommendForUsers 批量查询多个用户的 TopN 岗位。
//
// 批量只是性能优化，不改变语义：每个已知用户的结果与单独调用
// RecommendForUser 完全一致。未知用户被静默跳过——结果 map 的 key
// 恰好是输入中出现在训练实体集里的那部分用户。
func (s *Service) RecommendForUsers(ctx context.Context, userIDs []int64, n int) (map[int64][]JobScore, error) {
	if n <= 0 {
		n = DefaultTopN
	}

	maxConcurrent := s.MaxConcurrent
	if maxConcurrent <= 0 {
		maxConcurrent = 8
	}

	var (
		mu     sync.Mutex
		out    = make(map[int64][]JobScore)
		eg, gc = errgroup.WithContext(ctx)
	)
	eg.SetLimit(maxConcurrent)

	for _, userID := range userIDs {
		if _, ok := s.Index.UserPos(userID); !ok {
			continue // 未知用户不出现在结果里
		}
		uid := userID
		eg.Go(func() error {
			recs, err := s.RecommendForUser(gc, uid, n)
			if err != nil {
				return err
			}
			mu.Lock()
			out[uid] = recs
			mu.Unlock()
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// SimilarJobs 返回岗位因子空间中与 jobID 最相近的 TopN 岗位
// （余弦相似度降序）。
//
// 语义：
//   - 未知岗位返回空列表（nil error）
//   - 查询岗位本身会出现在结果中（与自身的余弦相似度为 1，
//     天然排在最前；是否展示由外层裁剪）
func (s *Service) SimilarJobs(ctx context.Context, jobID int64, n int) ([]JobScore, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if n <= 0 {
		n = DefaultTopN
	}

	col, ok := s.Index.JobPos(jobID)
	if !ok {
		return []JobScore{}, nil
	}

	queryVec := s.Model.ItemVector(col)
	scores := make([]JobScore, 0, s.Index.NumJobs())
	for c := 0; c < s.Index.NumJobs(); c++ {
		scores = append(scores, JobScore{
			JobID: s.Index.JobAt(c),
			Score: cosineSimilarity(queryVec, s.Model.ItemVector(c)),
		})
	}
	return topN(scores, n), nil
}

// topN 选出分数最高的 n 条（分数降序）。
// 候选远多于 n 时做部分选择排序即可，避免整体排序。
func topN(scores []JobScore, n int) []JobScore {
	if len(scores) <= n {
		n = len(scores)
	}
	for i := 0; i < n; i++ {
		maxIdx := i
		for j := i + 1; j < len(scores); j++ {
			if scores[j].Score > scores[maxIdx].Score {
				maxIdx = j
			}
		}
		scores[i], scores[maxIdx] = scores[maxIdx], scores[i]
	}
	return scores[:n]
}

// cosineSimilarity 计算两个向量的余弦相似度，零向量与任何向量的相似度为 0。
func cosineSimilarity(a, b []float64) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}
	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
