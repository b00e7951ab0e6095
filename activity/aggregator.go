package activity

import (
	"context"
	"sort"
)

// Pair 是 (user_id, job_id) 组合键。
type Pair struct {
	UserID int64
	JobID  int64
}

// PairCounts 记录一个 (user, job) 组合上的曝光与跳转次数。
// 两个计数从 0 开始单调递增，仅在聚合阶段存在。
type PairCounts struct {
	Impressions int
	Redirects   int
}

// Counts 是一次完整聚合的结果。
//
// 未知事件类型不计入任何组合，按类型计数后上报（数据质量信号，非错误）。
type Counts struct {
	pairs map[Pair]PairCounts

	// Events 消费的事件总数（含未知类型）
	Events int

	// UnknownTypes 未知事件类型 → 出现次数
	UnknownTypes map[string]int
}

// Aggregate 单遍消费活动事件，按 (user, job) 聚合曝光/跳转计数。
// 结果与事件顺序无关。日志损坏（MALFORMED_RECORD）时整体失败。
func Aggregate(ctx context.Context, src Source) (*Counts, error) {
	c := &Counts{
		pairs:        make(map[Pair]PairCounts),
		UnknownTypes: make(map[string]int),
	}

	err := src.ForEach(ctx, func(ev Event) error {
		c.Events++
		key := Pair{UserID: ev.UserID, JobID: ev.JobID}
		switch ev.Type {
		case TypeImpression:
			pc := c.pairs[key]
			pc.Impressions++
			c.pairs[key] = pc
		case TypeRedirect:
			pc := c.pairs[key]
			pc.Redirects++
			c.pairs[key] = pc
		default:
			c.UnknownTypes[string(ev.Type)]++
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return c, nil
}

// Len 返回有计数的 (user, job) 组合数。
func (c *Counts) Len() int { return len(c.pairs) }

// Get 返回指定组合的计数。
func (c *Counts) Get(userID, jobID int64) (PairCounts, bool) {
	pc, ok := c.pairs[Pair{UserID: userID, JobID: jobID}]
	return pc, ok
}

// Triples 对每个组合计算隐式分数，产出三元组列表。
// 零分组合（理论上只有曝光跳转都为 0，聚合产物中不存在）被丢弃。
// 输出按 (user_id, job_id) 升序排序，保证多次调用结果一致。
func (c *Counts) Triples() []UserJobScore {
	out := make([]UserJobScore, 0, len(c.pairs))
	for key, pc := range c.pairs {
		score := ImplicitScore(pc.Impressions, pc.Redirects)
		if score == 0 {
			continue
		}
		out = append(out, UserJobScore{
			UserID: key.UserID,
			JobID:  key.JobID,
			Score:  score,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].UserID != out[j].UserID {
			return out[i].UserID < out[j].UserID
		}
		return out[i].JobID < out[j].JobID
	})
	return out
}
