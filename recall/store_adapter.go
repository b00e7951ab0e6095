package recall

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/rushteam/jobrec/als"
	"github.com/rushteam/jobrec/core"
	"github.com/rushteam/jobrec/matrix"
)

// StoreFactorAdapter 是基于 core.KeyValueStore 的隐因子存储适配器。
// 从 Redis 等存储中读取用户和岗位的隐向量，供跨进程的在线召回使用
// （训练进程 PublishModel 发布，服务进程查表）。
//
// 存储布局（Hash）：
//
//	用户隐向量：{KeyPrefix}:user，field = 十进制 user_id，value = JSON []float64
//	岗位隐向量：{KeyPrefix}:item，field = 十进制 job_id，value = JSON []float64
type StoreFactorAdapter struct {
	store core.KeyValueStore

	// KeyPrefix 是存储 key 的前缀，默认 "als"
	KeyPrefix string
}

// NewStoreFactorAdapter 创建一个基于 core.KeyValueStore 的隐因子适配器。
func NewStoreFactorAdapter(s core.KeyValueStore, keyPrefix string) *StoreFactorAdapter {
	if keyPrefix == "" {
		keyPrefix = "als"
	}
	return &StoreFactorAdapter{
		store:     s,
		KeyPrefix: keyPrefix,
	}
}

func (a *StoreFactorAdapter) userKey() string { return a.KeyPrefix + ":user" }
func (a *StoreFactorAdapter) itemKey() string { return a.KeyPrefix + ":item" }

func (a *StoreFactorAdapter) GetUserVector(ctx context.Context, userID int64) ([]float64, error) {
	return a.getVector(ctx, a.userKey(), userID)
}

func (a *StoreFactorAdapter) GetItemVector(ctx context.Context, jobID int64) ([]float64, error) {
	return a.getVector(ctx, a.itemKey(), jobID)
}

func (a *StoreFactorAdapter) getVector(ctx context.Context, key string, id int64) ([]float64, error) {
	data, err := a.store.HGet(ctx, key, strconv.FormatInt(id, 10))
	if err != nil {
		if core.IsStoreNotFound(err) {
			return []float64{}, nil
		}
		return nil, err
	}

	var vector []float64
	if err := json.Unmarshal(data, &vector); err != nil {
		return nil, err
	}
	return vector, nil
}

func (a *StoreFactorAdapter) GetAllItemVectors(ctx context.Context) (map[int64][]float64, error) {
	fields, err := a.store.HGetAll(ctx, a.itemKey())
	if err != nil {
		if core.IsStoreNotFound(err) {
			return make(map[int64][]float64), nil
		}
		return nil, err
	}

	out := make(map[int64][]float64, len(fields))
	for field, data := range fields {
		jobID, err := strconv.ParseInt(field, 10, 64)
		if err != nil {
			continue // 非法 field 不中断整批
		}
		var vector []float64
		if err := json.Unmarshal(data, &vector); err != nil {
			continue
		}
		if len(vector) > 0 {
			out[jobID] = vector
		}
	}
	return out, nil
}

// PublishModel 把训练产出的隐因子全量写入适配器背后的存储。
// 训练进程在每次启动构建后调用，覆盖旧因子（field 粒度覆盖）。
func PublishModel(ctx context.Context, a *StoreFactorAdapter, model *als.Model, ix *matrix.Index) error {
	for row := 0; row < ix.NumUsers(); row++ {
		data, err := json.Marshal(model.UserVector(row))
		if err != nil {
			return err
		}
		field := strconv.FormatInt(ix.UserAt(row), 10)
		if err := a.store.HSet(ctx, a.userKey(), field, data); err != nil {
			return err
		}
	}
	for col := 0; col < ix.NumJobs(); col++ {
		data, err := json.Marshal(model.ItemVector(col))
		if err != nil {
			return err
		}
		field := strconv.FormatInt(ix.JobAt(col), 10)
		if err := a.store.HSet(ctx, a.itemKey(), field, data); err != nil {
			return err
		}
	}
	return nil
}

// PublishHotJobs 按全局交互量把岗位写入有序集合，供 Hot 召回的 ZRange 使用。
// score = 该岗位列上所有用户的隐式分数之和。
func PublishHotJobs(ctx context.Context, s core.KeyValueStore, key string, m *matrix.CSR, ix *matrix.Index) error {
	colSum := make([]float64, ix.NumJobs())
	for row := 0; row < ix.NumUsers(); row++ {
		cols, vals := m.Row(row)
		for i, c := range cols {
			colSum[c] += vals[i]
		}
	}
	for col := 0; col < ix.NumJobs(); col++ {
		member := strconv.FormatInt(ix.JobAt(col), 10)
		if err := s.ZAdd(ctx, key, colSum[col], member); err != nil {
			return err
		}
	}
	return nil
}
