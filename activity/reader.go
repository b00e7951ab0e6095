package activity

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/rushteam/jobrec/core"
)

// Source 是活动日志的数据源：惰性、可重放的单遍事件序列。
// 一次 ForEach 是一个完整 pass；实现必须保证多次 ForEach 得到相同序列。
type Source interface {
	Name() string

	// ForEach 对每条事件调用 fn，fn 返回错误时中止整个 pass。
	ForEach(ctx context.Context, fn func(Event) error) error
}

// JSONLSource 从行分隔 JSON 文件读取活动事件，每行一个对象：
//
//	{"user_id": 65794, "job_id": 16588, "type": "impression"}
//
// 每次 ForEach 重新打开文件，从头读取（可重放）。
//
// 错误语义：任意一行非法 JSON 或缺少必需字段（user_id/job_id/type）
// 都是 MALFORMED_RECORD 致命错误——损坏的事件日志意味着所有派生数据
// 不可信，不做逐行跳过。
type JSONLSource struct {
	Path string
}

func (s *JSONLSource) Name() string { return "activity.jsonl" }

// rawEvent 用指针字段区分“字段缺失”与“零值”。
type rawEvent struct {
	UserID *int64  `json:"user_id"`
	JobID  *int64  `json:"job_id"`
	Type   *string `json:"type"`
}

func (s *JSONLSource) ForEach(ctx context.Context, fn func(Event) error) error {
	f, err := os.Open(s.Path)
	if err != nil {
		return fmt.Errorf("open activity log: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	// 单行上限 1MB，活动事件远小于此
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	line := 0
	for scanner.Scan() {
		line++
		if err := ctx.Err(); err != nil {
			return err
		}

		var raw rawEvent
		if err := json.Unmarshal(scanner.Bytes(), &raw); err != nil {
			return core.NewDomainError(core.ModuleActivity, core.ErrorCodeMalformedRecord,
				fmt.Sprintf("activity: malformed record at line %d: %v", line, err))
		}
		if raw.UserID == nil || raw.JobID == nil || raw.Type == nil {
			return core.NewDomainError(core.ModuleActivity, core.ErrorCodeMalformedRecord,
				fmt.Sprintf("activity: malformed record at line %d: missing required field", line))
		}

		ev := Event{
			UserID: *raw.UserID,
			JobID:  *raw.JobID,
			Type:   Type(*raw.Type),
		}
		if err := fn(ev); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read activity log: %w", err)
	}
	return nil
}

// SliceSource 是内存实现的 Source，用于测试/原型。
type SliceSource struct {
	Events []Event
}

func (s *SliceSource) Name() string { return "activity.slice" }

func (s *SliceSource) ForEach(ctx context.Context, fn func(Event) error) error {
	for _, ev := range s.Events {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := fn(ev); err != nil {
			return err
		}
	}
	return nil
}

var (
	_ Source = (*JSONLSource)(nil)
	_ Source = (*SliceSource)(nil)
)
