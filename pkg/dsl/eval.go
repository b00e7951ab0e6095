package dsl

import (
	"fmt"
	"sync"

	"github.com/google/cel-go/cel"

	"github.com/rushteam/jobrec/core"
)

var (
	// celEnv 是全局的 CEL 环境，线程安全，可复用
	celEnv     *cel.Env
	celEnvOnce sync.Once
	celEnvErr  error
)

// initCELEnv 初始化 CEL 环境，定义变量
func initCELEnv() (*cel.Env, error) {
	return cel.NewEnv(
		cel.Variable("item", cel.DynType),
		cel.Variable("label", cel.DynType),
		cel.Variable("rctx", cel.DynType),
	)
}

// getCELEnv 获取或创建 CEL 环境
func getCELEnv() (*cel.Env, error) {
	celEnvOnce.Do(func() {
		celEnv, celEnvErr = initCELEnv()
	})
	return celEnv, celEnvErr
}

// Program 是一条已编译的规则表达式，使用 CEL (Common Expression Language) 实现。
// CEL 是 Google 开发的表达式语言，具有类型安全、高性能、线程安全等特性。
// 编译一次后可并发执行多次 Match。
//
// 表达式语法（CEL 标准语法）：
//   - 数值：item.score > 0.7 / item.score >= 0.5
//   - 标签：label.recall_source == "als"
//   - 逻辑：label.recall_source == "als" && item.score > 0.1
//   - 上下文：rctx.scene == "feed"
//   - 包含：label.recall_source.contains("als")
//
// 注意：has(label.key) 可以用 label.key != null 替代
type Program struct {
	expr string
	prg  cel.Program // 空表达式时为 nil，Match 恒为 true
}

// Compile 编译一条规则表达式。空表达式返回恒真的 Program。
// 编译错误在此处暴露，避免每次请求才发现表达式非法。
func Compile(expr string) (*Program, error) {
	if expr == "" {
		return &Program{}, nil
	}

	env, err := getCELEnv()
	if err != nil {
		return nil, fmt.Errorf("cel env: %w", err)
	}

	ast, issues := env.Compile(expr)
	if issues != nil && issues.Err() != nil {
		return nil, fmt.Errorf("compile error: %v", issues.Err())
	}

	prg, err := env.Program(ast)
	if err != nil {
		return nil, fmt.Errorf("program error: %v", err)
	}

	return &Program{expr: expr, prg: prg}, nil
}

// Expr 返回原始表达式（用于日志/错误提示）。
func (p *Program) Expr() string { return p.expr }

// Match 对单个候选岗位执行表达式，返回布尔结果。
func (p *Program) Match(item *core.Item, rctx *core.RecommendContext) (bool, error) {
	if p.prg == nil {
		return true, nil
	}

	out, _, err := p.prg.Eval(buildInput(item, rctx))
	if err != nil {
		// 对于不存在的 key，CEL 会返回错误
		// 表达式应使用 label.key != null 检查存在性，而不是直接访问
		return false, fmt.Errorf("eval error: %v", err)
	}

	result, ok := out.Value().(bool)
	if !ok {
		return false, fmt.Errorf("expression must return boolean, got %T", out.Value())
	}

	return result, nil
}

// buildInput 构建 CEL 表达式的输入数据
func buildInput(item *core.Item, rctx *core.RecommendContext) map[string]any {
	// 构建 label map
	labels := make(map[string]any)
	labelAccessor := make(map[string]any)
	if item != nil {
		for k, v := range item.Labels {
			labels[k] = map[string]any{
				"value":  v.Value,
				"source": v.Source,
			}
			// label.recall_source 直接返回 value，便于书写
			labelAccessor[k] = v.Value
		}
	}

	itemMap := map[string]any{}
	if item != nil {
		itemMap = map[string]any{
			"id":       item.ID,
			"score":    item.Score,
			"features": item.Features,
			"meta":     item.Meta,
			"labels":   labels,
		}
	}

	rctxMap := map[string]any{}
	if rctx != nil {
		rctxMap = map[string]any{
			"user_id": rctx.UserID,
			"scene":   rctx.Scene,
			"params":  rctx.Params,
		}
	}

	return map[string]any{
		"item":  itemMap,
		"label": labelAccessor,
		"rctx":  rctxMap,
	}
}
