package dsl

import (
	"fmt"
	"sync"

	"github.com/google/cel-go/cel"

	"github.com/BDP-team7/BDP-team7/core"
)

var (
	// celEnv 是全局的 CEL 环境，线程安全，可复用
	celEnv     *cel.Env
	celEnvOnce sync.Once
)

// initCELEnv 初始化 CEL 环境，定义变量和函数
func initCELEnv() (*cel.Env, error) {
	env, err := cel.NewEnv(
		// 定义变量类型
		cel.Variable("product", cel.DynType),
	)
	return env, err
}

// getCELEnv 获取或创建 CEL 环境
func getCELEnv() (*cel.Env, error) {
	var err error
	celEnvOnce.Do(func() {
		celEnv, err = initCELEnv()
	})
	return celEnv, err
}

// Eval 是记录过滤 DSL 解释器，使用 CEL (Common Expression Language) 实现。
// 表达式编译一次，可对全量记录重复求值。
//
// 表达式语法（CEL 标准语法），变量 product 暴露连接后的记录字段：
//   - 数值：product.price > 0.0 / product.views >= 1000.0
//   - 字符串：product.brand != "" / product.category == "shoes"
//   - 逻辑：product.price > 0.0 && product.rating >= 3.0
//
// 注意：标签派生所用的原始名次从不暴露给表达式（打标后即被丢弃）。
type Eval struct {
	env *cel.Env
	prg cel.Program
}

// NewEval 编译表达式并返回可复用的解释器。空表达式合法，对所有记录恒为 true。
func NewEval(expr string) (*Eval, error) {
	env, err := getCELEnv()
	if err != nil {
		return nil, fmt.Errorf("cel env: %w", err)
	}
	e := &Eval{env: env}
	if expr == "" {
		return e, nil
	}

	ast, issues := env.Compile(expr)
	if issues != nil && issues.Err() != nil {
		return nil, fmt.Errorf("compile error: %v", issues.Err())
	}
	prg, err := env.Program(ast)
	if err != nil {
		return nil, fmt.Errorf("program error: %v", err)
	}
	e.prg = prg
	return e, nil
}

// Evaluate 对单条记录执行表达式，返回布尔结果。
func (e *Eval) Evaluate(p *core.Product) (bool, error) {
	if e.prg == nil {
		return true, nil
	}

	out, _, err := e.prg.Eval(buildInput(p))
	if err != nil {
		return false, fmt.Errorf("eval error: %v", err)
	}

	result, ok := out.Value().(bool)
	if !ok {
		return false, fmt.Errorf("expression must return boolean, got %T", out.Value())
	}
	return result, nil
}

// buildInput 构建 CEL 表达式的输入数据
func buildInput(p *core.Product) map[string]any {
	product := map[string]any{
		"id":              p.ID,
		"category":        p.Category,
		"brand":           p.Brand,
		"colors":          p.Colors,
		"keywords":        p.Keywords,
		"rating":          p.Rating,
		"rating_count":    p.RatingCount,
		"price":           p.Price,
		"discount_rate":   p.DiscountRate,
		"conversion_rate": p.ConversionRate,
		"trending":        p.Trending,
		"total_sales":     p.TotalSales,
		"views":           p.Views,
		"likes":           p.Likes,
	}
	return map[string]any{"product": product}
}
