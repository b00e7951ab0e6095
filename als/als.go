package als

import (
	"context"
	"math/rand"

	"github.com/rushteam/jobrec/core"
	"github.com/rushteam/jobrec/matrix"
)

// ALS 是隐式反馈交替最小二乘（Alternating Least Squares）训练器。
//
// 核心思想：把用户-岗位交互矩阵分解为用户隐向量和岗位隐向量，
// 预测分数 = 用户隐向量 · 岗位隐向量。
//
// 交互分数被当作置信度权重而非评分（implicit feedback）：
//   - 偏好 p(u,i) = 1（有交互）/ 0（无交互）
//   - 置信度 c(u,i) = 1 + 交互分数 × ConfidenceGain
//
// 交替固定一侧因子，对另一侧逐行求解 k×k 正则化正规方程，
// 迭代固定轮数（不做收敛判定，轮数即预算）。
//
// 工程特征：
//   - 离线训练，在线查表（训练一次，服务期间模型不变）
//   - 固定 Seed 下结果可复现（测试/回滚依赖这一点）
//   - 无超时语义：训练是启动期一次性长操作，需要限时的调用方
//     应在外层包 context 超时，训练在每轮之间响应取消
type ALS struct {
	// Factors 隐向量维度，默认 64
	Factors int

	// Regularization 正则化系数，默认 0.05（<=0 时取默认）
	Regularization float64

	// Iterations 交替迭代轮数，默认 15
	Iterations int

	// ConfidenceGain 置信度增益：训练前将整个矩阵乘以该值，默认 2。
	// 交互计数被视为置信度而非评分，倍数即本部署选定的置信度标尺。
	ConfidenceGain float64

	// Seed 随机初始化种子，默认 42。相同种子 + 相同矩阵 → 相同模型。
	Seed int64
}

// 默认超参数。与调优无关的既有部署取值，按配置项保留而非硬编码不变式。
const (
	DefaultFactors        = 64
	DefaultRegularization = 0.05
	DefaultIterations     = 15
	DefaultConfidenceGain = 2.0
	DefaultSeed           = 42
)

// ErrEmptyMatrix 表示交互矩阵没有行或列，无法分解。
var ErrEmptyMatrix = core.NewDomainError(core.ModuleALS, core.ErrorCodeEmptyMatrix,
	"als: interaction matrix has no rows or columns, nothing to factor")

// Fit 在交互矩阵上训练隐因子模型。
// 矩阵为空（零行或零列）时返回 EMPTY_MATRIX 领域错误。
func (a *ALS) Fit(ctx context.Context, m *matrix.CSR) (*Model, error) {
	rows, cols := m.Shape()
	if rows == 0 || cols == 0 {
		return nil, ErrEmptyMatrix
	}

	factors := a.Factors
	if factors <= 0 {
		factors = DefaultFactors
	}
	reg := a.Regularization
	if reg <= 0 {
		reg = DefaultRegularization
	}
	iterations := a.Iterations
	if iterations <= 0 {
		iterations = DefaultIterations
	}
	gain := a.ConfidenceGain
	if gain <= 0 {
		gain = DefaultConfidenceGain
	}
	seed := a.Seed
	if seed == 0 {
		seed = DefaultSeed
	}

	// 置信度加权副本 + 列视角转置（原矩阵保持只读）
	conf := m.Scale(gain)
	confT := conf.Transpose()

	rng := rand.New(rand.NewSource(seed))
	userFactors := randomFactors(rng, rows, factors)
	itemFactors := randomFactors(rng, cols, factors)

	for it := 0; it < iterations; it++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		// 固定岗位因子解用户因子，再固定用户因子解岗位因子
		solveSide(conf, itemFactors, userFactors, factors, reg)
		solveSide(confT, userFactors, itemFactors, factors, reg)
	}

	return &Model{
		UserFactors: userFactors,
		ItemFactors: itemFactors,
		Rank:        factors,
	}, nil
}

// randomFactors 生成 n×k 的初始因子矩阵，小幅随机值避免对称解。
func randomFactors(rng *rand.Rand, n, k int) [][]float64 {
	out := make([][]float64, n)
	for i := range out {
		row := make([]float64, k)
		for j := range row {
			row[j] = rng.Float64() * 0.01
		}
		out[i] = row
	}
	return out
}

// solveSide 固定 fixed 因子，对 conf 的每一行求解 target 因子。
//
// 单行的正规方程（Hu/Koren/Volinsky）：
//
//	(FᵀF + Σᵢ (cᵢ-1)·fᵢfᵢᵀ + λI) x = Σᵢ cᵢ·fᵢ      cᵢ = 1 + 交互置信度
//
// FᵀF 与所有行共享，先预计算；行内仅对非零项做秩一修正。
func solveSide(conf *matrix.CSR, fixed, target [][]float64, k int, reg float64) {
	gram := gramMatrix(fixed, k, reg)

	n, _ := conf.Shape()
	// A、b 按行复用，避免每行分配
	A := make([][]float64, k)
	for i := range A {
		A[i] = make([]float64, k)
	}
	b := make([]float64, k)

	for r := 0; r < n; r++ {
		cols, vals := conf.Row(r)
		if len(cols) == 0 {
			// 无交互的行没有约束，正则化解为零向量
			for j := 0; j < k; j++ {
				target[r][j] = 0
			}
			continue
		}

		for i := 0; i < k; i++ {
			copy(A[i], gram[i])
			b[i] = 0
		}
		for idx, c := range cols {
			f := fixed[c]
			cu := 1 + vals[idx]
			for i := 0; i < k; i++ {
				fi := f[i]
				b[i] += cu * fi
				w := (cu - 1) * fi
				for j := 0; j < k; j++ {
					A[i][j] += w * f[j]
				}
			}
		}
		solveLinear(A, b, target[r])
	}
}

// gramMatrix 计算 FᵀF + λI。
func gramMatrix(f [][]float64, k int, reg float64) [][]float64 {
	g := make([][]float64, k)
	for i := range g {
		g[i] = make([]float64, k)
	}
	for _, row := range f {
		for i := 0; i < k; i++ {
			ri := row[i]
			for j := 0; j < k; j++ {
				g[i][j] += ri * row[j]
			}
		}
	}
	for i := 0; i < k; i++ {
		g[i][i] += reg
	}
	return g
}

// solveLinear 用列主元高斯消元解 Ax = b，结果写入 x。
// A 与 b 会被原地破坏（调用方每行重建）。
func solveLinear(A [][]float64, b []float64, x []float64) {
	k := len(b)
	for col := 0; col < k; col++ {
		// 选主元
		pivot := col
		for r := col + 1; r < k; r++ {
			if abs(A[r][col]) > abs(A[pivot][col]) {
				pivot = r
			}
		}
		if pivot != col {
			A[col], A[pivot] = A[pivot], A[col]
			b[col], b[pivot] = b[pivot], b[col]
		}
		p := A[col][col]
		if p == 0 {
			// 正则化后的 SPD 矩阵不会出现，稳妥起见跳过该列
			continue
		}
		for r := col + 1; r < k; r++ {
			factor := A[r][col] / p
			if factor == 0 {
				continue
			}
			for c := col; c < k; c++ {
				A[r][c] -= factor * A[col][c]
			}
			b[r] -= factor * b[col]
		}
	}
	// 回代
	for i := k - 1; i >= 0; i-- {
		sum := b[i]
		for j := i + 1; j < k; j++ {
			sum -= A[i][j] * x[j]
		}
		if A[i][i] != 0 {
			x[i] = sum / A[i][i]
		} else {
			x[i] = 0
		}
	}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
