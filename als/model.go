package als

// Model 是训练完成的隐因子模型：等秩的用户因子与岗位因子矩阵。
// 训练产出后不可变（没有增量更新路径），仅用于打分/排序查询，
// 因此可以被任意多个 goroutine 无锁并发读取。
type Model struct {
	// UserFactors 用户隐向量，下标 = Index 中的行坐标
	UserFactors [][]float64

	// ItemFactors 岗位隐向量，下标 = Index 中的列坐标
	ItemFactors [][]float64

	// Rank 隐向量维度
	Rank int
}

// Predict 返回 (用户行坐标, 岗位列坐标) 的预测分数：用户向量 · 岗位向量。
func (m *Model) Predict(row, col int) float64 {
	return Dot(m.UserFactors[row], m.ItemFactors[col])
}

// UserVector 返回指定行坐标的用户隐向量（调用方不得修改）。
func (m *Model) UserVector(row int) []float64 { return m.UserFactors[row] }

// ItemVector 返回指定列坐标的岗位隐向量（调用方不得修改）。
func (m *Model) ItemVector(col int) []float64 { return m.ItemFactors[col] }

// Dot 计算两个向量的点积。
func Dot(a, b []float64) float64 {
	if len(a) != len(b) {
		return 0
	}
	var sum float64
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}
