package matrix

import (
	"sort"

	"github.com/rushteam/jobrec/activity"
)

// CSR 是按行压缩（Compressed Sparse Row）存储的交互矩阵。
//
// 行 = Index.Users，列 = Index.Jobs，单元格 = 隐式分数，其余为 0。
// 构建完成后只读；训练前的置信度加权通过 Scale 产生副本，不修改原矩阵。
// 行切片（Row）是 O(行内非零数) 的，服务于单用户交互向量查询。
type CSR struct {
	rows, cols int
	rowPtr     []int
	colInd     []int
	values     []float64

	// DuplicatePairs 构建时发现的重复 (user, job) 三元组数。
	// 聚合之后理论上不会出现；出现时按“后写覆盖”处理并在此计数，
	// 作为数据质量信号暴露。
	DuplicatePairs int
}

// Build 将三元组按实体索引物化为 CSR 矩阵。
// 索引中不存在的 ID 不应出现在三元组里（BuildIndex 与 Build 使用同一份
// 三元组时天然成立），出现时该三元组被跳过。
func Build(triples []activity.UserJobScore, ix *Index) *CSR {
	m := &CSR{
		rows: ix.NumUsers(),
		cols: ix.NumJobs(),
	}

	// 先按行收集（列 → 值），再按列序写入 CSR
	rowCells := make([]map[int]float64, m.rows)
	for _, t := range triples {
		r, ok := ix.UserPos(t.UserID)
		if !ok {
			continue
		}
		c, ok := ix.JobPos(t.JobID)
		if !ok {
			continue
		}
		if rowCells[r] == nil {
			rowCells[r] = make(map[int]float64)
		}
		if _, exists := rowCells[r][c]; exists {
			m.DuplicatePairs++
		}
		rowCells[r][c] = float64(t.Score) // 重复时后写覆盖
	}

	nnz := 0
	for _, cells := range rowCells {
		nnz += len(cells)
	}
	m.rowPtr = make([]int, m.rows+1)
	m.colInd = make([]int, 0, nnz)
	m.values = make([]float64, 0, nnz)

	for r := 0; r < m.rows; r++ {
		cells := rowCells[r]
		cols := make([]int, 0, len(cells))
		for c := range cells {
			cols = append(cols, c)
		}
		sort.Ints(cols)
		for _, c := range cols {
			m.colInd = append(m.colInd, c)
			m.values = append(m.values, cells[c])
		}
		m.rowPtr[r+1] = len(m.colInd)
	}
	return m
}

// Shape 返回矩阵形状 (行数, 列数)。
func (m *CSR) Shape() (rows, cols int) { return m.rows, m.cols }

// NNZ 返回非零单元格数。
func (m *CSR) NNZ() int { return len(m.values) }

// At 返回单元格 (i, j) 的值，未存储的单元格为 0。
func (m *CSR) At(i, j int) float64 {
	start, end := m.rowPtr[i], m.rowPtr[i+1]
	// 行内列坐标有序，二分定位
	lo, hi := start, end
	for lo < hi {
		mid := (lo + hi) / 2
		if m.colInd[mid] < j {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	if lo < end && m.colInd[lo] == j {
		return m.values[lo]
	}
	return 0
}

// Row 返回第 i 行的非零单元格（列坐标升序）。
// 返回的切片直接引用内部存储，调用方不得修改。
func (m *CSR) Row(i int) (cols []int, vals []float64) {
	start, end := m.rowPtr[i], m.rowPtr[i+1]
	return m.colInd[start:end], m.values[start:end]
}

// Scale 返回整体乘以 gain 的副本（置信度加权，训练前的预处理）。
func (m *CSR) Scale(gain float64) *CSR {
	out := &CSR{
		rows:           m.rows,
		cols:           m.cols,
		rowPtr:         m.rowPtr, // 结构不变，可共享
		colInd:         m.colInd,
		values:         make([]float64, len(m.values)),
		DuplicatePairs: m.DuplicatePairs,
	}
	for i, v := range m.values {
		out.values[i] = v * gain
	}
	return out
}

// Transpose 返回转置矩阵（列压缩视角），供按列迭代的求解步骤使用。
func (m *CSR) Transpose() *CSR {
	t := &CSR{
		rows:   m.cols,
		cols:   m.rows,
		rowPtr: make([]int, m.cols+1),
		colInd: make([]int, len(m.colInd)),
		values: make([]float64, len(m.values)),
	}

	// 计数每列的非零数
	for _, c := range m.colInd {
		t.rowPtr[c+1]++
	}
	for i := 1; i <= m.cols; i++ {
		t.rowPtr[i] += t.rowPtr[i-1]
	}

	next := make([]int, m.cols)
	copy(next, t.rowPtr[:m.cols])
	for r := 0; r < m.rows; r++ {
		for idx := m.rowPtr[r]; idx < m.rowPtr[r+1]; idx++ {
			c := m.colInd[idx]
			pos := next[c]
			t.colInd[pos] = r
			t.values[pos] = m.values[idx]
			next[c]++
		}
	}
	return t
}
