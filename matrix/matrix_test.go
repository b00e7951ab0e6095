package matrix

import (
	"testing"

	"github.com/rushteam/jobrec/activity"
)

func buildTestMatrix(t *testing.T) (*CSR, *Index) {
	t.Helper()
	triples := []activity.UserJobScore{
		{UserID: 31004, JobID: 20515, Score: 1},
		{UserID: 65794, JobID: 16588, Score: 3},
	}
	ix := BuildIndex(triples)
	return Build(triples, ix), ix
}

func TestBuildShapeAndValues(t *testing.T) {
	m, ix := buildTestMatrix(t)

	rows, cols := m.Shape()
	if rows != 2 || cols != 2 {
		t.Fatalf("Shape() = (%d, %d), want (2, 2)", rows, cols)
	}
	if m.NNZ() != 2 {
		t.Errorf("NNZ() = %d, want 2", m.NNZ())
	}

	// users 升序 [31004, 65794]，jobs 升序 [16588, 20515]
	r0, _ := ix.UserPos(31004)
	c1, _ := ix.JobPos(20515)
	if got := m.At(r0, c1); got != 1 {
		t.Errorf("At(31004, 20515) = %v, want 1", got)
	}
	r1, _ := ix.UserPos(65794)
	c0, _ := ix.JobPos(16588)
	if got := m.At(r1, c0); got != 3 {
		t.Errorf("At(65794, 16588) = %v, want 3", got)
	}
	if got := m.At(r0, c0); got != 0 {
		t.Errorf("At(31004, 16588) = %v, want 0", got)
	}
}

func TestRowSlice(t *testing.T) {
	m, ix := buildTestMatrix(t)

	r1, _ := ix.UserPos(65794)
	cols, vals := m.Row(r1)
	if len(cols) != 1 || len(vals) != 1 {
		t.Fatalf("Row() lengths = (%d, %d), want (1, 1)", len(cols), len(vals))
	}
	c0, _ := ix.JobPos(16588)
	if cols[0] != c0 || vals[0] != 3 {
		t.Errorf("Row() = (%v, %v), want ([%d], [3])", cols, vals, c0)
	}
}

func TestScaleLeavesOriginal(t *testing.T) {
	m, ix := buildTestMatrix(t)
	r1, _ := ix.UserPos(65794)
	c0, _ := ix.JobPos(16588)

	scaled := m.Scale(2)
	if got := scaled.At(r1, c0); got != 6 {
		t.Errorf("scaled At = %v, want 6", got)
	}
	if got := m.At(r1, c0); got != 3 {
		t.Errorf("original At = %v, want 3 (Scale must not mutate)", got)
	}
}

func TestDuplicateTriplesLastWriteWins(t *testing.T) {
	triples := []activity.UserJobScore{
		{UserID: 1, JobID: 10, Score: 2},
		{UserID: 1, JobID: 10, Score: 5},
	}
	ix := BuildIndex(triples)
	m := Build(triples, ix)

	if m.DuplicatePairs != 1 {
		t.Errorf("DuplicatePairs = %d, want 1", m.DuplicatePairs)
	}
	r, _ := ix.UserPos(1)
	c, _ := ix.JobPos(10)
	if got := m.At(r, c); got != 5 {
		t.Errorf("At = %v, want 5 (last write wins)", got)
	}
	if m.NNZ() != 1 {
		t.Errorf("NNZ = %d, want 1", m.NNZ())
	}
}

func TestTranspose(t *testing.T) {
	triples := []activity.UserJobScore{
		{UserID: 1, JobID: 10, Score: 2},
		{UserID: 1, JobID: 20, Score: 3},
		{UserID: 2, JobID: 10, Score: 4},
	}
	ix := BuildIndex(triples)
	m := Build(triples, ix)
	tr := m.Transpose()

	rows, cols := m.Shape()
	trRows, trCols := tr.Shape()
	if trRows != cols || trCols != rows {
		t.Fatalf("transpose shape = (%d, %d), want (%d, %d)", trRows, trCols, cols, rows)
	}
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if m.At(i, j) != tr.At(j, i) {
				t.Errorf("At(%d, %d) = %v, transpose At(%d, %d) = %v",
					i, j, m.At(i, j), j, i, tr.At(j, i))
			}
		}
	}
	if tr.NNZ() != m.NNZ() {
		t.Errorf("transpose NNZ = %d, want %d", tr.NNZ(), m.NNZ())
	}
}

func TestEmptyMatrix(t *testing.T) {
	ix := BuildIndex(nil)
	m := Build(nil, ix)

	rows, cols := m.Shape()
	if rows != 0 || cols != 0 {
		t.Errorf("Shape() = (%d, %d), want (0, 0)", rows, cols)
	}
	if m.NNZ() != 0 {
		t.Errorf("NNZ() = %d, want 0", m.NNZ())
	}
}
