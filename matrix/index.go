package matrix

import (
	"sort"

	"github.com/rushteam/jobrec/activity"
)

// Index 把参与交互的用户与岗位映射为稠密矩阵坐标。
//
// Users/Jobs 是升序去重后的 ID 序列，ID 在序列中的下标（0 起）即矩阵
// 行/列坐标。同一三元组集合构建出的 Index 完全一致（确定性）：矩阵坐标
// 与推荐结果的 ID 还原都依赖这份位置稳定性。
type Index struct {
	Users []int64
	Jobs  []int64

	userPos map[int64]int
	jobPos  map[int64]int
}

// BuildIndex 从三元组构建实体索引。
func BuildIndex(triples []activity.UserJobScore) *Index {
	userSet := make(map[int64]struct{})
	jobSet := make(map[int64]struct{})
	for _, t := range triples {
		userSet[t.UserID] = struct{}{}
		jobSet[t.JobID] = struct{}{}
	}

	ix := &Index{
		Users:   make([]int64, 0, len(userSet)),
		Jobs:    make([]int64, 0, len(jobSet)),
		userPos: make(map[int64]int, len(userSet)),
		jobPos:  make(map[int64]int, len(jobSet)),
	}
	for id := range userSet {
		ix.Users = append(ix.Users, id)
	}
	for id := range jobSet {
		ix.Jobs = append(ix.Jobs, id)
	}
	sort.Slice(ix.Users, func(i, j int) bool { return ix.Users[i] < ix.Users[j] })
	sort.Slice(ix.Jobs, func(i, j int) bool { return ix.Jobs[i] < ix.Jobs[j] })

	for pos, id := range ix.Users {
		ix.userPos[id] = pos
	}
	for pos, id := range ix.Jobs {
		ix.jobPos[id] = pos
	}
	return ix
}

// UserPos 返回用户的矩阵行坐标；用户未参与任何交互时返回 false（冷启动）。
func (ix *Index) UserPos(userID int64) (int, bool) {
	pos, ok := ix.userPos[userID]
	return pos, ok
}

// JobPos 返回岗位的矩阵列坐标；岗位未参与任何交互时返回 false。
func (ix *Index) JobPos(jobID int64) (int, bool) {
	pos, ok := ix.jobPos[jobID]
	return pos, ok
}

// UserAt 返回指定行坐标对应的用户 ID。
func (ix *Index) UserAt(row int) int64 { return ix.Users[row] }

// JobAt 返回指定列坐标对应的岗位 ID。
func (ix *Index) JobAt(col int) int64 { return ix.Jobs[col] }

// NumUsers 返回参与交互的用户数（矩阵行数）。
func (ix *Index) NumUsers() int { return len(ix.Users) }

// NumJobs 返回参与交互的岗位数（矩阵列数）。
func (ix *Index) NumJobs() int { return len(ix.Jobs) }
