package matrix

import (
	"testing"

	"github.com/rushteam/jobrec/activity"
)

func TestBuildIndexSortedUnique(t *testing.T) {
	triples := []activity.UserJobScore{
		{UserID: 65794, JobID: 16588, Score: 3},
		{UserID: 31004, JobID: 20515, Score: 1},
		{UserID: 65794, JobID: 20515, Score: 2},
	}

	ix := BuildIndex(triples)

	wantUsers := []int64{31004, 65794}
	wantJobs := []int64{16588, 20515}

	if len(ix.Users) != len(wantUsers) {
		t.Fatalf("NumUsers = %d, want %d", len(ix.Users), len(wantUsers))
	}
	for i, id := range wantUsers {
		if ix.Users[i] != id {
			t.Errorf("Users[%d] = %d, want %d", i, ix.Users[i], id)
		}
	}
	for i, id := range wantJobs {
		if ix.Jobs[i] != id {
			t.Errorf("Jobs[%d] = %d, want %d", i, ix.Jobs[i], id)
		}
	}
}

func TestIndexPositionsRoundTrip(t *testing.T) {
	triples := []activity.UserJobScore{
		{UserID: 5, JobID: 50, Score: 1},
		{UserID: 3, JobID: 30, Score: 1},
		{UserID: 9, JobID: 90, Score: 1},
	}
	ix := BuildIndex(triples)

	for pos, id := range ix.Users {
		got, ok := ix.UserPos(id)
		if !ok || got != pos {
			t.Errorf("UserPos(%d) = (%d, %v), want (%d, true)", id, got, ok, pos)
		}
		if ix.UserAt(pos) != id {
			t.Errorf("UserAt(%d) = %d, want %d", pos, ix.UserAt(pos), id)
		}
	}
	for pos, id := range ix.Jobs {
		got, ok := ix.JobPos(id)
		if !ok || got != pos {
			t.Errorf("JobPos(%d) = (%d, %v), want (%d, true)", id, got, ok, pos)
		}
	}
}

func TestIndexUnknownEntities(t *testing.T) {
	ix := BuildIndex([]activity.UserJobScore{{UserID: 1, JobID: 2, Score: 1}})

	if _, ok := ix.UserPos(999); ok {
		t.Error("UserPos(999) should be unknown")
	}
	if _, ok := ix.JobPos(999); ok {
		t.Error("JobPos(999) should be unknown")
	}
}

func TestIndexDeterministic(t *testing.T) {
	triples := []activity.UserJobScore{
		{UserID: 7, JobID: 70, Score: 1},
		{UserID: 2, JobID: 20, Score: 2},
		{UserID: 4, JobID: 40, Score: 3},
	}
	shuffled := []activity.UserJobScore{triples[2], triples[0], triples[1]}

	a := BuildIndex(triples)
	b := BuildIndex(shuffled)

	for i := range a.Users {
		if a.Users[i] != b.Users[i] {
			t.Errorf("Users[%d] differs: %d vs %d", i, a.Users[i], b.Users[i])
		}
	}
	for i := range a.Jobs {
		if a.Jobs[i] != b.Jobs[i] {
			t.Errorf("Jobs[%d] differs: %d vs %d", i, a.Jobs[i], b.Jobs[i])
		}
	}
}
