package filter

import (
	"context"
	"testing"

	"github.com/rushteam/jobrec/activity"
	"github.com/rushteam/jobrec/core"
	"github.com/rushteam/jobrec/matrix"
	"github.com/rushteam/jobrec/pkg/utils"
)

func TestRuleNodeFiltersByScore(t *testing.T) {
	node, err := NewRuleNode("item.score > 0.5")
	if err != nil {
		t.Fatalf("NewRuleNode() error = %v", err)
	}

	low := core.NewItem(1)
	low.Score = 0.2
	high := core.NewItem(2)
	high.Score = 0.9

	out, err := node.Process(context.Background(), &core.RecommendContext{UserID: 1}, []*core.Item{low, high})
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}
	if len(out) != 1 || out[0].ID != 2 {
		t.Errorf("out = %v, want only item 2", out)
	}
}

func TestRuleNodeLabelAccess(t *testing.T) {
	node, err := NewRuleNode(`label.recall_source == "als"`)
	if err != nil {
		t.Fatal(err)
	}

	fromALS := core.NewItem(1)
	fromALS.PutLabel("recall_source", utils.Label{Value: "als", Source: "recall"})
	fromHot := core.NewItem(2)
	fromHot.PutLabel("recall_source", utils.Label{Value: "hot", Source: "recall"})

	out, err := node.Process(context.Background(), nil, []*core.Item{fromALS, fromHot})
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 1 || out[0].ID != 1 {
		t.Errorf("out = %v, want only item 1", out)
	}
}

func TestRuleNodeEmptyExprKeepsAll(t *testing.T) {
	node, err := NewRuleNode("")
	if err != nil {
		t.Fatal(err)
	}

	items := []*core.Item{core.NewItem(1), core.NewItem(2)}
	out, err := node.Process(context.Background(), nil, items)
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 2 {
		t.Errorf("len(out) = %d, want 2", len(out))
	}
}

func TestRuleNodeInvalidExpr(t *testing.T) {
	if _, err := NewRuleNode("item.score >"); err == nil {
		t.Fatal("expected compile error for invalid expression")
	}
}

func TestSeenJobsFilter(t *testing.T) {
	triples := []activity.UserJobScore{
		{UserID: 1, JobID: 10, Score: 3},
	}
	ix := matrix.BuildIndex(triples)
	m := matrix.Build(triples, ix)

	node := &FilterNode{Filters: []Filter{&SeenJobs{Matrix: m, Index: ix}}}
	rctx := &core.RecommendContext{UserID: 1}

	seen := core.NewItem(10)
	fresh := core.NewItem(20)

	out, err := node.Process(context.Background(), rctx, []*core.Item{seen, fresh})
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}
	if len(out) != 1 || out[0].ID != 20 {
		t.Errorf("out = %v, want only unseen job 20", out)
	}

	// 未知用户不过滤任何岗位
	out, err = node.Process(context.Background(), &core.RecommendContext{UserID: 999},
		[]*core.Item{core.NewItem(10)})
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 1 {
		t.Errorf("len(out) = %d, want 1 for unknown user", len(out))
	}
}
