package pipeline

import (
	"context"
	"errors"
	"testing"

	"github.com/rushteam/jobrec/core"
)

type appendNode struct {
	name string
	id   int64
	err  error
}

func (n *appendNode) Name() string { return n.name }
func (n *appendNode) Kind() Kind   { return KindRecall }

func (n *appendNode) Process(
	_ context.Context,
	_ *core.RecommendContext,
	items []*core.Item,
) ([]*core.Item, error) {
	if n.err != nil {
		return nil, n.err
	}
	return append(items, core.NewItem(n.id)), nil
}

func TestPipelineRunsNodesInOrder(t *testing.T) {
	p := &Pipeline{Nodes: []Node{
		&appendNode{name: "a", id: 1},
		&appendNode{name: "b", id: 2},
	}}

	items, err := p.Run(context.Background(), &core.RecommendContext{UserID: 1}, nil)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if len(items) != 2 || items[0].ID != 1 || items[1].ID != 2 {
		t.Errorf("items = %v, want [1 2] in order", items)
	}
}

func TestPipelineStopsOnError(t *testing.T) {
	boom := errors.New("boom")
	p := &Pipeline{Nodes: []Node{
		&appendNode{name: "a", id: 1},
		&appendNode{name: "fail", err: boom},
		&appendNode{name: "c", id: 3},
	}}

	_, err := p.Run(context.Background(), nil, nil)
	if !errors.Is(err, boom) {
		t.Errorf("Run() error = %v, want boom", err)
	}
}
