package rerank

import (
	"context"
	"testing"

	"github.com/rushteam/jobrec/core"
)

func TestTopNNode(t *testing.T) {
	items := []*core.Item{core.NewItem(1), core.NewItem(2), core.NewItem(3)}

	tests := []struct {
		name string
		n    int
		want int
	}{
		{name: "truncate", n: 2, want: 2},
		{name: "no truncation when n is zero", n: 0, want: 3},
		{name: "no truncation when n exceeds items", n: 10, want: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node := &TopNNode{N: tt.n}
			out, err := node.Process(context.Background(), nil, items)
			if err != nil {
				t.Fatalf("Process() error = %v", err)
			}
			if len(out) != tt.want {
				t.Errorf("len(out) = %d, want %d", len(out), tt.want)
			}
		})
	}
}
