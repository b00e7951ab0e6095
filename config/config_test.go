package config_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rushteam/jobrec/config"
	_ "github.com/rushteam/jobrec/config/builders"
	"github.com/rushteam/jobrec/core"
	"github.com/rushteam/jobrec/pipeline"
)

const testYAML = `pipeline:
  name: job_feed
  nodes:
    - type: recall.hot
      config:
        ids: [10, 20, 30]
    - type: filter.rule
      config:
        expr: 'item.id != 20'
    - type: rerank.topn
      config:
        n: 1
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pipeline.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestBuildPipelineFromYAML(t *testing.T) {
	cfg, err := pipeline.LoadFromYAML(writeConfig(t, testYAML))
	if err != nil {
		t.Fatalf("LoadFromYAML() error = %v", err)
	}
	if cfg.Pipeline.Name != "job_feed" {
		t.Errorf("name = %q, want job_feed", cfg.Pipeline.Name)
	}

	if err := config.ValidatePipelineConfig(cfg); err != nil {
		t.Fatalf("ValidatePipelineConfig() error = %v", err)
	}

	p, err := cfg.BuildPipeline(config.DefaultFactory())
	if err != nil {
		t.Fatalf("BuildPipeline() error = %v", err)
	}
	if len(p.Nodes) != 3 {
		t.Fatalf("len(Nodes) = %d, want 3", len(p.Nodes))
	}

	items, err := p.Run(context.Background(), &core.RecommendContext{UserID: 1}, nil)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	// hot 召回 [10, 20, 30] → 过滤 20 → topn 1
	if len(items) != 1 || items[0].ID != 10 {
		t.Errorf("items = %v, want single job 10", items)
	}
}

func TestValidateUnknownNodeType(t *testing.T) {
	cfg, err := pipeline.LoadFromYAML(writeConfig(t, `pipeline:
  name: broken
  nodes:
    - type: recall.nonexistent
`))
	if err != nil {
		t.Fatal(err)
	}
	if err := config.ValidatePipelineConfig(cfg); err == nil {
		t.Fatal("expected error for unknown node type")
	}
}

func TestBuildUnknownNodeType(t *testing.T) {
	factory := config.DefaultFactory()
	if _, err := factory.Build("recall.nonexistent", nil); err == nil {
		t.Fatal("expected error for unknown node type")
	}
}

func TestSupportedTypesIncludesBuiltins(t *testing.T) {
	types := config.SupportedTypes()
	want := map[string]bool{
		"recall.hot":     false,
		"recall.fanout":  false,
		"recall.als":     false,
		"filter.rule":    false,
		"rerank.topn":    false,
		"feature.enrich": false,
	}
	for _, tp := range types {
		if _, ok := want[tp]; ok {
			want[tp] = true
		}
	}
	for tp, found := range want {
		if !found {
			t.Errorf("builtin type %q not registered", tp)
		}
	}
}
