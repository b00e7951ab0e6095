package activity

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rushteam/jobrec/core"
)

func TestAggregateCounts(t *testing.T) {
	src := &SliceSource{Events: []Event{
		{UserID: 65794, JobID: 16588, Type: TypeImpression},
		{UserID: 65794, JobID: 16588, Type: TypeImpression},
		{UserID: 65794, JobID: 16588, Type: TypeRedirect},
		{UserID: 31004, JobID: 20515, Type: TypeImpression},
	}}

	counts, err := Aggregate(context.Background(), src)
	if err != nil {
		t.Fatalf("Aggregate() error = %v", err)
	}

	if counts.Events != 4 {
		t.Errorf("Events = %d, want 4", counts.Events)
	}
	if counts.Len() != 2 {
		t.Errorf("Len() = %d, want 2", counts.Len())
	}

	pc, ok := counts.Get(65794, 16588)
	if !ok {
		t.Fatal("pair (65794, 16588) missing")
	}
	if pc.Impressions != 2 || pc.Redirects != 1 {
		t.Errorf("pair counts = %+v, want {Impressions:2 Redirects:1}", pc)
	}
}

func TestAggregateOrderIndependent(t *testing.T) {
	events := []Event{
		{UserID: 1, JobID: 10, Type: TypeImpression},
		{UserID: 1, JobID: 10, Type: TypeRedirect},
		{UserID: 2, JobID: 10, Type: TypeImpression},
		{UserID: 1, JobID: 20, Type: TypeImpression},
	}
	reversed := make([]Event, len(events))
	for i, ev := range events {
		reversed[len(events)-1-i] = ev
	}

	a, err := Aggregate(context.Background(), &SliceSource{Events: events})
	if err != nil {
		t.Fatal(err)
	}
	b, err := Aggregate(context.Background(), &SliceSource{Events: reversed})
	if err != nil {
		t.Fatal(err)
	}

	ta, tb := a.Triples(), b.Triples()
	if len(ta) != len(tb) {
		t.Fatalf("triple counts differ: %d vs %d", len(ta), len(tb))
	}
	for i := range ta {
		if ta[i] != tb[i] {
			t.Errorf("triple %d differs: %+v vs %+v", i, ta[i], tb[i])
		}
	}
}

func TestAggregateUnknownTypeCounted(t *testing.T) {
	src := &SliceSource{Events: []Event{
		{UserID: 1, JobID: 10, Type: TypeImpression},
		{UserID: 1, JobID: 10, Type: "bookmark"},
		{UserID: 1, JobID: 10, Type: "bookmark"},
	}}

	counts, err := Aggregate(context.Background(), src)
	if err != nil {
		t.Fatalf("Aggregate() error = %v", err)
	}

	if counts.UnknownTypes["bookmark"] != 2 {
		t.Errorf("UnknownTypes[bookmark] = %d, want 2", counts.UnknownTypes["bookmark"])
	}
	pc, _ := counts.Get(1, 10)
	if pc.Impressions != 1 || pc.Redirects != 0 {
		t.Errorf("unknown type leaked into pair counts: %+v", pc)
	}
}

func TestTriplesSortedAndScored(t *testing.T) {
	src := &SliceSource{Events: []Event{
		{UserID: 2, JobID: 30, Type: TypeRedirect},
		{UserID: 1, JobID: 20, Type: TypeImpression},
		{UserID: 1, JobID: 10, Type: TypeImpression},
		{UserID: 1, JobID: 10, Type: TypeRedirect},
	}}

	counts, err := Aggregate(context.Background(), src)
	if err != nil {
		t.Fatal(err)
	}
	triples := counts.Triples()

	want := []UserJobScore{
		{UserID: 1, JobID: 10, Score: 3},
		{UserID: 1, JobID: 20, Score: 1},
		{UserID: 2, JobID: 30, Score: 2},
	}
	if len(triples) != len(want) {
		t.Fatalf("len(triples) = %d, want %d", len(triples), len(want))
	}
	for i := range want {
		if triples[i] != want[i] {
			t.Errorf("triples[%d] = %+v, want %+v", i, triples[i], want[i])
		}
	}
}

func TestJSONLSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "activity.jsonl")
	content := `{"user_id": 65794, "job_id": 16588, "type": "impression"}
{"user_id": 65794, "job_id": 16588, "type": "redirect"}
{"user_id": 31004, "job_id": 20515, "type": "impression"}
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	src := &JSONLSource{Path: path}
	counts, err := Aggregate(context.Background(), src)
	if err != nil {
		t.Fatalf("Aggregate() error = %v", err)
	}
	if counts.Events != 3 {
		t.Errorf("Events = %d, want 3", counts.Events)
	}

	// Source 可重放：第二个 pass 结果一致
	again, err := Aggregate(context.Background(), src)
	if err != nil {
		t.Fatal(err)
	}
	if again.Events != counts.Events || again.Len() != counts.Len() {
		t.Error("second pass differs from first")
	}
}

func TestJSONLSourceMalformed(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "invalid json", content: "{not json}\n"},
		{name: "missing user_id", content: `{"job_id": 1, "type": "impression"}` + "\n"},
		{name: "missing job_id", content: `{"user_id": 1, "type": "impression"}` + "\n"},
		{name: "missing type", content: `{"user_id": 1, "job_id": 2}` + "\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "activity.jsonl")
			if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
				t.Fatal(err)
			}

			_, err := Aggregate(context.Background(), &JSONLSource{Path: path})
			if err == nil {
				t.Fatal("expected error for malformed record")
			}
			if !core.IsMalformedRecord(err) {
				t.Errorf("error = %v, want MALFORMED_RECORD domain error", err)
			}
		})
	}
}
