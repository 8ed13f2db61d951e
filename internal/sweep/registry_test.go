package sweep

import (
	"context"
	"testing"
)

func TestRegistryFiltersNilAndKeepsOrder(t *testing.T) {
	a := &testJob{name: "a"}
	b := &testJob{name: "b"}
	registry := NewRegistry(a, nil, b)
	registry.Register(nil)
	registry.Register(&testJob{name: "c"})

	jobs := registry.Jobs()
	if len(jobs) != 3 {
		t.Fatalf("expected 3 jobs, got %d", len(jobs))
	}
	for i, want := range []string{"a", "b", "c"} {
		if jobs[i].Name() != want {
			t.Fatalf("position %d: got %q, want %q", i, jobs[i].Name(), want)
		}
	}
}

func TestRegistryJobsReturnsCopy(t *testing.T) {
	registry := NewRegistry(&testJob{name: "a"})
	jobs := registry.Jobs()
	jobs[0] = &testJob{name: "mutated"}
	if registry.Jobs()[0].Name() != "a" {
		t.Fatalf("mutating the returned slice must not affect the registry")
	}
}

type testJob struct {
	name string
	err  error
	runs int
}

func (t *testJob) Name() string { return t.name }

func (t *testJob) Run(context.Context) error {
	t.runs++
	return t.err
}
