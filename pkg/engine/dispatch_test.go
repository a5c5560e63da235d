package engine_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-itemlist/pkg/engine"
)

func TestDispatch(t *testing.T) {
	f := newFixture(t, `["A","B"]`)

	if _, ok := f.list.Dispatch("add", "C"); !ok {
		t.Fatal("add rejected")
	}
	if _, ok := f.list.Dispatch("add", map[string]any{"b": "E", "a": "D"}); !ok {
		t.Fatal("keyed add rejected")
	}
	if _, ok := f.list.Dispatch("reorder", 4, 0); !ok {
		t.Fatal("reorder rejected")
	}
	if _, ok := f.list.Dispatch("update", 0, "Q"); !ok {
		t.Fatal("update rejected")
	}
	if _, ok := f.list.Dispatch("remove", 1); !ok {
		t.Fatal("remove rejected")
	}

	got, ok := f.list.Dispatch("get")
	if !ok {
		t.Fatal("get rejected")
	}
	if diff := cmp.Diff([]any{"Q", "B", "C", "D"}, got); diff != "" {
		t.Fatalf("items mismatch (-want +got):\n%s", diff)
	}
	raw, ok := f.list.Dispatch("val")
	if !ok || raw != `["Q","B","C","D"]` {
		t.Fatalf("val = %v %v", raw, ok)
	}
	f.assertSynced(t)
}

func TestDispatch_Rejects(t *testing.T) {
	f := newFixture(t, `["A"]`)

	tests := []struct {
		name    string
		command string
		args    []any
	}{
		{name: "private", command: "_updateList"},
		{name: "private trigger", command: "_trigger", args: []any{"change"}},
		{name: "unknown", command: "explode"},
		{name: "empty", command: ""},
		{name: "remove type", command: "remove", args: []any{"0"}},
		{name: "reorder arity", command: "reorder", args: []any{0}},
		{name: "update arity", command: "update", args: []any{0}},
		{name: "val type", command: "val", args: []any{42}},
		{name: "add arity", command: "add"},
		{name: "out of range", command: "remove", args: []any{7}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, ok := f.list.Dispatch(tt.command, tt.args...); ok {
				t.Fatalf("%q accepted", tt.command)
			}
		})
	}
	if diff := cmp.Diff([]any{"A"}, f.list.Items()); diff != "" {
		t.Fatalf("rejected commands changed the list (-want +got):\n%s", diff)
	}
}

func TestDispatch_NotifyFlag(t *testing.T) {
	f := newFixture(t, `[]`)

	if _, ok := f.list.Dispatch("add", "A", false); !ok {
		t.Fatal("add rejected")
	}
	if f.recorder.Count(engine.EventChange) != 0 {
		t.Fatal("trailing false should suppress notification")
	}
	if _, ok := f.list.Dispatch("update", 0, true); !ok {
		t.Fatal("update rejected")
	}
	if diff := cmp.Diff([]any{true}, f.list.Items()); diff != "" {
		t.Fatalf("bool item should be kept for update (-want +got):\n%s", diff)
	}
	if f.recorder.Count(engine.EventChange) != 1 {
		t.Fatalf("expected one change, got %d", f.recorder.Count(engine.EventChange))
	}
}

func TestDispatch_Lifecycle(t *testing.T) {
	f := newFixture(t, `["A"]`)

	if _, ok := f.list.Dispatch("disable"); !ok || f.list.Enabled() {
		t.Fatal("disable failed")
	}
	if _, ok := f.list.Dispatch("enable"); !ok || !f.list.Enabled() {
		t.Fatal("enable failed")
	}
	if _, ok := f.list.Dispatch("destroy"); !ok || !f.list.Destroyed() {
		t.Fatal("destroy failed")
	}
	if _, ok := f.list.Dispatch("add", "B"); ok {
		t.Fatal("add accepted after destroy")
	}
}

func TestGroup_Dispatch(t *testing.T) {
	first := newFixture(t, `["A"]`)
	second := newFixture(t, `["B"]`)
	group := engine.Group{first.list, second.list}

	if _, ok := group.Dispatch("add", "C"); !ok {
		t.Fatal("group add rejected")
	}
	got, ok := group.Dispatch("items")
	if !ok {
		t.Fatal("group items rejected")
	}
	if diff := cmp.Diff([]any{"A", "C"}, got); diff != "" {
		t.Fatalf("first list mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]any{"B", "C"}, second.list.Items()); diff != "" {
		t.Fatalf("second list mismatch (-want +got):\n%s", diff)
	}

	if _, ok := group.Dispatch("remove", 1); !ok {
		t.Fatal("group remove rejected")
	}
	if _, ok := group.Dispatch("remove", 1); ok {
		t.Fatal("group remove should fail once any list rejects it")
	}
	if _, ok := (engine.Group{}).Dispatch("items"); ok {
		t.Fatal("empty group accepted a command")
	}
}
