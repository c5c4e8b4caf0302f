package featureset

import (
	"reflect"
	"strconv"
	"testing"
)

func siteTable() Table {
	return Table{
		"auth":      {"database"},
		"blog":      {"auth", "database"},
		"chat":      {"database"},
		"dashboard": {},
		"database":  {},
	}
}

func features(fs ...Feature) []Feature { return fs }

func TestResolveClosureWithWarnings(t *testing.T) {
	res := Resolve(siteTable(), features("blog"))

	if res.Failed() {
		t.Fatalf("unexpected problems: %v", res.Problems)
	}
	want := features("database", "auth", "blog")
	if !reflect.DeepEqual(res.Features, want) {
		t.Fatalf("features = %v, want %v", res.Features, want)
	}

	wantWarn := []Warning{
		{Feature: "database", RequiredBy: "auth"},
		{Feature: "auth", RequiredBy: "blog"},
	}
	if !reflect.DeepEqual(res.Warnings, wantWarn) {
		t.Fatalf("warnings = %v, want %v", res.Warnings, wantWarn)
	}
}

func TestResolveLeafFeature(t *testing.T) {
	res := Resolve(siteTable(), features("dashboard"))

	if res.Failed() {
		t.Fatalf("unexpected problems: %v", res.Problems)
	}
	if !reflect.DeepEqual(res.Features, features("dashboard")) {
		t.Fatalf("features = %v", res.Features)
	}
	if len(res.Warnings) != 0 {
		t.Fatalf("warnings = %v, want none", res.Warnings)
	}
}

func TestResolveUnknownFeature(t *testing.T) {
	res := Resolve(siteTable(), features("ghost"))

	if !res.Failed() {
		t.Fatal("expected resolution to fail")
	}
	if len(res.Features) != 0 {
		t.Fatalf("features = %v, want none", res.Features)
	}
	if len(res.Problems) != 1 {
		t.Fatalf("problems = %v, want exactly one", res.Problems)
	}
	p := res.Problems[0]
	if p.Kind != ProblemUnknown || p.Feature != "ghost" {
		t.Fatalf("problem = %+v", p)
	}
	if got := p.String(); got != `unknown module "ghost"` {
		t.Fatalf("String() = %q", got)
	}
}

func TestResolveEmptyRequest(t *testing.T) {
	res := Resolve(siteTable(), nil)

	if res.Failed() || len(res.Features) != 0 || len(res.Warnings) != 0 {
		t.Fatalf("resolution not empty: %+v", res)
	}
}

func TestResolveWarnsOnceForSharedDependency(t *testing.T) {
	res := Resolve(siteTable(), features("auth", "blog"))

	if res.Failed() {
		t.Fatalf("unexpected problems: %v", res.Problems)
	}
	want := features("database", "auth", "blog")
	if !reflect.DeepEqual(res.Features, want) {
		t.Fatalf("features = %v, want %v", res.Features, want)
	}

	count := 0
	for _, w := range res.Warnings {
		if w.Feature == "database" {
			count++
		}
	}
	if count != 1 {
		t.Fatalf("database warned %d times, want once: %v", count, res.Warnings)
	}
}

func TestResolveDeduplicatesRequest(t *testing.T) {
	res := Resolve(siteTable(), features("chat", "chat", "chat"))

	if !reflect.DeepEqual(res.Features, features("database", "chat")) {
		t.Fatalf("features = %v", res.Features)
	}
}

func TestResolveNoWarningForRequestedRoot(t *testing.T) {
	// database requested before anything depends on it: no warning
	res := Resolve(siteTable(), features("database", "auth"))

	if len(res.Warnings) != 0 {
		t.Fatalf("warnings = %v, want none", res.Warnings)
	}
	if !reflect.DeepEqual(res.Features, features("database", "auth")) {
		t.Fatalf("features = %v", res.Features)
	}
}

func TestResolveIdempotent(t *testing.T) {
	first := Resolve(siteTable(), features("blog", "chat"))
	if first.Failed() {
		t.Fatalf("unexpected problems: %v", first.Problems)
	}

	second := Resolve(siteTable(), first.Features)
	if second.Failed() {
		t.Fatalf("unexpected problems: %v", second.Problems)
	}
	if !reflect.DeepEqual(second.Features, first.Features) {
		t.Fatalf("re-resolve changed features: %v vs %v", second.Features, first.Features)
	}
	if len(second.Warnings) != 0 {
		t.Fatalf("re-resolve produced warnings: %v", second.Warnings)
	}
}

func TestResolveClosureProperty(t *testing.T) {
	table := siteTable()
	res := Resolve(table, features("blog", "chat", "dashboard"))

	for _, f := range res.Features {
		for _, dep := range table[f] {
			if !res.Has(dep) {
				t.Fatalf("dependency %q of %q missing from closure %v", dep, f, res.Features)
			}
		}
	}
}

func TestResolveMonotonic(t *testing.T) {
	req := features("dashboard", "auth", "chat")
	res := Resolve(siteTable(), req)

	for _, f := range req {
		if !res.Has(f) {
			t.Fatalf("requested %q missing from %v", f, res.Features)
		}
	}
}

func TestResolveDependencyOrder(t *testing.T) {
	res := Resolve(siteTable(), features("blog", "chat"))

	pos := map[Feature]int{}
	for i, f := range res.Features {
		pos[f] = i
	}
	for f, deps := range siteTable() {
		if _, ok := pos[f]; !ok {
			continue
		}
		for _, dep := range deps {
			if pos[dep] >= pos[f] {
				t.Fatalf("%q emitted before its dependency %q: %v", f, dep, res.Features)
			}
		}
	}
}

func TestResolveCollectsAllUnknowns(t *testing.T) {
	res := Resolve(siteTable(), features("ghost", "chat", "phantom"))

	if len(res.Problems) != 2 {
		t.Fatalf("problems = %v, want two", res.Problems)
	}
	// traversal of known siblings continues despite unknowns
	if !res.Has("chat") || !res.Has("database") {
		t.Fatalf("known branch not resolved: %v", res.Features)
	}
}

func TestResolveUnknownReportedOncePerIdentifier(t *testing.T) {
	res := Resolve(siteTable(), features("ghost", "ghost"))

	if len(res.Problems) != 1 {
		t.Fatalf("problems = %v, want one entry for ghost", res.Problems)
	}
}

func TestResolveUnknownTransitiveDependency(t *testing.T) {
	table := Table{
		"gallery": {"cdn"},
	}
	res := Resolve(table, features("gallery"))

	if !res.Failed() {
		t.Fatal("expected failure for unknown transitive dependency")
	}
	if res.Problems[0].Feature != "cdn" {
		t.Fatalf("problem = %+v", res.Problems[0])
	}
	// gallery still resolves; the caller decides whether to abort
	if !res.Has("gallery") {
		t.Fatalf("features = %v", res.Features)
	}
}

func TestResolveDetectsCycle(t *testing.T) {
	table := Table{
		"a": {"b"},
		"b": {"c"},
		"c": {"a"},
	}
	res := Resolve(table, features("a"))

	if !res.Failed() {
		t.Fatal("expected cycle to fail resolution")
	}
	var cycle *Problem
	for i := range res.Problems {
		if res.Problems[i].Kind == ProblemCycle {
			cycle = &res.Problems[i]
		}
	}
	if cycle == nil {
		t.Fatalf("no cycle problem in %v", res.Problems)
	}
	want := features("a", "b", "c", "a")
	if !reflect.DeepEqual(cycle.Cycle, want) {
		t.Fatalf("cycle path = %v, want %v", cycle.Cycle, want)
	}
}

func TestResolveSelfCycle(t *testing.T) {
	table := Table{"loop": {"loop"}}
	res := Resolve(table, features("loop"))

	if !res.Failed() {
		t.Fatal("expected self cycle to fail")
	}
	p := res.Problems[0]
	if p.Kind != ProblemCycle || p.Feature != "loop" {
		t.Fatalf("problem = %+v", p)
	}
}

func TestAutoAdded(t *testing.T) {
	req := features("blog")
	res := Resolve(siteTable(), req)

	got := res.AutoAdded(req)
	want := features("database", "auth")
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("auto added = %v, want %v", got, want)
	}
}

func TestWarningString(t *testing.T) {
	w := Warning{Feature: "database", RequiredBy: "auth"}
	if got := w.String(); got != `auto-added dependency "database" required by "auth"` {
		t.Fatalf("String() = %q", got)
	}
}

func TestResolveDeepChainIterative(t *testing.T) {
	// long linear chain exercises the explicit stack
	table := Table{}
	const depth = 10000
	for i := 0; i < depth; i++ {
		name := Feature(fmtFeature(i))
		if i == depth-1 {
			table[name] = nil
			continue
		}
		table[name] = []Feature{Feature(fmtFeature(i + 1))}
	}

	res := Resolve(table, features(Feature(fmtFeature(0))))
	if res.Failed() {
		t.Fatalf("unexpected problems: %v", res.Problems)
	}
	if len(res.Features) != depth {
		t.Fatalf("resolved %d features, want %d", len(res.Features), depth)
	}
	// deepest leaf emitted first
	if res.Features[0] != Feature(fmtFeature(depth-1)) {
		t.Fatalf("first emitted = %q", res.Features[0])
	}
}

func fmtFeature(i int) string { return "f" + strconv.Itoa(i) }
