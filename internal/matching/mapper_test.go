package matching_test

import (
	"fmt"
	"testing"

	"rowgroup/internal/matching"
)

func newTestMapper(groups ...matching.FieldGroup) *matching.Mapper {
	next := 0
	return matching.NewMapper(groups, matching.WithForestOptions(
		matching.WithIdentifierFunc(func() string {
			next++
			return fmt.Sprintf("cluster-%d", next)
		}),
	))
}

func TestMapperSharedKeyJoinsCluster(t *testing.T) {
	m := newTestMapper(matching.FieldGroupEmail)

	a := m.NodeFor(mapRow{"Email": "john@test.com"})
	b := m.NodeFor(mapRow{"Email": " JOHN@test.com"})

	if a != b {
		t.Fatalf("expected the same node for matching rows, got %v and %v", a, b)
	}
	stats := m.Stats()
	if stats.Nodes != 1 || stats.Keys != 1 || stats.Merges != 0 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
}

func TestMapperDistinctKeysStaySeparate(t *testing.T) {
	m := newTestMapper(matching.FieldGroupEmail)

	a := m.NodeFor(mapRow{"Email": "john@test.com"})
	b := m.NodeFor(mapRow{"Email": "jane@test.com"})

	if m.RootIdentifier(a) == m.RootIdentifier(b) {
		t.Fatal("expected distinct identifiers for unrelated rows")
	}
}

func TestMapperRowsWithoutKeysNeverMerge(t *testing.T) {
	m := newTestMapper(matching.FieldGroupEmail, matching.FieldGroupPhone)

	a := m.NodeFor(mapRow{"Name": "Jane", "Email": ""})
	b := m.NodeFor(mapRow{"Name": "Jack", "Email": "  "})
	c := m.NodeFor(mapRow{"Name": "Jill", "Phone": "--"})

	ids := map[string]struct{}{
		m.RootIdentifier(a): {},
		m.RootIdentifier(b): {},
		m.RootIdentifier(c): {},
	}
	if len(ids) != 3 {
		t.Fatalf("expected three distinct identifiers, got %d", len(ids))
	}
	if stats := m.Stats(); stats.Keys != 0 || stats.KeylessRows != 3 {
		t.Fatalf("expected empty key table and 3 keyless rows, got %+v", stats)
	}
}

func TestMapperTransitivePhoneChain(t *testing.T) {
	m := newTestMapper(matching.FieldGroupPhone)

	a := m.NodeFor(mapRow{"Name": "John", "Phone1": "111", "Phone2": "222"})
	b := m.NodeFor(mapRow{"Name": "John", "Phone1": "333", "Phone2": "444"})
	c := m.NodeFor(mapRow{"Name": "John", "Phone1": "222", "Phone2": "333"})

	if m.Root(a) != c || m.Root(b) != c {
		t.Fatalf("expected merge node %v to be the root of all rows", c)
	}
	id := m.RootIdentifier(c)
	if m.RootIdentifier(a) != id || m.RootIdentifier(b) != id {
		t.Fatal("expected all rows to share the final identifier")
	}
	if merges := m.Stats().Merges; merges != 1 {
		t.Fatalf("expected one merge, got %d", merges)
	}
}

func TestMapperCrossGroupChain(t *testing.T) {
	m := newTestMapper(matching.FieldGroupEmail, matching.FieldGroupPhone)

	a := m.NodeFor(mapRow{"Email": "a@test.com"})
	b := m.NodeFor(mapRow{"Phone": "555"})
	c := m.NodeFor(mapRow{"Email": "A@TEST.COM", "Phone1": "(555)"})
	d := m.NodeFor(mapRow{"Phone2": "5-5-5"})

	root := m.Root(c)
	for _, n := range []matching.NodeID{a, b, d} {
		if m.Root(n) != root {
			t.Fatalf("expected node %v to resolve to root %v, got %v", n, root, m.Root(n))
		}
	}
}

func TestMapperEmissionOrderReflectsMergeTime(t *testing.T) {
	m := newTestMapper(matching.FieldGroupEmail)

	a := m.NodeFor(mapRow{"Email": "a@test.com"})
	earlyA := m.RootIdentifier(a)
	b := m.NodeFor(mapRow{"Email": "b@test.com"})
	earlyB := m.RootIdentifier(b)
	m.NodeFor(mapRow{"Email": "a@test.com", "Email1": "b@test.com"})

	if earlyA == earlyB {
		t.Fatal("expected identifiers read before the merge to differ")
	}
	if m.RootIdentifier(a) != m.RootIdentifier(b) {
		t.Fatal("expected identifiers read after the merge to converge")
	}
	if m.RootIdentifier(a) == earlyA {
		t.Fatal("expected the merged cluster to carry a new identifier")
	}
}

func TestMapperSingleCandidateAddsNewKeys(t *testing.T) {
	m := newTestMapper(matching.FieldGroupEmail)

	a := m.NodeFor(mapRow{"Email": "a@test.com"})
	m.NodeFor(mapRow{"Email": "a@test.com", "Email1": "alias@test.com"})
	c := m.NodeFor(mapRow{"Email2": "alias@test.com"})

	if m.Root(a) != m.Root(c) {
		t.Fatal("expected a key added through an existing cluster to match later rows")
	}
	if keys := m.Stats().Keys; keys != 2 {
		t.Fatalf("expected 2 keys, got %d", keys)
	}
}
