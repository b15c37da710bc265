package network

import (
	"errors"
	"testing"
)

func TestGraphAddAndConnect(t *testing.T) {
	g := New()
	for _, uid := range []string{"tx-a", "edfa-1", "tx-b"} {
		if err := g.AddElement(NewTransceiver(uid, "", nil)); err != nil {
			t.Fatalf("AddElement(%q): %v", uid, err)
		}
	}

	if err := g.Connect("tx-a", "edfa-1", 80); err != nil {
		t.Fatalf("Connect: %v", err)
	}
	if err := g.Connect("edfa-1", "tx-b", ZeroLengthWeight); err != nil {
		t.Fatalf("Connect: %v", err)
	}

	if n := g.NumElements(); n != 3 {
		t.Errorf("NumElements = %d, want 3", n)
	}
	if n := g.NumEdges(); n != 2 {
		t.Errorf("NumEdges = %d, want 2", n)
	}

	succs := g.Successors("tx-a")
	if len(succs) != 1 || succs[0].UID() != "edfa-1" {
		t.Errorf("Successors(tx-a) = %v", succs)
	}
	preds := g.Predecessors("tx-b")
	if len(preds) != 1 || preds[0].UID() != "edfa-1" {
		t.Errorf("Predecessors(tx-b) = %v", preds)
	}
}

func TestGraphDuplicateElement(t *testing.T) {
	g := New()
	if err := g.AddElement(NewFused("att-1", nil, nil)); err != nil {
		t.Fatalf("AddElement: %v", err)
	}
	err := g.AddElement(NewFused("att-1", nil, nil))
	if !errors.Is(err, ErrDuplicateElement) {
		t.Errorf("duplicate insert error = %v, want ErrDuplicateElement", err)
	}
}

func TestGraphConnectUnknownElement(t *testing.T) {
	g := New()
	if err := g.AddElement(NewFused("att-1", nil, nil)); err != nil {
		t.Fatalf("AddElement: %v", err)
	}
	err := g.Connect("att-1", "ghost", 1)
	if !errors.Is(err, ErrElementNotFound) {
		t.Errorf("connect to unknown element error = %v, want ErrElementNotFound", err)
	}

	var gerr *GraphError
	if !errors.As(err, &gerr) {
		t.Fatalf("error type: %T", err)
	}
	if gerr.UID != "ghost" {
		t.Errorf("error names %q, want ghost", gerr.UID)
	}
}

func TestGraphReconnectUpdatesWeight(t *testing.T) {
	g := New()
	g.AddElement(NewFused("a", nil, nil))
	g.AddElement(NewFused("b", nil, nil))

	if err := g.Connect("a", "b", 10); err != nil {
		t.Fatalf("Connect: %v", err)
	}
	if err := g.Connect("a", "b", 20); err != nil {
		t.Fatalf("re-Connect: %v", err)
	}

	edges := g.Edges()
	if len(edges) != 1 {
		t.Fatalf("NumEdges = %d, want 1", len(edges))
	}
	if edges[0].Weight != 20 {
		t.Errorf("weight = %g, want 20", edges[0].Weight)
	}
}

func TestGraphElementsInsertionOrder(t *testing.T) {
	g := New()
	uids := []string{"z", "a", "m"}
	for _, uid := range uids {
		g.AddElement(NewFused(uid, nil, nil))
	}
	for i, el := range g.Elements() {
		if el.UID() != uids[i] {
			t.Errorf("Elements()[%d] = %q, want %q", i, el.UID(), uids[i])
		}
	}
}

func TestMidpoint(t *testing.T) {
	a := Location{Latitude: 40, Longitude: -4}
	b := Location{Latitude: 50, Longitude: 2}
	mid := Midpoint(a, b)
	if mid.Latitude != 45 || mid.Longitude != -1 {
		t.Errorf("Midpoint = %+v, want {45 -1}", mid)
	}
}
