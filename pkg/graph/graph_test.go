package graph

import "testing"

func TestNewGraph_RejectsUnknownRoom(t *testing.T) {
	_, err := NewGraph([]int{0, 1}, []Connection{{A: 0, B: 2}})
	if err == nil {
		t.Fatal("expected an error for a connection referencing an unknown room")
	}
}

func TestGraph_IsConnected(t *testing.T) {
	g, err := NewGraph([]int{0, 1, 2}, []Connection{{A: 0, B: 1}, {A: 1, B: 2}})
	if err != nil {
		t.Fatal(err)
	}
	if !g.IsConnected() {
		t.Error("expected chain graph to be connected")
	}

	g2, err := NewGraph([]int{0, 1, 2}, []Connection{{A: 0, B: 1}})
	if err != nil {
		t.Fatal(err)
	}
	if g2.IsConnected() {
		t.Error("expected graph with an isolated room to be disconnected")
	}
}

func TestGraph_GetPath(t *testing.T) {
	g, err := NewGraph([]int{0, 1, 2, 3}, []Connection{{A: 0, B: 1}, {A: 1, B: 2}, {A: 2, B: 3}})
	if err != nil {
		t.Fatal(err)
	}

	path, err := g.GetPath(0, 3)
	if err != nil {
		t.Fatal(err)
	}
	want := []int{0, 1, 2, 3}
	if len(path) != len(want) {
		t.Fatalf("GetPath(0,3) = %v, want %v", path, want)
	}
	for i := range want {
		if path[i] != want[i] {
			t.Errorf("GetPath(0,3)[%d] = %d, want %d", i, path[i], want[i])
		}
	}

	if _, err := g.GetPath(0, 0); err != nil {
		t.Errorf("GetPath(0,0) should not error: %v", err)
	}
}

func TestGraph_GetPath_NoPath(t *testing.T) {
	g, err := NewGraph([]int{0, 1, 2}, []Connection{{A: 0, B: 1}})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := g.GetPath(0, 2); err == nil {
		t.Error("expected an error when no path exists")
	}
}

func TestConnection_Normalized(t *testing.T) {
	c := Connection{A: 3, B: 1}
	got := c.Normalized()
	if got.A != 1 || got.B != 3 {
		t.Errorf("Normalized() = %v, want {1, 3}", got)
	}
}
