package zoomage

import "testing"

func actions(evs []PointerEvent) []PointerAction {
	out := make([]PointerAction, len(evs))
	for i, e := range evs {
		out[i] = e.Action
	}
	return out
}

func TestTouchInputSequence(t *testing.T) {
	in := NewTouchInput()
	a := Pointer{ID: 1, X: 10, Y: 10}
	b := Pointer{ID: 2, X: 50, Y: 10}

	in.InjectFrame(a)
	evs := in.Poll(0.5)
	if len(evs) != 1 || evs[0].Action != ActionDown {
		t.Fatalf("press = %v, want [down]", actions(evs))
	}
	if evs[0].Time != 0.5 || in.Clock() != 0.5 {
		t.Errorf("time = %v clock = %v, want 0.5", evs[0].Time, in.Clock())
	}

	in.InjectFrame(a)
	if evs := in.Poll(0.5); len(evs) != 0 {
		t.Errorf("unchanged frame = %v, want none", actions(evs))
	}

	in.InjectFrame(a, b)
	evs = in.Poll(0.5)
	if len(evs) != 1 || evs[0].Action != ActionPointerDown || evs[0].ActionIndex != 1 {
		t.Fatalf("second press = %+v, want pointer-down at index 1", evs)
	}
	if evs[0].PointerCount() != 2 {
		t.Errorf("pointer count = %d, want 2", evs[0].PointerCount())
	}

	a.X = 20
	in.InjectFrame(a, b)
	evs = in.Poll(0.5)
	if len(evs) != 1 || evs[0].Action != ActionMove || evs[0].Pointers[0].X != 20 {
		t.Fatalf("move = %+v", evs)
	}

	in.InjectFrame(b)
	evs = in.Poll(0.5)
	if len(evs) != 1 || evs[0].Action != ActionPointerUp || evs[0].ActionIndex != 0 {
		t.Fatalf("first release = %+v, want pointer-up at index 0", evs)
	}
	if evs[0].PointerCount() != 2 {
		t.Errorf("pointer-up should carry the lifting pointer, got %d pointers", evs[0].PointerCount())
	}

	in.InjectRelease()
	evs = in.Poll(0.5)
	if len(evs) != 1 || evs[0].Action != ActionUp || evs[0].Pointers[0].ID != 2 {
		t.Fatalf("last release = %+v, want up of pointer 2", evs)
	}
}

func TestTouchInputMoveThenRelease(t *testing.T) {
	in := NewTouchInput()
	a := Pointer{ID: 1, X: 10, Y: 10}
	b := Pointer{ID: 2, X: 50, Y: 10}
	in.InjectFrame(a, b)
	in.Poll(0.1)

	b.X = 60
	in.InjectFrame(b)
	got := actions(in.Poll(0.1))
	if len(got) != 2 || got[0] != ActionMove || got[1] != ActionPointerUp {
		t.Errorf("actions = %v, want [move pointer-up]", got)
	}
}

func TestInjectFrameCounts(t *testing.T) {
	tests := []struct {
		name   string
		inject func(in *TouchInput)
		want   int
	}{
		{"tap", func(in *TouchInput) { in.InjectTap(1, 1) }, 2},
		{"double tap", func(in *TouchInput) { in.InjectDoubleTap(1, 1) }, 6},
		{"drag", func(in *TouchInput) { in.InjectDrag(0, 0, 100, 0, 10) }, 11},
		{"short drag", func(in *TouchInput) { in.InjectDrag(0, 0, 100, 0, 0) }, 3},
		{"pinch", func(in *TouchInput) { in.InjectPinch(500, 500, 100, 300, 4) }, 8},
		{"wait", func(in *TouchInput) { in.InjectWait(5) }, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := NewTouchInput()
			tt.inject(in)
			if got := in.Pending(); got != tt.want {
				t.Errorf("Pending() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestInjectDoubleTapEvents(t *testing.T) {
	in := NewTouchInput()
	in.InjectDoubleTap(100, 200)
	var got []PointerAction
	for in.Pending() > 0 {
		got = append(got, actions(in.Poll(1.0/60))...)
	}
	want := []PointerAction{ActionDown, ActionUp, ActionDown, ActionUp}
	if len(got) != len(want) {
		t.Fatalf("actions = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("action %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestInjectPinchEvents(t *testing.T) {
	in := NewTouchInput()
	in.InjectPinch(500, 500, 100, 300, 2)
	var evs []PointerEvent
	for in.Pending() > 0 {
		evs = append(evs, in.Poll(1.0/60)...)
	}
	want := []PointerAction{ActionDown, ActionPointerDown, ActionMove, ActionMove, ActionPointerUp, ActionUp}
	got := actions(evs)
	if len(got) != len(want) {
		t.Fatalf("actions = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("action %d = %v, want %v", i, got[i], want[i])
		}
	}
	last := evs[3].Pointers
	if span := last[1].X - last[0].X; span != 300 {
		t.Errorf("final span = %v, want 300", span)
	}
}
