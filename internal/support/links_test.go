package support

import "testing"

func TestLinkResolve(t *testing.T) {
	idx := NewMessageLinkIndex()

	if _, ok := idx.Resolve(1); ok {
		t.Error("empty index resolved a message")
	}

	idx.Link(100, 55555)
	idx.Link(101, 55555)
	idx.Link(200, 44444)

	if got, ok := idx.Resolve(100); !ok || got != 55555 {
		t.Errorf("Resolve(100) = (%d,%v), want 55555", got, ok)
	}
	if got, ok := idx.Resolve(200); !ok || got != 44444 {
		t.Errorf("Resolve(200) = (%d,%v), want 44444", got, ok)
	}
}

func TestUnlinkAll(t *testing.T) {
	idx := NewMessageLinkIndex()
	idx.Link(100, 55555)
	idx.Link(101, 55555)
	idx.Link(200, 44444)

	// Missing ids in the list are ignored.
	idx.UnlinkAll([]int{100, 101, 999})

	for _, id := range []int{100, 101} {
		if _, ok := idx.Resolve(id); ok {
			t.Errorf("message %d still resolvable", id)
		}
	}
	if got, ok := idx.Resolve(200); !ok || got != 44444 {
		t.Errorf("unrelated entry lost: Resolve(200) = (%d,%v)", got, ok)
	}
}
