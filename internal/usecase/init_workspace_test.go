package usecase

import (
	"errors"
	"testing"
)

type fakeInitializer struct {
	root  string
	force bool
	err   error
}

func (f *fakeInitializer) Init(root string, force bool) error {
	f.root = root
	f.force = force
	return f.err
}

func TestInitWorkspace_DelegatesToInitializer(t *testing.T) {
	fi := &fakeInitializer{}
	if err := NewInitWorkspace(fi).Execute("/ws", true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fi.root != "/ws" || !fi.force {
		t.Fatalf("expected root=/ws force=true, got root=%q force=%v", fi.root, fi.force)
	}
}

func TestInitWorkspace_PropagatesError(t *testing.T) {
	want := errors.New("disk full")
	err := NewInitWorkspace(&fakeInitializer{err: want}).Execute("/ws", false)
	if !errors.Is(err, want) {
		t.Fatalf("expected %v, got %v", want, err)
	}
}
