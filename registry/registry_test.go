package registry

import "testing"

type element struct {
	name     string
	scrolled []ScrollOptions
}

func (e *element) ScrollIntoView(opt ScrollOptions) {
	e.scrolled = append(e.scrolled, opt)
}

func TestRegisterOverwrites(t *testing.T) {
	r := New()
	k := PageKey(CategoryPageContainer, 4)
	a := &element{name: "a"}
	b := &element{name: "b"}

	r.Register(k, a)
	r.Register(k, b)

	h, ok := r.Lookup(k)
	if !ok {
		t.Fatal("handle not found")
	}
	if h.(*element).name != "b" {
		t.Errorf("got handle %q, want %q", h.(*element).name, "b")
	}
	if r.Len() != 1 {
		t.Errorf("Len = %d, want 1", r.Len())
	}
}

func TestCategoriesAreSeparate(t *testing.T) {
	r := New()
	r.Register(PageKey(CategoryPageContainer, 0), &element{name: "container"})
	r.Register(PageKey(CategoryPageSurface, 0), &element{name: "surface"})

	r.Unregister(PageKey(CategoryPageSurface, 0))

	if _, ok := r.Lookup(PageKey(CategoryPageContainer, 0)); !ok {
		t.Error("unregistering the surface removed the container")
	}
	if _, ok := r.Lookup(PageKey(CategoryPageSurface, 0)); ok {
		t.Error("surface still registered")
	}
}

func TestUnregisterThenScroll(t *testing.T) {
	r := New()
	k := AnnotationKey("17")
	e := &element{}
	r.Register(k, e)
	r.Unregister(k)

	if r.ScrollIntoView(k, ScrollOptions{}) {
		t.Error("scroll reported success for an unregistered handle")
	}
	if len(e.scrolled) != 0 {
		t.Error("unregistered element was scrolled")
	}

	// unregistering twice is harmless
	r.Unregister(k)
}

func TestScrollIntoView(t *testing.T) {
	r := New()
	k := AnnotationKey("a1")
	e := &element{}
	r.Register(k, e)

	opt := ScrollOptions{Behavior: ScrollSmooth, Block: BlockCenter}
	if !r.ScrollIntoView(k, opt) {
		t.Fatal("scroll not performed")
	}
	if len(e.scrolled) != 1 || e.scrolled[0] != opt {
		t.Errorf("got scrolls %v, want [%v]", e.scrolled, opt)
	}

	// handles which cannot scroll are skipped silently
	r.Register(AnnotationKey("plain"), struct{}{})
	if r.ScrollIntoView(AnnotationKey("plain"), opt) {
		t.Error("scroll reported success for a non-scrollable handle")
	}
}

func TestClear(t *testing.T) {
	r := New()
	for i := range 5 {
		r.Register(PageKey(CategoryPageContainer, i), &element{})
	}
	r.Clear()
	if r.Len() != 0 {
		t.Errorf("Len after Clear = %d, want 0", r.Len())
	}
}

// sliceHandle cannot be compared with ==.
type sliceHandle []int

func TestRelease(t *testing.T) {
	r := New()
	k := PageKey(CategoryPageContainer, 2)

	old := r.Register(k, sliceHandle{1})
	cur := r.Register(k, sliceHandle{2})
	if old.Key() != k {
		t.Errorf("registration key %v, want %v", old.Key(), k)
	}

	r.Release(old)
	h, ok := r.Lookup(k)
	if !ok || h.(sliceHandle)[0] != 2 {
		t.Fatalf("releasing a replaced registration removed the current handle: %v", h)
	}

	r.Release(cur)
	if _, ok := r.Lookup(k); ok {
		t.Error("handle still registered after Release")
	}
	r.Release(cur)
}
