package module

import (
	"sort"
	"testing"

	phttp "careerpath/internal/platform/net/http"
	"careerpath/internal/platform/testkit"
)

type greeter interface{ Greet() string }

type hello struct{}

func (hello) Greet() string { return "hi" }

type bundle struct {
	Count   int
	Greeter greeter
	hidden  greeter
}

type stub struct {
	name  string
	ports any
}

func (s stub) MountRoutes(phttp.Router) {}
func (s stub) Ports() any                { return s.ports }
func (s stub) Name() string              { return s.name }

func TestPortsOf(t *testing.T) {
	cases := []struct {
		name  string
		ports any
		ok    bool
	}{
		{"nil", nil, false},
		{"direct", hello{}, true},
		{"struct field", bundle{Greeter: hello{}}, true},
		{"pointer to struct", &bundle{Greeter: hello{}}, true},
		{"unexported only", bundle{hidden: hello{}}, false},
		{"nil pointer", (*bundle)(nil), false},
		{"scalar", 42, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			g, ok := PortsOf[greeter](stub{name: "m", ports: c.ports})
			if ok != c.ok {
				t.Fatalf("ok = %v, want %v", ok, c.ok)
			}
			if ok && g.Greet() != "hi" {
				t.Fatalf("wrong port")
			}
		})
	}
}

func TestMustPortsOf_Panics(t *testing.T) {
	testkit.MustPanic(t, func() { MustPortsOf[greeter](stub{name: "quiz"}) })
}

func TestRegistry(t *testing.T) {
	r := NewRegistry()
	r.Register(stub{name: "analyze", ports: hello{}}, stub{name: "meta"})

	if g, ok := PortsAs[greeter](r, "analyze"); !ok || g.Greet() != "hi" {
		t.Fatalf("analyze ports missing")
	}
	if _, ok := PortsAs[greeter](r, "meta"); ok {
		t.Fatalf("meta has no ports")
	}
	if _, ok := PortsAs[greeter](r, "nope"); ok {
		t.Fatalf("unknown name resolved")
	}
	names := r.Names()
	sort.Strings(names)
	if len(names) != 2 || names[0] != "analyze" {
		t.Fatalf("names = %v", names)
	}
}
