package registry

import (
	"context"
	"testing"
)

type stubShell struct {
	id, title string
	runs      *int
}

func (s stubShell) ID() string    { return s.id }
func (s stubShell) Title() string { return s.title }

func (s stubShell) Run(ctx context.Context, env Env) error {
	*s.runs++
	return nil
}

func TestRegisterCreate(t *testing.T) {
	runs := 0
	Register("stub-b", func() Shell { return stubShell{"stub-b", "Stub B", &runs} })
	Register("stub-a", func() Shell { return stubShell{"stub-a", "Stub A", &runs} })
	t.Cleanup(func() {
		unregister("stub-a")
		unregister("stub-b")
	})

	if !Exists("stub-a") {
		t.Error("Exists(stub-a) = false")
	}
	if Exists("missing") {
		t.Error("Exists(missing) = true")
	}

	list := List()
	if len(list) != 2 {
		t.Fatalf("len(List()) = %d, expected 2", len(list))
	}
	if list[0].ID != "stub-a" || list[0].Title != "Stub A" {
		t.Errorf("List()[0] = %+v, expected stub-a first", list[0])
	}

	sh, err := Create("stub-b")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if err := sh.Run(context.Background(), Env{}); err != nil {
		t.Fatal(err)
	}
	if runs != 1 {
		t.Errorf("runs = %d, expected 1", runs)
	}

	if _, err := Create("missing"); err == nil {
		t.Error("Create(missing) should fail")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	runs := 0
	f := func() Shell { return stubShell{"dup", "Dup", &runs} }
	Register("dup", f)
	t.Cleanup(func() { unregister("dup") })

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register did not panic")
		}
	}()
	Register("dup", f)
}
