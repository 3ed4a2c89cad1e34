package snapshot

import (
	"errors"
	"path/filepath"
	"testing"
)

func openTestCatalog(t *testing.T) *Catalog {
	t.Helper()
	c, err := OpenCatalog(filepath.Join(t.TempDir(), "catalog.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { c.Close() })
	return c
}

func TestCatalogRoundTrip(t *testing.T) {
	c := openTestCatalog(t)

	if err := c.CreateRun("run_1", "params.yml"); err != nil {
		t.Fatal(err)
	}

	units := c.Group("run_1", "Units")
	if err := units.WriteFloat("Unit length in cgs (U_L)", 3.085677581e24); err != nil {
		t.Fatal(err)
	}
	scheme := c.Group("run_1", "HydroScheme")
	if err := scheme.WriteFloat("Alpha viscosity", 0.8); err != nil {
		t.Fatal(err)
	}
	if err := scheme.WriteInt("divB cleaning turned on", 0); err != nil {
		t.Fatal(err)
	}
	if err := scheme.WriteString("Scheme", "gadget2"); err != nil {
		t.Fatal(err)
	}

	groups, err := c.Attributes("run_1")
	if err != nil {
		t.Fatal(err)
	}
	if len(groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(groups))
	}
	if groups[0].Name != "Units" || groups[1].Name != "HydroScheme" {
		t.Errorf("write order not preserved: %q, %q", groups[0].Name, groups[1].Name)
	}

	a, ok := groups[1].Lookup("Alpha viscosity")
	if !ok {
		t.Fatal("Alpha viscosity missing from catalog")
	}
	if v, ok := a.AsFloat(); !ok || v != 0.8 {
		t.Errorf("expected float 0.8, got %v", a.Value)
	}
	a, ok = groups[1].Lookup("divB cleaning turned on")
	if !ok {
		t.Fatal("cleaning flag missing from catalog")
	}
	if v, ok := a.AsInt(); !ok || v != 0 {
		t.Errorf("expected int 0, got %v (%T)", a.Value, a.Value)
	}
}

func TestCatalogDuplicate(t *testing.T) {
	c := openTestCatalog(t)
	if err := c.CreateRun("run_1", "params.yml"); err != nil {
		t.Fatal(err)
	}

	g := c.Group("run_1", "HydroScheme")
	if err := g.WriteFloat("Alpha viscosity", 0.8); err != nil {
		t.Fatal(err)
	}
	err := g.WriteFloat("Alpha viscosity", 0.9)
	if !errors.Is(err, ErrDuplicate) {
		t.Errorf("expected ErrDuplicate, got %v", err)
	}

	// same name in another group or run stays legal
	if err := c.Group("run_1", "Units").WriteFloat("Alpha viscosity", 1.0); err != nil {
		t.Errorf("same name in another group: %v", err)
	}
	if err := c.CreateRun("run_2", "params.yml"); err != nil {
		t.Fatal(err)
	}
	if err := c.Group("run_2", "HydroScheme").WriteFloat("Alpha viscosity", 1.0); err != nil {
		t.Errorf("same name in another run: %v", err)
	}
}

func TestCatalogRuns(t *testing.T) {
	c := openTestCatalog(t)

	if err := c.CreateRun("run_a", "a.yml"); err != nil {
		t.Fatal(err)
	}
	if err := c.CreateRun("run_b", "b.yml"); err != nil {
		t.Fatal(err)
	}
	if err := c.CreateRun("run_a", "again.yml"); err == nil {
		t.Error("expected duplicate run id to be rejected")
	}

	runs, err := c.Runs()
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 2 {
		t.Fatalf("expected 2 runs, got %d", len(runs))
	}
	if runs[0].ID != "run_a" || runs[1].ID != "run_b" {
		t.Errorf("unexpected run order: %q, %q", runs[0].ID, runs[1].ID)
	}
	if runs[0].Source != "a.yml" {
		t.Errorf("expected source a.yml, got %q", runs[0].Source)
	}
	if runs[0].Created.IsZero() {
		t.Error("expected a created timestamp")
	}
}

func TestCatalogAttributesOfUnknownRun(t *testing.T) {
	c := openTestCatalog(t)
	groups, err := c.Attributes("nope")
	if err != nil {
		t.Fatal(err)
	}
	if len(groups) != 0 {
		t.Errorf("expected no groups for unknown run, got %d", len(groups))
	}
}
