package catalog

import "testing"

func TestSeededCatalogValid(t *testing.T) {
	if err := Validate(); err != nil {
		t.Fatalf("Validate() = %v, want nil", err)
	}
}

func TestModulesOrdered(t *testing.T) {
	mods := Modules()
	if len(mods) != 10 {
		t.Fatalf("len(Modules()) = %d, want 10", len(mods))
	}
	for i, m := range mods {
		if m.Order != i+1 {
			t.Errorf("module %s: Order = %d, want %d", m.Code, m.Order, i+1)
		}
	}
}

func TestModuleByCode(t *testing.T) {
	m, err := ModuleByCode("A03")
	if err != nil {
		t.Fatalf("ModuleByCode(A03) error: %v", err)
	}
	if m.Name != "Injection" {
		t.Errorf("Name = %q, want Injection", m.Name)
	}

	if _, err := ModuleByCode("A99"); err == nil {
		t.Error("ModuleByCode(A99) = nil error, want not-found")
	}
}

func TestIsFreeSample(t *testing.T) {
	tests := []struct {
		code string
		want bool
	}{
		{"A01", true},
		{"A02", true},
		{"A03", false},
		{"A10", false},
		{"nope", false}, // unknown codes fail closed
	}
	for _, tt := range tests {
		if got := IsFreeSample(tt.code); got != tt.want {
			t.Errorf("IsFreeSample(%q) = %v, want %v", tt.code, got, tt.want)
		}
	}
}

func TestLessonsOrderedWithinModule(t *testing.T) {
	ls := Lessons("A01")
	if len(ls) < 2 {
		t.Fatalf("len(Lessons(A01)) = %d, want >= 2", len(ls))
	}
	for i, l := range ls {
		if l.Order != i+1 {
			t.Errorf("lesson %s: Order = %d, want %d", l.ID, l.Order, i+1)
		}
		if l.ModuleCode != "A01" {
			t.Errorf("lesson %s: ModuleCode = %q, want A01", l.ID, l.ModuleCode)
		}
	}
}

func TestLessonByID(t *testing.T) {
	l, err := LessonByID("A03-1")
	if err != nil {
		t.Fatalf("LessonByID(A03-1) error: %v", err)
	}
	if l.Content.QuickCheckAnswer == "" {
		t.Error("lesson has empty quick-check answer")
	}
	if _, err := LessonByID("A03-99"); err == nil {
		t.Error("LessonByID(A03-99) = nil error, want not-found")
	}
}

func TestValidateRejectsBadSeeds(t *testing.T) {
	bad := buildCatalog([]Module{
		{Code: "A01", Order: 1},
		{Code: "A01", Order: 2},
	}, []Lesson{{ID: "A01-1", ModuleCode: "A01", Order: 1}})
	if err := validate(bad); err == nil {
		t.Error("validate() accepted duplicate module codes")
	}

	gapped := buildCatalog([]Module{
		{Code: "A01", Order: 1},
		{Code: "A03", Order: 3},
	}, []Lesson{{ID: "A01-1", ModuleCode: "A01", Order: 1}})
	if err := validate(gapped); err == nil {
		t.Error("validate() accepted non-contiguous module orders")
	}
}
