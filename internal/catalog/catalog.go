package catalog

import (
	"fmt"
	"slices"
	"sort"
)

// FreeSampleCount is the number of leading modules every account may view
// regardless of tier or trial state.
const FreeSampleCount = 2

// DifficultyTier classifies a module's starting difficulty.
type DifficultyTier string

const (
	TierBeginner     DifficultyTier = "beginner"
	TierIntermediate DifficultyTier = "intermediate"
	TierAdvanced     DifficultyTier = "advanced"
)

// Module is one OWASP Top 10 learning module. Immutable after seeding.
type Module struct {
	Code           string // stable identifier, "A01".."A10"
	Name           string
	Order          int // sequence position, 1-based
	DifficultyTier DifficultyTier
	Description    string
	EstimatedHours float64
}

// Lesson is a single unit of content within a module. Content is mutated
// only by authoring, never by learner interaction.
type Lesson struct {
	ID               string // "<module>-<order>", e.g. "A03-2"
	ModuleCode       string
	Order            int
	Title            string
	EstimatedMinutes int
	Content          LessonContent
}

// LessonContent holds the structured sections of a lesson.
type LessonContent struct {
	WhyItMatters       string
	WhatItIs           string
	RealWorldExample   string
	HowToProtect       []string
	QuickCheckQuestion string
	QuickCheckAnswer   string
	KeyTakeaway        string
}

// catalog holds the seeded modules and lessons with precomputed indices.
type catalog struct {
	modules  []Module
	byCode   map[string]*Module
	byOrder  map[int]*Module
	lessons  map[string][]Lesson // module code -> ordered lessons
	lessonID map[string]*Lesson
}

// c is the package-level catalog singleton, set by init() in seed.go.
var c *catalog

// buildCatalog constructs the catalog from seed data and builds all indices.
func buildCatalog(modules []Module, lessons []Lesson) *catalog {
	ct := &catalog{
		modules:  modules,
		byCode:   make(map[string]*Module, len(modules)),
		byOrder:  make(map[int]*Module, len(modules)),
		lessons:  make(map[string][]Lesson),
		lessonID: make(map[string]*Lesson, len(lessons)),
	}

	sort.Slice(ct.modules, func(i, j int) bool {
		return ct.modules[i].Order < ct.modules[j].Order
	})

	for i := range ct.modules {
		m := &ct.modules[i]
		ct.byCode[m.Code] = m
		ct.byOrder[m.Order] = m
	}

	for _, l := range lessons {
		ct.lessons[l.ModuleCode] = append(ct.lessons[l.ModuleCode], l)
	}
	for code, ls := range ct.lessons {
		sorted := slices.Clone(ls)
		sort.Slice(sorted, func(i, j int) bool {
			return sorted[i].Order < sorted[j].Order
		})
		ct.lessons[code] = sorted
	}
	for code := range ct.lessons {
		for i := range ct.lessons[code] {
			l := &ct.lessons[code][i]
			ct.lessonID[l.ID] = l
		}
	}

	return ct
}

// Modules returns all modules ordered by sequence position.
func Modules() []Module {
	return slices.Clone(c.modules)
}

// ModuleByCode returns a module by its stable code, or an error if absent.
func ModuleByCode(code string) (Module, error) {
	m, ok := c.byCode[code]
	if !ok {
		return Module{}, fmt.Errorf("module not found: %q", code)
	}
	return *m, nil
}

// ModuleByOrder returns the module at the given sequence position.
func ModuleByOrder(order int) (Module, error) {
	m, ok := c.byOrder[order]
	if !ok {
		return Module{}, fmt.Errorf("no module at order %d", order)
	}
	return *m, nil
}

// Exists reports whether a module code is in the catalog.
func Exists(code string) bool {
	_, ok := c.byCode[code]
	return ok
}

// IsFreeSample reports whether the module is among the first FreeSampleCount
// modules by order. Unknown codes are not free samples (fail-closed).
func IsFreeSample(code string) bool {
	m, ok := c.byCode[code]
	if !ok {
		return false
	}
	return m.Order <= FreeSampleCount
}

// Lessons returns the ordered lessons of a module.
func Lessons(moduleCode string) []Lesson {
	return slices.Clone(c.lessons[moduleCode])
}

// LessonByID returns a lesson by its identifier, or an error if absent.
func LessonByID(id string) (Lesson, error) {
	l, ok := c.lessonID[id]
	if !ok {
		return Lesson{}, fmt.Errorf("lesson not found: %q", id)
	}
	return *l, nil
}

// Validate checks the seeded catalog for structural issues: duplicate or
// missing codes, non-contiguous ordering, lessons pointing at unknown
// modules, and modules with no lessons.
func Validate() error {
	return validate(c)
}

func validate(ct *catalog) error {
	if len(ct.modules) == 0 {
		return fmt.Errorf("catalog is empty")
	}
	seen := make(map[string]bool, len(ct.modules))
	for i, m := range ct.modules {
		if m.Code == "" {
			return fmt.Errorf("module at order %d has empty code", m.Order)
		}
		if seen[m.Code] {
			return fmt.Errorf("duplicate module code %q", m.Code)
		}
		seen[m.Code] = true
		if m.Order != i+1 {
			return fmt.Errorf("module %q: order %d, want %d (orders must be contiguous from 1)", m.Code, m.Order, i+1)
		}
	}
	for code, ls := range ct.lessons {
		if !seen[code] {
			return fmt.Errorf("lessons reference unknown module %q", code)
		}
		for i, l := range ls {
			if l.Order != i+1 {
				return fmt.Errorf("lesson %q: order %d, want %d", l.ID, l.Order, i+1)
			}
		}
	}
	for _, m := range ct.modules {
		if len(ct.lessons[m.Code]) == 0 {
			return fmt.Errorf("module %q has no lessons", m.Code)
		}
	}
	return nil
}
