package gamedata

import (
	"errors"
	"fmt"
	"strings"

	"github.com/samdwyer/hexlink/internal/board"
)

// ErrUnknownShape is returned when a shape ID is not in shapes.json.
var ErrUnknownShape = errors.New("unknown board shape")

// ShapeDef defines a named board outline loaded from JSON.
type ShapeDef struct {
	ID     string `json:"id"`     // Unique identifier (e.g., "standard")
	Name   string `json:"name"`   // Display name
	Width  int    `json:"width"`  // Columns on odd rows; even rows get one more
	Height int    `json:"height"` // Rows
}

// Shape returns the board outline for this definition.
func (d *ShapeDef) Shape() board.Shape {
	return board.Shape{Width: d.Width, Height: d.Height}
}

// ShapesFile represents the structure of shapes.json.
type ShapesFile struct {
	Default string     `json:"default"`
	Shapes  []ShapeDef `json:"shapes"`
}

// Validate checks that every shape is non-degenerate and the default exists.
func (f *ShapesFile) Validate() error {
	found := false
	for _, s := range f.Shapes {
		if s.Width < 1 || s.Height < 1 {
			return fmt.Errorf("shape %q has size %dx%d", s.ID, s.Width, s.Height)
		}
		if s.ID == f.Default {
			found = true
		}
	}
	if !found {
		return fmt.Errorf("%w: default %q", ErrUnknownShape, f.Default)
	}
	return nil
}

// ShapeRegistry holds loaded shape definitions and provides lookup utilities.
type ShapeRegistry struct {
	shapes    map[string]*ShapeDef
	all       []ShapeDef
	defaultID string
}

// NewShapeRegistry creates a registry from loaded shape definitions.
func NewShapeRegistry(file ShapesFile) *ShapeRegistry {
	registry := &ShapeRegistry{
		shapes:    make(map[string]*ShapeDef),
		all:       file.Shapes,
		defaultID: file.Default,
	}
	for i := range file.Shapes {
		registry.shapes[file.Shapes[i].ID] = &file.Shapes[i]
	}
	return registry
}

// LoadShapeRegistry loads and creates a registry from the embedded shapes.json.
func LoadShapeRegistry() (*ShapeRegistry, error) {
	file, err := Load[ShapesFile]("shapes.json")
	if err != nil {
		return nil, err
	}
	return NewShapeRegistry(file), nil
}

// MustLoadShapeRegistry loads a registry, panicking on error.
func MustLoadShapeRegistry() *ShapeRegistry {
	registry, err := LoadShapeRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// GetByID returns the shape definition with the given ID, or nil if not found.
func (r *ShapeRegistry) GetByID(id string) *ShapeDef {
	return r.shapes[id]
}

// Resolve returns the outline for id. An empty id selects the default shape.
func (r *ShapeRegistry) Resolve(id string) (board.Shape, error) {
	if id == "" {
		id = r.defaultID
	}
	def := r.shapes[id]
	if def == nil {
		return board.Shape{}, fmt.Errorf("%w: %q (have %s)", ErrUnknownShape, id, strings.Join(r.ids(), ", "))
	}
	return def.Shape(), nil
}

// Count returns the number of shapes in the registry.
func (r *ShapeRegistry) Count() int {
	return len(r.all)
}

func (r *ShapeRegistry) ids() []string {
	ids := make([]string, len(r.all))
	for i, def := range r.all {
		ids[i] = def.ID
	}
	return ids
}
