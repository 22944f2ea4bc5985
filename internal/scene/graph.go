package scene

// Entity is anything the graph holds: *Body or *LightSource.
type Entity interface {
	entity()
}

// Graph is the ordered collection of bodies and lights drawn every frame.
// It is filled once at startup and only read afterwards.
type Graph struct {
	entries []Entity
	bodies  []*Body
	lights  []*LightSource
}

// NewGraph returns an empty graph.
func NewGraph() *Graph {
	return &Graph{}
}

// Add appends entities in order. Nil entries are skipped.
func (g *Graph) Add(entities ...Entity) {
	for _, e := range entities {
		switch v := e.(type) {
		case *Body:
			if v == nil {
				continue
			}
			g.bodies = append(g.bodies, v)
		case *LightSource:
			if v == nil {
				continue
			}
			g.lights = append(g.lights, v)
		default:
			continue
		}
		g.entries = append(g.entries, e)
	}
}

// ForEach visits every entity in insertion order.
func (g *Graph) ForEach(visit func(Entity)) {
	for _, e := range g.entries {
		visit(e)
	}
}

// All returns a copy of the entities in insertion order.
func (g *Graph) All() []Entity {
	out := make([]Entity, len(g.entries))
	copy(out, g.entries)
	return out
}

// Bodies returns the bodies in insertion order. The slice is shared; do not modify.
func (g *Graph) Bodies() []*Body {
	return g.bodies
}

// Lights returns the lights in insertion order. The slice is shared; do not modify.
func (g *Graph) Lights() []*LightSource {
	return g.lights
}

// Len returns the number of entities.
func (g *Graph) Len() int {
	return len(g.entries)
}
