package graph

// Builder assembles a Graph programmatically. It exists for tests and for
// callers that already hold in-memory network data; production graphs come
// from FromJSON.
type Builder struct {
	stations map[string]*Station
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{stations: make(map[string]*Station)}
}

// AddStation ensures the named station exists and returns the builder.
func (b *Builder) AddStation(name string) *Builder {
	b.ensure(name)
	return b
}

// AddLink adds a bidirectional connection between a and b on the given line.
func (b *Builder) AddLink(a, bName, line string) *Builder {
	b.AddArc(a, bName, line)
	b.AddArc(bName, a, line)
	return b
}

// AddArc adds a one-way connection from a to bName on the given line. The
// target station is not created implicitly, matching source data where an
// edge may point at a station outside the graph.
func (b *Builder) AddArc(a, bName, line string) *Builder {
	st := b.ensure(a)
	st.Edges = append(st.Edges, Edge{Station: bName, Line: line})
	return b
}

// Build returns the assembled immutable Graph. The builder must not be
// reused afterwards.
func (b *Builder) Build() *Graph {
	return &Graph{stations: b.stations}
}

func (b *Builder) ensure(name string) *Station {
	st, ok := b.stations[name]
	if !ok {
		st = &Station{Name: name}
		b.stations[name] = st
	}
	return st
}
