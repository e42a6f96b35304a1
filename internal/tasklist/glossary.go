package tasklist

// glossary is the name index a sequence registers its tasks in.
// A standalone sequence owns its glossary; a group member writes into the
// group's shared glossary, which also carries the group's size.
type glossary interface {
	register(name string, h Handle)
	deregister(name string)
	lookup(name string) (Handle, bool)
}

// ownGlossary is the index of a standalone sequence.
type ownGlossary map[string]Handle

func (g ownGlossary) register(name string, h Handle) {
	g[name] = h
}

func (g ownGlossary) deregister(name string) {
	delete(g, name)
}

func (g ownGlossary) lookup(name string) (Handle, bool) {
	h, ok := g[name]
	return h, ok
}

// groupGlossary forwards to the owning group and keeps its aggregate size.
type groupGlossary struct {
	group *Group
}

func (g groupGlossary) register(name string, h Handle) {
	g.group.names[name] = h
	g.group.size++
}

func (g groupGlossary) deregister(name string) {
	delete(g.group.names, name)
	g.group.size--
}

func (g groupGlossary) lookup(name string) (Handle, bool) {
	h, ok := g.group.names[name]
	return h, ok
}
