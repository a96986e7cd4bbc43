package block

import "github.com/blockweld/blockweld/pkg/directive"

// Info is the registry entry for one block identifier. Well-formed input has
// at most one default; when several are scanned the last one wins. Replaces
// and Appends keep discovery order: file scan order, then top to bottom
// within a file. That order is the only tie-break.
type Info struct {
	Default  *Occurrence
	Replaces []*Occurrence
	Appends  []*Occurrence
}

// Registry accumulates block occurrences across all scanned files. It is
// write-only during pass 1 and read-only during pass 2.
type Registry struct {
	blocks map[string]*Info
	order  []string
}

func NewRegistry() *Registry {
	return &Registry{blocks: make(map[string]*Info)}
}

// Add registers an occurrence under its identifier, creating the entry on
// first sight.
func (r *Registry) Add(occ *Occurrence) {
	info, ok := r.blocks[occ.Name]
	if !ok {
		info = &Info{}
		r.blocks[occ.Name] = info
		r.order = append(r.order, occ.Name)
	}
	switch occ.Role {
	case RoleDefault, RoleEmpty:
		info.Default = occ
	case RoleReplace:
		info.Replaces = append(info.Replaces, occ)
	case RoleAppend:
		info.Appends = append(info.Appends, occ)
	}
}

// Get returns the entry for name, or nil when the identifier was never seen.
func (r *Registry) Get(name string) *Info {
	return r.blocks[name]
}

// Names returns every registered identifier in first-seen order.
func (r *Registry) Names() []string {
	return r.order
}

// Resolve computes the final content for a block identifier, independent of
// any target file: the last replace in discovery order (else the default,
// else nothing), followed by every append in discovery order. An unknown
// identifier resolves to empty content.
func (r *Registry) Resolve(name string) []directive.ContentLine {
	resolved := make([]directive.ContentLine, 0)
	info := r.blocks[name]
	if info == nil {
		return resolved
	}
	switch {
	case len(info.Replaces) > 0:
		resolved = append(resolved, info.Replaces[len(info.Replaces)-1].Content...)
	case info.Default != nil:
		resolved = append(resolved, info.Default.Content...)
	}
	for _, occ := range info.Appends {
		resolved = append(resolved, occ.Content...)
	}
	return resolved
}
