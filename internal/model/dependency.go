package model

// DependencyKind separates sheet-supplied links from the start-date heuristic.
type DependencyKind string

const (
	// DependencyExplicit came from a PREDECESSOR column.
	DependencyExplicit DependencyKind = "explicit"
	// DependencyInferred links a task to the previous task of the same project by start date.
	DependencyInferred DependencyKind = "inferred"
)

// Dependency is a single finish-to-start link from TaskID to DependsOnID.
type Dependency struct {
	TaskID      string
	DependsOnID string
	Kind        DependencyKind
}

// IsInferred reports whether the link was synthesized.
func (d *Dependency) IsInferred() bool {
	return d != nil && d.Kind == DependencyInferred
}
