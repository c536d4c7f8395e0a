package graph

import (
	"fmt"
	"strings"

	"github.com/zeebo/xxh3"
)

// Fingerprint returns a short stable hash of the declaration. It is embedded
// in generated file headers so a regenerated file can be told apart from a
// stale one without diffing. Not cryptographic.
func (g *Graph) Fingerprint() string {
	return fmt.Sprintf("%016x", xxh3.HashString(g.canonical()))
}

// canonical renders the declaration in a fixed textual form. Declaration
// order is part of machine semantics (guard tie-break), so it is part of the
// fingerprint too.
func (g *Graph) canonical() string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "machine %s package %s initial %s entry %t\n",
		g.Name, g.Package, g.Initial, g.RunInitialEntry)

	sb.WriteString("states")

	for _, s := range g.States {
		sb.WriteString(" " + s)
	}

	sb.WriteString("\nedges")

	for _, e := range g.Edges {
		fmt.Fprintf(&sb, " %s=>%s", e.From, e.To)
	}

	sb.WriteString("\nroutes")

	for _, r := range g.Routes {
		fmt.Fprintf(&sb, " %s %s %s", r.Payload, r.Direction, r.State)
	}

	sb.WriteString("\n")

	return sb.String()
}
