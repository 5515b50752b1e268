// Package dimgroup partitions quantity rows by dimensionality.
package dimgroup

import (
	"github.com/MacroPower/dimgen/pkg/dimtable"
)

// Group is a set of quantities sharing one [dimtable.Signature].
type Group struct {
	// Names are the quantity names in first appearance order. The first is
	// the primary name; the rest are aliases.
	Names     []string
	Signature dimtable.Signature
}

// Primary returns the first quantity name seen for the signature.
func (g Group) Primary() string {
	return g.Names[0]
}

// Aliases returns every name after the primary.
func (g Group) Aliases() []string {
	return g.Names[1:]
}

// Build groups rows by signature in a single pass. Groups are ordered by the
// first appearance of their signature, and every row contributes its name to
// exactly one group.
func Build(rows []dimtable.Row) []Group {
	index := make(map[dimtable.Signature]int, len(rows))

	var groups []Group

	for _, r := range rows {
		sig := r.Signature()

		i, ok := index[sig]
		if !ok {
			index[sig] = len(groups)
			groups = append(groups, Group{
				Signature: sig,
				Names:     []string{r.Name},
			})

			continue
		}

		groups[i].Names = append(groups[i].Names, r.Name)
	}

	return groups
}
