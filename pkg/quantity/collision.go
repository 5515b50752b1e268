package quantity

// Collision is an identifier produced by more than one distinct label.
type Collision struct {
	Identifier string
	// Labels are the distinct labels, in first appearance order.
	Labels []string
}

// FindCollisions returns every identifier that two or more distinct labels
// map to, ordered by the first appearance of the identifier. Repeats of the
// exact same label are not collisions.
func FindCollisions(c *Canonicalizer, labels []string) []Collision {
	seen := map[string]bool{}
	byID := map[string]int{}

	var all []Collision

	for _, label := range labels {
		if seen[label] {
			continue
		}

		seen[label] = true

		id := c.Identifier(label)

		idx, ok := byID[id]
		if !ok {
			byID[id] = len(all)
			all = append(all, Collision{Identifier: id, Labels: []string{label}})

			continue
		}

		all[idx].Labels = append(all[idx].Labels, label)
	}

	var collisions []Collision

	for _, col := range all {
		if len(col.Labels) > 1 {
			collisions = append(collisions, col)
		}
	}

	return collisions
}
