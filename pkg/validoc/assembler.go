package validoc

// Group collects a rule stream into one descriptor per member path, in order
// of first occurrence. Rules keep their stream order within a group.
func Group(rules []RuleDescription) []RuleDescriptor {
	out := make([]RuleDescriptor, 0)
	index := make(map[string]int)
	for _, r := range rules {
		i, ok := index[r.Path]
		if !ok {
			i = len(out)
			index[r.Path] = i
			out = append(out, RuleDescriptor{MemberName: r.MemberName, Path: r.Path})
		}
		out[i].Rules = append(out[i].Rules, r)
	}
	return out
}
