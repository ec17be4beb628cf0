package solution

// PropertyEntry is a single `name = value` pair inside a section. Entries
// have no identity beyond their position in the owning section; insertion
// order is preserved through serialization.
type PropertyEntry struct {
	Name  string
	Value string
}
