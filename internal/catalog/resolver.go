package catalog

import "strconv"

// Option is one entry of a selection control.
type Option struct {
	// Value is the form value: the record id, or "" for the placeholder.
	Value string

	// Label is the text shown to the user.
	Label string

	// Selected marks the option matching the current reference.
	Selected bool
}

// ResolveLabel returns the label of the lookup record a reference points at.
// The result is absent (false) when the reference is unset, when no record
// has that id, or when the collection is empty because it has not loaded yet.
func ResolveLabel[L Lookup](collection []L, ref Ref) (string, bool) {
	id, ok := ref.Get()
	if !ok {
		return "", false
	}
	return ResolveID(collection, id)
}

// ResolveID is ResolveLabel over a raw id. Id 0 never resolves.
func ResolveID[L Lookup](collection []L, id int) (string, bool) {
	if id == 0 {
		return "", false
	}
	for _, item := range collection {
		if item.RecordID() == id {
			return item.Label(), true
		}
	}
	return "", false
}

// Options builds the entries of a selection control: a placeholder bound to
// "no selection" followed by every lookup record in collection order.
func Options[L Lookup](collection []L, placeholder string, selected Ref) []Option {
	opts := make([]Option, 0, len(collection)+1)
	opts = append(opts, Option{
		Value:    "",
		Label:    placeholder,
		Selected: !selected.IsSet(),
	})
	for _, item := range collection {
		id := item.RecordID()
		opts = append(opts, Option{
			Value:    strconv.Itoa(id),
			Label:    item.Label(),
			Selected: selected.Is(id),
		})
	}
	return opts
}
