package selection

import "vizterm/internal/geometry"

// Visual is the interaction-dependent look of one element.
type Visual struct {
	Active  bool
	Hovered bool
}

// Derive computes the visual flags for every element from the state. All
// flags start cleared, so at most one element is Active and at most one is
// Hovered.
func Derive(st State, elements []geometry.Element) []Visual {
	out := make([]Visual, len(elements))
	if st.Pinned != nil {
		if i := find(elements, st.Pinned.Key); i >= 0 {
			out[i].Active = true
		}
	}
	if st.Hovered != nil {
		if i := find(elements, st.Hovered.Key); i >= 0 {
			out[i].Hovered = true
		}
	}
	return out
}

func find(elements []geometry.Element, key string) int {
	for i, e := range elements {
		if e.Key == key {
			return i
		}
	}
	return -1
}
