package career

// Hierarchy is an ordered list of rank names, lowest first. Both the grade
// and the function successions consume the same structure, so the ordering
// lives here once instead of being repeated at each call site.
type Hierarchy []string

// IndexOf returns the position of rank in the hierarchy, or -1.
func (h Hierarchy) IndexOf(rank string) int {
	for i, name := range h {
		if name == rank {
			return i
		}
	}
	return -1
}

// Previous returns the rank immediately below the given one. The second
// return is false for the lowest rank and for ranks not in the hierarchy.
func (h Hierarchy) Previous(rank string) (string, bool) {
	i := h.IndexOf(rank)
	if i <= 0 {
		return "", false
	}
	return h[i-1], true
}

// Contains reports whether rank is a valid entry of the hierarchy.
func (h Hierarchy) Contains(rank string) bool {
	return h.IndexOf(rank) >= 0
}

// GradeHierarchy is the naval grade ladder, lowest to highest.
var GradeHierarchy = Hierarchy{
	"matelot",
	"matelot_breveté",
	"quartier_maitre_2",
	"quartier_maitre_1",
	"second_maitre",
	"maitre",
	"premier_maitre",
	"maitre_principal",
	"adjudant",
	"adjudant_chef",
}

// FunctionHierarchy is the administrative function ladder, lowest to highest.
var FunctionHierarchy = Hierarchy{
	"agent",
	"chef_equipe",
	"chef_section",
	"chef_service",
	"chef_division",
	"chef_unite",
}

// ForKind returns the hierarchy matching the career track.
func ForKind(kind Kind) Hierarchy {
	if kind == KindFunction {
		return FunctionHierarchy
	}
	return GradeHierarchy
}
