package access

import (
	"slices"

	"github.com/helmethub/dealerdesk/sessioninfo"
	"github.com/helmethub/dealerdesk/util"
)

// OtherModule is the group for permissions without a module.
const OtherModule = "Other"

// Module is one group of the role form permission matrix.
type Module struct {
	Name        string
	Permissions []sessioninfo.Permission
}

// IDs returns the permission IDs of the module.
func (m Module) IDs() []int {
	ids := make([]int, 0, len(m.Permissions))
	for _, p := range m.Permissions {
		ids = append(ids, p.ID)
	}

	return ids
}

// GroupByModule groups permissions by module, keeping the order in which
// modules first appear.
func GroupByModule(perms []sessioninfo.Permission) []Module {
	var modules []Module
	index := make(map[string]int)
	for _, p := range perms {
		name := p.Module
		if name == "" {
			name = OtherModule
		}
		i, ok := index[name]
		if !ok {
			i = len(modules)
			index[name] = i
			modules = append(modules, Module{Name: name})
		}
		modules[i].Permissions = append(modules[i].Permissions, p)
	}

	return modules
}

// Selection tracks the permission IDs ticked on the role form.
type Selection struct {
	all      []int
	selected []int
}

// NewSelection returns a selection over all permissions with the given IDs
// already ticked. IDs not present in all are dropped.
func NewSelection(all []sessioninfo.Permission, selected []int) *Selection {
	s := &Selection{all: make([]int, 0, len(all))}
	for _, p := range all {
		s.all = append(s.all, p.ID)
	}
	for _, id := range selected {
		if slices.Contains(s.all, id) && !slices.Contains(s.selected, id) {
			s.selected = append(s.selected, id)
		}
	}

	return s
}

// Toggle flips a single permission.
func (s *Selection) Toggle(id int) {
	if !slices.Contains(s.all, id) {
		return
	}
	if slices.Contains(s.selected, id) {
		s.selected = util.Exclude(s.selected, []int{id})

		return
	}
	s.selected = append(s.selected, id)
}

// ToggleModule clears the module when all of its permissions are ticked and
// ticks the missing ones otherwise.
func (s *Selection) ToggleModule(m Module) {
	ids := m.IDs()
	if s.ModuleChecked(m) {
		s.selected = util.Exclude(s.selected, ids)

		return
	}
	known := slices.DeleteFunc(ids, func(id int) bool {
		return !slices.Contains(s.all, id)
	})
	s.selected = util.Union(s.selected, known)
}

// ToggleAll clears everything when every permission is ticked and ticks
// everything otherwise.
func (s *Selection) ToggleAll() {
	if s.AllChecked() {
		s.selected = nil

		return
	}
	s.selected = slices.Clone(s.all)
}

// AllChecked reports whether every known permission is ticked.
func (s *Selection) AllChecked() bool {
	return len(s.all) > 0 && util.ContainsAll(s.selected, s.all)
}

// ModuleChecked reports whether every permission of the module is ticked.
func (s *Selection) ModuleChecked(m Module) bool {
	return len(m.Permissions) > 0 && util.ContainsAll(s.selected, m.IDs())
}

// Selected reports whether a permission is ticked.
func (s *Selection) Selected(id int) bool {
	return slices.Contains(s.selected, id)
}

// IDs returns the ticked permission IDs in ascending order. It never returns
// nil so an empty selection encodes as [].
func (s *Selection) IDs() []int {
	ids := append(make([]int, 0, len(s.selected)), s.selected...)
	slices.Sort(ids)

	return ids
}
