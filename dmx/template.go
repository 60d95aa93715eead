package dmx

// Template describes a type of fixture and its available channel layouts.
// Predefined templates ship with the library; user templates receive
// freshly allocated ids and are otherwise immutable once added.
type Template struct {
	ID           int
	Name         string
	Manufacturer string
	Modes        []Mode
	UserDefined  bool
}

// Mode returns the layout at index, nil if out of range.
func (t *Template) Mode(index int) *Mode {
	if index < 0 || index >= len(t.Modes) {
		return nil
	}
	return &t.Modes[index]
}

// DefaultMode returns the first layout, nil for an empty template.
func (t *Template) DefaultMode() *Mode {
	return t.Mode(0)
}

// Library holds every available fixture template.
type Library struct {
	templates []Template
	nextID    int
}

// NewLibrary builds a library preloaded with the predefined templates.
func NewLibrary() *Library {
	lib := &Library{nextID: 1}
	for _, t := range predefinedTemplates {
		t.ID = lib.nextID
		lib.nextID++
		lib.templates = append(lib.templates, t)
	}
	return lib
}

// AddUserTemplate registers a user-defined template, assigning it a fresh
// id, and returns that id.
func (l *Library) AddUserTemplate(t Template) int {
	t.ID = l.nextID
	t.UserDefined = true
	l.nextID++
	l.templates = append(l.templates, t)
	return t.ID
}

// Template looks a template up by id, nil if unknown.
func (l *Library) Template(id int) *Template {
	for i := range l.templates {
		if l.templates[i].ID == id {
			return &l.templates[i]
		}
	}
	return nil
}

// Templates returns every template in the library.
func (l *Library) Templates() []Template {
	return l.templates
}

// UserTemplates returns only user-defined templates.
func (l *Library) UserTemplates() []Template {
	var out []Template
	for _, t := range l.templates {
		if t.UserDefined {
			out = append(out, t)
		}
	}
	return out
}
