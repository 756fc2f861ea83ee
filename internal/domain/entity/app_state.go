package entity

// AppState raíz del documento persistido: todos los proyectos y cuál está activo.
type AppState struct {
	Projects        []Project `json:"projects"`
	ActiveProjectID *string   `json:"activeProjectId"`
}

// NewAppState estado vacío por defecto ({projects: [], activeProjectId: null}).
func NewAppState() AppState {
	return AppState{Projects: []Project{}}
}

// Clone devuelve una copia profunda del estado.
func (s AppState) Clone() AppState {
	out := AppState{Projects: make([]Project, len(s.Projects))}
	for i, p := range s.Projects {
		out.Projects[i] = p.Clone()
	}
	if s.ActiveProjectID != nil {
		id := *s.ActiveProjectID
		out.ActiveProjectID = &id
	}
	return out
}

// FindProject devuelve el proyecto con el ID indicado.
func (s AppState) FindProject(id string) (Project, bool) {
	if i := s.ProjectIndex(id); i >= 0 {
		return s.Projects[i], true
	}
	return Project{}, false
}

// ActiveProject devuelve el proyecto activo, si existe.
func (s AppState) ActiveProject() (Project, bool) {
	if s.ActiveProjectID == nil {
		return Project{}, false
	}
	return s.FindProject(*s.ActiveProjectID)
}

// IsActive indica si id es el proyecto activo.
func (s AppState) IsActive(id string) bool {
	return s.ActiveProjectID != nil && *s.ActiveProjectID == id
}

// ProjectIndex posición del proyecto en Projects o -1 si no existe.
func (s AppState) ProjectIndex(id string) int {
	for i, p := range s.Projects {
		if p.ID == id {
			return i
		}
	}
	return -1
}
