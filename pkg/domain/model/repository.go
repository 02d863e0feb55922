package model

// Repository is a GitHub repository used as a changelog source
type Repository struct {
	Owner string
	Name  string
}

func (r Repository) FullName() string {
	return r.Owner + "/" + r.Name
}

// IsZero reports whether no repository is configured.
func (r Repository) IsZero() bool {
	return r.Owner == "" && r.Name == ""
}
