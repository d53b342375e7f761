package postgres

import "fmt"

// TableNames holds the prefixed table names for the current environment
type TableNames struct {
	Users        string
	Jobs         string
	Applications string
}

// NewTableNames creates table names with the given prefix
func NewTableNames(prefix string) *TableNames {
	return &TableNames{
		Users:        fmt.Sprintf("%susers", prefix),
		Jobs:         fmt.Sprintf("%sjobs", prefix),
		Applications: fmt.Sprintf("%sapplications", prefix),
	}
}
