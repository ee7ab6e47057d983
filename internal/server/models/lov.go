package models

// LovKind separates the two value lists.
type LovKind string

const (
	LovRank LovKind = "rank"
	LovRole LovKind = "role"
)

// Lov is one entry of a list of values (a rank or a role).
type Lov struct {
	ID   string `json:"uuid"`
	Code string `json:"code"`
	Name string `json:"name"`
}
