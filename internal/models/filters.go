package models

// PropertyFilter represents the per-interaction filter selection bound from
// query parameters (repeated values for the multi-selects). It is ephemeral
// state: never persisted beyond the session store, never shared across
// sessions.
//
// Empty Categories or Neighborhoods means "no filtering on that dimension",
// not "match nothing". The dashboard's multi-selects default to everything
// selected, and a cleared control is treated as pass-through.
type PropertyFilter struct {
	Categories    []string `form:"categories" json:"categories"`
	Budget        string   `form:"budget" json:"budget"` // bracket key, empty means "any"
	Neighborhoods []string `form:"neighborhoods" json:"neighborhoods"`
}

// FilterOptions describes the value domains offered for each control.
// Neighborhoods is recomputed from the category+budget selection alone, so
// the control never offers a choice that would match zero rows under the
// upstream filters.
type FilterOptions struct {
	Categories    []string       `json:"categories"`
	Budgets       []BudgetOption `json:"budgets"`
	Neighborhoods []string       `json:"neighborhoods"`
}

// BudgetOption is one entry of the fixed ordered bracket list.
type BudgetOption struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}
