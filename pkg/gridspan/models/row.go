// Package models defines data structures for merged-cell grids.
package models

// Row is one caller-owned record of a grid.
type Row struct {
	// ID is the stable, unique identity of the row.
	ID string `json:"id"`
	// Values maps a column DataIndex to the cell value.
	Values map[string]interface{} `json:"values"`
}

// Value returns the value stored under dataIndex, or nil.
func (r Row) Value(dataIndex string) interface{} {
	if r.Values == nil {
		return nil
	}
	return r.Values[dataIndex]
}

// RowIndex returns the position of the row with the given identity, or -1.
func RowIndex(rows []Row, id string) int {
	for i, row := range rows {
		if row.ID == id {
			return i
		}
	}
	return -1
}
