package board

// Column represents an ordered lane on a board. Position is zero-based and
// unique within a board.
type Column struct {
	ID       string
	BoardID  string
	Name     string
	Position int
	// Done marks the column as terminal: moving a task here requires all of
	// its dependencies to already sit in a done column.
	Done bool
}

// DefaultColumns returns the column set applied to boards created without an
// explicit layout.
func DefaultColumns() []Column {
	return []Column{
		{Name: "Backlog", Position: 0},
		{Name: "In Progress", Position: 1},
		{Name: "Done", Position: 2, Done: true},
	}
}
