package schema

// RefGoalTable represents the 'finance.goal' table
type RefGoalTable struct {
	Table         string
	ID            string
	UserID        string
	Name          string
	TargetAmount  string
	CurrentAmount string
	Deadline      string
	Status        string
	CreatedAt     string
	UpdatedAt     string
}

// RefGoal is the schema definition for finance.goal
var RefGoal = RefGoalTable{
	Table:         "finance.goal",
	ID:            "id",
	UserID:        "userid",
	Name:          "name",
	TargetAmount:  "targetamount",
	CurrentAmount: "currentamount",
	Deadline:      "deadline",
	Status:        "status",
	CreatedAt:     "createdat",
	UpdatedAt:     "updatedat",
}

func (t RefGoalTable) Columns() []string {
	return []string{t.ID, t.UserID, t.Name, t.TargetAmount, t.CurrentAmount, t.Deadline, t.Status, t.CreatedAt, t.UpdatedAt}
}
