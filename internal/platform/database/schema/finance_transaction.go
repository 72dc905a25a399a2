package schema

// RefTransactionTable represents the 'finance.transaction' table
type RefTransactionTable struct {
	Table       string
	ID          string
	UserID      string
	CategoryID  string
	Kind        string
	Amount      string
	Description string
	Notes       string
	OccurredAt  string
	CreatedAt   string
	UpdatedAt   string
}

// RefTransaction is the schema definition for finance.transaction
var RefTransaction = RefTransactionTable{
	Table:       "finance.transaction",
	ID:          "id",
	UserID:      "userid",
	CategoryID:  "categoryid",
	Kind:        "kind",
	Amount:      "amount",
	Description: "description",
	Notes:       "notes",
	OccurredAt:  "occurredat",
	CreatedAt:   "createdat",
	UpdatedAt:   "updatedat",
}

func (t RefTransactionTable) Columns() []string {
	return []string{t.ID, t.UserID, t.CategoryID, t.Kind, t.Amount, t.Description, t.Notes, t.OccurredAt, t.CreatedAt, t.UpdatedAt}
}
