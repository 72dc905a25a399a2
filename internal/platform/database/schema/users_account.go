package schema

// RefAccountTable represents the 'users.account' table
type RefAccountTable struct {
	Table        string
	ID           string
	Email        string
	PasswordHash string
	DisplayName  string
	CreatedAt    string
	UpdatedAt    string
}

// RefAccount is the schema definition for users.account
var RefAccount = RefAccountTable{
	Table:        "users.account",
	ID:           "id",
	Email:        "email",
	PasswordHash: "passwordhash",
	DisplayName:  "displayname",
	CreatedAt:    "createdat",
	UpdatedAt:    "updatedat",
}

func (t RefAccountTable) Columns() []string {
	return []string{t.ID, t.Email, t.PasswordHash, t.DisplayName, t.CreatedAt, t.UpdatedAt}
}
