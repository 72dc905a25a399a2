package schema

// RefCategoryTable represents the 'finance.category' table
type RefCategoryTable struct {
	Table     string
	ID        string
	UserID    string
	ParentID  string
	Name      string
	Slug      string
	Kind      string
	Color     string
	Icon      string
	CreatedAt string
	UpdatedAt string
}

// RefCategory is the schema definition for finance.category
var RefCategory = RefCategoryTable{
	Table:     "finance.category",
	ID:        "id",
	UserID:    "userid",
	ParentID:  "parentid",
	Name:      "name",
	Slug:      "slug",
	Kind:      "kind",
	Color:     "color",
	Icon:      "icon",
	CreatedAt: "createdat",
	UpdatedAt: "updatedat",
}

func (t RefCategoryTable) Columns() []string {
	return []string{t.ID, t.UserID, t.ParentID, t.Name, t.Slug, t.Kind, t.Color, t.Icon, t.CreatedAt, t.UpdatedAt}
}
