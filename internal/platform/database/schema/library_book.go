package schema

// LibraryBookTable represents the 'library.book' table
type LibraryBookTable struct {
	Table     string
	ID        string
	Title     string
	Series    string
	Volume    string
	Type      string
	CoverURL  string
	CreatedAt string
	UpdatedAt string
}

// LibraryBook is the schema definition for library.book
var LibraryBook = LibraryBookTable{
	Table:     "library.book",
	ID:        "id",
	Title:     "title",
	Series:    "series",
	Volume:    "volume",
	Type:      "booktype",
	CoverURL:  "coverurl",
	CreatedAt: "createdat",
	UpdatedAt: "updatedat",
}

func (t LibraryBookTable) Columns() []string {
	return []string{
		t.ID, t.Title, t.Series, t.Volume, t.Type, t.CoverURL, t.CreatedAt, t.UpdatedAt,
	}
}
