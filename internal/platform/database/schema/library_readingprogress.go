package schema

// LibraryReadingProgressTable represents the 'library.readingprogress' table
type LibraryReadingProgressTable struct {
	Table        string
	ItemID       string
	IsRead       string
	CompletedAt  string
	ReadingPath  string
	CurrentPhase string
	UpdatedAt    string
}

// LibraryReadingProgress is the schema definition for library.readingprogress
var LibraryReadingProgress = LibraryReadingProgressTable{
	Table:        "library.readingprogress",
	ItemID:       "itemid",
	IsRead:       "isread",
	CompletedAt:  "completedat",
	ReadingPath:  "readingpath",
	CurrentPhase: "currentphase",
	UpdatedAt:    "updatedat",
}

func (t LibraryReadingProgressTable) Columns() []string {
	return []string{
		t.ItemID, t.IsRead, t.CompletedAt, t.ReadingPath, t.CurrentPhase, t.UpdatedAt,
	}
}
