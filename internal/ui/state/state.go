package state

// AppState contains the UI state that is not owned by the engine session or
// the selection store
type AppState struct {
	// Cursor is a row index into the current row list, -1 when no item row exists
	Cursor int

	// Query text as it was before entering search, restored on cancel
	SearchBackup string

	// UI state
	ViewportHeight int // terminal lines available for rows
	StatusMessage  string
	Loading        bool
	LoadingSource  string
	InPagerMode    bool

	// Catalog bookkeeping
	CatalogVersion int
	ItemCount      int
}

// NewAppState creates a new application state
func NewAppState() *AppState {
	return &AppState{
		Cursor:         -1,
		ViewportHeight: 20, // Default until the first WindowSizeMsg
	}
}

// StartLoading marks a catalog load in flight
func (s *AppState) StartLoading(source string) {
	s.Loading = true
	s.LoadingSource = source
	s.StatusMessage = "Loading " + source + "..."
}

// FinishLoading records a completed catalog load
func (s *AppState) FinishLoading(version, itemCount int) {
	s.Loading = false
	s.LoadingSource = ""
	s.CatalogVersion = version
	s.ItemCount = itemCount
}
