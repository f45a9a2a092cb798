package store

// Folder is a named container grouping notes. Exactly one folder in the
// collection is the trash folder, distinguished by name (TrashName), not by
// a fixed id: legacy documents created it under "f-trash", newer ones under
// a generated id.
type Folder struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Note is a single note. FolderID is kept while the note sits in trash so
// restoring returns it to its original folder.
type Note struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Body      string `json:"body"`
	Pinned    bool   `json:"pinned"`
	UpdatedAt int64  `json:"updatedAt"` // unix milliseconds
	Trashed   bool   `json:"trashed,omitempty"`
	FolderID  string `json:"folderId"`
}

// DarkMode is the display-mode preference.
type DarkMode string

const (
	DarkModeLight DarkMode = "light"
	DarkModeDark  DarkMode = "dark"
	DarkModeAuto  DarkMode = "auto"
)

// TaskPriority orders daily tasks by importance.
type TaskPriority string

const (
	PriorityLow    TaskPriority = "low"
	PriorityMedium TaskPriority = "medium"
	PriorityHigh   TaskPriority = "high"
)

// DailyTask is one entry of a daily plan.
type DailyTask struct {
	ID            string       `json:"id"`
	Text          string       `json:"text"`
	Completed     bool         `json:"completed"`
	Priority      TaskPriority `json:"priority"`
	TimeOfDay     string       `json:"timeOfDay,omitempty"` // morning, midday, evening
	EstimatedTime int          `json:"estimatedTime,omitempty"`
	Category      string       `json:"category,omitempty"`
}

// DailyPlan holds the tasks planned for one calendar date (YYYY-MM-DD).
type DailyPlan struct {
	ID        string      `json:"id"`
	Date      string      `json:"date"`
	Summary   string      `json:"summary,omitempty"`
	Tasks     []DailyTask `json:"tasks"`
	CreatedAt int64       `json:"createdAt"`
	UpdatedAt int64       `json:"updatedAt"`
}

// WorkHours is the user's working window.
type WorkHours struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// MealTimes are the user's meal preferences.
type MealTimes struct {
	Breakfast string `json:"breakfast"`
	Lunch     string `json:"lunch"`
	Dinner    string `json:"dinner"`
}

// Habit is a recurring routine tracked in settings.
type Habit struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Frequency string `json:"frequency,omitempty"`
}

// Goal is a longer-term objective tracked in settings.
type Goal struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Progress int    `json:"progress"`
}

// UserSettings groups the schedule, habit and goal preferences. They share
// the persisted document with the note state but no core logic depends on
// them.
type UserSettings struct {
	WorkHours WorkHours `json:"workHours"`
	MealTimes MealTimes `json:"mealTimes"`
	Habits    []Habit   `json:"habits"`
	Goals     []Goal    `json:"goals"`
}

// DefaultSettings mirrors the defaults the planner assumes when the user
// never touched the settings screen.
func DefaultSettings() UserSettings {
	return UserSettings{
		WorkHours: WorkHours{Start: "09:00", End: "17:00"},
		MealTimes: MealTimes{Breakfast: "08:00", Lunch: "12:30", Dinner: "19:00"},
	}
}

// AppState is the whole persisted document. Order of the folder and note
// slices is meaningful: it is the insertion order the projector's stable
// sort falls back to.
type AppState struct {
	Folders          []Folder     `json:"folders"`
	Notes            []Note       `json:"notes"`
	ActiveFolderID   string       `json:"activeFolderId"`
	ActiveNoteID     string       `json:"activeNoteId,omitempty"`
	Query            string       `json:"query"`
	DarkMode         DarkMode     `json:"darkMode"`
	DailyPlans       []DailyPlan  `json:"dailyPlans,omitempty"`
	Settings         UserSettings `json:"settings"`
	CookiePreference string       `json:"cookiePreference,omitempty"`
}

// Clone returns a deep copy of the state, so callers can hold a snapshot
// while the store keeps mutating.
func (s *AppState) Clone() *AppState {
	out := *s
	out.Folders = append([]Folder(nil), s.Folders...)
	out.Notes = append([]Note(nil), s.Notes...)
	out.DailyPlans = make([]DailyPlan, len(s.DailyPlans))
	for i, p := range s.DailyPlans {
		p.Tasks = append([]DailyTask(nil), p.Tasks...)
		out.DailyPlans[i] = p
	}
	out.Settings.Habits = append([]Habit(nil), s.Settings.Habits...)
	out.Settings.Goals = append([]Goal(nil), s.Settings.Goals...)
	return &out
}
