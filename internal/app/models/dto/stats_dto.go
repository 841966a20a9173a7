package dto

// LeaderboardEntry represents one ranked member of the class
type LeaderboardEntry struct {
	Rank   int          `json:"rank"`
	User   UserResponse `json:"user"`
	Points int          `json:"points"`
}

// UpcomingBirthday represents a member whose birthday falls within
// the next thirty days. DaysUntil is zero when the birthday is today.
type UpcomingBirthday struct {
	User      UserResponse `json:"user"`
	DaysUntil int          `json:"daysUntil"`
}

// DashboardStats represents the administrative overview counters
type DashboardStats struct {
	TotalUsers       int           `json:"totalUsers"`
	TotalPosts       int           `json:"totalPosts"`
	TotalDocuments   int           `json:"totalDocuments"`
	TotalComments    int           `json:"totalComments"`
	PendingDocuments int           `json:"pendingDocuments"`
	PendingMemories  int           `json:"pendingMemories"`
	PendingReports   int           `json:"pendingReports"`
	TopUser          *UserResponse `json:"topUser,omitempty"`
}
