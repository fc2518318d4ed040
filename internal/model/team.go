package model

import "time"

// TeamMember is a person with a weekly capacity and per-project allocations.
type TeamMember struct {
	ID          string    `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Role        string    `json:"role" db:"role"`
	Department  string    `json:"department" db:"department"`
	Capacity    int       `json:"capacity" db:"capacity"`
	CurrentLoad int       `json:"currentLoad" db:"current_load"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`

	// Projects is derived from team_member_projects; it is never
	// stored on the row itself.
	Projects []string `json:"projects" db:"-"`
}

// UtilizationWeeks is the fixed, ordered label set used for the
// utilization matrix and by the seed data.
var UtilizationWeeks = []string{
	"Week 1", "Week 2", "Week 3", "Week 4",
	"Week 5", "Week 6", "Week 7", "Week 8",
}

// UtilizationMatrix is the dense member-by-week view materialized from
// the sparse resource_utilization fact table. Missing facts read as 0.
// Values above 100 represent overload and are not clamped.
type UtilizationMatrix struct {
	TeamMembers     []TeamMember              `json:"teamMembers"`
	Weeks           []string                  `json:"weeks"`
	UtilizationData map[string]map[string]int `json:"utilizationData"`
}
