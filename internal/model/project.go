package model

import "time"

// Project status constants.
const (
	ProjectStatusOnTrack = "on-track"
	ProjectStatusAtRisk  = "at-risk"
	ProjectStatusBlocked = "blocked"
)

// Risk level constants, shared with milestone priority.
const (
	RiskHigh   = "high"
	RiskMedium = "medium"
	RiskLow    = "low"
)

// Project is a unit of tracked work in the portfolio.
//
// Date fields other than CreatedAt/UpdatedAt are stored as free-form
// strings exactly as the client sent them; the schema does not parse
// or validate them. CoreTeam is a descriptive label ("12 members");
// the actual membership is derived through team_member_projects.
type Project struct {
	ID                    string    `json:"id" db:"id"`
	Name                  string    `json:"name" db:"name"`
	Description           string    `json:"description" db:"description"`
	Sponsor               string    `json:"sponsor" db:"sponsor"`
	ProjectManager        string    `json:"projectManager" db:"project_manager"`
	StartDate             string    `json:"startDate" db:"start_date"`
	EndDate               string    `json:"endDate" db:"end_date"`
	Progress              int       `json:"progress" db:"progress"`
	NextMilestone         string    `json:"nextMilestone" db:"next_milestone"`
	MilestoneDate         string    `json:"milestoneDate" db:"milestone_date"`
	Status                string    `json:"status" db:"status"`
	HealthScore           int       `json:"healthScore" db:"health_score"`
	DaysToDue             int       `json:"daysToDue" db:"days_to_due"`
	BudgetPlanned         float64   `json:"budgetPlanned" db:"budget_planned"`
	BudgetActual          float64   `json:"budgetActual" db:"budget_actual"`
	RiskLevel             string    `json:"riskLevel" db:"risk_level"`
	TopRisks              string    `json:"topRisks" db:"top_risks"`
	KeyDependencies       string    `json:"keyDependencies" db:"key_dependencies"`
	CoreTeam              string    `json:"coreTeam" db:"core_team"`
	ResourceLoad          int       `json:"resourceLoad" db:"resource_load"`
	LastUpdated           string    `json:"lastUpdated" db:"last_updated"`
	NextSteeringCommittee string    `json:"nextSteeringCommittee" db:"next_steering_committee"`
	Stakeholders          string    `json:"stakeholders" db:"stakeholders"`
	CreatedAt             time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt             time.Time `json:"updatedAt" db:"updated_at"`
}

// ProjectStats holds portfolio-wide counts grouped by project status.
// Total always equals OnTrack + AtRisk + Blocked when every project
// carries one of the three enumerated statuses.
type ProjectStats struct {
	Total   int `json:"total"`
	OnTrack int `json:"onTrack"`
	AtRisk  int `json:"atRisk"`
	Blocked int `json:"blocked"`
}
