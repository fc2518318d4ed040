package model

import (
	"math/rand"
	"strconv"
	"time"
)

// Milestone status constants.
const (
	MilestoneStatusCompleted  = "completed"
	MilestoneStatusInProgress = "in-progress"
	MilestoneStatusUpcoming   = "upcoming"
	MilestoneStatusDelayed    = "delayed"
)

// Milestone is a trackable sub-deliverable of a project.
type Milestone struct {
	ID          string    `json:"id" db:"id"`
	ProjectID   string    `json:"projectId" db:"project_id"`
	Name        string    `json:"name" db:"name"`
	Description string    `json:"description" db:"description"`
	StartDate   string    `json:"startDate" db:"start_date"`
	EndDate     string    `json:"endDate" db:"end_date"`
	Progress    int       `json:"progress" db:"progress"`
	Status      string    `json:"status" db:"status"`
	Priority    string    `json:"priority" db:"priority"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`

	// ProjectName is populated by queries that join with projects.
	ProjectName string `json:"projectName" db:"-"`

	// Assignees holds team member display names (not ids), reshaped
	// from milestone_assignees rows.
	Assignees []string `json:"assignees" db:"-"`

	// Dependencies holds ids of milestones this one depends on,
	// reshaped from milestone_dependencies rows.
	Dependencies []string `json:"dependencies" db:"-"`
}

const base36 = "0123456789abcdefghijklmnopqrstuvwxyz"

// NewMilestoneID synthesizes a milestone id of the form
// "ms<unix-millis>-<9-char base36 suffix>". Collisions are treated as
// negligible, not defended against.
func NewMilestoneID() string {
	suffix := make([]byte, 9)
	for i := range suffix {
		suffix[i] = base36[rand.Intn(len(base36))]
	}
	return "ms" + strconv.FormatInt(time.Now().UnixMilli(), 10) + "-" + string(suffix)
}
