package store

import (
	"context"
	"fmt"

	"github.com/pdash/portfolio-dashboard/internal/model"
)

// seedAllocationPct is the per-project allocation recorded for every
// seeded membership.
const seedAllocationPct = 50

type seedMember struct {
	member   model.TeamMember
	projects []string
	weekly   []int
}

type seedMilestone struct {
	milestone    model.Milestone
	assignees    []string
	dependencies []string
}

// seed populates the canonical sample dataset in a single transaction:
// 8 projects, 10 team members with allocations and an 8-week
// utilization history, and 8 milestones with assignees and
// cross-milestone dependencies. Every referenced id resolves within
// the dataset itself.
func (s *SQLiteStore) seed(ctx context.Context) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning seed transaction: %w", err)
	}
	defer tx.Rollback()

	for _, p := range seedProjects {
		_, err := tx.NamedExecContext(ctx, `
			INSERT INTO projects (
				id, name, description, sponsor, project_manager,
				start_date, end_date, progress, next_milestone, milestone_date,
				status, health_score, days_to_due, budget_planned, budget_actual,
				risk_level, top_risks, key_dependencies, core_team, resource_load,
				last_updated, next_steering_committee, stakeholders
			) VALUES (
				:id, :name, :description, :sponsor, :project_manager,
				:start_date, :end_date, :progress, :next_milestone, :milestone_date,
				:status, :health_score, :days_to_due, :budget_planned, :budget_actual,
				:risk_level, :top_risks, :key_dependencies, :core_team, :resource_load,
				:last_updated, :next_steering_committee, :stakeholders
			)`, p)
		if err != nil {
			return fmt.Errorf("seeding project %s: %w", p.ID, err)
		}
	}

	for _, sm := range seedMembers {
		_, err := tx.NamedExecContext(ctx, `
			INSERT INTO team_members (id, name, role, department, capacity, current_load)
			VALUES (:id, :name, :role, :department, :capacity, :current_load)`,
			sm.member)
		if err != nil {
			return fmt.Errorf("seeding team member %s: %w", sm.member.ID, err)
		}
		for _, projectID := range sm.projects {
			_, err := tx.ExecContext(ctx, `
				INSERT INTO team_member_projects (team_member_id, project_id, allocation)
				VALUES (?, ?, ?)`,
				sm.member.ID, projectID, seedAllocationPct)
			if err != nil {
				return fmt.Errorf("seeding allocation %s/%s: %w", sm.member.ID, projectID, err)
			}
		}
		for i, week := range model.UtilizationWeeks {
			_, err := tx.ExecContext(ctx, `
				INSERT INTO resource_utilization (team_member_id, week, utilization)
				VALUES (?, ?, ?)`,
				sm.member.ID, week, sm.weekly[i])
			if err != nil {
				return fmt.Errorf("seeding utilization %s/%s: %w", sm.member.ID, week, err)
			}
		}
	}

	for _, sms := range seedMilestones {
		_, err := tx.NamedExecContext(ctx, `
			INSERT INTO milestones (
				id, project_id, name, description, start_date, end_date,
				progress, status, priority
			) VALUES (
				:id, :project_id, :name, :description, :start_date, :end_date,
				:progress, :status, :priority
			)`, sms.milestone)
		if err != nil {
			return fmt.Errorf("seeding milestone %s: %w", sms.milestone.ID, err)
		}
		for _, memberID := range sms.assignees {
			_, err := tx.ExecContext(ctx, `
				INSERT INTO milestone_assignees (milestone_id, team_member_id, role)
				VALUES (?, ?, 'Team Member')`,
				sms.milestone.ID, memberID)
			if err != nil {
				return fmt.Errorf("seeding assignee %s on %s: %w", memberID, sms.milestone.ID, err)
			}
		}
		for _, depID := range sms.dependencies {
			_, err := tx.ExecContext(ctx, `
				INSERT INTO milestone_dependencies (milestone_id, dependency_id)
				VALUES (?, ?)`,
				sms.milestone.ID, depID)
			if err != nil {
				return fmt.Errorf("seeding dependency %s on %s: %w", depID, sms.milestone.ID, err)
			}
		}
	}

	return tx.Commit()
}

var seedProjects = []model.Project{
	{
		ID: "PRJ-001", Name: "Digital Transformation Initiative",
		Description:    "Modernize legacy systems and implement cloud infrastructure",
		Sponsor:        "Sarah Johnson, CTO", ProjectManager: "Mike Chen",
		StartDate:      "2024-01-15", EndDate: "2024-12-31", Progress: 65,
		NextMilestone:  "Phase 2 Deployment", MilestoneDate: "2024-08-15",
		Status:         model.ProjectStatusOnTrack, HealthScore: 85, DaysToDue: 45,
		BudgetPlanned:  2500000, BudgetActual: 1800000, RiskLevel: model.RiskMedium,
		TopRisks:       "Integration complexity with legacy systems",
		KeyDependencies: "Vendor delivery timeline", CoreTeam: "12 members",
		ResourceLoad:   78, LastUpdated: "2024-07-01",
		NextSteeringCommittee: "2024-07-15", Stakeholders: "IT, Operations, Finance",
	},
	{
		ID: "PRJ-002", Name: "Customer Portal Redesign",
		Description:    "Redesign customer-facing portal with improved UX",
		Sponsor:        "David Smith, VP Marketing", ProjectManager: "Lisa Wang",
		StartDate:      "2024-03-01", EndDate: "2024-09-30", Progress: 40,
		NextMilestone:  "User Testing Phase", MilestoneDate: "2024-07-20",
		Status:         model.ProjectStatusAtRisk, HealthScore: 65, DaysToDue: 92,
		BudgetPlanned:  800000, BudgetActual: 450000, RiskLevel: model.RiskHigh,
		TopRisks:       "User feedback integration delays",
		KeyDependencies: "Design system completion", CoreTeam: "8 members",
		ResourceLoad:   92, LastUpdated: "2024-07-02",
		NextSteeringCommittee: "2024-07-10", Stakeholders: "Marketing, Product, Customer Success",
	},
	{
		ID: "PRJ-003", Name: "Data Analytics Platform",
		Description:    "Build comprehensive analytics and reporting platform",
		Sponsor:        "Emily Davis, VP Data", ProjectManager: "Alex Rodriguez",
		StartDate:      "2024-02-01", EndDate: "2024-11-30", Progress: 25,
		NextMilestone:  "Data Pipeline Setup", MilestoneDate: "2024-08-01",
		Status:         model.ProjectStatusBlocked, HealthScore: 35, DaysToDue: 152,
		BudgetPlanned:  1200000, BudgetActual: 300000, RiskLevel: model.RiskHigh,
		TopRisks:       "Data governance approval pending",
		KeyDependencies: "Security team sign-off", CoreTeam: "6 members",
		ResourceLoad:   45, LastUpdated: "2024-06-28",
		NextSteeringCommittee: "2024-07-08", Stakeholders: "Data, Security, Legal",
	},
	{
		ID: "PRJ-004", Name: "Mobile App Development",
		Description:    "Develop native mobile applications for iOS and Android",
		Sponsor:        "Robert Wilson, VP Product", ProjectManager: "Jennifer Kim",
		StartDate:      "2024-04-01", EndDate: "2024-10-31", Progress: 55,
		NextMilestone:  "Beta Testing", MilestoneDate: "2024-08-30",
		Status:         model.ProjectStatusOnTrack, HealthScore: 90, DaysToDue: 123,
		BudgetPlanned:  1500000, BudgetActual: 850000, RiskLevel: model.RiskLow,
		TopRisks:       "App store approval process",
		KeyDependencies: "Third-party API integration", CoreTeam: "10 members",
		ResourceLoad:   85, LastUpdated: "2024-07-03",
		NextSteeringCommittee: "2024-07-20", Stakeholders: "Product, Engineering, QA",
	},
	{
		ID: "PRJ-005", Name: "Security Infrastructure Upgrade",
		Description:    "Implement advanced security measures and compliance framework",
		Sponsor:        "Michael Brown, CISO", ProjectManager: "Tom Anderson",
		StartDate:      "2024-01-01", EndDate: "2024-08-31", Progress: 80,
		NextMilestone:  "Final Security Audit", MilestoneDate: "2024-08-15",
		Status:         model.ProjectStatusOnTrack, HealthScore: 95, DaysToDue: 59,
		BudgetPlanned:  900000, BudgetActual: 720000, RiskLevel: model.RiskLow,
		TopRisks:       "Regulatory compliance updates",
		KeyDependencies: "External auditor availability", CoreTeam: "5 members",
		ResourceLoad:   60, LastUpdated: "2024-07-01",
		NextSteeringCommittee: "2024-07-12", Stakeholders: "Security, Legal, Compliance",
	},
	{
		ID: "PRJ-006", Name: "ERP System Implementation",
		Description:    "Implement new enterprise resource planning system",
		Sponsor:        "Patricia Garcia, CFO", ProjectManager: "Kevin O'Brien",
		StartDate:      "2024-05-01", EndDate: "2024-12-31", Progress: 15,
		NextMilestone:  "Requirements Gathering", MilestoneDate: "2024-08-30",
		Status:         model.ProjectStatusAtRisk, HealthScore: 55, DaysToDue: 178,
		BudgetPlanned:  3000000, BudgetActual: 200000, RiskLevel: model.RiskHigh,
		TopRisks:       "Vendor selection delays",
		KeyDependencies: "Stakeholder alignment", CoreTeam: "15 members",
		ResourceLoad:   70, LastUpdated: "2024-07-01",
		NextSteeringCommittee: "2024-07-18", Stakeholders: "Finance, Operations, IT",
	},
	{
		ID: "PRJ-007", Name: "AI-Powered Customer Service",
		Description:    "Implement AI chatbot and automated customer support system",
		Sponsor:        "Rachel Lee, VP Customer Success", ProjectManager: "Marcus Johnson",
		StartDate:      "2024-06-01", EndDate: "2024-11-30", Progress: 10,
		NextMilestone:  "AI Model Training", MilestoneDate: "2024-09-15",
		Status:         model.ProjectStatusOnTrack, HealthScore: 75, DaysToDue: 152,
		BudgetPlanned:  800000, BudgetActual: 80000, RiskLevel: model.RiskMedium,
		TopRisks:       "AI model accuracy requirements",
		KeyDependencies: "Data pipeline completion", CoreTeam: "8 members",
		ResourceLoad:   95, LastUpdated: "2024-07-02",
		NextSteeringCommittee: "2024-07-25", Stakeholders: "Customer Success, Product, Engineering",
	},
	{
		ID: "PRJ-008", Name: "Office Expansion Project",
		Description:    "Expand office space and modernize workplace facilities",
		Sponsor:        "James Wilson, VP Operations", ProjectManager: "Sofia Rodriguez",
		StartDate:      "2024-07-01", EndDate: "2024-10-31", Progress: 5,
		NextMilestone:  "Furniture Installation", MilestoneDate: "2024-09-01",
		Status:         model.ProjectStatusOnTrack, HealthScore: 85, DaysToDue: 123,
		BudgetPlanned:  500000, BudgetActual: 25000, RiskLevel: model.RiskLow,
		TopRisks:       "Construction permit delays",
		KeyDependencies: "Landlord approval", CoreTeam: "4 members",
		ResourceLoad:   55, LastUpdated: "2024-07-01",
		NextSteeringCommittee: "2024-07-30", Stakeholders: "Operations, HR, Facilities",
	},
}

var seedMembers = []seedMember{
	{
		member:   model.TeamMember{ID: "tm1", Name: "Sarah Johnson", Role: "Senior Developer", Department: "Engineering", Capacity: 40, CurrentLoad: 85},
		projects: []string{"PRJ-001", "PRJ-004"},
		weekly:   []int{85, 88, 90, 92, 85, 88, 90, 92},
	},
	{
		member:   model.TeamMember{ID: "tm2", Name: "Mike Chen", Role: "Project Manager", Department: "PMO", Capacity: 40, CurrentLoad: 92},
		projects: []string{"PRJ-001"},
		weekly:   []int{92, 95, 98, 100, 92, 95, 98, 100},
	},
	{
		member:   model.TeamMember{ID: "tm3", Name: "Lisa Wang", Role: "UX Designer", Department: "Design", Capacity: 40, CurrentLoad: 78},
		projects: []string{"PRJ-002"},
		weekly:   []int{78, 80, 82, 85, 78, 80, 82, 85},
	},
	{
		member:   model.TeamMember{ID: "tm4", Name: "Alex Rodriguez", Role: "Data Engineer", Department: "Data", Capacity: 40, CurrentLoad: 45},
		projects: []string{"PRJ-003"},
		weekly:   []int{45, 50, 55, 60, 45, 50, 55, 60},
	},
	{
		member:   model.TeamMember{ID: "tm5", Name: "Jennifer Kim", Role: "Mobile Developer", Department: "Engineering", Capacity: 40, CurrentLoad: 88},
		projects: []string{"PRJ-004"},
		weekly:   []int{88, 90, 92, 95, 88, 90, 92, 95},
	},
	{
		member:   model.TeamMember{ID: "tm6", Name: "Tom Anderson", Role: "Security Engineer", Department: "Security", Capacity: 40, CurrentLoad: 60},
		projects: []string{"PRJ-005"},
		weekly:   []int{60, 65, 70, 75, 60, 65, 70, 75},
	},
	{
		member:   model.TeamMember{ID: "tm7", Name: "Kevin O'Brien", Role: "Business Analyst", Department: "PMO", Capacity: 40, CurrentLoad: 70},
		projects: []string{"PRJ-006"},
		weekly:   []int{70, 72, 75, 78, 70, 72, 75, 78},
	},
	{
		member:   model.TeamMember{ID: "tm8", Name: "Marcus Johnson", Role: "AI Engineer", Department: "Engineering", Capacity: 40, CurrentLoad: 95},
		projects: []string{"PRJ-007"},
		weekly:   []int{95, 98, 100, 100, 95, 98, 100, 100},
	},
	{
		member:   model.TeamMember{ID: "tm9", Name: "Sofia Rodriguez", Role: "Facilities Manager", Department: "Operations", Capacity: 40, CurrentLoad: 55},
		projects: []string{"PRJ-008"},
		weekly:   []int{55, 58, 60, 62, 55, 58, 60, 62},
	},
	{
		member:   model.TeamMember{ID: "tm10", Name: "David Smith", Role: "Marketing Manager", Department: "Marketing", Capacity: 40, CurrentLoad: 82},
		projects: []string{"PRJ-002"},
		weekly:   []int{82, 85, 88, 90, 82, 85, 88, 90},
	},
}

var seedMilestones = []seedMilestone{
	{
		milestone: model.Milestone{
			ID: "ms1", ProjectID: "PRJ-001", Name: "Phase 2 Deployment",
			Description: "Deploy cloud infrastructure and migrate legacy systems",
			StartDate:   "2024-08-15", EndDate: "2024-09-15", Progress: 0,
			Status:      model.MilestoneStatusUpcoming, Priority: model.RiskHigh,
		},
		assignees: []string{"tm1", "tm2"},
	},
	{
		milestone: model.Milestone{
			ID: "ms2", ProjectID: "PRJ-002", Name: "User Testing Phase",
			Description: "Conduct comprehensive user testing and feedback collection",
			StartDate:   "2024-07-20", EndDate: "2024-08-20", Progress: 25,
			Status:      model.MilestoneStatusInProgress, Priority: model.RiskHigh,
		},
		assignees:    []string{"tm3", "tm10"},
		dependencies: []string{"ms1"},
	},
	{
		milestone: model.Milestone{
			ID: "ms3", ProjectID: "PRJ-003", Name: "Data Pipeline Setup",
			Description: "Set up data ingestion and processing pipelines",
			StartDate:   "2024-08-01", EndDate: "2024-09-01", Progress: 0,
			Status:      model.MilestoneStatusUpcoming, Priority: model.RiskMedium,
		},
		assignees: []string{"tm4"},
	},
	{
		milestone: model.Milestone{
			ID: "ms4", ProjectID: "PRJ-004", Name: "Beta Testing",
			Description: "Launch beta version and collect user feedback",
			StartDate:   "2024-08-30", EndDate: "2024-09-30", Progress: 0,
			Status:      model.MilestoneStatusUpcoming, Priority: model.RiskHigh,
		},
		assignees:    []string{"tm5", "tm1"},
		dependencies: []string{"ms2"},
	},
	{
		milestone: model.Milestone{
			ID: "ms5", ProjectID: "PRJ-005", Name: "Final Security Audit",
			Description: "Complete comprehensive security audit and compliance review",
			StartDate:   "2024-08-15", EndDate: "2024-08-31", Progress: 0,
			Status:      model.MilestoneStatusUpcoming, Priority: model.RiskHigh,
		},
		assignees: []string{"tm6"},
	},
	{
		milestone: model.Milestone{
			ID: "ms6", ProjectID: "PRJ-006", Name: "Requirements Gathering",
			Description: "Complete stakeholder requirements and vendor selection",
			StartDate:   "2024-08-30", EndDate: "2024-09-30", Progress: 0,
			Status:      model.MilestoneStatusUpcoming, Priority: model.RiskMedium,
		},
		assignees: []string{"tm7"},
	},
	{
		milestone: model.Milestone{
			ID: "ms7", ProjectID: "PRJ-007", Name: "AI Model Training",
			Description: "Train and optimize AI models for customer service chatbot",
			StartDate:   "2024-09-15", EndDate: "2024-10-15", Progress: 0,
			Status:      model.MilestoneStatusUpcoming, Priority: model.RiskMedium,
		},
		assignees:    []string{"tm8"},
		dependencies: []string{"ms3"},
	},
	{
		milestone: model.Milestone{
			ID: "ms8", ProjectID: "PRJ-008", Name: "Furniture Installation",
			Description: "Install and configure new office furniture and equipment",
			StartDate:   "2024-09-01", EndDate: "2024-09-15", Progress: 0,
			Status:      model.MilestoneStatusUpcoming, Priority: model.RiskLow,
		},
		assignees: []string{"tm9"},
	},
}
