// Package seed loads a demo data set for local development and demos. All
// writes go through the application services so the fixtures pass the same
// hashing and referential checks as real requests.
package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/taskflow/core/internal/application/services"
	"github.com/taskflow/core/internal/infrastructure/logger"
	"github.com/taskflow/core/internal/ports"
)

// Services collects the application services the seeder writes through.
type Services struct {
	Users    *services.UserService
	Teams    *services.TeamService
	Projects *services.ProjectService
	Tasks    *services.TaskService
}

// Load populates the storage backend with the demo workspace: four users, one
// team, three projects, eight tasks and a short comment thread. It is a no-op
// when users already exist so restarts do not duplicate the fixtures.
func Load(ctx context.Context, svc Services, log *logger.Logger) error {
	existing, err := svc.Users.ListUsers(ctx)
	if err != nil {
		return fmt.Errorf("seed precheck: %w", err)
	}
	if len(existing) > 0 {
		log.Info("Seed skipped, storage already has users", "count", len(existing))
		return nil
	}

	tom, err := svc.Users.CreateUser(ctx, ports.CreateUserRequest{
		Username: "tom",
		Email:    "tom@example.com",
		Name:     "Tom Cook",
		Password: "password123",
		Avatar:   strPtr("https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?w=256&h=256&q=80"),
	})
	if err != nil {
		return fmt.Errorf("seed users: %w", err)
	}
	emily, err := svc.Users.CreateUser(ctx, ports.CreateUserRequest{
		Username: "emily",
		Email:    "emily@example.com",
		Name:     "Emily Davis",
		Password: "password123",
		Avatar:   strPtr("https://images.unsplash.com/photo-1550525811-e5869dd03032?w=256&h=256&q=80"),
	})
	if err != nil {
		return fmt.Errorf("seed users: %w", err)
	}
	alex, err := svc.Users.CreateUser(ctx, ports.CreateUserRequest{
		Username: "alex",
		Email:    "alex@example.com",
		Name:     "Alex Johnson",
		Password: "password123",
		Avatar:   strPtr("https://images.unsplash.com/photo-1500648767791-00dcc994a43e?w=256&h=256&q=80"),
	})
	if err != nil {
		return fmt.Errorf("seed users: %w", err)
	}
	david, err := svc.Users.CreateUser(ctx, ports.CreateUserRequest{
		Username: "david",
		Email:    "david@example.com",
		Name:     "David Wilson",
		Password: "password123",
		Avatar:   strPtr("https://images.unsplash.com/photo-1491528323818-fdd1faba62cc?w=256&h=256&q=80"),
	})
	if err != nil {
		return fmt.Errorf("seed users: %w", err)
	}

	team, err := svc.Teams.CreateTeam(ctx, ports.CreateTeamRequest{
		Name:        "Product Development",
		Description: strPtr("Team responsible for product development and design"),
	})
	if err != nil {
		return fmt.Errorf("seed team: %w", err)
	}

	memberships := []ports.AddTeamMemberRequest{
		{UserID: tom.ID, Role: "admin"},
		{UserID: emily.ID},
		{UserID: alex.ID},
		{UserID: david.ID},
	}
	for _, m := range memberships {
		if _, err := svc.Teams.AddMember(ctx, team.ID, m); err != nil {
			return fmt.Errorf("seed team members: %w", err)
		}
	}

	if _, err := svc.Projects.CreateProject(ctx, ports.CreateProjectRequest{
		Name:        "Marketing Website",
		Description: strPtr("Redesign and development of the marketing website"),
		TeamID:      team.ID,
		Color:       strPtr("#22C55E"),
	}); err != nil {
		return fmt.Errorf("seed projects: %w", err)
	}
	mobileApp, err := svc.Projects.CreateProject(ctx, ports.CreateProjectRequest{
		Name:        "Mobile App Redesign",
		Description: strPtr("User interface redesign for the mobile application"),
		TeamID:      team.ID,
		Color:       strPtr("#F59E0B"),
	})
	if err != nil {
		return fmt.Errorf("seed projects: %w", err)
	}
	if _, err := svc.Projects.CreateProject(ctx, ports.CreateProjectRequest{
		Name:        "API Integration",
		Description: strPtr("Integration with third-party APIs"),
		TeamID:      team.ID,
		Color:       strPtr("#3B82F6"),
	}); err != nil {
		return fmt.Errorf("seed projects: %w", err)
	}

	// Due dates are spread around "now" so the dashboard shows a mix of
	// upcoming and overdue work no matter when the seed runs.
	now := time.Now().UTC().Truncate(24 * time.Hour)

	taskRequests := []ports.CreateTaskRequest{
		{
			Title:       "Create app wireframes",
			Description: strPtr("Design initial wireframes for the mobile application screens."),
			ProjectID:   mobileApp.ID,
			Status:      "todo",
			Priority:    "medium",
			AssigneeID:  &emily.ID,
			CreatorID:   tom.ID,
			DueDate:     timePtr(now.AddDate(0, 0, 5)),
			Tags:        []string{"Design"},
		},
		{
			Title:       "User testing plan",
			Description: strPtr("Develop a comprehensive user testing strategy for the new features."),
			ProjectID:   mobileApp.ID,
			Status:      "todo",
			Priority:    "low",
			AssigneeID:  &alex.ID,
			CreatorID:   tom.ID,
			DueDate:     timePtr(now.AddDate(0, 0, 9)),
			Tags:        []string{"Research"},
		},
		{
			Title:       "API Integration",
			Description: strPtr("Connect the app to backend services via RESTful API endpoints."),
			ProjectID:   mobileApp.ID,
			Status:      "in_progress",
			Priority:    "high",
			AssigneeID:  &david.ID,
			CreatorID:   tom.ID,
			DueDate:     timePtr(now.AddDate(0, 0, 7)),
			Progress:    intPtr(65),
			Tags:        []string{"Development"},
		},
		{
			Title:       "Design system update",
			Description: strPtr("Refine the design system components for consistent styling."),
			ProjectID:   mobileApp.ID,
			Status:      "in_progress",
			Priority:    "medium",
			AssigneeID:  &emily.ID,
			CreatorID:   tom.ID,
			DueDate:     timePtr(now.AddDate(0, 0, 12)),
			Progress:    intPtr(40),
			Tags:        []string{"UX Design"},
		},
		{
			Title:       "Test authentication flow",
			Description: strPtr("Validate user login, registration, and password recovery processes."),
			ProjectID:   mobileApp.ID,
			Status:      "review",
			Priority:    "medium",
			AssigneeID:  &alex.ID,
			CreatorID:   tom.ID,
			DueDate:     timePtr(now.AddDate(0, 0, 6)),
			Tags:        []string{"QA"},
		},
		{
			Title:       "Profile screen implementation",
			Description: strPtr("Review user profile screen implementation with edit capabilities."),
			ProjectID:   mobileApp.ID,
			Status:      "review",
			Priority:    "medium",
			AssigneeID:  &david.ID,
			CreatorID:   tom.ID,
			DueDate:     timePtr(now.AddDate(0, 0, -1)),
			Tags:        []string{"Development"},
		},
		{
			Title:       "Project setup",
			Description: strPtr("Initialize repository and development environment configuration."),
			ProjectID:   mobileApp.ID,
			Status:      "done",
			Priority:    "high",
			AssigneeID:  &david.ID,
			CreatorID:   tom.ID,
			DueDate:     timePtr(now.AddDate(0, 0, -4)),
			Progress:    intPtr(100),
			Tags:        []string{"Development"},
		},
		{
			Title:       "Competitor analysis",
			Description: strPtr("Research and document competitor features and UI patterns."),
			ProjectID:   mobileApp.ID,
			Status:      "done",
			Priority:    "medium",
			AssigneeID:  &alex.ID,
			CreatorID:   tom.ID,
			DueDate:     timePtr(now.AddDate(0, 0, -6)),
			Progress:    intPtr(100),
			Tags:        []string{"Research"},
		},
	}

	var authFlowTaskID int64
	for _, req := range taskRequests {
		task, err := svc.Tasks.CreateTask(ctx, req)
		if err != nil {
			return fmt.Errorf("seed tasks: %w", err)
		}
		if task.Title == "Test authentication flow" {
			authFlowTaskID = task.ID
		}
	}

	comments := []ports.CreateCommentRequest{
		{UserID: tom.ID, Content: "Please make sure to test on multiple browsers"},
		{UserID: emily.ID, Content: "Will this include social login testing as well?"},
		{UserID: alex.ID, Content: "Yes, I'll include all authentication methods in the test plan"},
	}
	for _, req := range comments {
		if _, err := svc.Tasks.AddComment(ctx, authFlowTaskID, req); err != nil {
			return fmt.Errorf("seed comments: %w", err)
		}
	}

	log.Info("Seed data loaded",
		"users", 4, "teams", 1, "projects", 3, "tasks", len(taskRequests), "comments", len(comments))

	return nil
}

func strPtr(s string) *string        { return &s }
func intPtr(i int) *int              { return &i }
func timePtr(t time.Time) *time.Time { return &t }
