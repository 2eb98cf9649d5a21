package seed

import (
	"context"
	"log"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/AWLL-inc/work-management-sub003/internal/repository"
	"github.com/AWLL-inc/work-management-sub003/internal/types"
)

// SeedData creates development fixtures: an admin, a manager with a team,
// two members, the project/category catalogs and a week of sample logs.
func SeedData(repos *repository.Repositories) {
	ctx := context.Background()

	existing, err := repos.UserRepo.FindByEmail(ctx, "admin@example.com")
	if err != nil {
		log.Printf("⚠️ [Seed] Skipping, user lookup failed: %v", err)
		return
	}
	if existing != nil {
		log.Println("[Seed] Data already exists, skipping...")
		return
	}

	log.Println("[Seed] 🌱 Creating initial data...")

	password, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)

	// ============================================
	// USERS
	// ============================================
	admin := &repository.User{
		Name:     "Aiko Tanaka",
		Email:    "admin@example.com",
		Password: string(password),
		Role:     types.RoleAdmin,
		IsActive: true,
	}
	repos.UserRepo.Create(ctx, admin)

	manager := &repository.User{
		Name:     "Kenji Sato",
		Email:    "manager@example.com",
		Password: string(password),
		Role:     types.RoleManager,
		IsActive: true,
	}
	repos.UserRepo.Create(ctx, manager)

	alice := &repository.User{
		Name:     "Alice Morgan",
		Email:    "alice@example.com",
		Password: string(password),
		Role:     types.RoleUser,
		IsActive: true,
	}
	repos.UserRepo.Create(ctx, alice)

	bob := &repository.User{
		Name:     "Bob Chen",
		Email:    "bob@example.com",
		Password: string(password),
		Role:     types.RoleUser,
		IsActive: true,
	}
	repos.UserRepo.Create(ctx, bob)

	log.Println("✅ [Seed] Created 4 users (admin, manager, 2 members)")

	// ============================================
	// TEAM + MEMBERSHIPS
	// ============================================
	platform := &repository.Team{Name: "Platform", IsActive: true}
	repos.TeamRepo.Create(ctx, platform)

	repos.TeamRepo.AddMember(ctx, &repository.TeamMembership{
		TeamID: platform.ID, UserID: manager.ID, Role: types.MemberLeader,
	})
	repos.TeamRepo.AddMember(ctx, &repository.TeamMembership{
		TeamID: platform.ID, UserID: alice.ID, Role: types.MemberMember,
	})
	repos.TeamRepo.AddMember(ctx, &repository.TeamMembership{
		TeamID: platform.ID, UserID: bob.ID, Role: types.MemberMember,
	})

	log.Println("✅ [Seed] Created Platform team with 3 members")

	// ============================================
	// CATALOGS
	// ============================================
	website := &repository.Project{Name: "Website Redesign", IsActive: true}
	repos.ProjectRepo.Create(ctx, website)
	internalTools := &repository.Project{Name: "Internal Tools", IsActive: true}
	repos.ProjectRepo.Create(ctx, internalTools)

	development := &repository.Category{Name: "Development", IsActive: true}
	repos.CategoryRepo.Create(ctx, development)
	meetings := &repository.Category{Name: "Meetings", IsActive: true}
	repos.CategoryRepo.Create(ctx, meetings)

	log.Println("✅ [Seed] Created 2 projects, 2 categories")

	// ============================================
	// SAMPLE WORK LOGS (past week)
	// ============================================
	today := time.Now().Truncate(24 * time.Hour)
	details := func(s string) *string { return &s }

	entries := []*repository.WorkLog{
		{UserID: alice.ID, ProjectID: website.ID, CategoryID: development.ID,
			LogDate: today.AddDate(0, 0, -1), Hours: decimal.RequireFromString("7.5"),
			Details: details("Implemented responsive navigation")},
		{UserID: alice.ID, ProjectID: website.ID, CategoryID: meetings.ID,
			LogDate: today.AddDate(0, 0, -2), Hours: decimal.RequireFromString("1"),
			Details: details("Sprint planning")},
		{UserID: bob.ID, ProjectID: internalTools.ID, CategoryID: development.ID,
			LogDate: today.AddDate(0, 0, -1), Hours: decimal.RequireFromString("6.25"),
			Details: details("CSV import tooling")},
		{UserID: bob.ID, ProjectID: website.ID, CategoryID: development.ID,
			LogDate: today.AddDate(0, 0, -3), Hours: decimal.RequireFromString("8"),
			Details: nil},
		{UserID: manager.ID, ProjectID: internalTools.ID, CategoryID: meetings.ID,
			LogDate: today.AddDate(0, 0, -2), Hours: decimal.RequireFromString("2"),
			Details: details("Quarterly review prep")},
	}
	for _, entry := range entries {
		repos.WorkLogRepo.Create(ctx, entry)
	}

	log.Printf("✅ [Seed] Created %d sample work logs", len(entries))
	log.Println("[Seed] 🌱 Done")
}
