package main

import (
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"casahub/internal/config"
	"casahub/internal/database"
	"casahub/internal/domain/auth"
	"casahub/internal/domain/campaign"
	"casahub/internal/domain/lead"
	"casahub/internal/domain/linkedin"
	"casahub/internal/domain/property"
	"casahub/internal/domain/todo"
	"casahub/internal/pkg/access"
	"casahub/internal/pkg/scoring"
)

// Seeds a demo dataset: three users, a couple of listings, one campaign
// with KPIs, a handful of leads and a post mid-approval. Safe to run on
// an empty database only.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal(err)
	}

	var count int64
	if err := db.Model(&auth.User{}).Count(&count).Error; err != nil {
		log.Fatal(err)
	}
	if count > 0 {
		log.Println("database is not empty, skipping seed")
		return
	}

	if err := seed(db); err != nil {
		log.Fatal(err)
	}
	log.Println("seed complete")
}

func seed(db *gorm.DB) error {
	admin := user("admin@casahub.dev", "Alice Mercer", access.RoleAdmin)
	editor := user("editor@casahub.dev", "Bruno Falk", access.RoleEditor)
	guest := user("guest@casahub.dev", "Carla Voss", access.RoleGuest)
	if err := db.Create([]*auth.User{admin, editor, guest}).Error; err != nil {
		return err
	}

	now := time.Now()

	loft := &property.Property{
		ID:          uuid.NewString(),
		Title:       "Riverside Loft",
		Description: "Two-bedroom loft with river view, fully renovated.",
		Address:     "14 Quay Street",
		Type:        property.TypeApartment,
		Status:      property.StatusAvailable,
		Price:       decimal.NewFromInt(485000),
		Area:        92,
		Rooms:       3,
		Features:    []string{"balcony", "parking", "elevator"},
		AgentID:     editor.ID,
		ListingDate: now.AddDate(0, -1, 0),
	}
	villa := &property.Property{
		ID:          uuid.NewString(),
		Title:       "Hillside Villa",
		Description: "Detached villa with garden and double garage.",
		Address:     "7 Orchard Lane",
		Type:        property.TypeHouse,
		Status:      property.StatusUnderContract,
		Price:       decimal.NewFromInt(1250000),
		Area:        240,
		Rooms:       6,
		Features:    []string{"garden", "garage", "fireplace"},
		AgentID:     admin.ID,
		ListingDate: now.AddDate(0, -2, 0),
	}
	if err := db.Create([]*property.Property{loft, villa}).Error; err != nil {
		return err
	}

	camp := &campaign.Campaign{
		ID:             uuid.NewString(),
		Name:           "Riverside Loft Launch",
		PropertyID:     &loft.ID,
		Type:           campaign.TypeSocialMedia,
		Status:         campaign.StatusActive,
		Budget:         decimal.NewFromInt(12000),
		Spent:          decimal.NewFromInt(4300),
		StartDate:      now.AddDate(0, 0, -14),
		EndDate:        now.AddDate(0, 1, 0),
		TargetAudience: "Young professionals, 28-45",
		Platforms:      []string{"linkedin", "instagram"},
		CreatedBy:      editor.ID,
	}
	if err := db.Create(camp).Error; err != nil {
		return err
	}
	kpis := []*campaign.KPI{
		{
			ID:         uuid.NewString(),
			CampaignID: camp.ID,
			Metric:     "Impressions",
			Target:     decimal.NewFromInt(50000),
			Current:    decimal.NewFromInt(31200),
			Unit:       "views",
			UpdatedBy:  editor.ID,
		},
		{
			ID:         uuid.NewString(),
			CampaignID: camp.ID,
			Metric:     "Viewing requests",
			Target:     decimal.NewFromInt(40),
			Current:    decimal.NewFromInt(17),
			Unit:       "requests",
			UpdatedBy:  editor.ID,
		},
	}
	if err := db.Create(kpis).Error; err != nil {
		return err
	}

	defaults := scoring.StandardDefaults()
	leads := []*lead.Lead{
		seedLead("Daniel Roth", "d.roth@example.com", lead.SourceReferral, 2000000, 3000000, editor.ID, defaults, now),
		seedLead("Mina Okafor", "mina.o@example.com", lead.SourceWebsite, 400000, 550000, editor.ID, defaults, now),
		seedLead("Viktor Hahn", "v.hahn@example.com", lead.SourceColdCall, 0, 0, admin.ID, defaults, now),
	}
	leads[1].Status = lead.StatusQualified
	if err := db.Create(leads).Error; err != nil {
		return err
	}
	interest := &lead.PropertyInterest{
		LeadID:     leads[1].ID,
		PropertyID: loft.ID,
		AddedBy:    editor.ID,
	}
	if err := db.Create(interest).Error; err != nil {
		return err
	}

	post := &linkedin.Post{
		ID:         uuid.NewString(),
		Content:    "Just listed: a riverside loft minutes from the old town. Viewings open this weekend.",
		Hashtags:   []string{"realestate", "newlisting"},
		Status:     linkedin.StatusPendingApproval,
		CampaignID: &camp.ID,
		CreatedBy:  editor.ID,
	}
	if err := db.Create(post).Error; err != nil {
		return err
	}

	due := now.AddDate(0, 0, 3)
	task := &todo.Todo{
		ID:         uuid.NewString(),
		Title:      "Schedule loft photo shoot",
		Status:     todo.StatusPending,
		Priority:   todo.PriorityHigh,
		AssignedTo: &editor.ID,
		CreatedBy:  admin.ID,
		DueDate:    &due,
		Tags:       []string{"marketing"},
	}
	return db.Create(task).Error
}

func user(email, name string, role access.Role) *auth.User {
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal(err)
	}
	return &auth.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: string(hash),
		Name:         name,
		Role:         role,
		IsActive:     true,
	}
}

func seedLead(name, email string, source lead.Source, min, max int64, agent string, defaults scoring.Defaults, now time.Time) *lead.Lead {
	l := &lead.Lead{
		ID:            uuid.NewString(),
		Name:          name,
		Email:         email,
		Status:        lead.StatusNew,
		Source:        source,
		AssignedAgent: agent,
		LastContact:   now,
	}
	var budgetMin, budgetMax *decimal.Decimal
	if max > 0 {
		lo := decimal.NewFromInt(min)
		hi := decimal.NewFromInt(max)
		budgetMin, budgetMax = &lo, &hi
		l.BudgetMin, l.BudgetMax = budgetMin, budgetMax
	}
	l.Score = scoring.Score(scoring.Factors(budgetMin, budgetMax, string(source), defaults))
	return l
}
