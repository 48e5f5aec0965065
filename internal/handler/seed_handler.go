package handler

import (
	"database/sql"
	"errors"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/FanSt3/naturale-api/internal/models"
	"github.com/FanSt3/naturale-api/internal/service"
	"github.com/FanSt3/naturale-api/internal/utils"
)

// SeedHandler fills the database with a development admin and sample content.
// Registered in development only.
type SeedHandler struct {
	users      service.UserStore
	blogs      service.BlogStore
	activities service.ActivityStore
	team       service.TeamMemberStore
}

// NewSeedHandler constructs a SeedHandler.
func NewSeedHandler(users service.UserStore, blogs service.BlogStore, activities service.ActivityStore, team service.TeamMemberStore) *SeedHandler {
	return &SeedHandler{users: users, blogs: blogs, activities: activities, team: team}
}

// Seed handles POST /api/seed.
func (h *SeedHandler) Seed(c *gin.Context) {
	admin, err := h.users.GetByEmail("admin@naturale.com")
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			utils.ErrorWithMessage(c, 500, "Internal Server Error", err.Error())
			return
		}
		hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), service.BcryptCost)
		if err != nil {
			utils.ErrorWithMessage(c, 500, "Internal Server Error", err.Error())
			return
		}
		admin = &models.User{
			Name:       "Admin User",
			Email:      "admin@naturale.com",
			Password:   string(hash),
			FirstLogin: false,
		}
		if err := h.users.Create(admin); err != nil {
			utils.ErrorWithMessage(c, 500, "Internal Server Error", err.Error())
			return
		}
	}

	teamImage1 := "/team/profile1.jpg"
	teamImage2 := "/team/profile2.jpg"
	members := []*models.TeamMember{
		{
			Name:        "Petar Petrović",
			Position:    "Direktor projekta",
			Description: "Profesor fizike sa 15 godina iskustva. Rukovodi celokupnim projektom Naturale.",
			Image:       &teamImage1,
		},
		{
			Name:        "Marija Marković",
			Position:    "Edukator",
			Description: "Specijalista za eksperimentalnu fiziku. Vodi radionice i praktične demonstracije.",
			Image:       &teamImage2,
		},
	}
	for _, m := range members {
		if err := h.team.Create(m); err != nil {
			utils.ErrorWithMessage(c, 500, "Internal Server Error", err.Error())
			return
		}
	}

	blog := &models.Blog{
		Title: "Zašto je važno kritičko razmišljanje u fizici",
		Content: "# Kritičko razmišljanje u fizici\n\n" +
			"Fizika nas uči da analiziramo svet oko nas na sistematičan način. " +
			"Kroz eksperimente i posmatranja, učimo da testiramo hipoteze i donosimo zaključke zasnovane na dokazima.\n\n" +
			"## Ključni elementi kritičkog razmišljanja\n\n" +
			"- Postavljanje pitanja\n- Analiza podataka\n- Testiranje hipoteza\n- Izvođenje zaključaka\n",
		Published: true,
		AuthorID:  admin.ID,
	}
	if err := h.blogs.Create(blog); err != nil {
		utils.ErrorWithMessage(c, 500, "Internal Server Error", err.Error())
		return
	}

	activityImage := "/activities/electricity.jpg"
	activity := &models.Activity{
		Title: "Radionica: Elektricitet u svakodnevnom životu",
		Content: "# Radionica o elektricitetu\n\n" +
			"Kroz ovu radionicu, učenici će imati priliku da:\n" +
			"- Razumeju osnovne principe elektriciteta\n" +
			"- Naprave jednostavna električna kola\n" +
			"- Vide primenu u svakodnevnim uređajima\n\n" +
			"Radionica je namenjena učenicima srednje škole i trajaće 2 sata.\n",
		Image:     &activityImage,
		Published: true,
		AuthorID:  admin.ID,
	}
	if err := h.activities.Create(activity); err != nil {
		utils.ErrorWithMessage(c, 500, "Internal Server Error", err.Error())
		return
	}

	c.JSON(200, gin.H{
		"message": "Database seeded successfully",
		"admin":   gin.H{"id": admin.ID, "email": admin.Email},
	})
}
