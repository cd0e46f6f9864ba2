package db

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/appointment-booking/internal/models"
)

var defaultServices = []models.Service{
	{Name: "Quick consultation", Description: "Short follow-up appointment", DurationMin: 30, Price: 50},
	{Name: "Standard session", Description: "Regular appointment", DurationMin: 60, Price: 90},
	{Name: "Extended session", Description: "Long appointment for complex cases", DurationMin: 90, Price: 130},
}

// ServiceID derives a stable identifier from the service name so seeding is
// idempotent across restarts and databases.
func ServiceID(name string) string {
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte("service:"+name)).String()
}

func SeedServices(db *gorm.DB) error {
	for _, s := range defaultServices {
		s.ID = ServiceID(s.Name)
		if err := db.Where("id = ?", s.ID).FirstOrCreate(&s).Error; err != nil {
			return fmt.Errorf("seed service %q: %w", s.Name, err)
		}
	}
	return nil
}
