package fixtures

import (
	"time"

	"github.com/pim-intern/attendance-backend/internal/domain/user"
)

// DefaultPassword is the password of every demo account.
const DefaultPassword = "password123"

func strPtr(s string) *string { return &s }

// DemoUsers returns the admin, supervisor and intern accounts of a fresh
// deployment. The supervisor precedes the intern that references it.
func DemoUsers(passwordHash string, now time.Time) []user.User {
	return []user.User{
		{
			ID:           "am001",
			Badge:        "ADM001",
			Name:         "Admin System",
			Email:        "admin@pim.co.id",
			PasswordHash: passwordHash,
			Role:         user.RoleAdmin,
			Status:       user.StatusActive,
			Department:   strPtr("IT"),
			CreatedAt:    now,
			UpdatedAt:    now,
		},
		{
			ID:           "pg001",
			Badge:        "PB001",
			Name:         "Drs. Budiman",
			Email:        "budiman@pim.co.id",
			PasswordHash: passwordHash,
			Role:         user.RoleSupervisor,
			Status:       user.StatusActive,
			Department:   strPtr("Produksi"),
			CreatedAt:    now,
			UpdatedAt:    now,
		},
		{
			ID:           "ms0001",
			Badge:        "2021001",
			Name:         "Ahmad Fauzi",
			Email:        "ahmad.fauzi@email.com",
			PasswordHash: passwordHash,
			Role:         user.RoleIntern,
			Status:       user.StatusActive,
			University:   strPtr("Universitas Syiah Kuala"),
			SupervisorID: strPtr("pg001"),
			CreatedAt:    now,
			UpdatedAt:    now,
		},
	}
}
