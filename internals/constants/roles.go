package constants

const (
	RoleTrainer = "trainer"
	RoleTrainee = "trainee"
	RoleAdmin   = "admin"
)

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleTrainer,
		RoleTrainee,
		RoleAdmin,
	}

	TrainerAndAbove = []string{
		RoleTrainer,
		RoleAdmin,
	}

	AdminOnly = []string{
		RoleAdmin,
	}
)

func IsValidRole(role string) bool {
	for _, r := range AllRoles {
		if r == role {
			return true
		}
	}
	return false
}
