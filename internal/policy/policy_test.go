package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"arcana/internal/domain"
)

func actorWithRole(id int64, role domain.UserRole) *domain.User {
	return &domain.User{ID: id, Role: role}
}

func TestCanPerform_ReadIsAlwaysAllowed(t *testing.T) {
	actors := []*domain.User{
		nil,
		actorWithRole(1, domain.UserRoleClient),
		actorWithRole(2, domain.UserRoleSpecialist),
		actorWithRole(3, domain.UserRoleModerator),
		actorWithRole(4, domain.UserRoleAdmin),
	}
	kinds := []ResourceKind{KindProduct, KindSpecialistProfile, KindNews, KindMedia, KindUser}

	for _, actor := range actors {
		for _, kind := range kinds {
			assert.True(t, CanPerform(actor, ActionRead, kind, 123))
		}
	}
}

func TestCanPerform_AnonymousMutationsDenied(t *testing.T) {
	kinds := []ResourceKind{KindProduct, KindSpecialistProfile, KindNews, KindMedia, KindUser}
	actions := []Action{ActionCreate, ActionUpdate, ActionDelete}

	for _, kind := range kinds {
		for _, action := range actions {
			assert.False(t, CanPerform(nil, action, kind, 0),
				"anonymous %s on %s must be denied", action, kind)
		}
	}
}

func TestCanPerform_MediaCreate(t *testing.T) {
	tests := []struct {
		role domain.UserRole
		want bool
	}{
		{domain.UserRoleClient, false},
		{domain.UserRoleSpecialist, true},
		{domain.UserRoleModerator, true},
		{domain.UserRoleAdmin, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.role), func(t *testing.T) {
			assert.Equal(t, tt.want, CanPerform(actorWithRole(1, tt.role), ActionCreate, KindMedia, 0))
		})
	}
}

func TestCanPerform_ProductDelete(t *testing.T) {
	const ownerID = int64(123)

	tests := []struct {
		name  string
		actor *domain.User
		want  bool
	}{
		{"специалист-владелец", actorWithRole(ownerID, domain.UserRoleSpecialist), true},
		{"специалист не владелец", actorWithRole(999, domain.UserRoleSpecialist), false},
		{"модератор", actorWithRole(5, domain.UserRoleModerator), true},
		{"клиент-владелец", actorWithRole(ownerID, domain.UserRoleClient), false},
		{"админ", actorWithRole(6, domain.UserRoleAdmin), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanPerform(tt.actor, ActionDelete, KindProduct, ownerID))
		})
	}
}

func TestCanPerform_OwnProfileUpdate(t *testing.T) {
	const targetID = int64(42)

	tests := []struct {
		name  string
		actor *domain.User
		want  bool
	}{
		{"сам пользователь", actorWithRole(targetID, domain.UserRoleClient), true},
		{"чужой клиент", actorWithRole(7, domain.UserRoleClient), false},
		{"чужой специалист", actorWithRole(7, domain.UserRoleSpecialist), false},
		{"модератор", actorWithRole(7, domain.UserRoleModerator), true},
		{"админ", actorWithRole(7, domain.UserRoleAdmin), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanPerform(tt.actor, ActionUpdate, KindUser, targetID))
		})
	}
}

func TestCanPerform_UnresolvedOwnerFailsClosed(t *testing.T) {
	// ownerID == 0 означает, что владелец не установлен: специалист не проходит
	// проверку «владелец», даже если его собственный ID равен нулю по ошибке.
	specialist := actorWithRole(0, domain.UserRoleSpecialist)
	assert.False(t, CanPerform(specialist, ActionDelete, KindProduct, 0))
	assert.False(t, CanPerform(specialist, ActionDelete, KindMedia, 0))
}

// Чистота: одинаковые входы всегда дают одинаковый результат по всему
// декартову произведению роль×действие×владение.
func TestCanPerform_Deterministic(t *testing.T) {
	actors := []*domain.User{
		nil,
		actorWithRole(1, domain.UserRoleClient),
		actorWithRole(1, domain.UserRoleSpecialist),
		actorWithRole(1, domain.UserRoleModerator),
		actorWithRole(1, domain.UserRoleAdmin),
	}
	actions := []Action{ActionRead, ActionCreate, ActionUpdate, ActionDelete}
	kinds := []ResourceKind{KindProduct, KindSpecialistProfile, KindNews, KindMedia, KindUser}
	owners := []int64{0, 1, 999}

	for _, actor := range actors {
		for _, action := range actions {
			for _, kind := range kinds {
				for _, owner := range owners {
					first := CanPerform(actor, action, kind, owner)
					for i := 0; i < 3; i++ {
						assert.Equal(t, first, CanPerform(actor, action, kind, owner))
					}
				}
			}
		}
	}
}
