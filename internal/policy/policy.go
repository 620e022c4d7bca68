// Package policy — чистые функции проверки прав доступа. Никаких побочных
// эффектов: решение детерминировано парой (актор, дескриптор ресурса).
package policy

import (
	"arcana/internal/domain"
)

type Action string

const (
	ActionRead   Action = "read"
	ActionCreate Action = "create"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

type ResourceKind string

const (
	KindProduct           ResourceKind = "product"
	KindSpecialistProfile ResourceKind = "specialist_profile"
	KindNews              ResourceKind = "news"
	KindMedia             ResourceKind = "media"
	KindUser              ResourceKind = "user"
)

// CanPerform решает, может ли актор выполнить действие над ресурсом.
// actor == nil означает анонимный запрос. ownerID — владелец ресурса,
// 0 если владелец неприменим (создание, публичные коллекции).
func CanPerform(actor *domain.User, action Action, kind ResourceKind, ownerID int64) bool {
	// Публичное чтение открыто всем, включая анонимов. Видимость
	// «только опубликованное» обеспечивает обязательная клаузула запроса,
	// а не политика доступа.
	if action == ActionRead {
		return true
	}

	// Анонимам запрещены любые мутации.
	if actor == nil {
		return false
	}

	switch kind {
	case KindMedia:
		switch action {
		case ActionCreate:
			return actor.Role == domain.UserRoleSpecialist || actor.Role == domain.UserRoleModerator
		case ActionUpdate, ActionDelete:
			return isModeratorOrOwnerSpecialist(actor, ownerID)
		}

	case KindProduct:
		switch action {
		case ActionCreate:
			return actor.Role == domain.UserRoleSpecialist || actor.Role == domain.UserRoleModerator
		case ActionUpdate, ActionDelete:
			return isModeratorOrOwnerSpecialist(actor, ownerID)
		}

	case KindUser, KindSpecialistProfile:
		switch action {
		case ActionCreate:
			return actor.Role == domain.UserRoleAdmin
		case ActionUpdate:
			return actor.ID == ownerID ||
				actor.Role == domain.UserRoleModerator ||
				actor.Role == domain.UserRoleAdmin
		case ActionDelete:
			return actor.Role == domain.UserRoleAdmin
		}

	case KindNews:
		switch action {
		case ActionCreate, ActionUpdate, ActionDelete:
			return actor.Role == domain.UserRoleModerator || actor.Role == domain.UserRoleAdmin
		}
	}

	return false
}

func isModeratorOrOwnerSpecialist(actor *domain.User, ownerID int64) bool {
	if actor.Role == domain.UserRoleModerator {
		return true
	}
	return actor.Role == domain.UserRoleSpecialist && ownerID != 0 && actor.ID == ownerID
}
