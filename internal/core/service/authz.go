package service

import "github.com/recordkeep/records-api/internal/core/domain"

// RequireActive rejects access for deactivated accounts. It is always applied
// before any privilege check, so an inactive superuser is reported as
// inactive, never as under-privileged.
func RequireActive(user *domain.User) error {
	if !user.IsActive {
		return domain.ErrAccountInactive
	}
	return nil
}

// RequireSuperuser rejects access for accounts without the superuser flag.
func RequireSuperuser(user *domain.User) error {
	if !user.IsSuperuser {
		return domain.ErrInsufficientPrivilege
	}
	return nil
}
