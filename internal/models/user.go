package models

import (
	"database/sql"
	"time"

	"github.com/karyabangun/bizadmin/internal/core/domain"
)

// User is a row of the users table. Password hash is empty for OAuth users.
type User struct {
	UserID         string         `db:"user_id"`
	Username       string         `db:"username"`
	Name           string         `db:"name"`
	Email          sql.NullString `db:"email"`
	PasswordHash   sql.NullString `db:"password_hash"`
	AuthProvider   string         `db:"auth_provider"`
	ProviderUserID sql.NullString `db:"provider_user_id"`
	AuditFields
	DeletedAt *time.Time `db:"deleted_at"`
}

func ToModelUser(d domain.User) User {
	return User{
		UserID:         d.UserID,
		Username:       d.Username,
		Name:           d.Name,
		Email:          nullString(d.Email),
		PasswordHash:   sql.NullString{String: d.PasswordHash, Valid: d.PasswordHash != ""},
		AuthProvider:   string(d.AuthProvider),
		ProviderUserID: nullString(d.ProviderUserID),
		AuditFields:    toModelAudit(d.AuditFields),
		DeletedAt:      d.DeletedAt,
	}
}

func ToDomainUser(m User) domain.User {
	return domain.User{
		UserID:         m.UserID,
		Username:       m.Username,
		Name:           m.Name,
		Email:          stringPtr(m.Email),
		PasswordHash:   m.PasswordHash.String,
		AuthProvider:   domain.AuthProvider(m.AuthProvider),
		ProviderUserID: stringPtr(m.ProviderUserID),
		AuditFields:    m.AuditFields.toDomain(),
		DeletedAt:      m.DeletedAt,
	}
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func stringPtr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}
