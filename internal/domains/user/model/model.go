package model

import "arcade/shared/model"

const (
	TableName  = "users"
	EntityName = "user"

	FieldID        = "id"
	FieldEmail     = "email"
	FieldPassword  = "password"
	FieldLevel     = "level"
	FieldFullName  = "full_name"
	FieldBranchID  = "branch_id"
	FieldLastLogin = "last_login"
	FieldActive    = "active"
)

// User is a staff account. Superadmins and admins roam every branch; staff
// accounts are pinned to the branch they run shifts at.
type User struct {
	ID        string  `db:"id"`
	Email     string  `db:"email"`
	Password  string  `db:"password"`
	Level     string  `db:"level"`
	FullName  *string `db:"full_name"`
	BranchID  *string `db:"branch_id"`
	LastLogin *string `db:"last_login"`
	Active    bool    `db:"active"`
	model.Metadata
}
