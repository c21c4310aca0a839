package model

import (
	"time"

	"charter/shared/model"
)

const (
	TableName  = "admins"
	EntityName = "admin"

	FieldID                   = "id"
	FieldUsername             = "username"
	FieldEmail                = "email"
	FieldPassword             = "password"
	FieldResetPasswordToken   = "reset_password_token"
	FieldResetPasswordExpires = "reset_password_expires"
)

// Admin is a back-office operator account. Reset token and expiry are only
// set while a password reset is in flight.
type Admin struct {
	ID                   string     `db:"id"`
	Username             string     `db:"username"`
	Email                string     `db:"email"`
	Password             string     `db:"password"`
	ResetPasswordToken   *string    `db:"reset_password_token"`
	ResetPasswordExpires *time.Time `db:"reset_password_expires"`
	model.Metadata
}
