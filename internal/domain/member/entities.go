package member

import (
	"errors"
	"time"
)

var (
	ErrNotFound           = errors.New("member not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInactive           = errors.New("member is not active")
	ErrInvalidInput       = errors.New("full name and email must not be blank")
)

// Table: members. Members are never deleted; IsActive=false replaces deletion.
type Member struct {
	ID           uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"-"`
	MemberID     string    `gorm:"column:member_id;type:char(32);not null;uniqueIndex:ux_members_member_id" json:"member_id"`
	FullName     string    `gorm:"column:full_name;size:255;not null" json:"full_name"`
	Email        string    `gorm:"column:email;size:255;not null;uniqueIndex:ux_members_email" json:"email"`
	PhoneNumber  string    `gorm:"column:phone_number;size:32;not null" json:"phone_number"`
	Address      string    `gorm:"column:address;type:text" json:"address,omitempty"`
	PasswordHash string    `gorm:"column:password_hash;size:72" json:"-"`
	JoinedDate   time.Time `gorm:"column:joined_date;type:date;not null" json:"joined_date"`
	IsActive     bool      `gorm:"column:is_active;not null;default:true;index" json:"is_active"`
	IsAdmin      bool      `gorm:"column:is_admin;not null;default:false" json:"is_admin"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Member) TableName() string { return "members" }
