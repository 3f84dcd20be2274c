package member

import (
	"time"

	"savings-ledger/internal/domain/member"
)

type RegisterInput struct {
	FullName    string
	Email       string
	PhoneNumber string
	Address     string
	JoinedDate  time.Time // zero means today
	Password    string    // empty means the member cannot log in
	IsAdmin     bool
}

type MemberDTO struct {
	MemberID    string    `json:"member_id"`
	FullName    string    `json:"full_name"`
	Email       string    `json:"email"`
	PhoneNumber string    `json:"phone_number"`
	Address     string    `json:"address,omitempty"`
	JoinedDate  time.Time `json:"joined_date"`
	IsActive    bool      `json:"is_active"`
	IsAdmin     bool      `json:"is_admin"`
}

func toDTO(m *member.Member) MemberDTO {
	return MemberDTO{
		MemberID:    m.MemberID,
		FullName:    m.FullName,
		Email:       m.Email,
		PhoneNumber: m.PhoneNumber,
		Address:     m.Address,
		JoinedDate:  m.JoinedDate,
		IsActive:    m.IsActive,
		IsAdmin:     m.IsAdmin,
	}
}
