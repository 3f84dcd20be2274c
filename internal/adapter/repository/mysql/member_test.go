package mysql

import (
	"context"
	"errors"
	"testing"

	"gorm.io/gorm"
)

func TestMember_CreateAndGet(t *testing.T) {
	db := openTestDB(t)
	repo := NewMemberRepository(db)
	ctx := context.Background()

	m := makeMember("Asha Rao", "asha@example.com", true)
	if err := repo.Create(ctx, m); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if m.ID == 0 {
		t.Fatalf("Create did not set auto-increment ID")
	}

	got, err := repo.GetByMemberID(ctx, m.MemberID)
	if err != nil {
		t.Fatalf("GetByMemberID: %v", err)
	}
	if got.Email != "asha@example.com" || !got.IsActive {
		t.Errorf("unexpected member: %+v", got)
	}

	byEmail, err := repo.GetByEmail(ctx, "asha@example.com")
	if err != nil || byEmail.MemberID != m.MemberID {
		t.Fatalf("GetByEmail = %+v, %v", byEmail, err)
	}
}

func TestMember_DuplicateEmailRejected(t *testing.T) {
	db := openTestDB(t)
	repo := NewMemberRepository(db)
	ctx := context.Background()

	if err := repo.Create(ctx, makeMember("A", "dup@example.com", true)); err != nil {
		t.Fatal(err)
	}
	if err := repo.Create(ctx, makeMember("B", "dup@example.com", true)); err == nil {
		t.Fatal("expected unique violation on email")
	}
}

func TestMember_ListAndSetActive(t *testing.T) {
	db := openTestDB(t)
	repo := NewMemberRepository(db)
	ctx := context.Background()

	zed := makeMember("Zed", "z@example.com", true)
	amy := makeMember("Amy", "a@example.com", true)
	for _, m := range []any{zed, amy} {
		if err := db.Create(m).Error; err != nil {
			t.Fatal(err)
		}
	}
	if err := repo.SetActive(ctx, zed.MemberID, false); err != nil {
		t.Fatalf("SetActive: %v", err)
	}

	all, err := repo.List(ctx, false)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(all) != 2 || all[0].FullName != "Amy" || all[1].FullName != "Zed" {
		t.Fatalf("expected name order, got %+v", all)
	}

	active, err := repo.List(ctx, true)
	if err != nil {
		t.Fatalf("List active: %v", err)
	}
	if len(active) != 1 || active[0].MemberID != amy.MemberID {
		t.Fatalf("expected only Amy active, got %+v", active)
	}

	if err := repo.SetActive(ctx, "ffffffffffffffffffffffffffffffff", true); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
}

func TestMember_NotFound(t *testing.T) {
	db := openTestDB(t)
	repo := NewMemberRepository(db)

	if _, err := repo.GetByMemberID(context.Background(), "nope"); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
}
