package repositories

import (
	"errors"
	"testing"
	"time"

	"github.com/AnhTuano/CNTTK23M/internal/app/models"
	"github.com/AnhTuano/CNTTK23M/internal/pkg/apperrors"
)

func testUser(id int64, name string) *models.User {
	return &models.User{
		ID:   id,
		Name: name,
		Role: models.RoleThanhVien,
		Contact: models.Contact{
			Email: name + "@example.com",
		},
		Badges: []models.Badge{{ID: "FIRST_POST", Name: "Bài viết đầu tiên"}},
	}
}

func TestNextIDMonotonic(t *testing.T) {
	store := NewStore()
	prev := int64(0)
	for i := 0; i < 200; i++ {
		id := store.NextID()
		if id <= prev {
			t.Fatalf("id %d not greater than previous %d", id, prev)
		}
		prev = id
	}
}

func TestCreateWithExplicitIDAdvancesCounter(t *testing.T) {
	store := NewStore()
	repo := NewUserRepository(store)

	future := time.Now().UnixMilli() + int64(time.Hour/time.Millisecond)
	repo.Create(testUser(future, "an"))

	if id := store.NextID(); id <= future {
		t.Fatalf("NextID = %d, want greater than restored id %d", id, future)
	}
}

func TestCreateAssignsIDWhenUnset(t *testing.T) {
	store := NewStore()
	repo := NewUserRepository(store)

	u := testUser(0, "an")
	id := repo.Create(u)
	if id == 0 {
		t.Fatal("Create did not assign an id")
	}
	if u.ID != id {
		t.Fatalf("returned id %d does not match user id %d", id, u.ID)
	}
}

func TestReadsReturnIsolatedCopies(t *testing.T) {
	store := NewStore()
	repo := NewUserRepository(store)
	id := repo.Create(testUser(0, "an"))

	got, err := repo.GetByID(id)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	got.Name = "changed"
	got.Badges[0].Name = "changed"
	got.Badges = append(got.Badges, models.Badge{ID: "EXTRA"})

	again, err := repo.GetByID(id)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if again.Name != "an" {
		t.Errorf("stored name = %q, mutation of a read copy leaked in", again.Name)
	}
	if len(again.Badges) != 1 || again.Badges[0].Name != "Bài viết đầu tiên" {
		t.Errorf("stored badges = %+v, mutation of a read copy leaked in", again.Badges)
	}
}

func TestCreateDetachesFromCallerValue(t *testing.T) {
	store := NewStore()
	repo := NewUserRepository(store)

	u := testUser(0, "an")
	id := repo.Create(u)
	u.Name = "changed after create"

	got, err := repo.GetByID(id)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Name != "an" {
		t.Errorf("stored name = %q, caller mutation leaked in", got.Name)
	}
}

func TestGetByEmailCaseInsensitive(t *testing.T) {
	store := NewStore()
	repo := NewUserRepository(store)
	id := repo.Create(testUser(0, "an"))

	got, err := repo.GetByEmail("AN@Example.COM")
	if err != nil {
		t.Fatalf("GetByEmail: %v", err)
	}
	if got.ID != id {
		t.Fatalf("GetByEmail returned user %d, want %d", got.ID, id)
	}

	if _, err := repo.GetByEmail("nobody@example.com"); !errors.Is(err, apperrors.ErrUserNotFound) {
		t.Fatalf("unknown email: err = %v, want ErrUserNotFound", err)
	}
}

func TestSnapshotIsDetached(t *testing.T) {
	store := NewStore()
	repo := NewUserRepository(store)
	store.Replace(&Snapshot{
		WebsiteConfig: &models.WebsiteConfig{ClassName: "Lớp CNTT K23M"},
	})
	id := repo.Create(testUser(0, "an"))

	snap := store.Snapshot()
	snap.Users[0].Name = "changed"
	snap.WebsiteConfig.ClassName = "changed"

	got, err := repo.GetByID(id)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Name != "an" {
		t.Errorf("snapshot mutation leaked into store: name = %q", got.Name)
	}
	cfg := NewConfigRepository(store).Get()
	if cfg.ClassName != "Lớp CNTT K23M" {
		t.Errorf("snapshot mutation leaked into config: %q", cfg.ClassName)
	}
}

func TestReplaceRoundTrip(t *testing.T) {
	store := NewStore()
	repo := NewUserRepository(store)
	store.Replace(&Snapshot{
		WebsiteConfig: &models.WebsiteConfig{ClassName: "Lớp CNTT K23M"},
		Users:         []*models.User{testUser(1, "an"), testUser(2, "binh")},
	})

	snap := store.Snapshot()

	if err := repo.Delete(2); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if len(repo.GetAll()) != 1 {
		t.Fatal("delete did not take effect before restore")
	}

	store.Replace(snap)

	users := repo.GetAll()
	if len(users) != 2 {
		t.Fatalf("after restore: %d users, want 2", len(users))
	}
	if _, err := repo.GetByID(2); err != nil {
		t.Fatalf("deleted user missing after restore: %v", err)
	}
}

func TestReplaceAdvancesIDCounter(t *testing.T) {
	store := NewStore()
	future := time.Now().UnixMilli() + int64(time.Hour/time.Millisecond)
	store.Replace(&Snapshot{
		WebsiteConfig: &models.WebsiteConfig{},
		Users:         []*models.User{testUser(future, "an")},
	})

	if id := store.NextID(); id <= future {
		t.Fatalf("NextID = %d, want greater than restored id %d", id, future)
	}
}

func TestAddPoints(t *testing.T) {
	store := NewStore()
	repo := NewUserRepository(store)
	id := repo.Create(testUser(0, "an"))

	if err := repo.AddPoints(id, 20); err != nil {
		t.Fatalf("AddPoints: %v", err)
	}
	if err := repo.AddPoints(id, 5); err != nil {
		t.Fatalf("AddPoints: %v", err)
	}
	got, _ := repo.GetByID(id)
	if got.Points != 25 {
		t.Fatalf("points = %d, want 25", got.Points)
	}

	if err := repo.AddPoints(999, 1); !errors.Is(err, apperrors.ErrUserNotFound) {
		t.Fatalf("unknown user: err = %v, want ErrUserNotFound", err)
	}
}
