package user

import (
	"errors"
	"testing"

	"tourhub/models"

	"golang.org/x/crypto/bcrypt"
)

// fakeUserRepo is an in-memory UserRepository for service tests.
type fakeUserRepo struct {
	users map[string]*models.User
}

func newFakeUserRepo(users ...*models.User) *fakeUserRepo {
	r := &fakeUserRepo{users: make(map[string]*models.User)}
	for _, u := range users {
		r.users[u.ID] = u
	}
	return r
}

func (r *fakeUserRepo) GetByID(id string) (*models.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, errors.New("user not found")
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) GetByEmail(email string) (*models.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) Create(u *models.User) error {
	r.users[u.ID] = u
	return nil
}

func (r *fakeUserRepo) Update(u *models.User) error {
	r.users[u.ID] = u
	return nil
}

func hashOf(t *testing.T, password string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt hash failed: %v", err)
	}
	return string(h)
}

func TestRegister(t *testing.T) {
	repo := newFakeUserRepo()
	svc := &DefaultUserService{Repo: repo}

	u, err := svc.Register(RegisterRequest{
		Name:     "Asha Patel",
		Email:    "asha@example.com",
		Password: "hunter22",
		Phone:    "+91-98765-43210",
	})
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}

	if u.ID == "" {
		t.Error("expected a generated user id")
	}
	if u.Status != models.StatusActive || !u.IsActive {
		t.Errorf("status=%q isActive=%v, want active account", u.Status, u.IsActive)
	}
	if u.Role != models.RoleUser {
		t.Errorf("role = %q, want %q", u.Role, models.RoleUser)
	}
	if u.PasswordHash == "hunter22" || u.PasswordHash == "" {
		t.Error("password must be stored hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("hunter22")); err != nil {
		t.Errorf("stored hash does not match the password: %v", err)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	repo := newFakeUserRepo(&models.User{ID: "user-1", Email: "asha@example.com"})
	svc := &DefaultUserService{Repo: repo}

	_, err := svc.Register(RegisterRequest{Name: "Asha", Email: "asha@example.com", Password: "hunter22"})
	if !errors.Is(err, ErrEmailTaken) {
		t.Errorf("err = %v, want ErrEmailTaken", err)
	}
}

func TestAuthenticate(t *testing.T) {
	repo := newFakeUserRepo(&models.User{
		ID:           "user-1",
		Email:        "asha@example.com",
		PasswordHash: hashOf(t, "hunter22"),
		Status:       models.StatusActive,
	})
	svc := &DefaultUserService{Repo: repo}

	resp, err := svc.Authenticate("asha@example.com", "hunter22")
	if err != nil {
		t.Fatalf("Authenticate returned error: %v", err)
	}
	if resp.Token == "" {
		t.Error("expected a signed token")
	}
	if resp.User == nil || resp.User.ID != "user-1" {
		t.Errorf("user = %+v, want the authenticated account", resp.User)
	}
}

func TestAuthenticateFailures(t *testing.T) {
	cases := []struct {
		name     string
		user     *models.User
		email    string
		password string
		wantErr  error
	}{
		{
			name:     "unknown email",
			user:     &models.User{ID: "user-1", Email: "asha@example.com", Status: models.StatusActive},
			email:    "nobody@example.com",
			password: "whatever",
			wantErr:  ErrNotFound,
		},
		{
			name:     "blocked account",
			user:     &models.User{ID: "user-1", Email: "asha@example.com", Status: models.StatusBlocked},
			email:    "asha@example.com",
			password: "hunter22",
			wantErr:  ErrBlocked,
		},
		{
			name:     "pending account",
			user:     &models.User{ID: "user-1", Email: "asha@example.com", Status: models.StatusPending},
			email:    "asha@example.com",
			password: "hunter22",
			wantErr:  ErrPendingApproval,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := &DefaultUserService{Repo: newFakeUserRepo(tc.user)}
			if _, err := svc.Authenticate(tc.email, tc.password); !errors.Is(err, tc.wantErr) {
				t.Errorf("err = %v, want %v", err, tc.wantErr)
			}
		})
	}
}

func TestAuthenticateWrongPassword(t *testing.T) {
	repo := newFakeUserRepo(&models.User{
		ID:           "user-1",
		Email:        "asha@example.com",
		PasswordHash: hashOf(t, "hunter22"),
		Status:       models.StatusActive,
	})
	svc := &DefaultUserService{Repo: repo}

	if _, err := svc.Authenticate("asha@example.com", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("err = %v, want ErrInvalidCredentials", err)
	}
}
