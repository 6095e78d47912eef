package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	businessRepo "tourhub/database/repository/business"
	userRepo "tourhub/database/repository/user"
	"tourhub/models"
	"tourhub/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
)

type fakeUserRepo struct {
	users map[string]*models.User
}

func (r *fakeUserRepo) GetByID(id string) (*models.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, userRepo.ErrNotFound
	}
	return u, nil
}
func (r *fakeUserRepo) GetByEmail(email string) (*models.User, error) { return nil, nil }
func (r *fakeUserRepo) Create(u *models.User) error                   { return nil }
func (r *fakeUserRepo) Update(u *models.User) error                   { return nil }

type fakeBusinessRepo struct {
	businesses map[string]*models.Business
}

func (r *fakeBusinessRepo) GetByID(id string) (*models.Business, error) {
	b, ok := r.businesses[id]
	if !ok {
		return nil, businessRepo.ErrNotFound
	}
	return b, nil
}
func (r *fakeBusinessRepo) GetByEmail(email string) (*models.Business, error) { return nil, nil }
func (r *fakeBusinessRepo) Create(b *models.Business) error                   { return nil }
func (r *fakeBusinessRepo) UpdateSetDocument(id string, updateDoc bson.M) error {
	return nil
}

func userRouter(repo *fakeUserRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", JWTAuthUserMiddleware(repo), func(c *gin.Context) {
		usr, ok := AuthUser(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "no user in context"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"id": usr.ID})
	})
	return r
}

func businessRouter(repo *fakeBusinessRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", JWTAuthBusinessMiddleware(repo), func(c *gin.Context) {
		biz, ok := AuthBusiness(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "no business in context"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"id": biz.ID})
	})
	return r
}

func doRequest(t *testing.T, r *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestUserAuthMiddleware(t *testing.T) {
	repo := &fakeUserRepo{users: map[string]*models.User{
		"user-1":  {ID: "user-1", Status: models.StatusActive},
		"blocked": {ID: "blocked", Status: models.StatusBlocked},
	}}
	router := userRouter(repo)

	userToken, err := utils.GenerateToken("user-1", models.RoleUser)
	if err != nil {
		t.Fatalf("GenerateToken returned error: %v", err)
	}
	blockedToken, _ := utils.GenerateToken("blocked", models.RoleUser)
	missingToken, _ := utils.GenerateToken("ghost", models.RoleUser)
	businessToken, _ := utils.GenerateToken("user-1", models.RoleBusiness)

	cases := []struct {
		name       string
		authHeader string
		wantStatus int
	}{
		{"valid token", "Bearer " + userToken, http.StatusOK},
		{"no header", "", http.StatusUnauthorized},
		{"malformed header", "Token " + userToken, http.StatusUnauthorized},
		{"garbage token", "Bearer not.a.jwt", http.StatusUnauthorized},
		{"wrong role", "Bearer " + businessToken, http.StatusForbidden},
		{"deleted account", "Bearer " + missingToken, http.StatusNotFound},
		{"blocked account", "Bearer " + blockedToken, http.StatusForbidden},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := doRequest(t, router, tc.authHeader)
			if w.Code != tc.wantStatus {
				t.Errorf("status = %d, want %d (body: %s)", w.Code, tc.wantStatus, w.Body.String())
			}
		})
	}
}

func TestBusinessAuthMiddleware(t *testing.T) {
	repo := &fakeBusinessRepo{businesses: map[string]*models.Business{
		"biz-1":    {ID: "biz-1", Status: models.StatusApproved, IsActive: true},
		"blocked":  {ID: "blocked", Status: models.StatusBlocked, IsActive: true},
		"inactive": {ID: "inactive", Status: models.StatusApproved, IsActive: false},
	}}
	router := businessRouter(repo)

	bizToken, err := utils.GenerateToken("biz-1", models.RoleBusiness)
	if err != nil {
		t.Fatalf("GenerateToken returned error: %v", err)
	}
	blockedToken, _ := utils.GenerateToken("blocked", models.RoleBusiness)
	inactiveToken, _ := utils.GenerateToken("inactive", models.RoleBusiness)
	userToken, _ := utils.GenerateToken("biz-1", models.RoleUser)

	cases := []struct {
		name       string
		authHeader string
		wantStatus int
	}{
		{"valid token", "Bearer " + bizToken, http.StatusOK},
		{"no header", "", http.StatusUnauthorized},
		{"wrong role", "Bearer " + userToken, http.StatusForbidden},
		{"blocked account", "Bearer " + blockedToken, http.StatusForbidden},
		{"inactive account", "Bearer " + inactiveToken, http.StatusForbidden},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := doRequest(t, router, tc.authHeader)
			if w.Code != tc.wantStatus {
				t.Errorf("status = %d, want %d (body: %s)", w.Code, tc.wantStatus, w.Body.String())
			}
		})
	}
}
