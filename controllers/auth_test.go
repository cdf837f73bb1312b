package controllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"salondesk-backend/models"
	"salondesk-backend/scheduling"
)

func TestTokenClaimsCarryFullOwnership(t *testing.T) {
	companyID := uuid.New()
	salonID := uuid.New()

	user := models.User{
		ID:        uuid.New(),
		Role:      scheduling.RoleCompanyAdmin,
		CompanyID: &companyID,
		SalonID:   &salonID,
	}

	tc := tokenClaimsFor(&user)
	require.Equal(t, user.ID.String(), tc.UserID)
	require.Equal(t, scheduling.RoleCompanyAdmin, tc.Role)
	require.Equal(t, companyID.String(), tc.CompanyID)
	// The staff CRUD endpoints all key on the salon claim; an admin
	// token without it would lock the account out of its own salon.
	require.Equal(t, salonID.String(), tc.SalonID)
	require.Empty(t, tc.EmployeeID)
}

func postJSON(t *testing.T, target, body string, claims map[string]string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	for k, v := range claims {
		c.Set(k, v)
	}
	return c, w
}

func TestAddUserRequiresPrivilegedRole(t *testing.T) {
	c, w := postJSON(t, "/api/users", `{}`, map[string]string{
		"userId": uuid.New().String(),
		"role":   scheduling.RoleEmployee,
	})

	AddUser(c)

	require.Equal(t, http.StatusForbidden, w.Code)
}

func TestAddUserRejectsUnprovisionableRole(t *testing.T) {
	body := `{"name":"Sam","email":"sam@example.com","phone":"+15550123","password":"longenough","role":"super_admin"}`
	c, w := postJSON(t, "/api/users", body, map[string]string{
		"userId": uuid.New().String(),
		"role":   scheduling.RoleCompanyAdmin,
	})

	AddUser(c)

	require.Equal(t, http.StatusBadRequest, w.Code)
}
