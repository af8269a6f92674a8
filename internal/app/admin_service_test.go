package app

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"careerconnect/internal/common"
	"careerconnect/internal/domain/company"
	"careerconnect/internal/domain/user"
	"careerconnect/internal/security"
)

func newAdminFixture(email, password string) (*AdminService, *fakeUserRepo, *fakeCompanyRepo) {
	users := newFakeUserRepo()
	companies := newFakeCompanyRepo()
	jwt := security.NewJWTProvider("test-secret", time.Hour)
	return NewAdminService(users, companies, jwt, email, password), users, companies
}

func TestAdminLoginWithConfiguredCredentials(t *testing.T) {
	service, _, _ := newAdminFixture("admin@example.com", "hunter2")

	result, err := service.Login(context.Background(), "admin@example.com", "hunter2")
	require.NoError(t, err)
	assert.NotEmpty(t, result.Token)
	assert.Equal(t, user.RoleAdmin, result.Role)
}

func TestAdminLoginRejectsWrongCredentials(t *testing.T) {
	service, _, _ := newAdminFixture("admin@example.com", "hunter2")

	_, err := service.Login(context.Background(), "admin@example.com", "wrong")
	require.Error(t, err)
	assert.True(t, common.Is(err, common.CodeUnauthorized))

	_, err = service.Login(context.Background(), "other@example.com", "hunter2")
	require.Error(t, err)
}

func TestAdminLoginFailsWhenUnconfigured(t *testing.T) {
	service, _, _ := newAdminFixture("", "")

	_, err := service.Login(context.Background(), "admin@example.com", "hunter2")
	require.Error(t, err)
	assert.True(t, common.Is(err, common.CodeUnauthorized))
}

func TestAdminStatsCountsAccounts(t *testing.T) {
	service, users, companies := newAdminFixture("admin@example.com", "hunter2")
	_, err := users.Create(context.Background(), user.User{Name: "A", Email: "a@example.com"})
	require.NoError(t, err)
	_, err = users.Create(context.Background(), user.User{Name: "B", Email: "b@example.com"})
	require.NoError(t, err)
	_, err = companies.Create(context.Background(), company.Company{CompanyName: "Acme", Email: "hr@acme.com"})
	require.NoError(t, err)

	stats, err := service.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Users)
	assert.Equal(t, 1, stats.Companies)
}

func TestAdminDeleteUser(t *testing.T) {
	service, users, _ := newAdminFixture("admin@example.com", "hunter2")
	created, err := users.Create(context.Background(), user.User{Name: "A", Email: "a@example.com"})
	require.NoError(t, err)

	require.NoError(t, service.DeleteUser(context.Background(), created.ID))
	err = service.DeleteUser(context.Background(), created.ID)
	require.Error(t, err)
	assert.True(t, common.Is(err, common.CodeNotFound))
}
