package service

import (
	"context"
	"errors"
	"testing"

	"backend/internal/apperror"
	"backend/internal/model"
	"backend/pkg/pagination"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type userRepoMock struct{ mock.Mock }

func (m *userRepoMock) FindAll(ctx context.Context, filter model.UserFilter) (pagination.Page[model.User], error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(pagination.Page[model.User]), args.Error(1)
}

func (m *userRepoMock) FindByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *userRepoMock) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *userRepoMock) Create(ctx context.Context, in model.UserCreateInput) (*model.User, error) {
	args := m.Called(ctx, in)
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *userRepoMock) Update(ctx context.Context, id uuid.UUID, in model.UserUpdateInput) (*model.User, error) {
	args := m.Called(ctx, id, in)
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *userRepoMock) Delete(ctx context.Context, id uuid.UUID) (*model.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(*model.User), args.Error(1)
}

type appRepoMock struct{ mock.Mock }

func (m *appRepoMock) FindAll(ctx context.Context, filter model.AppFilter) (pagination.Page[model.App], error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(pagination.Page[model.App]), args.Error(1)
}

func (m *appRepoMock) FindByID(ctx context.Context, id uuid.UUID) (*model.App, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(*model.App), args.Error(1)
}

func (m *appRepoMock) Create(ctx context.Context, in model.AppCreateInput) (*model.App, error) {
	args := m.Called(ctx, in)
	return args.Get(0).(*model.App), args.Error(1)
}

func (m *appRepoMock) Update(ctx context.Context, id uuid.UUID, in model.AppUpdateInput) (*model.App, error) {
	args := m.Called(ctx, id, in)
	return args.Get(0).(*model.App), args.Error(1)
}

func (m *appRepoMock) Delete(ctx context.Context, id uuid.UUID) (*model.App, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(*model.App), args.Error(1)
}

type roleRepoMock struct{ mock.Mock }

func (m *roleRepoMock) FindAll(ctx context.Context, filter model.RoleFilter) (pagination.Page[model.Role], error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(pagination.Page[model.Role]), args.Error(1)
}

func (m *roleRepoMock) FindByID(ctx context.Context, id uuid.UUID) (*model.Role, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(*model.Role), args.Error(1)
}

func (m *roleRepoMock) Create(ctx context.Context, in model.RoleCreateInput) (*model.Role, error) {
	args := m.Called(ctx, in)
	return args.Get(0).(*model.Role), args.Error(1)
}

func (m *roleRepoMock) Update(ctx context.Context, id uuid.UUID, in model.RoleUpdateInput) (*model.Role, error) {
	args := m.Called(ctx, id, in)
	return args.Get(0).(*model.Role), args.Error(1)
}

func (m *roleRepoMock) Delete(ctx context.Context, id uuid.UUID) (*model.Role, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(*model.Role), args.Error(1)
}

type grantRepoMock struct{ mock.Mock }

func (m *grantRepoMock) AddUserApp(ctx context.Context, userID, appID uuid.UUID) error {
	return m.Called(ctx, userID, appID).Error(0)
}

func (m *grantRepoMock) RemoveUserApp(ctx context.Context, userID, appID uuid.UUID) (bool, error) {
	args := m.Called(ctx, userID, appID)
	return args.Bool(0), args.Error(1)
}

func (m *grantRepoMock) HasUserApp(ctx context.Context, userID, appID uuid.UUID) (bool, error) {
	args := m.Called(ctx, userID, appID)
	return args.Bool(0), args.Error(1)
}

func (m *grantRepoMock) AddUserRole(ctx context.Context, userID, roleID uuid.UUID) error {
	return m.Called(ctx, userID, roleID).Error(0)
}

func (m *grantRepoMock) RemoveUserRole(ctx context.Context, userID, roleID uuid.UUID) (bool, error) {
	args := m.Called(ctx, userID, roleID)
	return args.Bool(0), args.Error(1)
}

func (m *grantRepoMock) AddRolePermission(ctx context.Context, roleID, permissionID uuid.UUID) error {
	return m.Called(ctx, roleID, permissionID).Error(0)
}

func (m *grantRepoMock) RemoveRolePermission(ctx context.Context, roleID, permissionID uuid.UUID) (bool, error) {
	args := m.Called(ctx, roleID, permissionID)
	return args.Bool(0), args.Error(1)
}

func (m *grantRepoMock) AddUserPermission(ctx context.Context, userID, permissionID uuid.UUID) error {
	return m.Called(ctx, userID, permissionID).Error(0)
}

func (m *grantRepoMock) RemoveUserPermission(ctx context.Context, userID, permissionID uuid.UUID) (bool, error) {
	args := m.Called(ctx, userID, permissionID)
	return args.Bool(0), args.Error(1)
}

func (m *grantRepoMock) EffectivePermissions(ctx context.Context, userID, appID uuid.UUID) ([]model.Permission, error) {
	args := m.Called(ctx, userID, appID)
	return args.Get(0).([]model.Permission), args.Error(1)
}

// --- UserService ---

func TestUserServiceGetByIDNotFound(t *testing.T) {
	repo := new(userRepoMock)
	svc := NewUserService(repo)
	id := uuid.New()
	repo.On("FindByID", mock.Anything, id).Return((*model.User)(nil), nil)

	_, err := svc.GetUserByID(context.Background(), id)

	typed := apperror.From(err)
	assert.Equal(t, apperror.KindNotFound, typed.Kind)
	assert.Equal(t, "User not found", typed.Message)
}

func TestUserServicePassesTypedErrorsThroughUnchanged(t *testing.T) {
	repo := new(userRepoMock)
	svc := NewUserService(repo)
	id := uuid.New()
	conflict := apperror.Conflict("A record with these email already exists", nil)
	repo.On("Update", mock.Anything, id, mock.Anything).Return((*model.User)(nil), conflict)

	_, err := svc.UpdateUser(context.Background(), id, model.UserUpdateInput{})

	require.Same(t, conflict, apperror.From(err))
}

func TestUserServiceWrapsUntypedErrors(t *testing.T) {
	repo := new(userRepoMock)
	svc := NewUserService(repo)
	raw := errors.New("driver blew up")
	repo.On("FindAll", mock.Anything, mock.Anything).Return(pagination.Page[model.User]{}, raw)

	_, err := svc.ListUsers(context.Background(), model.UserFilter{Page: 1, Limit: 10})

	typed := apperror.From(err)
	assert.Equal(t, apperror.KindInternalServerError, typed.Kind)
	assert.Equal(t, "An unknown error occurred", typed.Message)
	assert.Equal(t, raw, typed.Cause)
}

func TestUserServiceCreateFailureSentinel(t *testing.T) {
	repo := new(userRepoMock)
	svc := NewUserService(repo)
	repo.On("Create", mock.Anything, mock.Anything).Return((*model.User)(nil), nil)

	_, err := svc.CreateUser(context.Background(), model.UserCreateInput{Email: "a@b.co"})

	typed := apperror.From(err)
	assert.Equal(t, apperror.KindInternalServerError, typed.Kind)
	assert.Equal(t, "Failed to create user", typed.Message)
}

func TestUserServiceCreateReturnsPersistedEntity(t *testing.T) {
	repo := new(userRepoMock)
	svc := NewUserService(repo)
	persisted := &model.User{ID: uuid.New(), Email: "a@b.co"}
	repo.On("Create", mock.Anything, mock.Anything).Return(persisted, nil)

	user, err := svc.CreateUser(context.Background(), model.UserCreateInput{Email: "a@b.co"})

	require.NoError(t, err)
	assert.Equal(t, persisted, user)
}

func TestUserServiceDeleteNotFound(t *testing.T) {
	repo := new(userRepoMock)
	svc := NewUserService(repo)
	id := uuid.New()
	repo.On("Delete", mock.Anything, id).Return((*model.User)(nil), nil)

	_, err := svc.DeleteUser(context.Background(), id)

	assert.Equal(t, apperror.KindNotFound, apperror.From(err).Kind)
}

// --- RoleService ---

func TestRoleServiceCreateRejectsMissingApp(t *testing.T) {
	roles := new(roleRepoMock)
	apps := new(appRepoMock)
	svc := NewRoleService(roles, apps)
	appID := uuid.New()
	apps.On("FindByID", mock.Anything, appID).Return((*model.App)(nil), nil)

	_, err := svc.CreateRole(context.Background(), model.RoleCreateInput{Name: "editor", AppID: appID})

	typed := apperror.From(err)
	assert.Equal(t, apperror.KindNotFound, typed.Kind)
	assert.Equal(t, "App not found", typed.Message)
	roles.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRoleServiceCreate(t *testing.T) {
	roles := new(roleRepoMock)
	apps := new(appRepoMock)
	svc := NewRoleService(roles, apps)
	appID := uuid.New()
	apps.On("FindByID", mock.Anything, appID).Return(&model.App{ID: appID, Name: "a"}, nil)
	created := &model.Role{ID: uuid.New(), Name: "editor", AppID: appID}
	roles.On("Create", mock.Anything, mock.Anything).Return(created, nil)

	role, err := svc.CreateRole(context.Background(), model.RoleCreateInput{Name: "editor", AppID: appID})

	require.NoError(t, err)
	assert.Equal(t, created, role)
}

// --- GrantService ---

func newGrantService(grants *grantRepoMock, users *userRepoMock, apps *appRepoMock) GrantService {
	return NewGrantService(grants, users, apps, new(roleRepoMock), nil)
}

func TestGrantServiceEffectivePermissionsRequiresAppAccess(t *testing.T) {
	grants := new(grantRepoMock)
	users := new(userRepoMock)
	apps := new(appRepoMock)
	svc := newGrantService(grants, users, apps)

	userID, appID := uuid.New(), uuid.New()
	users.On("FindByID", mock.Anything, userID).Return(&model.User{ID: userID}, nil)
	apps.On("FindByID", mock.Anything, appID).Return(&model.App{ID: appID}, nil)
	grants.On("HasUserApp", mock.Anything, userID, appID).Return(false, nil)

	_, err := svc.EffectivePermissions(context.Background(), userID, appID)

	typed := apperror.From(err)
	assert.Equal(t, apperror.KindForbidden, typed.Kind)
	assert.Equal(t, "User does not have access to this app", typed.Message)
	grants.AssertNotCalled(t, "EffectivePermissions", mock.Anything, mock.Anything, mock.Anything)
}

func TestGrantServiceEffectivePermissions(t *testing.T) {
	grants := new(grantRepoMock)
	users := new(userRepoMock)
	apps := new(appRepoMock)
	svc := newGrantService(grants, users, apps)

	userID, appID := uuid.New(), uuid.New()
	expected := []model.Permission{{ID: uuid.New(), Name: "read", AppID: appID}}
	users.On("FindByID", mock.Anything, userID).Return(&model.User{ID: userID}, nil)
	apps.On("FindByID", mock.Anything, appID).Return(&model.App{ID: appID}, nil)
	grants.On("HasUserApp", mock.Anything, userID, appID).Return(true, nil)
	grants.On("EffectivePermissions", mock.Anything, userID, appID).Return(expected, nil)

	perms, err := svc.EffectivePermissions(context.Background(), userID, appID)

	require.NoError(t, err)
	assert.Equal(t, expected, perms)
}

func TestGrantServiceGrantAppAccessUserMissing(t *testing.T) {
	grants := new(grantRepoMock)
	users := new(userRepoMock)
	apps := new(appRepoMock)
	svc := newGrantService(grants, users, apps)

	userID, appID := uuid.New(), uuid.New()
	users.On("FindByID", mock.Anything, userID).Return((*model.User)(nil), nil)

	err := svc.GrantAppAccess(context.Background(), userID, appID)

	assert.Equal(t, apperror.KindNotFound, apperror.From(err).Kind)
	grants.AssertNotCalled(t, "AddUserApp", mock.Anything, mock.Anything, mock.Anything)
}

func TestGrantServiceRevokeMissingGrantIsNotFound(t *testing.T) {
	grants := new(grantRepoMock)
	svc := newGrantService(grants, new(userRepoMock), new(appRepoMock))

	userID, appID := uuid.New(), uuid.New()
	grants.On("RemoveUserApp", mock.Anything, userID, appID).Return(false, nil)

	err := svc.RevokeAppAccess(context.Background(), userID, appID)

	typed := apperror.From(err)
	assert.Equal(t, apperror.KindNotFound, typed.Kind)
	assert.Equal(t, "App access grant not found", typed.Message)
}

func TestGrantServiceDuplicateGrantSurfacesConflict(t *testing.T) {
	grants := new(grantRepoMock)
	users := new(userRepoMock)
	apps := new(appRepoMock)
	svc := newGrantService(grants, users, apps)

	userID, appID := uuid.New(), uuid.New()
	conflict := apperror.Conflict("A record with these userId and appId already exists", nil)
	users.On("FindByID", mock.Anything, userID).Return(&model.User{ID: userID}, nil)
	apps.On("FindByID", mock.Anything, appID).Return(&model.App{ID: appID}, nil)
	grants.On("AddUserApp", mock.Anything, userID, appID).Return(conflict)

	err := svc.GrantAppAccess(context.Background(), userID, appID)

	require.Same(t, conflict, apperror.From(err))
}
