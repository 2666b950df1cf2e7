package repository

import (
	"testing"

	"backend/internal/model"
	"backend/pkg/optional"

	"github.com/stretchr/testify/assert"
)

func TestUserCreateModelMapsEveryField(t *testing.T) {
	googleID := "google-123"
	in := model.UserCreateInput{
		Email:        "test@example.com",
		Name:         "Test User",
		GoogleID:     &googleID,
		IsSuperAdmin: true,
	}

	user := userCreateModel(in)

	assert.Equal(t, in.Email, user.Email)
	assert.Equal(t, in.Name, user.Name)
	assert.Equal(t, in.GoogleID, user.GoogleID)
	assert.Equal(t, in.IsSuperAdmin, user.IsSuperAdmin)
}

func TestUserUpdatePatchEmptyInputYieldsEmptyPatch(t *testing.T) {
	assert.Empty(t, userUpdatePatch(model.UserUpdateInput{}))
	assert.Empty(t, appUpdatePatch(model.AppUpdateInput{}))
	assert.Empty(t, roleUpdatePatch(model.RoleUpdateInput{}))
	assert.Empty(t, permissionUpdatePatch(model.PermissionUpdateInput{}))
}

func TestUserUpdatePatchMapsOnlySuppliedFields(t *testing.T) {
	patch := userUpdatePatch(model.UserUpdateInput{
		Name:         optional.Of("Renamed"),
		IsSuperAdmin: optional.Of(true),
	})

	assert.Equal(t, map[string]any{
		"name":           "Renamed",
		"is_super_admin": true,
	}, patch)
}

func TestUserUpdatePatchExplicitNullClearsGoogleID(t *testing.T) {
	patch := userUpdatePatch(model.UserUpdateInput{
		GoogleID: optional.Null[string](),
	})

	value, present := patch["google_id"]
	assert.True(t, present)
	assert.Nil(t, value)
}

func TestUserUpdatePatchNullOnNonNullableFieldIsIgnored(t *testing.T) {
	patch := userUpdatePatch(model.UserUpdateInput{
		Email: optional.Null[string](),
	})

	_, present := patch["email"]
	assert.False(t, present)
}

func TestAppUpdatePatch(t *testing.T) {
	patch := appUpdatePatch(model.AppUpdateInput{
		Description: optional.Of("billing tenant"),
	})

	assert.Equal(t, map[string]any{"description": "billing tenant"}, patch)
}
