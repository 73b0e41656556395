package presenter

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wichananm65/user-registry/internal/domain/entity"
)

func TestUserPresenter_ToResponse(t *testing.T) {
	addr := "123 Test St."
	user := &entity.User{
		ID:        7,
		Email:     "test@example.com",
		FirstName: "John",
		LastName:  "Doe",
		BirthDate: entity.MustParseDate("2000-01-01"),
		Address:   &addr,
	}

	out, err := json.Marshal(NewUserPresenter().ToResponse(user))
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"id": 7,
		"email": "test@example.com",
		"firstName": "John",
		"lastName": "Doe",
		"birthDate": "2000-01-01",
		"address": "123 Test St.",
		"phoneNumber": null
	}`, string(out))
}

func TestUserPresenter_ToList(t *testing.T) {
	p := NewUserPresenter()

	assert.Nil(t, p.ToResponse(nil))
	assert.NotNil(t, p.ToList(nil), "empty list encodes as [] rather than null")
	assert.Len(t, p.ToList([]*entity.User{{ID: 1}, {ID: 2}}), 2)
}
