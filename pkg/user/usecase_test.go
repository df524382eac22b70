package user_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/formforge/backend/pkg/apperr"
	"github.com/formforge/backend/pkg/user"
)

type fakeRepo struct {
	users  []user.User
	nextID int64
	err    error
}

func (f *fakeRepo) Create(_ context.Context, u user.User) (user.User, error) {
	if f.err != nil {
		return user.User{}, f.err
	}
	f.nextID++
	u.ID = f.nextID
	f.users = append(f.users, u)
	return u, nil
}

func (f *fakeRepo) List(_ context.Context) ([]user.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.users, nil
}

func TestCreateValidation(t *testing.T) {
	tests := []struct {
		name        string
		username    string
		email       string
		wantMessage string
	}{
		{"missing username", "", "a@b.com", "Missing required parameter: username"},
		{"blank username", "   ", "a@b.com", "Missing required parameter: username"},
		{"missing email", "bob", "", "Missing required parameter: email"},
		{"blank email", "bob", "\t", "Missing required parameter: email"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeRepo{}
			svc := user.NewService(repo)

			_, err := svc.Create(context.Background(), tt.username, tt.email)

			var ae *apperr.Error
			require.ErrorAs(t, err, &ae)
			assert.Equal(t, apperr.KindValidation, ae.Kind)
			assert.Equal(t, tt.wantMessage, ae.Message)
			assert.Empty(t, repo.users, "nothing may be persisted on validation failure")
		})
	}
}

func TestCreateAssignsDistinctIDs(t *testing.T) {
	svc := user.NewService(&fakeRepo{})

	u1, err := svc.Create(context.Background(), "bob", "bob@x.com")
	require.NoError(t, err)
	u2, err := svc.Create(context.Background(), "bob", "bob@x.com")
	require.NoError(t, err)

	assert.Equal(t, "bob", u1.Username)
	assert.Equal(t, "bob@x.com", u1.Email)
	assert.Positive(t, u1.ID)
	assert.NotEqual(t, u1.ID, u2.ID, "identical payloads still produce distinct records")
}

func TestListNeverReturnsNilSlice(t *testing.T) {
	svc := user.NewService(&fakeRepo{})

	users, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, users)
	assert.Empty(t, users)
}

func TestRepositoryFailuresAreInternal(t *testing.T) {
	svc := user.NewService(&fakeRepo{err: errors.New("connection reset")})

	_, err := svc.Create(context.Background(), "bob", "bob@x.com")
	var ae *apperr.Error
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, apperr.KindInternal, ae.Kind)
	assert.Equal(t, "failed to save user", ae.Message)

	_, err = svc.List(context.Background())
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, apperr.KindInternal, ae.Kind)
	assert.Equal(t, "failed to list users", ae.Message)
}
