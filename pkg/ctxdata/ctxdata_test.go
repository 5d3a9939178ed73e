package ctxdata

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserRoundTrip(t *testing.T) {
	ctx := WithUser(context.Background(), "teacher-1", "teacher")

	id, ok := GetUserID(ctx)
	assert.True(t, ok)
	assert.Equal(t, "teacher-1", id)

	role, ok := GetUserRole(ctx)
	assert.True(t, ok)
	assert.Equal(t, "teacher", role)
}

func TestMissingValues(t *testing.T) {
	ctx := context.Background()

	_, ok := GetUserID(ctx)
	assert.False(t, ok)
	_, ok = GetUserRole(ctx)
	assert.False(t, ok)
	_, ok = GetTraceID(ctx)
	assert.False(t, ok)
	_, ok = GetSessionToken(ctx)
	assert.False(t, ok)
}

func TestEmptyUserIsAbsent(t *testing.T) {
	ctx := WithUser(context.Background(), "", "")

	_, ok := GetUserID(ctx)
	assert.False(t, ok)
}

func TestTraceAndSession(t *testing.T) {
	ctx := WithTraceID(context.Background(), "trace")
	ctx = WithSessionToken(ctx, "tok")

	trace, ok := GetTraceID(ctx)
	assert.True(t, ok)
	assert.Equal(t, "trace", trace)

	token, ok := GetSessionToken(ctx)
	assert.True(t, ok)
	assert.Equal(t, "tok", token)
}
