package service

import (
	"context"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/shule-labs/shule-api/internal/store/memory"
	appErrors "github.com/shule-labs/shule-api/pkg/errors"
)

func TestNoticeServiceCreate(t *testing.T) {
	svc := NewNoticeService(memory.New(), validator.New(), zap.NewNop())

	notice, err := svc.Create(context.Background(), CreateNoticeRequest{
		Title:    "Sports Day",
		Content:  "Annual sports day is on Friday.",
		Audience: "Parents",
		Date:     "2026-03-06",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, notice.ID)
}

func TestNoticeServiceCreateInvalidAudience(t *testing.T) {
	svc := NewNoticeService(memory.New(), validator.New(), zap.NewNop())

	_, err := svc.Create(context.Background(), CreateNoticeRequest{
		Title:    "Sports Day",
		Content:  "Annual sports day is on Friday.",
		Audience: "Everyone",
		Date:     "2026-03-06",
	})
	require.Error(t, err)
	assert.Equal(t, 400, appErrors.FromError(err).Status)
}
