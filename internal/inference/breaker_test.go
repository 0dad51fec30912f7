package inference_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sony/gobreaker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/at-ishikawa/cardsmith/internal/inference"
	mock_inference "github.com/at-ishikawa/cardsmith/internal/mocks/inference"
)

func TestBreakerClient_GenerateText(t *testing.T) {
	ctrl := gomock.NewController(t)
	next := mock_inference.NewMockClient(ctrl)
	params := inference.GenerateTextRequest{Prompt: "prompt", Count: 2}

	next.EXPECT().GenerateText(gomock.Any(), params).
		Return(inference.GenerateTextResponse{Text: "Apple:A fruit:-:1"}, nil)

	client := inference.NewBreakerClient(next, inference.BreakerSettings{Name: "test"}, zap.NewNop())
	got, err := client.GenerateText(context.Background(), params)

	require.NoError(t, err)
	assert.Equal(t, "Apple:A fruit:-:1", got.Text)
	assert.Equal(t, gobreaker.StateClosed, client.State())
}

func TestBreakerClient_OpensAfterConsecutiveFailures(t *testing.T) {
	ctrl := gomock.NewController(t)
	next := mock_inference.NewMockClient(ctrl)
	providerErr := errors.New("response error 500: boom")

	next.EXPECT().GenerateText(gomock.Any(), gomock.Any()).
		Return(inference.GenerateTextResponse{}, providerErr).
		Times(2)

	client := inference.NewBreakerClient(next, inference.BreakerSettings{
		Name:                   "test",
		MaxConsecutiveFailures: 2,
		OpenTimeout:            time.Minute,
	}, zap.NewNop())

	for i := 0; i < 2; i++ {
		_, err := client.GenerateText(context.Background(), inference.GenerateTextRequest{})
		require.ErrorIs(t, err, providerErr)
	}
	assert.Equal(t, gobreaker.StateOpen, client.State())

	_, err := client.GenerateText(context.Background(), inference.GenerateTextRequest{})
	assert.ErrorIs(t, err, inference.ErrCircuitOpen)
}

func TestBreakerClient_CanceledContextDoesNotTrip(t *testing.T) {
	ctrl := gomock.NewController(t)
	next := mock_inference.NewMockClient(ctrl)

	next.EXPECT().GenerateText(gomock.Any(), gomock.Any()).
		Return(inference.GenerateTextResponse{}, context.Canceled).
		Times(3)

	client := inference.NewBreakerClient(next, inference.BreakerSettings{
		Name:                   "test",
		MaxConsecutiveFailures: 1,
		OpenTimeout:            time.Minute,
	}, zap.NewNop())

	for i := 0; i < 3; i++ {
		_, err := client.GenerateText(context.Background(), inference.GenerateTextRequest{})
		require.ErrorIs(t, err, context.Canceled)
	}
	assert.Equal(t, gobreaker.StateClosed, client.State())
}
