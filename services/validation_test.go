package services

import (
	"breakout-lab/domain"
	"breakout-lab/errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateSetup(t *testing.T) {
	tests := []struct {
		name    string
		req     SetupRequest
		wantErr error
	}{
		{name: "automatic min", req: SetupRequest{Mode: domain.ModeAutomatic, Amount: domain.MinimumRoomAmount}},
		{name: "manual max", req: SetupRequest{Mode: domain.ModeManual, Amount: domain.MaximumRoomAmount}},
		{name: "free", req: SetupRequest{Mode: domain.ModeFree, Amount: 4}},
		{name: "not configured mode", req: SetupRequest{Mode: domain.ModeNotConfigured, Amount: 2}, wantErr: errors.ErrInvalidMode},
		{name: "unknown mode", req: SetupRequest{Mode: domain.Mode(9), Amount: 2}, wantErr: errors.ErrInvalidMode},
		{name: "zero amount", req: SetupRequest{Mode: domain.ModeAutomatic, Amount: 0}, wantErr: errors.ErrInvalidAmount},
		{name: "amount above max", req: SetupRequest{Mode: domain.ModeAutomatic, Amount: domain.MaximumRoomAmount + 1}, wantErr: errors.ErrInvalidAmount},
		{name: "negative amount", req: SetupRequest{Mode: domain.ModeAutomatic, Amount: -3}, wantErr: errors.ErrInvalidAmount},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)

			err := ValidateSetup(tt.req)

			if tt.wantErr == nil {
				req.NoError(err)
				return
			}
			req.ErrorIs(err, tt.wantErr)
		})
	}
}

func TestValidateChatMessage(t *testing.T) {
	req := require.New(t)

	req.NoError(validateChatMessage("hello", 10))
	req.ErrorIs(validateChatMessage("", 10), errors.ErrInvalidMessage)
	req.ErrorIs(validateChatMessage(strings.Repeat("a", 11), 10), errors.ErrInvalidMessage)
}
