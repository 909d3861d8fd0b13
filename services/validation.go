package services

import (
	"breakout-lab/domain"
	"breakout-lab/errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// SetupRequest holds the caller-supplied setup parameters.
// The amount bounds mirror domain.MinimumRoomAmount and domain.MaximumRoomAmount.
type SetupRequest struct {
	Mode   domain.Mode `validate:"oneof=1 2 3"`
	Amount int         `validate:"gte=1,lte=20"`
}

// ValidateSetup maps struct validation failures onto breakout errors.
func ValidateSetup(req SetupRequest) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}
	for _, fieldErr := range validationErrors {
		switch fieldErr.Field() {
		case "Mode":
			return fmt.Errorf("%w: %v", errors.ErrInvalidMode, fieldErr.Value())
		case "Amount":
			return fmt.Errorf("%w: %v not in [%d,%d]", errors.ErrInvalidAmount,
				fieldErr.Value(), domain.MinimumRoomAmount, domain.MaximumRoomAmount)
		}
	}
	return err
}

type chatMessageRequest struct {
	Text string `validate:"required"`
}

func validateChatMessage(text string, maxContentLength int) error {
	if err := validate.Struct(chatMessageRequest{Text: text}); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrInvalidMessage, err)
	}
	if err := validate.Var(text, fmt.Sprintf("max=%d", maxContentLength)); err != nil {
		return fmt.Errorf("%w: content longer than %d characters", errors.ErrInvalidMessage, maxContentLength)
	}
	return nil
}
