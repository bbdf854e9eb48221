package serverutils

import (
	"errors"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func TestValidateRequest(t *testing.T) {
	type payload struct {
		Email string `validate:"required,email"`
		Text  string `validate:"required,min=1"`
	}

	t.Run("valid payload passes", func(t *testing.T) {
		err := ValidateRequest(payload{Email: "user@example.com", Text: "hi"})
		if err != nil {
			t.Fatalf("err = %v, want nil", err)
		}
	})

	t.Run("invalid payload yields a 400 with flattened fields", func(t *testing.T) {
		err := ValidateRequest(payload{Email: "not-an-email"})
		if err == nil {
			t.Fatal("expected error")
		}

		var fiberErr *fiber.Error
		if !errors.As(err, &fiberErr) {
			t.Fatalf("err = %T, want *fiber.Error", err)
		}
		if fiberErr.Code != fiber.StatusBadRequest {
			t.Errorf("code = %d, want %d", fiberErr.Code, fiber.StatusBadRequest)
		}
		if !strings.Contains(fiberErr.Message, "Email") || !strings.Contains(fiberErr.Message, "Text") {
			t.Errorf("message %q should name both failing fields", fiberErr.Message)
		}
	})
}
