package middleware

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/pedidos/backend/internal/domain/trade"
)

// RegisterCustomValidators installs domain validators into gin's binding
// engine. Must run once before the router starts serving.
func RegisterCustomValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}

	// ubicacion accepts warehouse locations like "Pasillo 3" or "R colgada 1"
	_ = v.RegisterValidation("ubicacion", func(fl validator.FieldLevel) bool {
		_, ok := trade.ParseLocation(fl.Field().String())
		return ok
	})
}
