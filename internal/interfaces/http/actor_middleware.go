package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/pakoelda-code/wom-partes/internal/application/dto"
	"github.com/pakoelda-code/wom-partes/internal/domain/entity"
)

// Cabeceras con la identidad del actor, inyectadas por la capa de
// autenticación que antecede a este servicio.
const (
	HeaderActorCode = "X-Actor-Code"
	HeaderActorName = "X-Actor-Name"
)

const (
	localActorCode = "actor_code"
	localActorName = "actor_name"
)

// ActorMiddleware exige la identidad del actor (código + nombre) en las
// cabeceras y la carga en los locals de la petición. Todo movimiento queda
// atribuido a ese actor en el libro.
func ActorMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		code := strings.TrimSpace(c.Get(HeaderActorCode))
		name := strings.TrimSpace(c.Get(HeaderActorName))
		if code == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code: "UNAUTHORIZED", Message: "falta la identidad del actor",
			})
		}
		c.Locals(localActorCode, code)
		c.Locals(localActorName, name)
		return c.Next()
	}
}

// GetActor devuelve el actor cargado por ActorMiddleware. Código vacío
// significa petición sin identidad.
func GetActor(c *fiber.Ctx) entity.Actor {
	code, _ := c.Locals(localActorCode).(string)
	name, _ := c.Locals(localActorName).(string)
	return entity.Actor{Code: code, Name: name}
}
