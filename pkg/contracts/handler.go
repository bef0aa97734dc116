package contracts

import "github.com/julienschmidt/httprouter"

// Handler is implemented by every HTTP handler group mounted by the application.
type Handler interface {
	RegisterRoutes(router *httprouter.Router)
}
