package admin

import (
	"github.com/labstack/echo/v4"

	"github.com/keyxmakerx/catalogadmin/internal/apperror"
)

// Applier is implemented by request DTOs: it copies the bound form values
// onto a draft or edit buffer.
type Applier[T any] interface {
	Apply(rec *T)
}

// BindFunc reads the request and returns the setter to run against the
// draft or edit buffer.
type BindFunc[T any] func(c echo.Context) (func(*T), error)

// FormBinder returns a BindFunc that binds the request into a fresh R with
// Echo's binder and hands back R's Apply method.
//
//	Bind: admin.FormBinder[Genre, genreRequest](),
func FormBinder[T any, R any, PR interface {
	*R
	Applier[T]
}]() BindFunc[T] {
	return func(c echo.Context) (func(*T), error) {
		req := PR(new(R))
		if err := c.Bind(req); err != nil {
			return nil, apperror.NewBadRequest("No se pudieron leer los datos del formulario.")
		}
		return req.Apply, nil
	}
}
