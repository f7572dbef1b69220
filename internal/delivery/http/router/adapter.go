package router

import (
	"authsvc/internal/delivery/http/protocol"
	"authsvc/internal/delivery/http/response"

	"github.com/labstack/echo/v4"
)

// AdaptRoute turns a controller into an echo handler. Malformed JSON is left to
// the centralized error handler; everything else is decided by the controller.
func AdaptRoute[T any](controller protocol.Controller[T]) echo.HandlerFunc {
	return func(c echo.Context) error {
		body := new(T)
		if err := c.Bind(body); err != nil {
			return err
		}

		req := c.Request()
		resp := controller.Handle(req.Context(), &protocol.HTTPRequest[T]{
			Body:   *body,
			Header: req.Header,
		})

		return render(c, resp)
	}
}

func render(c echo.Context, resp *protocol.HTTPResponse) error {
	if resp.StatusCode >= 200 && resp.StatusCode <= 299 {
		return response.Success(c, resp.StatusCode, resp.Body)
	}

	err, _ := resp.Body.(error)

	return response.AppError(c, resp.StatusCode, err)
}
