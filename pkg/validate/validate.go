package validate

import (
	"errors"
	"fmt"
	"strings"

	errprocess "entrust_service/pkg/err"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// Struct run the validate tags of v, failures become KindValidation
func Struct(v interface{}) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		fields := make([]string, 0, len(fieldErrs))
		for _, fe := range fieldErrs {
			fields = append(fields, fmt.Sprintf("%s(%s)", fe.Field(), fe.Tag()))
		}
		return errprocess.Wrap(errprocess.KindValidation, err, "Parameter Error: "+strings.Join(fields, ", "))
	}
	return errprocess.Wrap(errprocess.KindValidation, err, "Parameter Error")
}

// Query parse the query string into out and validate it
func Query(c *fiber.Ctx, out interface{}) error {
	if err := c.QueryParser(out); err != nil {
		return errprocess.Wrap(errprocess.KindValidation, err, "Parameter Error")
	}
	return Struct(out)
}

// Body parse the request body into out and validate it
func Body(c *fiber.Ctx, out interface{}) error {
	if err := c.BodyParser(out); err != nil {
		return errprocess.Wrap(errprocess.KindValidation, err, "Parameter Error")
	}
	return Struct(out)
}

// ParamInt64 positive numeric path parameter
func ParamInt64(c *fiber.Ctx, name string) (int64, error) {
	v, err := c.ParamsInt(name)
	if err != nil || v < 0 {
		return 0, errprocess.New(errprocess.KindValidation, "Parameter Error: "+name)
	}
	return int64(v), nil
}
