package httpapi

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/councildata/council-data-explorer/internal/airquality"
	"github.com/councildata/council-data-explorer/internal/bins"
	"github.com/councildata/council-data-explorer/internal/planning"
)

var validate = validator.New()

// Services bundles the domain services the routes depend on.
type Services struct {
	Bins       *bins.Service
	Planning   *planning.Service
	AirQuality *airquality.Service
}

// RegisterRoutes wires the HTTP handlers into the Fiber app.
func RegisterRoutes(app *fiber.App, svcs Services) {
	v1 := app.Group("/api/v1")

	v1.Get("/bins", func(c *fiber.Ctx) error {
		var q binsQuery
		q.UPRN = c.Query("uprn")
		q.Postcode = c.Query("postcode")
		q.HouseNumber = c.Query("house_number")

		if err := validate.Struct(q); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		if q.UPRN == "" && q.Postcode == "" {
			return fiber.NewError(fiber.StatusBadRequest, "provide either uprn or postcode")
		}

		result, err := svcs.Bins.Collections(c.Context(), bins.Query{
			UPRN:        q.UPRN,
			Postcode:    q.Postcode,
			HouseNumber: q.HouseNumber,
		})
		if err != nil {
			return fiber.NewError(fiber.StatusServiceUnavailable, "bin collection data is currently unavailable")
		}
		return c.JSON(result)
	})

	v1.Get("/planning", func(c *fiber.Ctx) error {
		var q planningQuery
		q.LPA = c.Query("lpa")
		q.DateFrom = c.Query("date_from")
		q.DateTo = c.Query("date_to")

		if err := validate.Struct(q); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		result, err := svcs.Planning.Applications(c.Context(), planning.Query{
			LPA:      q.LPA,
			DateFrom: q.DateFrom,
			DateTo:   q.DateTo,
		})
		if err != nil {
			if errors.Is(err, planning.ErrMissingLPA) {
				return fiber.NewError(fiber.StatusBadRequest, err.Error())
			}
			return fiber.NewError(fiber.StatusServiceUnavailable, "planning data is currently unavailable")
		}
		return c.JSON(result)
	})

	v1.Get("/air-quality", func(c *fiber.Ctx) error {
		result, err := svcs.AirQuality.AirQuality(c.Context(), airquality.Query{
			Area: c.Query("area"),
		})
		if err != nil {
			return fiber.NewError(fiber.StatusServiceUnavailable, "air quality data is currently unavailable")
		}
		return c.JSON(result)
	})
}

// binsQuery holds query parameters for the bins endpoint. The UPRN, when
// supplied, must be numeric.
type binsQuery struct {
	UPRN        string `validate:"omitempty,numeric"`
	Postcode    string
	HouseNumber string
}

// planningQuery holds query parameters for the planning endpoint.
type planningQuery struct {
	LPA      string `validate:"required"`
	DateFrom string `validate:"omitempty,datetime=2006-01-02"`
	DateTo   string `validate:"omitempty,datetime=2006-01-02"`
}
