package httpapi

import (
	"errors"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/kojofoli/temperature-toolkit/internal/store"
	"github.com/kojofoli/temperature-toolkit/internal/temperature"
)

var validate = validator.New()

// defaultExtremeThreshold applies to the overview endpoint when no threshold
// query parameter is given.
const defaultExtremeThreshold = 30.0

// RegisterRoutes wires the HTTP handlers into the Fiber app.
func RegisterRoutes(app *fiber.App, service *temperature.Service) {
	v1 := app.Group("/api/v1")

	v1.Post("/convert", func(c *fiber.Ctx) error {
		var req convertRequest
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		if err := validate.Struct(req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		result, err := service.ConvertValue(*req.Value, temperature.Scale(req.From), temperature.Scale(req.To))
		if err != nil {
			return scaleError(err)
		}

		return c.JSON(fiber.Map{
			"value":  *req.Value,
			"from":   req.From,
			"to":     req.To,
			"result": result,
		})
	})

	v1.Post("/records", func(c *fiber.Ctx) error {
		var req recordRequest
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		if err := validate.Struct(req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		// The record constructor does not validate scales, so the API
		// boundary does.
		scale, err := temperature.ParseScale("scale", req.Scale)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		rec := temperature.NewRecord(req.Date, req.Readings, scale)
		service.SaveRecord(rec)

		return c.Status(fiber.StatusCreated).JSON(rec.Summary())
	})

	v1.Get("/records", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"records": service.Summaries(),
		})
	})

	v1.Get("/records/:date/summary", func(c *fiber.Ctx) error {
		summary, err := service.SummaryFor(c.Params("date"))
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "no record for requested date")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "failed to compute summary")
		}
		return c.JSON(summary)
	})

	v1.Post("/records/:date/convert", func(c *fiber.Ctx) error {
		var req convertRecordRequest
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		if err := validate.Struct(req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		rec, err := service.ConvertRecord(c.Params("date"), temperature.Scale(req.Scale))
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "no record for requested date")
			}
			return scaleError(err)
		}

		return c.JSON(rec.Summary())
	})

	v1.Get("/records/:date/trend", func(c *fiber.Ctx) error {
		spikeThreshold, err := queryFloat(c, "spike_threshold", temperature.DefaultSpikeThreshold)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		report, err := service.TrendFor(c.Params("date"), spikeThreshold)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "no record for requested date")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "failed to compute trend")
		}

		return c.JSON(report)
	})

	v1.Get("/analytics/overview", func(c *fiber.Ctx) error {
		threshold, err := queryFloat(c, "threshold", defaultExtremeThreshold)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		overview, err := service.Overview(threshold)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "failed to compute overview")
		}

		return c.JSON(overview)
	})
}

// convertRequest holds the body of a single-value conversion.
// Value is a pointer so a literal 0 still satisfies required.
type convertRequest struct {
	Value *float64 `json:"value" validate:"required"`
	From  string   `json:"from" validate:"required"`
	To    string   `json:"to" validate:"required"`
}

// recordRequest holds the body of a record upsert. Empty readings are legal.
type recordRequest struct {
	Date     string    `json:"date" validate:"required"`
	Readings []float64 `json:"readings"`
	Scale    string    `json:"scale" validate:"required"`
}

type convertRecordRequest struct {
	Scale string `json:"scale" validate:"required"`
}

// scaleError maps an invalid-scale conversion failure to 400 and anything
// else to 500.
func scaleError(err error) error {
	var scaleErr *temperature.InvalidScaleError
	if errors.As(err, &scaleErr) {
		return fiber.NewError(fiber.StatusBadRequest, scaleErr.Error())
	}
	return fiber.NewError(fiber.StatusInternalServerError, "conversion failed")
}

func queryFloat(c *fiber.Ctx, key string, def float64) (float64, error) {
	raw := c.Query(key)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, errors.New("invalid " + key + " query parameter")
	}
	return v, nil
}
