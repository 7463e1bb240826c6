package handlers

import (
	"errors"
	"net/http"

	"printstudio/internal/adapter/http/dto/request"
	"printstudio/internal/adapter/http/dto/response"
	"printstudio/internal/domain/entities"
	"printstudio/internal/domain/pricing"
	"printstudio/internal/usecase"
	"printstudio/internal/usecase/interfaces"
	"printstudio/pkg"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

var errInvalidPricePayload = pkg.NewDomainErrorSimple("INVALID_PRICE_INPUT", "Invalid price payload", http.StatusBadRequest)

// QuoteHandler handles price computations and quote creation.
type QuoteHandler struct {
	usecase usecase.IQuoteUseCase
}

func NewQuoteHandler(uc usecase.IQuoteUseCase) *QuoteHandler {
	return &QuoteHandler{usecase: uc}
}

// ComputePrice prices a hypothetical order without persisting anything.
func (h *QuoteHandler) ComputePrice(c *gin.Context) {
	var payload request.PriceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := bindingError(errInvalidPricePayload, err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	payload.Normalize()

	quote, err := h.usecase.ComputePrice(
		c.Request.Context(),
		payload.ServiceKey,
		payload.Quantity,
		payload.Colors,
		entities.PrintArea(payload.PrintArea),
	)
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuote(quote))
}

// CreateQuote persists a customer quote request with its computed total.
func (h *QuoteHandler) CreateQuote(c *gin.Context) {
	var payload request.CreateQuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := bindingError(pkg.NewDomainErrorSimple("INVALID_QUOTE_INPUT", "Invalid quote payload", http.StatusBadRequest), err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	payload.Normalize()

	created, err := h.usecase.CreateQuote(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromQuoteRequest(created))
}

// bindingError upgrades validator failures to a field-by-field report so a
// single response lists every violated constraint.
func bindingError(fallback *pkg.AppError, err error) *pkg.AppError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fallback
	}

	fields := make([]pkg.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, pkg.FieldError{
			Field:  fe.Field(),
			Reason: fieldReason(fe),
		})
	}
	return pkg.NewValidationError(fallback.Code, fallback.Message, fields, http.StatusBadRequest)
}

func fieldReason(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return "must be at least " + fe.Param()
	case "max":
		return "must be at most " + fe.Param()
	case "oneof":
		return "must be one of: " + fe.Param()
	default:
		return "failed validation: " + fe.Tag()
	}
}

func mapQuoteError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidServiceKey):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrServiceNotFound):
		return pkg.NewDomainErrorSimple("SERVICE_NOT_FOUND", "Service not found", http.StatusNotFound)
	case errors.Is(err, pricing.ErrBelowMinimumQuantity):
		return pkg.NewDomainErrorSimple("BELOW_MINIMUM_QUANTITY", err.Error(), http.StatusBadRequest)
	case errors.Is(err, interfaces.ErrStoreUnavailable):
		return pkg.NewDomainError("STORE_UNAVAILABLE", "Document store unavailable", err, http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
