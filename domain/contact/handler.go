package contact

import (
	"burokrat-site/components"
	"burokrat-site/domain/content"
	"burokrat-site/pkg/apperrors"
	"burokrat-site/pkg/logger"
	"burokrat-site/pkg/view"

	"github.com/labstack/echo/v4"
)

// Records supplies the contact record the form is configured by.
type Records interface {
	Contact() (*content.Contact, error)
}

type Handler struct {
	service *Service
	records Records
}

func NewHandler(service *Service, records Records) *Handler {
	return &Handler{service: service, records: records}
}

// SubmitHandler handles POST /contact/submit. Every outcome a visitor can
// cause is answered with a 200 fragment so htmx swaps it into the status slot.
func (h *Handler) SubmitHandler(c echo.Context) error {
	log := logger.FromContext(c.Request().Context()).WithComponent("contact_submit")

	rec, err := h.records.Contact()
	if err != nil {
		return err
	}

	var f Form
	if err := c.Bind(&f); err != nil {
		return apperrors.NewBadRequest(apperrors.ErrCodeInvalidInput, "Invalid form body")
	}

	out, err := h.service.Submit(c.Request().Context(), f, RulesFor(rec))
	if err != nil {
		if appErr, ok := apperrors.AsAppError(err); ok && appErr.Code == apperrors.ErrCodeValidationFailed {
			log.Info("Contact form rejected", logger.Count(len(appErr.Fields)))
			return view.Fragment(c, components.ContactErrors(appErr.Fields))
		}
		return err
	}

	if out.State == StateDeliveryFailed {
		return view.Fragment(c, components.ContactFailure(rec.Errors.Delivery))
	}
	return view.Fragment(c, components.ContactSuccess(rec.Success.Title, rec.Success.MessageTemplate, out.Submission.Name))
}

// RateLimitedHandler answers a throttled submission.
func RateLimitedHandler(c echo.Context) error {
	return view.Fragment(c, components.RateLimited())
}
