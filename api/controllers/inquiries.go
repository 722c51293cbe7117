package controllers

import (
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/craftroots/craftroots-backend/api/responses"
	"github.com/craftroots/craftroots-backend/api/validators"
	"github.com/craftroots/craftroots-backend/internal/inquiries"
	"github.com/craftroots/craftroots-backend/pkg/enums"
	pkgerrors "github.com/craftroots/craftroots-backend/pkg/errors"
	"github.com/craftroots/craftroots-backend/pkg/logger"
)

// CreateInquiry handles the public product inquiry form.
func CreateInquiry(svc inquiries.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload createInquiryRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		input, err := payload.toInput()
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		inquiry, err := svc.Create(r.Context(), input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, inquiry)
	}
}

// ListInquiries serves the admin inquiry dashboard with status and product
// filters.
func ListInquiries(svc inquiries.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, err := parsePageParams(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		filter := inquiries.Filter{}
		if raw := strings.TrimSpace(r.URL.Query().Get("status")); raw != "" {
			status, err := enums.ParseInquiryStatus(raw)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid status filter"))
				return
			}
			filter.Status = &status
		}
		productID, err := parseOptionalUUIDQuery(r, "product")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		filter.ProductID = productID

		items, total, err := svc.List(r.Context(), filter, page)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteList(w, items, page.Summary(total))
	}
}

func GetInquiry(svc inquiries.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.URLParamUUID(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		inquiry, err := svc.Get(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, inquiry)
	}
}

// UpdateInquiry applies the admin mutation set. The request body is decoded
// leniently: fields outside {status, adminNotes} are dropped before they can
// reach storage. Marking an inquiry Completed runs the stock deduction.
func UpdateInquiry(svc inquiries.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.URLParamUUID(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		var payload updateInquiryRequest
		if err := validators.DecodeJSONBodyLenient(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		input := inquiries.UpdateInquiryInput{AdminNotes: payload.AdminNotes}
		if payload.Status != nil {
			status, err := enums.ParseInquiryStatus(*payload.Status)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid status"))
				return
			}
			input.Status = &status
		}

		inquiry, err := svc.Update(r.Context(), id, input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, inquiry)
	}
}

func DeleteInquiry(svc inquiries.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.URLParamUUID(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if err := svc.Delete(r.Context(), id); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]string{"id": id.String()})
	}
}

type createInquiryRequest struct {
	FullName    string  `json:"fullName" validate:"required,min=2"`
	PhoneNumber string  `json:"phoneNumber" validate:"required,min=10"`
	BuyOption   string  `json:"buyOption" validate:"required"`
	CompanyName *string `json:"companyName,omitempty"`
	Location    string  `json:"location" validate:"required"`
	Quantity    int     `json:"quantity" validate:"required,min=1"`
	ProductID   string  `json:"productId" validate:"required,uuid"`
	Variant     string  `json:"variant"`
	Message     string  `json:"message"`
}

type updateInquiryRequest struct {
	Status     *string `json:"status,omitempty"`
	AdminNotes *string `json:"adminNotes,omitempty"`
}

func (r createInquiryRequest) toInput() (inquiries.CreateInquiryInput, error) {
	buyOption, err := enums.ParseBuyOption(strings.TrimSpace(r.BuyOption))
	if err != nil {
		return inquiries.CreateInquiryInput{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid buy option")
	}
	productID, err := uuid.Parse(r.ProductID)
	if err != nil {
		return inquiries.CreateInquiryInput{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid product id")
	}
	return inquiries.CreateInquiryInput{
		FullName:    validators.SanitizeString(r.FullName, 120),
		PhoneNumber: strings.TrimSpace(r.PhoneNumber),
		BuyOption:   buyOption,
		CompanyName: r.CompanyName,
		Location:    validators.SanitizeString(r.Location, 200),
		Quantity:    r.Quantity,
		ProductID:   productID,
		Variant:     strings.TrimSpace(r.Variant),
		Message:     validators.SanitizeString(r.Message, 2000),
	}, nil
}
