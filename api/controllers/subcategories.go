package controllers

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/craftroots/craftroots-backend/api/responses"
	"github.com/craftroots/craftroots-backend/api/validators"
	"github.com/craftroots/craftroots-backend/internal/catalog"
	pkgerrors "github.com/craftroots/craftroots-backend/pkg/errors"
	"github.com/craftroots/craftroots-backend/pkg/logger"
)

// ListSubcategories serves all subcategories, optionally scoped to one parent
// category via the `category` query parameter.
func ListSubcategories(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		parentID, err := parseOptionalUUIDQuery(r, "category")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		subcategories, err := svc.ListSubcategories(r.Context(), parentID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, subcategories)
	}
}

func CreateSubcategory(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload createSubcategoryRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		parentID, err := uuid.Parse(payload.ParentCategoryID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid parent category id"))
			return
		}
		subcategory, err := svc.CreateSubcategory(r.Context(), catalog.CreateSubcategoryInput{
			Name:             payload.Name,
			ParentCategoryID: parentID,
			ImageURL:         payload.ImageURL,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, subcategory)
	}
}

func UpdateSubcategory(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.URLParamUUID(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		var payload updateSubcategoryRequest
		if err := validators.DecodeJSONBodyLenient(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		input := catalog.UpdateSubcategoryInput{
			Name:     payload.Name,
			ImageURL: payload.ImageURL,
		}
		if payload.ParentCategoryID != nil {
			parentID, err := uuid.Parse(*payload.ParentCategoryID)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid parent category id"))
				return
			}
			input.ParentCategoryID = &parentID
		}

		subcategory, err := svc.UpdateSubcategory(r.Context(), id, input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, subcategory)
	}
}

func DeleteSubcategory(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.URLParamUUID(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if err := svc.DeleteSubcategory(r.Context(), id); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]string{"id": id.String()})
	}
}

type createSubcategoryRequest struct {
	Name             string `json:"name" validate:"required,min=2"`
	ParentCategoryID string `json:"parentCategoryId" validate:"required,uuid"`
	ImageURL         string `json:"imageUrl" validate:"omitempty,url"`
}

type updateSubcategoryRequest struct {
	Name             *string `json:"name,omitempty" validate:"omitempty,min=2"`
	ParentCategoryID *string `json:"parentCategoryId,omitempty" validate:"omitempty,uuid"`
	ImageURL         *string `json:"imageUrl,omitempty" validate:"omitempty,url"`
}
