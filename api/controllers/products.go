package controllers

import (
	"net/http"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/craftroots/craftroots-backend/api/responses"
	"github.com/craftroots/craftroots-backend/api/validators"
	"github.com/craftroots/craftroots-backend/internal/catalog"
	"github.com/craftroots/craftroots-backend/pkg/enums"
	pkgerrors "github.com/craftroots/craftroots-backend/pkg/errors"
	"github.com/craftroots/craftroots-backend/pkg/logger"
	"github.com/google/uuid"
)

// ListProducts serves the public catalog listing with category, subcategory
// and search filters.
func ListProducts(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, err := parsePageParams(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		categoryID, err := parseOptionalUUIDQuery(r, "category")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		subcategoryID, err := parseOptionalUUIDQuery(r, "subcategory")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		filter := catalog.ProductFilter{
			CategoryID:    categoryID,
			SubcategoryID: subcategoryID,
			Search:        validators.SanitizeString(r.URL.Query().Get("search"), 120),
		}
		products, total, err := svc.ListProducts(r.Context(), filter, page)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteList(w, products, page.Summary(total))
	}
}

func GetProduct(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.URLParamUUID(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		product, err := svc.GetProduct(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, product)
	}
}

func CreateProduct(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload createProductRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		input, err := payload.toCreateInput()
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		product, err := svc.CreateProduct(r.Context(), input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, product)
	}
}

func UpdateProduct(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.URLParamUUID(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		var payload updateProductRequest
		if err := validators.DecodeJSONBodyLenient(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		input, err := payload.toUpdateInput()
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		product, err := svc.UpdateProduct(r.Context(), id, input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, product)
	}
}

func DeleteProduct(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.URLParamUUID(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if err := svc.DeleteProduct(r.Context(), id); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]string{"id": id.String()})
	}
}

type productOptionRequest struct {
	Color     string           `json:"color" validate:"required"`
	ColorCode string           `json:"colorCode"`
	Quantity  int              `json:"quantity" validate:"min=0"`
	Price     *decimal.Decimal `json:"price,omitempty"`
	ImageURLs []string         `json:"imageUrls,omitempty"`
}

type createProductRequest struct {
	Name            string                 `json:"name" validate:"required,min=2"`
	CategoryID      string                 `json:"categoryId" validate:"required,uuid"`
	SubcategoryID   string                 `json:"subcategoryId" validate:"required,uuid"`
	Description     string                 `json:"description" validate:"required"`
	FullDescription string                 `json:"fullDescription"`
	Price           decimal.Decimal        `json:"price"`
	ImageURL        string                 `json:"imageUrl" validate:"required,url"`
	Images          []string               `json:"images,omitempty"`
	BaseQuantity    int                    `json:"baseQuantity" validate:"min=0"`
	BaseColor       *string                `json:"baseColor,omitempty"`
	Unit            string                 `json:"unit"`
	Material        string                 `json:"material"`
	Style           string                 `json:"style"`
	Length          string                 `json:"length"`
	BlousePiece     string                 `json:"blousePiece"`
	DesignNo        string                 `json:"designNo"`
	Options         []productOptionRequest `json:"options,omitempty"`
}

type updateProductRequest struct {
	Name            *string                 `json:"name,omitempty" validate:"omitempty,min=2"`
	CategoryID      *string                 `json:"categoryId,omitempty" validate:"omitempty,uuid"`
	SubcategoryID   *string                 `json:"subcategoryId,omitempty" validate:"omitempty,uuid"`
	Description     *string                 `json:"description,omitempty"`
	FullDescription *string                 `json:"fullDescription,omitempty"`
	Price           *decimal.Decimal        `json:"price,omitempty"`
	ImageURL        *string                 `json:"imageUrl,omitempty" validate:"omitempty,url"`
	Images          *[]string               `json:"images,omitempty"`
	BaseQuantity    *int                    `json:"baseQuantity,omitempty" validate:"omitempty,min=0"`
	BaseColor       *string                 `json:"baseColor,omitempty"`
	Unit            *string                 `json:"unit,omitempty"`
	Material        *string                 `json:"material,omitempty"`
	Style           *string                 `json:"style,omitempty"`
	Length          *string                 `json:"length,omitempty"`
	BlousePiece     *string                 `json:"blousePiece,omitempty"`
	DesignNo        *string                 `json:"designNo,omitempty"`
	Options         *[]productOptionRequest `json:"options,omitempty"`
}

func (r createProductRequest) toCreateInput() (catalog.CreateProductInput, error) {
	categoryID, err := uuid.Parse(r.CategoryID)
	if err != nil {
		return catalog.CreateProductInput{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid category id")
	}
	subcategoryID, err := uuid.Parse(r.SubcategoryID)
	if err != nil {
		return catalog.CreateProductInput{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid subcategory id")
	}

	unit := enums.ProductUnitPiece
	if trimmed := strings.TrimSpace(r.Unit); trimmed != "" {
		parsed, err := enums.ParseProductUnit(trimmed)
		if err != nil {
			return catalog.CreateProductInput{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid unit")
		}
		unit = parsed
	}

	return catalog.CreateProductInput{
		Name:            strings.TrimSpace(r.Name),
		CategoryID:      categoryID,
		SubcategoryID:   subcategoryID,
		Description:     r.Description,
		FullDescription: r.FullDescription,
		Price:           r.Price,
		ImageURL:        r.ImageURL,
		Images:          r.Images,
		BaseQuantity:    r.BaseQuantity,
		BaseColor:       r.BaseColor,
		Unit:            unit,
		Material:        r.Material,
		Style:           r.Style,
		Length:          r.Length,
		BlousePiece:     r.BlousePiece,
		DesignNo:        r.DesignNo,
		Options:         toOptionInputs(r.Options),
	}, nil
}

func (r updateProductRequest) toUpdateInput() (catalog.UpdateProductInput, error) {
	input := catalog.UpdateProductInput{
		Name:            r.Name,
		Description:     r.Description,
		FullDescription: r.FullDescription,
		Price:           r.Price,
		ImageURL:        r.ImageURL,
		Images:          r.Images,
		BaseQuantity:    r.BaseQuantity,
		BaseColor:       r.BaseColor,
		Material:        r.Material,
		Style:           r.Style,
		Length:          r.Length,
		BlousePiece:     r.BlousePiece,
		DesignNo:        r.DesignNo,
	}

	if r.CategoryID != nil {
		id, err := uuid.Parse(*r.CategoryID)
		if err != nil {
			return catalog.UpdateProductInput{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid category id")
		}
		input.CategoryID = &id
	}
	if r.SubcategoryID != nil {
		id, err := uuid.Parse(*r.SubcategoryID)
		if err != nil {
			return catalog.UpdateProductInput{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid subcategory id")
		}
		input.SubcategoryID = &id
	}
	if r.Unit != nil {
		unit, err := enums.ParseProductUnit(strings.TrimSpace(*r.Unit))
		if err != nil {
			return catalog.UpdateProductInput{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid unit")
		}
		input.Unit = &unit
	}
	if r.Options != nil {
		options := toOptionInputs(*r.Options)
		input.Options = &options
	}
	return input, nil
}

func toOptionInputs(requests []productOptionRequest) []catalog.ProductOptionInput {
	options := make([]catalog.ProductOptionInput, 0, len(requests))
	for _, opt := range requests {
		options = append(options, catalog.ProductOptionInput{
			Color:     strings.TrimSpace(opt.Color),
			ColorCode: opt.ColorCode,
			Quantity:  opt.Quantity,
			Price:     opt.Price,
			ImageURLs: opt.ImageURLs,
		})
	}
	return options
}
