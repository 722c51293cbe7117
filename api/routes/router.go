package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/craftroots/craftroots-backend/api/controllers"
	"github.com/craftroots/craftroots-backend/api/middleware"
	"github.com/craftroots/craftroots-backend/internal/admin"
	"github.com/craftroots/craftroots-backend/internal/banners"
	"github.com/craftroots/craftroots-backend/internal/blogs"
	"github.com/craftroots/craftroots-backend/internal/catalog"
	"github.com/craftroots/craftroots-backend/internal/inquiries"
	"github.com/craftroots/craftroots-backend/internal/reels"
	"github.com/craftroots/craftroots-backend/internal/workshops"
	"github.com/craftroots/craftroots-backend/pkg/config"
	"github.com/craftroots/craftroots-backend/pkg/logger"
	"github.com/craftroots/craftroots-backend/pkg/redis"
)

// Services bundles everything the router mounts.
type Services struct {
	Admin     admin.Service
	Catalog   catalog.Service
	Inquiries inquiries.Service
	Blogs     blogs.Service
	Banners   banners.Service
	Reels     reels.Service
	Workshops workshops.Service
}

// Deps carries the non-service dependencies the router needs.
type Deps struct {
	Readiness map[string]controllers.Pinger
	Redis     *redis.Client
	Metrics   http.Handler
}

func NewRouter(cfg *config.Config, logg *logger.Logger, svcs Services, deps Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(),
	)

	inquiryPolicy := middleware.NewRateLimitPolicy(
		"inquiry",
		cfg.RateLimit.InquiryWindow,
		cfg.RateLimit.InquiryIPLimit,
		cfg.RateLimit.InquiryPhoneLimit,
	)
	loginPolicy := middleware.NewRateLimitPolicy(
		"login",
		cfg.RateLimit.LoginWindow,
		cfg.RateLimit.LoginIPLimit,
		0,
	)

	// a nil *redis.Client must stay a nil interface or the middleware's
	// disabled check never fires
	var limiterStore middleware.RateLimiterStore
	if deps.Redis != nil {
		limiterStore = deps.Redis
	}

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, deps.Readiness))
	})

	metricsHandler := deps.Metrics
	if metricsHandler == nil {
		metricsHandler = promhttp.Handler()
	}
	r.Method(http.MethodGet, "/metrics", metricsHandler)

	r.Route("/api", func(r chi.Router) {
		r.Get("/ping", controllers.PublicPing())

		r.Get("/products", controllers.ListProducts(svcs.Catalog, logg))
		r.Get("/products/{id}", controllers.GetProduct(svcs.Catalog, logg))
		r.Get("/categories", controllers.ListCategories(svcs.Catalog, logg))
		r.Get("/subcategories", controllers.ListSubcategories(svcs.Catalog, logg))

		r.Get("/blogs", controllers.ListPublishedBlogs(svcs.Blogs, logg))
		r.Get("/blogs/slug/{slug}", controllers.GetBlogBySlug(svcs.Blogs, logg))

		r.Get("/banners", controllers.ListActiveBanners(svcs.Banners, logg))
		r.Get("/reels", controllers.ListActiveReels(svcs.Reels, logg))

		r.Get("/workshops", controllers.ListWorkshops(svcs.Workshops, logg))
		r.Get("/workshops/{id}", controllers.GetWorkshop(svcs.Workshops, logg))
		r.Post("/workshop-registrations", controllers.CreateRegistration(svcs.Workshops, logg))

		r.With(middleware.RateLimit(inquiryPolicy, limiterStore, logg)).
			Post("/inquiries", controllers.CreateInquiry(svcs.Inquiries, logg))

		r.With(middleware.RateLimit(loginPolicy, limiterStore, logg)).
			Post("/admin/login", controllers.AdminLogin(svcs.Admin, logg))

		r.Route("/admin", func(r chi.Router) {
			r.Use(middleware.AdminAuth(cfg.JWT, logg))

			r.Get("/ping", controllers.AdminPing())

			r.Post("/products", controllers.CreateProduct(svcs.Catalog, logg))
			r.Put("/products/{id}", controllers.UpdateProduct(svcs.Catalog, logg))
			r.Delete("/products/{id}", controllers.DeleteProduct(svcs.Catalog, logg))

			r.Post("/categories", controllers.CreateCategory(svcs.Catalog, logg))
			r.Put("/categories/{id}", controllers.UpdateCategory(svcs.Catalog, logg))
			r.Delete("/categories/{id}", controllers.DeleteCategory(svcs.Catalog, logg))

			r.Post("/subcategories", controllers.CreateSubcategory(svcs.Catalog, logg))
			r.Put("/subcategories/{id}", controllers.UpdateSubcategory(svcs.Catalog, logg))
			r.Delete("/subcategories/{id}", controllers.DeleteSubcategory(svcs.Catalog, logg))

			r.Get("/inquiries", controllers.ListInquiries(svcs.Inquiries, logg))
			r.Get("/inquiries/{id}", controllers.GetInquiry(svcs.Inquiries, logg))
			r.Put("/inquiries/{id}", controllers.UpdateInquiry(svcs.Inquiries, logg))
			r.Delete("/inquiries/{id}", controllers.DeleteInquiry(svcs.Inquiries, logg))

			r.Get("/blogs", controllers.ListBlogs(svcs.Blogs, logg))
			r.Get("/blogs/{id}", controllers.GetBlog(svcs.Blogs, logg))
			r.Post("/blogs", controllers.CreateBlog(svcs.Blogs, logg))
			r.Put("/blogs/{id}", controllers.UpdateBlog(svcs.Blogs, logg))
			r.Delete("/blogs/{id}", controllers.DeleteBlog(svcs.Blogs, logg))

			r.Get("/banners", controllers.ListBanners(svcs.Banners, logg))
			r.Post("/banners", controllers.CreateBanner(svcs.Banners, logg))
			r.Put("/banners/{id}", controllers.UpdateBanner(svcs.Banners, logg))
			r.Delete("/banners/{id}", controllers.DeleteBanner(svcs.Banners, logg))

			r.Get("/reels", controllers.ListReels(svcs.Reels, logg))
			r.Post("/reels", controllers.CreateReel(svcs.Reels, logg))
			r.Put("/reels/{id}", controllers.UpdateReel(svcs.Reels, logg))
			r.Delete("/reels/{id}", controllers.DeleteReel(svcs.Reels, logg))

			r.Post("/workshops", controllers.CreateWorkshop(svcs.Workshops, logg))
			r.Put("/workshops/{id}", controllers.UpdateWorkshop(svcs.Workshops, logg))
			r.Delete("/workshops/{id}", controllers.DeleteWorkshop(svcs.Workshops, logg))

			r.Get("/workshop-registrations", controllers.ListRegistrations(svcs.Workshops, logg))
			r.Get("/workshop-registrations/{id}", controllers.GetRegistration(svcs.Workshops, logg))
			r.Put("/workshop-registrations/{id}", controllers.UpdateRegistration(svcs.Workshops, logg))
			r.Delete("/workshop-registrations/{id}", controllers.DeleteRegistration(svcs.Workshops, logg))
		})
	})

	return r
}
