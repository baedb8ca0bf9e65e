package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/portfolio-dev/portfolio/internal/config"
	"github.com/portfolio-dev/portfolio/internal/handlers"
	"github.com/portfolio-dev/portfolio/internal/middleware"
	"github.com/portfolio-dev/portfolio/internal/store"
)

func NewRouter(cfg *config.Config, st *store.Stores) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Origins(),
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	guard := middleware.NewAuth(st.Users)
	admin := []gin.HandlerFunc{guard.RequireAuth(), guard.RequireAdmin()}

	authHandler := &handlers.AuthHandler{Users: st.Users, CookieDomain: cfg.CookieDomain}
	usersHandler := &handlers.UsersHandler{Store: st.Users, CookieDomain: cfg.CookieDomain}
	infoHandler := &handlers.PortfolioInfoHandler{Repo: st.Infos}

	projects := handlers.NewProjectResource(st.Projects)
	services := handlers.NewServiceResource(st.Services)
	educations := handlers.NewEducationResource(st.Educations)
	contacts := handlers.NewContactResource(st.Contacts)
	infos := handlers.NewPortfolioInfoResource(st.Infos)

	r.GET("/", handlers.Welcome)

	auth := r.Group("/auth")
	{
		auth.POST("/signin", authHandler.Signin)
		auth.GET("/signout", authHandler.Signout)
	}

	api := r.Group("/api")
	{
		api.GET("/health", handlers.HealthCheck)

		// Publicly readable, admin-writable collections.
		mountPublicResource(api, "/projects", projects, admin)
		mountPublicResource(api, "/services", services, admin)
		mountPublicResource(api, "/qualifications", educations, admin)

		// Leads: anyone may submit, only admins may read or manage.
		leads := api.Group("/contacts")
		{
			leads.POST("", contacts.Create)
			leads.GET("", chain(admin, contacts.List)...)
			leads.DELETE("", chain(admin, contacts.RemoveAll)...)
			leads.GET("/:id", chain(admin, contacts.Read)...)
			leads.PUT("/:id", chain(admin, contacts.Update)...)
			leads.DELETE("/:id", chain(admin, contacts.Remove)...)
		}

		info := api.Group("/portfolioinfo")
		{
			info.GET("", infoHandler.GetSingle)
			info.PUT("", chain(admin, infoHandler.Upsert)...)
			info.GET("/:id", chain(admin, infos.Read)...)
			info.PUT("/:id", chain(admin, infos.Update)...)
			info.DELETE("/:id", chain(admin, infos.Remove)...)
		}

		users := api.Group("/users")
		{
			users.POST("", usersHandler.Signup)
			users.GET("", chain(admin, usersHandler.List)...)
			users.DELETE("", chain(admin, usersHandler.RemoveAll)...)
			users.GET("/:id", guard.RequireAuth(), usersHandler.Read)
			users.PUT("/:id", guard.RequireAuth(), guard.RequireSelfOrAdmin(), usersHandler.Update)
			users.DELETE("/:id", guard.RequireAuth(), guard.RequireSelfOrAdmin(), usersHandler.Remove)
		}
	}

	return r
}

// mountPublicResource wires the uniform verb set for a collection whose
// reads are public and whose writes are admin-only.
func mountPublicResource[M, P any](api *gin.RouterGroup, path string, res *handlers.Resource[M, P], admin []gin.HandlerFunc) {
	g := api.Group(path)

	g.GET("", res.List)
	g.GET("/:id", res.Read)
	g.POST("", chain(admin, res.Create)...)
	g.DELETE("", chain(admin, res.RemoveAll)...)
	g.PUT("/:id", chain(admin, res.Update)...)
	g.DELETE("/:id", chain(admin, res.Remove)...)
}

func chain(guards []gin.HandlerFunc, handler gin.HandlerFunc) []gin.HandlerFunc {
	out := make([]gin.HandlerFunc, 0, len(guards)+1)
	out = append(out, guards...)
	out = append(out, handler)

	return out
}
