package handler

import (
	"context"
	"mime/multipart"

	"patientedu/internal/app/catalog"
	"patientedu/internal/app/config"
	"patientedu/internal/app/middleware"
	"patientedu/internal/app/pkg/auth"
	"patientedu/internal/app/repository"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// ObjectStorage — минимальный контракт хранилища загрузок.
type ObjectStorage interface {
	UploadFile(ctx context.Context, fileHeader *multipart.FileHeader, prefix string) (key string, publicURL string, err error)
	DeleteFile(ctx context.Context, key string) error
	PublicURL(key string) string
}

type Handler struct {
	Repository     *repository.Repository
	Config         *config.Config
	Storage        ObjectStorage
	Catalog        *catalog.Service
	JWTService     *auth.JWTService
	SessionService *auth.SessionService
}

func NewHandler(r *repository.Repository, cfg *config.Config, st ObjectStorage, cat *catalog.Service, jwtSvc *auth.JWTService, sessSvc *auth.SessionService) *Handler {
	return &Handler{
		Repository:     r,
		Config:         cfg,
		Storage:        st,
		Catalog:        cat,
		JWTService:     jwtSvc,
		SessionService: sessSvc,
	}
}

// RegisterHandler Функция, в которой мы отдельно регистрируем маршруты
func (h *Handler) RegisterHandler(router *gin.Engine) {
	authSvc := &middleware.AuthService{JWT: h.JWTService, Session: h.SessionService}

	api := router.Group("/api")

	// публичное чтение
	api.GET("/sections", h.ApiListSections)
	api.GET("/sections/:id/diseases", h.ApiFilterSectionDiseases)
	api.GET("/diseases", h.ApiListDiseases)
	api.GET("/diseases/:id", h.ApiGetDisease)
	api.GET("/diseases/:id/export", h.ApiExportDiseaseWord)
	api.GET("/files", h.ApiListFiles)
	api.GET("/banners", h.ApiListBanners)
	api.GET("/topics", h.ApiListTopics)
	api.GET("/tree", h.ApiGetTree)
	api.GET("/search", h.ApiSearch)

	// аутентификация
	api.POST("/users/register", h.ApiRegisterUser)
	api.POST("/users/login", h.ApiLogin)
	api.POST("/users/logout", h.ApiLogout)
	api.GET("/users/check", middleware.OptionalAuthMiddleware(authSvc), h.ApiCheckAuth)
	profile := api.Group("/users", middleware.AuthMiddleware(authSvc))
	profile.GET("/profile", h.ApiGetProfile)
	profile.PUT("/profile", h.ApiUpdateProfile)

	// мутации контента — только модераторы
	admin := api.Group("", middleware.AuthMiddleware(authSvc), middleware.RequireModeratorMiddleware())
	admin.POST("/sections", h.ApiCreateSection)
	admin.PUT("/sections/:id", h.ApiUpdateSection)
	admin.DELETE("/sections/:id", h.ApiDeleteSection)
	admin.POST("/diseases", h.ApiCreateDisease)
	admin.PUT("/diseases/:id", h.ApiUpdateDisease)
	admin.DELETE("/diseases/:id", h.ApiDeleteDisease)
	admin.POST("/files", h.ApiCreateFile)
	admin.DELETE("/files/:id", h.ApiDeleteFile)
	admin.POST("/banners", h.ApiCreateBanner)
	admin.PUT("/banners/:id", h.ApiUpdateBanner)
	admin.DELETE("/banners/:id", h.ApiDeleteBanner)
	admin.POST("/topics", h.ApiCreateTopic)
	admin.PUT("/topics/:id", h.ApiUpdateTopic)
	admin.DELETE("/topics/:id", h.ApiDeleteTopic)
	admin.GET("/catalog/export", h.ApiExportCatalogExcel)
}

// errorHandler для более удобного вывода ошибок
func (h *Handler) errorHandler(ctx *gin.Context, errorStatusCode int, err error) {
	logrus.Error(err.Error())
	ctx.JSON(errorStatusCode, gin.H{
		"error": err.Error(),
	})
}

// refreshCatalog пересобирает дерево после мутации. Мутация уже в БД,
// поэтому неудача перестройки не отменяет ответ — только пишется в лог,
// прежний снимок остаётся до следующего успешного Refresh.
func (h *Handler) refreshCatalog() {
	if err := h.Catalog.Refresh(); err != nil {
		logrus.WithError(err).Warn("catalog refresh failed, keeping previous tree")
	}
}
