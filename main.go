package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/hopscotch/backend/internal/client"
	"github.com/hopscotch/backend/internal/config"
	"github.com/hopscotch/backend/internal/db"
	"github.com/hopscotch/backend/internal/docx"
	"github.com/hopscotch/backend/internal/handler"
	"github.com/hopscotch/backend/internal/model"
	"github.com/hopscotch/backend/internal/service"
)

// @title Hopscotch Safety AI Backend
// @version 1.0
// @description Incident analysis, evidence review and risk assessment generation for care settings.
// @BasePath /
func main() {
	// .env는 로컬 개발용. 없어도 무시
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()

	// 생성 클라이언트는 필수. 키가 없으면 기동 자체를 막는다
	aiClient, err := client.NewGenAIClient(cfg.AI)
	if err != nil {
		log.Fatalf("Failed to create AI client: %v", err)
	}

	// 참고 문서 저장소는 선택 사항. 연결 실패 시 context 조회 없이 기동
	var contextService *service.ContextService
	poolCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	pool, err := db.NewPostgresPool(poolCtx, cfg.Postgres)
	cancel()
	if err != nil {
		log.Printf("Postgres unavailable, continuing without reference context: %v", err)
	} else {
		store := db.NewPostgres(pool)
		timeout := time.Duration(cfg.Context.TimeoutMS) * time.Millisecond
		contextService = service.NewContextService(store, aiClient, timeout)
	}

	incidentService := service.NewIncidentService(aiClient)
	witnessService := service.NewWitnessService(aiClient)
	evidenceService := service.NewEvidenceService(aiClient)
	assessmentService := service.NewAssessmentService(aiClient, contextService)
	documentService := service.NewDocumentService(docx.NewAssembler(cfg.Template.Path))

	incidentHandler := handler.NewIncidentHandler(incidentService)
	witnessHandler := handler.NewWitnessHandler(witnessService)
	evidenceHandler := handler.NewEvidenceHandler(evidenceService)
	assessmentHandler := handler.NewAssessmentHandler(assessmentService)
	documentHandler := handler.NewDocumentHandler(documentService)

	router := gin.Default()
	router.HandleMethodNotAllowed = true
	router.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, model.ErrorResponse{Error: "method not allowed"})
	})
	router.Use(handler.CORSMiddleware(cfg.Server.AllowedOrigins))

	router.GET("/ping", handler.Ping)
	router.GET("/", handler.Root)
	router.GET("/openapi.json", handler.OpenAPIDoc)

	v1 := router.Group("/api/v1")
	{
		v1.POST("/incidents/analyze", incidentHandler.Analyze)
		v1.POST("/witness-statements/analyze", witnessHandler.Analyze)
		v1.POST("/evidence/review", evidenceHandler.Review)
		v1.POST("/assessments/brainstorm", assessmentHandler.Brainstorm)
		v1.POST("/assessments/generate", assessmentHandler.Generate)
		v1.POST("/assessments/document", documentHandler.Generate)
	}

	if err := router.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
