package controller

import (
	"zaman-assistant-be/internal/constant"
	"zaman-assistant-be/internal/dto"
	"zaman-assistant-be/internal/pkg/serverutils"
	"zaman-assistant-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type IAssistantController interface {
	RegisterRoutes(r fiber.Router)
	Chat(ctx *fiber.Ctx) error
	Analyze(ctx *fiber.Ctx) error
	IngestKnowledge(ctx *fiber.Ctx) error
	Health(ctx *fiber.Ctx) error
}

type assistantController struct {
	assistantService service.IAssistantService
	analysisService  service.IAnalysisService
	publisherService service.IPublisherService
	db               *gorm.DB // may be nil in degraded mode
}

func NewAssistantController(
	assistantService service.IAssistantService,
	analysisService service.IAnalysisService,
	publisherService service.IPublisherService,
	db *gorm.DB,
) IAssistantController {
	return &assistantController{
		assistantService: assistantService,
		analysisService:  analysisService,
		publisherService: publisherService,
		db:               db,
	}
}

func (c *assistantController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/assistant/v1")
	h.Post("chat", c.Chat)
	h.Post("analyze", c.Analyze)
	h.Post("knowledge", c.IngestKnowledge)
	h.Get("health", c.Health)
}

func (c *assistantController) Chat(ctx *fiber.Ctx) error {
	var req dto.ChatRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	// Respond never fails; degraded replies are still replies.
	reply := c.assistantService.Respond(ctx.Context(), req.SessionId, req.Message)

	return ctx.JSON(serverutils.SuccessResponse("Success chat", dto.ChatResponse{
		Role:    constant.ChatRoleAssistant,
		Content: reply,
	}))
}

func (c *assistantController) Analyze(ctx *fiber.Ctx) error {
	var req dto.AnalyzeRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res := c.analysisService.Analyze(ctx.Context(), req.SessionId)
	return ctx.JSON(serverutils.SuccessResponse("Success analyze", res))
}

func (c *assistantController) IngestKnowledge(ctx *fiber.Ctx) error {
	var req dto.IngestKnowledgeRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.publisherService.PublishKnowledgeDocument(dto.PublishKnowledgeMessage{
		Content:  req.Content,
		Metadata: req.Metadata,
	}); err != nil {
		return err
	}

	return ctx.Status(fiber.StatusAccepted).
		JSON(serverutils.SuccessResponse("Knowledge document queued", nil))
}

func (c *assistantController) Health(ctx *fiber.Ctx) error {
	dbStatus := "unavailable"
	if c.db != nil {
		if sqlDB, err := c.db.DB(); err == nil && sqlDB.Ping() == nil {
			dbStatus = "ok"
		}
	}

	return ctx.JSON(serverutils.SuccessResponse("ok", fiber.Map{
		"database": dbStatus,
	}))
}
