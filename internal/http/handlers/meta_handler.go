package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/influencer-marketplace/backend/internal/http/dto"
	"github.com/influencer-marketplace/backend/internal/models"
)

type MetaHandler struct{}

func NewMetaHandler() *MetaHandler {
	return &MetaHandler{}
}

type MetaCategory struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

var predefinedCategories = []MetaCategory{
	{ID: "beauty", Label: "Beauty & Cosmetics"},
	{ID: "fashion", Label: "Fashion"},
	{ID: "fitness", Label: "Health & Fitness"},
	{ID: "food", Label: "Food & Cooking"},
	{ID: "travel", Label: "Travel"},
	{ID: "tech", Label: "Technology"},
	{ID: "gaming", Label: "Gaming"},
	{ID: "lifestyle", Label: "Lifestyle"},
	{ID: "parenting", Label: "Parenting & Family"},
	{ID: "finance", Label: "Finance"},
	{ID: "education", Label: "Education"},
	{ID: "entertainment", Label: "Entertainment"},
	{ID: "music", Label: "Music"},
	{ID: "art", Label: "Art & Design"},
	{ID: "sports", Label: "Sports"},
	{ID: "pets", Label: "Pets"},
	{ID: "home", Label: "Home & DIY"},
	{ID: "other", Label: "Other"},
}

func (h *MetaHandler) GetCategories(c *fiber.Ctx) error {
	return c.JSON(dto.SuccessResponse{OK: true, Data: predefinedCategories})
}

func (h *MetaHandler) GetContentTypes(c *fiber.Ctx) error {
	return c.JSON(dto.SuccessResponse{OK: true, Data: models.AllContentTypes})
}
