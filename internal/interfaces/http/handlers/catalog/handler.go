package catalog

import (
	"github.com/gin-gonic/gin"

	"deskline/internal/application/catalog/usecases"
	"deskline/internal/shared/utils"
)

type Handler struct {
	listItemsUC usecases.ListItemsExecutor
}

func NewHandler(listItemsUC usecases.ListItemsExecutor) *Handler {
	return &Handler{
		listItemsUC: listItemsUC,
	}
}

// ListItems handles GET /items. The catalog is filtered and paginated on
// the client, so the endpoint returns the whole collection.
func (h *Handler) ListItems(c *gin.Context) {
	result, err := h.listItemsUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result.Items)
}
