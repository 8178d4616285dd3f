package handler

import (
	"localpay-gateway/internal/core/ports"
	"localpay-gateway/pkg/response"

	"github.com/gin-gonic/gin"
)

// ChainHandler passes read-only chain service queries through.
type ChainHandler struct {
	chain ports.ChainClient
}

func NewChainHandler(chain ports.ChainClient) *ChainHandler {
	return &ChainHandler{chain: chain}
}

// WalletInfo handles GET /api/v1/chain/wallet-info.
func (h *ChainHandler) WalletInfo(c *gin.Context) {
	info, err := h.chain.WalletInfo(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, info)
}

// CollectionInfo handles GET /api/v1/chain/collection-info.
func (h *ChainHandler) CollectionInfo(c *gin.Context) {
	info, err := h.chain.CollectionInfo(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, info)
}
