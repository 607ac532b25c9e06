package handlers

import (
	"context"
	"fmt"
	"net/http"
	"time"

	appContext "github.com/adergachev/smmstore/internal/app/context"
	"github.com/adergachev/smmstore/internal/app/models"
	"github.com/adergachev/smmstore/internal/app/service"
)

type (
	ServicesHandler struct {
		catalogService service.CatalogService
		contextTimeout time.Duration
	}

	//easyjson:json
	ServiceDto struct {
		ID          int64   `json:"id"`
		Name        string  `json:"name"`
		Category    string  `json:"category"`
		Rate        float64 `json:"rate"`
		MinQuantity int64   `json:"min_quantity"`
		MaxQuantity int64   `json:"max_quantity"`
		Kind        string  `json:"kind"`
	}
	//easyjson:json
	ServiceDtoSlice []ServiceDto
)

func NewServicesHandler(contextTimeoutSec int, catalogService service.CatalogService) *ServicesHandler {
	return &ServicesHandler{
		catalogService: catalogService,
		contextTimeout: time.Duration(contextTimeoutSec) * time.Second,
	}
}

// GetServices godoc
// @Summary Active service catalog
// @Tags services
// @Produce json
// @Success 200 {array} ServiceDto
// @Failure 500 {object} ErrorResponse "Internal Server Error"
// @Router /api/services [get]
func (sh *ServicesHandler) GetServices(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), sh.contextTimeout)
	defer cancel()

	services, err := sh.catalogService.ListServices(ctx)
	if err != nil {
		PrepareError(w, err)
		return
	}
	response := mapServicesToDtoSlice(services)
	rawBytes, err := response.MarshalJSON()
	if err != nil {
		PrepareError(w, fmt.Errorf("marshal response: %w", err))
		return
	}

	err = appContext.GetContextError(ctx)
	if err != nil {
		PrepareError(w, err)
		return
	}

	w.Header().Add("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(rawBytes)
}

func mapServicesToDtoSlice(slice *[]models.Service) ServiceDtoSlice {
	responseSlice := make(ServiceDtoSlice, 0, len(*slice))
	for _, item := range *slice {
		responseSlice = append(responseSlice, ServiceDto{
			ID:          item.ID,
			Name:        item.Name,
			Category:    item.Category,
			Rate:        item.Rate,
			MinQuantity: item.MinQuantity,
			MaxQuantity: item.MaxQuantity,
			Kind:        string(item.Kind),
		})
	}
	return responseSlice
}
