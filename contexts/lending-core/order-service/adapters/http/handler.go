package httpadapter

import (
	"context"
	"log/slog"

	"bookcourier/contexts/lending-core/order-service/application/commands"
	"bookcourier/contexts/lending-core/order-service/application/queries"
	"bookcourier/contexts/lending-core/order-service/domain/entities"
	httptransport "bookcourier/contexts/lending-core/order-service/transport/http"
)

// Handler maps HTTP DTOs to application commands/queries.
type Handler struct {
	CreateOrder        commands.CreateOrderUseCase
	TransitionDelivery commands.TransitionDeliveryUseCase
	HideForBuyer       commands.HideForBuyerUseCase
	HideForProvider    commands.HideForProviderUseCase
	GetOrder           queries.GetOrderUseCase
	ListBuyerOrders    queries.ListBuyerOrdersUseCase
	ListProviderOrders queries.ListProviderOrdersUseCase
	OrderStats         queries.CountByProviderVisibilityUseCase
	Logger             *slog.Logger
}

// CreateOrderHandler places an order for the verified caller. A listing
// that exists but is not published yields Available=false, not an error.
func (h Handler) CreateOrderHandler(ctx context.Context, buyerEmail string, request httptransport.CreateOrderRequest) (httptransport.CreateOrderResponse, error) {
	result, err := h.CreateOrder.Execute(ctx, commands.CreateOrderCommand{
		ListingID:  request.ListingID,
		BuyerEmail: buyerEmail,
		Address:    request.Address,
	})
	if err != nil {
		return httptransport.CreateOrderResponse{}, err
	}
	if !result.Available {
		return httptransport.CreateOrderResponse{Available: false}, nil
	}
	dto := toOrderDTO(result.Order)
	return httptransport.CreateOrderResponse{Available: true, Order: &dto}, nil
}

// TransitionDeliveryHandler drives one delivery-status edge.
func (h Handler) TransitionDeliveryHandler(ctx context.Context, orderID, actorEmail string, actorAdmin bool, target string) (httptransport.OrderDTO, error) {
	order, err := h.TransitionDelivery.Execute(ctx, commands.TransitionDeliveryCommand{
		OrderID:    orderID,
		Target:     entities.DeliveryStatus(target),
		ActorEmail: actorEmail,
		ActorAdmin: actorAdmin,
	})
	if err != nil {
		return httptransport.OrderDTO{}, err
	}
	return toOrderDTO(order), nil
}

// HideForBuyerHandler removes an order from the caller's own buyer view.
func (h Handler) HideForBuyerHandler(ctx context.Context, orderID, buyerEmail string) (httptransport.HideOrderResponse, error) {
	if err := h.HideForBuyer.Execute(ctx, commands.HideForBuyerCommand{
		OrderID:    orderID,
		BuyerEmail: buyerEmail,
	}); err != nil {
		return httptransport.HideOrderResponse{}, err
	}
	return httptransport.HideOrderResponse{Hidden: true}, nil
}

// HideForProviderHandler removes an order from the caller's own provider view.
func (h Handler) HideForProviderHandler(ctx context.Context, orderID, providerEmail string) (httptransport.HideOrderResponse, error) {
	if err := h.HideForProvider.Execute(ctx, commands.HideForProviderCommand{
		OrderID:       orderID,
		ProviderEmail: providerEmail,
	}); err != nil {
		return httptransport.HideOrderResponse{}, err
	}
	return httptransport.HideOrderResponse{Hidden: true}, nil
}

// GetOrderHandler fetches one order for a party to it.
func (h Handler) GetOrderHandler(ctx context.Context, orderID, requesterEmail string) (httptransport.OrderDTO, error) {
	order, err := h.GetOrder.Execute(ctx, queries.GetOrderQuery{
		OrderID:        orderID,
		RequesterEmail: requesterEmail,
	})
	if err != nil {
		return httptransport.OrderDTO{}, err
	}
	return toOrderDTO(order), nil
}

// ListBuyerOrdersHandler returns the caller's non-hidden orders.
func (h Handler) ListBuyerOrdersHandler(ctx context.Context, buyerEmail string) (httptransport.ListOrdersResponse, error) {
	items, err := h.ListBuyerOrders.Execute(ctx, queries.ListBuyerOrdersQuery{BuyerEmail: buyerEmail})
	if err != nil {
		return httptransport.ListOrdersResponse{}, err
	}
	return toListResponse(items), nil
}

// ListProviderOrdersHandler returns incoming orders for the caller's listings.
func (h Handler) ListProviderOrdersHandler(ctx context.Context, providerEmail string) (httptransport.ListOrdersResponse, error) {
	items, err := h.ListProviderOrders.Execute(ctx, queries.ListProviderOrdersQuery{ProviderEmail: providerEmail})
	if err != nil {
		return httptransport.ListOrdersResponse{}, err
	}
	return toListResponse(items), nil
}

// OrderStatsHandler returns the admin dashboard buckets.
func (h Handler) OrderStatsHandler(ctx context.Context) (httptransport.OrderStatsResponse, error) {
	buckets, err := h.OrderStats.Execute(ctx)
	if err != nil {
		return httptransport.OrderStatsResponse{}, err
	}
	dtos := make([]httptransport.StatusBucketDTO, 0, len(buckets))
	for _, bucket := range buckets {
		dtos = append(dtos, httptransport.StatusBucketDTO{Label: bucket.Label, Count: bucket.Count})
	}
	return httptransport.OrderStatsResponse{Buckets: dtos}, nil
}

func toOrderDTO(order entities.Order) httptransport.OrderDTO {
	return httptransport.OrderDTO{
		OrderID:              order.OrderID,
		ListingID:            order.ListingID,
		BuyerEmail:           order.BuyerEmail,
		ProviderEmail:        order.ProviderEmail,
		Address:              order.Address,
		BookName:             order.BookName,
		Price:                order.Price,
		CreatedAt:            order.CreatedAt,
		PaymentStatus:        string(order.PaymentStatus),
		DeliveryStatus:       string(order.DeliveryStatus),
		UserOrderStatus:      string(order.UserOrderStatus),
		LibrarianOrderStatus: string(order.LibrarianOrderStatus),
		TrackingID:           order.TrackingID,
	}
}

func toListResponse(items []entities.Order) httptransport.ListOrdersResponse {
	dtos := make([]httptransport.OrderDTO, 0, len(items))
	for _, item := range items {
		dtos = append(dtos, toOrderDTO(item))
	}
	return httptransport.ListOrdersResponse{Orders: dtos}
}
