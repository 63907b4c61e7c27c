package handler

import (
	"trendkart/internal/usecase"
	"trendkart/pkg/response"
	"trendkart/pkg/utils"

	"github.com/labstack/echo/v4"
)

type OrderHandler struct {
	orderUseCase *usecase.OrderUseCase
}

func NewOrderHandler(orderUseCase *usecase.OrderUseCase) *OrderHandler {
	return &OrderHandler{
		orderUseCase: orderUseCase,
	}
}

type cartItemRequest struct {
	ProductID string   `json:"product_id"`
	Name      string   `json:"name"`
	Price     float64  `json:"price" validate:"gte=0"`
	Quantity  int      `json:"quantity"`
	SKU       string   `json:"sku"`
	Images    []string `json:"images"`
	SellerID  string   `json:"seller_id"`
}

type billingRequest struct {
	FullName string `json:"full_name"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	City     string `json:"city"`
	Pincode  string `json:"pincode"`
}

type placeOrderRequest struct {
	Items      []cartItemRequest `json:"items" validate:"required,min=1,dive"`
	Billing    billingRequest    `json:"billing"`
	TotalPrice float64           `json:"total_price" validate:"gt=0"`
	Latitude   *float64          `json:"latitude"`
	Longitude  *float64          `json:"longitude"`
}

func (h *OrderHandler) PlaceOrder(c echo.Context) error {
	var req placeOrderRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	uid := c.Get("uid").(string)

	items := make([]usecase.CartItemInput, len(req.Items))
	for i, item := range req.Items {
		items[i] = usecase.CartItemInput{
			ProductID: item.ProductID,
			Name:      item.Name,
			Price:     item.Price,
			Quantity:  item.Quantity,
			SKU:       item.SKU,
			Images:    item.Images,
			SellerID:  item.SellerID,
		}
	}

	placed, err := h.orderUseCase.PlaceOrder(c.Request().Context(), uid, usecase.PlaceOrderInput{
		Items: items,
		Billing: usecase.BillingInput{
			FullName: req.Billing.FullName,
			Phone:    req.Billing.Phone,
			Address:  req.Billing.Address,
			City:     req.Billing.City,
			Pincode:  req.Billing.Pincode,
		},
		TotalPrice: req.TotalPrice,
		Latitude:   req.Latitude,
		Longitude:  req.Longitude,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, placed)
}

func (h *OrderHandler) GetOrder(c echo.Context) error {
	uid := c.Get("uid").(string)

	order, err := h.orderUseCase.GetOrder(c.Request().Context(), uid, c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, order)
}

func (h *OrderHandler) ListMyOrders(c echo.Context) error {
	uid := c.Get("uid").(string)
	limit := utils.GetLimitParam(c, 20, 100)

	orders, err := h.orderUseCase.ListMyOrders(c.Request().Context(), uid, limit)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, orders)
}

// Seller endpoints treat the authenticated uid as the seller id, the
// same identity the order fan-out keys on.

func (h *OrderHandler) SellerStats(c echo.Context) error {
	uid := c.Get("uid").(string)

	stats, err := h.orderUseCase.SellerStats(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, stats)
}

func (h *OrderHandler) SellerOrders(c echo.Context) error {
	uid := c.Get("uid").(string)
	limit := utils.GetLimitParam(c, 20, 100)

	orders, err := h.orderUseCase.SellerOrders(c.Request().Context(), uid, limit)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, orders)
}
