package handlers

import (
	"errors"
	"net/http"
	"net/url"
	"strings"
	"time"

	"storefront-admin-api/config"
	"storefront-admin-api/middleware"
	"storefront-admin-api/models"
	"storefront-admin-api/notification"
	"storefront-admin-api/statemachine"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type CreateOrderRequest struct {
	CustomerID      uint                   `json:"customer_id" binding:"required"`
	Type            models.FulfillmentType `json:"type" binding:"required"`
	DeliveryAddress string                 `json:"delivery_address"`
	DeliveryFee     float64                `json:"delivery_fee" binding:"gte=0"`
	Tax             float64                `json:"tax" binding:"gte=0"`
	Discount        float64                `json:"discount" binding:"gte=0"`
	DeliveryTime    *time.Time             `json:"delivery_time"`
	Notes           string                 `json:"notes"`
	Items           []struct {
		ProductID uint   `json:"product_id" binding:"required"`
		Quantity  int    `json:"quantity" binding:"required,min=1"`
		Modifiers string `json:"modifiers"`
	} `json:"items" binding:"required,min=1"`
}

// CreateOrder records a new order, snapshots item prices, reserves
// stock and maintains the total invariant
func CreateOrder(c *gin.Context) {
	business, ok := businessForCaller(c)
	if !ok {
		return
	}

	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var customer models.Customer
	if err := config.DB.First(&customer, req.CustomerID).Error; err != nil || customer.BusinessID != business.ID {
		c.JSON(http.StatusNotFound, gin.H{"error": "Customer not found"})
		return
	}

	if req.Type == models.FulfillmentDelivery && strings.TrimSpace(req.DeliveryAddress) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Delivery orders require a delivery address"})
		return
	}

	var orderItems []models.OrderItem
	var subtotal float64
	for _, reqItem := range req.Items {
		var product models.Product
		if err := config.DB.First(&product, reqItem.ProductID).Error; err != nil || product.BusinessID != business.ID {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Product not found in your catalog"})
			return
		}
		if !product.IsAvailable {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Product '" + product.Name + "' is not available"})
			return
		}
		if product.Stock < reqItem.Quantity {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Insufficient stock for '" + product.Name + "'"})
			return
		}
		subtotal += product.Price * float64(reqItem.Quantity)
		orderItems = append(orderItems, models.OrderItem{
			ProductID: product.ID,
			Quantity:  reqItem.Quantity,
			UnitPrice: product.Price,
			Name:      product.Name,
			Modifiers: reqItem.Modifiers,
		})
	}

	order := models.Order{
		BusinessID:      business.ID,
		OrderNumber:     newOrderNumber(),
		CustomerID:      customer.ID,
		Status:          models.StatusPending,
		Type:            req.Type,
		PaymentStatus:   models.PaymentPending,
		Subtotal:        subtotal,
		DeliveryFee:     req.DeliveryFee,
		Tax:             req.Tax,
		Discount:        req.Discount,
		Total:           subtotal + req.DeliveryFee + req.Tax - req.Discount,
		DeliveryAddress: req.DeliveryAddress,
		DeliveryTime:    req.DeliveryTime,
		Notes:           req.Notes,
		Items:           orderItems,
	}
	if err := config.DB.Create(&order).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create order"})
		return
	}

	// Reserve stock; cancellation reverses this via the coordinator's
	// revert_stock side effect
	for _, item := range order.Items {
		config.DB.Model(&models.Product{}).Where("id = ?", item.ProductID).
			UpdateColumn("stock", gorm.Expr("stock - ?", item.Quantity))
	}

	history := models.OrderStatusHistory{
		OrderID:   order.ID,
		ToStatus:  models.StatusPending,
		ChangedBy: middleware.GetUserID(c),
		Note:      "Order created",
	}
	config.DB.Create(&history)

	config.DB.Preload("Items").Preload("Customer").First(&order, order.ID)
	c.JSON(http.StatusCreated, gin.H{"message": "Order created successfully", "order": order})
}

// ListOrders returns the caller's orders with a status summary map
func ListOrders(c *gin.Context) {
	business, ok := businessForCaller(c)
	if !ok {
		return
	}

	var orders []models.Order
	query := config.DB.Preload("Items").Preload("Customer").
		Where("business_id = ?", business.ID)
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if typ := c.Query("type"); typ != "" {
		query = query.Where("type = ?", typ)
	}
	query.Order("created_at desc").Find(&orders)

	summary := map[string]int{}
	for _, o := range orders {
		summary[string(o.Status)]++
	}

	c.JSON(http.StatusOK, gin.H{
		"business":      business.Name,
		"order_summary": summary,
		"count":         len(orders),
		"orders":        orders,
	})
}

// GetOrderDetail returns a single order with its full audit history
func GetOrderDetail(c *gin.Context) {
	business, ok := businessForCaller(c)
	if !ok {
		return
	}
	order, ok := orderForBusiness(c, business.ID, "Items", "Customer", "StatusHistory")
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"order": order})
}

// GetOrderTransitions feeds the status dropdown: the legal next states
// for this order plus the completion shortcut
func GetOrderTransitions(c *gin.Context) {
	business, ok := businessForCaller(c)
	if !ok {
		return
	}
	order, ok := orderForBusiness(c, business.ID)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"current_status":    order.Status,
		"legal_next_states": statemachine.LegalNextStates(order.Status, order.Type),
		"final_status":      statemachine.FinalStatus(order.Type),
		"can_complete":      statemachine.CanShortcut(order.Status),
		"is_terminal":       statemachine.IsTerminal(order.Status),
	})
}

type UpdateOrderStatusRequest struct {
	Status models.OrderStatus `json:"status" binding:"required"`
	Notify bool               `json:"notify"`
}

// UpdateOrderStatus runs the full transition flow: validate through the
// coordinator, persist, execute requested side effects, and when asked
// (and eligible) compose the customer message with a WhatsApp deep link
// for a user-initiated send.
func UpdateOrderStatus(c *gin.Context) {
	business, ok := businessForCaller(c)
	if !ok {
		return
	}
	order, ok := orderForBusiness(c, business.ID, "Customer", "Items")
	if !ok {
		return
	}

	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	opts := statemachine.TransitionOptions{}
	if req.Notify {
		opts.Policy = func(target models.OrderStatus, typ models.FulfillmentType) bool {
			return notification.ShouldNotify(target, typ, business.Notifications)
		}
	}

	result, err := statemachine.ApplyTransition(order, req.Status, opts)
	if err != nil {
		rejectTransition(c, order, err)
		return
	}

	finishTransition(c, business, order, result, "")
}

// CompleteOrder is the one-step "mark as complete" shortcut
func CompleteOrder(c *gin.Context) {
	business, ok := businessForCaller(c)
	if !ok {
		return
	}
	order, ok := orderForBusiness(c, business.ID, "Customer", "Items")
	if !ok {
		return
	}

	var req struct {
		Notify bool `json:"notify"`
	}
	// Body is optional for this endpoint
	_ = c.ShouldBindJSON(&req)

	opts := statemachine.TransitionOptions{}
	if req.Notify {
		opts.Policy = func(target models.OrderStatus, typ models.FulfillmentType) bool {
			return notification.ShouldNotify(target, typ, business.Notifications)
		}
	}

	result, err := statemachine.ApplyCompletion(order, opts)
	if err != nil {
		rejectTransition(c, order, err)
		return
	}

	finishTransition(c, business, order, result, "Marked as complete")
}

type CancelOrderRequest struct {
	Reason string `json:"reason"`
}

// CancelOrder transitions to CANCELLED; a non-empty reason is required
// and is appended to the order notes. Cancellation never offers a
// customer notification.
func CancelOrder(c *gin.Context) {
	business, ok := businessForCaller(c)
	if !ok {
		return
	}
	order, ok := orderForBusiness(c, business.ID, "Customer", "Items")
	if !ok {
		return
	}

	var req CancelOrderRequest
	_ = c.ShouldBindJSON(&req)

	result, err := statemachine.ApplyTransition(order, models.StatusCancelled,
		statemachine.TransitionOptions{Reason: req.Reason})
	if err != nil {
		rejectTransition(c, order, err)
		return
	}

	finishTransition(c, business, order, result, "")
}

// UpdatePaymentStatus is a narrow value replacement; payment status
// does not pass through the transition graph
func UpdatePaymentStatus(c *gin.Context) {
	business, ok := businessForCaller(c)
	if !ok {
		return
	}
	order, ok := orderForBusiness(c, business.ID)
	if !ok {
		return
	}

	var req struct {
		PaymentStatus models.PaymentStatus `json:"payment_status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	config.DB.Model(&order).Update("payment_status", req.PaymentStatus)
	c.JSON(http.StatusOK, gin.H{
		"message":        "Payment status updated",
		"order_id":       order.ID,
		"payment_status": req.PaymentStatus,
	})
}

// UpdateDeliveryTime is a narrow value replacement for the scheduled
// time; it does not pass through the transition graph
func UpdateDeliveryTime(c *gin.Context) {
	business, ok := businessForCaller(c)
	if !ok {
		return
	}
	order, ok := orderForBusiness(c, business.ID)
	if !ok {
		return
	}

	var req struct {
		DeliveryTime *time.Time `json:"delivery_time" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	config.DB.Model(&order).Update("delivery_time", req.DeliveryTime)
	c.JSON(http.StatusOK, gin.H{
		"message":       "Delivery time updated",
		"order_id":      order.ID,
		"delivery_time": req.DeliveryTime,
	})
}

// GetOrderNotification previews the customer message for the order's
// current status along with the WhatsApp deep link
func GetOrderNotification(c *gin.Context) {
	business, ok := businessForCaller(c)
	if !ok {
		return
	}
	order, ok := orderForBusiness(c, business.ID, "Customer")
	if !ok {
		return
	}

	message := notification.Compose(order, business, "")
	c.JSON(http.StatusOK, gin.H{
		"eligible":      notification.ShouldNotify(order.Status, order.Type, business.Notifications),
		"message":       message,
		"whatsapp_link": whatsappLink(order.Customer.Phone, message),
	})
}

// rejectTransition maps coordinator errors onto the 422 response shape
func rejectTransition(c *gin.Context, order models.Order, err error) {
	var invalid *statemachine.InvalidTransitionError
	if errors.As(err, &invalid) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":             "Invalid state transition",
			"current_status":    invalid.From,
			"requested":         invalid.To,
			"reason":            err.Error(),
			"valid_next_states": statemachine.LegalNextStates(order.Status, order.Type),
		})
		return
	}
	var shortcut *statemachine.ShortcutNotAllowedError
	if errors.As(err, &shortcut) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":          "Cannot mark order as complete",
			"current_status": order.Status,
			"reason":         err.Error(),
		})
		return
	}
	if errors.Is(err, statemachine.ErrMissingReason) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":          "Cancellation requires a reason",
			"current_status": order.Status,
		})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}

// finishTransition persists an accepted transition, executes the side
// effects the coordinator requested, and surfaces the composed message
// when the transition is notification-eligible.
func finishTransition(c *gin.Context, business models.Business, order models.Order, result statemachine.TransitionResult, historyNote string) {
	prevStatus := order.Status
	updated := result.Order

	config.DB.Model(&models.Order{}).Where("id = ?", order.ID).
		Updates(map[string]interface{}{
			"status": updated.Status,
			"notes":  updated.Notes,
		})

	if historyNote == "" {
		historyNote = "Status updated"
		if updated.Status == models.StatusCancelled {
			historyNote = "Order cancelled"
		}
	}
	history := models.OrderStatusHistory{
		OrderID:    order.ID,
		FromStatus: prevStatus,
		ToStatus:   updated.Status,
		ChangedBy:  middleware.GetUserID(c),
		Note:       historyNote,
	}
	config.DB.Create(&history)

	if result.SideEffects.RevertStock {
		revertStock(order)
	}

	response := gin.H{
		"message":         "Order status updated",
		"order_id":        order.ID,
		"previous_status": prevStatus,
		"current_status":  updated.Status,
		"side_effects":    result.SideEffects,
	}

	if result.NotifyEligible {
		// Compose against the status just written, never a re-read
		message := notification.Compose(updated, business, updated.Status)
		response["notification"] = gin.H{
			"message":       message,
			"whatsapp_link": whatsappLink(order.Customer.Phone, message),
		}
	}

	c.JSON(http.StatusOK, response)
}

// revertStock puts each order item's quantity back onto its product.
// The coordinator requested the effect; executing it is our job.
func revertStock(order models.Order) {
	for _, item := range order.Items {
		config.DB.Model(&models.Product{}).Where("id = ?", item.ProductID).
			UpdateColumn("stock", gorm.Expr("stock + ?", item.Quantity))
	}
	config.Log.Info("Reverted stock for cancelled order",
		zap.Uint("order_id", order.ID),
		zap.Int("items", len(order.Items)))
}

// whatsappLink percent-encodes the message into a wa.me deep link; the
// composer itself never owns the link format
func whatsappLink(phone, message string) string {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, phone)
	return "https://wa.me/" + digits + "?text=" + url.QueryEscape(message)
}

func newOrderNumber() string {
	return "ORD-" + strings.ToUpper(uuid.NewString()[:8])
}

func orderForBusiness(c *gin.Context, businessID uint, preloads ...string) (models.Order, bool) {
	query := config.DB
	for _, p := range preloads {
		query = query.Preload(p)
	}
	var order models.Order
	if err := query.First(&order, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return models.Order{}, false
	}
	if order.BusinessID != businessID {
		c.JSON(http.StatusForbidden, gin.H{"error": "This order does not belong to your business"})
		return models.Order{}, false
	}
	return order, true
}
