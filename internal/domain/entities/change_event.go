package entities

const (
	ChangeOrderCreated = "order.created"
	ChangeOrderUpdated = "order.updated"
	ChangeMessageNew   = "message.new"
	ChangeMessageRead  = "message.read"

	TopicAllOrders = "orders:all"
)

// ChangeEvent is pushed to live subscribers after a committed write.
type ChangeEvent struct {
	Type string `json:"type"`
	Data any    `json:"data"`
}

func OrderTopic(orderID string) string {
	return "order:" + orderID
}

func MessagesTopic(orderID string) string {
	return "messages:" + orderID
}

func UserOrdersTopic(userID string) string {
	return "orders:user:" + userID
}
