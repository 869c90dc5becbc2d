package service

// OrderStatus is the lifecycle state of an order.
//
// created -> progress -> completed
//         \-> refused
type OrderStatus string

const (
	StatusCreated   OrderStatus = "created"
	StatusProgress  OrderStatus = "progress"
	StatusRefused   OrderStatus = "refused"
	StatusCompleted OrderStatus = "completed"
)

// activeStatuses are the states counted by the single-active-order rule.
var activeStatuses = []string{string(StatusCreated), string(StatusProgress)}
