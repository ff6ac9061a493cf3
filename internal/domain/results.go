package domain

type (
	DeleteOrderResult struct {
		OrderID int64
	}

	DeleteUserOrdersResult struct {
		UserID          int64
		DeletedOrderIDs []int64
	}
)
