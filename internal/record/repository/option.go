package repository

type CreateOptions struct {
	UserID      int64
	Title       string
	Description string
	IsCompleted bool
}

// GetOneOptions fetches a single row. Both fields are required.
type GetOneOptions struct {
	ID     int64
	UserID int64
}

// ListOptions holds filter and pagination parameters for listing rows.
// A zero Limit returns every row of the user.
type ListOptions struct {
	UserID    int64
	Completed *bool
	Limit     int
	Offset    int
	OrderBy   string
}

type UpdateOptions struct {
	ID          int64
	UserID      int64
	Title       string
	Description string
	IsCompleted bool
}

type DeleteOptions struct {
	ID     int64
	UserID int64
}
