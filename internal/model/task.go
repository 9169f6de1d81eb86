package model

const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
)

type Task struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	DueDate *Date  `json:"due_date,omitempty"`
	Status  string `json:"status"`
}

// TaskCreate - тело запроса на создание задачи
type TaskCreate struct {
	Title   string `json:"title"`
	DueDate *Date  `json:"due_date"`
}

// TaskUpdate - частичное обновление, nil-поле остается без изменений
type TaskUpdate struct {
	Title   *string `json:"title"`
	DueDate *Date   `json:"due_date"`
	Status  *string `json:"status"`
}
