package httpHandler

import (
	"net/http"
	"strconv"

	"carrot-server/usecases"

	"github.com/gin-gonic/gin"
)

type TodoHandler struct {
	todos   *usecases.TodoUseCase
	rewards *usecases.RewardUseCase
}

func NewTodoHandler(todos *usecases.TodoUseCase, rewards *usecases.RewardUseCase) *TodoHandler {
	return &TodoHandler{todos: todos, rewards: rewards}
}

type CreateTodoRequest struct {
	Title     string  `json:"title" binding:"required"`
	AlarmTime *string `json:"alarm_time"`
}

type UpdateTodoRequest struct {
	Title     *string `json:"title"`
	Completed *bool   `json:"completed"`
	AlarmTime *string `json:"alarm_time"`
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return 0, false
	}
	return uint(id), true
}

// CreateTodo handles POST /api/v1/todos
func (h *TodoHandler) CreateTodo(c *gin.Context) {
	var req CreateTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	todo, err := h.todos.Create(currentUserID(c), req.Title, req.AlarmTime)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, todo)
}

// ListTodos handles GET /api/v1/todos?skip=&limit=
func (h *TodoHandler) ListTodos(c *gin.Context) {
	skip, _ := strconv.Atoi(c.DefaultQuery("skip", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))

	todos, err := h.todos.List(currentUserID(c), skip, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, todos)
}

// GetTodo handles GET /api/v1/todos/:id
func (h *TodoHandler) GetTodo(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	todo, err := h.todos.Get(id, currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, todo)
}

// UpdateTodo handles PUT /api/v1/todos/:id
func (h *TodoHandler) UpdateTodo(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req UpdateTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	todo, err := h.todos.Update(id, currentUserID(c), usecases.TodoUpdate{
		Title:     req.Title,
		Completed: req.Completed,
		AlarmTime: req.AlarmTime,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, todo)
}

// DeleteTodo handles DELETE /api/v1/todos/:id
func (h *TodoHandler) DeleteTodo(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.todos.Delete(id, currentUserID(c)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// CompleteTodo handles POST /api/v1/todos/:id/complete and returns the
// updated user, balance included, rather than the todo.
func (h *TodoHandler) CompleteTodo(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	user, err := h.rewards.Complete(id, currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// UncompleteTodo handles POST /api/v1/todos/:id/uncomplete
func (h *TodoHandler) UncompleteTodo(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	user, err := h.rewards.Uncomplete(id, currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}
