package handler

import (
	"net/http"
	"strconv"

	"github.com/Rocco1585/agentur-dashboard-pro-sub000/infrastructure/repository"
	"github.com/Rocco1585/agentur-dashboard-pro-sub000/internal/domain"
	"github.com/Rocco1585/agentur-dashboard-pro-sub000/internal/usecases/todos"
)

type CompleteTodoRequest struct {
	Completed *bool `json:"completed"`
}

// ListTodos aceita ?assigned_to=<id>&open=true
func ListTodos(service todos.TodoService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		openOnly, _ := strconv.ParseBool(query.Get("open"))

		list, err := service.List(r.Context(), repository.TodoFilter{
			AssignedTo: query.Get("assigned_to"),
			OpenOnly:   openOnly,
		})
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, r, http.StatusOK, list)
	}
}

func CreateTodo(service todos.TodoService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.CreateTodoRequest
		if !decodeBody(w, r, &req) {
			return
		}

		todo, err := service.Create(r.Context(), &req)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, r, http.StatusCreated, todo)
	}
}

func UpdateTodo(service todos.TodoService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.UpdateTodoRequest
		if !decodeBody(w, r, &req) {
			return
		}
		req.ID = pathParam(r, "id")

		todo, err := service.Update(r.Context(), &req)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, r, http.StatusOK, todo)
	}
}

// CompleteTodo marca a tarefa; sem corpo o padrão é concluir
func CompleteTodo(service todos.TodoService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		completed := true
		if r.ContentLength > 0 {
			var req CompleteTodoRequest
			if !decodeBody(w, r, &req) {
				return
			}
			if req.Completed != nil {
				completed = *req.Completed
			}
		}

		todo, err := service.Complete(r.Context(), pathParam(r, "id"), completed)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, r, http.StatusOK, todo)
	}
}

func DeleteTodo(service todos.TodoService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := service.Delete(r.Context(), pathParam(r, "id")); err != nil {
			writeServiceError(w, r, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
