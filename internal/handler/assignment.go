package handler

import (
	"context"
	"net/http"

	"eduportal/internal/domain"
	"eduportal/internal/service"

	"github.com/go-chi/chi/v5"
)

type AssignmentHandler struct {
	assignments AssignmentService
	submissions SubmissionService
}

func NewAssignmentHandler(assignments AssignmentService, submissions SubmissionService) *AssignmentHandler {
	return &AssignmentHandler{assignments: assignments, submissions: submissions}
}

func (h *AssignmentHandler) RegisterRoutes(r chi.Router, authMiddleware func(http.Handler) http.Handler) {
	r.With(authMiddleware).Group(func(r chi.Router) {
		r.Get("/assignments", handle(h.list, false, http.StatusOK))
		r.Post("/assignments", handle(h.create, true, http.StatusCreated))
		r.Get("/assignments/{id}", handle(h.get, false, http.StatusOK))
		r.Patch("/assignments/{id}", handle(h.update, true, http.StatusOK))
		r.Delete("/assignments/{id}", handle(h.delete, false, http.StatusNoContent))
		r.Get("/assignments/{id}/submissions", handle(h.listSubmissions, false, http.StatusOK))
	})
}

func (h *AssignmentHandler) list(ctx context.Context, r *http.Request, _ *noBody) ([]*service.AssignmentView, error) {
	views, err := h.assignments.ListAssignments(ctx, r.URL.Query().Get("tab"))
	if err != nil {
		return nil, err
	}
	if views == nil {
		views = []*service.AssignmentView{}
	}
	return views, nil
}

func (h *AssignmentHandler) create(ctx context.Context, _ *http.Request, req *service.CreateAssignmentInput) (*domain.Assignment, error) {
	return h.assignments.CreateAssignment(ctx, *req)
}

func (h *AssignmentHandler) get(ctx context.Context, r *http.Request, _ *noBody) (*service.AssignmentView, error) {
	id, err := parsePathParam(r, "id")
	if err != nil {
		return nil, err
	}
	return h.assignments.GetAssignmentView(ctx, id)
}

func (h *AssignmentHandler) update(ctx context.Context, r *http.Request, req *service.UpdateAssignmentInput) (*domain.Assignment, error) {
	id, err := parsePathParam(r, "id")
	if err != nil {
		return nil, err
	}
	return h.assignments.UpdateAssignment(ctx, id, *req)
}

func (h *AssignmentHandler) delete(ctx context.Context, r *http.Request, _ *noBody) (struct{}, error) {
	id, err := parsePathParam(r, "id")
	if err != nil {
		return struct{}{}, err
	}
	return struct{}{}, h.assignments.DeleteAssignment(ctx, id)
}

func (h *AssignmentHandler) listSubmissions(ctx context.Context, r *http.Request, _ *noBody) ([]*domain.Submission, error) {
	id, err := parsePathParam(r, "id")
	if err != nil {
		return nil, err
	}
	submissions, err := h.submissions.ListSubmissionsByAssignment(ctx, id)
	if err != nil {
		return nil, err
	}
	return nonNilSubmissions(submissions), nil
}
