package handler

import (
	"context"
	"net/http"

	"eduportal/internal/domain"
	"eduportal/internal/service"

	"github.com/go-chi/chi/v5"
)

type SubmissionHandler struct {
	submissions SubmissionService
}

func NewSubmissionHandler(submissions SubmissionService) *SubmissionHandler {
	return &SubmissionHandler{submissions: submissions}
}

func (h *SubmissionHandler) RegisterRoutes(r chi.Router, authMiddleware func(http.Handler) http.Handler) {
	r.With(authMiddleware).Group(func(r chi.Router) {
		r.Get("/submissions", handle(h.list, false, http.StatusOK))
		r.Post("/submissions", handle(h.create, true, http.StatusCreated))
		r.Get("/submissions/{id}", handle(h.get, false, http.StatusOK))
		r.Post("/submissions/{id}/grade", handle(h.grade, true, http.StatusOK))
	})
}

func (h *SubmissionHandler) list(ctx context.Context, _ *http.Request, _ *noBody) ([]*domain.Submission, error) {
	submissions, err := h.submissions.ListSubmissions(ctx)
	if err != nil {
		return nil, err
	}
	return nonNilSubmissions(submissions), nil
}

func (h *SubmissionHandler) create(ctx context.Context, _ *http.Request, req *service.CreateSubmissionInput) (*domain.Submission, error) {
	return h.submissions.CreateSubmission(ctx, *req)
}

func (h *SubmissionHandler) get(ctx context.Context, r *http.Request, _ *noBody) (*domain.Submission, error) {
	id, err := parsePathParam(r, "id")
	if err != nil {
		return nil, err
	}
	return h.submissions.GetSubmission(ctx, id)
}

func (h *SubmissionHandler) grade(ctx context.Context, r *http.Request, req *service.GradeInput) (*domain.Submission, error) {
	id, err := parsePathParam(r, "id")
	if err != nil {
		return nil, err
	}
	return h.submissions.GradeSubmission(ctx, id, *req)
}

func nonNilSubmissions(submissions []*domain.Submission) []*domain.Submission {
	if submissions == nil {
		return []*domain.Submission{}
	}
	return submissions
}
