package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"eduportal/internal/service"
	"eduportal/pkg/logging"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

var ErrBadRequest = errors.New("bad request")

// noBody is the request type of endpoints that read nothing from the body.
type noBody struct{}

func mapErr(err error) int {
	switch {
	case errors.Is(err, ErrBadRequest), errors.Is(err, service.ErrInvalidArgument):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrUnauthenticated), errors.Is(err, service.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, service.ErrPermissionDenied):
		return http.StatusForbidden
	case errors.Is(err, service.ErrAssignmentNotFound),
		errors.Is(err, service.ErrSubmissionNotFound),
		errors.Is(err, service.ErrNotificationNotFound),
		errors.Is(err, service.ErrUserNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrAlreadyGraded),
		errors.Is(err, service.ErrAlreadySubmitted),
		errors.Is(err, service.ErrEmailInUse):
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

// errorMessage is the text shown to the user for err.
func errorMessage(err error, statusCode int) string {
	var verr *service.ValidationError
	switch {
	case errors.As(err, &verr):
		return verr.Message
	case errors.Is(err, service.ErrInvalidCredentials):
		return "Invalid email or password"
	case errors.Is(err, service.ErrEmailInUse):
		return "Registration failed. Email may already be in use."
	case errors.Is(err, service.ErrAssignmentNotFound):
		return "Assignment not found"
	case errors.Is(err, service.ErrSubmissionNotFound):
		return "Submission not found"
	case errors.Is(err, service.ErrNotificationNotFound):
		return "Notification not found"
	case errors.Is(err, service.ErrUserNotFound):
		return "User not found"
	case errors.Is(err, service.ErrAlreadyGraded):
		return "This submission has already been graded"
	case errors.Is(err, service.ErrAlreadySubmitted):
		return "You have already submitted this assignment"
	case errors.Is(err, ErrBadRequest):
		return err.Error()
	}
	return http.StatusText(statusCode)
}

// handle decodes the JSON body into Req when parseBody is set, runs call and
// writes its result as JSON with successStatus.
func handle[Req any, Resp any](
	call func(ctx context.Context, r *http.Request, req *Req) (Resp, error),
	parseBody bool,
	successStatus int,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		req := new(Req)

		if parseBody {
			if err := json.NewDecoder(r.Body).Decode(req); err != nil {
				logging.FromContext(ctx).Info(ctx, "failed to parse request body", zap.Error(err))
				writeErrorJSON(w, http.StatusBadRequest, "invalid request body")
				return
			}
		}

		resp, err := call(ctx, r, req)
		if err != nil {
			statusCode := mapErr(err)
			if statusCode == http.StatusInternalServerError {
				logging.FromContext(ctx).Error(ctx, "request failed",
					zap.String("method", r.Method),
					zap.String("path", r.URL.Path),
					zap.Error(err),
				)
			} else {
				logging.FromContext(ctx).Debug(ctx, "request rejected", zap.Int("status", statusCode), zap.Error(err))
			}
			writeErrorJSON(w, statusCode, errorMessage(err, statusCode))
			return
		}

		if successStatus == http.StatusNoContent {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		writeJSON(w, successStatus, resp)
	}
}

func writeJSON(w http.ResponseWriter, statusCode int, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		writeErrorJSON(w, http.StatusInternalServerError, "failed to serialize response")
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	w.Write(data)
}

func writeErrorJSON(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	resp, _ := json.Marshal(map[string]string{"error": message})
	w.Write(resp)
}

func parsePathParam(r *http.Request, key string) (string, error) {
	val := chi.URLParam(r, key)
	if val == "" {
		return "", fmt.Errorf("%w: missing path param %s", ErrBadRequest, key)
	}
	return val, nil
}
