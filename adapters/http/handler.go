package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/satriahrh/paxos/domain"
	"github.com/satriahrh/paxos/usecase"
	"github.com/satriahrh/paxos/utils/log"
	"go.uber.org/zap"
)

const (
	MsgMessageNotProvided = "Message was not provided in the request"
	MsgMessageNotString   = "Message must be a string"
	MsgInvalidJSON        = "Request body is not valid JSON"
	MsgDigestNotProvided  = "Digest was not provided in the request"
	MsgDigestNotFound     = "No message corresponds to this digest"

	ServiceName = "paxos"
)

type MessageHandler struct {
	svc *usecase.MessageService
}

// SubmitMessageRequest uses a pointer so an absent or null message can be
// told apart from an empty one.
type SubmitMessageRequest struct {
	Message *string `json:"message"`
}

type SubmitMessageResponse struct {
	Digest string `json:"digest"`
}

type RetrieveMessageResponse struct {
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func NewMessageHandler(svc *usecase.MessageService) *MessageHandler {
	return &MessageHandler{svc: svc}
}

// SubmitMessage stores the message from a JSON body and replies with its digest.
func (h *MessageHandler) SubmitMessage(c echo.Context) error {
	var req SubmitMessageRequest
	if err := h.decodeBody(c, &req); err != nil {
		return err
	}
	if req.Message == nil {
		return echo.NewHTTPError(http.StatusBadRequest, MsgMessageNotProvided)
	}

	entry := h.svc.Submit(c.Request().Context(), *req.Message)

	return c.JSON(http.StatusOK, SubmitMessageResponse{Digest: entry.Digest})
}

// RetrieveMessage replies with the message stored under the :digest path parameter.
func (h *MessageHandler) RetrieveMessage(c echo.Context) error {
	digest := c.Param("digest")
	if digest == "" {
		return echo.NewHTTPError(http.StatusBadRequest, MsgDigestNotProvided)
	}

	entry, err := h.svc.Retrieve(c.Request().Context(), digest)
	if errors.Is(err, domain.ErrDigestNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, MsgDigestNotFound)
	}
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, RetrieveMessageResponse{Message: entry.Message})
}

// Health check endpoint
func (h *MessageHandler) HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"timestamp": time.Now().UTC(),
		"service":   ServiceName,
		"messages":  h.svc.Count(),
	})
}

// decodeBody fills req from a JSON body. Bodies without a JSON content type
// are ignored, as is an empty body.
func (h *MessageHandler) decodeBody(c echo.Context, req *SubmitMessageRequest) error {
	contentType := c.Request().Header.Get(echo.HeaderContentType)
	if !strings.HasPrefix(contentType, echo.MIMEApplicationJSON) {
		return nil
	}

	err := c.Echo().JSONSerializer.Deserialize(c, req)
	if err == nil || errors.Is(err, io.EOF) {
		return nil
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		if typeErr.Field == "message" {
			return echo.NewHTTPError(http.StatusBadRequest, MsgMessageNotString).SetInternal(err)
		}
		// A body that is valid JSON but not an object carries no message.
		*req = SubmitMessageRequest{}
		return nil
	}

	var he *echo.HTTPError
	if errors.As(err, &he) && he.Code != http.StatusBadRequest {
		return he
	}

	log.WithCtx(c.Request().Context()).Debug("Rejected request body", zap.Error(err))
	return echo.NewHTTPError(http.StatusBadRequest, MsgInvalidJSON).SetInternal(err)
}
