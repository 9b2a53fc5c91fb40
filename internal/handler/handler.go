package handler

import (
	"errors"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"donation-engine/internal/engine"
	"donation-engine/internal/ingest"
	"donation-engine/internal/model"
)

type Handler struct {
	engine *engine.Engine
	logger *zap.Logger
}

func New(eng *engine.Engine, logger *zap.Logger) *Handler {
	return &Handler{engine: eng, logger: logger}
}

// Handle routes POST /run-use-cases: pull the uploaded file out of the
// multipart form, parse it, run the batch, encode the result set.
func (h *Handler) Handle(ctx *fasthttp.RequestCtx) {
	if string(ctx.Path()) != "/run-use-cases" {
		writeError(ctx, fasthttp.StatusNotFound, "Not found")
		return
	}
	if !ctx.IsPost() {
		writeError(ctx, fasthttp.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	reqID := uuid.New().String()
	log := h.logger.With(zap.String("request_id", reqID))

	fh, err := ctx.FormFile("file")
	if err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, "file upload missing")
		return
	}

	f, err := fh.Open()
	if err != nil {
		log.Error("failed to open uploaded file", zap.Error(err))
		writeError(ctx, fasthttp.StatusBadRequest, "Invalid CSV format")
		return
	}
	defer f.Close()

	rows, err := ingest.Parse(f)
	if err != nil {
		if errors.Is(err, ingest.ErrMissingUseCaseCol) {
			writeError(ctx, fasthttp.StatusBadRequest, err.Error())
			return
		}
		writeError(ctx, fasthttp.StatusBadRequest, ingest.ErrInvalidFormat.Error())
		return
	}

	log.Info("processing upload",
		zap.String("filename", fh.Filename),
		zap.Int("rows", len(rows)))

	rs := h.engine.Process(ctx, rows)

	body, err := json.Marshal(rs)
	if err != nil {
		log.Error("failed to encode response", zap.Error(err))
		writeError(ctx, fasthttp.StatusInternalServerError, "Internal server error")
		return
	}

	ctx.SetContentType("application/json")
	ctx.SetStatusCode(fasthttp.StatusOK)
	ctx.SetBody(body)
}

func writeError(ctx *fasthttp.RequestCtx, status int, message string) {
	ctx.SetContentType("application/json")
	ctx.SetStatusCode(status)
	body, _ := json.Marshal(model.ErrorResponse{
		Status:  status,
		Message: message,
	})
	ctx.SetBody(body)
}
